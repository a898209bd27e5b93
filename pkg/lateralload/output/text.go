package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ukaji3/lateralload-go/pkg/lateralload/models"
)

const rule = "───────────────────────────────────────────────────────────────"

// WriteSummary prints the resultants of r. When showPoints is set the
// aggregated points are listed as well.
func WriteSummary(out io.Writer, r *models.Result, showPoints bool) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "Total Fx =\t%.2f\n", r.Fx)
	fmt.Fprintf(w, "Total Fy =\t%.2f\n", r.Fy)
	fmt.Fprintf(w, "Total Fz =\t%.2f\n", r.Fz)
	fmt.Fprintf(w, "Moment about X =\t%.2f\n", r.Mx)
	fmt.Fprintf(w, "Moment about Y =\t%.2f\n", r.My)
	if err := w.Flush(); err != nil {
		return err
	}

	if showPoints {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "POINTS AT Z = %g (%d):\n", r.Elevation, len(r.Points))
		fmt.Fprintln(out, rule)
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
		for _, h := range Header {
			fmt.Fprintf(w, "%s\t", h)
		}
		fmt.Fprintln(w)
		for _, p := range r.Points {
			for _, v := range p.Values() {
				fmt.Fprintf(w, "%.2f\t", v)
			}
			fmt.Fprintln(w)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Output saved to:")
	_, err := fmt.Fprintln(out, r.OutputPath)
	return err
}
