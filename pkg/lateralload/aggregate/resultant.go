package aggregate

import (
	"github.com/samber/lo"
	"github.com/ukaji3/lateralload-go/pkg/lateralload/models"
	"github.com/ukaji3/lateralload-go/pkg/lateralload/parser"
	"gonum.org/v1/gonum/floats"
)

// Totals holds the resultant forces of an elevation plane and the moments
// transferred to the origin.
type Totals struct {
	Fx float64 `json:"fx"`
	Fy float64 `json:"fy"`
	Fz float64 `json:"fz"`
	Mx float64 `json:"mx"`
	My float64 `json:"my"`
}

// Resultants sums the group forces and transfers each group's Fz to the
// origin through its X and Y offsets:
//
//	My = -Σ(Fz·X)/1000 - ΣMy
//	Mx = -Σ(Fz·Y)/1000 - ΣMx
func Resultants(groups []models.AggregatedPoint) Totals {
	if len(groups) == 0 {
		return Totals{}
	}

	col := func(f func(models.AggregatedPoint) float64) []float64 {
		return lo.Map(groups, func(g models.AggregatedPoint, _ int) float64 {
			return f(g)
		})
	}
	xs := col(func(g models.AggregatedPoint) float64 { return g.X })
	ys := col(func(g models.AggregatedPoint) float64 { return g.Y })
	fz := col(func(g models.AggregatedPoint) float64 { return g.Fz })
	mx := col(func(g models.AggregatedPoint) float64 { return g.Mx })
	my := col(func(g models.AggregatedPoint) float64 { return g.My })

	return Totals{
		Fx: floats.Sum(col(func(g models.AggregatedPoint) float64 { return g.Fx })),
		Fy: floats.Sum(col(func(g models.AggregatedPoint) float64 { return g.Fy })),
		Fz: floats.Sum(fz),
		My: -floats.Dot(fz, xs)/parser.MillimetresPerMetre - floats.Sum(my),
		Mx: -floats.Dot(fz, ys)/parser.MillimetresPerMetre - floats.Sum(mx),
	}
}
