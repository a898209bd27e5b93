// Package main provides the CLI entry point for lateralload.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	folder     string
	columnFile string
	wallFile   string
	coordFile  string
	zText      string
	outputFile string
	asJSON     bool
	pretty     bool
	showPoints bool
	noSpinner  bool
	logLevel   string
	logFormat  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lateralload",
		Short: "Resultant base forces from column and wall reactions",
		Long: `lateralload joins column and wall end-force exports to joint coordinates,
keeps the points lying on one elevation, sums forces per unique (X,Y,Z)
point and reports the resultant forces and the moments transferred to the
origin. The merged points are written to an .xlsx report.

All file names are resolved relative to --folder.

Examples:
  lateralload -d ./exports -c columns.xlsx -w walls.xlsx -k joints.xlsx --z 3000
  lateralload -d ./exports -c col.xlsx -w wall.xlsx -k coor.xlsx --z 0 -o base --json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.Flags()
	flags.StringVar(&configPath, "config", "", "YAML config file (default: $LATERALLOAD_CONFIG)")
	flags.StringVarP(&folder, "folder", "d", "", "Folder containing the input workbooks")
	flags.StringVarP(&columnFile, "column", "c", "", "Column end-force workbook [required]")
	flags.StringVarP(&wallFile, "wall", "w", "", "Wall end-force workbook [required]")
	flags.StringVarP(&coordFile, "coord", "k", "", "Joint coordinate workbook [required]")
	flags.StringVar(&zText, "z", "", "Target Z elevation (mm) [required]")
	flags.StringVarP(&outputFile, "output", "o", "", "Output filename (default: unique_points.xlsx)")
	flags.BoolVar(&asJSON, "json", false, "Print the result as JSON")
	flags.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	flags.BoolVar(&showPoints, "points", false, "List the aggregated points in the summary")
	flags.BoolVar(&noSpinner, "no-spinner", false, "Disable the progress spinner")
	flags.StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	flags.StringVar(&logFormat, "log-format", "", "Log format: console, json")

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
