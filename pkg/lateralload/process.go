package lateralload

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/ukaji3/lateralload-go/pkg/lateralload/aggregate"
	"github.com/ukaji3/lateralload-go/pkg/lateralload/models"
	"github.com/ukaji3/lateralload-go/pkg/lateralload/output"
	"github.com/ukaji3/lateralload-go/pkg/lateralload/parser"
	"golang.org/x/sync/errgroup"
)

// Process runs the pipeline: it reads the column, wall and coordinate
// workbooks, joins forces to coordinates, aggregates the points lying on
// the target elevation and writes the report. Nothing is written when any
// step before the report fails.
func Process(ctx context.Context, opts Options) (*models.Result, error) {
	if opts.OutputFile == "" {
		opts.OutputFile = output.DefaultFilename
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	z := *opts.Elevation

	colPath, wallPath, coorPath := opts.ColumnPath(), opts.WallPath(), opts.CoordinatePath()
	if err := checkExist(colPath, wallPath, coorPath); err != nil {
		return nil, err
	}

	logger := loggerFrom(ctx).With().Float64("z", z).Logger()
	logger.Info().
		Str("column", colPath).
		Str("wall", wallPath).
		Str("coordinates", coorPath).
		Msg("processing lateral loads")

	var colTable, wallTable, coorTable *models.Table
	g, gctx := errgroup.WithContext(ctx)
	read := func(path string, dst **models.Table) func() error {
		return func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t, err := parser.ReadTable(path)
			if err != nil {
				return err
			}
			*dst = t
			return nil
		}
	}
	g.Go(read(colPath, &colTable))
	g.Go(read(wallPath, &wallTable))
	g.Go(read(coorPath, &coorTable))
	if err := g.Wait(); err != nil {
		return nil, err
	}

	idx := parser.NewCoordinateIndex(coorTable.Rows)
	colPoints := parser.Join(colTable.Rows, idx)
	wallPoints := parser.Join(wallTable.Rows, idx)

	points := make([]models.ForcePoint, 0, len(colPoints)+len(wallPoints))
	points = append(points, colPoints...)
	points = append(points, wallPoints...)

	stats := models.Stats{
		ColumnRows:     len(colTable.Rows),
		WallRows:       len(wallTable.Rows),
		CoordinateRows: len(coorTable.Rows),
		Unmatched:      parser.Unmatched(points, idx),
	}
	for _, p := range points {
		if p.Located() {
			stats.Located++
		}
	}
	if stats.Unmatched > 0 {
		logger.Warn().Int("count", stats.Unmatched).Msg("joints without coordinates skipped")
	}

	onPlane, err := aggregate.FilterElevation(points, z)
	if err != nil {
		return nil, err
	}
	stats.AtElevation = len(onPlane)

	groups := aggregate.Group(onPlane)
	totals := aggregate.Resultants(groups)

	outPath := opts.OutputPath()
	if err := output.WriteWorkbook(outPath, groups); err != nil {
		return nil, err
	}

	logger.Info().
		Int("points", len(groups)).
		Str("output", outPath).
		Msg("report written")

	return &models.Result{
		Fx:         totals.Fx,
		Fy:         totals.Fy,
		Fz:         totals.Fz,
		Mx:         totals.Mx,
		My:         totals.My,
		Elevation:  z,
		OutputPath: outPath,
		Points:     groups,
		Stats:      stats,
	}, nil
}

// loggerFrom returns the logger carried by ctx, or the global logger.
func loggerFrom(ctx context.Context) zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return *l
	}
	return log.Logger
}

// checkExist stats every path and reports all missing ones together.
func checkExist(paths ...string) error {
	var missing []string
	for _, p := range paths {
		_, err := os.Stat(p)
		if err == nil {
			continue
		}
		if !os.IsNotExist(err) {
			return errors.Wrapf(err, "stat %s", p)
		}
		missing = append(missing, p)
	}
	if len(missing) > 0 {
		return &FileNotFoundError{Paths: missing}
	}
	return nil
}
