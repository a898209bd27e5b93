// Package aggregate filters located force points to one elevation plane and
// sums them per unique coordinate.
package aggregate

import (
	"errors"
	"fmt"
	"math"

	"github.com/samber/lo"
	"github.com/ukaji3/lateralload-go/pkg/lateralload/models"
)

// Tolerance is the absolute tolerance used when matching a point's Z to the
// target elevation.
const Tolerance = 1e-6

var (
	// ErrNoCoordinateData indicates no force point resolved to a coordinate.
	ErrNoCoordinateData = errors.New("no coordinate data found")
	// ErrNoPointsAtElevation indicates no located force point lies on the target elevation.
	ErrNoPointsAtElevation = errors.New("no points found at elevation")
)

// FilterElevation keeps the points whose Z lies within Tolerance of z.
// Points without Z are dropped first; if none remain ErrNoCoordinateData is
// returned, and ErrNoPointsAtElevation if none lie on the plane.
func FilterElevation(points []models.ForcePoint, z float64) ([]models.ForcePoint, error) {
	located := lo.Filter(points, func(p models.ForcePoint, _ int) bool {
		return p.Located()
	})
	if len(located) == 0 {
		return nil, ErrNoCoordinateData
	}

	onPlane := lo.Filter(located, func(p models.ForcePoint, _ int) bool {
		return math.Abs(p.Z.Float64-z) < Tolerance
	})
	if len(onPlane) == 0 {
		return nil, fmt.Errorf("%w: Z = %g", ErrNoPointsAtElevation, z)
	}
	return onPlane, nil
}

type key struct {
	x, y, z float64
}

// Group merges points sharing the exact same (X, Y, Z), missing X or Y being
// read as 0. No tolerance applies here: coordinates must be identical to
// merge. Groups are returned in the order their first point was seen.
func Group(points []models.ForcePoint) []models.AggregatedPoint {
	index := make(map[key]int)
	var groups []models.AggregatedPoint

	for _, p := range points {
		k := key{
			x: p.X.ValueOrZero(),
			y: p.Y.ValueOrZero(),
			z: p.Z.ValueOrZero(),
		}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, models.AggregatedPoint{X: k.x, Y: k.y, Z: k.z})
		}

		g := &groups[i]
		g.Fx += p.Fx
		g.Fy += p.Fy
		g.Fz += p.Fz
		g.Mx += p.Mx
		g.My += p.My
		g.Mz += p.Mz
		g.Count++
	}

	return groups
}

// Aggregate filters points to elevation z, groups them and computes the
// resultants.
func Aggregate(points []models.ForcePoint, z float64) ([]models.AggregatedPoint, Totals, error) {
	onPlane, err := FilterElevation(points, z)
	if err != nil {
		return nil, Totals{}, err
	}
	groups := Group(onPlane)
	return groups, Resultants(groups), nil
}
