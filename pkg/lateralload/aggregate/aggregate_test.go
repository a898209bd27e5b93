package aggregate

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/lateralload-go/pkg/lateralload/models"
	"gopkg.in/guregu/null.v3"
)

func at(x, y, z float64) models.ForcePoint {
	return models.ForcePoint{
		Joint: null.StringFrom("J"),
		X:     null.FloatFrom(x),
		Y:     null.FloatFrom(y),
		Z:     null.FloatFrom(z),
	}
}

func TestAggregateSingleColumn(t *testing.T) {
	p := at(2000, 0, 3000)
	p.Fz = 10
	p.My = 5

	groups, totals, err := Aggregate([]models.ForcePoint{p}, 3000)
	require.NoError(t, err)
	require.Len(t, groups, 1)

	assert.Equal(t, models.AggregatedPoint{X: 2000, Y: 0, Z: 3000, Fz: 10, My: 5, Count: 1}, groups[0])
	assert.Equal(t, 10.0, totals.Fz)
	// -(10*2000)/1000 - 5
	assert.Equal(t, -25.0, totals.My)
	assert.Equal(t, 0.0, totals.Mx)
}

func TestFilterElevationNoCoordinateData(t *testing.T) {
	points := []models.ForcePoint{
		{Fz: 10},
		{Joint: null.StringFrom("J1"), Fz: 5},
	}

	_, err := FilterElevation(points, 0)
	assert.True(t, errors.Is(err, ErrNoCoordinateData))

	_, _, err = Aggregate(nil, 0)
	assert.True(t, errors.Is(err, ErrNoCoordinateData))
}

func TestFilterElevationNoPointsAtElevation(t *testing.T) {
	points := []models.ForcePoint{at(0, 0, 3000), at(0, 0, 6000)}

	_, err := FilterElevation(points, 4500)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoPointsAtElevation))
	assert.Contains(t, err.Error(), "4500")
}

func TestFilterElevationTolerance(t *testing.T) {
	points := []models.ForcePoint{
		at(1, 0, 3000),
		at(2, 0, 3000+Tolerance/2),
		at(3, 0, 3000-Tolerance/2),
		at(4, 0, 3000+2*Tolerance),
		{Fz: 99}, // never located
		at(5, 0, 0),
	}

	kept, err := FilterElevation(points, 3000)
	require.NoError(t, err)
	require.Len(t, kept, 3)
	assert.Equal(t, 1.0, kept[0].X.Float64)
	assert.Equal(t, 2.0, kept[1].X.Float64)
	assert.Equal(t, 3.0, kept[2].X.Float64)
}

func TestFilterElevationIgnoresUnmatchedJoints(t *testing.T) {
	unmatched := models.ForcePoint{Joint: null.StringFrom("J404"), Fz: 1000}
	located := at(0, 0, 0)
	located.Fz = 1

	groups, totals, err := Aggregate([]models.ForcePoint{unmatched, located}, 0)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, 1.0, totals.Fz)
}

func TestGroupExactEquality(t *testing.T) {
	a := at(1000, 2000, 3000)
	a.Fx = 1
	b := at(1000, 2000, 3000)
	b.Fx = 2
	// Within the elevation tolerance but not the same coordinate.
	c := at(1000, 2000, 3000+Tolerance/10)
	c.Fx = 4

	groups := Group([]models.ForcePoint{a, b, c})
	require.Len(t, groups, 2)
	assert.Equal(t, 3.0, groups[0].Fx)
	assert.Equal(t, 2, groups[0].Count)
	assert.Equal(t, 4.0, groups[1].Fx)
	assert.Equal(t, 1, groups[1].Count)
}

func TestGroupMissingXYReadAsZero(t *testing.T) {
	noXY := models.ForcePoint{Joint: null.StringFrom("J1"), Z: null.FloatFrom(0), Fz: 3}
	origin := at(0, 0, 0)
	origin.Fz = 4

	groups := Group([]models.ForcePoint{noXY, origin})
	require.Len(t, groups, 1)
	assert.Equal(t, 7.0, groups[0].Fz)
	assert.Equal(t, 0.0, groups[0].X)
	assert.Equal(t, 0.0, groups[0].Y)
}

func TestGroupInsertionOrder(t *testing.T) {
	var points []models.ForcePoint
	for _, x := range []float64{5, 3, 5, 9, 1, 3} {
		p := at(x, 0, 0)
		p.Fz = x
		points = append(points, p)
	}

	groups := Group(points)
	require.Len(t, groups, 4)
	xs := make([]float64, len(groups))
	for i, g := range groups {
		xs[i] = g.X
	}
	assert.Equal(t, []float64{5, 3, 9, 1}, xs)
	assert.Equal(t, 10.0, groups[0].Fz)
	assert.Equal(t, 6.0, groups[1].Fz)
}

func TestGroupSumsEveryComponent(t *testing.T) {
	p := models.ForcePoint{Z: null.FloatFrom(0), Fx: 1, Fy: 2, Fz: 3, Mx: 4, My: 5, Mz: 6}
	groups := Group([]models.ForcePoint{p, p, p})
	require.Len(t, groups, 1)
	assert.Equal(t, []float64{0, 0, 0, 3, 6, 9, 12, 15, 18}, groups[0].Values())
}

func TestResultants(t *testing.T) {
	groups := []models.AggregatedPoint{
		{X: 0, Y: 0, Fx: 10, Fy: -5, Fz: 100, Mx: 1, My: 2},
		{X: 6000, Y: 0, Fx: 20, Fy: 5, Fz: 200, Mx: 3, My: 4},
		{X: 6000, Y: 8000, Fx: 30, Fy: 0, Fz: 300, Mx: 5, My: 6},
	}

	totals := Resultants(groups)
	assert.InDelta(t, 60, totals.Fx, 1e-9)
	assert.InDelta(t, 0, totals.Fy, 1e-9)
	assert.InDelta(t, 600, totals.Fz, 1e-9)
	// My = -(200*6000 + 300*6000)/1000 - (2+4+6)
	assert.InDelta(t, -3000-12, totals.My, 1e-9)
	// Mx = -(300*8000)/1000 - (1+3+5)
	assert.InDelta(t, -2400-9, totals.Mx, 1e-9)
}

func TestResultantsEqualSumOfGroups(t *testing.T) {
	var points []models.ForcePoint
	for i := 0; i < 40; i++ {
		p := at(float64(i%7)*1250.5, float64(i%3)*-800.25, 4200)
		p.Fx = 0.1 * float64(i)
		p.Fy = -0.3 * float64(i)
		p.Fz = 12.75 + float64(i)
		p.Mx = math.Sin(float64(i))
		p.My = math.Cos(float64(i))
		points = append(points, p)
	}

	groups, totals, err := Aggregate(points, 4200)
	require.NoError(t, err)

	var fx, fy, fz, mx, my, fzx, fzy float64
	for _, p := range points {
		fx += p.Fx
		fy += p.Fy
		fz += p.Fz
		mx += p.Mx
		my += p.My
		fzx += p.Fz * p.X.Float64
		fzy += p.Fz * p.Y.Float64
	}

	assert.Len(t, groups, 21)
	assert.InDelta(t, fx, totals.Fx, 1e-6)
	assert.InDelta(t, fy, totals.Fy, 1e-6)
	assert.InDelta(t, fz, totals.Fz, 1e-6)
	assert.InDelta(t, -fzx/1000-my, totals.My, 1e-6)
	assert.InDelta(t, -fzy/1000-mx, totals.Mx, 1e-6)
}

func TestResultantsEmpty(t *testing.T) {
	assert.Equal(t, Totals{}, Resultants(nil))
}
