package models

// AggregatedPoint holds the summed forces of all force points sharing one
// exact (X, Y, Z) coordinate.
type AggregatedPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`

	Fx float64 `json:"fx"`
	Fy float64 `json:"fy"`
	Fz float64 `json:"fz"`
	Mx float64 `json:"mx"`
	My float64 `json:"my"`
	Mz float64 `json:"mz"`

	// Count is the number of force points merged into this group.
	Count int `json:"count"`
}

// Values returns the point in report column order: X, Y, Z, Fx, Fy, Fz, Mx, My, Mz.
func (a AggregatedPoint) Values() []float64 {
	return []float64{a.X, a.Y, a.Z, a.Fx, a.Fy, a.Fz, a.Mx, a.My, a.Mz}
}

// Stats counts rows as they flow through a pipeline run.
type Stats struct {
	ColumnRows     int `json:"column_rows"`
	WallRows       int `json:"wall_rows"`
	CoordinateRows int `json:"coordinate_rows"`
	// Located is the number of force points with a resolved elevation.
	Located int `json:"located"`
	// Unmatched is the number of force points whose joint had no coordinate entry.
	Unmatched int `json:"unmatched"`
	// AtElevation is the number of force points kept by the elevation filter.
	AtElevation int `json:"at_elevation"`
}

// Result is the outcome of one pipeline run.
type Result struct {
	// Fx, Fy and Fz are the resultant base forces.
	Fx float64 `json:"fx"`
	Fy float64 `json:"fy"`
	Fz float64 `json:"fz"`
	// Mx and My are the moments transferred to the origin.
	Mx float64 `json:"mx"`
	My float64 `json:"my"`

	Elevation  float64           `json:"elevation"`
	OutputPath string            `json:"output_path"`
	Points     []AggregatedPoint `json:"points,omitempty"`
	Stats      Stats             `json:"stats"`
}
