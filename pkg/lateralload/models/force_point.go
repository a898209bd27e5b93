package models

import (
	"fmt"

	"gopkg.in/guregu/null.v3"
)

// CoordinateRow is one joint entry of the coordinate table.
type CoordinateRow struct {
	// Joint is the joint identifier (column 2).
	Joint string `json:"joint"`
	// X is the X coordinate (column 6).
	X null.Float `json:"x"`
	// Y is the Y coordinate (column 7).
	Y null.Float `json:"y"`
	// Z is the elevation (column 8).
	Z null.Float `json:"z"`
}

// ForcePoint is a force table row enriched with joint coordinates.
//
// A point without a joint, or whose joint has no coordinate entry, has X, Y
// and Z all invalid and never takes part in elevation filtering.
type ForcePoint struct {
	Joint null.String `json:"joint"`
	X     null.Float  `json:"x"`
	Y     null.Float  `json:"y"`
	Z     null.Float  `json:"z"`

	Fx float64 `json:"fx"`
	Fy float64 `json:"fy"`
	Fz float64 `json:"fz"`
	Mx float64 `json:"mx"`
	My float64 `json:"my"`
	Mz float64 `json:"mz"`
}

// Located reports whether the point carries an elevation.
func (p ForcePoint) Located() bool {
	return p.Z.Valid
}

func (p ForcePoint) String() string {
	return fmt.Sprintf("Joint: %s, X: %s, Y: %s, Z: %s, Fx: %g, Fy: %g, Fz: %g, Mx: %g, My: %g, Mz: %g",
		p.Joint.String, optional(p.X), optional(p.Y), optional(p.Z),
		p.Fx, p.Fy, p.Fz, p.Mx, p.My, p.Mz)
}

func optional(f null.Float) string {
	if !f.Valid {
		return ""
	}
	return fmt.Sprintf("%g", f.Float64)
}
