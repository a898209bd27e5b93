// Package parser reads force and coordinate tables and joins them into
// located force points.
package parser

// MillimetresPerMetre converts coordinate offsets (mm) into the metre lever
// arm used for moment transfer. Forces are in kN and moments in kN-m, so
// Fz [kN] * X [mm] / 1000 = M [kN-m].
const MillimetresPerMetre = 1000.0

// Force table schema (1-based positions within the used range).
const (
	ForceJointCol = 5
	ForceFxCol    = 8
	ForceFyCol    = 9
	ForceFzCol    = 10
	ForceMxCol    = 11
	ForceMyCol    = 12
	ForceMzCol    = 13
)

// Coordinate table schema (1-based positions within the used range).
const (
	CoordJointCol = 2
	CoordXCol     = 6
	CoordYCol     = 7
	CoordZCol     = 8
)
