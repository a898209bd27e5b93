package parser

import (
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/ukaji3/lateralload-go/pkg/lateralload/models"
	"gopkg.in/guregu/null.v3"
)

// CoordinateIndex maps joint identifiers to the first coordinate row that
// carries them. Later rows repeating an identifier are ignored.
type CoordinateIndex struct {
	byJoint    map[string]models.CoordinateRow
	duplicates []string
	rows       int
}

// NewCoordinateIndex indexes the rows of a coordinate table.
func NewCoordinateIndex(rows []models.RawRow) *CoordinateIndex {
	idx := &CoordinateIndex{
		byJoint: make(map[string]models.CoordinateRow, len(rows)),
		rows:    len(rows),
	}
	seenDup := make(map[string]bool)

	for _, row := range rows {
		coord := ParseCoordinateRow(row)
		if coord.Joint == "" {
			continue
		}
		if _, exists := idx.byJoint[coord.Joint]; exists {
			if !seenDup[coord.Joint] {
				seenDup[coord.Joint] = true
				idx.duplicates = append(idx.duplicates, coord.Joint)
			}
			continue
		}
		idx.byJoint[coord.Joint] = coord
	}

	if len(idx.duplicates) > 0 {
		log.Warn().
			Strs("joints", idx.duplicates).
			Msg("duplicate joint ids in coordinate table, first occurrence used")
	}

	return idx
}

// ParseCoordinateRow reads the joint id and X/Y/Z of one coordinate table row.
func ParseCoordinateRow(row models.RawRow) models.CoordinateRow {
	return models.CoordinateRow{
		Joint: row.Cell(CoordJointCol),
		X:     ParseNumber(row.Cell(CoordXCol)),
		Y:     ParseNumber(row.Cell(CoordYCol)),
		Z:     ParseNumber(row.Cell(CoordZCol)),
	}
}

// Lookup returns the first coordinate row for joint.
func (idx *CoordinateIndex) Lookup(joint string) (models.CoordinateRow, bool) {
	coord, ok := idx.byJoint[joint]
	return coord, ok
}

// Len returns the number of distinct joints indexed.
func (idx *CoordinateIndex) Len() int {
	return len(idx.byJoint)
}

// Rows returns the number of table rows the index was built from.
func (idx *CoordinateIndex) Rows() int {
	return idx.rows
}

// Duplicates returns joint ids that appear more than once, in first-seen order.
func (idx *CoordinateIndex) Duplicates() []string {
	return idx.duplicates
}

// Join turns force table rows into force points, attaching coordinates from
// idx. The result has one point per input row, in input order.
func Join(rows []models.RawRow, idx *CoordinateIndex) []models.ForcePoint {
	return lo.Map(rows, func(row models.RawRow, _ int) models.ForcePoint {
		return joinRow(row, idx)
	})
}

func joinRow(row models.RawRow, idx *CoordinateIndex) models.ForcePoint {
	p := models.ForcePoint{
		Fx: NumberOrZero(row.Cell(ForceFxCol)),
		Fy: NumberOrZero(row.Cell(ForceFyCol)),
		Fz: NumberOrZero(row.Cell(ForceFzCol)),
		Mx: NumberOrZero(row.Cell(ForceMxCol)),
		My: NumberOrZero(row.Cell(ForceMyCol)),
		Mz: NumberOrZero(row.Cell(ForceMzCol)),
	}

	joint := row.Cell(ForceJointCol)
	if joint == "" {
		return p
	}
	p.Joint = null.StringFrom(joint)

	if coord, ok := idx.Lookup(joint); ok {
		p.X = coord.X
		p.Y = coord.Y
		p.Z = coord.Z
	}
	return p
}

// Unmatched counts points that name a joint but found no coordinate row.
func Unmatched(points []models.ForcePoint, idx *CoordinateIndex) int {
	return lo.CountBy(points, func(p models.ForcePoint) bool {
		if !p.Joint.Valid {
			return false
		}
		_, ok := idx.Lookup(p.Joint.String)
		return !ok
	})
}
