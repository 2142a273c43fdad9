package boxscores

import "strings"

// Field identifies one numeric box-score column.
type Field int

const (
	Points Field = iota
	Assists
	Blocks
	Steals
	FieldGoalsAttempted
	FieldGoalsMade
	FieldGoalsPercentage
	ThreePointersAttempted
	ThreePointersMade
	ThreePointersPercentage
	FreeThrowsAttempted
	FreeThrowsMade
	FreeThrowsPercentage
	ReboundsDefensive
	ReboundsOffensive
	ReboundsTotal
	FoulsPersonal
	Turnovers
	PlusMinusPoints
	TeamScore
	OpponentScore

	fieldCount
)

var fieldKeys = [fieldCount]string{
	Points:                  "points",
	Assists:                 "assists",
	Blocks:                  "blocks",
	Steals:                  "steals",
	FieldGoalsAttempted:     "fieldGoalsAttempted",
	FieldGoalsMade:          "fieldGoalsMade",
	FieldGoalsPercentage:    "fieldGoalsPercentage",
	ThreePointersAttempted:  "threePointersAttempted",
	ThreePointersMade:       "threePointersMade",
	ThreePointersPercentage: "threePointersPercentage",
	FreeThrowsAttempted:     "freeThrowsAttempted",
	FreeThrowsMade:          "freeThrowsMade",
	FreeThrowsPercentage:    "freeThrowsPercentage",
	ReboundsDefensive:       "reboundsDefensive",
	ReboundsOffensive:       "reboundsOffensive",
	ReboundsTotal:           "reboundsTotal",
	FoulsPersonal:           "foulsPersonal",
	Turnovers:               "turnovers",
	PlusMinusPoints:         "plusMinusPoints",
	TeamScore:               "teamScore",
	OpponentScore:           "opponentScore",
}

// TeamFields are the columns averaged for teams, in output order.
var TeamFields = []Field{
	Assists, Blocks, Steals,
	FieldGoalsAttempted, FieldGoalsMade, FieldGoalsPercentage,
	ThreePointersAttempted, ThreePointersMade, ThreePointersPercentage,
	FreeThrowsAttempted, FreeThrowsMade, FreeThrowsPercentage,
	ReboundsDefensive, ReboundsOffensive, ReboundsTotal,
	FoulsPersonal, Turnovers, PlusMinusPoints,
	TeamScore, OpponentScore,
}

// PlayerFields are the columns averaged for players, in output order.
var PlayerFields = []Field{
	Points, Assists, Blocks, Steals,
	FieldGoalsAttempted, FieldGoalsMade, FieldGoalsPercentage,
	ThreePointersAttempted, ThreePointersMade, ThreePointersPercentage,
	FreeThrowsAttempted, FreeThrowsMade, FreeThrowsPercentage,
	ReboundsDefensive, ReboundsOffensive, ReboundsTotal,
	FoulsPersonal, Turnovers, PlusMinusPoints,
}

// Key is the column header and JSON key of the field.
func (f Field) Key() string {
	if f < 0 || f >= fieldCount {
		return ""
	}
	return fieldKeys[f]
}

func (f Field) String() string { return f.Key() }

// IsPercentage reports whether the field holds a shooting percentage.
func (f Field) IsPercentage() bool {
	return f == FieldGoalsPercentage || f == ThreePointersPercentage || f == FreeThrowsPercentage
}

// FieldByKey resolves a column header to a field, ignoring case and surrounding space.
func FieldByKey(key string) (Field, bool) {
	key = strings.TrimSpace(key)
	for f := Field(0); f < fieldCount; f++ {
		if strings.EqualFold(fieldKeys[f], key) {
			return f, true
		}
	}
	return 0, false
}

// FieldSet is a set of fields.
type FieldSet uint32

// NewFieldSet builds a set from fields.
func NewFieldSet(fields ...Field) FieldSet {
	var s FieldSet
	for _, f := range fields {
		s = s.With(f)
	}
	return s
}

// With returns the set including f.
func (s FieldSet) With(f Field) FieldSet {
	if f < 0 || f >= fieldCount {
		return s
	}
	return s | 1<<uint(f)
}

// Has reports membership.
func (s FieldSet) Has(f Field) bool {
	if f < 0 || f >= fieldCount {
		return false
	}
	return s&(1<<uint(f)) != 0
}

// Select keeps the fields of want that are in the set, preserving want's order.
func (s FieldSet) Select(want []Field) []Field {
	out := make([]Field, 0, len(want))
	for _, f := range want {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}
