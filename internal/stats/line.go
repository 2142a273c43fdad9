package stats

import (
	"math"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/boxscores"
)

const (
	bulkDecimals    = 3
	perGameDecimals = 1
	percentDecimals = 1
)

// Stat is one averaged field. Value is nil when no game contributed a finite value.
type Stat struct {
	Field boxscores.Field
	Value *float64
}

// Line is an ordered set of averaged fields. Fields absent from the source table are
// not present at all.
type Line []Stat

// Get returns the stat for f and whether the field is present.
func (l Line) Get(f boxscores.Field) (*float64, bool) {
	for _, s := range l {
		if s.Field == f {
			return s.Value, true
		}
	}
	return nil, false
}

// accumulator sums non-missing values per field for one group.
type accumulator struct {
	fields []boxscores.Field
	sums   []float64
	counts []int
}

func newAccumulator(fields []boxscores.Field) *accumulator {
	return &accumulator{
		fields: fields,
		sums:   make([]float64, len(fields)),
		counts: make([]int, len(fields)),
	}
}

func (a *accumulator) add(line boxscores.Line) {
	for i, f := range a.fields {
		v, ok := line.Get(f)
		if !ok || math.IsNaN(v) {
			continue
		}
		a.sums[i] += v
		a.counts[i]++
	}
}

// line finalizes the means: regular fields are rounded to decimals, percentages are
// rescaled to 0-100 and rounded to one decimal.
func (a *accumulator) line(decimals int) Line {
	out := make(Line, len(a.fields))
	for i, f := range a.fields {
		out[i] = Stat{Field: f}
		if a.counts[i] == 0 {
			continue
		}
		out[i].Value = finalize(f, a.sums[i]/float64(a.counts[i]), decimals)
	}
	return out
}

func finalize(f boxscores.Field, mean float64, decimals int) *float64 {
	var v float64
	if f.IsPercentage() {
		v = PercentScale(round(mean, bulkDecimals))
	} else {
		v = round(mean, decimals)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// PercentScale expresses a shooting percentage on a 0-100 scale with one decimal.
// Values at or below 1 are taken to be fractions.
func PercentScale(v float64) float64 {
	if v <= 1 {
		v *= 100
	}
	return round(v, percentDecimals)
}

// round uses half-to-even so results match the reference exports.
func round(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.RoundToEven(v*p) / p
}
