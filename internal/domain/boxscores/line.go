package boxscores

// Line holds one game's numeric values; each field is individually optional.
type Line struct {
	values [fieldCount]float64
	set    FieldSet
}

// Set records a value for the field.
func (l *Line) Set(f Field, v float64) {
	if f < 0 || f >= fieldCount {
		return
	}
	l.values[f] = v
	l.set = l.set.With(f)
}

// Get returns the field's value and whether it was recorded.
func (l Line) Get(f Field) (float64, bool) {
	if !l.set.Has(f) {
		return 0, false
	}
	return l.values[f], true
}

// LineOf builds a line from a field/value map; convenient for fixtures.
func LineOf(values map[Field]float64) Line {
	var l Line
	for f, v := range values {
		l.Set(f, v)
	}
	return l
}
