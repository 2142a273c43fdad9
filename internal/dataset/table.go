package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-stats-service/internal/timeutil"
)

const utf8BOM = "\ufeff"

// table is one parsed CSV file addressed by header name.
type table struct {
	name   string
	header map[string]int
	rows   [][]string
}

func readTable(fsys fs.FS, name, file string) (*table, error) {
	f, err := fsys.Open(file)
	if err != nil {
		return nil, unavailable(name, file, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	head, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, unavailable(name, file, errors.New("missing header row"))
	}
	if err != nil {
		return nil, unavailable(name, file, err)
	}

	t := &table{name: name, header: make(map[string]int, len(head))}
	for i, col := range head {
		key := headerKey(col)
		if _, dup := t.header[key]; !dup {
			t.header[key] = i
		}
	}
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, unavailable(name, file, err)
		}
		t.rows = append(t.rows, rec)
	}
	return t, nil
}

func unavailable(name, file string, err error) error {
	return fmt.Errorf("%w: %s (%s): %w", ErrTableUnavailable, name, file, err)
}

func headerKey(col string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(col, utf8BOM)))
}

// column returns the index of the first header present among names.
func (t *table) column(names ...string) (int, bool) {
	for _, n := range names {
		if i, ok := t.header[headerKey(n)]; ok {
			return i, true
		}
	}
	return -1, false
}

func (t *table) has(names ...string) bool {
	_, ok := t.column(names...)
	return ok
}

// row binds cell lookups to one record.
type row struct {
	t     *table
	cells []string
}

func (t *table) each(fn func(row)) {
	for _, rec := range t.rows {
		fn(row{t: t, cells: rec})
	}
}

func (r row) cell(names ...string) (string, bool) {
	i, ok := r.t.column(names...)
	if !ok || i >= len(r.cells) {
		return "", false
	}
	return strings.TrimSpace(r.cells[i]), true
}

// str returns the trimmed cell, or "" when the column or cell is absent.
func (r row) str(names ...string) string {
	v, _ := r.cell(names...)
	return v
}

// optStr returns nil for absent or blank cells.
func (r row) optStr(names ...string) *string {
	v, ok := r.cell(names...)
	if !ok || v == "" {
		return nil
	}
	return &v
}

func (r row) at(i int) string {
	if i < 0 || i >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[i])
}

// floatAt parses the cell at column i; blank, unparseable and non-finite cells are missing.
func (r row) floatAt(i int) (float64, bool) {
	v := r.at(i)
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// integer accepts whole numbers, including float renderings such as "2019.0".
func (r row) integer(names ...string) (*int, bool) {
	v, ok := r.cell(names...)
	if !ok || v == "" {
		return nil, false
	}
	if n, err := strconv.Atoi(v); err == nil {
		return &n, true
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return nil, false
	}
	n := int(f)
	return &n, true
}

func (r row) date(names ...string) (*time.Time, bool) {
	v, ok := r.cell(names...)
	if !ok || v == "" {
		return nil, false
	}
	t, err := timeutil.ParseFlexible(v)
	if err != nil {
		return nil, false
	}
	return &t, true
}
