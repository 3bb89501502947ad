package dataset

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"fedtools/pkg/dates"
)

// Row is one dated document body in the assembled table.
type Row struct {
	Date  time.Time
	Label string
	Text  string
}

// Dataset is a single-column table of document bodies, sorted ascending by
// publication date, with duplicate dates collapsed.
type Dataset struct {
	column string
	rows   []Row
}

// Assemble pairs dates with bodies positionally and builds the table:
// ascending date sort, first-wins deduplication by exact date (several
// source labels can resolve to the same meeting date), and whitespace
// normalization of every body.
func Assemble(column string, dts []dates.Date, bodies []string) (*Dataset, error) {
	if len(dts) != len(bodies) {
		return nil, fmt.Errorf("dates and bodies length mismatch: %d vs %d", len(dts), len(bodies))
	}

	rows := make([]Row, len(dts))
	for i, d := range dts {
		rows[i] = Row{Date: d.Time(), Label: d.String(), Text: Normalize(bodies[i])}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})

	deduped := rows[:0]
	for _, row := range rows {
		if n := len(deduped); n > 0 && deduped[n-1].Date.Equal(row.Date) {
			continue
		}
		deduped = append(deduped, row)
	}

	return &Dataset{column: column, rows: deduped}, nil
}

var normalizer = strings.NewReplacer(
	"\n", " ",
	"\r", " ",
	"\t", "",
	"\u00a0", "",
)

// Normalize flattens a body text to a single line: newlines and carriage
// returns become spaces, tabs and non-breaking spaces are deleted, and the
// result is stripped. Normalizing an already-normalized body is a no-op.
func Normalize(text string) string {
	return strings.TrimSpace(normalizer.Replace(text))
}

// Column returns the table's column name.
func (d *Dataset) Column() string { return d.column }

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.rows) }

// Rows returns the rows in ascending date order.
func (d *Dataset) Rows() []Row { return d.rows }

// Get returns the body text for an exact publication date.
func (d *Dataset) Get(date time.Time) (string, bool) {
	i := sort.Search(len(d.rows), func(i int) bool {
		return !d.rows[i].Date.Before(date)
	})
	if i < len(d.rows) && d.rows[i].Date.Equal(date) {
		return d.rows[i].Text, true
	}
	return "", false
}
