package telemetry

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
)

var (
	// ErrMissingColumn is returned if a requested header does not exist
	ErrMissingColumn = errors.New("column not found in telemetry header")
	// ErrMalformedRow is returned for rows that are not a list of floats matching the header
	ErrMalformedRow = errors.New("malformed telemetry row")
)

// Table is a telemetry log held in memory. Column 0 is the timestamp.
type Table struct {
	Headers []string
	Rows    [][]float64
}

// ReadFile reads a telemetry table from filename
func ReadFile(filename string, required ...string) (*Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("Error opening file %v: %w", filename, err)
	}
	defer file.Close()

	return Read(file, required...)
}

// Read parses a whitespace separated table. The first line holds the column
// names, every following line one sample. Empty lines and lines starting
// with '#' are skipped. Every column in required has to be part of the
// header, this is checked before any sample is parsed.
func Read(r io.Reader, required ...string) (*Table, error) {
	t := &Table{}

	reader := bufio.NewReader(r)

	lineNo := 0
	for {
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, fmt.Errorf("Error reading telemetry: %w", readErr)
		}
		if len(raw) == 0 && readErr == io.EOF {
			break
		}
		lineNo++

		line := strings.TrimSpace(raw)
		if len(line) == 0 || line[0] == '#' {
			if readErr == io.EOF {
				break
			}
			continue
		}

		fields := strings.Fields(line)
		if t.Headers == nil {
			t.Headers = fields
			if err := t.require(required); err != nil {
				return nil, err
			}
			if readErr == io.EOF {
				break
			}
			continue
		}

		if len(fields) != len(t.Headers) {
			return nil, fmt.Errorf("%w: line %v has %v columns, header has %v", ErrMalformedRow, lineNo, len(fields), len(t.Headers))
		}

		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %v: %v", ErrMalformedRow, lineNo, err)
			}
			row[i] = v
		}
		t.Rows = append(t.Rows, row)

		if readErr == io.EOF {
			break
		}
	}

	if t.Headers == nil {
		if err := t.require(required); err != nil {
			return nil, err
		}
	}

	return t, nil
}

func (t *Table) require(columns []string) error {
	for _, c := range columns {
		if _, err := t.ColumnIndex(c); err != nil {
			return err
		}
	}
	return nil
}

// ColumnIndex returns the position of the column called name
func (t *Table) ColumnIndex(name string) (int, error) {
	for i, h := range t.Headers {
		if h == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %v", ErrMissingColumn, name)
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.Rows)
}

// Window returns all rows with start <= timestamp <= end.
// The returned table shares the row slices with t.
func (t *Table) Window(start, end float64) *Table {
	ret := &Table{Headers: t.Headers}
	for _, row := range t.Rows {
		if row[0] >= start && row[0] <= end {
			ret.Rows = append(ret.Rows, row)
		}
	}
	return ret
}

// DropNegative removes every row that contains a negative value in any
// column. NaN counts as negative.
func (t *Table) DropNegative() *Table {
	ret := &Table{Headers: t.Headers}
rows:
	for _, row := range t.Rows {
		for _, v := range row {
			if !(v >= 0) {
				continue rows
			}
		}
		ret.Rows = append(ret.Rows, row)
	}
	return ret
}

// SortByTime sorts the rows by timestamp. Samples taken at a fast rate are
// sometimes logged out of order.
func (t *Table) SortByTime() *Table {
	ret := &Table{Headers: t.Headers, Rows: make([][]float64, len(t.Rows))}
	copy(ret.Rows, t.Rows)
	sort.SliceStable(ret.Rows, func(i, j int) bool {
		return ret.Rows[i][0] < ret.Rows[j][0]
	})
	return ret
}

// Column returns a copy of column idx
func (t *Table) Column(idx int) []float64 {
	ret := make([]float64, 0, len(t.Rows))
	for _, row := range t.Rows {
		ret = append(ret, row[idx])
	}
	return ret
}

// ColumnMean returns the arithmetic mean of column idx
func (t *Table) ColumnMean(idx int) (float64, error) {
	if idx < 0 || idx >= len(t.Headers) {
		return 0, fmt.Errorf("column index %v out of range", idx)
	}
	return stats.Mean(t.Column(idx))
}
