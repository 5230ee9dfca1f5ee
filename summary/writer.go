package summary

import (
	"fmt"
	"io"
)

const (
	headerFormat = "%35s %7s %8s %9s %10s\n"
	rowFormat    = "%35s %7.2f %8.2f %9.2f %10.2f\n"
)

// Writer writes the fixed width summary file incrementally
type Writer struct {
	w io.Writer
}

// NewWriter writes the header line to w and returns the writer
func NewWriter(w io.Writer) (*Writer, error) {
	_, err := fmt.Fprintf(w, headerFormat, "App", "Time(s)", "Power(W)", "Energy(J)", "ED")
	if err != nil {
		return nil, fmt.Errorf("Error while writing summary header: %w", err)
	}
	return &Writer{w: w}, nil
}

// WriteRow writes a single row
func (sw *Writer) WriteRow(r Row) error {
	_, err := fmt.Fprintf(sw.w, rowFormat, r.App, r.Time, r.Power, r.Energy, r.ED)
	if err != nil {
		return fmt.Errorf("Error while writing summary row: %w", err)
	}
	return nil
}

// WriteAverage writes the average over s as the final row. If s is empty
// nothing is written and ErrNoQualifyingIntervals is returned.
func (sw *Writer) WriteAverage(s *Summary) error {
	avg, err := s.Average()
	if err != nil {
		return err
	}
	return sw.WriteRow(avg)
}
