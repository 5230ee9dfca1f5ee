package summary

import (
	"errors"

	"github.com/montanaflynn/stats"
)

// AverageLabel is the app name used for the final row
const AverageLabel = "Average"

// ErrNoQualifyingIntervals is returned if an average is requested for an empty summary
var ErrNoQualifyingIntervals = errors.New("no app had enough telemetry samples")

// NewRow computes the statistics of an app that ran from start to end with
// the given average power
func NewRow(app string, start, end, power float64) Row {
	var r Row
	r.App = app
	r.Time = end - start
	r.Power = power
	r.Energy = r.Power * r.Time
	r.ED = r.Time * r.Energy
	return r
}

// Add appends a row
func (s *Summary) Add(r Row) {
	s.Rows = append(s.Rows, r)
}

// Len returns the number of rows
func (s *Summary) Len() int {
	return len(s.Rows)
}

// Average returns the mean of every statistic over all rows
func (s *Summary) Average() (Row, error) {
	if len(s.Rows) == 0 {
		return Row{}, ErrNoQualifyingIntervals
	}

	times := make([]float64, 0, len(s.Rows))
	powers := make([]float64, 0, len(s.Rows))
	energies := make([]float64, 0, len(s.Rows))
	eds := make([]float64, 0, len(s.Rows))
	for _, r := range s.Rows {
		times = append(times, r.Time)
		powers = append(powers, r.Power)
		energies = append(energies, r.Energy)
		eds = append(eds, r.ED)
	}

	var avg Row
	avg.App = AverageLabel
	// stats.Mean only fails on empty input
	avg.Time, _ = stats.Mean(times)
	avg.Power, _ = stats.Mean(powers)
	avg.Energy, _ = stats.Mean(energies)
	avg.ED, _ = stats.Mean(eds)

	return avg, nil
}

// SetCommandline stores the options the summary was created with
func (s *Summary) SetCommandline(logDir, repDir, tag, suite string, minSamples int, powerColumn string) {
	s.Commandline.LogDir = logDir
	s.Commandline.RepDir = repDir
	s.Commandline.Tag = tag
	s.Commandline.Suite = suite
	s.Commandline.MinSamples = minSamples
	s.Commandline.PowerColumn = powerColumn
}
