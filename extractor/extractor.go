package extractor

import (
	"errors"
	"fmt"
	"os"

	"github.com/jbreitbart/appenergy/execlog"
	"github.com/jbreitbart/appenergy/summary"
	"github.com/jbreitbart/appenergy/telemetry"
	log "github.com/sirupsen/logrus"
)

// ErrNoQualifyingIntervals is returned if no app had enough samples to be
// part of the summary. The summary file then only holds the header.
var ErrNoQualifyingIntervals = summary.ErrNoQualifyingIntervals

type extraction struct {
	cfg      *Config
	data     *telemetry.Table
	powerIdx int
	sum      *summary.Summary
	out      *summary.Writer
}

// Run reads the telemetry and execution log of cfg.Tag, writes one report per
// app and the summary file. The returned summary is valid even if
// ErrNoQualifyingIntervals is returned.
func Run(cfg Config) (*summary.Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.checkInputs(); err != nil {
		return nil, err
	}

	log.WithField("file", cfg.LogFile()).Infoln("Processing")

	data, err := telemetry.ReadFile(cfg.LogFile(), cfg.PowerColumn)
	if errors.Is(err, telemetry.ErrMissingColumn) {
		return nil, fmt.Errorf("%w: %v has no %v column", ErrMissingRequiredColumn, cfg.LogFile(), cfg.PowerColumn)
	}
	if err != nil {
		return nil, err
	}
	powerIdx, err := data.ColumnIndex(cfg.PowerColumn)
	if err != nil {
		return nil, err
	}
	log.WithField("rows", data.Len()).Debugln("telemetry loaded")

	summaryFile, err := os.Create(cfg.SummaryFile())
	if err != nil {
		return nil, fmt.Errorf("Error while creating file: %w", err)
	}
	defer summaryFile.Close()

	out, err := summary.NewWriter(summaryFile)
	if err != nil {
		return nil, err
	}

	e := &extraction{
		cfg:      &cfg,
		data:     data,
		powerIdx: powerIdx,
		sum:      &summary.Summary{},
		out:      out,
	}
	e.sum.SetCommandline(cfg.LogDir, cfg.RepDir, cfg.Tag, cfg.Suite, cfg.MinSamples, cfg.PowerColumn)

	scanner := execlog.NewScanner(cfg.Suite)
	if err := scanner.ScanFile(cfg.OutFile(), e.process); err != nil {
		return nil, err
	}

	if err := out.WriteAverage(e.sum); err != nil {
		if errors.Is(err, summary.ErrNoQualifyingIntervals) {
			return e.sum, err
		}
		return nil, err
	}

	if err := summaryFile.Close(); err != nil {
		return nil, fmt.Errorf("Error while closing summary: %w", err)
	}

	return e.sum, nil
}

// process is called for every interval found in the execution log
func (e *extraction) process(i execlog.Interval) error {
	appData := e.data.Window(i.Start, i.End).DropNegative().SortByTime()

	if appData.Len() < e.cfg.MinSamples {
		log.WithFields(log.Fields{
			"app":     i.Name,
			"samples": appData.Len(),
			"min":     e.cfg.MinSamples,
		}).Debugln("Not enough samples, skipping app")
		return nil
	}

	if err := appData.WriteReportFile(e.cfg.ReportFile(i.Name)); err != nil {
		return err
	}

	power, err := appData.ColumnMean(e.powerIdx)
	if err != nil {
		return fmt.Errorf("Error while computing average power of %v: %w", i.Name, err)
	}

	row := summary.NewRow(i.Name, i.Start, i.End, power)
	e.sum.Add(row)

	log.WithFields(log.Fields{
		"app":     row.App,
		"runtime": row.Time,
		"power":   row.Power,
		"energy":  row.Energy,
	}).Infoln("app extracted")

	return e.out.WriteRow(row)
}
