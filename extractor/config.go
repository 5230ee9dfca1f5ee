package extractor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jbreitbart/appenergy/execlog"
)

var (
	// ErrInvalidDirectory is returned if a log or report directory does not exist
	ErrInvalidDirectory = errors.New("invalid directory")
	// ErrMissingInputFile is returned if <tag>_log.txt or <tag>_out.txt does not exist
	ErrMissingInputFile = errors.New("input file does not exist")
	// ErrMissingRequiredColumn is returned if the telemetry log has no power column
	ErrMissingRequiredColumn = errors.New("required column missing in telemetry log")
)

const (
	// DefaultMinSamples is the minimum number of telemetry rows an app needs
	DefaultMinSamples = 31
	// DefaultPowerColumn is the telemetry column holding the average power
	DefaultPowerColumn = "CPUPower"
)

// Config describes a single extraction run
type Config struct {
	// LogDir contains <Tag>_log.txt and <Tag>_out.txt
	LogDir string
	// RepDir receives the per app reports and the summary
	RepDir string
	Tag    string

	Suite       string
	MinSamples  int
	PowerColumn string
}

// Defaults returns a config with every optional field set
func Defaults() Config {
	return Config{
		Suite:       execlog.DefaultSuite,
		MinSamples:  DefaultMinSamples,
		PowerColumn: DefaultPowerColumn,
	}
}

// Validate checks the directories and fills in defaults for optional fields
func (c *Config) Validate() error {
	for _, dir := range []string{c.LogDir, c.RepDir} {
		if err := checkDir(dir); err != nil {
			return err
		}
	}
	if c.Tag == "" {
		return errors.New("tag must not be empty")
	}

	if c.Suite == "" {
		c.Suite = execlog.DefaultSuite
	}
	if c.MinSamples < 1 {
		c.MinSamples = DefaultMinSamples
	}
	if c.PowerColumn == "" {
		c.PowerColumn = DefaultPowerColumn
	}
	return nil
}

func checkDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDirectory, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %v is not a directory", ErrInvalidDirectory, dir)
	}
	return nil
}

// LogFile is the telemetry log
func (c *Config) LogFile() string {
	return filepath.Join(c.LogDir, c.Tag+"_log.txt")
}

// OutFile is the execution log
func (c *Config) OutFile() string {
	return filepath.Join(c.LogDir, c.Tag+"_out.txt")
}

// SummaryFile is the fixed width summary
func (c *Config) SummaryFile() string {
	return filepath.Join(c.RepDir, c.Tag+"_summary.txt")
}

// JSONFile is the machine readable summary
func (c *Config) JSONFile() string {
	return filepath.Join(c.RepDir, c.Tag+"_summary.json")
}

// PromFile is the summary in the Prometheus text format
func (c *Config) PromFile() string {
	return filepath.Join(c.RepDir, c.Tag+"_summary.prom")
}

// ReportFile is the telemetry excerpt of a single app
func (c *Config) ReportFile(app string) string {
	return filepath.Join(c.RepDir, app+"_"+c.Tag+".txt")
}

func (c *Config) checkInputs() error {
	for _, f := range []string{c.LogFile(), c.OutFile()} {
		info, err := os.Stat(f)
		if err != nil || info.IsDir() {
			return fmt.Errorf("%w: %v", ErrMissingInputFile, f)
		}
	}
	return nil
}
