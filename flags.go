package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jbreitbart/appenergy/execlog"
	"github.com/jbreitbart/appenergy/extractor"
)

// global command line parameters
var logDir *string
var repDir *string
var tag *string

var suite *string
var minSamples *int
var powerColumn *string

var storeJSON *bool
var storeProm *bool
var quiet *bool
var debug *bool

// stringFlag registers the same string variable under a long and a short name
func stringFlag(long, short, value, usage string) *string {
	p := flag.String(long, value, usage)
	flag.StringVar(p, short, value, usage+" (shorthand)")
	return p
}

func parseArgs() extractor.Config {
	logDir = stringFlag("logdir", "ld", "", "Full path of log directory")
	repDir = stringFlag("repdir", "rd", "", "Full path of report directory")
	tag = stringFlag("tag", "t", "", "Name of run")

	suite = flag.String("suite", execlog.DefaultSuite, "Benchmark suite id searched for in 'Running' lines")
	minSamples = flag.Int("min-samples", extractor.DefaultMinSamples, "Minimum number of telemetry samples an app needs")
	powerColumn = flag.String("power", extractor.DefaultPowerColumn, "Telemetry column holding the average power")

	storeJSON = flag.Bool("json", false, "Also store the summary as <tag>_summary.json")
	storeProm = flag.Bool("prom", false, "Also store the summary in the Prometheus text format as <tag>_summary.prom")
	quiet = flag.Bool("quiet", false, "Do not print the summary table")
	debug = flag.Bool("debug", false, "Enable debug output")

	flag.Parse()

	if *logDir == "" || *repDir == "" || *tag == "" {
		fmt.Fprintln(os.Stderr, "--logdir, --repdir and --tag are required")
		flag.Usage()
		os.Exit(2)
	}
	if *minSamples < 1 {
		fmt.Fprintln(os.Stderr, "min-samples must be > 0")
		os.Exit(2)
	}

	cfg := extractor.Defaults()
	cfg.LogDir = *logDir
	cfg.RepDir = *repDir
	cfg.Tag = *tag
	cfg.Suite = *suite
	cfg.MinSamples = *minSamples
	cfg.PowerColumn = *powerColumn

	return cfg
}
