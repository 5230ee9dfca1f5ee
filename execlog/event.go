package execlog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultSuite is the benchmark suite id searched for in "Running" lines
const DefaultSuite = "psc24"

// Kind of a classified line
type Kind int

const (
	// Ignored lines carry no event
	Ignored Kind = iota
	// SuiteBegin opens a suite run and names the app
	SuiteBegin
	// StartEvent supplies the start time of an interval
	StartEvent
	// StopEvent supplies the end time of an interval
	StopEvent
)

func (k Kind) String() string {
	switch k {
	case SuiteBegin:
		return "suite-begin"
	case StartEvent:
		return "start"
	case StopEvent:
		return "stop"
	}
	return "ignored"
}

// Dialect of the execution log a line was written in
type Dialect int

const (
	// NoDialect is used for ignored lines
	NoDialect Dialect = iota
	// Suite lines come from the benchmark suite harness
	// ("Running ...", "Start command", "Stop command")
	Suite
	// Direct lines are written by the run script
	// ("Starting app", "Completed app")
	Direct
)

func (d Dialect) String() string {
	switch d {
	case Suite:
		return "suite"
	case Direct:
		return "direct"
	}
	return "none"
}

// Event is the result of classifying a single line. Name is only set for
// SuiteBegin and for StartEvent of the direct dialect; Time only for
// StartEvent and StopEvent.
type Event struct {
	Kind    Kind
	Dialect Dialect
	Name    string
	Time    float64
}

// token positions inside the matched lines
const (
	suiteNamePos  = 1
	directNamePos = 2
)

// Classifier turns execution log lines into events. Suite "Start command" and
// "Stop command" lines are only honored between a "Running" line and the
// next "Stop command", so the classifier keeps that flag itself.
type Classifier struct {
	suiteRun   *regexp.Regexp
	inSuiteRun bool
}

// NewClassifier creates a classifier for the given suite id
func NewClassifier(suite string) *Classifier {
	if suite == "" {
		suite = DefaultSuite
	}
	return &Classifier{
		suiteRun: regexp.MustCompile("Running.*" + regexp.QuoteMeta(suite)),
	}
}

// InSuiteRun reports whether a suite run is currently open
func (c *Classifier) InSuiteRun() bool {
	return c.inSuiteRun
}

// Classify returns the event described by line. The checks are done in a
// fixed order and the first match wins.
func (c *Classifier) Classify(line string) (Event, error) {
	switch {
	case c.suiteRun.MatchString(line):
		name, err := suiteName(line)
		if err != nil {
			return Event{}, err
		}
		c.inSuiteRun = true
		return Event{Kind: SuiteBegin, Dialect: Suite, Name: name}, nil

	case strings.Contains(line, "Starting app"):
		parts := strings.Fields(line)
		if len(parts) <= directNamePos {
			return Event{}, fmt.Errorf("no app name in %q", line)
		}
		t, err := strconv.ParseFloat(parts[len(parts)-1], 64)
		if err != nil {
			return Event{}, fmt.Errorf("start time: %w", err)
		}
		return Event{Kind: StartEvent, Dialect: Direct, Name: directName(parts[directNamePos]), Time: t}, nil

	case c.inSuiteRun && strings.Contains(line, "Start command"):
		t, err := parenthesizedTime(line)
		if err != nil {
			return Event{}, fmt.Errorf("start time: %w", err)
		}
		return Event{Kind: StartEvent, Dialect: Suite, Time: t}, nil

	case strings.Contains(line, "Completed app"):
		parts := strings.Fields(line)
		t, err := strconv.ParseFloat(parts[len(parts)-1], 64)
		if err != nil {
			return Event{}, fmt.Errorf("end time: %w", err)
		}
		return Event{Kind: StopEvent, Dialect: Direct, Time: t}, nil

	case c.inSuiteRun && strings.Contains(line, "Stop command"):
		t, err := parenthesizedTime(line)
		if err != nil {
			return Event{}, fmt.Errorf("end time: %w", err)
		}
		c.inSuiteRun = false
		return Event{Kind: StopEvent, Dialect: Suite, Time: t}, nil
	}

	return Event{}, nil
}

// suiteName extracts "bt_r" out of "Running 519.bt_r.psc24 ..." style lines,
// i.e. the second dot separated part of the second token.
func suiteName(line string) (string, error) {
	parts := strings.Fields(line)
	if len(parts) <= suiteNamePos {
		return "", fmt.Errorf("no benchmark id in %q", line)
	}
	ids := strings.Split(parts[suiteNamePos], ".")
	if len(ids) < 2 || ids[1] == "" {
		return "", fmt.Errorf("benchmark id %q has no name part", parts[suiteNamePos])
	}
	return ids[1], nil
}

// directName turns a path into something usable as a file name prefix
func directName(app string) string {
	return strings.ReplaceAll(strings.Trim(app, "/"), "/", "_")
}

// parenthesizedTime parses the number inside the parentheses of the last token,
// e.g. "(1712345678.123)"
func parenthesizedTime(line string) (float64, error) {
	parts := strings.Fields(line)
	last := parts[len(parts)-1]

	begin := strings.Index(last, "(")
	end := strings.Index(last, ")")
	if begin == -1 || end == -1 || end < begin {
		return 0, fmt.Errorf("no parenthesized time in %q", last)
	}

	return strconv.ParseFloat(last[begin+1:end], 64)
}
