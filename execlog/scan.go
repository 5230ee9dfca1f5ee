package execlog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Interval is the time window an app was running in
type Interval struct {
	Name  string
	Start float64
	End   float64
}

// Duration returns End - Start
func (i Interval) Duration() float64 {
	return i.End - i.Start
}

// Scanner walks an execution log and reports every completed interval
type Scanner struct {
	classifier *Classifier
	registry   *Registry

	name         string
	start        float64
	startPresent bool
}

// NewScanner creates a scanner for logs of the given suite
func NewScanner(suite string) *Scanner {
	return &Scanner{
		classifier: NewClassifier(suite),
		registry:   NewRegistry(),
	}
}

// ScanFile opens filename and calls Scan
func (s *Scanner) ScanFile(filename string, fn func(Interval) error) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("Error opening file %v: %w", filename, err)
	}
	defer file.Close()

	return s.Scan(file, fn)
}

// Scan reads r line by line and calls fn as soon as an interval is complete.
// Lines that match an event but cannot be parsed are logged and skipped.
// Scan stops at the first error returned by fn.
func (s *Scanner) Scan(r io.Reader, fn func(Interval) error) error {
	reader := bufio.NewReader(r)

	lineNo := 0
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return fmt.Errorf("Error reading execution log: %w", readErr)
		}
		if len(line) == 0 && readErr == io.EOF {
			return nil
		}
		lineNo++

		if err := s.line(strings.TrimRight(line, "\r\n"), lineNo, fn); err != nil {
			return err
		}

		if readErr == io.EOF {
			return nil
		}
	}
}

func (s *Scanner) line(line string, lineNo int, fn func(Interval) error) error {
	ev, err := s.classifier.Classify(line)
	if err != nil {
		log.WithError(err).WithField("line", lineNo).Warnln("Skipping unparsable execution log line")
		return nil
	}

	interval, done := s.apply(ev, lineNo)
	if !done {
		return nil
	}

	return fn(interval)
}

func (s *Scanner) apply(ev Event, lineNo int) (Interval, bool) {
	switch ev.Kind {
	case SuiteBegin:
		s.name = s.registry.Resolve(ev.Name)
		log.WithFields(log.Fields{"app": s.name, "line": lineNo}).Debugln("suite run begins")

	case StartEvent:
		if ev.Name != "" {
			s.name = s.registry.Resolve(ev.Name)
		}
		s.start = ev.Time
		s.startPresent = true
		log.WithFields(log.Fields{"app": s.name, "start": ev.Time, "dialect": ev.Dialect}).Debugln("app started")

	case StopEvent:
		if !s.startPresent {
			log.WithField("line", lineNo).Warnln("Stop event without a preceding start, skipping")
			return Interval{}, false
		}
		log.WithFields(log.Fields{"app": s.name, "end": ev.Time, "dialect": ev.Dialect}).Debugln("app completed")
		return Interval{Name: s.name, Start: s.start, End: ev.Time}, true
	}

	return Interval{}, false
}
