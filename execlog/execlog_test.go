package execlog

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	got := []string{
		r.Resolve("foo"),
		r.Resolve("bar"),
		r.Resolve("foo"),
		r.Resolve("foo"),
		r.Resolve("bar"),
	}
	want := []string{"foo", "bar", "foo1", "foo2", "bar1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve = %v, want %v", got, want)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		suite bool
		line  string
		want  Event
	}{
		{"ignored", false, "some random output 1.0", Event{}},
		{"suite begin", false, "Running 519.lbm_r.psc24 refspeed", Event{Kind: SuiteBegin, Dialect: Suite, Name: "lbm_r"}},
		{"direct start", false, "Starting app bin/npb/bt.C.x at 12.5", Event{Kind: StartEvent, Dialect: Direct, Name: "bin_npb_bt.C.x", Time: 12.5}},
		{"direct start leading slash", false, "Starting app /foo 5.0", Event{Kind: StartEvent, Dialect: Direct, Name: "foo", Time: 5}},
		{"direct stop", false, "Completed app bin/npb/bt.C.x at 45", Event{Kind: StopEvent, Dialect: Direct, Time: 45}},
		{"suite start outside run", false, "Start command: foo (100.5)", Event{}},
		{"suite stop outside run", false, "Stop command: foo (200.5)", Event{}},
		{"suite start", true, "Start command: specinvoke (100.5)", Event{Kind: StartEvent, Dialect: Suite, Time: 100.5}},
		{"suite stop", true, "Stop command: specinvoke (200.25)", Event{Kind: StopEvent, Dialect: Suite, Time: 200.25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClassifier(DefaultSuite)
			c.inSuiteRun = tt.suite

			got, err := c.Classify(tt.line)
			if err != nil {
				t.Fatalf("Classify(%q) failed: %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("Classify(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestClassifySuiteFlag(t *testing.T) {
	c := NewClassifier("")

	if _, err := c.Classify("Running 500.perlbench_r.psc24 base"); err != nil {
		t.Fatal(err)
	}
	if !c.InSuiteRun() {
		t.Fatalf("suite run not opened")
	}
	if _, err := c.Classify("Stop command: x (3.0)"); err != nil {
		t.Fatal(err)
	}
	if c.InSuiteRun() {
		t.Errorf("suite run not closed by Stop command")
	}

	// other suites are not recognized
	if ev, _ := c.Classify("Running 500.perlbench_r.other base"); ev.Kind != Ignored {
		t.Errorf("expected other suite to be ignored, got %v", ev.Kind)
	}
}

func TestClassifyErrors(t *testing.T) {
	tests := []struct {
		name  string
		suite bool
		line  string
	}{
		{"start without time", false, "Starting app foo now"},
		{"start without name", false, "Starting app"},
		{"stop without time", false, "Completed app foo"},
		{"suite id without dot", false, "Running psc24"},
		{"suite start without parentheses", true, "Start command: 100.5"},
		{"suite stop with garbage", true, "Stop command: (abc)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClassifier(DefaultSuite)
			c.inSuiteRun = tt.suite
			if _, err := c.Classify(tt.line); err == nil {
				t.Errorf("Classify(%q) should fail", tt.line)
			}
		})
	}
}

const mixedLog = `build output
Starting app bin/foo 5.0
Completed app bin/foo 45.0
Running 519.lbm_r.psc24 refspeed
Start command: specinvoke (50.0)
some noise
Stop command: specinvoke (80.5)
Start command: ignored (90.0)
Starting app bin/foo 100
Completed app bin/foo 140
Running 519.lbm_r.psc24 refspeed
Start command: specinvoke (150.0)
Stop command: specinvoke (151.0)
`

func scanAll(t *testing.T, input string) []Interval {
	var got []Interval
	err := NewScanner(DefaultSuite).Scan(strings.NewReader(input), func(i Interval) error {
		got = append(got, i)
		return nil
	})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	return got
}

func TestScanMixedDialects(t *testing.T) {
	got := scanAll(t, mixedLog)

	want := []Interval{
		{Name: "bin_foo", Start: 5, End: 45},
		{Name: "lbm_r", Start: 50, End: 80.5},
		{Name: "bin_foo1", Start: 100, End: 140},
		{Name: "lbm_r1", Start: 150, End: 151},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Scan = %+v, want %+v", got, want)
	}
}

func TestScanSkipsBrokenLines(t *testing.T) {
	input := "Completed app early 3.0\n" +
		"Starting app bin/foo notanumber\n" +
		"Starting app bin/bar 1.0\n" +
		"Completed app bin/bar 2.0\n"

	got := scanAll(t, input)
	want := []Interval{{Name: "bin_bar", Start: 1, End: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Scan = %+v, want %+v", got, want)
	}
}

func TestScanStopsOnCallbackError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := NewScanner(DefaultSuite).Scan(strings.NewReader(mixedLog), func(Interval) error {
		calls++
		return boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected callback error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 callback, got %v", calls)
	}
}

func TestIntervalDuration(t *testing.T) {
	i := Interval{Start: 5, End: 45}
	if i.Duration() != 40 {
		t.Errorf("Duration = %v", i.Duration())
	}
}

func TestScanLongNoiseLine(t *testing.T) {
	input := "Starting app /foo 5.0\n" +
		strings.Repeat("x", 2*1024*1024) + "\n" +
		"Completed app /foo 45.0"

	got := scanAll(t, input)
	want := []Interval{{Name: "foo", Start: 5, End: 45}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Scan = %+v, want %+v", got, want)
	}
}

func TestScanNamesAcrossDialects(t *testing.T) {
	input := "Running 519.foo.psc24 refspeed\n" +
		"Start command: specinvoke (1.0)\n" +
		"Stop command: specinvoke (2.0)\n" +
		"Starting app foo 3.0\r\n" +
		"Completed app foo 4.0\r\n"

	got := scanAll(t, input)
	want := []Interval{
		{Name: "foo", Start: 1, End: 2},
		{Name: "foo1", Start: 3, End: 4},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Scan = %+v, want %+v", got, want)
	}
}
