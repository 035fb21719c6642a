package aoc

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},
		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
		},
		{
			comment: `// want=42`,
			want:    sample{want: "42"},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample(tt.comment); !ok || got != tt.want {
			t.Errorf("parseSample(%q) = %v, want %v", tt.comment, got, tt.want)
		}
	}
}

const solverSrc = `package main

/*
want=3

a
b
*/
func (s solver) D1p1() any { return nil }

// want=5
func (s solver) D1p2() any { return nil }

// Not a sample.
func (s solver) helper() {}
`

func TestExtractSamples(t *testing.T) {
	got, err := extractSamples([]byte(solverSrc))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]sample{
		"D1p1": {want: "3", input: "a\nb\n"},
		"D1p2": {want: "5", input: "a\nb\n"},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(sample{})); diff != "" {
		t.Errorf("extractSamples mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractSamplesBadSource(t *testing.T) {
	if _, err := extractSamples([]byte("package main\nfunc {")); err == nil {
		t.Error("extractSamples: want error for bad source")
	}
}

type testSolver struct {
	*Puzzle
}

func (testSolver) D2p2() any {
	return 2
}

func (testSolver) D2p1() any {
	return 1
}

func (testSolver) D10p1() any {
	return 10
}

func (testSolver) Other() any {
	return nil
}

func TestExtractMethods(t *testing.T) {
	days, err := extractMethods(&testSolver{})
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 2 {
		t.Fatalf("got %d days, want 2", len(days))
	}
	var parts []string
	for _, ps := range days[2].parts {
		parts = append(parts, ps.Name)
	}
	if diff := cmp.Diff([]string{"D2p1", "D2p2"}, parts); diff != "" {
		t.Errorf("day 2 parts mismatch (-want +got):\n%s", diff)
	}
	if got := days[10].parts[0].fn(); got != 10 {
		t.Errorf("D10p1() = %v, want 10", got)
	}

	if _, err := extractMethods(testSolver{}); err == nil {
		t.Error("extractMethods(non-pointer): want error")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("HOME", "/home/elf")
	for _, k := range []string{"AOC_INPUT_DIR", "AOC_SESSION_FILE", "AOC_DEBUG"} {
		t.Setenv(k, "") // restored on cleanup
		os.Unsetenv(k)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		InputDir:    ".",
		SessionFile: "/home/elf/keys/aoc.session",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("LoadConfig defaults mismatch (-want +got):\n%s", diff)
	}

	t.Setenv("AOC_INPUT_DIR", "/tmp/inputs")
	t.Setenv("AOC_SESSION_FILE", "/run/secrets/aoc")
	t.Setenv("AOC_DEBUG", "true")
	cfg, err = LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	want = Config{
		InputDir:    "/tmp/inputs",
		SessionFile: "/run/secrets/aoc",
		Debug:       true,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("LoadConfig overrides mismatch (-want +got):\n%s", diff)
	}
	if got, want := cfg.inputPath(2023, 3, ".input"), filepath.Join("/tmp/inputs", "2023", "3.input"); got != want {
		t.Errorf("inputPath = %q, want %q", got, want)
	}

	t.Setenv("AOC_DEBUG", "maybe")
	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig with bad AOC_DEBUG: want error")
	}
}

func TestPuzzleInputFromFile(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{InputDir: dir}
	path := cfg.inputPath(2023, 3, ".input")
	MustDo(os.MkdirAll(filepath.Dir(path), 0700))
	MustDo(os.WriteFile(path, []byte("1*1\n"), 0644))

	p := &Puzzle{year: 2023, day: day{day: 3}, cfg: cfg}
	var lines []string
	p.ForLinesY(func(y int, line string) {
		if y != len(lines) {
			t.Errorf("line %q has y=%d, want %d", line, y, len(lines))
		}
		lines = append(lines, line)
	})
	if diff := cmp.Diff([]string{"1*1"}, lines); diff != "" {
		t.Errorf("ForLinesY mismatch (-want +got):\n%s", diff)
	}
}

func TestPuzzleSampleInput(t *testing.T) {
	p := &Puzzle{
		SampleMode: true,
		solver:     partSolver{Name: "D3p1"},
		samples:    map[string]sample{"D3p1": {want: "2", input: "1*1\n"}},
	}
	if got := p.InputString(); got != "1*1\n" {
		t.Errorf("InputString() = %q, want %q", got, "1*1\n")
	}
}

func TestOr(t *testing.T) {
	if got := Or("", "a", "b"); got != "a" {
		t.Errorf("Or = %q, want %q", got, "a")
	}
	if got := Or(0, 0); got != 0 {
		t.Errorf("Or = %v, want 0", got)
	}
}

type recordingSolver struct {
	*Puzzle
	calls *[]string
}

func (s recordingSolver) record(part string) {
	mode := "input"
	if s.SampleMode {
		mode = "sample"
	}
	*s.calls = append(*s.calls, part+" "+mode)
}

func (s recordingSolver) D1p1() any {
	s.record("1")
	return 2
}

func (s recordingSolver) D1p2() any {
	s.record("2")
	return 3
}

func TestRunDay(t *testing.T) {
	cfg := Config{InputDir: t.TempDir()}
	path := cfg.inputPath(2023, 1, ".input")
	MustDo(os.MkdirAll(filepath.Dir(path), 0700))
	MustDo(os.WriteFile(path, []byte("real\n"), 0644))

	good := map[string]sample{
		"D1p1": {want: "2", input: "x\n"},
		"D1p2": {want: "3", input: "x\n"},
	}
	tests := []struct {
		name       string
		samples    map[string]sample
		part       string
		onlySample bool
		skipSample bool
		wantCalls  []string
		wantOut    []string
		notOut     []string
	}{
		{
			name: "wrong-sample-stops-day",
			samples: map[string]sample{
				"D1p1": {want: "5", input: "x\n"},
				"D1p2": {want: "3", input: "x\n"},
			},
			wantCalls: []string{"1 sample"},
			wantOut:   []string{"part 1: 2 ❌; want 5"},
			notOut:    []string{"part 2", "took"},
		},
		{
			name:      "all",
			samples:   good,
			wantCalls: []string{"1 sample", "1 input", "2 sample", "2 input"},
			wantOut:   []string{"part 1 sample: 2 ✅", "part 1: 2 (took", "part 2 sample: 3 ✅", "part 2: 3 (took"},
		},
		{
			name:      "one-part",
			samples:   good,
			part:      "2",
			wantCalls: []string{"2 sample", "2 input"},
			notOut:    []string{"part 1"},
		},
		{
			name:       "only-sample",
			samples:    good,
			onlySample: true,
			wantCalls:  []string{"1 sample", "2 sample"},
			notOut:     []string{"took"},
		},
		{
			name:       "skip-sample",
			samples:    good,
			skipSample: true,
			wantCalls:  []string{"1 input", "2 input"},
			notOut:     []string{"✅"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldPart, oldOnly, oldSkip := flagPart, flagOnlySample, flagSkipSample
			t.Cleanup(func() {
				flagPart, flagOnlySample, flagSkipSample = oldPart, oldOnly, oldSkip
			})
			flagPart, flagOnlySample, flagSkipSample = tt.part, tt.onlySample, tt.skipSample

			var calls []string
			slvr := &recordingSolver{calls: &calls}
			days, err := extractMethods(slvr)
			if err != nil {
				t.Fatal(err)
			}
			var buf bytes.Buffer
			runDay(&buf, slvr, cfg, 2023, days[1], tt.samples)

			if diff := cmp.Diff(tt.wantCalls, calls); diff != "" {
				t.Errorf("calls mismatch (-want +got):\n%s", diff)
			}
			out := buf.String()
			if !strings.HasPrefix(out, "Running day 1\n") {
				t.Errorf("output %q does not start with the day header", out)
			}
			for _, s := range tt.wantOut {
				if !strings.Contains(out, s) {
					t.Errorf("output %q does not contain %q", out, s)
				}
			}
			for _, s := range tt.notOut {
				if strings.Contains(out, s) {
					t.Errorf("output %q contains %q", out, s)
				}
			}
		})
	}
}
