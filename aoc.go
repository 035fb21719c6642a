// Package aoc are quick & dirty utilities for solving Advent of Code
// problems. (forked from maisem/aoc, itself forked from bradfitz/aoc)
package aoc

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples returns the samples found in the doc comments of the
// funcs in src, keyed by func name. A sample without input reuses the
// input of the previous one.
func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "solver.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[funcName] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

type Puzzle struct {
	year       int
	day        day
	cfg        Config
	SampleMode bool

	solver  partSolver
	samples map[string]sample
}

func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	return p.fileOrFetch(p.cfg.inputPath(p.year, p.day.day, ".input"), fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", p.year, p.day.day))
}

// InputString returns the whole input as one string.
func (p *Puzzle) InputString() string {
	return string(p.Input())
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

func (p *Puzzle) Debug(v ...any) {
	if p.debug() {
		fmt.Println(v...)
	}
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if p.debug() && p.SampleMode {
		fmt.Printf(format+"\n", args...)
	}
}

func (p *Puzzle) debug() bool {
	return flagDebug || p.cfg.Debug
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods finds the methods of x named D{day}p{part}, grouped by
// day with parts sorted. The methods must have the signature func() any.
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("got %T; want pointer to struct", x)
	}
	v = v.Elem()
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			return nil, fmt.Errorf("method %s has type %v; want func() any", mn, v.Method(i).Type())
		}
		day, part := matches[1], matches[2]
		d := Int(day)
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: part,
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
}

var initFlags = sync.OnceFunc(flag.Parse)

func runDay(w io.Writer, slvr any, cfg Config, year int, day day, samples map[string]sample) {
	p := Puzzle{
		year:    year,
		day:     day,
		cfg:     cfg,
		samples: samples,
	}
	fmt.Fprintln(w, "Running day", day.day)
	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(&p))
	for _, ps := range day.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && flagSkipSample {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input.
				p.Input()
			}
			t0 := time.Now()
			got := ps.fn()
			if sm {
				sample := p.Sample()
				if fmt.Sprint(got) != sample.want {
					fmt.Fprintf(w, "part %s: %v ❌; want %v\n", ps.Part, got, sample.want)
					return
				}
				fmt.Fprintf(w, "part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Fprintf(w, "part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
	}
}

// Run runs the solver for the given year. src is the solver's own source,
// from which the samples are extracted. slvr must be a pointer to a struct
// embedding *Puzzle.
func Run(year int, src []byte, slvr any) {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	samples, err := extractSamples(src)
	if err != nil {
		log.Fatal(err)
	}
	days, err := extractMethods(slvr)
	if err != nil {
		log.Fatalf("Run: %v", err)
	}
	initFlags()

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			log.Fatalf("no day %d", flagCurDay)
		}
		runDay(os.Stdout, slvr, cfg, year, day, samples)
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, day := range dayNums {
		runDay(os.Stdout, slvr, cfg, year, days[day], samples)
		fmt.Println()
	}
}

func (p *Puzzle) session() string {
	return strings.TrimSpace(string(MustGet(os.ReadFile(p.cfg.SessionFile))))
}

func (p *Puzzle) request(method, url string, body io.Reader) *http.Request {
	req := MustGet(http.NewRequest(method, url, body))
	req.AddCookie(&http.Cookie{Name: "session", Value: p.session()})
	return req
}

func doRequest(req *http.Request) *http.Response {
	res := MustGet(http.DefaultClient.Do(req))
	if res.StatusCode != 200 {
		log.Fatalf("bad status fetching %s: %v", req.URL, res.Status)
	}
	return res
}

// fileOrFetch returns the contents of filename, fetching url into it first
// if it does not exist yet.
func (p *Puzzle) fileOrFetch(filename, url string) []byte {
	f, err := os.ReadFile(filename)
	if err == nil {
		return f
	}
	if !os.IsNotExist(err) {
		log.Fatalf("reading %s: %v", filename, err)
	}

	body := p.fetch(url)
	MustDo(os.MkdirAll(filepath.Dir(filename), 0700))
	MustDo(os.WriteFile(filename, body, 0644))
	return body
}

func (p *Puzzle) fetch(url string) []byte {
	res := doRequest(p.request("GET", url, nil))
	defer res.Body.Close()
	return MustGet(io.ReadAll(res.Body))
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
