// Package schematic finds the part numbers in an engine schematic: the
// numbers in a character grid that touch a symbol, diagonals included.
package schematic

import (
	"slices"

	"github.com/gearworks/aoc"
)

// IsSymbol reports whether r is a symbol. Digits, periods and newlines are
// not symbols; everything else is.
func IsSymbol(r rune) bool {
	return !aoc.IsDigit(r) && r != '.' && r != '\n'
}

// Number is a maximal run of digits within one row.
type Number struct {
	Row   int
	Start int // column of the first digit
	End   int // column after the last digit
	Text  string
	// Value is the parsed Text, or 0 if it does not fit in an int.
	Value int
	// Adjacent is set if any digit of the run has a symbol among its
	// neighbors.
	Adjacent bool
	// Gears are the distinct '*' cells next to any digit of the run, in
	// the order they were first seen.
	Gears []aoc.Pt
}

// Schematic is a parsed engine schematic. It is not modified after Parse.
type Schematic struct {
	grid aoc.Grid[rune]
}

// Parse splits input on newlines into a grid. Rows may be ragged.
func Parse(input string) Schematic {
	return Schematic{grid: aoc.ParseGrid(input)}
}

// Grid returns the underlying grid. Callers must not modify it.
func (s Schematic) Grid() aoc.Grid[rune] {
	return s.grid
}

// run is the scan state of the digit run being read.
type run struct {
	digits   []rune
	start    int
	adjacent bool
	gears    []aoc.Pt
}

func (r *run) reset() {
	r.digits = r.digits[:0]
	r.adjacent = false
	r.gears = nil
}

// Numbers returns every digit run in the schematic, row by row and left to
// right.
func (s Schematic) Numbers() []Number {
	var nums []Number
	var cur run
	flush := func(y, end int) {
		if len(cur.digits) == 0 {
			return
		}
		text := string(cur.digits)
		nums = append(nums, Number{
			Row:      y,
			Start:    cur.start,
			End:      end,
			Text:     text,
			Value:    aoc.IntOr(text, 0),
			Adjacent: cur.adjacent,
			Gears:    cur.gears,
		})
		cur.reset()
	}
	for y, row := range s.grid {
		cur.reset()
		for x, c := range row {
			if !aoc.IsDigit(c) {
				flush(y, x)
				continue
			}
			if len(cur.digits) == 0 {
				cur.start = x
			}
			s.grid.ForClippedNeighbors(aoc.Pt{X: x, Y: y}, func(p aoc.Pt, n rune) bool {
				if IsSymbol(n) {
					cur.adjacent = true
				}
				if n == '*' && !slices.Contains(cur.gears, p) {
					cur.gears = append(cur.gears, p)
				}
				return true
			})
			cur.digits = append(cur.digits, c)
		}
		flush(y, len(row))
	}
	return nums
}

// PartNumbers returns the sum of the numbers adjacent to a symbol.
func (s Schematic) PartNumbers() int {
	var total int
	for _, n := range s.Numbers() {
		if n.Adjacent {
			total += n.Value
		}
	}
	return total
}

// GearRatios returns the sum of the gear ratios. A gear is a '*' adjacent
// to exactly two numbers, and its ratio is their product.
func (s Schematic) GearRatios() int {
	byGear := map[aoc.Pt][]int{}
	for _, n := range s.Numbers() {
		for _, g := range n.Gears {
			byGear[g] = append(byGear[g], n.Value)
		}
	}
	var ratios []int
	for _, nums := range byGear {
		if len(nums) == 2 {
			ratios = append(ratios, aoc.Product(nums...))
		}
	}
	return aoc.Sum(ratios...)
}

// SumPartNumbers parses input and returns the sum of its part numbers.
func SumPartNumbers(input string) int {
	return Parse(input).PartNumbers()
}

// SumGearRatios parses input and returns the sum of its gear ratios.
func SumGearRatios(input string) int {
	return Parse(input).GearRatios()
}

// Parts returns the values of the numbers adjacent to a symbol, in scan
// order. It is mostly useful for debugging.
func (s Schematic) Parts() []int {
	var out []int
	for _, n := range s.Numbers() {
		if n.Adjacent {
			out = append(out, n.Value)
		}
	}
	return out
}
