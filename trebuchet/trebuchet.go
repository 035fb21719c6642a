// Package trebuchet recovers calibration values from lines of amended
// calibration text.
package trebuchet

import (
	"strings"

	"github.com/gearworks/aoc"
)

var words = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// CalibrationValue combines the first and last digit of line into a
// two-digit number. A line with one digit uses it twice. A line with no
// digits has value 0.
func CalibrationValue(line string) int {
	return value(line, false)
}

// CalibrationValueSpelled is like CalibrationValue but also treats the
// words "one" through "nine" as digits. Words may overlap, so "eightwo"
// is 8 then 2.
func CalibrationValueSpelled(line string) int {
	return value(line, true)
}

func value(line string, spelled bool) int {
	first, last := -1, -1
	for i := range line {
		d, ok := digitAt(line, i, spelled)
		if !ok {
			continue
		}
		if first == -1 {
			first = d
		}
		last = d
	}
	if first == -1 {
		return 0
	}
	return first*10 + last
}

// digitAt reports the digit starting at line[i], if any.
func digitAt(line string, i int, spelled bool) (int, bool) {
	if c := rune(line[i]); aoc.IsDigit(c) {
		return aoc.Digit(c), true
	}
	if !spelled {
		return 0, false
	}
	for n, w := range words {
		if strings.HasPrefix(line[i:], w) {
			return n + 1, true
		}
	}
	return 0, false
}

// Sum returns the sum of fn over lines.
func Sum(lines []string, fn func(string) int) int {
	var total int
	for _, l := range lines {
		total += fn(l)
	}
	return total
}
