package aoc

import (
	"log"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Digit returns the digit value of the rune.
func Digit(r rune) int {
	if !IsDigit(r) {
		log.Fatalf("not a digit: %q", r)
	}
	return int(r - '0')
}

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Product returns the product of the numbers, or 1 if there are none.
func Product[T Number](nums ...T) T {
	prod := T(1)
	for _, v := range nums {
		prod *= v
	}
	return prod
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// IntOr returns the int value of the string, or def if it does not parse.
func IntOr(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}
