package aoc

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

// Grid is a row-major grid. Rows may have different lengths.
type Grid[T any] [][]T

// ParseGrid splits s on newlines and converts each row to runes. A trailing
// '\r' is dropped from each row, and a single trailing newline does not
// produce an empty last row.
func ParseGrid(s string) Grid[rune] {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	g := make(Grid[rune], len(lines))
	for y, line := range lines {
		g[y] = []rune(strings.TrimSuffix(line, "\r"))
	}
	return g
}

// AtOk is like At but reports false for any point outside the populated
// grid, including points past the end of a short row.
func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if p.Y < 0 || p.Y >= len(g) || p.X < 0 || p.X >= len(g[p.Y]) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

// Clip moves p onto the nearest valid row and a non-negative column. It does
// not clip columns at the right edge; rows have their own lengths and AtOk
// handles those.
func (g Grid[T]) Clip(p Pt) Pt {
	p.X = max(p.X, 0)
	p.Y = min(max(p.Y, 0), max(len(g)-1, 0))
	return p
}

// ForClippedNeighbors calls f with each of the 8 neighbors of p after
// clipping, along with the value there. Neighbors that fall outside the
// populated grid are skipped.
func (g Grid[T]) ForClippedNeighbors(p Pt, f func(Pt, T) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt) bool {
		n = g.Clip(n)
		v, ok := g.AtOk(n)
		if !ok {
			return true
		}
		return f(n, v)
	})
}

// Size returns the number of rows and the length of the longest row.
func (g Grid[T]) Size() Pt {
	var size Pt
	size.Y = len(g)
	for _, row := range g {
		size.X = max(size.X, len(row))
	}
	return size
}

func (g Grid[T]) String() string {
	var sb strings.Builder
	for y, row := range g {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range row {
			if r, ok := any(v).(rune); ok {
				sb.WriteRune(r)
			} else {
				fmt.Fprint(&sb, v)
			}
		}
	}
	return sb.String()
}

var (
	hashersMu sync.Mutex
	hashers   = map[reflect.Type]any{} // map[reflect.Type]func(*Grid[T]) deephash.Sum
)

func (g Grid[T]) Hash() deephash.Sum {
	rt := reflect.TypeOf(g)
	hashersMu.Lock()
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	hashersMu.Unlock()
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}
