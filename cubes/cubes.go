// Package cubes checks games of coloured cubes drawn from a bag.
package cubes

import (
	"regexp"

	"github.com/gearworks/aoc"
)

// Set is a count of cubes by colour.
type Set map[string]int

// DefaultBag is the bag the elf loads before the games: 12 red, 13 green
// and 14 blue cubes.
var DefaultBag = Set{"red": 12, "green": 13, "blue": 14}

// Power returns the product of the red, green and blue counts.
func (s Set) Power() int {
	return aoc.Product(s["red"], s["green"], s["blue"])
}

// Draw is one "<count> <colour>" pair revealed during a game.
type Draw struct {
	Count int
	Color string
}

type Game struct {
	ID    int
	Draws []Draw
}

var drawRx = regexp.MustCompile(`(\d+) (\w+)`)

// ParseGame collects every draw on line. The game text before the colon
// is not parsed; id is assigned by the caller.
func ParseGame(id int, line string) Game {
	g := Game{ID: id}
	for _, m := range drawRx.FindAllStringSubmatch(line, -1) {
		g.Draws = append(g.Draws, Draw{
			Count: aoc.IntOr(m[1], 0),
			Color: m[2],
		})
	}
	return g
}

// Possible reports whether every draw fits in bag. A colour the bag does
// not have makes the game impossible.
func (g Game) Possible(bag Set) bool {
	for _, d := range g.Draws {
		n, ok := bag[d.Color]
		if !ok || d.Count > n {
			return false
		}
	}
	return true
}

// MinimumSet returns the fewest cubes of each colour that make g possible.
func (g Game) MinimumSet() Set {
	s := Set{"red": 0, "green": 0, "blue": 0}
	for _, d := range g.Draws {
		s[d.Color] = max(s[d.Color], d.Count)
	}
	return s
}

// ParseGames parses one game per line, numbering them from 1.
func ParseGames(lines []string) []Game {
	games := make([]Game, len(lines))
	for i, l := range lines {
		games[i] = ParseGame(i+1, l)
	}
	return games
}

// SumPossible returns the sum of the IDs of the games possible with bag.
func SumPossible(games []Game, bag Set) int {
	var total int
	for _, g := range games {
		if g.Possible(bag) {
			total += g.ID
		}
	}
	return total
}

// SumPower returns the sum of the powers of each game's minimum set.
func SumPower(games []Game) int {
	var total int
	for _, g := range games {
		total += g.MinimumSet().Power()
	}
	return total
}
