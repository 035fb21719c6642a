package main

import (
	_ "embed"

	"github.com/gearworks/aoc"
	"github.com/gearworks/aoc/cubes"
	"github.com/gearworks/aoc/schematic"
	"github.com/gearworks/aoc/trebuchet"
)

func main() {
	aoc.Run(2023, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

func (s solver) lines() []string {
	var lines []string
	s.ForLines(func(line string) {
		lines = append(lines, line)
	})
	return lines
}

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() any {
	return trebuchet.Sum(s.lines(), trebuchet.CalibrationValue)
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (s solver) D1p2() any {
	return trebuchet.Sum(s.lines(), trebuchet.CalibrationValueSpelled)
}

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (s solver) D2p1() any {
	games := cubes.ParseGames(s.lines())
	for _, g := range games {
		s.Debugf("game %d possible=%v", g.ID, g.Possible(cubes.DefaultBag))
	}
	return cubes.SumPossible(games, cubes.DefaultBag)
}

// want=2286
func (s solver) D2p2() any {
	return cubes.SumPower(cubes.ParseGames(s.lines()))
}

/*
want=4361

467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
*/
func (s solver) D3p1() any {
	sch := schematic.Parse(s.InputString())
	s.Debug("schematic size:", sch.Grid().Size())
	s.Debugf("parts: %v", sch.Parts())
	return sch.PartNumbers()
}

// want=467835
func (s solver) D3p2() any {
	return schematic.SumGearRatios(s.InputString())
}
