// Package day05 follows seeds through the almanac's chain of range maps.
package day05

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/jsfr/advent-of-code-2023/internal/puzzle"
	"github.com/jsfr/advent-of-code-2023/internal/puzzle/scan"
)

type Day struct{}

var _ puzzle.Solver = Day{}

type category string

// chain is the order in which a seed is converted to a location.
var chain = []category{"seed", "soil", "fertilizer", "water", "light", "temperature", "humidity", "location"}

type stage struct {
	from, to category
}

type almanac struct {
	seeds []int
	maps  map[stage]rangeMap
}

type rangeMap []mapEntry

// mapEntry sends [src, src+length) to [dest, dest+length).
type mapEntry struct {
	dest, src, length int
}

func (m rangeMap) convert(x int) int {
	for _, e := range m {
		if x >= e.src && x < e.src+e.length {
			return e.dest + (x - e.src)
		}
	}
	return x
}

// SolvePartOne returns the lowest location any listed seed maps to.
func (Day) SolvePartOne(input string) (string, error) {
	a, err := parseAlmanac(input)
	if err != nil {
		return "", err
	}

	values := append([]int(nil), a.seeds...)
	for i := 0; i+1 < len(chain); i++ {
		st := stage{from: chain[i], to: chain[i+1]}
		m, ok := a.maps[st]
		if !ok {
			return "", puzzle.Missing("day05.part_one", "failed to convert from seeds to location: no %s-to-%s map", st.from, st.to)
		}
		for j, v := range values {
			values[j] = m.convert(v)
		}
	}

	return puzzle.Answer(slices.Min(values)), nil
}

func (Day) SolvePartTwo(string) (string, error) {
	return "", puzzle.NotImplemented("day05.part_two")
}

func parseAlmanac(input string) (almanac, error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	a, err := scan.All(input, func(c *scan.Cursor) (almanac, error) {
		if err := c.Tag("seeds:"); err != nil {
			return almanac{}, err
		}
		c.Spaces()
		seeds, err := scan.Ints(c)
		if err != nil {
			return almanac{}, err
		}
		if err := c.Tag("\n\n"); err != nil {
			return almanac{}, err
		}
		blocks, err := scan.List(c, "\n\n", parseBlock)
		if err != nil {
			return almanac{}, err
		}
		for c.TryTag("\n") {
		}

		a := almanac{seeds: seeds, maps: make(map[stage]rangeMap, len(blocks))}
		for _, b := range blocks {
			if _, dup := a.maps[b.stage]; dup {
				return almanac{}, errors.Newf("duplicate %s-to-%s map", b.stage.from, b.stage.to)
			}
			a.maps[b.stage] = b.entries
		}
		return a, nil
	})
	if err != nil {
		return almanac{}, puzzle.Invalid("day05.parse", errors.Wrap(err, "failed to parse almanac"))
	}
	return a, nil
}

type block struct {
	stage   stage
	entries rangeMap
}

// parseBlock reads "seed-to-soil map:" followed by "dest src length" rows.
func parseBlock(c *scan.Cursor) (block, error) {
	from, err := parseCategory(c)
	if err != nil {
		return block{}, err
	}
	if err := c.Tag("-to-"); err != nil {
		return block{}, err
	}
	to, err := parseCategory(c)
	if err != nil {
		return block{}, err
	}
	if err := c.Tag(" map:\n"); err != nil {
		return block{}, err
	}
	entries, err := scan.List(c, "\n", parseEntry)
	if err != nil {
		return block{}, err
	}
	return block{stage: stage{from: from, to: to}, entries: entries}, nil
}

func parseEntry(c *scan.Cursor) (mapEntry, error) {
	nums, err := scan.Ints(c)
	if err != nil {
		return mapEntry{}, err
	}
	if len(nums) != 3 {
		return mapEntry{}, errors.Newf("expected 3 numbers in map entry, found %d", len(nums))
	}
	return mapEntry{dest: nums[0], src: nums[1], length: nums[2]}, nil
}

func parseCategory(c *scan.Cursor) (category, error) {
	mark := c.Mark()
	w, err := c.Alpha()
	if err != nil {
		return "", err
	}
	for _, k := range chain {
		if string(k) == w {
			return k, nil
		}
	}
	c.Reset(mark)
	return "", errors.Newf("unknown category %q", w)
}
