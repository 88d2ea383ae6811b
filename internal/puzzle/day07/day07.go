// Package day07 ranks Camel Cards hands.
package day07

import (
	"slices"
	"sort"
	"strings"

	"github.com/jsfr/advent-of-code-2023/internal/puzzle"
	"github.com/jsfr/advent-of-code-2023/internal/puzzle/scan"
)

type Day struct{}

var _ puzzle.Solver = Day{}

const (
	standardOrder = "23456789TJQKA"
	jokerOrder    = "J23456789TQKA"
)

type kind int

const (
	highCard kind = iota
	onePair
	twoPair
	threeOfAKind
	fullHouse
	fourOfAKind
	fiveOfAKind
)

type hand struct {
	cards [5]int // strength of each card, position preserved
	kind  kind
	bid   int
}

// handParser reads hands under one set of card rules. Whether J is a joker
// is fixed when the parser is built.
type handParser struct {
	order  string
	jokers bool
}

func newHandParser(jokers bool) handParser {
	if jokers {
		return handParser{order: jokerOrder, jokers: true}
	}
	return handParser{order: standardOrder}
}

func (Day) SolvePartOne(input string) (string, error) {
	return winnings(newHandParser(false), input)
}

// SolvePartTwo treats J as the weakest card that stands in for whichever card
// makes the strongest hand.
func (Day) SolvePartTwo(input string) (string, error) {
	return winnings(newHandParser(true), input)
}

func winnings(p handParser, input string) (string, error) {
	hands, err := puzzle.ParseLines("day07.parse", input, p.parse)
	if err != nil {
		return "", err
	}

	sort.SliceStable(hands, func(i, j int) bool { return less(hands[i], hands[j]) })

	total := 0
	for i, h := range hands {
		total += (i + 1) * h.bid
	}
	return puzzle.Answer(total), nil
}

func less(a, b hand) bool {
	if a.kind != b.kind {
		return a.kind < b.kind
	}
	for i := range a.cards {
		if a.cards[i] != b.cards[i] {
			return a.cards[i] < b.cards[i]
		}
	}
	return false
}

// parse reads "32T3K 765".
func (p handParser) parse(line string) (hand, error) {
	return scan.All(line, func(c *scan.Cursor) (hand, error) {
		var h hand
		var labels [5]byte
		for i := range labels {
			b, err := c.OneOf(p.order)
			if err != nil {
				return hand{}, err
			}
			labels[i] = b
			h.cards[i] = strings.IndexByte(p.order, b)
		}
		if err := c.Spaces1(); err != nil {
			return hand{}, err
		}
		bid, err := c.Int()
		if err != nil {
			return hand{}, err
		}
		c.Spaces()
		h.bid = bid
		h.kind = p.classify(labels)
		return h, nil
	})
}

// classify derives the hand type from label counts. Jokers join the largest
// group, which is always the best use of them.
func (p handParser) classify(labels [5]byte) kind {
	counts := map[byte]int{}
	jokers := 0
	for _, b := range labels {
		if p.jokers && b == 'J' {
			jokers++
			continue
		}
		counts[b]++
	}

	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.Sort(groups)
	slices.Reverse(groups)
	if len(groups) == 0 {
		groups = []int{0}
	}
	groups[0] += jokers

	switch {
	case groups[0] == 5:
		return fiveOfAKind
	case groups[0] == 4:
		return fourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return fullHouse
	case groups[0] == 3:
		return threeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return twoPair
	case groups[0] == 2:
		return onePair
	default:
		return highCard
	}
}
