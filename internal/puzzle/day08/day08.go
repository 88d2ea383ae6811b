// Package day08 walks the desert network of left/right nodes.
package day08

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/jsfr/advent-of-code-2023/internal/puzzle"
	"github.com/jsfr/advent-of-code-2023/internal/puzzle/scan"
)

type Day struct{}

var _ puzzle.Solver = Day{}

const (
	start = "AAA"
	goal  = "ZZZ"
)

type fork struct {
	left, right string
}

type network struct {
	instructions string
	nodes        map[string]fork
}

// SolvePartOne counts the steps from AAA to ZZZ, repeating the instructions
// as often as needed.
func (Day) SolvePartOne(input string) (string, error) {
	n, err := parseNetwork(input)
	if err != nil {
		return "", err
	}
	steps, err := n.walk(start, goal)
	if err != nil {
		return "", err
	}
	return puzzle.Answer(steps), nil
}

func (Day) SolvePartTwo(string) (string, error) {
	return "", puzzle.NotImplemented("day08.part_two")
}

func (n network) walk(from, to string) (int, error) {
	// Past this many steps the walk has repeated a (node, instruction) state.
	limit := len(n.instructions) * (len(n.nodes) + 1)

	cur, steps := from, 0
	for cur != to {
		if steps > limit {
			return 0, puzzle.Missing("day08.walk", "%s is not reachable from %s", to, from)
		}
		f, ok := n.nodes[cur]
		if !ok {
			return 0, puzzle.Invalidf("day08.walk", "node %q is not defined", cur)
		}
		if n.instructions[steps%len(n.instructions)] == 'L' {
			cur = f.left
		} else {
			cur = f.right
		}
		steps++
	}
	return steps, nil
}

// parseNetwork reads the instruction line, a blank line and one
// "AAA = (BBB, CCC)" node per line.
func parseNetwork(input string) (network, error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	n, err := scan.All(input, func(c *scan.Cursor) (network, error) {
		instructions, err := c.Run("LR")
		if err != nil {
			return network{}, err
		}
		if err := c.Newline(); err != nil {
			return network{}, err
		}
		if err := c.Newline(); err != nil {
			return network{}, err
		}

		lines, err := scan.List(c, "\n", parseNode)
		if err != nil {
			return network{}, err
		}
		_ = c.Newline()

		nodes := make(map[string]fork, len(lines))
		for _, l := range lines {
			if _, dup := nodes[l.name]; dup {
				return network{}, errors.Newf("node %q is defined twice", l.name)
			}
			nodes[l.name] = l.fork
		}
		return network{instructions: instructions, nodes: nodes}, nil
	})
	if err != nil {
		return network{}, puzzle.Invalid("day08.parse", errors.Wrap(err, "failed to parse network"))
	}
	return n, nil
}

type node struct {
	name string
	fork fork
}

func parseNode(c *scan.Cursor) (node, error) {
	name, err := c.Alnum()
	if err != nil {
		return node{}, err
	}
	if err := c.Tag(" = ("); err != nil {
		return node{}, err
	}
	left, err := c.Alnum()
	if err != nil {
		return node{}, err
	}
	if err := c.Tag(", "); err != nil {
		return node{}, err
	}
	right, err := c.Alnum()
	if err != nil {
		return node{}, err
	}
	if err := c.Tag(")"); err != nil {
		return node{}, err
	}
	return node{name: name, fork: fork{left: left, right: right}}, nil
}
