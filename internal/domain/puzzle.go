package domain

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// DayID identifies a puzzle day in its conventional two-digit form ("01").
type DayID string

// PartID selects one of the two answers of a day ("01" or "02").
type PartID string

const (
	PartOne PartID = "01"
	PartTwo PartID = "02"
)

// Parts lists the parts every day exposes, in order.
func Parts() []PartID {
	return []PartID{PartOne, PartTwo}
}

// ParseDay normalises a day argument. "1", "01" and " 01 " all map to "01".
// Anything that is not a number in 1..25 is rejected.
func ParseDay(s string) (DayID, error) {
	n, err := parseTwoDigit(s)
	if err != nil || n < 1 || n > 25 {
		return "", &OpError{
			Op:   "domain.parse_day",
			Kind: KindNotFound,
			Err:  errors.Wrapf(ErrNotFound, "day %s was not found", strings.TrimSpace(s)),
		}
	}
	return DayID(pad(n)), nil
}

// ParsePart normalises a part argument; only one and two exist.
func ParsePart(s string) (PartID, error) {
	n, err := parseTwoDigit(s)
	if err != nil || n < 1 || n > 2 {
		return "", &OpError{
			Op:   "domain.parse_part",
			Kind: KindNotFound,
			Err:  errors.Wrapf(ErrNotFound, "part %s was not found", strings.TrimSpace(s)),
		}
	}
	return PartID(pad(n)), nil
}

// Number returns the day as an integer (0 if malformed).
func (d DayID) Number() int {
	n, _ := strconv.Atoi(string(d))
	return n
}

func (p PartID) String() string {
	switch p {
	case PartOne:
		return "part one"
	case PartTwo:
		return "part two"
	default:
		return "part " + string(p)
	}
}

func parseTwoDigit(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 2 {
		return 0, errors.Newf("malformed id %q", s)
	}
	return strconv.Atoi(s)
}

func pad(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
