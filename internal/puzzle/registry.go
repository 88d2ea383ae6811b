package puzzle

import (
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/jsfr/advent-of-code-2023/internal/domain"
)

// Entry ties a day to the constructor of its solver.
type Entry struct {
	Day   domain.DayID
	Title string
	New   func() Solver
}

// Registry is a lookup table from day id to solver constructor.
type Registry struct {
	entries map[domain.DayID]Entry
}

func NewRegistry(entries ...Entry) *Registry {
	r := &Registry{entries: make(map[domain.DayID]Entry, len(entries))}
	for _, e := range entries {
		r.Register(e)
	}
	return r
}

// Register adds an entry. Registering the same day twice or an entry without
// a constructor is a programming error and panics.
func (r *Registry) Register(e Entry) {
	if e.New == nil {
		panic("puzzle: nil constructor for day " + string(e.Day))
	}
	if _, dup := r.entries[e.Day]; dup {
		panic("puzzle: day " + string(e.Day) + " registered twice")
	}
	r.entries[e.Day] = e
}

// Lookup returns the entry for day or a not_found error.
func (r *Registry) Lookup(day domain.DayID) (Entry, error) {
	e, ok := r.entries[day]
	if !ok {
		return Entry{}, &domain.OpError{
			Op:   "puzzle.lookup",
			Kind: domain.KindNotFound,
			Err:  errors.Wrapf(domain.ErrNotFound, "day %s was not found", day),
		}
	}
	return e, nil
}

// Days lists all entries in day order.
func (r *Registry) Days() []Entry {
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}
