package domain

import "sort"

// AnswerBook holds the known-good answers of a workspace, keyed by day and part.
type AnswerBook map[DayID]map[PartID]string

// Want returns the pinned answer for day/part.
func (b AnswerBook) Want(day DayID, part PartID) (string, bool) {
	parts, ok := b[day]
	if !ok {
		return "", false
	}
	v, ok := parts[part]
	return v, ok
}

// Days returns the days that have at least one pinned answer, in order.
func (b AnswerBook) Days() []DayID {
	out := make([]DayID, 0, len(b))
	for d, parts := range b {
		if len(parts) > 0 {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Verification is the comparison of one pinned answer with a fresh solve.
type Verification struct {
	Day    DayID     `json:"day"`
	Part   PartID    `json:"part"`
	Want   string    `json:"want"`
	Got    string    `json:"got,omitempty"`
	Passed bool      `json:"passed"`
	Error  *RunError `json:"error,omitempty"`
}
