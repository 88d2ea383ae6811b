package domain

import (
	"context"
	"net"
	"time"

	"github.com/cockroachdb/errors"
)

// RunResult is the outcome of solving one part of one day.
type RunResult struct {
	Day   DayID  `json:"day"`
	Part  PartID `json:"part"`
	Title string `json:"title,omitempty"`

	InputPath string `json:"input_path,omitempty"`
	InputSize int    `json:"input_bytes"`

	Answer string `json:"answer,omitempty"`

	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`

	Error *RunError `json:"error,omitempty"`

	// RunID is set once the result has been saved as an artifact.
	RunID string `json:"run_id,omitempty"`
}

// Duration reports how long the solver ran.
func (r RunResult) Duration() time.Duration {
	if r.StartedAt.IsZero() || r.EndedAt.IsZero() {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}

// RunError is the serialisable form of a failed solve.
type RunError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// NewRunError captures err's kind and message; nil stays nil.
func NewRunError(err error) *RunError {
	if err == nil {
		return nil
	}
	kind := KindOf(err)
	if kind == "" {
		kind = KindExecution
	}
	return &RunError{Kind: kind, Message: err.Error()}
}

// RunArtifact represents a persisted run for reproducibility.
type RunArtifact struct {
	ID string `json:"id,omitempty"`

	Year int `json:"year"`

	Run RunResult `json:"run"`
}

// FetchErrorKind is a high-level classification of download failures.
type FetchErrorKind string

const (
	FetchErrorUnknown FetchErrorKind = "unknown"
	FetchErrorTimeout FetchErrorKind = "timeout"
	FetchErrorDNS     FetchErrorKind = "dns"
	FetchErrorConn    FetchErrorKind = "connection"
)

// ClassifyFetchError maps transport errors onto a small set of kinds.
func ClassifyFetchError(err error) FetchErrorKind {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return FetchErrorTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return FetchErrorDNS
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return FetchErrorTimeout
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return FetchErrorConn
	}

	return FetchErrorUnknown
}
