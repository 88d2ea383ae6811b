package httpclient

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
)

// DefaultMaxBody bounds how much of a response body is read. Puzzle inputs
// are a few tens of kilobytes.
const DefaultMaxBody = 4 << 20

// ResponseData captures the response details and duration.
type ResponseData struct {
	Status    int
	Headers   http.Header
	BodyBytes []byte
	Duration  time.Duration
}

// Executor executes HTTP requests with timing.
type Executor struct {
	client  *http.Client
	timeout time.Duration
	maxBody int64
}

// ExecutorOption allows configuring an Executor.
type ExecutorOption func(*Executor)

// WithTimeout sets the default timeout applied to requests.
func WithTimeout(timeout time.Duration) ExecutorOption {
	return func(e *Executor) { e.timeout = timeout }
}

// WithClient sets a custom HTTP client.
func WithClient(client *http.Client) ExecutorOption {
	return func(e *Executor) { e.client = client }
}

// WithMaxBody caps the number of body bytes read.
func WithMaxBody(n int64) ExecutorOption {
	return func(e *Executor) { e.maxBody = n }
}

// NewExecutor builds an Executor with a default client and timeout.
func NewExecutor(opts ...ExecutorOption) *Executor {
	cfg := DefaultConfig()
	e := &Executor{
		client:  New(cfg),
		timeout: cfg.Timeout,
		maxBody: DefaultMaxBody,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Get issues a GET request with the given headers.
func (e *Executor) Get(ctx context.Context, url string, header http.Header) (ResponseData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ResponseData{}, errors.Wrapf(err, "build request for %s", url)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	return e.Do(ctx, req)
}

// Do executes the request and returns response data plus duration.
func (e *Executor) Do(ctx context.Context, req *http.Request) (ResponseData, error) {
	start := time.Now()
	ctxWithTimeout := ctx
	cancel := func() {}
	if e.timeout > 0 {
		ctxWithTimeout, cancel = context.WithTimeout(ctx, e.timeout)
	}
	defer cancel()

	resp, err := e.client.Do(req.WithContext(ctxWithTimeout))
	duration := time.Since(start)
	if err != nil {
		return ResponseData{Duration: duration}, err
	}
	defer resp.Body.Close()

	var body []byte
	if e.maxBody > 0 {
		body, err = io.ReadAll(io.LimitReader(resp.Body, e.maxBody+1))
		if err == nil && int64(len(body)) > e.maxBody {
			err = errors.Newf("response body exceeds %d bytes", e.maxBody)
		}
	} else {
		body, err = io.ReadAll(resp.Body)
	}
	if err != nil {
		return ResponseData{Status: resp.StatusCode, Duration: duration}, err
	}

	return ResponseData{
		Status:    resp.StatusCode,
		Headers:   resp.Header.Clone(),
		BodyBytes: body,
		Duration:  time.Since(start),
	}, nil
}
