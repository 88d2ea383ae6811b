// Package aocweb downloads personal puzzle inputs from the Advent of Code
// website using the account's session cookie.
package aocweb

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/jsfr/advent-of-code-2023/internal/app/template"
	"github.com/jsfr/advent-of-code-2023/internal/domain"
	"github.com/jsfr/advent-of-code-2023/internal/infra/httpclient"
	"github.com/jsfr/advent-of-code-2023/internal/ports"
)

const userAgent = "github.com/jsfr/advent-of-code-2023 (aoc fetch)"

type Fetcher struct {
	exec        *httpclient.Executor
	urlTemplate string
	sessionEnv  string
	sessionFile string
	getenv      func(string) string
}

type Option func(*Fetcher)

func WithExecutor(exec *httpclient.Executor) Option {
	return func(f *Fetcher) { f.exec = exec }
}

// WithGetenv replaces os.Getenv; useful for tests.
func WithGetenv(getenv func(string) string) Option {
	return func(f *Fetcher) { f.getenv = getenv }
}

func NewFetcher(cfg domain.FetchConfig, opts ...Option) *Fetcher {
	f := &Fetcher{
		exec:        httpclient.NewExecutor(),
		urlTemplate: cfg.URL,
		sessionEnv:  cfg.SessionEnv,
		sessionFile: cfg.SessionFile,
		getenv:      os.Getenv,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var _ ports.InputFetcher = (*Fetcher)(nil)

// URL renders the input URL of day. The day is substituted without its
// leading zero.
func (f *Fetcher) URL(year int, day domain.DayID) (string, error) {
	return template.RenderString(f.urlTemplate, map[string]string{
		"year": strconv.Itoa(year),
		"day":  strconv.Itoa(day.Number()),
	})
}

func (f *Fetcher) FetchInput(ctx context.Context, year int, day domain.DayID) ([]byte, error) {
	url, err := f.URL(year, day)
	if err != nil {
		return nil, err
	}

	session, err := f.session()
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set("Cookie", "session="+session)
	header.Set("User-Agent", userAgent)

	resp, err := f.exec.Get(ctx, url, header)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "aocweb.fetch",
			Kind: domain.KindExecution,
			Path: url,
			Err:  errors.Wrapf(err, "request failed (%s)", domain.ClassifyFetchError(err)),
		}
	}

	switch {
	case resp.Status == http.StatusOK:
	case resp.Status == http.StatusNotFound:
		return nil, &domain.OpError{
			Op:   "aocweb.fetch",
			Kind: domain.KindNotFound,
			Path: url,
			Err:  errors.Wrapf(domain.ErrNotFound, "input for day %s is not available yet", day),
		}
	case resp.Status == http.StatusBadRequest || resp.Status == http.StatusUnauthorized,
		resp.Status >= 300 && resp.Status < 400:
		return nil, &domain.OpError{
			Op:   "aocweb.fetch",
			Kind: domain.KindPrecondition,
			Path: url,
			Err:  errors.Mark(errors.Newf("session rejected (status %d)", resp.Status), domain.ErrPrecondition),
		}
	default:
		return nil, &domain.OpError{
			Op:   "aocweb.fetch",
			Kind: domain.KindExecution,
			Path: url,
			Err:  errors.Mark(errors.Newf("unexpected status %d", resp.Status), domain.ErrExecution),
		}
	}

	if len(resp.BodyBytes) == 0 {
		return nil, &domain.OpError{
			Op:   "aocweb.fetch",
			Kind: domain.KindExecution,
			Path: url,
			Err:  errors.Mark(errors.New("empty response body"), domain.ErrExecution),
		}
	}
	return resp.BodyBytes, nil
}

// session reads the token from the configured environment variable first,
// then from the session file.
func (f *Fetcher) session() (string, error) {
	if f.sessionEnv != "" {
		if v := strings.TrimSpace(f.getenv(f.sessionEnv)); v != "" {
			return v, nil
		}
	}

	if f.sessionFile != "" {
		path := expandHome(f.sessionFile, f.getenv("HOME"))
		b, err := os.ReadFile(path)
		if err != nil {
			return "", &domain.OpError{
				Op:   "aocweb.session",
				Kind: domain.KindIO,
				Path: path,
				Err:  errors.Wrap(err, "failed to read session file"),
			}
		}
		if v := strings.TrimSpace(string(b)); v != "" {
			return v, nil
		}
	}

	return "", &domain.OpError{
		Op:   "aocweb.session",
		Kind: domain.KindPrecondition,
		Err:  errors.Mark(errors.Newf("no session token: set %s or fetch.session_file in aoc.yaml", f.sessionEnv), domain.ErrPrecondition),
	}
}

func expandHome(path, home string) string {
	if home == "" || !strings.HasPrefix(path, "~/") {
		return path
	}
	return filepath.Join(home, path[2:])
}
