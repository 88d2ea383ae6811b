package tui

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/jsfr/advent-of-code-2023/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindNotFound:
			if strings.HasPrefix(oe.Op, "fsinput") {
				return "Input file not found (try aoc fetch)"
			}
			if strings.HasPrefix(oe.Op, "puzzle.lookup") {
				return "Day not found"
			}
			if strings.Contains(oe.Op, "workspacefinder.findroot") {
				return "Workspace not found"
			}
			return "Not found"

		case domain.KindIO:
			return "Could not read " + baseOr(oe.Path, "file")

		case domain.KindInvalidInput:
			line := extractLine(err.Error())
			if line != "" {
				return "Malformed puzzle input at line " + line
			}
			return "Malformed puzzle input"

		case domain.KindPrecondition:
			if oe.Err != nil {
				return "Puzzle input is incomplete: " + clampString(oe.Err.Error(), 80)
			}
			return "Puzzle input is incomplete"

		case domain.KindNotImplemented:
			return "This part is not solved yet"

		case domain.KindInvalidConfig:
			base := baseOr(oe.Path, "config")

			line := extractLine(err.Error())
			if line != "" {
				return "Invalid YAML at " + base + " line " + line
			}

			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid config"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if looksLikeYAMLProblem(err.Error()) {
		line := extractLine(err.Error())
		if line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

func baseOr(path, fallback string) string {
	if strings.TrimSpace(path) == "" {
		return fallback
	}
	return filepath.Base(path)
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
