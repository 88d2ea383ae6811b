package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsfr/advent-of-code-2023/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderRun(t Theme, run domain.RunResult, err error) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Day %s, %s", run.Day, run.Part))
	if run.Title != "" {
		b.WriteString(": ")
		b.WriteString(run.Title)
	}
	b.WriteString("\n\n")

	if err != nil {
		b.WriteString(t.Error.Render(userMessage(err)))
		b.WriteString("\n")
		if run.Error != nil {
			b.WriteString("\n  - kind: ")
			b.WriteString(string(run.Error.Kind))
			b.WriteString("\n  - msg: ")
			b.WriteString(clampString(run.Error.Message, 200))
			b.WriteString("\n")
		}
		return b.String()
	}

	b.WriteString("The answer is:\n")
	b.WriteString(t.Answer.Render(run.Answer))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Solved in %s", run.Duration().Round(time.Microsecond)))
	b.WriteString("\n")

	return b.String()
}
