package template

import (
	"strings"
	"testing"

	"github.com/jsfr/advent-of-code-2023/internal/domain"
)

func TestRenderStringSingleVar(t *testing.T) {
	out, err := RenderString("day {{day}}", map[string]string{"day": "7"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "day 7" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestRenderStringInputURL(t *testing.T) {
	out, err := RenderString("https://adventofcode.com/{{year}}/day/{{ day }}/input", map[string]string{
		"year": "2023",
		"day":  "1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "https://adventofcode.com/2023/day/1/input" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestRenderStringErrors(t *testing.T) {
	cases := map[string]string{
		"Hello {{name}}": "unknown placeholder",
		"Hello {{name":   "unclosed",
		"Hello {{ }}":    "empty",
	}
	for in, want := range cases {
		_, err := RenderString(in, map[string]string{})
		if err == nil {
			t.Fatalf("%q: expected error", in)
		}
		if !domain.IsKind(err, domain.KindInvalidConfig) {
			t.Fatalf("%q: expected KindInvalidConfig, got %v", in, err)
		}
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("%q: expected %q in %v", in, want, err)
		}
	}
}

func TestRenderStringEmpty(t *testing.T) {
	out, err := RenderString("", nil)
	if err != nil || out != "" {
		t.Fatalf("expected empty output, got %q, %v", out, err)
	}
}
