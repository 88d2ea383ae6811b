package domain

import (
	"strings"
	"testing"
)

func TestParseDay(t *testing.T) {
	cases := []struct {
		input   string
		want    DayID
		wantErr bool
	}{
		{"01", "01", false},
		{"1", "01", false},
		{" 7 ", "07", false},
		{"11", "11", false},
		{"25", "25", false},
		{"00", "", true},
		{"26", "", true},
		{"001", "", true},
		{"ab", "", true},
		{"", "", true},
	}
	for _, c := range cases {
		got, err := ParseDay(c.input)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseDay(%q) expected error, got %q", c.input, got)
			} else if !IsKind(err, KindNotFound) {
				t.Errorf("ParseDay(%q) expected KindNotFound, got %v", c.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDay(%q) unexpected error: %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseDay(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestParsePart(t *testing.T) {
	cases := []struct {
		input   string
		want    PartID
		wantErr bool
	}{
		{"01", PartOne, false},
		{"1", PartOne, false},
		{"02", PartTwo, false},
		{"2", PartTwo, false},
		{"03", "", true},
		{"0", "", true},
		{"two", "", true},
	}
	for _, c := range cases {
		got, err := ParsePart(c.input)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParsePart(%q) expected error, got %q", c.input, got)
			}
			continue
		}
		if err != nil || got != c.want {
			t.Errorf("ParsePart(%q) = %q, %v; want %q", c.input, got, err, c.want)
		}
	}
}

func TestParsePart_ErrorNamesPart(t *testing.T) {
	_, err := ParsePart("03")
	if err == nil {
		t.Fatal("expected error")
	}
	if want := "part 03 was not found"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected %q in %q", want, err.Error())
	}
}

func TestDayNumber(t *testing.T) {
	if got := DayID("09").Number(); got != 9 {
		t.Fatalf("Number() = %d, want 9", got)
	}
	if got := PartTwo.String(); got != "part two" {
		t.Fatalf("String() = %q", got)
	}
}
