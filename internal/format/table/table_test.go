package table

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestFormatPadsColumns(t *testing.T) {
	got := Format([][]string{
		{"1", "Two Sum", "Easy"},
		{"1234", "Median", "Hard"},
	}, []Alignment{AlignRight, AlignLeft, AlignLeft})
	want := []string{
		"   1  Two Sum  Easy",
		"1234  Median   Hard",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatMeasuresStyledCells(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("ab")
	got := Format([][]string{{styled, "x"}, {"abcd", "y"}}, nil)
	if got[1] != "abcd  y" {
		t.Fatalf("unexpected plain row %q", got[1])
	}
	if got[0] != styled+"    x" {
		t.Fatalf("expected styled cell padded by visible width, got %q", got[0])
	}
}

func TestFormatRaggedRows(t *testing.T) {
	got := Format([][]string{{"a"}, {"b", "c"}}, nil)
	if got[0] != "a  " || got[1] != "b  c" {
		t.Fatalf("unexpected ragged output %q", got)
	}
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for no rows")
	}
}
