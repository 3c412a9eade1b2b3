package parser

import (
	"testing"

	"github.com/basuhimanish/challenge1a/internal/config"
	"github.com/basuhimanish/challenge1a/internal/document"
)

func testCfg() config.Config {
	return config.Config{
		RowTolerance:    0.5,
		WordGapFraction: 0.3,
	}
}

func TestAssembleLines_GroupsByBaseline(t *testing.T) {
	spans := []document.Span{
		{Text: "Hello", FontSize: 12, X: 10, Y: 700, W: 30, Page: 1},
		{Text: "world", FontSize: 12, X: 45, Y: 700.5, W: 30, Page: 1},
		{Text: "Below", FontSize: 12, X: 10, Y: 680, W: 30, Page: 1},
	}
	lines := AssembleLines(spans, testCfg())
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Text != "Hello world" {
		t.Errorf("expected %q, got %q", "Hello world", lines[0].Text)
	}
	if lines[1].Text != "Below" {
		t.Errorf("expected %q, got %q", "Below", lines[1].Text)
	}
}

func TestAssembleLines_TopToBottomOrder(t *testing.T) {
	// Input deliberately out of reading order.
	spans := []document.Span{
		{Text: "bottom", FontSize: 10, X: 10, Y: 100, W: 30, Page: 1},
		{Text: "top", FontSize: 10, X: 10, Y: 700, W: 30, Page: 1},
		{Text: "middle", FontSize: 10, X: 10, Y: 400, W: 30, Page: 1},
	}
	lines := AssembleLines(spans, testCfg())
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	want := []string{"top", "middle", "bottom"}
	for i, w := range want {
		if lines[i].Text != w {
			t.Errorf("line[%d]: expected %q, got %q", i, w, lines[i].Text)
		}
	}
}

func TestAssembleLines_XOrderWithinRow(t *testing.T) {
	// Spans on one row reported right to left must still read left to right.
	spans := []document.Span{
		{Text: "world", FontSize: 12, X: 50, Y: 500, W: 30, Page: 1},
		{Text: "Hello", FontSize: 12, X: 10, Y: 500, W: 30, Page: 1},
	}
	lines := AssembleLines(spans, testCfg())
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "Hello world" {
		t.Errorf("expected %q, got %q", "Hello world", lines[0].Text)
	}
}

func TestAssembleLines_NoSpaceForTightGap(t *testing.T) {
	// Character-level runs with no meaningful gap join without a space.
	spans := []document.Span{
		{Text: "H", FontSize: 12, X: 10, Y: 500, W: 7, Page: 1},
		{Text: "i", FontSize: 12, X: 17, Y: 500, W: 4, Page: 1},
	}
	lines := AssembleLines(spans, testCfg())
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "Hi" {
		t.Errorf("expected %q, got %q", "Hi", lines[0].Text)
	}
}

func TestAssembleLines_DropsWhitespaceSpans(t *testing.T) {
	spans := []document.Span{
		{Text: "   ", FontSize: 12, X: 10, Y: 500, W: 10, Page: 1},
		{Text: "Text", FontSize: 12, X: 25, Y: 500, W: 30, Page: 1},
	}
	lines := AssembleLines(spans, testCfg())
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "Text" {
		t.Errorf("expected %q, got %q", "Text", lines[0].Text)
	}
}

func TestAssembleLines_Empty(t *testing.T) {
	if lines := AssembleLines(nil, testCfg()); lines != nil {
		t.Errorf("expected no lines, got %v", lines)
	}
}

func TestAssembleLines_FontSizeIsRoundedMax(t *testing.T) {
	spans := []document.Span{
		{Text: "big", FontSize: 17.96, X: 10, Y: 500, W: 20, Page: 1},
		{Text: "small", FontSize: 12, X: 35, Y: 500, W: 20, Page: 1, Bold: true},
	}
	lines := AssembleLines(spans, testCfg())
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].FontSize != 18.0 {
		t.Errorf("expected font size 18.0, got %v", lines[0].FontSize)
	}
	if !lines[0].Bold {
		t.Error("expected line to inherit bold from member span")
	}
}

func TestRoundSize(t *testing.T) {
	if got := RoundSize(11.96); got != 12.0 {
		t.Errorf("expected 12.0, got %v", got)
	}
	if got := RoundSize(11.94); got != 11.9 {
		t.Errorf("expected 11.9, got %v", got)
	}
}
