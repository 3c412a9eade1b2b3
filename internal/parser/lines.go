package parser

import (
	"math"
	"sort"
	"strings"

	"github.com/basuhimanish/challenge1a/internal/config"
	"github.com/basuhimanish/challenge1a/internal/document"
)

// AssembleLines groups one page's spans into visual rows and returns them in
// top-to-bottom reading order. Two spans share a row when their baselines
// differ by less than RowTolerance times the smaller of their font sizes.
// Within a row, spans are ordered left to right and a space is inserted
// wherever the horizontal gap exceeds WordGapFraction of the font size.
// Every span with non-whitespace text lands in exactly one line.
func AssembleLines(spans []document.Span, cfg config.Config) []document.Line {
	var kept []document.Span
	for _, s := range spans {
		if strings.TrimSpace(s.Text) != "" {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return nil
	}

	// PDF origin is bottom-left, so descending Y is top-to-bottom.
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Y != kept[j].Y {
			return kept[i].Y > kept[j].Y
		}
		return kept[i].X < kept[j].X
	})

	var lines []document.Line
	var row []document.Span
	for _, s := range kept {
		if len(row) == 0 || sameRow(row[0], s, cfg.RowTolerance) {
			row = append(row, s)
			continue
		}
		lines = append(lines, buildLine(row, cfg))
		row = []document.Span{s}
	}
	lines = append(lines, buildLine(row, cfg))
	return lines
}

func sameRow(a, b document.Span, tolerance float64) bool {
	tol := tolerance * math.Min(a.FontSize, b.FontSize)
	if tol <= 0 {
		tol = 1.0
	}
	return math.Abs(a.Y-b.Y) < tol
}

// buildLine merges a row of spans into a single line. Row membership was
// decided by baseline, so here only the X order matters.
func buildLine(row []document.Span, cfg config.Config) document.Line {
	sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })

	var sb strings.Builder
	var maxSize float64
	bold := false
	prevEnd := math.Inf(-1)
	for i, s := range row {
		if i > 0 && s.X-prevEnd > cfg.WordGapFraction*s.FontSize {
			sb.WriteString(" ")
		}
		sb.WriteString(s.Text)
		if end := s.X + s.W; end > prevEnd {
			prevEnd = end
		}
		if s.FontSize > maxSize {
			maxSize = s.FontSize
		}
		if s.Bold {
			bold = true
		}
	}

	return document.Line{
		Text:     strings.Join(strings.Fields(sb.String()), " "),
		FontSize: RoundSize(maxSize),
		Bold:     bold,
		Page:     row[0].Page,
		Y:        row[0].Y,
	}
}

// RoundSize rounds a font size to 0.1pt, the granularity all tier
// comparisons work at.
func RoundSize(size float64) float64 {
	return math.Round(size*10) / 10
}
