package outline

import (
	"strings"

	"github.com/basuhimanish/challenge1a/internal/document"
)

// Build maps heading candidates to outline entries, preserving document
// order. Title-tier candidates and the selected title line never become
// entries. Cleanup is deliberately local: an entry identical in text and
// page to its immediate predecessor is dropped (overlapping spans and
// repeated header artifacts produce these), but no missing ancestor levels
// are invented and nothing is re-sorted.
func Build(cands []Candidate, title TitleKey, haveTitle bool) []document.OutlineEntry {
	out := make([]document.OutlineEntry, 0, len(cands))
	for _, c := range cands {
		if c.Level == document.LevelTitle {
			continue
		}
		text := strings.TrimSpace(c.Line.Text)
		if haveTitle && c.Line.Page == title.Page && c.Line.Y == title.Y && text == title.Text {
			continue
		}
		entry := document.OutlineEntry{Level: c.Level, Text: text, Page: c.Line.Page}
		if n := len(out); n > 0 {
			prev := out[n-1]
			// Same heading twice in a row collapses to its first
			// occurrence, even when the duplicate landed on another tier.
			if prev.Text == entry.Text && prev.Page == entry.Page {
				continue
			}
		}
		out = append(out, entry)
	}
	return out
}
