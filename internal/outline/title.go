package outline

import (
	"strings"
	"unicode/utf8"

	"github.com/basuhimanish/challenge1a/internal/config"
	"github.com/basuhimanish/challenge1a/internal/document"
)

// TitleKey identifies the line chosen as title so the builder can keep it
// out of the outline.
type TitleKey struct {
	Page int
	Y    float64
	Text string
}

// SelectTitle picks the document title from the first page: the topmost
// line whose size equals the title tier and whose trimmed text is non-empty
// and not overlong. When no first-page line sits on the title tier, the
// largest-size line on the page serves as fallback. A document with no
// first-page text has an empty title.
func SelectTitle(lines []document.Line, profile SizeProfile, cfg config.Config) (string, TitleKey, bool) {
	var firstPage []document.Line
	for _, ln := range lines {
		if ln.Page == 1 && strings.TrimSpace(ln.Text) != "" {
			firstPage = append(firstPage, ln)
		}
	}
	if len(firstPage) == 0 {
		return "", TitleKey{}, false
	}

	if titleSize, ok := profile.TitleSize(); ok {
		for _, ln := range firstPage {
			if ln.FontSize == titleSize && fitsTitle(ln.Text, cfg) {
				return chosen(ln)
			}
		}
	}

	// Fallback: the largest size actually present on page one.
	best := firstPage[0]
	for _, ln := range firstPage[1:] {
		if ln.FontSize > best.FontSize {
			best = ln
		}
	}
	if fitsTitle(best.Text, cfg) {
		return chosen(best)
	}
	return "", TitleKey{}, false
}

func fitsTitle(text string, cfg config.Config) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) <= cfg.MaxTitleRunes
}

func chosen(ln document.Line) (string, TitleKey, bool) {
	text := strings.TrimSpace(ln.Text)
	return text, TitleKey{Page: ln.Page, Y: ln.Y, Text: text}, true
}
