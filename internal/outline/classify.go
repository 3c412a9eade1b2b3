package outline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/basuhimanish/challenge1a/internal/config"
	"github.com/basuhimanish/challenge1a/internal/document"
)

// Candidate is a line provisionally assigned a heading level.
type Candidate struct {
	Line     document.Line
	Level    string
	Language string
}

var tierLevels = [maxTiers]string{
	document.LevelTitle,
	document.LevelH1,
	document.LevelH2,
	document.LevelH3,
}

// Classifier assigns heading levels to lines using the document's size
// profile plus text-pattern corroboration. detect maps heading text to a
// language code; a nil detect tags every candidate "unknown".
type Classifier struct {
	cfg    config.Config
	detect func(string) string
}

func NewClassifier(cfg config.Config, detect func(string) string) *Classifier {
	return &Classifier{cfg: cfg, detect: detect}
}

// Classify walks lines in document order and keeps those that sit on a
// heading tier and look like headings. Matching a tier size alone is not
// enough: body text regularly shares a size with headings, so at least one
// corroborating pattern must also hold. Output order equals input order.
func (c *Classifier) Classify(lines []document.Line, profile SizeProfile) []Candidate {
	var out []Candidate
	for _, ln := range lines {
		tier := profile.TierFor(ln.FontSize, c.cfg.FontSizeTolerance)
		if tier < 0 {
			continue
		}
		text := strings.TrimSpace(ln.Text)
		if isRejected(text, c.cfg.MaxHeadingRunes) {
			continue
		}
		if !hasNumbering(text) && !isShort(text, c.cfg.MaxHeadingWords) && !ln.Bold && !isAllCapsShort(text) {
			continue
		}
		language := "unknown"
		if c.detect != nil {
			language = c.detect(text)
		}
		out = append(out, Candidate{Line: ln, Level: tierLevels[tier], Language: language})
	}
	return out
}

var (
	// "1. Intro", "1.1 Background", "2) Scope", "(3) Terms". A bare leading
	// number ("2024 was a good year") is not numbering.
	decimalHeadingRe = regexp.MustCompile(`^\(?\d+([.)]|(\.\d+)+\.?)\s`)
	// "Chapter 1", "Section 2.3", "Part IV" style labels
	labelHeadingRe = regexp.MustCompile(`(?i)^(chapter|section|part|appendix)\s+(\d+|[ivxlc]+)\b`)
	// CJK chapter markers
	cjkHeadingRe = regexp.MustCompile(`第[0-9０-９一二三四五六七八九十百]+[章节節部編编]`)
)

func hasNumbering(text string) bool {
	return decimalHeadingRe.MatchString(text) ||
		labelHeadingRe.MatchString(text) ||
		cjkHeadingRe.MatchString(text)
}

func isShort(text string, maxWords int) bool {
	return len(strings.Fields(text)) <= maxWords
}

// isAllCapsShort matches shouty headings like "RESULTS AND DISCUSSION".
// Scripts without case never qualify; they pass through the other checks.
func isAllCapsShort(text string) bool {
	if utf8.RuneCountInString(text) >= 50 {
		return false
	}
	hasCased := strings.ToLower(text) != text
	return hasCased && text == strings.ToUpper(text)
}

// isRejected fires on lines that can never be headings no matter what size
// they render at: empty, overlong, or carrying no letters (page numbers,
// rules, decorative punctuation).
func isRejected(text string, maxRunes int) bool {
	if text == "" || utf8.RuneCountInString(text) > maxRunes {
		return true
	}
	for _, r := range text {
		if unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
