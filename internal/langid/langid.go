package langid

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/abadojack/whatlanggo"
)

// Unknown is reported whenever detection cannot decide.
const Unknown = "unknown"

// Tagger maps text to a best-guess ISO 639-1 language code. Detection is
// trigram-based and fully offline.
type Tagger struct {
	minRunes int
}

// New returns a Tagger that reports Unknown for inputs shorter than
// minRunes after cleaning.
func New(minRunes int) *Tagger {
	return &Tagger{minRunes: minRunes}
}

// Detect never fails: too-short, empty, or inconclusive input all come back
// as Unknown.
func (t *Tagger) Detect(text string) string {
	clean := cleanForDetection(text)
	if utf8.RuneCountInString(clean) < t.minRunes {
		return Unknown
	}
	info := whatlanggo.Detect(clean)
	if !info.IsReliable() {
		return Unknown
	}
	code := info.Lang.Iso6391()
	if code == "" {
		return Unknown
	}
	return code
}

// cleanForDetection keeps letters, digits and single spaces. Punctuation and
// layout noise skew the trigram profiles.
func cleanForDetection(text string) string {
	var sb strings.Builder
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
		default:
			sb.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}
