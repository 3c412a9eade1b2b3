package outline

import (
	"math"
	"sort"

	"github.com/basuhimanish/challenge1a/internal/document"
	"github.com/basuhimanish/challenge1a/internal/parser"
)

// Tier indices into a SizeProfile.
const (
	TierTitle = iota
	TierH1
	TierH2
	TierH3
	maxTiers
)

// SizeProfile holds the document-wide font size distribution and the sizes
// assigned to each heading tier. The largest distinct size is the title
// tier, the next three are H1..H3; anything smaller is body text. Documents
// with fewer distinct sizes collapse from the bottom, so two sizes mean
// title + H1 and a single size means no headings at all.
type SizeProfile struct {
	Sizes []float64       // Distinct rounded sizes, descending
	Count map[float64]int // Lines observed per rounded size
	Tiers []float64       // Tier sizes, TierTitle first; len <= 4
}

// NewSizeProfile computes the profile over every line in the document.
func NewSizeProfile(lines []document.Line) SizeProfile {
	count := make(map[float64]int)
	for _, ln := range lines {
		count[parser.RoundSize(ln.FontSize)]++
	}

	sizes := make([]float64, 0, len(count))
	for s := range count {
		sizes = append(sizes, s)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))

	n := len(sizes)
	if n > maxTiers {
		n = maxTiers
	}
	tiers := make([]float64, n)
	copy(tiers, sizes[:n])

	return SizeProfile{Sizes: sizes, Count: count, Tiers: tiers}
}

// TierFor returns the tier index whose size is within tolerance of size.
// An exact match (sizes are pre-rounded) wins outright; otherwise tiers are
// scanned largest first, so a size sitting between two tiers resolves to
// the larger one. Returns -1 when no tier matches.
func (p SizeProfile) TierFor(size, tolerance float64) int {
	for i, t := range p.Tiers {
		if size == t {
			return i
		}
	}
	for i, t := range p.Tiers {
		if math.Abs(size-t) <= tolerance {
			return i
		}
	}
	return -1
}

// TitleSize returns the title tier size, if the document has any text.
func (p SizeProfile) TitleSize() (float64, bool) {
	if len(p.Tiers) == 0 {
		return 0, false
	}
	return p.Tiers[TierTitle], true
}
