package document

// Span is a single positioned text run as reported by PDF extraction.
type Span struct {
	Text     string  // Normalized text content
	FontSize float64 // Font size in points
	Bold     bool    // Derived from the font name
	X        float64 // Left edge of the run
	Y        float64 // Baseline (PDF coordinates, origin bottom-left)
	W        float64 // Advance width of the run
	Page     int     // 1-based page number
}

// Line is a visual row of spans after assembly.
type Line struct {
	Text     string  // Space-joined text of the row
	FontSize float64 // Max span size on the row, rounded to 0.1pt
	Bold     bool    // True if any member span is bold
	Page     int     // 1-based page number
	Y        float64 // Baseline of the row
}

// Heading levels as they appear in output. The title tier exists during
// classification but is never emitted as an outline entry.
const (
	LevelTitle = "title"
	LevelH1    = "H1"
	LevelH2    = "H2"
	LevelH3    = "H3"
)

// OutlineEntry is one emitted heading record.
type OutlineEntry struct {
	Level string `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Result is the per-document output.
type Result struct {
	Title   string         `json:"title"`
	Outline []OutlineEntry `json:"outline"`

	// Bookkeeping for the processing summary; not part of the per-file schema.
	Language  string `json:"-"`
	Pages     int    `json:"-"`
	Truncated bool   `json:"-"` // Document budget ran out before all pages were read
}

// Summary is one row of the batch processing summary.
type Summary struct {
	Filename string `json:"filename"`
	Title    string `json:"title"`
	Language string `json:"language"`
	Headings int    `json:"headings_count"`
	Pages    int    `json:"pages"`
}
