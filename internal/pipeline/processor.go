package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/basuhimanish/challenge1a/internal/config"
	"github.com/basuhimanish/challenge1a/internal/document"
	"github.com/basuhimanish/challenge1a/internal/langid"
	"github.com/basuhimanish/challenge1a/internal/outline"
	"github.com/basuhimanish/challenge1a/internal/parser"
)

// Processor runs the extraction pipeline for a single document. It holds no
// per-document state, so one Processor serves any number of concurrent
// files.
type Processor struct {
	cfg    config.Config
	ext    *parser.Extractor
	tagger *langid.Tagger
	log    *slog.Logger
}

func NewProcessor(cfg config.Config, log *slog.Logger) *Processor {
	return &Processor{
		cfg:    cfg,
		ext:    &parser.Extractor{},
		tagger: langid.New(cfg.MinDetectRunes),
		log:    log,
	}
}

// Process extracts the title and heading outline from the PDF at path.
// The wall-clock budget is checked once per page; when it runs out, the
// pages read so far are classified and a truncated result comes back
// instead of an error. An unreadable file returns a minimal result plus
// the *parser.DocumentError, so the caller can still write an output file.
func (p *Processor) Process(ctx context.Context, path string) (document.Result, error) {
	deadline := time.Now().Add(p.cfg.DocTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	var lines []document.Line
	truncated := false
	pages, err := p.ext.ExtractPages(path, func(_ int, spans []document.Span) bool {
		lines = append(lines, parser.AssembleLines(spans, p.cfg)...)
		if ctx.Err() != nil || time.Now().After(deadline) {
			truncated = true
			return false
		}
		return true
	})
	if err != nil {
		return minimalResult(), err
	}
	if truncated {
		p.log.Warn("document budget exhausted, classifying pages read so far",
			"file", path, "budget", p.cfg.DocTimeout)
	}

	res := p.analyze(lines)
	res.Pages = pages
	res.Truncated = truncated
	return res, nil
}

// analyze runs the classification stages over assembled lines. Split out so
// the heading logic can be exercised without a PDF on disk.
func (p *Processor) analyze(lines []document.Line) document.Result {
	profile := outline.NewSizeProfile(lines)

	classifier := outline.NewClassifier(p.cfg, p.tagger.Detect)
	cands := classifier.Classify(lines, profile)

	title, titleKey, haveTitle := outline.SelectTitle(lines, profile, p.cfg)
	entries := outline.Build(cands, titleKey, haveTitle)

	return document.Result{
		Title:    title,
		Outline:  entries,
		Language: p.tagger.Detect(joinText(lines)),
	}
}

func joinText(lines []document.Line) string {
	var sb strings.Builder
	for _, ln := range lines {
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(ln.Text)
	}
	return sb.String()
}

// minimalResult is what gets written for files that could not be read:
// downstream consumers rely on one output file per input file.
func minimalResult() document.Result {
	return document.Result{Title: "", Outline: []document.OutlineEntry{}, Language: langid.Unknown}
}
