package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/basuhimanish/challenge1a/internal/config"
	"github.com/basuhimanish/challenge1a/internal/document"
	"golang.org/x/sync/errgroup"
)

// Runner processes every PDF in the input directory and writes one JSON
// output per input, plus a processing summary. Documents share no state, so
// they fan out across a bounded worker group; each worker writes only its
// own output file.
type Runner struct {
	cfg  config.Config
	proc *Processor
	log  *slog.Logger
}

func NewRunner(cfg config.Config, log *slog.Logger) *Runner {
	return &Runner{cfg: cfg, proc: NewProcessor(cfg, log), log: log}
}

// Run scans the input directory and processes all PDFs. Per-file failures
// are logged and produce a minimal output file; only a missing or unusable
// input/output directory is fatal.
func (r *Runner) Run(ctx context.Context) error {
	entries, err := os.ReadDir(r.cfg.InputDir)
	if err != nil {
		return fmt.Errorf("read input dir: %w", err)
	}
	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		r.log.Warn("no PDF files found", "dir", r.cfg.InputDir)
	} else {
		r.log.Info("processing batch", "files", len(names), "workers", r.cfg.WorkerCount)
	}

	var (
		mu        sync.Mutex
		summaries []document.Summary
	)

	g := &errgroup.Group{}
	g.SetLimit(r.cfg.WorkerCount)
	for _, name := range names {
		name := name
		g.Go(func() error {
			sum := r.processFile(ctx, name)
			mu.Lock()
			summaries = append(summaries, sum)
			mu.Unlock()
			return nil
		})
	}
	g.Wait()

	if err := r.writeSummary(summaries); err != nil {
		r.log.Error("summary write failed", "error", err)
	}
	return nil
}

// processFile runs one document end to end and always leaves an output file
// behind, minimal when processing failed.
func (r *Runner) processFile(ctx context.Context, name string) document.Summary {
	log := r.log.With("file", name)
	inPath := filepath.Join(r.cfg.InputDir, name)
	outName := strings.TrimSuffix(name, filepath.Ext(name)) + ".json"
	outPath := filepath.Join(r.cfg.OutputDir, outName)

	res, err := r.proc.Process(ctx, inPath)
	if err != nil {
		log.Error("processing failed, writing minimal output", "error", err)
	} else {
		log.Info("processed", "title", res.Title, "headings", len(res.Outline),
			"pages", res.Pages, "language", res.Language, "truncated", res.Truncated)
	}
	if res.Outline == nil {
		res.Outline = []document.OutlineEntry{}
	}

	if werr := writeJSON(outPath, res); werr != nil {
		log.Error("output write failed", "path", outPath, "error", werr)
	}

	return document.Summary{
		Filename: name,
		Title:    res.Title,
		Language: res.Language,
		Headings: len(res.Outline),
		Pages:    res.Pages,
	}
}

// batchSummary is the shape of processing_summary.json.
type batchSummary struct {
	ProcessedFiles    int                `json:"processed_files"`
	Files             []document.Summary `json:"files"`
	LanguagesDetected []string           `json:"languages_detected"`
}

func (r *Runner) writeSummary(summaries []document.Summary) error {
	// Workers finish in arbitrary order; sort for stable output.
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Filename < summaries[j].Filename })

	seen := make(map[string]bool)
	var langs []string
	for _, s := range summaries {
		if !seen[s.Language] {
			seen[s.Language] = true
			langs = append(langs, s.Language)
		}
	}
	sort.Strings(langs)
	if langs == nil {
		langs = []string{}
	}
	if summaries == nil {
		summaries = []document.Summary{}
	}

	return writeJSON(filepath.Join(r.cfg.OutputDir, "processing_summary.json"), batchSummary{
		ProcessedFiles:    len(summaries),
		Files:             summaries,
		LanguagesDetected: langs,
	})
}

// writeJSON writes v with two-space indentation and HTML escaping off, so
// multilingual heading text survives byte for byte.
func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
