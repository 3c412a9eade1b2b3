package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Directories
	InputDir  string
	OutputDir string

	// Worker pool
	WorkerCount int

	// Per-document wall-clock budget
	DocTimeout time.Duration

	// Heading heuristics. Tuned empirically; all overridable per deployment.
	FontSizeTolerance float64 // Max distance (pt) from a tier size to still match it
	MaxHeadingWords   int     // Word-count ceiling for the "short line" heading check
	MaxHeadingRunes   int     // Lines longer than this are never headings
	MaxTitleRunes     int     // Title candidates longer than this are skipped
	MinDetectRunes    int     // Below this, language detection reports "unknown"

	// Line assembly
	RowTolerance    float64 // Fraction of the smaller font size for same-row grouping
	WordGapFraction float64 // Fraction of font size treated as a word boundary
}

func Load() Config {
	cfg := Config{
		InputDir:  envOr("INPUT_DIR", "/app/input"),
		OutputDir: envOr("OUTPUT_DIR", "/app/output"),

		WorkerCount: envInt("WORKER_COUNT", 4),

		DocTimeout: envDuration("DOC_TIMEOUT", 10*time.Second),

		FontSizeTolerance: envFloat64("FONT_SIZE_TOLERANCE", 0.5),
		MaxHeadingWords:   envInt("MAX_HEADING_WORDS", 15),
		MaxHeadingRunes:   envInt("MAX_HEADING_RUNES", 200),
		MaxTitleRunes:     envInt("MAX_TITLE_RUNES", 150),
		MinDetectRunes:    envInt("MIN_DETECT_RUNES", 10),

		RowTolerance:    envFloat64("ROW_TOLERANCE", 0.5),
		WordGapFraction: envFloat64("WORD_GAP_FRACTION", 0.3),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.DocTimeout <= 0 {
		cfg.DocTimeout = 10 * time.Second
	}
	if cfg.FontSizeTolerance <= 0 {
		cfg.FontSizeTolerance = 0.5
	}
	if cfg.MaxHeadingWords <= 0 {
		cfg.MaxHeadingWords = 15
	}
	if cfg.MaxHeadingRunes <= 0 {
		cfg.MaxHeadingRunes = 200
	}
	if cfg.MaxTitleRunes <= 0 {
		cfg.MaxTitleRunes = 150
	}
	if cfg.MinDetectRunes <= 0 {
		cfg.MinDetectRunes = 10
	}
	if cfg.RowTolerance <= 0 {
		cfg.RowTolerance = 0.5
	}
	if cfg.WordGapFraction <= 0 {
		cfg.WordGapFraction = 0.3
	}

	return cfg
}

func (c Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("INPUT_DIR must not be empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("OUTPUT_DIR must not be empty")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat64(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
