package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/basuhimanish/challenge1a/internal/config"
	"github.com/basuhimanish/challenge1a/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	inputDir  string
	outputDir string
)

var rootCmd = &cobra.Command{
	Use:   "outliner",
	Short: "Extract titles and heading outlines from PDF files",
	Long: `outliner scans a directory of PDF files and writes, for each
name.pdf, a sibling name.json holding the document title and an H1-H3
heading outline inferred from font sizes and text patterns. It runs fully
offline on CPU; unreadable files yield a minimal output instead of failing
the batch.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

		cfg := config.Load()
		if inputDir != "" {
			cfg.InputDir = inputDir
		}
		if outputDir != "" {
			cfg.OutputDir = outputDir
		}
		if err := cfg.Validate(); err != nil {
			log.Error("invalid configuration", "error", err)
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		log.Info("starting outliner", "input", cfg.InputDir, "output", cfg.OutputDir)
		if err := pipeline.NewRunner(cfg, log).Run(ctx); err != nil {
			log.Error("batch failed", "error", err)
			return err
		}
		return nil
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&inputDir, "input", "i", "", "input directory (default $INPUT_DIR or /app/input)")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (default $OUTPUT_DIR or /app/output)")
}
