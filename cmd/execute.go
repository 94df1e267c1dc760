// Package cmd implements the command-line interface and orchestration logic for layoutsyn.
// It wires the layout tables, dictionary, scan workers and output logger together,
// providing the main business logic behind the root command and its subcommands.
package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"layoutsyn/internal/concurrent"
	"layoutsyn/internal/config"
	"layoutsyn/internal/dictionary"
	"layoutsyn/internal/layout"
	"layoutsyn/internal/log"
	"layoutsyn/internal/synonym"
	"layoutsyn/internal/translator"
)

func executeSearch(ctx context.Context, cfg *config.Config, out, diag io.Writer) error {
	startTime := time.Now()
	diagnostics := log.NewDiagnostics(cfg, diag)

	from, err := layout.Get(cfg.From)
	if err != nil {
		return err
	}
	to, err := layout.Get(cfg.To)
	if err != nil {
		return err
	}

	tr, err := translator.New(from, to)
	if err != nil {
		return err
	}

	dict, err := dictionary.Load(cfg.Dictionary)
	if err != nil {
		return err
	}
	diagnostics.Info("dictionary.loaded", "path", cfg.Dictionary, "words", dict.Len())

	logger, err := log.NewLogger(cfg, out, diag)
	if err != nil {
		return err
	}
	defer logger.Close()

	processor := concurrent.NewProcessor(cfg, dict, tr)
	diagnostics.Debug("scan.start", "from", cfg.From, "to", cfg.To, "workers", processor.WorkerCount())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results, err := processor.Scan(ctx)
	if err != nil {
		return err
	}

	for result := range results {
		if result.Result.Status != synonym.StatusFiltered {
			diagnostics.Debug("scan.word", "word", result.Result.Word, "status", string(result.Result.Status))
		}
		logger.LogResult(result)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := logger.Flush(); err != nil {
		return fmt.Errorf("failed to write synonyms: %w", err)
	}

	logger.SetProcessingTime(time.Since(startTime))
	summary := logger.Summary()
	diagnostics.Info("scan.complete",
		"words", summary.TotalWords,
		"synonyms", summary.Synonyms,
		"untranslatable", summary.Untranslatable,
		"duration", summary.ProcessingTime)

	return logger.WriteReport()
}
