// Command text-analyzer finds notation variants in Japanese documents.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/makechair/text-analyzer/internal/adapters/driven/config/file"
	"github.com/makechair/text-analyzer/internal/adapters/driven/filesystem"
	"github.com/makechair/text-analyzer/internal/adapters/driven/storage/sqlite"
	"github.com/makechair/text-analyzer/internal/adapters/driven/tokenizer/kagome"
	"github.com/makechair/text-analyzer/internal/adapters/driving/cli"
	"github.com/makechair/text-analyzer/internal/core/ports/driven"
	"github.com/makechair/text-analyzer/internal/core/services"
	"github.com/makechair/text-analyzer/internal/logger"
	"github.com/makechair/text-analyzer/internal/normalisers"
	"github.com/makechair/text-analyzer/internal/normalisers/docx"
	"github.com/makechair/text-analyzer/internal/normalisers/markdown"
	"github.com/makechair/text-analyzer/internal/normalisers/plaintext"
)

// version is set by the build.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	dir, err := file.DefaultDir()
	if err != nil {
		return fmt.Errorf("locating config directory: %w", err)
	}

	configStore, err := file.NewConfigStore(dir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}

	registry, err := newRegistry(settings.Document.Encoding)
	if err != nil {
		return err
	}
	documentService := services.NewDocumentService(filesystem.NewLoader(registry), registry)

	logger.SetAlwaysWarn(true)

	var reports driven.ReportStore
	if settings.History.Enabled {
		store, err := sqlite.NewStore(filepath.Join(dir, "data"))
		if err != nil {
			logger.Warn("history disabled: %v", err)
		} else {
			defer store.Close()
			reports = store.ReportStore()
		}
	}

	tokenizer := services.NewTokenizerHandle(
		kagome.NewLoader(settings.Tokenizer.Dictionary, settings.Tokenizer.UserDict),
	)
	analysisService := services.NewAnalysisService(tokenizer, settingsService, reports)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Analysis:    analysisService,
		Concordance: services.NewConcordanceService(analysisService),
		Document:    documentService,
		Reports:     services.NewReportService(reports),
		Settings:    settingsService,
		Watcher:     filesystem.NewWatcher(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cli.ExecuteContext(ctx)
}

// newRegistry registers every document normaliser. Plain text is decoded
// with the configured charset.
func newRegistry(encoding string) (*normalisers.Registry, error) {
	text, err := plaintext.NewWithCharset(encoding)
	if err != nil {
		return nil, fmt.Errorf("document.encoding: %w", err)
	}
	return normalisers.NewRegistry(text, markdown.New(), docx.New()), nil
}
