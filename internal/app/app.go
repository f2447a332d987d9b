package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/bargain/internal/catalog"
	"github.com/five82/bargain/internal/cheapshark"
	"github.com/five82/bargain/internal/config"
	"github.com/five82/bargain/internal/prefs"
	"github.com/five82/bargain/internal/ui"
)

// Options configure the bargain application.
type Options struct {
	ConfigPath string // empty uses default ~/.config/bargain/config.toml
	PrefsPath  string // empty uses default ~/.config/bargain/prefs.toml
	LogLevel   string // overrides the configured level when set
}

// Run boots the bargain TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := cfg.LogLevel
	if override := strings.TrimSpace(opts.LogLevel); override != "" {
		level = override
	}
	logger, err := newLogger(level, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	client, err := cheapshark.NewClient(cfg.APIURL,
		cheapshark.WithTimeout(cfg.RequestTimeout),
		cheapshark.WithRedirectURL(cfg.RedirectURL),
		cheapshark.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("init cheapshark client: %w", err)
	}

	acquirer := catalog.NewAcquirer(client,
		catalog.WithLogger(logger),
		catalog.WithWorkers(cfg.EnrichWorkers),
	)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, _ := prefs.Load(prefsPath)

	logger.Info("bargain starting",
		zap.String("op", "app.Run"),
		zap.String("api_url", cfg.APIURL),
		zap.String("default_store", cfg.DefaultStore),
		zap.Int("enrich_workers", cfg.EnrichWorkers),
		zap.String("theme", userPrefs.Theme),
		zap.String("sort", userPrefs.Sort),
	)

	err = ui.Run(ui.Options{
		Context:      ctx,
		Catalog:      acquirer,
		Logger:       logger,
		DefaultStore: cfg.DefaultStore,
		ThemeName:    userPrefs.Theme,
		SortName:     userPrefs.Sort,
		PrefsPath:    prefsPath,
	})
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		// Interrupted by a signal; a clean exit.
		err = nil
	}
	if err != nil {
		logger.Error("ui exited", zap.String("op", "app.Run"), zap.Error(err))
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info("bargain stopped", zap.String("op", "app.Run"))
	return nil
}
