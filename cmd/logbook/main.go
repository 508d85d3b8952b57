package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"looking-glass/config"
	"looking-glass/internal/journal"
	"looking-glass/internal/journal/delivery/cli"
	"looking-glass/internal/journal/delivery/tui"
	"looking-glass/internal/journal/repository/remote"
	"looking-glass/internal/journal/usecase"
	"looking-glass/pkg/datemath"
	"looking-glass/pkg/log"
	"looking-glass/pkg/logsapi"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.New(cli.Options{
		Version: version,
		Setup:   setup,
		RunTUI:  tui.Run,
	})
	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// setup wires config, logger, API client, repository and use case.
func setup(ctx context.Context, flags cli.Flags) (journal.UseCase, log.Logger, error) {
	// 1. Configuration
	cfg, err := config.Load(flags.ConfigFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if flags.APIURL != "" {
		cfg.API.BaseURL = flags.APIURL
	}

	// 2. Logger. The TUI owns the terminal, so its logs go to a file.
	output := cfg.Logger.Output
	if flags.Interactive {
		output = cfg.Logger.TUIOutput
	}
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled && !flags.Interactive,
		OutputPaths:  []string{output},
	})
	logger.Debugf(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Debugf(ctx, "Log API: %s", cfg.API.BaseURL)

	// 3. Log API client and repository
	client := logsapi.NewClient(cfg.API.BaseURL, logsapi.Options{
		Timeout:         cfg.API.Timeout,
		RateLimitPerSec: cfg.API.RateLimitPerSec,
		Burst:           cfg.API.Burst,
	})
	repo := remote.New(client, logger, remote.Options{
		CacheSize: cfg.API.CacheSize,
		CacheTTL:  cfg.API.CacheTTL,
	})

	// 4. DateMath parser
	dates, err := datemath.NewParser(cfg.Journal.Timezone)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid journal.timezone: %w", err)
	}

	// 5. Log store
	return usecase.New(repo, logger, dates), logger, nil
}
