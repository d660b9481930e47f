package commands

import (
	"fmt"

	"FinSentinel/internal/collector"
	"FinSentinel/internal/config"
	"FinSentinel/internal/fund"
	"FinSentinel/internal/logger"
	"FinSentinel/internal/recorder"

	"github.com/sirupsen/logrus"
)

// app holds the components shared by every command.
type app struct {
	cfg      *config.Config
	provider collector.Provider
	planner  *fund.Planner
	recorder recorder.Recorder
}

func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	if err := logger.Setup(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		return nil, err
	}

	provider := collector.NewIndianAPIProvider(collector.ProviderConfig{
		BaseURL: cfg.DataSource.BaseURL,
		APIKey:  cfg.DataSource.APIKey,
		Proxy:   cfg.Proxy,
		Timeout: cfg.DataSource.Timeout,
	})
	logrus.WithField("provider", provider.Name()).Debug("data source ready")

	rates, err := fund.LoadRateTable(cfg.Rates.File)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:      cfg,
		provider: provider,
		planner:  fund.NewPlanner(provider, rates),
		recorder: openRecorder(cfg.Database.SQLitePath),
	}, nil
}

func openRecorder(path string) recorder.Recorder {
	if noJournal || path == "" {
		return recorder.NewNoopRecorder()
	}
	sr, err := recorder.NewSQLiteRecorder(path)
	if err != nil {
		logrus.Warnf("init sqlite recorder failed, using noop: %v", err)
		return recorder.NewNoopRecorder()
	}
	return sr
}

func (a *app) Close() error {
	return a.recorder.Close()
}
