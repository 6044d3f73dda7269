package main

import (
	"context"
	"fmt"

	"github.com/ruminaider/firefoxcss/internal/config"
	"github.com/ruminaider/firefoxcss/internal/paths"
	"github.com/ruminaider/firefoxcss/internal/profile"
	"github.com/ruminaider/firefoxcss/internal/themes"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loadConfig reads the optional config file.
func loadConfig() (config.Config, error) {
	return config.Load(paths.ConfigFile())
}

// profileDir resolves the profile to operate on: --profile, then
// FIREFOXCSS_PROFILE, then config.yaml, then profiles.ini.
func profileDir(cfg config.Config) (string, error) {
	if dir := cfg.ResolveProfile(profileFlag); dir != "" {
		return dir, nil
	}
	return profile.Default()
}

func newLogger() *zap.Logger {
	if !verboseFlag {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// openManager builds the Manager for this invocation.
func openManager() (*themes.Manager, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	dir, err := profileDir(cfg)
	if err != nil {
		return nil, err
	}
	logger := newLogger()
	logger.Debug("using profile", zap.String("dir", dir))
	return themes.NewManager(dir, themes.WithLogger(logger))
}

// fetchContext bounds git fetches by fetch_timeout when one is configured.
func fetchContext(cmd *cobra.Command) (context.Context, context.CancelFunc, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	timeout, err := cfg.Timeout()
	if err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}
	if timeout == 0 {
		ctx, cancel := context.WithCancel(ctx)
		return ctx, cancel, nil
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	return ctx, cancel, nil
}
