package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/matrixgen/internal/ctxlog"
	"github.com/vk/matrixgen/internal/descriptor"
	"github.com/vk/matrixgen/internal/matrix"
	"github.com/vk/matrixgen/internal/metadata"
	"github.com/vk/matrixgen/internal/settings"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	settings *settings.Settings
	reader   *descriptor.Reader
	resolver *metadata.Resolver
	builder  *matrix.Builder
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger, settings, and
// component wiring.
func NewApp(outW io.Writer, config *Config) (*App, error) {
	logger := newLogger(config.LogLevel, config.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	s, err := settings.Load(ctx, config.SettingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	logger.Debug("Settings resolved.", "scheme", s.NamingScheme, "descriptor_suffix", s.DescriptorSuffix)

	convention := s.Convention()

	return &App{
		outW:     outW,
		logger:   logger,
		config:   config,
		settings: s,
		reader:   descriptor.NewReader(s.DescriptorSuffix, config.RequestedOS),
		resolver: metadata.NewResolver(ctx, convention, s.DefaultOSes, s.MetadataOverrides),
		builder:  matrix.NewBuilder(convention),
	}, nil
}

// Settings returns the resolved settings. This is primarily for testing.
func (a *App) Settings() *settings.Settings {
	return a.settings
}
