package app

import (
	"errors"
	"strings"
	"time"

	"github.com/vk/matrixgen/internal/matrix"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DescriptorDir string // enumeration descriptor JSON files
	HelixDir      string // split metadata + test-list files

	MatrixOutPath     string
	LegacyListOutPath string // optional flat short-name list
	LegacyJSONOutPath string // optional regular-project records

	RequestedOS  string // concrete OS name, or "all"
	SettingsPath string // optional HCL settings file
	Timeout      time.Duration

	LogFormat string
	LogLevel  string
}

// NewConfig validates and normalizes a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.DescriptorDir == "" {
		return nil, errors.New("DescriptorDir is a required configuration field and cannot be empty")
	}
	if cfg.MatrixOutPath == "" {
		return nil, errors.New("MatrixOutPath is a required configuration field and cannot be empty")
	}

	// The helix artifacts usually sit next to the descriptors.
	if cfg.HelixDir == "" {
		cfg.HelixDir = cfg.DescriptorDir
	}
	if cfg.RequestedOS == "" {
		cfg.RequestedOS = matrix.AllOSes
	}
	cfg.RequestedOS = strings.ToLower(cfg.RequestedOS)

	return &cfg, nil
}
