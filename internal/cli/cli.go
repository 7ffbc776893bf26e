package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/vk/matrixgen/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := pflag.NewFlagSet("matrixgen", pflag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
matrixgen - Aggregates per-project test enumeration descriptors into a CI
execution matrix of independently schedulable test work items.

Usage:
  matrixgen --descriptor-dir DIR --out FILE [options]

Options:
`)
		fmt.Fprintln(output, flagSet.FlagUsages())
	}

	descriptorDirFlag := flagSet.String("descriptor-dir", "", "Directory containing enumeration descriptor JSON files.")
	helixDirFlag := flagSet.String("helix-dir", "", "Directory containing split metadata and test-list files. Defaults to the descriptor directory.")
	outFlag := flagSet.String("out", "", "Path for the matrix JSON artifact.")
	legacyListFlag := flagSet.String("legacy-list-out", "", "Optional path for the flat regular-project short-name list.")
	legacyJSONFlag := flagSet.String("legacy-json-out", "", "Optional path for the regular-project records JSON companion.")
	osFlag := flagSet.String("os", "all", "Restrict entries to projects supporting this OS, or 'all' for no filtering.")
	settingsFlag := flagSet.String("settings", "", "Optional HCL settings file tuning conventions and metadata defaults.")
	timeoutFlag := flagSet.Duration("timeout", 10*time.Minute, "Overall time budget for matrix generation. 0 disables the limit.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if *descriptorDirFlag == "" || *outFlag == "" {
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "--descriptor-dir and --out are required"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *timeoutFlag < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid timeout: must not be negative"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		DescriptorDir:     *descriptorDirFlag,
		HelixDir:          *helixDirFlag,
		MatrixOutPath:     *outFlag,
		LegacyListOutPath: *legacyListFlag,
		LegacyJSONOutPath: *legacyJSONFlag,
		RequestedOS:       *osFlag,
		SettingsPath:      *settingsFlag,
		Timeout:           *timeoutFlag,
		LogFormat:         logFormat,
		LogLevel:          logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return config, false, nil
}
