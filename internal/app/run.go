package app

import (
	"context"
	"fmt"

	"github.com/vk/matrixgen/internal/ctxlog"
	"github.com/vk/matrixgen/internal/descriptor"
	"github.com/vk/matrixgen/internal/matrix"
	"github.com/vk/matrixgen/internal/splitlist"
)

// Run executes the single-pass matrix build: read all descriptors, derive
// entries per project, filter by OS, assemble, write artifacts. A broken
// individual project is logged and skipped; only an unwritable output is
// fatal. The configured timeout bounds the whole pass so a CI job can never
// hang on this step.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.Timeout)
		defer cancel()
	}

	descriptors, err := a.reader.Read(ctx, a.config.DescriptorDir)
	if err != nil {
		return fmt.Errorf("failed to read enumeration descriptors: %w", err)
	}

	var (
		regularEntries  []matrix.Entry
		splitEntries    []matrix.Entry
		regularProjects []*descriptor.Descriptor
	)

	for _, d := range descriptors {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("matrix generation aborted: %w", err)
		}

		if !d.Split() {
			md := a.resolver.Defaults(d.Project, d.ShortName)
			regularEntries = append(regularEntries, a.builder.Regular(d, md))
			regularProjects = append(regularProjects, d)
			continue
		}

		entries := a.buildSplit(ctx, d)
		splitEntries = append(splitEntries, entries...)
	}

	regularEntries = matrix.Filter(regularEntries, a.config.RequestedOS)
	splitEntries = matrix.Filter(splitEntries, a.config.RequestedOS)

	m := matrix.Assemble(regularEntries, splitEntries)
	if err := matrix.WriteMatrix(a.config.MatrixOutPath, m); err != nil {
		return err
	}
	a.logger.Info("Test matrix written.", "path", a.config.MatrixOutPath, "entries", len(m.Include),
		"regular", len(regularEntries), "split", len(splitEntries))

	if a.config.LegacyListOutPath != "" {
		shortNames := make([]string, 0, len(regularProjects))
		for _, d := range regularProjects {
			shortNames = append(shortNames, d.ShortName)
		}
		if err := matrix.WriteShortNameList(a.config.LegacyListOutPath, shortNames); err != nil {
			return err
		}
		a.logger.Debug("Legacy short-name list written.", "path", a.config.LegacyListOutPath, "count", len(shortNames))
	}

	if a.config.LegacyJSONOutPath != "" {
		if err := matrix.WriteLegacyProjects(a.config.LegacyJSONOutPath, regularProjects); err != nil {
			return err
		}
		a.logger.Debug("Legacy project records written.", "path", a.config.LegacyJSONOutPath, "count", len(regularProjects))
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// buildSplit derives the entries for one split project. Every failure mode
// here is project-fatal at worst: log a warning naming the project and
// contribute zero entries, so one broken project cannot abort the whole
// matrix build.
func (a *App) buildSplit(ctx context.Context, d *descriptor.Descriptor) []matrix.Entry {
	logger := a.logger.With("project", d.Project)

	md, found, err := a.resolver.Resolve(ctx, d.MetadataPath(a.config.HelixDir), d.Project, d.ShortName)
	if err != nil {
		logger.Warn("Skipping split project: malformed metadata.", "error", err)
		return nil
	}
	if !found && d.DeclaresMetadata() {
		logger.Warn("Skipping split project: metadata declared but file is missing.",
			"path", d.MetadataPath(a.config.HelixDir))
		return nil
	}

	list, err := splitlist.ParseFile(d.ListPath(a.config.HelixDir))
	if err != nil {
		logger.Warn("Skipping split project: test list unavailable.", "error", err)
		return nil
	}
	if list.Empty() {
		logger.Warn("Split project test list declares no schedulable units.",
			"path", d.ListPath(a.config.HelixDir))
		return nil
	}

	var entries []matrix.Entry
	switch list.Mode {
	case splitlist.ModeCollection:
		for _, collection := range list.Collections {
			entries = append(entries, a.builder.Collection(d, md, collection))
		}
		if list.HasUncollected {
			entries = append(entries, a.builder.Uncollected(d, md, list.Collections))
		}
	case splitlist.ModeClass:
		for _, className := range list.Classes {
			entries = append(entries, a.builder.Class(d, md, className))
		}
	}

	logger.Debug("Split project expanded.", "mode", list.Mode, "entries", len(entries))
	return entries
}
