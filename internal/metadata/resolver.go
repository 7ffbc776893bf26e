package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/vk/matrixgen/internal/ctxlog"
	"github.com/vk/matrixgen/internal/naming"
)

// Resolver produces the effective Metadata for a project by merging, in
// precedence order: built-in defaults < settings-level overrides < the
// project's metadata file.
type Resolver struct {
	convention naming.Convention
	base       Metadata
}

// NewResolver builds a Resolver. overrides come from the tool settings file
// and are keyed by the metadata JSON field name; unknown keys are ignored
// with a debug log so a newer settings file does not break an older tool.
func NewResolver(ctx context.Context, convention naming.Convention, defaultOSes []string, overrides map[string]string) *Resolver {
	logger := ctxlog.FromContext(ctx)

	base := Metadata{
		RequiresNugets:                 "false",
		RequiresTestSdk:                "false",
		EnablePlaywrightInstall:        "false",
		TestSessionTimeout:             DefaultTestSessionTimeout,
		TestHangTimeout:                DefaultTestHangTimeout,
		UncollectedTestsSessionTimeout: DefaultUncollectedSessionTimeout,
		UncollectedTestsHangTimeout:    DefaultUncollectedHangTimeout,
		SupportedOSes:                  append([]string(nil), DefaultSupportedOSes...),
	}
	if len(defaultOSes) > 0 {
		base.SupportedOSes = append([]string(nil), defaultOSes...)
	}

	for key, value := range overrides {
		if !applyOverride(&base, key, value) {
			logger.Debug("Ignoring unknown metadata override key.", "key", key)
		}
	}

	return &Resolver{convention: convention, base: base}
}

// Defaults returns the defaults-backed record for a project that has no
// metadata file of its own.
func (r *Resolver) Defaults(projectName, shortName string) *Metadata {
	m := r.base.clone()
	m.ProjectName = projectName
	m.TestProjectPath = r.convention.ProjectPath(shortName)
	return m
}

// Resolve loads the metadata file at path and merges it over the defaults
// for the named project. found reports whether the file existed. A file that
// exists but does not parse is an error carrying the project name: a project
// that promises metadata and delivers garbage is a build-configuration
// problem, not something to paper over.
func (r *Resolver) Resolve(ctx context.Context, path, projectName, shortName string) (m *Metadata, found bool, err error) {
	logger := ctxlog.FromContext(ctx)
	m = r.Defaults(projectName, shortName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("No metadata file, using defaults.", "project", projectName, "path", path)
			return m, false, nil
		}
		return nil, false, fmt.Errorf("project %s: reading metadata %s: %w", projectName, path, err)
	}

	plain := jsonc.ToJSON(data)

	var o overlay
	if err := json.Unmarshal(plain, &o); err != nil {
		return nil, true, fmt.Errorf("project %s: parsing metadata %s: %w", projectName, path, err)
	}
	o.apply(m)

	// Keep unknown top-level keys around; downstream ignores them but a
	// newer producer must not be able to break an older consumer.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(plain, &raw); err == nil {
		for key, value := range raw {
			if _, ok := knownKeys[key]; ok {
				continue
			}
			if m.Extra == nil {
				m.Extra = make(map[string]json.RawMessage)
			}
			m.Extra[key] = value
		}
	}

	return m, true, nil
}

// applyOverride sets one known metadata field by its JSON key, reporting
// whether the key was recognized. SupportedOSes is deliberately not
// overridable here: the settings file has default_oses for that.
func applyOverride(m *Metadata, key, value string) bool {
	switch key {
	case "testClassNamesPrefix":
		m.TestClassNamesPrefix = value
	case "requiresNugets":
		m.RequiresNugets = value
	case "requiresTestSdk":
		m.RequiresTestSdk = value
	case "enablePlaywrightInstall":
		m.EnablePlaywrightInstall = value
	case "testSessionTimeout":
		m.TestSessionTimeout = value
	case "testHangTimeout":
		m.TestHangTimeout = value
	case "uncollectedTestsSessionTimeout":
		m.UncollectedTestsSessionTimeout = value
	case "uncollectedTestsHangTimeout":
		m.UncollectedTestsHangTimeout = value
	default:
		return false
	}
	return true
}
