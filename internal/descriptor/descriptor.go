// Package descriptor loads the per-project test enumeration records emitted
// by the build. Descriptors are the unit of truth about a project's
// eligibility: nothing downstream re-derives eligibility, it only consumes
// what the build already decided.
package descriptor

import (
	"path/filepath"
	"strings"
)

// DefaultSuffix is the file naming convention for enumeration descriptors
// inside the descriptor directory.
const DefaultSuffix = ".tests.json"

// Descriptor is one project's enumeration record. Boolean fields arrive as
// strings because the producing build scripting has no typed booleans.
type Descriptor struct {
	Project            string   `json:"project"`
	ShortName          string   `json:"shortName"`
	FullPath           string   `json:"fullPath"`
	BuildOS            string   `json:"buildOs,omitempty"`
	RunOnGithubActions string   `json:"runOnGithubActions"`
	SplitTests         string   `json:"splitTests"`
	HasTestMetadata    string   `json:"hasTestMetadata"`
	SupportedOSes      []string `json:"supportedOSes"`
	MetadataFile       string   `json:"metadataFile,omitempty"`
	TestListFile       string   `json:"testListFile,omitempty"`
}

// Bool interprets a boolean-as-string flag: "true" (any casing) is true,
// anything else, including absent, is false.
func Bool(s string) bool {
	return strings.EqualFold(s, "true")
}

// Eligible reports whether the build marked this project for scheduling.
func (d *Descriptor) Eligible() bool { return Bool(d.RunOnGithubActions) }

// Split reports whether the project's tests are divided into independently
// schedulable units.
func (d *Descriptor) Split() bool { return Bool(d.SplitTests) }

// DeclaresMetadata reports whether the build promised a metadata file and a
// test-list file for this project.
func (d *Descriptor) DeclaresMetadata() bool { return Bool(d.HasTestMetadata) }

// MetadataPath returns the project's resolved-metadata file path: the
// explicit one when the descriptor carries it, the conventional
// "{helixDir}/{project}.tests.metadata.json" otherwise.
func (d *Descriptor) MetadataPath(helixDir string) string {
	if d.MetadataFile != "" {
		return d.MetadataFile
	}
	return filepath.Join(helixDir, d.Project+".tests.metadata.json")
}

// ListPath returns the project's test-list file path, analogous to
// MetadataPath.
func (d *Descriptor) ListPath(helixDir string) string {
	if d.TestListFile != "" {
		return d.TestListFile
	}
	return filepath.Join(helixDir, d.Project+".tests.list")
}
