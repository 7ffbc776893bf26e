// Package metadata resolves the per-project execution parameters for split
// test projects: a fixed default record, optionally overlaid by
// settings-level overrides, optionally overlaid by the project's own
// metadata file. The merge is shallow and per-key.
package metadata

import "encoding/json"

// Default timeout values, expressed the way the CI runner consumes them.
const (
	DefaultTestSessionTimeout        = "20m"
	DefaultTestHangTimeout           = "10m"
	DefaultUncollectedSessionTimeout = "15m"
	DefaultUncollectedHangTimeout    = "10m"
)

// DefaultSupportedOSes is the OS set assumed for a split project whose
// metadata does not narrow it.
var DefaultSupportedOSes = []string{"windows", "linux", "macos"}

// Metadata holds the resolved execution parameters for one split project.
// Flag fields are boolean-as-string, matching the producing build scripting;
// they are converted to real booleans only at entry construction.
type Metadata struct {
	ProjectName                    string   `json:"projectName"`
	TestClassNamesPrefix           string   `json:"testClassNamesPrefix,omitempty"`
	TestProjectPath                string   `json:"testProjectPath"`
	RequiresNugets                 string   `json:"requiresNugets"`
	RequiresTestSdk                string   `json:"requiresTestSdk"`
	EnablePlaywrightInstall        string   `json:"enablePlaywrightInstall"`
	TestSessionTimeout             string   `json:"testSessionTimeout"`
	TestHangTimeout                string   `json:"testHangTimeout"`
	UncollectedTestsSessionTimeout string   `json:"uncollectedTestsSessionTimeout"`
	UncollectedTestsHangTimeout    string   `json:"uncollectedTestsHangTimeout"`
	SupportedOSes                  []string `json:"supportedOSes"`

	// Extra carries keys from the metadata file that this tool does not
	// understand. They are preserved for forward compatibility and ignored
	// by entry construction.
	Extra map[string]json.RawMessage `json:"-"`
}

// clone returns a deep enough copy for independent mutation.
func (m *Metadata) clone() *Metadata {
	out := *m
	out.SupportedOSes = append([]string(nil), m.SupportedOSes...)
	if m.Extra != nil {
		out.Extra = make(map[string]json.RawMessage, len(m.Extra))
		for k, v := range m.Extra {
			out.Extra[k] = v
		}
	}
	return &out
}

// overlay mirrors Metadata with every field optional; it is the decode
// target for metadata files and distinguishes "absent" from "set to empty".
type overlay struct {
	ProjectName                    *string   `json:"projectName"`
	TestClassNamesPrefix           *string   `json:"testClassNamesPrefix"`
	TestProjectPath                *string   `json:"testProjectPath"`
	RequiresNugets                 *string   `json:"requiresNugets"`
	RequiresTestSdk                *string   `json:"requiresTestSdk"`
	EnablePlaywrightInstall        *string   `json:"enablePlaywrightInstall"`
	TestSessionTimeout             *string   `json:"testSessionTimeout"`
	TestHangTimeout                *string   `json:"testHangTimeout"`
	UncollectedTestsSessionTimeout *string   `json:"uncollectedTestsSessionTimeout"`
	UncollectedTestsHangTimeout    *string   `json:"uncollectedTestsHangTimeout"`
	SupportedOSes                  *[]string `json:"supportedOSes"`
}

// knownKeys lists the top-level metadata keys this tool understands; anything
// else lands in Metadata.Extra.
var knownKeys = map[string]struct{}{
	"projectName":                    {},
	"testClassNamesPrefix":           {},
	"testProjectPath":                {},
	"requiresNugets":                 {},
	"requiresTestSdk":                {},
	"enablePlaywrightInstall":        {},
	"testSessionTimeout":             {},
	"testHangTimeout":                {},
	"uncollectedTestsSessionTimeout": {},
	"uncollectedTestsHangTimeout":    {},
	"supportedOSes":                  {},
}

// apply overlays every present key of o onto m.
func (o *overlay) apply(m *Metadata) {
	if o.ProjectName != nil {
		m.ProjectName = *o.ProjectName
	}
	if o.TestClassNamesPrefix != nil {
		m.TestClassNamesPrefix = *o.TestClassNamesPrefix
	}
	if o.TestProjectPath != nil {
		m.TestProjectPath = *o.TestProjectPath
	}
	if o.RequiresNugets != nil {
		m.RequiresNugets = *o.RequiresNugets
	}
	if o.RequiresTestSdk != nil {
		m.RequiresTestSdk = *o.RequiresTestSdk
	}
	if o.EnablePlaywrightInstall != nil {
		m.EnablePlaywrightInstall = *o.EnablePlaywrightInstall
	}
	if o.TestSessionTimeout != nil {
		m.TestSessionTimeout = *o.TestSessionTimeout
	}
	if o.TestHangTimeout != nil {
		m.TestHangTimeout = *o.TestHangTimeout
	}
	if o.UncollectedTestsSessionTimeout != nil {
		m.UncollectedTestsSessionTimeout = *o.UncollectedTestsSessionTimeout
	}
	if o.UncollectedTestsHangTimeout != nil {
		m.UncollectedTestsHangTimeout = *o.UncollectedTestsHangTimeout
	}
	if o.SupportedOSes != nil {
		m.SupportedOSes = append([]string(nil), (*o.SupportedOSes)...)
	}
}
