// Package matrix turns resolved projects into the CI execution matrix: an
// ordered list of independently schedulable work items, each carrying the
// parameters a runner needs to execute exactly its slice of tests.
package matrix

// EntryType tags the four kinds of schedulable units.
type EntryType string

const (
	TypeRegular     EntryType = "regular"
	TypeCollection  EntryType = "collection"
	TypeUncollected EntryType = "uncollected"
	TypeClass       EntryType = "class"
)

// Entry is one schedulable work item. Its ExtraTestArgs is sufficient, by
// itself, to select exactly the intended subset of tests within the project:
// collection filters are mutually exclusive and the uncollected filter is
// the complement of the union of declared collections.
type Entry struct {
	Type                    EntryType `json:"type"`
	ProjectName             string    `json:"projectName"`
	Name                    string    `json:"name"`
	ShortName               string    `json:"shortname"`
	TestProjectPath         string    `json:"testProjectPath"`
	ExtraTestArgs           string    `json:"extraTestArgs"`
	RequiresNugets          bool      `json:"requiresNugets"`
	RequiresTestSdk         bool      `json:"requiresTestSdk"`
	EnablePlaywrightInstall bool      `json:"enablePlaywrightInstall"`
	TestSessionTimeout      string    `json:"testSessionTimeout"`
	TestHangTimeout         string    `json:"testHangTimeout"`
	SupportedOSes           []string  `json:"supportedOSes"`

	// Collection is set for collection and uncollected entries; the
	// uncollected entry carries the literal "uncollected".
	Collection string `json:"collection,omitempty"`
	// ClassName and FullClassName are set for class entries.
	ClassName     string `json:"classname,omitempty"`
	FullClassName string `json:"fullClassName,omitempty"`
}

// Matrix is the output document consumed by the CI workflow.
type Matrix struct {
	Include []Entry `json:"include"`
}

// New wraps entries as a Matrix. A nil slice becomes an empty one so the
// degenerate case still serializes as {"include": []}.
func New(entries []Entry) *Matrix {
	if entries == nil {
		entries = []Entry{}
	}
	return &Matrix{Include: entries}
}
