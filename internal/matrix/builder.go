package matrix

import (
	"fmt"
	"strings"

	"github.com/vk/matrixgen/internal/descriptor"
	"github.com/vk/matrixgen/internal/metadata"
	"github.com/vk/matrixgen/internal/naming"
)

// UncollectedName is the display suffix and collection tag for the
// catch-all remainder entry of a split project.
const UncollectedName = "uncollected"

// Builder constructs matrix entries. The naming convention is injected so
// the legacy fallback paths and the entry-name join scheme are data, not
// literals baked in here.
type Builder struct {
	Convention naming.Convention
}

// NewBuilder returns a Builder using the given convention.
func NewBuilder(convention naming.Convention) *Builder {
	return &Builder{Convention: convention}
}

// common fills the fields shared by every entry type.
func (b *Builder) common(t EntryType, d *descriptor.Descriptor, md *metadata.Metadata, name string) Entry {
	projectName := md.ProjectName
	if projectName == "" {
		// Legacy fallback: only a short name is known, reconstruct the
		// identifiers by convention.
		projectName = b.Convention.ProjectName(d.ShortName)
	}
	testProjectPath := md.TestProjectPath
	if testProjectPath == "" {
		testProjectPath = b.Convention.ProjectPath(d.ShortName)
	}
	return Entry{
		Type:                    t,
		ProjectName:             projectName,
		Name:                    name,
		ShortName:               name,
		TestProjectPath:         testProjectPath,
		RequiresNugets:          descriptor.Bool(md.RequiresNugets),
		RequiresTestSdk:         descriptor.Bool(md.RequiresTestSdk),
		EnablePlaywrightInstall: descriptor.Bool(md.EnablePlaywrightInstall),
		TestSessionTimeout:      md.TestSessionTimeout,
		TestHangTimeout:         md.TestHangTimeout,
		SupportedOSes:           append([]string(nil), md.SupportedOSes...),
	}
}

// Regular builds the single entry for a non-split project. The whole project
// runs as one unit, so no extra filter arguments are needed. The supported
// OS set comes from the descriptor, which is the unit of truth for a
// project that never loads metadata.
func (b *Builder) Regular(d *descriptor.Descriptor, md *metadata.Metadata) Entry {
	e := b.common(TypeRegular, d, md, d.ShortName)
	e.ExtraTestArgs = ""
	e.SupportedOSes = append([]string(nil), d.SupportedOSes...)
	return e
}

// Collection builds the entry for one named partition of a split project.
func (b *Builder) Collection(d *descriptor.Descriptor, md *metadata.Metadata, collection string) Entry {
	e := b.common(TypeCollection, d, md, b.Convention.EntryName(d.ShortName, collection))
	e.ExtraTestArgs = fmt.Sprintf("--filter-trait %q", "Partition="+collection)
	e.Collection = collection
	return e
}

// Uncollected builds the catch-all remainder entry for a split project. Its
// filter is the conjunction of per-collection negations, because trait
// filtering is per-trait-value: a single negation would only exclude one
// collection.
func (b *Builder) Uncollected(d *descriptor.Descriptor, md *metadata.Metadata, collections []string) Entry {
	e := b.common(TypeUncollected, d, md, b.Convention.EntryName(d.ShortName, UncollectedName))
	args := make([]string, 0, len(collections))
	for _, collection := range collections {
		args = append(args, fmt.Sprintf("--filter-not-trait %q", "Partition="+collection))
	}
	e.ExtraTestArgs = strings.Join(args, " ")
	e.Collection = UncollectedName
	e.TestSessionTimeout = fallback(md.UncollectedTestsSessionTimeout, md.TestSessionTimeout)
	e.TestHangTimeout = fallback(md.UncollectedTestsHangTimeout, md.TestHangTimeout)
	return e
}

// Class builds the entry for a single test class of a split project. The
// display name strips the metadata's class-name prefix plus its trailing
// separator when the fully qualified name starts with that prefix.
func (b *Builder) Class(d *descriptor.Descriptor, md *metadata.Metadata, fullClassName string) Entry {
	className := stripPrefix(fullClassName, md.TestClassNamesPrefix)
	e := b.common(TypeClass, d, md, b.Convention.EntryName(d.ShortName, className))
	e.ExtraTestArgs = fmt.Sprintf("--filter-class %q", fullClassName)
	e.ClassName = className
	e.FullClassName = fullClassName
	return e
}

func stripPrefix(fullClassName, prefix string) string {
	if prefix == "" || !strings.HasPrefix(fullClassName, prefix) {
		return fullClassName
	}
	rest := strings.TrimPrefix(fullClassName, prefix)
	rest = strings.TrimPrefix(rest, ".")
	if rest == "" {
		return fullClassName
	}
	return rest
}

func fallback(value, alt string) string {
	if value != "" {
		return value
	}
	return alt
}
