// Package naming holds the injected naming-convention strategy used when
// matrix entries and legacy fallback paths are constructed. The historical
// path templates live here as data, not as literals inside entry
// construction, so a repo with a different layout can swap the convention
// without touching the builder.
package naming

import (
	"fmt"
	"strings"
)

// Scheme selects how a base short name and a suffix (collection or class
// short name) are joined into an entry display name.
type Scheme string

const (
	// SchemeUnderscore joins as "base_suffix". This is the authoritative
	// scheme for new output.
	SchemeUnderscore Scheme = "underscore"
	// SchemeHyphen joins as "base-suffix". Kept for pipelines that still
	// key dashboards off the older dashed names.
	SchemeHyphen Scheme = "hyphen"
)

// Valid reports whether s is a known scheme.
func (s Scheme) Valid() bool {
	return s == SchemeUnderscore || s == SchemeHyphen
}

const (
	defaultProjectFormat     = "Aspire.%s.Tests"
	defaultProjectPathFormat = "tests/Aspire.%s.Tests/Aspire.%s.Tests.csproj"
)

// Convention is a pure short-name -> identifiers strategy. The zero value is
// not usable; construct with Default or from settings.
type Convention struct {
	Scheme            Scheme
	ProjectFormat     string
	ProjectPathFormat string
}

// Default returns the convention matching the historical repo layout.
func Default() Convention {
	return Convention{
		Scheme:            SchemeUnderscore,
		ProjectFormat:     defaultProjectFormat,
		ProjectPathFormat: defaultProjectPathFormat,
	}
}

// ProjectName reconstructs a full project name from a short name. Projects
// not following the convention must carry full metadata instead.
func (c Convention) ProjectName(shortName string) string {
	return fill(c.ProjectFormat, shortName)
}

// ProjectPath reconstructs the project file path from a short name.
func (c Convention) ProjectPath(shortName string) string {
	return fill(c.ProjectPathFormat, shortName)
}

// EntryName joins a base short name and a suffix per the active scheme.
func (c Convention) EntryName(base, suffix string) string {
	if c.Scheme == SchemeHyphen {
		return base + "-" + suffix
	}
	return base + "_" + suffix
}

// fill substitutes the short name for every %s verb in the format, however
// many there are, so overridden templates may repeat or omit the name.
func fill(format, shortName string) string {
	n := strings.Count(format, "%s")
	if n == 0 {
		return format
	}
	args := make([]any, n)
	for i := range args {
		args[i] = shortName
	}
	return fmt.Sprintf(format, args...)
}
