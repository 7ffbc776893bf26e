// Package settings loads the optional tool-level settings file. Settings
// tune conventions (naming scheme, path templates, descriptor suffix) and
// repo-wide metadata defaults; per-project inputs always win over them.
package settings

import (
	"github.com/vk/matrixgen/internal/descriptor"
	"github.com/vk/matrixgen/internal/naming"
)

// Settings is the decoded, validated settings model. The zero value is not
// meaningful; construct with Default or Load.
type Settings struct {
	NamingScheme      naming.Scheme
	DefaultOSes       []string
	DescriptorSuffix  string
	MetadataOverrides map[string]string
	ProjectFormat     string
	ProjectPathFormat string
}

// Default returns the settings used when no settings file is given.
func Default() *Settings {
	convention := naming.Default()
	return &Settings{
		NamingScheme:      convention.Scheme,
		DescriptorSuffix:  descriptor.DefaultSuffix,
		MetadataOverrides: map[string]string{},
		ProjectFormat:     convention.ProjectFormat,
		ProjectPathFormat: convention.ProjectPathFormat,
	}
}

// Convention materializes the naming strategy these settings describe.
func (s *Settings) Convention() naming.Convention {
	return naming.Convention{
		Scheme:            s.NamingScheme,
		ProjectFormat:     s.ProjectFormat,
		ProjectPathFormat: s.ProjectPathFormat,
	}
}
