package settings

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/matrixgen/internal/ctxlog"
	"github.com/vk/matrixgen/internal/naming"
)

// fileRoot is the decode target for a settings file. Every field is
// optional; a file may set any subset.
type fileRoot struct {
	NamingScheme     string          `hcl:"naming_scheme,optional"`
	DefaultOSes      []string        `hcl:"default_oses,optional"`
	DescriptorSuffix string          `hcl:"descriptor_suffix,optional"`
	Overrides        *overridesBlock `hcl:"metadata_overrides,block"`
	Legacy           *legacyBlock    `hcl:"legacy,block"`
}

// overridesBlock accepts arbitrary attributes; they are overlaid onto the
// built-in metadata defaults by key.
type overridesBlock struct {
	Body hcl.Body `hcl:",remain"`
}

type legacyBlock struct {
	ProjectFormat     string `hcl:"project_format,optional"`
	ProjectPathFormat string `hcl:"project_path_format,optional"`
}

// Load parses the settings file at path and merges it over Default. An
// empty path returns Default unchanged, since the settings file is
// optional.
func Load(ctx context.Context, path string) (*Settings, error) {
	logger := ctxlog.FromContext(ctx)
	s := Default()
	if path == "" {
		return s, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode settings file %s: %w", path, diags)
	}

	if root.NamingScheme != "" {
		scheme := naming.Scheme(root.NamingScheme)
		if !scheme.Valid() {
			return nil, fmt.Errorf("settings file %s: invalid naming_scheme %q (want %q or %q)",
				path, root.NamingScheme, naming.SchemeUnderscore, naming.SchemeHyphen)
		}
		s.NamingScheme = scheme
	}
	if len(root.DefaultOSes) > 0 {
		s.DefaultOSes = root.DefaultOSes
	}
	if root.DescriptorSuffix != "" {
		s.DescriptorSuffix = root.DescriptorSuffix
	}
	if root.Legacy != nil {
		if root.Legacy.ProjectFormat != "" {
			s.ProjectFormat = root.Legacy.ProjectFormat
		}
		if root.Legacy.ProjectPathFormat != "" {
			s.ProjectPathFormat = root.Legacy.ProjectPathFormat
		}
	}
	if root.Overrides != nil {
		overrides, err := decodeOverrides(root.Overrides.Body)
		if err != nil {
			return nil, fmt.Errorf("settings file %s: %w", path, err)
		}
		s.MetadataOverrides = overrides
	}

	logger.Debug("Settings file loaded.", "path", path, "scheme", s.NamingScheme, "overrides", len(s.MetadataOverrides))
	return s, nil
}

// decodeOverrides flattens the metadata_overrides block into string values.
// Attributes are literal expressions; anything convertible to a string
// (numbers, bools) is accepted, matching how the metadata files themselves
// stringify flags.
func decodeOverrides(body hcl.Body) (map[string]string, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("reading metadata_overrides: %w", diags)
	}

	overrides := make(map[string]string, len(attrs))
	for name, attr := range attrs {
		value, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("evaluating metadata_overrides.%s: %w", name, diags)
		}
		str, err := convert.Convert(value, cty.String)
		if err != nil {
			return nil, fmt.Errorf("metadata_overrides.%s is not convertible to string: %w", name, err)
		}
		if str.IsNull() {
			continue
		}
		overrides[name] = str.AsString()
	}
	return overrides, nil
}
