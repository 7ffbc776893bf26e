package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/matrixgen/internal/naming"
	"github.com/vk/matrixgen/internal/testutil"
)

func TestLoadWithoutPathReturnsDefaults(t *testing.T) {
	s, err := Load(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, naming.SchemeUnderscore, s.NamingScheme)
	assert.Equal(t, ".tests.json", s.DescriptorSuffix)
	assert.Empty(t, s.DefaultOSes)
	assert.Empty(t, s.MetadataOverrides)

	convention := s.Convention()
	assert.Equal(t, "Aspire.Web.Tests", convention.ProjectName("Web"))
}

func TestLoadFullFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "matrixgen.hcl", `
naming_scheme     = "hyphen"
default_oses      = ["linux", "windows"]
descriptor_suffix = ".enum.json"

metadata_overrides {
  testSessionTimeout = "30m"
  requiresNugets     = true
}

legacy {
  project_format      = "Contoso.%s.Tests"
  project_path_format = "src/tests/%s/%s.csproj"
}
`)

	s, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, naming.SchemeHyphen, s.NamingScheme)
	assert.Equal(t, []string{"linux", "windows"}, s.DefaultOSes)
	assert.Equal(t, ".enum.json", s.DescriptorSuffix)
	assert.Equal(t, "30m", s.MetadataOverrides["testSessionTimeout"])
	// Non-string literals are stringified, matching the metadata files' own
	// boolean-as-string convention.
	assert.Equal(t, "true", s.MetadataOverrides["requiresNugets"])

	convention := s.Convention()
	assert.Equal(t, "Contoso.Web.Tests", convention.ProjectName("Web"))
	assert.Equal(t, "src/tests/Web/Web.csproj", convention.ProjectPath("Web"))
	assert.Equal(t, "Web-basics", convention.EntryName("Web", "basics"))
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "matrixgen.hcl", `naming_scheme = "underscore"`)

	s, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, naming.SchemeUnderscore, s.NamingScheme)
	assert.Equal(t, ".tests.json", s.DescriptorSuffix)
	assert.Equal(t, "Aspire.Web.Tests", s.Convention().ProjectName("Web"))
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "syntax error",
			content: `naming_scheme = `,
			wantErr: "failed to parse settings file",
		},
		{
			name:    "unknown naming scheme",
			content: `naming_scheme = "dots"`,
			wantErr: "invalid naming_scheme",
		},
		{
			name:    "unknown top-level block",
			content: "mystery {\n}\n",
			wantErr: "failed to decode settings file",
		},
		{
			name:    "override not convertible to string",
			content: "metadata_overrides {\n  testSessionTimeout = [\"a\"]\n}\n",
			wantErr: "not convertible to string",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			path := testutil.WriteFile(t, dir, "matrixgen.hcl", tc.content)

			_, err := Load(context.Background(), path)
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestLoadMissingFileIsAnError(t *testing.T) {
	_, err := Load(context.Background(), "does-not-exist.hcl")
	require.Error(t, err)
}
