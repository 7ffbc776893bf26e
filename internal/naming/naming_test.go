package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConvention(t *testing.T) {
	c := Default()

	assert.Equal(t, SchemeUnderscore, c.Scheme)
	assert.Equal(t, "Aspire.Hosting.Tests", c.ProjectName("Hosting"))
	assert.Equal(t, "tests/Aspire.Hosting.Tests/Aspire.Hosting.Tests.csproj", c.ProjectPath("Hosting"))
}

func TestEntryName(t *testing.T) {
	testCases := []struct {
		name     string
		scheme   Scheme
		base     string
		suffix   string
		expected string
	}{
		{"underscore scheme", SchemeUnderscore, "Hosting", "basics", "Hosting_basics"},
		{"hyphen scheme", SchemeHyphen, "Hosting", "basics", "Hosting-basics"},
		{"underscore with class suffix", SchemeUnderscore, "Playground", "FooTests", "Playground_FooTests"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			c.Scheme = tc.scheme
			assert.Equal(t, tc.expected, c.EntryName(tc.base, tc.suffix))
		})
	}
}

func TestFillHandlesOverriddenTemplates(t *testing.T) {
	c := Convention{
		Scheme:            SchemeUnderscore,
		ProjectFormat:     "Contoso.%s",
		ProjectPathFormat: "src/%s/%s.csproj",
	}

	assert.Equal(t, "Contoso.Web", c.ProjectName("Web"))
	assert.Equal(t, "src/Web/Web.csproj", c.ProjectPath("Web"))

	// A template without verbs is returned as-is.
	c.ProjectPathFormat = "fixed/path.csproj"
	assert.Equal(t, "fixed/path.csproj", c.ProjectPath("Web"))
}

func TestSchemeValid(t *testing.T) {
	assert.True(t, SchemeUnderscore.Valid())
	assert.True(t, SchemeHyphen.Valid())
	assert.False(t, Scheme("dots").Valid())
	assert.False(t, Scheme("").Valid())
}
