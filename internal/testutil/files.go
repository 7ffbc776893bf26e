// Package testutil holds shared fixture helpers for the package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFile writes content under dir at the given relative name, creating
// intermediate directories, and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// Descriptor renders a minimal enumeration descriptor JSON document with
// the fields most tests care about.
func Descriptor(project, shortName, split, hasMetadata string, oses []string) string {
	doc := `{
  "project": "` + project + `",
  "shortName": "` + shortName + `",
  "fullPath": "artifacts/bin/` + project + `/release",
  "runOnGithubActions": "true",
  "splitTests": "` + split + `",
  "hasTestMetadata": "` + hasMetadata + `",
  "supportedOSes": [`
	for i, os := range oses {
		if i > 0 {
			doc += ", "
		}
		doc += `"` + os + `"`
	}
	doc += `]
}`
	return doc
}
