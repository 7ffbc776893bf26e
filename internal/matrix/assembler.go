package matrix

import (
	"encoding/json"
	"fmt"

	"github.com/vk/matrixgen/internal/descriptor"
	"github.com/vk/matrixgen/internal/fsutil"
)

// Assemble orders the final matrix: every regular entry first, then the
// split-derived entries, each group already in project-then-line order.
// The wrapper guarantees a well-formed document even with zero entries.
func Assemble(regular, split []Entry) *Matrix {
	entries := make([]Entry, 0, len(regular)+len(split))
	entries = append(entries, regular...)
	entries = append(entries, split...)
	return New(entries)
}

// WriteMatrix serializes the matrix to path as indented UTF-8 JSON,
// creating parent directories as needed. A write failure here is
// system-fatal for the caller: no partial matrix may pose as authoritative.
func WriteMatrix(path string, m *Matrix) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding matrix: %w", err)
	}
	data = append(data, '\n')
	if err := fsutil.WriteFile(path, data); err != nil {
		return fmt.Errorf("writing matrix to %s: %w", path, err)
	}
	return nil
}

// WriteShortNameList writes the regular projects' short names, one per
// line in discovery order. Older consumers expect this flat file instead of
// the JSON matrix.
func WriteShortNameList(path string, shortNames []string) error {
	var data []byte
	for _, name := range shortNames {
		data = append(data, name...)
		data = append(data, '\n')
	}
	if err := fsutil.WriteFile(path, data); err != nil {
		return fmt.Errorf("writing short-name list to %s: %w", path, err)
	}
	return nil
}

// WriteLegacyProjects writes the full regular-project descriptor records as
// a JSON array, the superset companion of the short-name list consumed by a
// second downstream pass.
func WriteLegacyProjects(path string, projects []*descriptor.Descriptor) error {
	if projects == nil {
		projects = []*descriptor.Descriptor{}
	}
	data, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding legacy project records: %w", err)
	}
	data = append(data, '\n')
	if err := fsutil.WriteFile(path, data); err != nil {
		return fmt.Errorf("writing legacy project records to %s: %w", path, err)
	}
	return nil
}
