package splitlist

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/matrixgen/internal/testutil"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		lines    []string
		expected List
	}{
		{
			name:     "empty input",
			lines:    nil,
			expected: List{Mode: ModeNone},
		},
		{
			name:     "blank lines only",
			lines:    []string{"", "   ", "\t"},
			expected: List{Mode: ModeNone},
		},
		{
			name:     "unrecognized first line treated as empty",
			lines:    []string{"something else", "collection:a"},
			expected: List{Mode: ModeNone},
		},
		{
			name:  "collections are deduplicated and sorted",
			lines: []string{"collection:zeta", "collection:alpha", "collection:zeta"},
			expected: List{
				Mode:        ModeCollection,
				Collections: []string{"alpha", "zeta"},
			},
		},
		{
			name:  "uncollected line sets the flag regardless of position",
			lines: []string{"uncollected:*", "collection:b", "collection:a"},
			expected: List{
				Mode:           ModeCollection,
				Collections:    []string{"a", "b"},
				HasUncollected: true,
			},
		},
		{
			name:  "class lines keep file order, deduplicated",
			lines: []string{"class:N.Tests.B", "class:N.Tests.A", "class:N.Tests.B"},
			expected: List{
				Mode:    ModeClass,
				Classes: []string{"N.Tests.B", "N.Tests.A"},
			},
		},
		{
			name:  "class lines inside a collection file are ignored",
			lines: []string{"collection:a", "class:N.Tests.A", "collection:b"},
			expected: List{
				Mode:        ModeCollection,
				Collections: []string{"a", "b"},
			},
		},
		{
			name:  "collection lines inside a class file are ignored",
			lines: []string{"class:N.Tests.A", "collection:a", "uncollected:*"},
			expected: List{
				Mode:    ModeClass,
				Classes: []string{"N.Tests.A"},
			},
		},
		{
			name:  "directives with empty names are dropped",
			lines: []string{"collection:a", "collection:", "collection:   "},
			expected: List{
				Mode:        ModeCollection,
				Collections: []string{"a"},
			},
		},
		{
			name:  "surrounding whitespace is trimmed",
			lines: []string{"  collection:a  ", "\tuncollected:*"},
			expected: List{
				Mode:           ModeCollection,
				Collections:    []string{"a"},
				HasUncollected: true,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Parse(tc.lines)
			assert.Equal(t, tc.expected.Mode, got.Mode)
			assert.Equal(t, tc.expected.Collections, got.Collections)
			assert.Equal(t, tc.expected.HasUncollected, got.HasUncollected)
			assert.Equal(t, tc.expected.Classes, got.Classes)
		})
	}
}

func TestEmpty(t *testing.T) {
	assert.True(t, (&List{}).Empty())
	assert.False(t, (&List{Collections: []string{"a"}}).Empty())
	assert.False(t, (&List{HasUncollected: true}).Empty())
	assert.False(t, (&List{Classes: []string{"a"}}).Empty())
}

func TestParseFile(t *testing.T) {
	t.Run("reads and parses a list file", func(t *testing.T) {
		dir := t.TempDir()
		testutil.WriteFile(t, dir, "P.tests.list", "collection:b\ncollection:a\nuncollected:*\n")

		list, err := ParseFile(filepath.Join(dir, "P.tests.list"))
		require.NoError(t, err)
		assert.Equal(t, ModeCollection, list.Mode)
		assert.Equal(t, []string{"a", "b"}, list.Collections)
		assert.True(t, list.HasUncollected)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := ParseFile(filepath.Join(t.TempDir(), "absent.tests.list"))
		require.Error(t, err)
		assert.ErrorContains(t, err, "reading test list")
	})
}
