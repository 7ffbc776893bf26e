// Package splitlist parses a split project's test-list file: one directive
// per line, declaring either named collections (plus an optional catch-all
// remainder) or individual test classes.
package splitlist

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Mode is the kind of splitting a list file declares.
type Mode string

// The supported split modes. A file is homogeneous: its mode is fixed by the
// first meaningful line and lines of the other mode are silently ignored.
const (
	ModeNone       Mode = ""
	ModeCollection Mode = "collection"
	ModeClass      Mode = "class"
)

const (
	prefixCollection  = "collection:"
	prefixUncollected = "uncollected:"
	prefixClass       = "class:"
)

// List is the parsed form of one test-list file.
type List struct {
	Mode           Mode
	Collections    []string // deduplicated, sorted lexicographically
	HasUncollected bool
	Classes        []string // deduplicated, file order
}

// Empty reports whether the list yields no schedulable units.
func (l *List) Empty() bool {
	return len(l.Collections) == 0 && !l.HasUncollected && len(l.Classes) == 0
}

// Parse interprets the given lines. A file whose first meaningful line
// matches no directive prefix is treated as empty, not as an error.
func Parse(lines []string) *List {
	list := &List{Mode: ModeNone}
	seen := make(map[string]struct{})

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if list.Mode == ModeNone {
			switch {
			case strings.HasPrefix(line, prefixCollection), strings.HasPrefix(line, prefixUncollected):
				list.Mode = ModeCollection
			case strings.HasPrefix(line, prefixClass):
				list.Mode = ModeClass
			default:
				return list
			}
		}

		switch list.Mode {
		case ModeCollection:
			if strings.HasPrefix(line, prefixUncollected) {
				list.HasUncollected = true
				continue
			}
			name := strings.TrimSpace(strings.TrimPrefix(line, prefixCollection))
			if name == "" || name == line {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			list.Collections = append(list.Collections, name)
		case ModeClass:
			name := strings.TrimSpace(strings.TrimPrefix(line, prefixClass))
			if name == "" || name == line {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			list.Classes = append(list.Classes, name)
		}
	}

	// Sorted collection names keep the matrix diff-friendly regardless of
	// the order the enumerator wrote them in.
	sort.Strings(list.Collections)
	return list
}

// ParseFile reads and parses the list file at path.
func ParseFile(path string) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading test list %s: %w", path, err)
	}
	return Parse(strings.Split(string(data), "\n")), nil
}
