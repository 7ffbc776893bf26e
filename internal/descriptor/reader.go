package descriptor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/vk/matrixgen/internal/ctxlog"
	"github.com/vk/matrixgen/internal/fsutil"
)

// AllOSes is the sentinel OS selector meaning "no OS filtering".
const AllOSes = "all"

// Reader discovers and parses enumeration descriptors from a directory,
// applying the eligibility exclusions that belong to this stage: disabled
// projects, projects supporting no OS at all, and (under a concrete OS
// selector) descriptors generated for a different build OS.
type Reader struct {
	Suffix      string
	RequestedOS string
}

// NewReader returns a Reader using the given descriptor file suffix and OS
// selector. An empty suffix falls back to DefaultSuffix; an empty selector
// falls back to AllOSes.
func NewReader(suffix, requestedOS string) *Reader {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	if requestedOS == "" {
		requestedOS = AllOSes
	}
	return &Reader{Suffix: suffix, RequestedOS: requestedOS}
}

// Read loads every descriptor from dir. An empty or missing directory is a
// warning, not an error: the caller still produces a valid empty matrix so
// downstream CI steps never crash on a missing artifact. A descriptor that
// fails to parse is skipped with a warning; one bad project must not block
// the whole build's matrix.
func (r *Reader) Read(ctx context.Context, dir string) ([]*Descriptor, error) {
	logger := ctxlog.FromContext(ctx)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		logger.Warn("Descriptor directory does not exist, producing an empty matrix.", "dir", dir)
		return nil, nil
	}

	files, err := fsutil.FindFilesBySuffix(dir, r.Suffix)
	if err != nil {
		return nil, fmt.Errorf("scanning descriptor directory %s: %w", dir, err)
	}
	if len(files) == 0 {
		logger.Warn("No enumeration descriptors found, producing an empty matrix.", "dir", dir, "suffix", r.Suffix)
		return nil, nil
	}

	descriptors := make([]*Descriptor, 0, len(files))
	for _, file := range files {
		d, err := r.readOne(file)
		if err != nil {
			logger.Warn("Skipping malformed descriptor file.", "file", file, "error", err)
			continue
		}
		if !d.Eligible() {
			logger.Debug("Excluded: not enabled for scheduling.", "project", d.Project)
			continue
		}
		if len(d.SupportedOSes) == 0 {
			logger.Warn("Excluded: no supported OSes.", "project", d.Project)
			continue
		}
		if r.RequestedOS != AllOSes && d.BuildOS != "" && !strings.EqualFold(d.BuildOS, r.RequestedOS) {
			logger.Debug("Excluded: descriptor built for a different OS.", "project", d.Project, "buildOs", d.BuildOS, "requestedOs", r.RequestedOS)
			continue
		}
		descriptors = append(descriptors, d)
	}

	logger.Info("Enumeration descriptors loaded.", "found", len(files), "eligible", len(descriptors))
	return descriptors, nil
}

// readOne parses a single descriptor file. Descriptors are machine-written
// JSON, but the jsonc pass tolerates hand-patched comments and trailing
// commas rather than failing a whole project over them.
func (r *Reader) readOne(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var d Descriptor
	if err := json.Unmarshal(jsonc.ToJSON(data), &d); err != nil {
		return nil, fmt.Errorf("parsing descriptor: %w", err)
	}
	if d.Project == "" {
		return nil, fmt.Errorf("descriptor is missing the project field")
	}
	if d.ShortName == "" {
		return nil, fmt.Errorf("descriptor %s is missing the shortName field", d.Project)
	}
	return &d, nil
}
