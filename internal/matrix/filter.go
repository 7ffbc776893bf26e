package matrix

import "strings"

// AllOSes is the sentinel OS selector meaning "no filtering".
const AllOSes = "all"

// Include reports whether an entry belongs in the matrix for the requested
// OS. The comparison is case-insensitive; the "all" sentinel passes
// everything. Projects with an empty supported-OS set never reach this
// filter, the descriptor reader excludes them with a warning.
func Include(e Entry, requestedOS string) bool {
	if requestedOS == "" || strings.EqualFold(requestedOS, AllOSes) {
		return true
	}
	for _, os := range e.SupportedOSes {
		if strings.EqualFold(os, requestedOS) {
			return true
		}
	}
	return false
}

// Filter returns the entries passing the OS filter, preserving order.
func Filter(entries []Entry, requestedOS string) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if Include(e, requestedOS) {
			out = append(out, e)
		}
	}
	return out
}
