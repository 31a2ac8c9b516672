// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package filter removes already-answered identifiers from extraction
// results. It performs no I/O; the answered set is supplied by the caller.
package filter

// Apply returns raw minus answered when enabled, preserving raw's order,
// along with the number of identifiers removed. When disabled it returns raw
// unchanged with a removed count of zero.
func Apply(raw []string, answered []string, enabled bool) ([]string, int) {
	if !enabled || len(raw) == 0 || len(answered) == 0 {
		return raw, 0
	}

	skip := make(map[string]bool, len(answered))
	for _, id := range answered {
		skip[id] = true
	}

	final := make([]string, 0, len(raw))
	for _, id := range raw {
		if skip[id] {
			continue
		}
		final = append(final, id)
	}

	return final, len(raw) - len(final)
}
