// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pattern matches question-bank tag literals inside flashcard tag
// strings and yields the numeric identifiers they carry.
package pattern

import (
	"regexp"

	"github.com/pdiddy/qbank-tags/pkg/types"
)

// Each category matches two tag shapes:
//
//	v12 (fixed suffix):   #AK_Step1_v12::#UWorld::Step::12345
//	v11 (variable depth): #AK_Step1_v11::#UWorld::10000-99999::14000-14999::14993
//
// The v11 shape allows any number of intermediate colon-delimited segments;
// only the trailing digit run is the identifier. Step 3 kept the variable
// shape when the tag scheme moved to v12, so both of its variants use it.
var categoryPatterns = map[types.Category][]*regexp.Regexp{
	types.Step1: {
		regexp.MustCompile(`#AK_Step1_v12::#UWorld::Step::(\d+)`),
		regexp.MustCompile(`#AK_Step1_v11::#UWorld::(?:[^:\s]+::)*(\d+)`),
	},
	types.Step2: {
		regexp.MustCompile(`#AK_Step2_v12::#UWorld::Step::(\d+)`),
		regexp.MustCompile(`#AK_Step2_v11::#UWorld::(?:[^:\s]+::)*(\d+)`),
	},
	types.Step3: {
		regexp.MustCompile(`#AK_Step3_v12::#UWorld::(?:[^:\s]+::)*(\d+)`),
		regexp.MustCompile(`#AK_Step3_v11::#UWorld::(?:[^:\s]+::)*(\d+)`),
	},
}

// Match returns the identifiers found in tags for the given category,
// deduplicated, in order of first appearance. A tag string may contain any
// number of independent matches; unmatched categories yield nil.
func Match(category types.Category, tags string) []string {
	seen := make(map[string]bool)
	var ids []string

	for _, re := range categoryPatterns[category] {
		for _, m := range re.FindAllStringSubmatch(tags, -1) {
			id := m[1]
			if seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
	}

	return ids
}

// MatchAll runs Match for every known category and returns the results keyed
// by category.
func MatchAll(tags string) map[types.Category][]string {
	out := make(map[types.Category][]string, len(types.Categories))
	for _, c := range types.Categories {
		out[c] = Match(c, tags)
	}
	return out
}
