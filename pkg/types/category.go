// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared value and configuration types used by the
// qbank-tags extraction pipeline.
package types

// Category identifies a question-bank step bucket. Matched identifiers are
// grouped per category; the buckets are independent namespaces, so the same
// identifier may legitimately appear in more than one.
type Category string

const (
	Step1 Category = "step1"
	Step2 Category = "step2"
	Step3 Category = "step3"
)

// Categories lists all step buckets in presentation order.
var Categories = []Category{Step1, Step2, Step3}

// String returns the category key.
func (c Category) String() string { return string(c) }

// Valid reports whether c is one of the known step buckets.
func (c Category) Valid() bool {
	switch c {
	case Step1, Step2, Step3:
		return true
	}
	return false
}
