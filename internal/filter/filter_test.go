// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import (
	"reflect"
	"testing"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name        string
		raw         []string
		answered    []string
		enabled     bool
		want        []string
		wantRemoved int
	}{
		{
			name:        "removes answered ids",
			raw:         []string{"1", "2", "3"},
			answered:    []string{"2"},
			enabled:     true,
			want:        []string{"1", "3"},
			wantRemoved: 1,
		},
		{
			name:        "disabled passes raw through",
			raw:         []string{"1", "2", "3"},
			answered:    []string{"2"},
			enabled:     false,
			want:        []string{"1", "2", "3"},
			wantRemoved: 0,
		},
		{
			name:        "all answered",
			raw:         []string{"4", "5"},
			answered:    []string{"4", "5", "6"},
			enabled:     true,
			want:        []string{},
			wantRemoved: 2,
		},
		{
			name:        "none answered",
			raw:         []string{"7", "8"},
			answered:    []string{"1"},
			enabled:     true,
			want:        []string{"7", "8"},
			wantRemoved: 0,
		},
		{
			name:        "empty raw",
			raw:         nil,
			answered:    []string{"1"},
			enabled:     true,
			want:        nil,
			wantRemoved: 0,
		},
		{
			name:        "empty answered set",
			raw:         []string{"1", "2"},
			answered:    nil,
			enabled:     true,
			want:        []string{"1", "2"},
			wantRemoved: 0,
		},
		{
			name:        "order preserved",
			raw:         []string{"10", "2", "30", "4"},
			answered:    []string{"2", "4"},
			enabled:     true,
			want:        []string{"10", "30"},
			wantRemoved: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, removed := Apply(tt.raw, tt.answered, tt.enabled)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Apply() final = %v, want %v", got, tt.want)
			}
			if removed != tt.wantRemoved {
				t.Errorf("Apply() removed = %d, want %d", removed, tt.wantRemoved)
			}
			if removed != len(tt.raw)-len(got) {
				t.Errorf("removed count %d inconsistent with len(raw)-len(final) = %d",
					removed, len(tt.raw)-len(got))
			}
		})
	}
}
