// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reference

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveWordTable(t *testing.T) {
	for word, want := range Words() {
		t.Run(word, func(t *testing.T) {
			for _, variant := range []string{
				word,
				strings.ToUpper(word),
				strings.ToUpper(word[:1]) + word[1:],
				"  " + word + "\t",
			} {
				got, ok := Resolve(variant)
				assert.True(t, ok, "Resolve(%q)", variant)
				assert.Equal(t, want, got, "Resolve(%q)", variant)
			}
		})
	}
}

func TestResolveTableCoversOneToFive(t *testing.T) {
	seen := map[int]int{}
	for _, v := range Words() {
		seen[v]++
	}
	for n := 1; n <= 5; n++ {
		assert.GreaterOrEqual(t, seen[n], 3, "value %d should have several spoken forms", n)
	}
	assert.Len(t, seen, 5)
}

func TestResolveDigits(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"single digit", "3", 3},
		{"padded", "  2  ", 2},
		{"one", "1", 1},
		{"beyond word table", "12", 12},
		{"zero", "0", 0},
		{"negative", "-1", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.raw)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveUnresolvable(t *testing.T) {
	for _, raw := range []string{"", "   ", "1.5", "xyz", "banana", "xyz123", "seis"} {
		t.Run(raw, func(t *testing.T) {
			_, ok := Resolve(raw)
			assert.False(t, ok, "Resolve(%q)", raw)
		})
	}
}
