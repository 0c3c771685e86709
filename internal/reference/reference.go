// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reference turns a spoken paper reference ("segundo", "Três", " 4 ")
// into a 1-based position.
package reference

import (
	"strconv"
	"strings"
)

// words maps Portuguese cardinal and ordinal forms, masculine and feminine,
// to their value. The table is closed: only 1 through 5 are spoken as words
// because a fetch never returns more papers than that.
var words = map[string]int{
	"um": 1, "uma": 1, "primeiro": 1, "primeira": 1,
	"dois": 2, "duas": 2, "segundo": 2, "segunda": 2,
	"três": 3, "tres": 3, "terceiro": 3, "terceira": 3,
	"quatro": 4, "quarto": 4, "quarta": 4,
	"cinco": 5, "quinto": 5, "quinta": 5,
}

// Resolve normalizes raw (trimmed, lowercased) and looks it up in the word
// table, falling back to a base-10 integer literal. It reports false for
// empty input and for anything that is neither a known word nor an integer
// ("1.5", "banana"). Range checking is left to the caller.
func Resolve(raw string) (int, bool) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return 0, false
	}
	if n, ok := words[value]; ok {
		return n, true
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Words returns a copy of the word table.
func Words() map[string]int {
	out := make(map[string]int, len(words))
	for k, v := range words {
		out[k] = v
	}
	return out
}
