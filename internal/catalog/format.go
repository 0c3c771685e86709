// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/papers-skill/pkg/types"
)

// FormatTable writes papers as a human-readable table to w, numbered the way
// a user would refer to them in conversation.
func FormatTable(papers []types.Paper, w io.Writer) {
	if len(papers) == 0 {
		fmt.Fprintln(w, "No papers found.")
		return
	}

	fmt.Fprintf(w, "%-3s  %-60s  %s\n", "#", "Title", "Authors")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for i, p := range papers {
		fmt.Fprintf(w, "%-3d  %-60s  %s\n", i+1, truncate(p.Title, 60), formatAuthors(p.Authors))
	}

	fmt.Fprintf(w, "\n%d papers\n", len(papers))
}

// FormatJSON writes papers as indented JSON to w.
func FormatJSON(papers []types.Paper, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(papers)
}

// FormatYAML writes papers as YAML to w.
func FormatYAML(papers []types.Paper, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(papers)
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], 30)
	default:
		return truncate(authors[0], 24) + " et al."
	}
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
