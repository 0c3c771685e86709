// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the papers-skill
// conversation pipeline: the papers fetched from the catalog, the state a
// conversation carries between turns, the failure tags attached to replies,
// and the per-component configuration.
package types

// MaxAuthors is the number of authors kept per paper; longer lists are
// truncated in source order.
const MaxAuthors = 5

// UntitledPaper is the title given to catalog entries that carry none.
const UntitledPaper = "Sem título"

// Paper holds the metadata of one catalog entry as it is read out to the user.
// A Paper is never mutated after the catalog creates it.
type Paper struct {
	// Title is the paper title.
	Title string `json:"title" yaml:"title"`

	// Summary is the paper abstract. Its length is unbounded.
	Summary string `json:"summary" yaml:"summary"`

	// Authors lists at most MaxAuthors names in source order.
	Authors []string `json:"authors" yaml:"authors"`
}

// NewPaper builds a Paper applying the catalog defaults: an empty title
// becomes UntitledPaper and the author list is cut to MaxAuthors.
func NewPaper(title, summary string, authors []string) Paper {
	if title == "" {
		title = UntitledPaper
	}
	if len(authors) > MaxAuthors {
		authors = authors[:MaxAuthors]
	}
	kept := make([]string, len(authors))
	copy(kept, authors)
	return Paper{Title: title, Summary: summary, Authors: kept}
}
