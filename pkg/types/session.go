// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConversationState is everything a conversation remembers between turns:
// the papers returned by the most recent successful fetch. Indices into
// Papers are 1-based when spoken and stay stable until the next fetch
// replaces the list wholesale.
type ConversationState struct {
	Papers []Paper `json:"papers" yaml:"papers"`
}

// HasPapers reports whether a fetch has populated the conversation.
func (s ConversationState) HasPapers() bool {
	return len(s.Papers) > 0
}

// Paper returns the paper at the 1-based position n. The boolean is false
// when n is outside [1, len(Papers)].
func (s ConversationState) Paper(n int) (Paper, bool) {
	if n < 1 || n > len(s.Papers) {
		return Paper{}, false
	}
	return s.Papers[n-1], true
}

// WithPapers returns a new state holding papers, replacing any earlier list.
func (s ConversationState) WithPapers(papers []Paper) ConversationState {
	replaced := make([]Paper, len(papers))
	copy(replaced, papers)
	return ConversationState{Papers: replaced}
}
