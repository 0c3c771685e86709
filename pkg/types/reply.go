// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Reply is the single response to one conversational turn. Every turn yields
// a Reply, including failed ones; Failure records why a turn fell off the
// happy path without changing what the user hears.
type Reply struct {
	// Speech is spoken to the user. It is empty only when the host reports
	// that the session already ended.
	Speech string `json:"speech" yaml:"speech"`

	// Reprompt is spoken if the user stays silent. Empty means none.
	Reprompt string `json:"reprompt,omitempty" yaml:"reprompt,omitempty"`

	// EndSession closes the conversation after Speech. It is true exactly
	// when Reprompt is empty.
	EndSession bool `json:"end_session" yaml:"end_session"`

	// Failure tags non-happy-path replies for logs. It is never spoken.
	Failure FailureKind `json:"-" yaml:"failure,omitempty"`
}

// Ask builds a reply that keeps the conversation open.
func Ask(speech, reprompt string) Reply {
	return Reply{Speech: speech, Reprompt: reprompt}
}

// Tell builds a reply that ends the conversation.
func Tell(speech string) Reply {
	return Reply{Speech: speech, EndSession: true}
}

// WithFailure returns a copy of r tagged with kind.
func (r Reply) WithFailure(kind FailureKind) Reply {
	r.Failure = kind
	return r
}
