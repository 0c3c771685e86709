// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// TurnRequest is one turn as delivered by the voice host: which conversation
// it belongs to, what kind of request it is, and the intent with its slot
// values.
type TurnRequest struct {
	// SessionID identifies the conversation whose state the turn reads.
	SessionID string `json:"session_id" yaml:"session_id" binding:"required"`

	// NewSession marks the first turn of a conversation. Any state stored
	// under SessionID is ignored.
	NewSession bool `json:"new_session" yaml:"new_session"`

	// RequestType is LaunchRequest, IntentRequest or SessionEndedRequest.
	RequestType string `json:"request_type" yaml:"request_type" binding:"required"`

	// Intent names the intent for an IntentRequest.
	Intent string `json:"intent,omitempty" yaml:"intent,omitempty"`

	// Slots maps slot names to the values the host recognised.
	Slots map[string]string `json:"slots,omitempty" yaml:"slots,omitempty"`
}
