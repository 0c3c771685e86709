// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// FailureKind tags a reply with the reason it is not the happy-path answer.
// The user always hears a well-formed reply; the tag exists for logs.
type FailureKind string

const (
	FailureNone                  FailureKind = ""
	FailureUpstreamUnavailable   FailureKind = "upstream_unavailable"
	FailureGenerationUnavailable FailureKind = "generation_unavailable"
	FailureInvalidReference      FailureKind = "invalid_reference"
	FailureInternalFault         FailureKind = "internal_fault"
)

// String returns "none" for the zero value so log fields are never blank.
func (k FailureKind) String() string {
	if k == FailureNone {
		return "none"
	}
	return string(k)
}
