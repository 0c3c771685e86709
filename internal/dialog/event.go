// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dialog

import "github.com/pdiddy/papers-skill/pkg/types"

// Request types and intent names understood by ParseEvent.
const (
	RequestLaunch     = "LaunchRequest"
	RequestIntent     = "IntentRequest"
	RequestSessionEnd = "SessionEndedRequest"

	IntentPapersSummary = "GetPapersSummaryIntent"
	IntentLatestNews    = "GetLatestNewsIntent"
	IntentPaperDetails  = "GetPaperDetailsIntent"
	IntentPracticalUse  = "GetPracticalUsageIntent"
	IntentSimplified    = "GetSimplifiedExplanationIntent"
	IntentKeyFindings   = "GetKeyFindingsIntent"
	IntentCompare       = "ComparePapersIntent"
	IntentHelp          = "AMAZON.HelpIntent"
	IntentCancel        = "AMAZON.CancelIntent"
	IntentStop          = "AMAZON.StopIntent"
	IntentFallback      = "AMAZON.FallbackIntent"
)

// Slot names carrying paper numbers.
const (
	SlotPaperNumber = "paperNumber"
	SlotFirstPaper  = "firstPaper"
	SlotSecondPaper = "secondPaper"
)

// Default fetch sizes for the two browsing intents.
const (
	DefaultSummaryLimit = 4
	DefaultNewsLimit    = 3
)

// Event is one user turn. The concrete types below are the only
// implementations.
type Event interface {
	event()
}

// Launch opens the conversation.
type Launch struct{}

// Fetch asks for the latest papers. Latest selects the shorter news wording
// for the apology when nothing could be fetched.
type Fetch struct {
	Limit  int
	Latest bool
}

// Reference asks for a view of one paper, or of two for KindComparison.
// First and Second hold the raw slot values; empty means the slot was
// missing or blank.
type Reference struct {
	Kind   ReferenceKind
	First  string
	Second string
}

// Help asks what the skill can do.
type Help struct{}

// Fallback is an utterance the host could not map to an intent.
type Fallback struct{}

// Stop ends the conversation at the user's request.
type Stop struct{}

// SessionEnd reports that the host already closed the conversation.
type SessionEnd struct{}

// Unknown is an intent name this skill does not handle.
type Unknown struct {
	RequestType string
	Intent      string
}

func (Launch) event()     {}
func (Fetch) event()      {}
func (Reference) event()  {}
func (Help) event()       {}
func (Fallback) event()   {}
func (Stop) event()       {}
func (SessionEnd) event() {}
func (Unknown) event()    {}

// Parser turns host requests into Events.
type Parser struct {
	SummaryLimit int
	NewsLimit    int
}

// NewParser returns a Parser using cfg's fetch sizes, falling back to the
// defaults for unset values.
func NewParser(cfg types.DialogConfig) Parser {
	p := Parser{SummaryLimit: cfg.SummaryLimit, NewsLimit: cfg.NewsLimit}
	if p.SummaryLimit <= 0 {
		p.SummaryLimit = DefaultSummaryLimit
	}
	if p.NewsLimit <= 0 {
		p.NewsLimit = DefaultNewsLimit
	}
	return p
}

// ParseEvent parses with the default fetch sizes.
func ParseEvent(requestType, intent string, slots map[string]string) Event {
	return NewParser(types.DialogConfig{}).Parse(requestType, intent, slots)
}

// Parse maps a request type, intent name and slot values to an Event.
// Unknown slot names are ignored. A nil slots map behaves as empty.
func (p Parser) Parse(requestType, intent string, slots map[string]string) Event {
	switch requestType {
	case RequestLaunch:
		return Launch{}
	case RequestSessionEnd:
		return SessionEnd{}
	}

	switch intent {
	case IntentPapersSummary:
		return Fetch{Limit: p.SummaryLimit}
	case IntentLatestNews:
		return Fetch{Limit: p.NewsLimit, Latest: true}
	case IntentPaperDetails:
		return Reference{Kind: KindDetail, First: slots[SlotPaperNumber]}
	case IntentPracticalUse:
		return Reference{Kind: KindPracticalUse, First: slots[SlotPaperNumber]}
	case IntentSimplified:
		return Reference{Kind: KindSimplified, First: slots[SlotPaperNumber]}
	case IntentKeyFindings:
		return Reference{Kind: KindKeyFindings, First: slots[SlotPaperNumber]}
	case IntentCompare:
		return Reference{Kind: KindComparison, First: slots[SlotFirstPaper], Second: slots[SlotSecondPaper]}
	case IntentHelp:
		return Help{}
	case IntentCancel, IntentStop:
		return Stop{}
	case IntentFallback:
		return Fallback{}
	}
	return Unknown{RequestType: requestType, Intent: intent}
}
