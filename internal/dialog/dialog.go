// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dialog runs one conversational turn: it takes the conversation's
// current state and a parsed Event, calls the catalog and the generator as
// the event requires, and returns exactly one Reply together with the next
// state. Every failure becomes a spoken reply; nothing escapes Handle.
package dialog

import (
	"context"
	"fmt"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/pdiddy/papers-skill/internal/generate"
	"github.com/pdiddy/papers-skill/internal/prompt"
	"github.com/pdiddy/papers-skill/internal/reference"
	"github.com/pdiddy/papers-skill/pkg/types"
)

// Spoken text that does not depend on a reference kind.
const (
	GreetingReply = "Olá! Sou sua assistente de artigos do Hugging Face. " +
		"Diga resumir artigos para ouvir as novidades em inteligência artificial. " +
		"Depois, você pode pedir detalhes, usos práticos, explicação simples, " +
		"descobertas ou comparar artigos."
	FetchReprompt   = "Diga resumir artigos para começar."
	FollowUpPrompt  = "Quer mais detalhes sobre algum artigo? Diga o número."
	SummaryApology  = "Desculpe, não consegui buscar os artigos no momento. Por favor, tente novamente mais tarde."
	NewsApology     = "Desculpe, não consegui buscar as novidades. Tente novamente."
	DistinctReply   = "Você precisa escolher dois artigos diferentes para comparar."
	FarewellReply   = "Até mais!"
	FaultReply      = "Desculpe, ocorreu um erro. Tente novamente."
	FaultReprompt   = "Tente novamente."
	HelpReply       = "Eu resumo os artigos mais recentes de inteligência artificial do Hugging Face. " +
		"Diga resumir artigos para ouvir as novidades. " +
		"Depois, você pode pedir detalhes, usos práticos, uma explicação simples, " +
		"ou as principais descobertas de um artigo. " +
		"Você também pode comparar dois artigos entre si. " +
		"Por exemplo, diga: usos práticos do artigo dois."
	FallbackReply = "Não entendi. Diga resumir artigos para começar, " +
		"ou peça usos práticos, explicação simples, descobertas ou comparar artigos."
)

// Fetcher returns up to limit papers, or none when the catalog is unavailable.
type Fetcher interface {
	Fetch(ctx context.Context, limit int) []types.Paper
}

// Generator turns a prompt into spoken text. It never fails outright: the
// Outcome carries a fallback text and a failure tag instead.
type Generator interface {
	Generate(ctx context.Context, prompt string) generate.Outcome
}

// Dispatcher handles turns. It holds no per-conversation state and is safe
// for concurrent use.
type Dispatcher struct {
	fetcher   Fetcher
	generator Generator
	logger    *zap.Logger
}

// New returns a Dispatcher. A nil logger discards output.
func New(fetcher Fetcher, generator Generator, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{fetcher: fetcher, generator: generator, logger: logger}
}

// Handle runs one turn. A panic anywhere below is recovered here, logged
// with its stack, and answered with the generic apology; the input state is
// returned unchanged in that case.
func (d *Dispatcher) Handle(ctx context.Context, state types.ConversationState, ev Event) (reply types.Reply, next types.ConversationState) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("turn panicked",
				zap.Any("panic", r),
				zap.String("event", fmt.Sprintf("%T", ev)),
				zap.ByteString("stack", debug.Stack()))
			reply, next = faultReply(), state
		}
	}()

	switch e := ev.(type) {
	case Launch:
		return types.Ask(GreetingReply, FetchReprompt), state
	case Fetch:
		return d.fetch(ctx, state, e)
	case Reference:
		return d.reference(ctx, state, e), state
	case Help:
		return types.Ask(HelpReply, HelpReply), state
	case Fallback:
		return types.Ask(FallbackReply, FallbackReply), state
	case Stop:
		return types.Tell(FarewellReply), state
	case SessionEnd:
		return types.Tell(""), state
	case Unknown:
		d.logger.Error("unhandled intent",
			zap.String("request_type", e.RequestType),
			zap.String("intent", e.Intent))
		return faultReply(), state
	default:
		d.logger.Error("unhandled event", zap.String("event", fmt.Sprintf("%T", ev)))
		return faultReply(), state
	}
}

func faultReply() types.Reply {
	return types.Ask(FaultReply, FaultReprompt).WithFailure(types.FailureInternalFault)
}

func (d *Dispatcher) fetch(ctx context.Context, state types.ConversationState, e Fetch) (types.Reply, types.ConversationState) {
	papers := d.fetcher.Fetch(ctx, e.Limit)
	if len(papers) == 0 {
		apology := SummaryApology
		if e.Latest {
			apology = NewsApology
		}
		d.logger.Info("no papers fetched", zap.Int("limit", e.Limit))
		return types.Tell(apology).WithFailure(types.FailureUpstreamUnavailable), state
	}

	next := state.WithPapers(papers)
	d.logger.Info("papers fetched", zap.Int("count", len(papers)))

	out := d.generator.Generate(ctx, prompt.Summary(next.Papers))
	return types.Ask(out.Text, FollowUpPrompt).WithFailure(out.Failure), next
}

// reference answers a turn that names one or two papers by number.
func (d *Dispatcher) reference(ctx context.Context, state types.ConversationState, e Reference) types.Reply {
	if !e.Kind.Valid() {
		d.logger.Error("unknown reference kind", zap.String("kind", string(e.Kind)))
		return faultReply()
	}
	w := wordings[e.Kind]

	if !state.HasPapers() {
		d.logger.Debug("reference before fetch", zap.String("kind", string(e.Kind)))
		return types.Ask(e.Kind.fetchFirst(), FetchReprompt).WithFailure(types.FailureInvalidReference)
	}

	invalid := func(speech string) types.Reply {
		d.logger.Debug("invalid reference",
			zap.String("kind", string(e.Kind)),
			zap.String("first", e.First),
			zap.String("second", e.Second),
			zap.Int("papers", len(state.Papers)))
		return types.Ask(speech, w.ask).WithFailure(types.FailureInvalidReference)
	}

	first, firstOK := resolve(state, e.First)
	if !e.Kind.Pair() {
		if !firstOK {
			return invalid(e.Kind.rangeGuidance(len(state.Papers)))
		}
		p, _ := state.Paper(first)
		out := d.generator.Generate(ctx, e.Kind.single(p, first))
		return types.Ask(out.Text, w.again).WithFailure(out.Failure)
	}

	second, secondOK := resolve(state, e.Second)
	if !firstOK || !secondOK {
		return invalid(e.Kind.rangeGuidance(len(state.Papers)))
	}
	if first == second {
		return invalid(DistinctReply)
	}

	p1, _ := state.Paper(first)
	p2, _ := state.Paper(second)
	out := d.generator.Generate(ctx, prompt.Comparison(p1, first, p2, second))
	return types.Ask(out.Text, w.again).WithFailure(out.Failure)
}

// resolve maps a raw slot value to a paper index within state.
func resolve(state types.ConversationState, raw string) (int, bool) {
	n, ok := reference.Resolve(raw)
	if !ok {
		return 0, false
	}
	if _, ok := state.Paper(n); !ok {
		return 0, false
	}
	return n, true
}
