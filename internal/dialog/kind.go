// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dialog

import (
	"fmt"

	"github.com/pdiddy/papers-skill/internal/prompt"
	"github.com/pdiddy/papers-skill/pkg/types"
)

// ReferenceKind selects which view of a paper a reference turn asks for.
type ReferenceKind string

const (
	KindDetail       ReferenceKind = "detail"
	KindPracticalUse ReferenceKind = "practical_use"
	KindSimplified   ReferenceKind = "simplified"
	KindKeyFindings  ReferenceKind = "key_findings"
	KindComparison   ReferenceKind = "comparison"
)

// wording holds the per-kind guidance a reference turn speaks.
type wording struct {
	// request completes "Diga resumir artigos primeiro, e depois ...".
	request string
	// example is the sample utterance in the range guidance.
	example string
	// ask re-prompts after invalid input.
	ask string
	// again re-prompts after a successful answer.
	again string
}

var wordings = map[ReferenceKind]wording{
	KindDetail: {
		request: "peça detalhes",
		example: "detalhes do artigo 1",
		ask:     "Qual artigo você quer saber mais?",
		again:   "Quer saber sobre outro artigo?",
	},
	KindPracticalUse: {
		request: "peça os usos práticos",
		example: "usos práticos do artigo 1",
		ask:     "De qual artigo você quer saber os usos práticos?",
		again:   "Quer saber os usos práticos de outro artigo?",
	},
	KindSimplified: {
		request: "peça uma explicação simples",
		example: "explica de forma simples o artigo 1",
		ask:     "Qual artigo você quer que eu explique de forma simples?",
		again:   "Quer uma explicação simples de outro artigo?",
	},
	KindKeyFindings: {
		request: "peça as descobertas",
		example: "descobertas do artigo 1",
		ask:     "De qual artigo você quer saber as descobertas?",
		again:   "Quer saber as descobertas de outro artigo?",
	},
	KindComparison: {
		request: "peça para comparar",
		example: "comparar artigo 1 com artigo 2",
		ask:     "Quais dois artigos você quer comparar?",
		again:   "Quer comparar outros artigos?",
	},
}

// Valid reports whether k is one of the known kinds.
func (k ReferenceKind) Valid() bool {
	_, ok := wordings[k]
	return ok
}

// Pair reports whether k references two papers.
func (k ReferenceKind) Pair() bool {
	return k == KindComparison
}

func (k ReferenceKind) fetchFirst() string {
	return "Ainda não busquei os artigos. Diga resumir artigos primeiro, e depois " + wordings[k].request + "."
}

func (k ReferenceKind) rangeGuidance(count int) string {
	numbers := "um número"
	if k.Pair() {
		numbers = "dois números"
	}
	return fmt.Sprintf("Por favor, diga %s de 1 a %d. Por exemplo, diga: %s.", numbers, count, wordings[k].example)
}

// single composes the prompt for a one-paper view.
func (k ReferenceKind) single(p types.Paper, n int) string {
	switch k {
	case KindDetail:
		return prompt.Detail(p, n)
	case KindPracticalUse:
		return prompt.PracticalUse(p, n)
	case KindSimplified:
		return prompt.Simplified(p, n)
	case KindKeyFindings:
		return prompt.KeyFindings(p, n)
	}
	panic(fmt.Sprintf("dialog: no single-paper view for kind %q", k))
}
