// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt composes the generation prompts for each spoken view of the
// fetched papers. Every prompt frames the model as a voice assistant, states
// the spoken-output rules (word budget, no visual formatting), and embeds the
// paper's title, authors, and summary. Composition is deterministic.
package prompt

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/pdiddy/papers-skill/pkg/types"
)

// MultiPaperSummaryLimit is how many characters of each summary are embedded
// when a prompt carries more than one paper.
const MultiPaperSummaryLimit = 500

// NoPapersReply is returned by Summary when there is nothing to summarize.
const NoPapersReply = "Não encontrei artigos recentes para resumir. Tente novamente mais tarde."

const (
	roleAI     = "Você é um assistente de voz da Alexa especializado em inteligência artificial."
	roleSimple = "Você é um assistente de voz da Alexa especializado em explicar ciência de forma simples."
	spoken     = "- O texto será LIDO EM VOZ ALTA pela Alexa"
	noMarkup   = "- Não use formatação como asteriscos ou marcadores"
)

var funcs = template.FuncMap{
	"authors": func(a []string) string { return strings.Join(a, ", ") },
	"clip":    clip,
	"inc":     func(i int) int { return i + 1 },
}

var templates = template.Must(template.New("prompts").Funcs(funcs).Parse(`
{{define "paper"}}Título: {{.Paper.Title}}
Autores: {{authors .Paper.Authors}}
Resumo completo: {{.Paper.Summary}}{{end}}

{{define "summary"}}` + roleAI + `
Resuma os seguintes artigos científicos do Hugging Face de forma natural e conversacional em Português Brasileiro.

REGRAS IMPORTANTES:
- O resumo será LIDO EM VOZ ALTA pela Alexa
- Use no máximo 200 palavras no total
- Use linguagem simples e acessível
- Não use siglas sem explicar
` + noMarkup + `
- NUMERE os artigos (primeiro, segundo, terceiro...) para que o usuário possa pedir detalhes
- Termine dizendo que o usuário pode pedir mais detalhes sobre qualquer artigo
{{range $i, $p := .Papers}}
Artigo {{inc $i}}: {{$p.Title}}
Autores: {{authors $p.Authors}}
Resumo: {{clip $p.Summary}}
{{end}}
Gere um resumo natural e fluido em português brasileiro.{{end}}

{{define "detail"}}` + roleAI + `
Explique em detalhes o seguinte artigo científico em Português Brasileiro de forma natural e conversacional.

{{template "paper" .}}

REGRAS IMPORTANTES:
` + spoken + `
- Use no máximo 200 palavras
- Explique o que o artigo propõe e por que é importante
- Use linguagem acessível, explicando termos técnicos
` + noMarkup + `
- Comece dizendo "O artigo número {{.Number}} de titulo {{.Paper.Title}}..." ou similar

Gere uma explicação detalhada e natural em português brasileiro.{{end}}

{{define "practical"}}` + roleAI + `
Com base no seguinte artigo científico, sugira ideias práticas de uso e aplicações reais da proposta apresentada.

{{template "paper" .}}

REGRAS IMPORTANTES:
` + spoken + `
- Use no máximo 250 palavras
- Sugira de 3 a 5 aplicações práticas e reais
- Explique como empresas, desenvolvedores ou pesquisadores poderiam usar essa tecnologia
- Dê exemplos concretos de setores ou problemas que poderiam se beneficiar
- Use linguagem acessível e conversacional
` + noMarkup + `
- Comece dizendo "O artigo número {{.Number}}, sobre {{.Paper.Title}}, pode ser aplicado de várias formas..." ou similar

Gere sugestões práticas e criativas em português brasileiro.{{end}}

{{define "comparison"}}` + roleAI + `
Compare os dois artigos científicos abaixo, destacando semelhanças, diferenças e como se complementam.

Artigo {{.First.Number}}: {{.First.Paper.Title}}
Autores: {{authors .First.Paper.Authors}}
Resumo: {{clip .First.Paper.Summary}}

Artigo {{.Second.Number}}: {{.Second.Paper.Title}}
Autores: {{authors .Second.Paper.Authors}}
Resumo: {{clip .Second.Paper.Summary}}

REGRAS IMPORTANTES:
` + spoken + `
- Use no máximo 250 palavras
- Compare os objetivos, métodos e contribuições de cada artigo
- Destaque o que há em comum e o que difere
- Mencione se os artigos se complementam
- Use linguagem acessível e conversacional
` + noMarkup + `

Gere uma comparação natural e fluida em português brasileiro.{{end}}

{{define "simplified"}}` + roleSimple + `
Explique o seguinte artigo científico como se estivesse explicando para alguém que não tem nenhum conhecimento técnico.

{{template "paper" .}}

REGRAS IMPORTANTES:
` + spoken + `
- Use no máximo 200 palavras
- Explique como se fosse para uma criança de 10 anos ou alguém completamente leigo
- Use analogias do dia a dia para explicar conceitos técnicos
- Evite completamente jargão técnico, use palavras simples
` + noMarkup + `
- Comece dizendo "Imagine que..." ou "Pense assim..." ou algo que crie uma analogia fácil

Gere uma explicação extremamente simples e acessível em português brasileiro.{{end}}

{{define "findings"}}` + roleAI + `
Extraia e apresente as principais descobertas e contribuições do seguinte artigo científico.

{{template "paper" .}}

REGRAS IMPORTANTES:
` + spoken + `
- Use no máximo 200 palavras
- Foque nos resultados principais e nas contribuições mais importantes
- Mencione métricas ou melhorias quantitativas se disponíveis
- Explique por que essas descobertas são relevantes para a área
- Use linguagem acessível, explicando termos técnicos
` + noMarkup + `
- Comece dizendo "As principais descobertas do artigo número {{.Number}}..." ou similar

Gere um resumo das descobertas chave em português brasileiro.{{end}}
`))

// numbered pairs a paper with its spoken 1-based position.
type numbered struct {
	Number int
	Paper  types.Paper
}

// Summary composes the prompt that reads out every fetched paper, numbered,
// with each summary clipped to MultiPaperSummaryLimit characters.
func Summary(papers []types.Paper) string {
	if len(papers) == 0 {
		return NoPapersReply
	}
	return render("summary", struct{ Papers []types.Paper }{papers})
}

// Detail composes the in-depth explanation prompt for the paper at position n.
func Detail(p types.Paper, n int) string {
	return render("detail", numbered{n, p})
}

// PracticalUse composes the prompt asking for three to five real applications.
func PracticalUse(p types.Paper, n int) string {
	return render("practical", numbered{n, p})
}

// Comparison composes the prompt contrasting two distinct papers.
func Comparison(first types.Paper, firstN int, second types.Paper, secondN int) string {
	return render("comparison", struct{ First, Second numbered }{
		numbered{firstN, first},
		numbered{secondN, second},
	})
}

// Simplified composes the analogy-driven explanation prompt for a lay listener.
func Simplified(p types.Paper, n int) string {
	return render("simplified", numbered{n, p})
}

// KeyFindings composes the prompt extracting the main results of a paper.
func KeyFindings(p types.Paper, n int) string {
	return render("findings", numbered{n, p})
}

func render(name string, data any) string {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		// Only reachable through a broken template.
		panic("prompt: executing " + name + ": " + err.Error())
	}
	return buf.String()
}

// clip returns the first MultiPaperSummaryLimit characters of s.
func clip(s string) string {
	r := []rune(s)
	if len(r) <= MultiPaperSummaryLimit {
		return s
	}
	return string(r[:MultiPaperSummaryLimit])
}
