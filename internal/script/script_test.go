// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package script

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/papers-skill/internal/dialog"
	"github.com/pdiddy/papers-skill/internal/generate"
	"github.com/pdiddy/papers-skill/internal/session"
	"github.com/pdiddy/papers-skill/pkg/types"
)

const browseScript = `
session_id: demo
turns:
  - request_type: LaunchRequest
  - intent: GetPapersSummaryIntent
  - intent: GetPaperDetailsIntent
    slots:
      paperNumber: segundo
  - intent: ComparePapersIntent
    slots:
      firstPaper: "1"
      secondPaper: "1"
  - intent: AMAZON.StopIntent
`

type scriptedTurner struct {
	replies []types.Reply
	got     []types.TurnRequest
}

func (s *scriptedTurner) Turn(_ context.Context, req types.TurnRequest) types.Reply {
	s.got = append(s.got, req)
	r := s.replies[0]
	s.replies = s.replies[1:]
	return r
}

type papers []types.Paper

func (p papers) Fetch(context.Context, int) []types.Paper { return p }

type fixedBackend string

func (b fixedBackend) Complete(context.Context, string) (string, error) { return string(b), nil }

func TestParse(t *testing.T) {
	s, err := Parse(strings.NewReader(browseScript))
	require.NoError(t, err)

	assert.Equal(t, "demo", s.SessionID)
	require.Len(t, s.Turns, 5)
	assert.Equal(t, "LaunchRequest", s.Turns[0].RequestType)
	assert.Equal(t, "IntentRequest", s.Turns[1].RequestType, "defaulted from intent")
	assert.Equal(t, map[string]string{"paperNumber": "segundo"}, s.Turns[2].Slots)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"empty", "", "empty"},
		{"no turns", "session_id: x\n", "no turns"},
		{"turn without intent", "turns:\n  - slots: {a: b}\n", "turn 1"},
		{"unknown field", "turns:\n  - intent: X\n    colour: red\n", "colour"},
		{"not yaml", "turns: [", "decoding yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.yaml))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "browse.yaml")
	require.NoError(t, os.WriteFile(path, []byte(browseScript), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Turns, 5)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "opening script")
}

func TestLoad_DemoScript(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "browse.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "demo-browse", s.SessionID)
	require.Len(t, s.Turns, 7)
	for _, turn := range s.Turns {
		assert.NotEmpty(t, turn.RequestType)
	}
}

func TestReplay_SessionFlags(t *testing.T) {
	turner := &scriptedTurner{replies: []types.Reply{
		types.Ask("a", "b"),
		types.Tell("bye"),
		types.Ask("c", "d"),
	}}
	s := &Script{Turns: []Turn{
		{RequestType: "LaunchRequest"},
		{RequestType: "IntentRequest", Intent: "AMAZON.StopIntent"},
		{RequestType: "LaunchRequest"},
	}}

	exchanges, err := Replay(context.Background(), turner, s)
	require.NoError(t, err)
	require.Len(t, exchanges, 3)

	require.NotEmpty(t, turner.got[0].SessionID, "random id when the script names none")
	for _, req := range turner.got {
		assert.Equal(t, turner.got[0].SessionID, req.SessionID)
	}
	assert.True(t, turner.got[0].NewSession)
	assert.False(t, turner.got[1].NewSession)
	assert.True(t, turner.got[2].NewSession, "turn after an ended session starts fresh")
}

func TestReplay_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Replay(ctx, &scriptedTurner{}, &Script{Turns: []Turn{{RequestType: "LaunchRequest"}}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReplay_ThroughDialog(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	defer store.Close()

	fetcher := papers{
		types.NewPaper("Alpha", "first", []string{"Ana"}),
		types.NewPaper("Beta", "second", []string{"Bia"}),
	}
	gen := generate.NewWithBackend(fixedBackend("texto gerado"), time.Second, nil)
	host := dialog.NewHost(dialog.New(fetcher, gen, nil), dialog.NewParser(types.DialogConfig{}), store, nil)

	s, err := Parse(strings.NewReader(browseScript))
	require.NoError(t, err)

	exchanges, err := Replay(context.Background(), host, s)
	require.NoError(t, err)
	require.Len(t, exchanges, 5)

	assert.Equal(t, dialog.GreetingReply, exchanges[0].Reply.Speech)
	assert.Equal(t, "texto gerado", exchanges[1].Reply.Speech)
	assert.Equal(t, "texto gerado", exchanges[2].Reply.Speech)
	assert.Equal(t, dialog.DistinctReply, exchanges[3].Reply.Speech)
	assert.Equal(t, types.FailureInvalidReference, exchanges[3].Reply.Failure)
	assert.Equal(t, dialog.FarewellReply, exchanges[4].Reply.Speech)
	assert.True(t, exchanges[4].Reply.EndSession)

	var buf bytes.Buffer
	require.NoError(t, WriteTranscript(&buf, exchanges))
	out := buf.String()
	assert.Contains(t, out, "[3] > GetPaperDetailsIntent paperNumber=segundo")
	assert.Contains(t, out, "! invalid_reference")
	assert.Contains(t, out, "(session ended)")
}

func TestWriteYAML(t *testing.T) {
	exchanges := []Exchange{{
		Request: types.TurnRequest{SessionID: "s", RequestType: "LaunchRequest"},
		Reply:   types.Ask("olá", "diga"),
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, exchanges))

	var decoded []Exchange
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, exchanges, decoded)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "LaunchRequest", describe(types.TurnRequest{RequestType: "LaunchRequest"}))
	assert.Equal(t, "ComparePapersIntent firstPaper=1 secondPaper=2", describe(types.TurnRequest{
		RequestType: "IntentRequest",
		Intent:      "ComparePapersIntent",
		Slots:       map[string]string{"secondPaper": "2", "firstPaper": "1"},
	}))
}
