// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package script replays scripted conversations. A script is a YAML file
// listing the turns a user would take; replaying it runs every turn through
// the dialog host and records what was said back.
package script

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/papers-skill/pkg/types"
)

// Script is a conversation to replay.
type Script struct {
	// SessionID names the conversation. A random ID is used when empty.
	SessionID string `yaml:"session_id,omitempty"`

	// Turns are sent in order. The first turn, and any turn after one
	// that ended the session, is marked as a new session.
	Turns []Turn `yaml:"turns"`
}

// Turn is one scripted user turn.
type Turn struct {
	// RequestType defaults to IntentRequest when Intent is set.
	RequestType string            `yaml:"request_type,omitempty"`
	Intent      string            `yaml:"intent,omitempty"`
	Slots       map[string]string `yaml:"slots,omitempty"`
}

// Exchange is one turn and the reply it produced.
type Exchange struct {
	Request types.TurnRequest `yaml:"request"`
	Reply   types.Reply       `yaml:"reply"`
}

// Turner runs one conversational turn.
type Turner interface {
	Turn(ctx context.Context, req types.TurnRequest) types.Reply
}

// Load reads a script from path.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening script: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing script %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a script.
func Parse(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("script is empty")
		}
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}

	if len(s.Turns) == 0 {
		return nil, fmt.Errorf("script has no turns")
	}
	for i := range s.Turns {
		t := &s.Turns[i]
		if t.RequestType == "" {
			if t.Intent == "" {
				return nil, fmt.Errorf("turn %d: needs request_type or intent", i+1)
			}
			t.RequestType = "IntentRequest"
		}
	}
	return &s, nil
}

// Replay runs every turn of s through turner and returns the exchanges.
func Replay(ctx context.Context, turner Turner, s *Script) ([]Exchange, error) {
	sessionID := s.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	exchanges := make([]Exchange, 0, len(s.Turns))
	newSession := true
	for _, t := range s.Turns {
		if err := ctx.Err(); err != nil {
			return exchanges, fmt.Errorf("replay interrupted: %w", err)
		}
		req := types.TurnRequest{
			SessionID:   sessionID,
			NewSession:  newSession,
			RequestType: t.RequestType,
			Intent:      t.Intent,
			Slots:       t.Slots,
		}
		reply := turner.Turn(ctx, req)
		exchanges = append(exchanges, Exchange{Request: req, Reply: reply})
		newSession = reply.EndSession
	}
	return exchanges, nil
}

// WriteTranscript prints exchanges as a readable dialogue.
func WriteTranscript(w io.Writer, exchanges []Exchange) error {
	for i, ex := range exchanges {
		if _, err := fmt.Fprintf(w, "[%d] > %s\n", i+1, describe(ex.Request)); err != nil {
			return err
		}
		fmt.Fprintf(w, "    < %s\n", ex.Reply.Speech)
		if ex.Reply.Reprompt != "" {
			fmt.Fprintf(w, "    ? %s\n", ex.Reply.Reprompt)
		}
		if ex.Reply.Failure != types.FailureNone {
			fmt.Fprintf(w, "    ! %s\n", ex.Reply.Failure)
		}
		if ex.Reply.EndSession {
			fmt.Fprintln(w, "    (session ended)")
		}
	}
	return nil
}

// WriteYAML prints exchanges as YAML.
func WriteYAML(w io.Writer, exchanges []Exchange) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(exchanges); err != nil {
		return fmt.Errorf("encoding transcript: %w", err)
	}
	return enc.Close()
}

func describe(req types.TurnRequest) string {
	name := req.Intent
	if name == "" {
		name = req.RequestType
	}
	if len(req.Slots) == 0 {
		return name
	}

	keys := make([]string, 0, len(req.Slots))
	for k := range req.Slots {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + req.Slots[k]
	}
	return name + " " + strings.Join(parts, " ")
}
