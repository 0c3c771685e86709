// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dialog

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/papers-skill/internal/session"
	"github.com/pdiddy/papers-skill/pkg/types"
)

// Host runs turns for the outside world. It restores the conversation's
// state from the store, dispatches the turn, then saves the new state or
// deletes it when the conversation ended.
type Host struct {
	dispatcher *Dispatcher
	parser     Parser
	store      session.Store
	logger     *zap.Logger
}

// NewHost wires a Dispatcher to a session store.
func NewHost(d *Dispatcher, parser Parser, store session.Store, logger *zap.Logger) *Host {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Host{dispatcher: d, parser: parser, store: store, logger: logger}
}

// Turn handles req and returns its reply. Store failures never surface as
// errors: a failed load is answered with the generic apology, a failed save
// or delete is logged and the reply still goes out.
func (h *Host) Turn(ctx context.Context, req types.TurnRequest) types.Reply {
	start := time.Now()
	logger := h.logger.With(
		zap.String("session_id", req.SessionID),
		zap.String("request_type", req.RequestType),
		zap.String("intent", req.Intent))

	var state types.ConversationState
	if !req.NewSession {
		loaded, err := h.store.Load(ctx, req.SessionID)
		if err != nil {
			logger.Error("loading session failed", zap.Error(err))
			return faultReply()
		}
		state = loaded
	}

	event := h.parser.Parse(req.RequestType, req.Intent, req.Slots)
	reply, next := h.dispatcher.Handle(ctx, state, event)

	if reply.EndSession {
		if err := h.store.Delete(ctx, req.SessionID); err != nil {
			logger.Warn("deleting session failed", zap.Error(err))
		}
	} else if err := h.store.Save(ctx, req.SessionID, next); err != nil {
		logger.Warn("saving session failed", zap.Error(err))
	}

	logger.Info("turn handled",
		zap.String("failure", reply.Failure.String()),
		zap.Int("papers", len(next.Papers)),
		zap.Bool("end_session", reply.EndSession),
		zap.Duration("duration", time.Since(start)))
	return reply
}
