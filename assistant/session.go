// Package assistant manages a linear assistant conversation, one
// exchange at a time.
package assistant

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/dcsstech/kbportal"
)

// Greeting is the seeded first turn of every conversation.
const Greeting = "お疲れ様です。DCSSテクニカルアシスタントです。お探しの手順書や、技術的な不明点はありますか？"

// Session owns an append-only conversation transcript and allows at
// most one boundary call in flight at a time. It is safe for concurrent
// use by multiple goroutines.
type Session struct {
	mu    sync.Mutex
	turns []kbportal.Turn
	busy  bool

	chatter kbportal.Chatter
	logger  *slog.Logger

	// Now returns the current time. Overridable in tests.
	Now func() time.Time
}

// NewSession creates a session seeded with the greeting turn.
func NewSession(chatter kbportal.Chatter, logger *slog.Logger) *Session {
	s := &Session{
		chatter: chatter,
		logger:  logger,
		Now:     time.Now,
	}
	s.turns = []kbportal.Turn{s.greeting()}
	return s
}

// Turns returns a copy of the transcript.
func (s *Session) Turns() []kbportal.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]kbportal.Turn(nil), s.turns...)
}

// Busy reports whether a boundary call is in flight.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Reset restores the transcript to the single greeting turn. Called
// when a fresh assistant panel is opened. Resetting does not interrupt
// an in-flight call; its reply is discarded when it settles.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = []kbportal.Turn{s.greeting()}
}

// Send appends the user turn, issues one boundary call carrying only
// this message, and appends the assistant's reply.
//
// An empty or whitespace-only message returns EINVALID and a busy
// session returns ECONFLICT; both leave the transcript untouched
// (rejection, not queueing). A boundary failure is logged and returned
// with no assistant turn appended, so the user turn stands and the
// user is free to retry.
func (s *Session) Send(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return kbportal.Errorf(kbportal.EINVALID, "message required")
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return kbportal.Errorf(kbportal.ECONFLICT, "a request is already in flight")
	}
	s.busy = true
	epoch := len(s.turns)
	s.turns = append(s.turns, kbportal.Turn{
		Speaker:   kbportal.SpeakerUser,
		Text:      text,
		Timestamp: s.Now(),
	})
	s.mu.Unlock()

	reply, err := s.chatter.SendMessage(ctx, text)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false

	// A Reset while the call was in flight shrinks the transcript; the
	// reply belongs to a conversation that no longer exists.
	if len(s.turns) <= epoch {
		return nil
	}

	if err != nil {
		s.logger.Error("assistant boundary call failed", "error", err)
		return err
	}

	s.turns = append(s.turns, kbportal.Turn{
		Speaker:   kbportal.SpeakerAssistant,
		Text:      reply,
		Timestamp: s.Now(),
	})
	return nil
}

func (s *Session) greeting() kbportal.Turn {
	return kbportal.Turn{
		Speaker:   kbportal.SpeakerAssistant,
		Text:      Greeting,
		Timestamp: s.Now(),
	}
}
