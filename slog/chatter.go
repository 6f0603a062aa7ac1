// Package slog provides logging decorators for the kbportal boundary
// interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/dcsstech/kbportal"
)

// Ensure Chatter implements kbportal.Chatter.
var _ kbportal.Chatter = (*Chatter)(nil)

// Chatter wraps a kbportal.Chatter with request logging. The message
// text itself is not logged, only its length; engineers paste serial
// numbers and customer names into the assistant.
type Chatter struct {
	next   kbportal.Chatter
	logger *slog.Logger
}

// NewChatter creates a new logging Chatter.
func NewChatter(next kbportal.Chatter, logger *slog.Logger) *Chatter {
	return &Chatter{next: next, logger: logger}
}

// SendMessage delegates to the wrapped Chatter and logs the outcome.
func (c *Chatter) SendMessage(ctx context.Context, message string) (string, error) {
	begin := time.Now()
	reply, err := c.next.SendMessage(ctx, message)
	if err != nil {
		c.logger.Error("assistant chat failed",
			"message_len", len(message),
			"duration", time.Since(begin),
			"error", err,
		)
		return reply, err
	}
	c.logger.Info("assistant chat",
		"message_len", len(message),
		"reply_len", len(reply),
		"duration", time.Since(begin),
	)
	return reply, nil
}
