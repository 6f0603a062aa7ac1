package mock

import (
	"context"

	"github.com/dcsstech/kbportal"
)

var _ kbportal.Chatter = (*Chatter)(nil)

// Chatter is a mock implementation of kbportal.Chatter.
type Chatter struct {
	SendMessageFn func(ctx context.Context, message string) (string, error)
}

func (c *Chatter) SendMessage(ctx context.Context, message string) (string, error) {
	return c.SendMessageFn(ctx, message)
}
