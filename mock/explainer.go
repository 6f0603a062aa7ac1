package mock

import (
	"context"

	"github.com/dcsstech/kbportal"
)

var _ kbportal.Explainer = (*Explainer)(nil)

// Explainer is a mock implementation of kbportal.Explainer.
type Explainer struct {
	ExplainFn func(ctx context.Context, term string) (*kbportal.Explanation, error)
}

func (e *Explainer) Explain(ctx context.Context, term string) (*kbportal.Explanation, error) {
	return e.ExplainFn(ctx, term)
}
