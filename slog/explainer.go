package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/dcsstech/kbportal"
)

// Ensure Explainer implements kbportal.Explainer.
var _ kbportal.Explainer = (*Explainer)(nil)

// Explainer wraps a kbportal.Explainer with request logging.
type Explainer struct {
	next   kbportal.Explainer
	logger *slog.Logger
}

// NewExplainer creates a new logging Explainer.
func NewExplainer(next kbportal.Explainer, logger *slog.Logger) *Explainer {
	return &Explainer{next: next, logger: logger}
}

// Explain delegates to the wrapped Explainer and logs term, duration,
// and source count.
func (e *Explainer) Explain(ctx context.Context, term string) (*kbportal.Explanation, error) {
	begin := time.Now()
	result, err := e.next.Explain(ctx, term)
	if err != nil {
		e.logger.Error("term explanation failed",
			"term", term,
			"duration", time.Since(begin),
			"error", err,
		)
		return result, err
	}
	e.logger.Info("term explanation",
		"term", term,
		"sources", len(result.Sources),
		"duration", time.Since(begin),
	)
	return result, nil
}
