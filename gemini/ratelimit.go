package gemini

import (
	"context"

	"github.com/dcsstech/kbportal"
	"golang.org/x/time/rate"
)

var _ kbportal.Explainer = (*LimitedExplainer)(nil)

// LimitedExplainer wraps an Explainer with a token-bucket rate limit.
// Rapid repeated tag clicks would otherwise burn through the grounded
// search quota; excess calls wait their turn rather than failing.
type LimitedExplainer struct {
	next    kbportal.Explainer
	limiter *rate.Limiter
}

// NewLimitedExplainer creates a LimitedExplainer allowing rps requests
// per second with the given burst size.
func NewLimitedExplainer(next kbportal.Explainer, rps float64, burst int) *LimitedExplainer {
	return &LimitedExplainer{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Explain waits for the rate limit and delegates. The only error it
// introduces is context cancellation while waiting, in which case the
// caller is no longer listening for a result.
func (l *LimitedExplainer) Explain(ctx context.Context, term string) (*kbportal.Explanation, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return l.next.Explain(ctx, term)
}
