package kbportal

import (
	"context"
	"time"
)

// Speaker identifies who produced a conversation turn.
type Speaker string

// Speaker constants. The assistant speaker matches the model role name
// used on the wire.
const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "model"
)

// Turn is one entry in an assistant conversation transcript.
type Turn struct {
	Speaker   Speaker   `json:"speaker"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Chatter answers a single free-text message from a field engineer.
// Each call is stateless from the model's perspective: the conversation
// history is not replayed, only the latest message travels with the
// fixed system framing.
type Chatter interface {
	// SendMessage returns the assistant's reply to message.
	// A transport or model error is returned as-is for the caller to
	// handle; no synthetic reply text is fabricated here.
	SendMessage(ctx context.Context, message string) (string, error)
}

// Source is a grounding citation: a page the model consulted while
// generating an explanation.
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// Explanation is the normalized result of a grounded explanation call.
// It is always renderable: a failed boundary call yields a fixed error
// text and an empty source list rather than an error.
type Explanation struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources"`
}

// Explainer resolves a technical term into a structured, sourced
// explanation via a search-grounded model call. Invocations are
// independent and may run concurrently.
type Explainer interface {
	// Explain issues one search-grounded request for term. Transport
	// and model failures are absorbed into a fallback Explanation, so
	// a non-nil error indicates caller-side problems only (an invalid
	// term or a canceled context).
	Explain(ctx context.Context, term string) (*Explanation, error)
}

// DedupSources removes citations sharing a URI, keeping the first
// occurrence and its order.
func DedupSources(sources []Source) []Source {
	seen := make(map[string]bool, len(sources))
	var out []Source
	for _, s := range sources {
		if seen[s.URI] {
			continue
		}
		seen[s.URI] = true
		out = append(out, s)
	}
	return out
}
