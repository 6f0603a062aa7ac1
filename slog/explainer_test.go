package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/dcsstech/kbportal"
	"github.com/dcsstech/kbportal/mock"
	kbslog "github.com/dcsstech/kbportal/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplainer_LogsTermAndSourceCount(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	next := &mock.Explainer{
		ExplainFn: func(ctx context.Context, term string) (*kbportal.Explanation, error) {
			return &kbportal.Explanation{
				Text:    "解説",
				Sources: []kbportal.Source{{Title: "t", URI: "https://example.com"}},
			}, nil
		},
	}

	result, err := kbslog.NewExplainer(next, logger).Explain(context.Background(), "RAID")

	require.NoError(t, err)
	assert.Equal(t, "解説", result.Text)
	assert.Contains(t, buf.String(), "term explanation")
	assert.Contains(t, buf.String(), "term=RAID")
	assert.Contains(t, buf.String(), "sources=1")
}

func TestChatter_DoesNotLogMessageText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	next := &mock.Chatter{
		SendMessageFn: func(ctx context.Context, message string) (string, error) {
			return "回答", nil
		},
	}

	_, err := kbslog.NewChatter(next, logger).SendMessage(context.Background(), "S/N ABC123 の障害について")

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "assistant chat")
	assert.NotContains(t, buf.String(), "ABC123")
}
