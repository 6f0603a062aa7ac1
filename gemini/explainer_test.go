package gemini_test

import (
	"context"
	"testing"

	"github.com/dcsstech/kbportal"
	"github.com/dcsstech/kbportal/gemini"
	"github.com/dcsstech/kbportal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestExplainer_Explain_RejectsEmptyTerm(t *testing.T) {
	t.Parallel()

	explainer := gemini.NewExplainer(nil) // nil client ok for this test

	_, err := explainer.Explain(context.Background(), " ")

	require.Error(t, err)
	assert.Equal(t, kbportal.EINVALID, kbportal.ErrorCode(err))
}

func TestBuildExplainConfig_EnablesGoogleSearch(t *testing.T) {
	t.Parallel()

	config := gemini.BuildExplainConfig()

	require.Len(t, config.Tools, 1)
	assert.NotNil(t, config.Tools[0].GoogleSearch)
	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.3, *config.Temperature, 0.001)
}

func TestBuildExplainPrompt_ContainsTerm(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildExplainPrompt("RAID")

	assert.Contains(t, prompt, "「RAID」")
	assert.Contains(t, prompt, "Web検索")
}

func TestExtractSources(t *testing.T) {
	t.Parallel()

	t.Run("skips non-web chunks and fills missing titles", func(t *testing.T) {
		t.Parallel()

		result := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				GroundingMetadata: &genai.GroundingMetadata{
					GroundingChunks: []*genai.GroundingChunk{
						{Web: &genai.GroundingChunkWeb{Title: "RAID - Wikipedia", URI: "https://example.com/raid"}},
						{Web: nil},
						{Web: &genai.GroundingChunkWeb{URI: "https://example.com/untitled"}},
					},
				},
			}},
		}

		sources := gemini.ExtractSources(result)

		require.Len(t, sources, 2)
		assert.Equal(t, "RAID - Wikipedia", sources[0].Title)
		assert.Equal(t, gemini.FallbackSourceTitle, sources[1].Title)
		assert.Equal(t, "https://example.com/untitled", sources[1].URI)
	})

	t.Run("no candidates", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, gemini.ExtractSources(&genai.GenerateContentResponse{}))
		assert.Empty(t, gemini.ExtractSources(nil))
	})

	t.Run("no grounding metadata", func(t *testing.T) {
		t.Parallel()

		result := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}
		assert.Empty(t, gemini.ExtractSources(result))
	})
}

func TestLimitedExplainer_Delegates(t *testing.T) {
	t.Parallel()

	next := &mock.Explainer{
		ExplainFn: func(ctx context.Context, term string) (*kbportal.Explanation, error) {
			return &kbportal.Explanation{Text: "解説: " + term}, nil
		},
	}

	limited := gemini.NewLimitedExplainer(next, 10, 1)

	result, err := limited.Explain(context.Background(), "iLO")

	require.NoError(t, err)
	assert.Equal(t, "解説: iLO", result.Text)
}

func TestLimitedExplainer_ReturnsContextErrorWhileWaiting(t *testing.T) {
	t.Parallel()

	next := &mock.Explainer{
		ExplainFn: func(ctx context.Context, term string) (*kbportal.Explanation, error) {
			t.Fatal("next explainer should not be reached")
			return nil, nil
		},
	}

	// Zero rps never admits a request, so Wait blocks until cancellation.
	limited := gemini.NewLimitedExplainer(next, 0, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := limited.Explain(ctx, "iLO")

	require.Error(t, err)
}
