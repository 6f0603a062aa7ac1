package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/dcsstech/kbportal"
	"google.golang.org/genai"
)

// Fixed fallback strings for the explanation boundary. The caller must
// always receive a renderable Explanation once the call settles.
const (
	// NoExplanationText replaces an empty model reply.
	NoExplanationText = "解説を生成できませんでした。"

	// ExplainFailedText is returned when the boundary call itself fails.
	ExplainFailedText = "情報の取得中にエラーが発生しました。"

	// FallbackSourceTitle stands in for a citation without a title.
	FallbackSourceTitle = "参照元リンク"
)

// Ensure Explainer implements kbportal.Explainer at compile time.
var _ kbportal.Explainer = (*Explainer)(nil)

// Explainer implements kbportal.Explainer using Google Gemini with
// Google Search grounding. Invocations share no mutable state and may
// run concurrently.
type Explainer struct {
	client *genai.Client
}

// NewExplainer creates a new Explainer.
func NewExplainer(client *genai.Client) *Explainer {
	return &Explainer{client: client}
}

// Explain issues one search-grounded request for the term and
// normalizes the result into text plus a deduplicated source list.
// Transport and model failures resolve to ExplainFailedText with no
// sources rather than an error.
func (e *Explainer) Explain(ctx context.Context, term string) (*kbportal.Explanation, error) {
	if strings.TrimSpace(term) == "" {
		return nil, kbportal.Errorf(kbportal.EINVALID, "term required")
	}

	result, err := e.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildExplainPrompt(term)}},
		}},
		BuildExplainConfig(),
	)
	if err != nil {
		return &kbportal.Explanation{Text: ExplainFailedText, Sources: nil}, nil
	}

	text := result.Text()
	if text == "" {
		text = NoExplanationText
	}

	return &kbportal.Explanation{
		Text:    text,
		Sources: kbportal.DedupSources(ExtractSources(result)),
	}, nil
}

// BuildExplainConfig returns the GenerateContentConfig for grounded
// explanation calls with the Google Search tool enabled.
func BuildExplainConfig() *genai.GenerateContentConfig {
	temp := float32(0.3)
	return &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
		Temperature: &temp,
	}
}

// BuildExplainPrompt builds the fixed instructional template
// parameterized by the technical term.
func BuildExplainPrompt(term string) string {
	return fmt.Sprintf(`ITインフラストラクチャ（サーバー、ストレージ、ネットワーク）の文脈において、技術用語「%s」について解説してください。

要件:
1. 初心者にもわかりやすく、かつエンジニアとして知っておくべき重要なポイントを含めてください。
2. この用語が実際の現場作業（交換、設定、トラブルシューティング）でどのように関わってくるか補足してください。
3. 最新の情報をWeb検索して反映させてください。`, term)
}

// ExtractSources pulls the web grounding citations out of a response.
// Chunks without a web reference are skipped; a missing title falls
// back to FallbackSourceTitle. Duplicates are not removed here.
func ExtractSources(result *genai.GenerateContentResponse) []kbportal.Source {
	if result == nil || len(result.Candidates) == 0 {
		return nil
	}
	md := result.Candidates[0].GroundingMetadata
	if md == nil {
		return nil
	}

	var sources []kbportal.Source
	for _, chunk := range md.GroundingChunks {
		if chunk == nil || chunk.Web == nil {
			continue
		}
		title := chunk.Web.Title
		if title == "" {
			title = FallbackSourceTitle
		}
		sources = append(sources, kbportal.Source{Title: title, URI: chunk.Web.URI})
	}
	return sources
}
