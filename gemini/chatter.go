// Package gemini implements the kbportal generative-model boundaries
// using Google Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dcsstech/kbportal"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// NoAnswerText replaces an empty model reply so an empty string is
// never presented as a valid answer.
const NoAnswerText = "申し訳ありません。回答を生成できませんでした。"

// Ensure Chatter implements kbportal.Chatter at compile time.
var _ kbportal.Chatter = (*Chatter)(nil)

// Chatter implements kbportal.Chatter using Google Gemini. Each call is
// self-contained: the fixed system framing plus a snapshot of the
// catalog travels with every message, and no conversation state is kept
// on the model side.
type Chatter struct {
	client  *genai.Client
	catalog kbportal.CatalogService
}

// NewChatter creates a new Chatter.
func NewChatter(client *genai.Client, catalog kbportal.CatalogService) *Chatter {
	return &Chatter{client: client, catalog: catalog}
}

// SendMessage returns the assistant's reply to a single message.
func (c *Chatter) SendMessage(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", kbportal.Errorf(kbportal.EINVALID, "message required")
	}

	docs, err := c.catalog.ListDocuments(ctx)
	if err != nil {
		return "", err
	}

	result, err := c.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: message}},
		}},
		BuildChatConfig(docs),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", kbportal.Errorf(kbportal.EINTERNAL, "gemini returned nil result")
	}

	text := result.Text()
	if text == "" {
		text = NoAnswerText
	}
	return text, nil
}

// BuildChatConfig returns the GenerateContentConfig for assistant chat
// calls, embedding a snapshot of the catalog in the system instruction.
func BuildChatConfig(docs []*kbportal.Document) *genai.GenerateContentConfig {
	temp := float32(0.3)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: BuildSystemInstruction(docs)}},
		},
		Temperature: &temp,
	}
}

// BuildSystemInstruction builds the fixed system framing with the
// current document list serialized as JSON so the model can reference
// known documents by name.
func BuildSystemInstruction(docs []*kbportal.Document) string {
	type docRef struct {
		Title        string   `json:"title"`
		Manufacturer string   `json:"manufacturer"`
		Tags         []string `json:"tags"`
	}
	refs := make([]docRef, 0, len(docs))
	for _, d := range docs {
		refs = append(refs, docRef{Title: d.Title, Manufacturer: d.Manufacturer, Tags: d.Tags})
	}
	snapshot, _ := json.Marshal(refs)

	return fmt.Sprintf(`あなたはDCSS Technology Japanのシニア・フィールドエンジニアのアシスタントAIです。
以下の役割を果たしてください：
1. フィールドエンジニアからの技術的な質問に簡潔に答える。
2. ユーザーが探している手順書が、登録されているドキュメントリスト内にある場合は、そのドキュメント名を正確に提示する。
3. サーバー、ストレージ、ネットワーク機器の一般的なトラブルシューティングのアドバイスを提供する。
4. 回答は常に日本語で行い、プロフェッショナルかつ丁寧なトーンを維持する。

現在利用可能なドキュメントリスト（ナレッジベース）:
%s

ユーザーがリストにない手順を求めた場合は、一般的な知識に基づいて回答しつつ、「現在の手順書リストには見当たりませんが、一般的な手順は以下の通りです」と断ってください。`, snapshot)
}
