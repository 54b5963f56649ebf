// Package gemini is the boundary to the Gemini generative API. Every
// operation of the application (passage lookup, the three meditation
// categories, chat, share summary) is one generateContent call carrying the
// persistent policy block as system instruction.
package gemini

import (
	"context"
	"time"

	"google.golang.org/genai"

	apierrors "github.com/daehopark/malsum/internal/errors"
	"github.com/daehopark/malsum/internal/logging"
	"github.com/daehopark/malsum/internal/models"
	"github.com/daehopark/malsum/internal/prompt"
	"github.com/daehopark/malsum/internal/sanitize"
)

// Generator is the provider surface the session layer depends on.
// Implementations must be safe for concurrent use.
type Generator interface {
	FetchPassage(ctx context.Context, reference string) (string, error)
	GenerateMeditation(ctx context.Context, category models.Category, passageText string) (string, error)
	Chat(ctx context.Context, history []models.ChatMessage, question string) (string, error)
	Summarize(ctx context.Context, passage models.Passage, meditation models.MeditationContent) (string, error)
}

// Client implements Generator over the official genai SDK.
type Client struct {
	client *genai.Client
	model  string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithModel overrides the default model.
func WithModel(model string) ClientOption {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// NewClient creates a Gemini client. The key is sent only to the Gemini
// endpoint; a missing key is rejected up front so callers can route the
// user to settings instead of failing mid-operation.
func NewClient(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, apierrors.ErrNoAPIKey
	}

	inner, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, err
	}

	c := &Client{client: inner, model: models.GeminiModel}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// generationConfig returns the per-request config with the policy block.
func (c *Client) generationConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(prompt.PolicyBlock, genai.RoleUser),
	}
}

// generate runs one generateContent call and returns the response text.
func (c *Client) generate(ctx context.Context, op, contents string) (string, error) {
	start := time.Now()

	resp, err := c.client.Models.GenerateContent(ctx, c.model,
		genai.Text(contents), c.generationConfig())
	if err != nil {
		logging.S().Debugw("generation failed", "op", op, "err", err)
		return "", err
	}

	text := resp.Text()
	logging.S().Debugw("generation done", "op", op, "took", time.Since(start), "len", len(text))
	return text, nil
}

// FetchPassage retrieves the passage text for a normalized reference.
// The result is verbatim scripture and is returned unsanitized.
func (c *Client) FetchPassage(ctx context.Context, reference string) (string, error) {
	text, err := c.generate(ctx, "lookup", prompt.PassageLookup(reference))
	if err != nil {
		return "", apierrors.NewGenerationError("lookup", "성경 본문을 가져오지 못했습니다", err)
	}
	if text == "" {
		return "", apierrors.NewGenerationError("lookup", "본문을 찾을 수 없습니다", apierrors.ErrNoContent)
	}
	return text, nil
}

// GenerateMeditation produces one category of devotional content for the
// passage text.
func (c *Client) GenerateMeditation(ctx context.Context, category models.Category, passageText string) (string, error) {
	text, err := c.generate(ctx, string(category), prompt.Meditation(category, passageText))
	if err != nil {
		return "", apierrors.NewGenerationError("meditation", "묵상 내용을 생성하지 못했습니다", err)
	}
	if text == "" {
		return "", apierrors.NewGenerationError("meditation", "묵상 내용을 생성하지 못했습니다", apierrors.ErrNoContent)
	}
	return sanitize.RemoveEmphasis(text), nil
}

// Chat answers a question grounded in the prior transcript. History is
// mapped to the provider's role and parts shape; failed turns are skipped
// so a dangling user message does not confuse the model.
func (c *Client) Chat(ctx context.Context, history []models.ChatMessage, question string) (string, error) {
	chat, err := c.client.Chats.Create(ctx, c.model, c.generationConfig(), historyContents(history))
	if err != nil {
		return "", apierrors.NewGenerationError("chat", "답변을 생성할 수 없습니다", err)
	}

	resp, err := chat.SendMessage(ctx, genai.Part{Text: question})
	if err != nil {
		return "", apierrors.NewGenerationError("chat", "답변을 생성할 수 없습니다", err)
	}

	text := resp.Text()
	if text == "" {
		return "", apierrors.NewGenerationError("chat", "답변을 생성할 수 없습니다", apierrors.ErrNoContent)
	}
	return sanitize.RemoveEmphasis(text), nil
}

// historyContents maps a transcript to the provider's content shape,
// skipping failed turns.
func historyContents(history []models.ChatMessage) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		if msg.Status == models.StatusFailed {
			continue
		}
		var role genai.Role = genai.RoleUser
		if msg.Role == models.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Text, role))
	}
	return contents
}

// Summarize produces the compact shareable summary of a study.
func (c *Client) Summarize(ctx context.Context, passage models.Passage, meditation models.MeditationContent) (string, error) {
	text, err := c.generate(ctx, "summary", prompt.ShareSummary(passage, meditation))
	if err != nil {
		return "", apierrors.NewGenerationError("summary", "요약을 생성하지 못했습니다", err)
	}
	if text == "" {
		return "", apierrors.NewGenerationError("summary", "요약을 생성하지 못했습니다", apierrors.ErrNoContent)
	}
	return sanitize.RemoveEmphasis(text), nil
}
