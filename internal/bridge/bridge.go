// Package bridge turns free-form filter descriptions into executable GraphQL
// query strings via an OpenAI-compatible chat-completion API.
package bridge

import (
	"context"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const systemInstruction = `You are a GraphQL query generator for an order database.
Given the schema below, respond with exactly one GraphQL query statement against the "orders" field.
Select every field of Order (including all fields of shipping_address, items and shipments), varying only the filter argument to match the user's request.
Respond with the query only: no commentary, no markdown, no code fences.

Schema:
`

// Config configures the bridge client. BaseURL is optional and allows any
// OpenAI-compatible endpoint.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration

	// SchemaSDL is the schema text embedded in every prompt.
	SchemaSDL string
}

type Bridge struct {
	client    *openai.Client
	model     string
	schemaSDL string
	logger    *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *Bridge {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{Timeout: timeout}

	return &Bridge{
		client:    openai.NewClientWithConfig(clientCfg),
		model:     cfg.Model,
		schemaSDL: cfg.SchemaSDL,
		logger:    logger,
	}
}

// GenerateQuery asks the completion API for a query matching the user's
// description and returns it sanitized to a single line. On any transport or
// API failure it logs the cause and returns the empty string; failures never
// propagate past this boundary. The returned text is not validated against
// the schema — a bad query fails downstream at execution time.
func (b *Bridge) GenerateQuery(ctx context.Context, userInput string) string {
	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstruction + b.schemaSDL},
			{Role: openai.ChatMessageRoleUser, Content: userInput},
		},
	})
	if err != nil {
		b.logger.Warn("completion call failed", zap.Error(err))
		return ""
	}

	if len(resp.Choices) == 0 {
		b.logger.Warn("completion returned no choices", zap.String("model", b.model))
		return ""
	}

	return Sanitize(resp.Choices[0].Message.Content)
}
