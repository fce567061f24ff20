package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/jonathan/profession-catalog/internal/config"
	"github.com/jonathan/profession-catalog/internal/schemas"
)

// Request bundles one structured-output call: the system and user prompts
// plus the schema the response must satisfy.
type Request struct {
	System string
	User   string
	Schema *schemas.Schema
}

// Client is an abstraction over the generative endpoint. Implementations
// return the raw response text; parsing and retry policy live in the Ladder.
type Client interface {
	// StructuredCompletion calls the endpoint with native schema enforcement.
	// withTools enables the web-search tool when the configuration allows it.
	StructuredCompletion(ctx context.Context, req Request, withTools bool) (string, error)
	// ChatCompletion calls the conversational endpoint with the schema
	// serialized into the prompt, for runs where native enforcement fails.
	ChatCompletion(ctx context.Context, req Request) (string, error)
}

// OpenAIClient implements Client against the OpenAI API.
type OpenAIClient struct {
	client *openai.Client
	cfg    *config.Config
}

// NewOpenAIClient creates a new OpenAI-backed client.
func NewOpenAIClient(cfg *config.Config) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	return &OpenAIClient{
		client: openai.NewClient(cfg.APIKey),
		cfg:    cfg,
	}, nil
}

// StructuredCompletion issues a completion with a JSON-schema response format.
// With tools requested and web search enabled, the request targets the
// search-capable primary model; otherwise the fallback model handles it.
func (c *OpenAIClient) StructuredCompletion(ctx context.Context, req Request, withTools bool) (string, error) {
	model := c.cfg.FallbackModel
	if withTools && c.cfg.UseWebSearch {
		model = c.cfg.WebModel
	}

	chatReq := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
		Temperature: 0.1, // Low temperature for consistent output
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   req.Schema.Name,
				Schema: req.Schema.Raw(),
				Strict: true,
			},
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return extractTextFromResponse(&resp)
}

// ChatCompletion issues a plain JSON-mode completion with the schema text
// embedded in the user prompt.
func (c *OpenAIClient) ChatCompletion(ctx context.Context, req Request) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.cfg.FallbackModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User + "\nВерни ТОЛЬКО JSON по схеме:\n" + req.Schema.Text()},
		},
		Temperature: 0.1,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return extractTextFromResponse(&resp)
}

// extractTextFromResponse extracts the message text from an API response.
func extractTextFromResponse(resp *openai.ChatCompletionResponse) (string, error) {
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("no content in response")
	}
	return content, nil
}
