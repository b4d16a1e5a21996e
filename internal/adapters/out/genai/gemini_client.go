// internal/adapters/out/genai/gemini_client.go
package genai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel matches the model the web client used before the calls moved
// server-side.
const DefaultModel = "gemini-2.5-flash"

// Client implements assistant.Generator against the Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient builds a Gemini client. model falls back to DefaultModel when
// empty.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	key := strings.TrimSpace(apiKey)
	if key == "" {
		return nil, errors.New("genai: api key is empty")
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: key})
	if err != nil {
		return nil, fmt.Errorf("genai: create client: %w", err)
	}
	return &Client{client: c, model: model}, nil
}

// GenerateText returns a plain-text completion.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	if c == nil || c.client == nil {
		return "", errors.New("genai: client is nil")
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("genai: generate content: %w", err)
	}
	return resp.Text(), nil
}

// GenerateRecommendations constrains the reply to the personal-shopper JSON
// schema: {responseText, recommendations[{shopId, productId, reasoning}]}.
func (c *Client) GenerateRecommendations(ctx context.Context, prompt string) (string, error) {
	if c == nil || c.client == nil {
		return "", errors.New("genai: client is nil")
	}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   recommendationSchema(),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("genai: generate content: %w", err)
	}
	return resp.Text(), nil
}

func recommendationSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"responseText": {Type: genai.TypeString},
			"recommendations": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"shopId":    {Type: genai.TypeString},
						"productId": {Type: genai.TypeString},
						"reasoning": {Type: genai.TypeString},
					},
					Required: []string{"shopId", "productId", "reasoning"},
				},
			},
		},
		Required: []string{"responseText", "recommendations"},
	}
}
