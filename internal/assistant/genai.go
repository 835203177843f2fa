package assistant

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GenAIChat is a ChatModel backed by Google's genai SDK.
type GenAIChat struct {
	client *genai.Client
	model  string
}

// NewGenAIChat creates a chat model client for the given API key and model.
func NewGenAIChat(ctx context.Context, apiKey, model string) (*GenAIChat, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	if model == "" {
		model = "gemini-1.5-pro-latest"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GenAIChat{client: client, model: model}, nil
}

// Generate sends the conversation to the model and returns its reply.
func (g *GenAIChat) Generate(ctx context.Context, system string, history []Message, prompt string) (string, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, msg := range history {
		role := genai.Role(genai.RoleUser)
		if msg.Role == RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Content, role))
	}
	contents = append(contents, genai.NewContentFromText(prompt, genai.RoleUser))

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.7),
		TopP:            genai.Ptr[float32](0.95),
		MaxOutputTokens: 2048,
	}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("GenAI chat failed: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", fmt.Errorf("no reply returned")
	}
	return text, nil
}
