package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"

	"google.golang.org/api/option"

	"loopai-backend/internal/models"
)

// Generator is the single capability the chat handler needs from the
// AI provider. It exists so tests can substitute a fake.
type Generator interface {
	Generate(ctx context.Context, prompt []models.PromptMessage) (string, error)
}

type GeminiService struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiService(ctx context.Context, apiKey, modelName string) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiService{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

func (s *GeminiService) Close() {
	s.client.Close()
}

// Generate submits the assembled prompt as one multi-turn exchange:
// everything but the last entry becomes chat history, the last entry is
// the message being sent. One synchronous call, no retries.
func (s *GeminiService) Generate(ctx context.Context, prompt []models.PromptMessage) (string, error) {
	if len(prompt) == 0 {
		return "", &GatewayError{Err: fmt.Errorf("empty prompt")}
	}

	last := prompt[len(prompt)-1]

	chat := s.model.StartChat()
	chat.History = make([]*genai.Content, 0, len(prompt)-1)
	for _, msg := range prompt[:len(prompt)-1] {
		chat.History = append(chat.History, &genai.Content{
			Role:  msg.Role,
			Parts: []genai.Part{genai.Text(msg.Text)},
		})
	}

	resp, err := chat.SendMessage(ctx, genai.Text(last.Text))
	if err != nil {
		return "", &GatewayError{Err: err}
	}

	text := extractText(resp)
	if text == "" {
		return "", &GatewayError{Err: fmt.Errorf("model returned no text")}
	}

	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
