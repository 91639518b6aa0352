package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/skabbuzaid/AiBackend/internal/config"
	"google.golang.org/genai"
)

// ErrUnconfigured is returned when no model credential is available.
var ErrUnconfigured = errors.New("llm provider is not configured: missing GEMINI_API_KEY")

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Provider is the text-completion collaborator. Invoke sends the ordered
// message list to the model and returns its raw free-form reply.
type Provider interface {
	Invoke(ctx context.Context, messages []Message) (string, error)
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context) (Provider, error) {
	if config.AppConfig.GeminiAPIKey == "" {
		return nil, ErrUnconfigured
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.AppConfig.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{client: client, model: config.AppConfig.GeminiModel}, nil
}

func (p *geminiProvider) Invoke(ctx context.Context, messages []Message) (string, error) {
	log := config.WithContext(ctx)

	var cfg *genai.GenerateContentConfig
	var contents []*genai.Content
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			cfg = &genai.GenerateContentConfig{
				SystemInstruction: genai.NewContentFromText(m.Content, genai.RoleUser),
			}
		case RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}
	if len(contents) == 0 {
		return "", errors.New("no user content to send to the model")
	}

	result, err := p.client.Models.GenerateContent(ctx, p.model, contents, cfg)
	if err != nil {
		log.WithError(err).Error("Gemini generate content failed")
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	raw := result.Text()
	if raw == "" {
		return "", errors.New("empty response from model")
	}
	return raw, nil
}
