package completion

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sashabaranov/go-openai"

	"github.com/Jacquart08/ultimate-overlay/internal/config"
)

const systemPrompt = "You are a concise desktop assistant. Answer in a few short sentences suitable for a small overlay window."

// OpenAIGenerator talks to a locally hosted OpenAI-compatible server
// (ollama, llama.cpp, LM Studio). Load probes the endpoint and verifies the
// configured model is present, which is the closest equivalent of loading
// weights when the server owns the model.
type OpenAIGenerator struct {
	cfg config.ModelConfig

	mu     sync.Mutex
	client *openai.Client
}

func NewOpenAIGenerator(cfg config.ModelConfig) *OpenAIGenerator {
	return &OpenAIGenerator{cfg: cfg}
}

func (g *OpenAIGenerator) Load(ctx context.Context, progress func(int)) error {
	if g.cfg.BaseURL == "" || g.cfg.Model == "" {
		return fmt.Errorf("model endpoint not configured")
	}
	progress(10)

	clientConfig := openai.DefaultConfig(g.cfg.APIKey)
	clientConfig.BaseURL = g.cfg.BaseURL
	client := openai.NewClientWithConfig(clientConfig)
	progress(30)

	models, err := client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("probing model server: %w", err)
	}
	progress(70)

	found := false
	for _, m := range models.Models {
		if strings.EqualFold(m.ID, g.cfg.Model) {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("model %q not available on %s", g.cfg.Model, g.cfg.BaseURL)
	}

	g.mu.Lock()
	g.client = client
	g.mu.Unlock()
	progress(100)
	return nil
}

func (g *OpenAIGenerator) Unload() {
	g.mu.Lock()
	g.client = nil
	g.mu.Unlock()
}

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	client := g.client
	g.mu.Unlock()
	if client == nil {
		return "", fmt.Errorf("model not loaded")
	}

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
