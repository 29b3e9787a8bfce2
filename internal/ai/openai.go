package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Summarizer produces a short summary for an ingested article that arrived
// without one. Optional: import works without it.
type Summarizer interface {
	Summarize(ctx context.Context, title, content string) (string, error)
}

// OpenAIClient implements Summarizer using the OpenAI Chat Completions API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string // optional
}

func NewOpenAI(cfg Config) *OpenAIClient {
	var c *openai.Client
	if cfg.BaseURL != "" {
		cc := openai.DefaultConfig(cfg.APIKey)
		cc.BaseURL = cfg.BaseURL
		c = openai.NewClientWithConfig(cc)
	} else {
		c = openai.NewClient(cfg.APIKey)
	}
	model := cfg.Model
	if model == "" {
		panic("OpenAI model must be specified")
	}
	return &OpenAIClient{client: c, model: model}
}

func (o *OpenAIClient) Summarize(ctx context.Context, title, content string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()
	content = strings.TrimSpace(content)
	if content == "" {
		content = title
	}
	// Trim inputs to keep tokens reasonable
	if len([]rune(content)) > 1000 {
		content = string([]rune(content)[:1000])
	}

	sys := "Summarize the article in 1-2 plain sentences. Neutral tone, no editorializing, no markdown."
	user := fmt.Sprintf("Title: %s\nContent: %s", title, content)
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: sys},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		slog.Error("openai: summarize error", "err", err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
