package openai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"openai-chatbot-be/pkg/llm"

	goopenai "github.com/sashabaranov/go-openai"
)

// requestTimeout is the hard cap on one upstream call.
const requestTimeout = 60 * time.Second

type OpenAIProvider struct {
	client *goopenai.Client
}

var _ llm.Provider = &OpenAIProvider{}

func NewOpenAIProvider(apiKey string) *OpenAIProvider {
	cfg := goopenai.DefaultConfig(apiKey)
	cfg.HTTPClient = &http.Client{
		Timeout: requestTimeout,
	}

	return &OpenAIProvider{
		client: goopenai.NewClientWithConfig(cfg),
	}
}

func (p *OpenAIProvider) CreateChatCompletion(ctx context.Context, model string, messages []llm.Message) (*llm.Completion, error) {
	req := goopenai.ChatCompletionRequest{
		Model:    model,
		Messages: make([]goopenai.ChatCompletionMessage, len(messages)),
	}
	for i, msg := range messages {
		req.Messages[i] = goopenai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("openai chat completion: %w", err)
	}

	completion := &llm.Completion{
		Model:   resp.Model,
		Choices: make([]llm.Choice, len(resp.Choices)),
	}
	for i := range resp.Choices {
		m := llm.Message{
			Role:    resp.Choices[i].Message.Role,
			Content: resp.Choices[i].Message.Content,
		}
		completion.Choices[i] = llm.Choice{Message: &m}
	}

	return completion, nil
}
