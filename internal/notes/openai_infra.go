package notes

import (
	"context"
	"log"
	"math"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

const summarizePrompt = "Summarize the following lecture notes:\n"

type OpenAIClient struct {
	client    *openai.Client
	maxTokens int
}

func NewOpenAIClient(maxTokens int) *OpenAIClient {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY not set")
	}

	return &OpenAIClient{
		client:    openai.NewClient(apiKey),
		maxTokens: maxTokens,
	}
}

func (c *OpenAIClient) Summarize(ctx context.Context, text string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     openai.GPT4oMini,
		MaxTokens: c.maxTokens,
		// omitempty drops a literal 0, so send the smallest value instead
		Temperature: math.SmallestNonzeroFloat32,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: summarizePrompt + text,
			},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}
