package stt

import (
	"context"
	"log"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type WhisperClient struct {
	client   *openai.Client
	language string
}

func NewWhisperClient(language string) *WhisperClient {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY not set")
	}

	// whisper wants the bare ISO 639-1 code, not a BCP 47 tag
	return &WhisperClient{
		client:   openai.NewClient(apiKey),
		language: strings.SplitN(language, "-", 2)[0],
	}
}

func (c *WhisperClient) Transcribe(ctx context.Context, filePath string) (string, error) {
	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: filePath,
		Language: c.language,
	})
	if err != nil {
		return "", err
	}

	return resp.Text, nil
}
