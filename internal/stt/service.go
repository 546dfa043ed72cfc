package stt

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"strings"
)

// Fixed messages shown in place of a transcript when recognition cannot
// produce one. Downstream treats them as ordinary transcript text, so they
// flow to the page like any other result.
const (
	MsgNoSpeech           = "Sorry, could not understand the audio."
	MsgServiceUnavailable = "Speech recognition service is unavailable."
)

type Service struct {
	client Client
}

func NewService(client Client) *Service {
	return &Service{client: client}
}

// Transcribe runs recognition on a normalized wav file. Provider failures do
// not bubble up as errors: the user gets a readable message instead and the
// session keeps going. Only cancellation and local file errors stay errors.
func (s *Service) Transcribe(ctx context.Context, wavPath string) (string, error) {
	text, err := s.client.Transcribe(ctx, wavPath)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			// could not read the wav we just wrote, nothing the provider
			// message would explain
			return "", err
		}
		log.Printf("[stt] recognition failed: %v", err)
		return MsgServiceUnavailable, nil
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return MsgNoSpeech, nil
	}

	return text, nil
}
