package notes

import (
	"context"
	"log"
	"strings"
	"unicode/utf8"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

const (
	// transcripts at or under this many characters are not worth summarizing
	minTranscriptRunes = 50

	// distilbart reads at most this many tokens; longer input is cut off
	modelWindowTokens = 1024
)

// LongEnough reports whether a transcript carries enough text to summarize.
// The fixed recognition messages fall under the bar on purpose.
func LongEnough(transcript string) bool {
	return utf8.RuneCountInString(transcript) > minTranscriptRunes
}

type Service struct {
	client    Client
	maxTokens int
}

func NewService(client Client, maxTokens int) *Service {
	return &Service{client: client, maxTokens: maxTokens}
}

// Summarize condenses a transcript into study notes, hard-capped at the
// configured token limit even when the provider over-generates.
func (s *Service) Summarize(ctx context.Context, transcript string) (string, error) {
	if strings.TrimSpace(transcript) == "" {
		return "", nil
	}

	enc, err := tiktoken.EncodingForModel("gpt-4o-mini")
	if err != nil {
		log.Printf("tokenizer init fail: %v", err)
		enc = nil
	}

	if enc != nil && len(enc.Encode(transcript, nil, nil)) > modelWindowTokens {
		log.Printf("[notes] transcript exceeds %d tokens, tail may be ignored", modelWindowTokens)
	}

	summary, err := s.client.Summarize(ctx, transcript)
	if err != nil {
		return "", err
	}

	summary = strings.TrimSpace(summary)
	if summary == "" || enc == nil {
		return summary, nil
	}

	toks := enc.Encode(summary, nil, nil)
	if len(toks) <= s.maxTokens {
		return summary, nil
	}

	return strings.TrimSpace(enc.Decode(toks[:s.maxTokens])), nil
}
