package ports

import "context"

// Summarizer condenses a lecture transcript into short study notes.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}
