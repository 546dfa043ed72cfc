package ports

import "context"

// Transcriber turns normalized wave audio into plain text. The two known
// service failures (nothing recognized, provider unreachable) come back as
// fixed sentinel strings, not errors; anything else is a real error.
type Transcriber interface {
	Transcribe(ctx context.Context, wavPath string) (string, error)
}
