package stt

import "context"

type Client interface {
	Transcribe(ctx context.Context, filePath string) (string, error) // wav -> text, "" when nothing was recognized
}
