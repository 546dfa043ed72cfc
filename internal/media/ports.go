package media

import "context"

type PCMDecoder interface {
	DecodePCM(ctx context.Context, path string) ([]byte, error) // any container -> raw s16le mono pcm
}
