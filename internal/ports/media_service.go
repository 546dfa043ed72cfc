package ports

import "context"

// MediaService owns the temp files of a session: it stores the raw upload
// and converts it into the mono 16 kHz wav the recognizer expects.
// Normalize reports the audio length in seconds alongside the wav path;
// ProbeDuration reads the container metadata without decoding.
type MediaService interface {
	SaveUpload(data []byte, ext string) (string, error)
	ProbeDuration(ctx context.Context, path string) (float64, error)
	Normalize(ctx context.Context, srcPath string) (string, float64, error)
}
