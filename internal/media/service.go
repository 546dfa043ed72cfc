package media

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var allowedExt = map[string]string{
	".wav": "audio/wav",
	".mp3": "audio/mpeg",
	".m4a": "audio/mp4",
}

// AllowedExt reports whether uploads with this extension are accepted.
func AllowedExt(ext string) bool {
	_, ok := allowedExt[strings.ToLower(ext)]
	return ok
}

// ContentTypeForExt maps an accepted extension to the mime type the audio
// endpoint serves it with.
func ContentTypeForExt(ext string) string {
	if ct, ok := allowedExt[strings.ToLower(ext)]; ok {
		return ct
	}
	return "application/octet-stream"
}

type Service struct {
	dec        PCMDecoder
	dir        string
	sampleRate int
}

func NewService(dec PCMDecoder, dir string, sampleRate int) *Service {
	if dir == "" {
		dir = os.TempDir()
	}
	return &Service{
		dec:        dec,
		dir:        dir,
		sampleRate: sampleRate,
	}
}

// SaveUpload writes the raw upload body to a temp file and returns its path.
func (s *Service) SaveUpload(data []byte, ext string) (string, error) {
	path := filepath.Join(s.dir, "lecture-"+uuid.New().String()+strings.ToLower(ext))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	return path, nil
}

// Normalize converts a saved recording into a mono 16-bit wav at the
// configured sample rate, next to the source file. Returns the wav path and
// the audio length in seconds.
func (s *Service) Normalize(ctx context.Context, srcPath string) (string, float64, error) {
	pcm, err := s.dec.DecodePCM(ctx, srcPath)
	if err != nil {
		return "", 0, err
	}
	if len(pcm) == 0 {
		return "", 0, errors.New("no decodable audio stream in upload")
	}

	// distinct name so a wav upload is never overwritten by its converted copy
	wavPath := strings.TrimSuffix(srcPath, filepath.Ext(srcPath)) + "-16k.wav"
	if err := WriteWAV(wavPath, pcm, s.sampleRate); err != nil {
		_ = os.Remove(wavPath)
		return "", 0, err
	}

	return wavPath, float64(len(pcm)) / 2 / float64(s.sampleRate), nil
}
