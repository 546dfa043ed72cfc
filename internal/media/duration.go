package media

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ProbeDuration asks ffprobe for the container duration of an upload.
// Much cheaper than a decode, so the upload response can already carry a
// duration before the pipeline has run.
func (s *Service) ProbeDuration(ctx context.Context, path string) (float64, error) {
	out, err := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	).Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe: %w", err)
	}

	return strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
}
