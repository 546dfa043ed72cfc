package media

import (
	"context"
	"fmt"
	"io"
	"log"
	"os/exec"
	"strconv"
	"time"
)

type FFmpegDecoder struct {
	bin        string
	sampleRate int
}

func NewFFmpegDecoder(bin string, sampleRate int) *FFmpegDecoder {
	if bin == "" {
		bin = "ffmpeg"
	}
	return &FFmpegDecoder{bin: bin, sampleRate: sampleRate}
}

// DecodePCM strips any container or codec and yields raw little-endian
// 16-bit mono samples at the configured rate.
func (d *FFmpegDecoder) DecodePCM(ctx context.Context, path string) ([]byte, error) {
	start := time.Now()

	cmd := exec.CommandContext(
		ctx,
		d.bin,
		"-loglevel", "error",
		"-i", path,
		"-vn",
		"-ac", "1",
		"-ar", strconv.Itoa(d.sampleRate),
		"-f", "s16le",
		"pipe:1",
	)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("[media] stdout pipe: %w", err)
	}

	stderr, _ := cmd.StderrPipe()
	go func() {
		b, _ := io.ReadAll(stderr)
		if len(b) > 0 {
			log.Printf("[media][stderr] %s", string(b))
		}
	}()

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("[media] ffmpeg start: %w", err)
	}

	var pcm []byte
	buf := make([]byte, 4096)

	for {
		n, err := stdout.Read(buf)
		if n > 0 {
			pcm = append(pcm, buf[:n]...)
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			_ = cmd.Process.Kill()
			return nil, fmt.Errorf("[media] read pcm: %w", err)
		}
	}

	if err := cmd.Wait(); err != nil {
		return nil, fmt.Errorf("[media] ffmpeg decode: %w", err)
	}

	log.Printf(
		"[media] decoded bytes=%d approx_sec=%.1f dur=%s",
		len(pcm),
		float64(len(pcm))/2/float64(d.sampleRate),
		time.Since(start),
	)

	return pcm, nil
}
