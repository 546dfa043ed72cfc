package media

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDecoder struct {
	pcm []byte
	err error
}

func (d *stubDecoder) DecodePCM(ctx context.Context, path string) ([]byte, error) {
	return d.pcm, d.err
}

func TestAllowedExt(t *testing.T) {
	tests := []struct {
		ext  string
		want bool
	}{
		{".wav", true},
		{".mp3", true},
		{".m4a", true},
		{".MP3", true},
		{".ogg", false},
		{".txt", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := AllowedExt(tt.ext); got != tt.want {
			t.Errorf("AllowedExt(%q) = %v, want %v", tt.ext, got, tt.want)
		}
	}
}

func TestContentTypeForExt(t *testing.T) {
	assert.Equal(t, "audio/wav", ContentTypeForExt(".wav"))
	assert.Equal(t, "audio/mpeg", ContentTypeForExt(".mp3"))
	assert.Equal(t, "audio/mp4", ContentTypeForExt(".M4A"))
	assert.Equal(t, "application/octet-stream", ContentTypeForExt(".ogg"))
}

func TestSaveUpload(t *testing.T) {
	svc := NewService(&stubDecoder{}, t.TempDir(), 16000)

	path, err := svc.SaveUpload([]byte("fake-mp3-bytes"), ".MP3")
	require.NoError(t, err)
	assert.Equal(t, ".mp3", filepath.Ext(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("fake-mp3-bytes"), data)
}

func TestNormalize(t *testing.T) {
	dir := t.TempDir()
	pcm := make([]byte, 32000) // one second at 16 kHz, 16-bit mono
	svc := NewService(&stubDecoder{pcm: pcm}, dir, 16000)

	src := filepath.Join(dir, "talk.mp3")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0o644))

	wavPath, dur, err := svc.Normalize(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "talk-16k.wav"), wavPath)
	assert.InDelta(t, 1.0, dur, 0.001)

	sec, err := WAVDuration(wavPath)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sec, 0.01)
}

func TestNormalizeKeepsWavUpload(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(&stubDecoder{pcm: make([]byte, 3200)}, dir, 16000)

	src := filepath.Join(dir, "talk.wav")
	require.NoError(t, os.WriteFile(src, []byte("original"), 0o644))

	wavPath, _, err := svc.Normalize(context.Background(), src)
	require.NoError(t, err)
	assert.NotEqual(t, src, wavPath)

	data, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), data, "upload must survive conversion")
}

func TestNormalizeDecoderError(t *testing.T) {
	svc := NewService(&stubDecoder{err: errors.New("boom")}, t.TempDir(), 16000)

	_, _, err := svc.Normalize(context.Background(), "whatever.mp3")
	assert.Error(t, err)
}

func TestNormalizeEmptyStream(t *testing.T) {
	svc := NewService(&stubDecoder{}, t.TempDir(), 16000)

	_, _, err := svc.Normalize(context.Background(), "silent.mp3")
	assert.ErrorContains(t, err, "no decodable audio")
}
