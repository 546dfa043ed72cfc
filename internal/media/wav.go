package media

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteWAV stores raw little-endian 16-bit mono samples as a wav file at path.
func WriteWAV(path string, pcm []byte, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create wav: %w", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	buf := &goaudio.IntBuffer{
		Data:   pcmToInts(pcm),
		Format: &goaudio.Format{SampleRate: sampleRate, NumChannels: 1},
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}

	return enc.Close()
}

// WAVDuration reads the header of a wav file and estimates its length in
// seconds from the file size. Used as a sanity check on files the converter
// produced.
func WAVDuration(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	dec.ReadInfo()
	if !dec.IsValidFile() {
		return 0, errors.New("invalid wav file")
	}
	if dec.BitDepth != 16 {
		return 0, fmt.Errorf("unsupported bit depth: %d", dec.BitDepth)
	}

	info, err := f.Stat()
	if err != nil {
		return 0, err
	}

	bytesPerSample := int64(dec.BitDepth / 8)
	totalSamples := info.Size() / bytesPerSample / int64(dec.NumChans)

	return float64(totalSamples) / float64(dec.SampleRate), nil
}

func pcmToInts(pcm []byte) []int {
	var samples []int
	buf := bytes.NewBuffer(pcm)

	for {
		var s int16
		if err := binary.Read(buf, binary.LittleEndian, &s); err != nil {
			break
		}
		samples = append(samples, int(s))
	}

	return samples
}
