package models

import (
	"sync"
	"time"
)

type Stage string

const (
	StageUploaded    Stage = "uploaded"
	StageTranscribed Stage = "transcribed"
	StageSummarized  Stage = "summarized"
)

// Session is the per-upload state the server keeps between interactions.
// Everything here is transient: the store expires sessions and removes the
// temp files; nothing touches a database.
type Session struct {
	sync.Mutex

	ID          string
	FileName    string
	Ext         string // declared extension: wav | mp3 | m4a
	ContentType string

	UploadPath string // raw upload, kept for playback
	WavPath    string // normalized mono 16k wav

	DurationSec float64

	Transcript string
	Summary    string
	Quiz       string
	Flashcards string

	Stage      Stage
	Processing bool // a pipeline run is in flight

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TempFiles returns every on-disk artifact the session owns.
func (s *Session) TempFiles() []string {
	var paths []string
	if s.UploadPath != "" {
		paths = append(paths, s.UploadPath)
	}
	if s.WavPath != "" {
		paths = append(paths, s.WavPath)
	}
	return paths
}
