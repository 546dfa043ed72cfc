package domain

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Vovarama1992/lecture_notes/internal/media"
	"github.com/Vovarama1992/lecture_notes/internal/models"
	"github.com/Vovarama1992/lecture_notes/internal/notes"
	"github.com/Vovarama1992/lecture_notes/internal/ports"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrSessionBusy       = errors.New("processing already in progress")
	ErrUnsupportedFormat = errors.New("unsupported audio format: use wav, mp3 or m4a")
	ErrEmptyUpload       = errors.New("empty audio upload")
	ErrNoNotes           = errors.New("no study notes yet: process the lecture first")
)

type lectureService struct {
	media  ports.MediaService
	stt    ports.Transcriber
	notes  ports.Summarizer
	store  ports.SessionStore
	events ports.ProgressSink
}

func NewLectureService(
	mediaSvc ports.MediaService,
	transcriber ports.Transcriber,
	summarizer ports.Summarizer,
	store ports.SessionStore,
	events ports.ProgressSink,
) ports.LectureService {
	return &lectureService{
		media:  mediaSvc,
		stt:    transcriber,
		notes:  summarizer,
		store:  store,
		events: events,
	}
}

// Upload validates the recording, parks it on disk and opens a new session.
func (s *lectureService) Upload(ctx context.Context, fileName, contentType string, data []byte) (models.SessionView, error) {
	if len(data) == 0 {
		return models.SessionView{}, ErrEmptyUpload
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	if !media.AllowedExt(ext) {
		return models.SessionView{}, ErrUnsupportedFormat
	}

	path, err := s.media.SaveUpload(data, ext)
	if err != nil {
		return models.SessionView{}, fmt.Errorf("save upload: %w", err)
	}

	// container metadata only. Normalize later replaces this with the
	// decoded length, which is what the recognizer actually saw.
	dur, err := s.media.ProbeDuration(ctx, path)
	if err != nil {
		log.Printf("[lecture] probe duration: %v", err)
		dur = 0
	}

	// browsers usually send the right type; fall back to the extension
	// when they don't bother
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = media.ContentTypeForExt(ext)
	}

	now := time.Now()
	sess := &models.Session{
		ID:          uuid.New().String(),
		FileName:    fileName,
		Ext:         ext,
		ContentType: contentType,
		UploadPath:  path,
		DurationSec: dur,
		Stage:       models.StageUploaded,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.store.Put(sess)

	log.Printf("[lecture] new session %s file=%s size=%d", sess.ID, fileName, len(data))

	sess.Lock()
	defer sess.Unlock()
	return sess.View(), nil
}

// Process runs the whole pipeline for one session: convert, transcribe and,
// when the transcript is long enough, summarize. The call is synchronous;
// stage events go out over the progress sink while it runs.
func (s *lectureService) Process(ctx context.Context, sessionID string) (models.SessionView, error) {
	sess, ok := s.store.Get(sessionID)
	if !ok {
		return models.SessionView{}, ErrSessionNotFound
	}

	sess.Lock()
	if sess.Processing {
		sess.Unlock()
		return models.SessionView{}, ErrSessionBusy
	}
	done := sess.Stage == models.StageSummarized ||
		(sess.Stage == models.StageTranscribed && !notes.LongEnough(sess.Transcript))
	if done {
		// nothing left to run: hand back what we have
		defer sess.Unlock()
		return sess.View(), nil
	}
	sess.Processing = true
	fromUpload := sess.Stage == models.StageUploaded
	uploadPath := sess.UploadPath
	transcript := sess.Transcript
	sess.Unlock()

	defer func() {
		sess.Lock()
		sess.Processing = false
		sess.Unlock()
	}()

	if fromUpload {
		s.events.Publish(sessionID, "converting")
		wavPath, durationSec, err := s.media.Normalize(ctx, uploadPath)
		if err != nil {
			s.events.Publish(sessionID, "error")
			return models.SessionView{}, fmt.Errorf("convert audio: %w", err)
		}

		sess.Lock()
		sess.WavPath = wavPath
		sess.DurationSec = durationSec
		sess.UpdatedAt = time.Now()
		sess.Unlock()
		s.store.Put(sess)

		s.events.Publish(sessionID, "transcribing")
		transcript, err = s.stt.Transcribe(ctx, wavPath)
		if err != nil {
			s.events.Publish(sessionID, "error")
			return models.SessionView{}, fmt.Errorf("transcribe: %w", err)
		}

		sess.Lock()
		sess.Transcript = transcript
		sess.Stage = models.StageTranscribed
		sess.UpdatedAt = time.Now()
		sess.Unlock()
		s.store.Put(sess)
	}

	// a transcribed session reaches this point again only when its earlier
	// summarize attempt failed
	if notes.LongEnough(transcript) {
		s.events.Publish(sessionID, "summarizing")
		summary, err := s.notes.Summarize(ctx, transcript)
		if err != nil {
			s.events.Publish(sessionID, "error")
			return models.SessionView{}, fmt.Errorf("summarize: %w", err)
		}

		sess.Lock()
		sess.Summary = summary
		sess.Stage = models.StageSummarized
		sess.UpdatedAt = time.Now()
		sess.Unlock()
		s.store.Put(sess)
	} else {
		log.Printf("[lecture] session %s transcript too short, skipping notes", sessionID)
	}

	s.events.Publish(sessionID, "done")

	sess.Lock()
	defer sess.Unlock()
	return sess.View(), nil
}

// Quiz renders quiz questions from the study notes.
func (s *lectureService) Quiz(ctx context.Context, sessionID string) (models.SessionView, error) {
	return s.renderFromNotes(sessionID, func(sess *models.Session) {
		sess.Quiz = notes.RenderQuiz(sess.Summary)
	})
}

// Flashcards renders flashcards from the study notes.
func (s *lectureService) Flashcards(ctx context.Context, sessionID string) (models.SessionView, error) {
	return s.renderFromNotes(sessionID, func(sess *models.Session) {
		sess.Flashcards = notes.RenderFlashcards(sess.Summary)
	})
}

func (s *lectureService) renderFromNotes(sessionID string, apply func(*models.Session)) (models.SessionView, error) {
	sess, ok := s.store.Get(sessionID)
	if !ok {
		return models.SessionView{}, ErrSessionNotFound
	}

	sess.Lock()
	defer sess.Unlock()

	if sess.Summary == "" {
		return models.SessionView{}, ErrNoNotes
	}

	apply(sess)
	sess.UpdatedAt = time.Now()
	view := sess.View()

	s.store.Put(sess)
	return view, nil
}

func (s *lectureService) View(sessionID string) (models.SessionView, error) {
	sess, ok := s.store.Get(sessionID)
	if !ok {
		return models.SessionView{}, ErrSessionNotFound
	}

	sess.Lock()
	defer sess.Unlock()
	return sess.View(), nil
}

// Audio reports where the original upload lives and its mime type, for the
// playback endpoint.
func (s *lectureService) Audio(sessionID string) (string, string, error) {
	sess, ok := s.store.Get(sessionID)
	if !ok {
		return "", "", ErrSessionNotFound
	}

	sess.Lock()
	defer sess.Unlock()
	return sess.UploadPath, sess.ContentType, nil
}
