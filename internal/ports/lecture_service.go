package ports

import (
	"context"

	"github.com/Vovarama1992/lecture_notes/internal/models"
)

type LectureService interface {
	Upload(ctx context.Context, fileName, contentType string, data []byte) (models.SessionView, error)
	Process(ctx context.Context, sessionID string) (models.SessionView, error)
	Quiz(ctx context.Context, sessionID string) (models.SessionView, error)
	Flashcards(ctx context.Context, sessionID string) (models.SessionView, error)
	View(sessionID string) (models.SessionView, error)
	Audio(sessionID string) (path string, contentType string, err error)
}
