package ports

import "github.com/Vovarama1992/lecture_notes/internal/models"

type SessionStore interface {
	Put(s *models.Session)
	Get(id string) (*models.Session, bool)
}
