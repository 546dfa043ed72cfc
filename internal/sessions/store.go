package sessions

import (
	"log"
	"os"
	"time"

	"github.com/Vovarama1992/lecture_notes/internal/models"
	"github.com/patrickmn/go-cache"
)

// Store keeps live sessions in memory with a TTL. Nothing survives a restart
// on purpose: a forgotten session expires and its temp files go with it.
type Store struct {
	c *cache.Cache
}

func NewStore(ttl, cleanup time.Duration) *Store {
	c := cache.New(ttl, cleanup)
	c.OnEvicted(func(id string, v interface{}) {
		s, ok := v.(*models.Session)
		if !ok {
			return
		}
		removeTempFiles(s)
		log.Printf("[sessions] dropped %s", id)
	})

	return &Store{c: c}
}

// Put stores the session and refreshes its TTL.
func (s *Store) Put(sess *models.Session) {
	s.c.Set(sess.ID, sess, cache.DefaultExpiration)
}

func (s *Store) Get(id string) (*models.Session, bool) {
	v, ok := s.c.Get(id)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*models.Session)
	return sess, ok
}

func (s *Store) Delete(id string) {
	s.c.Delete(id)
}

func (s *Store) Len() int {
	return s.c.ItemCount()
}

func removeTempFiles(s *models.Session) {
	for _, p := range s.TempFiles() {
		if p == "" {
			continue
		}
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			log.Printf("[sessions] remove temp %s: %v", p, err)
		}
	}
}
