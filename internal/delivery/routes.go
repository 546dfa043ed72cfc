package delivery

import (
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/Vovarama1992/lecture_notes/internal/delivery/ws"
	"github.com/Vovarama1992/lecture_notes/web"
)

func RegisterRoutes(
	r chi.Router,
	hLecture *LectureHandler,
	hFeedback *FeedbackHandler,
	hub *ws.Hub,
) {
	// --- api ---
	r.Route("/api", func(pr chi.Router) {
		pr.Use(
			httputil.RecoverMiddleware,
			httprate.LimitByIP(60, time.Minute),
		)

		pr.Post("/lectures", hLecture.Upload)
		pr.Get("/lectures/{session_id}", hLecture.Get)
		pr.Post("/lectures/{session_id}/process", hLecture.Process)
		pr.Post("/lectures/{session_id}/quiz", hLecture.Quiz)
		pr.Post("/lectures/{session_id}/flashcards", hLecture.Flashcards)
		pr.Get("/lectures/{session_id}/audio", hLecture.Audio)

		pr.Post("/feedback", hFeedback.Submit)
	})

	// --- progress events ---
	r.With(httputil.RecoverMiddleware).Get("/ws", ws.Handler(hub))

	// --- frontend ---
	r.With(httputil.RecoverMiddleware).
		Handle("/*", http.FileServer(http.FS(web.StaticFS)))
}
