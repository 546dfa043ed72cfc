package delivery

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"

	"github.com/Vovarama1992/lecture_notes/internal/domain"
	"github.com/Vovarama1992/lecture_notes/internal/ports"
)

type LectureHandler struct {
	svc ports.LectureService
	log *logger.ZapLogger
}

func NewLectureHandler(svc ports.LectureService, log *logger.ZapLogger) *LectureHandler {
	return &LectureHandler{
		svc: svc,
		log: log,
	}
}

// POST /api/lectures
func (h *LectureHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(200 << 20); err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "invalid multipart", Error: err})
		http.Error(w, "invalid multipart: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "missing file", Error: err})
		http.Error(w, "missing file: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "read upload: "+err.Error(), http.StatusBadRequest)
		return
	}

	view, err := h.svc.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		h.writeError(w, "upload failed", err)
		return
	}

	writeJSON(w, view)
}

// GET /api/lectures/{session_id}
func (h *LectureHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.View(chi.URLParam(r, "session_id"))
	if err != nil {
		h.writeError(w, "lookup failed", err)
		return
	}

	writeJSON(w, view)
}

// POST /api/lectures/{session_id}/process
func (h *LectureHandler) Process(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Process(r.Context(), chi.URLParam(r, "session_id"))
	if err != nil {
		h.writeError(w, "processing failed", err)
		return
	}

	writeJSON(w, view)
}

// POST /api/lectures/{session_id}/quiz
func (h *LectureHandler) Quiz(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Quiz(r.Context(), chi.URLParam(r, "session_id"))
	if err != nil {
		h.writeError(w, "quiz failed", err)
		return
	}

	writeJSON(w, view)
}

// POST /api/lectures/{session_id}/flashcards
func (h *LectureHandler) Flashcards(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Flashcards(r.Context(), chi.URLParam(r, "session_id"))
	if err != nil {
		h.writeError(w, "flashcards failed", err)
		return
	}

	writeJSON(w, view)
}

// GET /api/lectures/{session_id}/audio
func (h *LectureHandler) Audio(w http.ResponseWriter, r *http.Request) {
	path, contentType, err := h.svc.Audio(chi.URLParam(r, "session_id"))
	if err != nil {
		h.writeError(w, "audio lookup failed", err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	http.ServeFile(w, r, path)
}

func (h *LectureHandler) writeError(w http.ResponseWriter, msg string, err error) {
	status := http.StatusInternalServerError
	switch err {
	case domain.ErrSessionNotFound:
		status = http.StatusNotFound
	case domain.ErrSessionBusy, domain.ErrNoNotes:
		status = http.StatusConflict
	case domain.ErrUnsupportedFormat, domain.ErrEmptyUpload:
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		h.log.Log(logger.LogEntry{Level: "error", Message: msg, Error: err})
	}

	http.Error(w, msg+": "+err.Error(), status)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
