package delivery

import (
	"encoding/json"
	"net/http"
	"strings"
)

type FeedbackHandler struct{}

func NewFeedbackHandler() *FeedbackHandler {
	return &FeedbackHandler{}
}

// POST /api/feedback
//
// Feedback is acknowledged and dropped. Nothing is written anywhere, so the
// body never leaves this function.
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		http.Error(w, "Please enter feedback before submitting.", http.StatusBadRequest)
		return
	}

	writeJSON(w, map[string]any{"message": "Thank you for your feedback! 🎉"})
}
