package models

// SessionView is what the page re-derives its state from. One shape for
// every handler so a reload shows exactly what the last interaction left.
type SessionView struct {
	SessionID   string  `json:"session_id"`
	Stage       Stage   `json:"stage"`
	FileName    string  `json:"file_name"`
	DurationSec float64 `json:"duration_sec,omitempty"`
	AudioURL    string  `json:"audio_url"`

	Transcript string `json:"transcript,omitempty"`
	Summary    string `json:"summary,omitempty"`
	Quiz       string `json:"quiz,omitempty"`
	Flashcards string `json:"flashcards,omitempty"`

	// SummarySkipped is set when the transcript was too short to summarize,
	// so the page can show the notice without treating it as an error.
	SummarySkipped bool `json:"summary_skipped,omitempty"`
}

// View snapshots the session. Callers hold the session lock.
func (s *Session) View() SessionView {
	return SessionView{
		SessionID:      s.ID,
		Stage:          s.Stage,
		FileName:       s.FileName,
		DurationSec:    s.DurationSec,
		AudioURL:       "/api/lectures/" + s.ID + "/audio",
		Transcript:     s.Transcript,
		Summary:        s.Summary,
		Quiz:           s.Quiz,
		Flashcards:     s.Flashcards,
		SummarySkipped: s.Stage == StageTranscribed && s.Transcript != "",
	}
}
