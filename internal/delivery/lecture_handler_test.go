package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Vovarama1992/lecture_notes/internal/delivery/ws"
	"github.com/Vovarama1992/lecture_notes/internal/domain"
	"github.com/Vovarama1992/lecture_notes/internal/models"
)

type stubService struct {
	view models.SessionView
	err  error

	audioPath string
	audioType string
	audioErr  error

	gotFileName    string
	gotContentType string
	gotData        []byte
	gotSessionID   string
}

func (s *stubService) Upload(_ context.Context, fileName, contentType string, data []byte) (models.SessionView, error) {
	s.gotFileName = fileName
	s.gotContentType = contentType
	s.gotData = data
	return s.view, s.err
}

func (s *stubService) Process(_ context.Context, sessionID string) (models.SessionView, error) {
	s.gotSessionID = sessionID
	return s.view, s.err
}

func (s *stubService) Quiz(_ context.Context, sessionID string) (models.SessionView, error) {
	s.gotSessionID = sessionID
	return s.view, s.err
}

func (s *stubService) Flashcards(_ context.Context, sessionID string) (models.SessionView, error) {
	s.gotSessionID = sessionID
	return s.view, s.err
}

func (s *stubService) View(sessionID string) (models.SessionView, error) {
	s.gotSessionID = sessionID
	return s.view, s.err
}

func (s *stubService) Audio(sessionID string) (string, string, error) {
	s.gotSessionID = sessionID
	return s.audioPath, s.audioType, s.audioErr
}

func newTestRouter(svc *stubService) chi.Router {
	zl := logger.NewZapLogger(zap.NewNop().Sugar())

	r := chi.NewRouter()
	RegisterRoutes(r, NewLectureHandler(svc, zl), NewFeedbackHandler(), ws.NewHub())
	return r
}

func uploadRequest(t *testing.T, fileName, contentType string, data []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	ph := make(textproto.MIMEHeader)
	ph.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
	ph.Set("Content-Type", contentType)

	fw, err := mw.CreatePart(ph)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/lectures", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadEndpoint(t *testing.T) {
	svc := &stubService{view: models.SessionView{SessionID: "s-1", Stage: models.StageUploaded}}
	router := newTestRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, "lecture.mp3", "audio/mpeg", []byte("ID3 fake mp3")))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "lecture.mp3", svc.gotFileName)
	assert.Equal(t, "audio/mpeg", svc.gotContentType)
	assert.Equal(t, []byte("ID3 fake mp3"), svc.gotData)

	var view models.SessionView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	assert.Equal(t, "s-1", view.SessionID)
	assert.Equal(t, models.StageUploaded, view.Stage)
}

func TestUploadEndpointMissingFile(t *testing.T) {
	router := newTestRouter(&stubService{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("other", "value"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/lectures", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing file")
}

func TestUploadEndpointErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"unsupported format", domain.ErrUnsupportedFormat, http.StatusBadRequest},
		{"empty upload", domain.ErrEmptyUpload, http.StatusBadRequest},
		{"internal failure", errors.New("disk full"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&stubService{err: tt.err})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, uploadRequest(t, "a.mp3", "audio/mpeg", []byte("x")))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.err.Error())
		})
	}
}

func TestGetSessionEndpoint(t *testing.T) {
	svc := &stubService{view: models.SessionView{
		SessionID: "s-2",
		Stage:     models.StageSummarized,
		Summary:   "short notes",
	}}
	router := newTestRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/lectures/s-2", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "s-2", svc.gotSessionID)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var view models.SessionView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	assert.Equal(t, "short notes", view.Summary)
}

func TestGetSessionEndpointNotFound(t *testing.T) {
	router := newTestRouter(&stubService{err: domain.ErrSessionNotFound})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/lectures/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProcessEndpoint(t *testing.T) {
	svc := &stubService{view: models.SessionView{
		SessionID:  "s-3",
		Stage:      models.StageSummarized,
		Transcript: "full transcript",
		Summary:    "notes",
	}}
	router := newTestRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/lectures/s-3/process", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "s-3", svc.gotSessionID)

	var view models.SessionView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	assert.Equal(t, models.StageSummarized, view.Stage)
	assert.Equal(t, "notes", view.Summary)
}

func TestProcessEndpointBusy(t *testing.T) {
	router := newTestRouter(&stubService{err: domain.ErrSessionBusy})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/lectures/s-3/process", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestQuizEndpointWithoutNotes(t *testing.T) {
	router := newTestRouter(&stubService{err: domain.ErrNoNotes})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/lectures/s-4/quiz", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "no study notes yet")
}

func TestFlashcardsEndpoint(t *testing.T) {
	svc := &stubService{view: models.SessionView{SessionID: "s-5", Flashcards: "**Q1:** a...\n**A1:** a"}}
	router := newTestRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/lectures/s-5/flashcards", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "s-5", svc.gotSessionID)
}

func TestAudioEndpoint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lecture.mp3")
	require.NoError(t, os.WriteFile(path, []byte("mp3 bytes"), 0o644))

	svc := &stubService{audioPath: path, audioType: "audio/mpeg"}
	router := newTestRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/lectures/s-6/audio", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "audio/mpeg", rec.Header().Get("Content-Type"))
	assert.Equal(t, "mp3 bytes", rec.Body.String())
}

func TestAudioEndpointUnknownSession(t *testing.T) {
	router := newTestRouter(&stubService{audioErr: domain.ErrSessionNotFound})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/lectures/nope/audio", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStaticIndex(t *testing.T) {
	router := newTestRouter(&stubService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Lecture Voice-to-Notes Generator")
}
