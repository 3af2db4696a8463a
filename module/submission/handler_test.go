package submission

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h33n313/nazarsanji-omidhospital/config"
	"github.com/h33n313/nazarsanji-omidhospital/model"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.StorePath = filepath.Join(t.TempDir(), "db.json")
	InitService()

	router := gin.New()
	router.GET("/api/surveys", GetSubmissionsHandler)
	router.POST("/api/surveys", SubmitSubmissionHandler)
	return router
}

func TestGetSubmissionsHandler_Empty(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/surveys", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var recs []model.Submission
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recs))
	assert.Empty(t, recs)
}

func TestSubmitSubmissionHandler(t *testing.T) {
	router := newTestRouter(t)

	body := `{"answers":{"q1":"بیمار","q4_1":"عالی"}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/surveys", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var rec model.Submission
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "بیمار", rec.Answers["q1"])

	// 提交后立即可读
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/surveys", nil)
	router.ServeHTTP(w, req)

	var recs []model.Submission
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recs))
	require.Len(t, recs, 1)
	assert.Equal(t, rec.ID, recs[0].ID)
}

func TestSubmitSubmissionHandler_HonorsTimestamp(t *testing.T) {
	router := newTestRouter(t)

	body := `{"answers":{"q1":"همراه"},"timestamp":"2025-03-15T08:30:00Z"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/surveys", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var rec model.Submission
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, "2025-03-15T08:30:00Z", rec.Timestamp)
}

func TestSubmitSubmissionHandler_MissingAnswers(t *testing.T) {
	router := newTestRouter(t)

	for _, body := range []string{`{}`, `{"answers":{}}`, `{"answers":null}`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/surveys", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "请求体: %s", body)
	}

	// 被拒绝的提交不产生任何记录
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/surveys", nil)
	router.ServeHTTP(w, req)

	var recs []model.Submission
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recs))
	assert.Empty(t, recs)
}

func TestSubmitSubmissionHandler_InvalidJSON(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/surveys", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
