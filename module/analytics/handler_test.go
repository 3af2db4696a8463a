package analytics

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h33n313/nazarsanji-omidhospital/model"
)

// 固定数据的答卷服务桩
type stubService struct {
	recs []model.Submission
}

func (s *stubService) ListSubmissions() ([]model.Submission, error) {
	return s.recs, nil
}

func (s *stubService) CreateSubmission(answers map[string]interface{}, timestamp string) (*model.Submission, error) {
	panic("统计模块不应写入")
}

func newAnalyticsRouter(recs []model.Submission) *gin.Engine {
	gin.SetMode(gin.TestMode)
	InitService(&stubService{recs: recs})

	router := gin.New()
	router.GET("/api/analytics/overview", GetOverviewHandler)
	router.GET("/api/analytics/submit-trend", GetSubmitTrendHandler)
	router.GET("/api/analytics/recent", GetRecentSubmissionsHandler)
	return router
}

func ts(daysAgo int) string {
	return time.Now().AddDate(0, 0, -daysAgo).UTC().Format(time.RFC3339)
}

func TestGetOverviewHandler(t *testing.T) {
	router := newAnalyticsRouter([]model.Submission{
		{ID: "a", Timestamp: ts(0), Answers: map[string]interface{}{"q1": model.AnswerYes}},
		{ID: "b", Timestamp: ts(2), Answers: map[string]interface{}{"q1": model.AnswerNo}},
		{ID: "c", Timestamp: ts(40), Answers: map[string]interface{}{"q1": model.AnswerYes}},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/analytics/overview", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		TotalSubmits   int    `json:"totalSubmits"`
		TodaySubmits   int    `json:"todaySubmits"`
		LastSubmitTime string `json:"lastSubmitTime"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.TotalSubmits)
	assert.NotEmpty(t, resp.LastSubmitTime)
}

func TestGetSubmitTrendHandler(t *testing.T) {
	router := newAnalyticsRouter([]model.Submission{
		{ID: "a", Timestamp: ts(0)},
		{ID: "b", Timestamp: ts(0)},
		{ID: "c", Timestamp: ts(3)},
		{ID: "d", Timestamp: ts(200)}, // 窗口之外，不计入
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/analytics/submit-trend?days=7", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var points []struct {
		Date  string `json:"date"`
		Count int    `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &points))
	require.Len(t, points, 7, "缺失日期必须补零")

	total := 0
	for _, p := range points {
		total += p.Count
	}
	assert.Equal(t, 3, total)
	assert.Equal(t, 2, points[len(points)-1].Count, "今天应有两条")
}

func TestGetSubmitTrendHandler_InvalidDays(t *testing.T) {
	router := newAnalyticsRouter(nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/analytics/submit-trend?days=abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRecentSubmissionsHandler(t *testing.T) {
	router := newAnalyticsRouter([]model.Submission{
		{ID: "old", Timestamp: "2025-01-01T00:00:00Z"},
		{ID: "newest", Timestamp: "2025-06-01T00:00:00Z"},
		{ID: "mid", Timestamp: "2025-03-01T00:00:00Z"},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/analytics/recent?limit=2", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var recs []model.Submission
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recs))
	require.Len(t, recs, 2)
	assert.Equal(t, "newest", recs[0].ID)
	assert.Equal(t, "mid", recs[1].ID)
}
