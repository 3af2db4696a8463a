package submission

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h33n313/nazarsanji-omidhospital/model"
)

func TestService_CreateSubmission(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewService(repo)

	answers := map[string]interface{}{
		"q1":   model.AnswerPatient,
		"q4_1": model.ScaleExcellent,
		"q10":  "تشکر ویژه از بخش پرستاری.",
	}

	rec, err := svc.CreateSubmission(answers, "")
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, answers, rec.Answers)
	assert.NotEmpty(t, rec.ID)

	_, err = time.Parse(time.RFC3339, rec.Timestamp)
	assert.NoError(t, err, "默认时间戳应为 RFC3339 格式")

	assert.Equal(t, 1, repo.Count())
}

func TestService_CreateSubmission_UniqueIDs(t *testing.T) {
	svc := NewService(newTestRepo(t))

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		rec, err := svc.CreateSubmission(map[string]interface{}{"q1": model.AnswerYes}, "")
		require.NoError(t, err)
		assert.False(t, seen[rec.ID], "ID出现重复: %s", rec.ID)
		seen[rec.ID] = true
	}
}

func TestService_CreateSubmission_HonorsTimestamp(t *testing.T) {
	svc := NewService(newTestRepo(t))

	// 离线补交时客户端保留原始创建时间
	ts := "2025-03-15T08:30:00Z"
	rec, err := svc.CreateSubmission(map[string]interface{}{"q1": model.AnswerNo}, ts)
	require.NoError(t, err)
	assert.Equal(t, ts, rec.Timestamp)
}

func TestService_CreateSubmission_MissingAnswers(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewService(repo)

	rec, err := svc.CreateSubmission(nil, "")
	assert.ErrorIs(t, err, ErrMissingAnswers)
	assert.Nil(t, rec)

	rec, err = svc.CreateSubmission(map[string]interface{}{}, "")
	assert.ErrorIs(t, err, ErrMissingAnswers)
	assert.Nil(t, rec)

	// 被拒绝的提交不能触碰存储层
	assert.Equal(t, 0, repo.Count())
}

func TestService_ListSubmissions(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewService(repo)

	recs, err := svc.ListSubmissions()
	require.NoError(t, err)
	assert.Empty(t, recs)

	_, err = svc.CreateSubmission(map[string]interface{}{"q1": model.AnswerYes}, "")
	require.NoError(t, err)

	recs, err = svc.ListSubmissions()
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}
