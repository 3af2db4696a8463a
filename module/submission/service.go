package submission

import (
	"errors"
	"time"

	"github.com/h33n313/nazarsanji-omidhospital/model"
	"github.com/h33n313/nazarsanji-omidhospital/utils"
)

var (
	ErrMissingAnswers = errors.New("缺少答卷内容")
)

// Service 定义答卷业务接口
type Service interface {
	// 返回全部答卷，不过滤不排序（排序由展示层负责）
	ListSubmissions() ([]model.Submission, error)

	// 创建一条答卷；timestamp 为空时取当前时间
	CreateSubmission(answers map[string]interface{}, timestamp string) (*model.Submission, error)
}

type serviceImpl struct {
	repo Repository
}

// NewService 创建 Service 实例
func NewService(repo Repository) Service {
	return &serviceImpl{repo: repo}
}

// ListSubmissions 返回全部答卷
func (s *serviceImpl) ListSubmissions() ([]model.Submission, error) {
	return s.repo.Load(), nil
}

// CreateSubmission 创建一条答卷
// answers 为空直接拒绝，不触碰存储层
func (s *serviceImpl) CreateSubmission(answers map[string]interface{}, timestamp string) (*model.Submission, error) {
	if len(answers) == 0 {
		return nil, ErrMissingAnswers
	}

	if timestamp == "" {
		timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	rec := &model.Submission{
		ID:        utils.GenerateSubmissionID(),
		Timestamp: timestamp,
		Answers:   answers,
	}
	if err := s.repo.Append(rec); err != nil {
		return nil, err
	}
	return rec, nil
}
