package submission

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/h33n313/nazarsanji-omidhospital/config"
	"github.com/h33n313/nazarsanji-omidhospital/model"
	"github.com/h33n313/nazarsanji-omidhospital/utils"
)

var (
	submissionService Service
	submissionRepo    Repository
)

// InitService 初始化答卷服务
func InitService() {
	submissionRepo = NewRepository(config.StorePath)
	submissionService = NewService(submissionRepo)
}

// Default 返回答卷服务单例，供 analytics 等模块复用
func Default() Service {
	return submissionService
}

// DefaultRepository 返回存储单例，供备份任务使用
func DefaultRepository() Repository {
	return submissionRepo
}

// GetSubmissionsHandler 获取全部答卷
func GetSubmissionsHandler(c *gin.Context) {
	recs, err := submissionService.ListSubmissions()
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "获取答卷列表失败", err)
		return
	}

	c.JSON(http.StatusOK, recs)
}

// SubmitSubmissionHandler 提交答卷
func SubmitSubmissionHandler(c *gin.Context) {
	var req model.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "无效的答卷数据", err)
		return
	}

	rec, err := submissionService.CreateSubmission(req.Answers, req.Timestamp)
	if err != nil {
		if err == ErrMissingAnswers {
			utils.SendError(c, http.StatusBadRequest, "缺少答卷内容", nil)
		} else {
			utils.SendError(c, http.StatusInternalServerError, "保存答卷失败", err)
		}
		return
	}

	c.JSON(http.StatusCreated, rec)
}
