package analytics

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/h33n313/nazarsanji-omidhospital/model"
	"github.com/h33n313/nazarsanji-omidhospital/module/submission"
	"github.com/h33n313/nazarsanji-omidhospital/utils"
)

var submissionService submission.Service

// InitService 初始化统计模块
func InitService(svc submission.Service) {
	submissionService = svc
}

// GetOverviewHandler 概览：答卷总数、今日新增、最近一次提交时间
func GetOverviewHandler(c *gin.Context) {
	recs, err := submissionService.ListSubmissions()
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "获取总览失败", err)
		return
	}

	todayStart := time.Now().Truncate(24 * time.Hour)
	todayCount := 0
	lastSubmit := ""
	for _, rec := range recs {
		ts, err := time.Parse(time.RFC3339, rec.Timestamp)
		if err != nil {
			continue
		}
		if !ts.Before(todayStart) {
			todayCount++
		}
		if rec.Timestamp > lastSubmit {
			lastSubmit = rec.Timestamp
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"totalSubmits":   len(recs),
		"todaySubmits":   todayCount,
		"lastSubmitTime": lastSubmit,
	})
}

// GetSubmitTrendHandler 提交趋势：按天聚合最近 days 天（默认30，上限90）
func GetSubmitTrendHandler(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days <= 0 {
		utils.SendError(c, http.StatusBadRequest, "无效的天数参数", err)
		return
	}
	if days > 90 {
		days = 90
	}

	recs, err := submissionService.ListSubmissions()
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "获取趋势失败", err)
		return
	}

	counts := map[string]int{}
	start := time.Now().AddDate(0, 0, -(days - 1)).Truncate(24 * time.Hour)
	for _, rec := range recs {
		ts, err := time.Parse(time.RFC3339, rec.Timestamp)
		if err != nil {
			continue
		}
		if ts.Before(start) {
			continue
		}
		counts[ts.Format("2006-01-02")]++
	}

	// 填充缺失日期，保证点位连续
	type point struct {
		Date  string `json:"date"`
		Count int    `json:"count"`
	}
	points := make([]point, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i).Format("2006-01-02")
		points = append(points, point{Date: day, Count: counts[day]})
	}

	c.JSON(http.StatusOK, points)
}

// GetRecentSubmissionsHandler 最近提交的答卷，按时间倒序（默认10条）
// 仪表盘的新答卷轮询消费该接口
func GetRecentSubmissionsHandler(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		utils.SendError(c, http.StatusBadRequest, "无效的条数参数", err)
		return
	}

	recs, err := submissionService.ListSubmissions()
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "获取最近提交记录失败", err)
		return
	}

	sorted := make([]model.Submission, len(recs))
	copy(sorted, recs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Timestamp > sorted[j].Timestamp
	})

	if limit > len(sorted) {
		limit = len(sorted)
	}
	c.JSON(http.StatusOK, sorted[:limit])
}
