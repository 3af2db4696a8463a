package schema

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSchemaHandler 下发问卷定义
func GetSchemaHandler(c *gin.Context) {
	c.JSON(http.StatusOK, SurveyData)
}
