package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/insights-dashboard/middleware"
)

// GetSession trả lại danh tính để trang dựng lại session sau mỗi lần tải.
func GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.SessionFrom(c).Snapshot())
}
