package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	errCodeBadRequest   = "BAD_REQUEST"
	errCodeUnauthorized = "AUTH_UNAUTHORIZED"
	errCodeNotFound     = "NOT_FOUND"
	errCodeSuperseded   = "DASHBOARD_SUPERSEDED"
	errCodeDataSource   = "DATA_SOURCE_ERROR"
	errCodeInternal     = "INTERNAL_ERROR"
)

type errorResponse struct {
	OK        bool   `json:"ok"`
	Error     string `json:"error"`
	ErrorCode string `json:"error_code"`
}

func writeError(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, errorResponse{
		OK:        false,
		Error:     msg,
		ErrorCode: code,
	})
}

// writeOK 回傳 {ok:true, ...payload}。
func writeOK(c *gin.Context, payload gin.H) {
	body := gin.H{"ok": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}
