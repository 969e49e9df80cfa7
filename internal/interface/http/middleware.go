package httpapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxUserID    = "userID"
	ctxRequestID = "requestID"
	headerReqID  = "X-Request-ID"
	// localUserID 為關閉驗證時所有請求共用的呼叫者。
	localUserID = "local"
)

func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.authDisabled {
			c.Set(ctxUserID, localUserID)
			c.Next()
			return
		}

		token := parseBearer(c.GetHeader("Authorization"))
		if token == "" {
			if t, err := c.Cookie("access_token"); err == nil {
				token = t
			}
		}
		if token == "" {
			writeError(c, http.StatusUnauthorized, errCodeUnauthorized, "unauthorized")
			return
		}

		claims, err := s.tokens.ParseAccessToken(token)
		if err != nil {
			writeError(c, http.StatusUnauthorized, errCodeUnauthorized, "invalid token")
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Next()
	}
}

func parseBearer(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerReqID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxRequestID, id)
		c.Header(headerReqID, id)
		c.Next()
	}
}

func (s *Server) ginLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		s.metrics.IncRequest(route, strconv.Itoa(status))

		attrs := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency", time.Since(start),
			"request_id", c.GetString(ctxRequestID),
		}
		if status >= http.StatusInternalServerError {
			s.logger.ErrorContext(c.Request.Context(), "http request", attrs...)
			return
		}
		s.logger.InfoContext(c.Request.Context(), "http request", attrs...)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
