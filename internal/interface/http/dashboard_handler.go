package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"life-dashboard/internal/application/dashboard"
	"life-dashboard/internal/domain/timewindow"
)

func selectorOf(c *gin.Context) timewindow.Selector {
	return timewindow.ParseSelector(c.DefaultQuery("range", string(timewindow.Today)))
}

// handleDashboard 以呼叫者為單位載入；同一呼叫者較舊的請求會收到 409。
func (s *Server) handleDashboard(c *gin.Context) {
	d, err := s.loaders.For(userKey(c)).Load(c.Request.Context(), selectorOf(c))
	if err != nil {
		s.writeBuildError(c, err)
		return
	}
	writeOK(c, gin.H{"dashboard": d})
}

func (s *Server) handleInsights(c *gin.Context) {
	d, err := s.dashboardUC.Build(c.Request.Context(), selectorOf(c))
	if err != nil {
		s.writeBuildError(c, err)
		return
	}
	writeOK(c, gin.H{
		"range":    d.Range,
		"window":   d.Window,
		"insights": d.Insights,
		"score":    d.Score,
		"warnings": d.Warnings,
	})
}

func (s *Server) handleFinanceSummary(c *gin.Context) {
	sum, err := s.dashboardUC.BuildFinanceSummary(c.Request.Context())
	if err != nil {
		s.logger.ErrorContext(c.Request.Context(), "finance summary failed", "error", err)
		writeError(c, http.StatusBadGateway, errCodeDataSource, "failed to load finance data")
		return
	}
	writeOK(c, gin.H{
		"configured":    sum.Insight != nil,
		"insight":       sum.Insight,
		"emiProjection": sum.EMIProjection,
	})
}

func (s *Server) writeBuildError(c *gin.Context, err error) {
	if errors.Is(err, dashboard.ErrSuperseded) {
		writeError(c, http.StatusConflict, errCodeSuperseded, "superseded by a newer request")
		return
	}
	// 整批失敗只回報一次通用訊息，細節留在 log。
	writeError(c, http.StatusInternalServerError, errCodeInternal, "failed to load dashboard")
}
