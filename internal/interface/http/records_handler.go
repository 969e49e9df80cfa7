package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"life-dashboard/internal/domain/insights"
	"life-dashboard/internal/domain/timewindow"
)

// 以下路由把資料來源原樣轉成 {ok, ...} 讀取介面，供前端或其他儀表板實例使用。

func (s *Server) windowOrAbort(c *gin.Context) (timewindow.Window, bool) {
	w, err := parseWindow(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, errCodeBadRequest, err.Error())
		return timewindow.Window{}, false
	}
	return w, true
}

func (s *Server) sourceError(c *gin.Context, what string, err error) {
	s.logger.WarnContext(c.Request.Context(), "data source read failed", "what", what, "error", err)
	writeError(c, http.StatusBadGateway, errCodeDataSource, err.Error())
}

func (s *Server) handleHealthLogs(c *gin.Context) {
	w, ok := s.windowOrAbort(c)
	if !ok {
		return
	}
	logs, err := s.repo.ListHealthLogs(c.Request.Context(), w)
	if err != nil {
		s.sourceError(c, "health_logs", err)
		return
	}
	writeOK(c, gin.H{"logs": nonNil(logs)})
}

func (s *Server) handleDayPlans(c *gin.Context) {
	w, ok := s.windowOrAbort(c)
	if !ok {
		return
	}
	plans, err := s.repo.ListDayPlans(c.Request.Context(), w)
	if err != nil {
		s.sourceError(c, "day_plans", err)
		return
	}
	writeOK(c, gin.H{"dayPlans": nonNil(plans)})
}

func (s *Server) handleDayTypes(c *gin.Context) {
	types, err := s.repo.ListDayTypes(c.Request.Context())
	if err != nil {
		s.sourceError(c, "day_types", err)
		return
	}
	writeOK(c, gin.H{"dayTypes": nonNil(types)})
}

func (s *Server) handleSkillLogs(c *gin.Context) {
	w, ok := s.windowOrAbort(c)
	if !ok {
		return
	}
	logs, err := s.repo.ListSkillLogs(c.Request.Context(), w)
	if err != nil {
		s.sourceError(c, "skill_logs", err)
		return
	}
	writeOK(c, gin.H{"skills": nonNil(logs)})
}

func (s *Server) handleJobApplications(c *gin.Context) {
	apps, err := s.repo.ListJobApplications(c.Request.Context())
	if err != nil {
		s.sourceError(c, "job_applications", err)
		return
	}
	writeOK(c, gin.H{"applications": nonNil(apps)})
}

func (s *Server) handleFinanceSetup(c *gin.Context) {
	setup, err := s.repo.GetFinanceSetup(c.Request.Context())
	if err != nil {
		s.sourceError(c, "finance_setup", err)
		return
	}
	writeOK(c, gin.H{"setup": setup})
}

func (s *Server) handleTransactions(c *gin.Context) {
	w, ok := s.windowOrAbort(c)
	if !ok {
		return
	}
	limit := parseIntDefault(c.Query("limit"), insights.DefaultTransactionSample)
	if limit < 0 {
		writeError(c, http.StatusBadRequest, errCodeBadRequest, "invalid limit")
		return
	}
	txs, err := s.repo.ListTransactions(c.Request.Context(), w, limit)
	if err != nil {
		s.sourceError(c, "transactions", err)
		return
	}
	writeOK(c, gin.H{"transactions": nonNil(txs)})
}

// nonNil 讓空結果序列化成 [] 而非 null。
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
