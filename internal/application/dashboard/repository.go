package dashboard

import (
	"context"

	"life-dashboard/internal/domain/records"
	"life-dashboard/internal/domain/timewindow"
)

// Repository 為五個領域服務的唯讀介面，回傳資料皆依日期新到舊排序。
// 空的 Window 代表不限日期。
type Repository interface {
	ListHealthLogs(ctx context.Context, w timewindow.Window) ([]records.HealthLog, error)
	ListDayPlans(ctx context.Context, w timewindow.Window) ([]records.DayPlan, error)
	ListSkillLogs(ctx context.Context, w timewindow.Window) ([]records.SkillLog, error)
	ListJobApplications(ctx context.Context) ([]records.JobApplication, error)
	// GetFinanceSetup 在尚未設定時回傳 (nil, nil)。
	GetFinanceSetup(ctx context.Context) (*records.FinanceSetup, error)
	ListTransactions(ctx context.Context, w timewindow.Window, limit int) ([]records.Transaction, error)
}

// DayTypeReader 提供作息範本，僅供畫面顯示。
type DayTypeReader interface {
	ListDayTypes(ctx context.Context) ([]records.DayType, error)
}

// Metrics 記錄儀表板建置狀況；可為 nil。
type Metrics interface {
	ObserveBuild(selector string, seconds float64)
	IncFetchFailure(domain string)
	SetScore(score int)
	IncSuperseded()
}
