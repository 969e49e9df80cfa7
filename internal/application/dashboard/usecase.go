package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"life-dashboard/internal/domain/charts"
	"life-dashboard/internal/domain/insights"
	"life-dashboard/internal/domain/timewindow"
)

// ErrBuildFailed 表示整批讀取失敗（例如請求被取消），不是單一領域失敗。
var ErrBuildFailed = errors.New("dashboard build failed")

const defaultFetchTimeout = 10 * time.Second

// UseCase 儀表板編排：解析時間視窗、並行讀取五個領域、計算洞察與圖表。
type UseCase struct {
	repo         Repository
	opts         insights.Options
	loc          *time.Location
	fetchTimeout time.Duration
	logger       *slog.Logger
	metrics      Metrics
	now          func() time.Time
}

// Option 調整 UseCase 設定。
type Option func(*UseCase)

// WithLogger 注入 logger。
func WithLogger(logger *slog.Logger) Option {
	return func(u *UseCase) {
		if logger != nil {
			u.logger = logger
		}
	}
}

// WithMetrics 注入 metrics 收集器。
func WithMetrics(m Metrics) Option {
	return func(u *UseCase) { u.metrics = m }
}

// WithLocation 設定判斷「今天」所用的時區。
func WithLocation(loc *time.Location) Option {
	return func(u *UseCase) {
		if loc != nil {
			u.loc = loc
		}
	}
}

// WithInsightOptions 設定洞察取樣筆數。
func WithInsightOptions(opts insights.Options) Option {
	return func(u *UseCase) { u.opts = opts }
}

// WithFetchTimeout 設定整批讀取的逾時。
func WithFetchTimeout(d time.Duration) Option {
	return func(u *UseCase) {
		if d > 0 {
			u.fetchTimeout = d
		}
	}
}

// WithClock 替換時間來源，主要供測試使用。
func WithClock(now func() time.Time) Option {
	return func(u *UseCase) {
		if now != nil {
			u.now = now
		}
	}
}

// NewUseCase 建立儀表板用例。
func NewUseCase(repo Repository, opts ...Option) *UseCase {
	u := &UseCase{
		repo:         repo,
		opts:         insights.DefaultOptions(),
		loc:          time.UTC,
		fetchTimeout: defaultFetchTimeout,
		logger:       slog.Default(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// InsightOptions 回傳目前使用的取樣設定。
func (u *UseCase) InsightOptions() insights.Options {
	return u.opts
}

// Today 回傳設定時區下的現在時間。
func (u *UseCase) Today() time.Time {
	return u.now().In(u.loc)
}

// Build 讀取並計算一次完整儀表板；每次都重新讀取與計算，不快取。
func (u *UseCase) Build(ctx context.Context, sel timewindow.Selector) (Dashboard, error) {
	start := time.Now()
	today := u.Today()
	window := timewindow.Resolve(sel, today)

	snap, err := u.Fetch(ctx, window)
	if err != nil {
		u.logger.ErrorContext(ctx, "dashboard fetch failed", "range", string(sel), "error", err)
		return Dashboard{}, fmt.Errorf("%w: %w", ErrBuildFailed, err)
	}

	out := Compose(snap, today, u.opts)
	out.Range = sel
	out.GeneratedAt = today

	elapsed := time.Since(start)
	if u.metrics != nil {
		u.metrics.ObserveBuild(string(sel), elapsed.Seconds())
		u.metrics.SetScore(out.Score.Total)
	}
	u.logger.InfoContext(ctx, "dashboard built",
		"range", string(sel),
		"start_date", window.Start,
		"end_date", window.End,
		"score", out.Score.Total,
		"warnings", len(out.Warnings),
		"duration", elapsed,
	)
	return out, nil
}

// Fetch 並行發出所有讀取，全部結束後才回傳。
// 單一領域失敗只會記在 Snapshot.Failures；只有呼叫端 context 結束時才整批失敗。
func (u *UseCase) Fetch(ctx context.Context, window timewindow.Window) (Snapshot, error) {
	snap := Snapshot{Window: window, Failures: make(map[string]string)}
	var mu sync.Mutex

	fetchCtx, cancel := context.WithTimeout(ctx, u.fetchTimeout)
	defer cancel()
	g, gctx := errgroup.WithContext(fetchCtx)

	run := func(domain string, fn func(context.Context) error) {
		g.Go(func() error {
			err := fn(gctx)
			if err == nil {
				return nil
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			mu.Lock()
			snap.Failures[domain] = err.Error()
			mu.Unlock()
			if u.metrics != nil {
				u.metrics.IncFetchFailure(domain)
			}
			u.logger.WarnContext(ctx, "domain fetch failed", "domain", domain, "error", err)
			return nil
		})
	}

	run(DomainHealth, func(ctx context.Context) error {
		logs, err := u.repo.ListHealthLogs(ctx, window)
		snap.HealthLogs = logs
		return err
	})
	run(DomainRoutine, func(ctx context.Context) error {
		plans, err := u.repo.ListDayPlans(ctx, window)
		snap.DayPlans = plans
		return err
	})
	run(DomainSkills, func(ctx context.Context) error {
		logs, err := u.repo.ListSkillLogs(ctx, window)
		snap.SkillLogs = logs
		return err
	})
	run(DomainSkillHistory, func(ctx context.Context) error {
		logs, err := u.repo.ListSkillLogs(ctx, timewindow.Window{})
		snap.SkillHistory = logs
		return err
	})
	run(DomainJobs, func(ctx context.Context) error {
		apps, err := u.repo.ListJobApplications(ctx)
		snap.Applications = apps
		return err
	})
	run(DomainFinance, func(ctx context.Context) error {
		setup, err := u.repo.GetFinanceSetup(ctx)
		snap.FinanceSetup = setup
		return err
	})
	run(DomainTransactions, func(ctx context.Context) error {
		txs, err := u.repo.ListTransactions(ctx, timewindow.Window{}, u.opts.TransactionLimit())
		snap.Transactions = txs
		return err
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	resetFailed(&snap)
	return snap, nil
}

// resetFailed 讓失敗的領域維持預設值，避免使用到部分回傳的資料。
func resetFailed(snap *Snapshot) {
	for domain := range snap.Failures {
		switch domain {
		case DomainHealth:
			snap.HealthLogs = nil
		case DomainRoutine:
			snap.DayPlans = nil
		case DomainSkills:
			snap.SkillLogs = nil
		case DomainSkillHistory:
			snap.SkillHistory = nil
		case DomainJobs:
			snap.Applications = nil
		case DomainFinance:
			snap.FinanceSetup = nil
		case DomainTransactions:
			snap.Transactions = nil
		}
	}
}

// FinanceSummary 財務洞察與 EMI 推估；未設定財務時 Insight 為 nil。
type FinanceSummary struct {
	Insight       *insights.FinanceInsight `json:"insight"`
	EMIProjection []charts.EMIPoint        `json:"emiProjection"`
}

// BuildFinanceSummary 讀取財務設定與最近交易；交易讀取失敗時近期收支以 0 計。
func (u *UseCase) BuildFinanceSummary(ctx context.Context) (FinanceSummary, error) {
	setup, err := u.repo.GetFinanceSetup(ctx)
	if err != nil {
		return FinanceSummary{}, fmt.Errorf("get finance setup: %w", err)
	}
	out := FinanceSummary{EMIProjection: []charts.EMIPoint{}}
	if setup == nil {
		return out, nil
	}
	txs, err := u.repo.ListTransactions(ctx, timewindow.Window{}, u.opts.TransactionLimit())
	if err != nil {
		u.logger.WarnContext(ctx, "transactions fetch failed", "error", err)
		txs = nil
	}
	out.Insight = insights.Finance(setup, txs, u.opts)
	out.EMIProjection = charts.EMIProjection(setup.EMIs)
	return out, nil
}
