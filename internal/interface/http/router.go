package httpapi

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"life-dashboard/internal"
	"life-dashboard/internal/application/dashboard"
	"life-dashboard/internal/domain/insights"
	"life-dashboard/internal/infra/memory"
	authinfra "life-dashboard/internal/infrastructure/auth"
	"life-dashboard/internal/infrastructure/config"
	"life-dashboard/internal/infrastructure/external/lifelog"
	"life-dashboard/internal/infrastructure/metrics"
	"life-dashboard/internal/infrastructure/notify"
	"life-dashboard/internal/infrastructure/persistence/postgres"
)

// DataSource 為儀表板讀取的資料來源，同時提供作息範本。
type DataSource interface {
	dashboard.Repository
	dashboard.DayTypeReader
}

const (
	sourceMemory   = "memory"
	sourcePostgres = "postgres"
	sourceRemote   = "remote"
)

// Server 封裝 HTTP 路由與依賴。
type Server struct {
	engine       *gin.Engine
	db           *sql.DB
	repo         DataSource
	dataSource   string
	dashboardUC  *dashboard.UseCase
	loaders      *dashboard.Loaders
	tokens       *authinfra.JWTIssuer
	authDisabled bool
	metrics      *metrics.Metrics
	logger       *slog.Logger
	digest       *dashboard.DigestJob
	now          func() time.Time
}

// Option 調整 Server 建立方式。
type Option func(*Server)

// WithLogger 注入 logger。
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDataSource 直接指定資料來源，略過依設定選擇。
func WithDataSource(repo DataSource, name string) Option {
	return func(s *Server) {
		s.repo = repo
		s.dataSource = name
	}
}

// WithClock 替換時間來源，主要供測試使用。
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		if now != nil {
			s.now = now
		}
	}
}

// NewServer 建立 API 伺服器。資料來源優先順序：遠端紀錄服務、Postgres、記憶體。
func NewServer(cfg config.Config, db *sql.DB, opts ...Option) *Server {
	ttl := cfg.Auth.TokenTTL
	if ttl == 0 {
		ttl = 30 * time.Minute
	}
	s := &Server{
		db:           db,
		tokens:       authinfra.NewJWTIssuer(cfg.Auth.Secret, ttl),
		authDisabled: cfg.Auth.Disabled,
		metrics:      metrics.New(),
		logger:       slog.Default(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	loc := cfg.Dashboard.Location()
	if internal.IsNil(s.repo) {
		s.repo, s.dataSource = selectDataSource(cfg, db, s.now().In(loc))
	}
	s.logger.Info("data source selected", "source", s.dataSource)

	s.dashboardUC = dashboard.NewUseCase(s.repo,
		dashboard.WithLogger(s.logger),
		dashboard.WithMetrics(s.metrics),
		dashboard.WithLocation(loc),
		dashboard.WithClock(s.now),
		dashboard.WithFetchTimeout(cfg.Dashboard.FetchTimeout),
		dashboard.WithInsightOptions(insights.Options{
			RecentLimit:       cfg.Dashboard.RecentLogLimit,
			TransactionSample: cfg.Dashboard.TransactionSample,
		}),
	)
	s.loaders = dashboard.NewLoaders(s.dashboardUC, s.metrics)

	tg := cfg.Notifier.Telegram
	if tg.Enabled && tg.Token != "" && tg.ChatID != 0 {
		client := notify.NewTelegramClient(tg.Token, tg.ChatID, tg.Prefix)
		s.digest = dashboard.NewDigestJob(s.dashboardUC, client, tg.Interval, s.logger)
		s.digest.Start()
	}

	s.engine = s.buildEngine()
	return s
}

func selectDataSource(cfg config.Config, db *sql.DB, today time.Time) (DataSource, string) {
	if cfg.Repository.RemoteURL != "" {
		return lifelog.NewClient(cfg.Repository.RemoteURL, cfg.Repository.Token, cfg.Repository.Timeout), sourceRemote
	}
	if db != nil {
		return postgres.NewRepo(db), sourcePostgres
	}
	store := memory.NewStore()
	if cfg.Seed.Demo {
		store.SeedDemo(today)
	}
	return store, sourceMemory
}

func (s *Server) buildEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), s.ginLogger(), corsMiddleware())

	r.GET("/api/ping", s.handlePing)
	r.GET("/api/health", s.handleHealth)
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	api := r.Group("/api", s.requireAuth())
	api.GET("/dashboard", s.handleDashboard)
	api.GET("/insights", s.handleInsights)
	api.GET("/finance/summary", s.handleFinanceSummary)

	api.GET("/health-logs", s.handleHealthLogs)
	api.GET("/day-plans", s.handleDayPlans)
	api.GET("/day-types", s.handleDayTypes)
	api.GET("/skills", s.handleSkillLogs)
	api.GET("/jobs", s.handleJobApplications)
	api.GET("/finance/setup", s.handleFinanceSetup)
	api.GET("/finance/transactions", s.handleTransactions)

	r.NoRoute(func(c *gin.Context) {
		writeError(c, http.StatusNotFound, errCodeNotFound, "route not found")
	})
	return r
}

// Handler 回傳路由處理器，供 HTTP server 掛載。
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Tokens 回傳 token 簽發器，供 CLI 與測試簽發 access token。
func (s *Server) Tokens() *authinfra.JWTIssuer {
	return s.tokens
}

// Close 停止背景工作。
func (s *Server) Close() {
	if s.digest != nil {
		s.digest.Stop()
	}
}
