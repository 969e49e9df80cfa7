package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"life-dashboard/internal/domain/timewindow"
)

// Notifier 推送文字訊息。
type Notifier interface {
	SendMessage(ctx context.Context, text string) error
}

// DigestJob 定期計算當日儀表板並推送摘要。
type DigestJob struct {
	builder  Builder
	notifier Notifier
	interval time.Duration
	logger   *slog.Logger
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewDigestJob 建立摘要推送工作；interval 未設定時為每日一次。
func NewDigestJob(builder Builder, notifier Notifier, interval time.Duration, logger *slog.Logger) *DigestJob {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DigestJob{
		builder:  builder,
		notifier: notifier,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start 啟動迴圈。
func (j *DigestJob) Start() {
	j.logger.Info("digest job starting", "interval", j.interval)
	ticker := time.NewTicker(j.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
				if err := j.RunOnce(ctx); err != nil {
					j.logger.Warn("digest push failed", "error", err)
				}
				cancel()
			case <-j.stopChan:
				return
			}
		}
	}()
}

// Stop 停止迴圈，可重複呼叫。
func (j *DigestJob) Stop() {
	j.stopOnce.Do(func() { close(j.stopChan) })
}

// RunOnce 計算 today 儀表板並推送一次。
func (j *DigestJob) RunOnce(ctx context.Context) error {
	d, err := j.builder.Build(ctx, timewindow.Today)
	if err != nil {
		return fmt.Errorf("build digest: %w", err)
	}
	if err := j.notifier.SendMessage(ctx, FormatDigest(d)); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}
	j.logger.Info("digest push sent", "date", d.Window.End, "score", d.Score.Total)
	return nil
}

// FormatDigest 將儀表板轉成推送用文字。
func FormatDigest(d Dashboard) string {
	var b strings.Builder
	in := d.Insights
	b.WriteString(fmt.Sprintf("【每日效率摘要】\n日期: %s\n", d.Window.End))
	b.WriteString(fmt.Sprintf("效率分數: %d (健康 %.0f | 作息 %.0f | 技能 %.0f | 求職 %.0f)\n",
		d.Score.Total, d.Score.Health, d.Score.Routine, d.Score.Skills, d.Score.Jobs))
	b.WriteString(fmt.Sprintf("睡眠 %.1fh | 步數 %.0f | 飲水 %.1fL | 精力 %.1f\n",
		in.Health.AvgSleep, in.Health.AvgSteps, in.Health.AvgWater, in.Health.AvgEnergy))
	b.WriteString(fmt.Sprintf("作息達成 %.0f%% | 技能 %.0f 分鐘 / %d 次\n",
		in.Routine.AvgCompliance, in.Skills.TotalTime, in.Skills.TotalSessions))
	b.WriteString(fmt.Sprintf("求職: 進行中 %d | 面試中 %d | 錄取 %d\n",
		in.Jobs.ActiveApplications, in.Jobs.InInterview, in.Jobs.Offers))
	if in.Finance != nil {
		b.WriteString(fmt.Sprintf("每月淨額: %.2f | 餘額: %.2f\n", in.Finance.NetMonthly, in.Finance.CurrentBalance))
	}
	if len(d.Warnings) > 0 {
		domains := make([]string, 0, len(d.Warnings))
		for _, w := range d.Warnings {
			domains = append(domains, w.Domain)
		}
		b.WriteString(fmt.Sprintf("讀取失敗: %s\n", strings.Join(domains, ", ")))
	}
	return b.String()
}
