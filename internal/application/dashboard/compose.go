package dashboard

import (
	"sort"
	"time"

	"life-dashboard/internal/domain/charts"
	"life-dashboard/internal/domain/insights"
	"life-dashboard/internal/domain/records"
	"life-dashboard/internal/domain/timewindow"
)

// 各領域讀取的名稱，用於警告與 metrics label。
const (
	DomainHealth       = "health"
	DomainRoutine      = "routine"
	DomainSkills       = "skills"
	DomainSkillHistory = "skills_history"
	DomainJobs         = "jobs"
	DomainFinance      = "finance"
	DomainTransactions = "transactions"
)

// Snapshot 為一次讀取後的不可變輸入。
type Snapshot struct {
	Window       timewindow.Window
	HealthLogs   []records.HealthLog
	DayPlans     []records.DayPlan
	SkillLogs    []records.SkillLog
	SkillHistory []records.SkillLog
	Applications []records.JobApplication
	FinanceSetup *records.FinanceSetup
	Transactions []records.Transaction
	// Failures 為讀取失敗的領域與錯誤訊息。
	Failures map[string]string
}

// Insights 各領域洞察；Finance 在未設定財務時為 nil。
type Insights struct {
	Health  insights.HealthInsight   `json:"health"`
	Routine insights.RoutineInsight  `json:"routine"`
	Skills  insights.SkillsInsight   `json:"skills"`
	Jobs    insights.JobsInsight     `json:"jobs"`
	Finance *insights.FinanceInsight `json:"finance"`
}

// Charts 供前端直接繪製的序列。
type Charts struct {
	EMIProjection        []charts.EMIPoint   `json:"emiProjection"`
	ApplicationFrequency []charts.WeekBucket `json:"applicationFrequency"`
	SkillRadar           []charts.RadarPoint `json:"skillRadar"`
}

// Warning 描述單一領域讀取失敗；其餘領域照常計算。
type Warning struct {
	Domain string `json:"domain"`
	Error  string `json:"error"`
}

// Dashboard 為一次請求計算出的完整結果，不做任何保存。
type Dashboard struct {
	Range       timewindow.Selector      `json:"range"`
	Window      timewindow.Window        `json:"window"`
	GeneratedAt time.Time                `json:"generatedAt"`
	Insights    Insights                 `json:"insights"`
	Score       insights.EfficiencyScore `json:"score"`
	Charts      Charts                   `json:"charts"`
	Warnings    []Warning                `json:"warnings"`
}

// Compose 由快照計算洞察、分數與圖表序列；純函式。
func Compose(snap Snapshot, today time.Time, opts insights.Options) Dashboard {
	in := Insights{
		Health:  insights.Health(snap.HealthLogs, opts),
		Routine: insights.Routine(snap.DayPlans, opts),
		Skills:  insights.Skills(snap.SkillLogs),
		Jobs:    insights.Jobs(snap.Applications),
		Finance: insights.Finance(snap.FinanceSetup, snap.Transactions, opts),
	}

	emi := []charts.EMIPoint{}
	if snap.FinanceSetup != nil {
		emi = charts.EMIProjection(snap.FinanceSetup.EMIs)
	}

	return Dashboard{
		Window:   snap.Window,
		Insights: in,
		Score:    insights.Score(in.Health, in.Routine, in.Skills, in.Jobs),
		Charts: Charts{
			EMIProjection:        emi,
			ApplicationFrequency: charts.ApplicationFrequency(snap.Applications, today),
			SkillRadar:           charts.SkillRadar(snap.SkillHistory),
		},
		Warnings: warnings(snap.Failures),
	}
}

func warnings(failures map[string]string) []Warning {
	out := make([]Warning, 0, len(failures))
	for domain, msg := range failures {
		out = append(out, Warning{Domain: domain, Error: msg})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Domain < out[j].Domain
	})
	return out
}
