package insights

import "life-dashboard/internal/domain/records"

// RoutineInsight 作息達成摘要；三個 *Compliance 為 0–1 比例。
type RoutineInsight struct {
	AvgCompliance   float64 `json:"avgCompliance"`
	StepsCompliance float64 `json:"stepsCompliance"`
	WakeCompliance  float64 `json:"wakeCompliance"`
	SleepCompliance float64 `json:"sleepCompliance"`
	TotalPlans      int     `json:"totalPlans"`
}

// Routine 彙整最近 RecentLimit 筆作息計畫。
// 沒有 compliance 的計畫以 0% 且全部未達成計入。
func Routine(plans []records.DayPlan, opts Options) RoutineInsight {
	recent := latestPlans(plans, opts.recentLimit())
	var pct float64
	var steps, wake, sleep int
	for _, p := range recent {
		if p.Compliance == nil {
			continue
		}
		pct += p.Compliance.ChecklistPct
		if p.Compliance.StepsMet {
			steps++
		}
		if p.Compliance.WakeMet {
			wake++
		}
		if p.Compliance.SleepMet {
			sleep++
		}
	}
	n := len(recent)
	return RoutineInsight{
		AvgCompliance:   mean(pct, n),
		StepsCompliance: mean(float64(steps), n),
		WakeCompliance:  mean(float64(wake), n),
		SleepCompliance: mean(float64(sleep), n),
		TotalPlans:      n,
	}
}
