package insights

import "life-dashboard/internal/domain/records"

// HealthInsight 健康紀錄摘要。
type HealthInsight struct {
	AvgSleep  float64 `json:"avgSleep"`
	AvgSteps  float64 `json:"avgSteps"`
	AvgWater  float64 `json:"avgWater"`
	AvgEnergy float64 `json:"avgEnergy"`
	TotalLogs int     `json:"totalLogs"`
}

// Health 平均最近 RecentLimit 筆健康紀錄，缺漏欄位以 0 計。
func Health(logs []records.HealthLog, opts Options) HealthInsight {
	recent := latestHealth(logs, opts.recentLimit())
	var sleep, steps, water, energy float64
	for _, l := range recent {
		sleep += records.Value(l.SleepHrs)
		steps += records.Value(l.Steps)
		water += records.Value(l.WaterLiters)
		energy += records.Value(l.Energy1to10)
	}
	n := len(recent)
	return HealthInsight{
		AvgSleep:  mean(sleep, n),
		AvgSteps:  mean(steps, n),
		AvgWater:  mean(water, n),
		AvgEnergy: mean(energy, n),
		TotalLogs: n,
	}
}
