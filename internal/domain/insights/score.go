package insights

import "math"

// Composite weights; finance is intentionally not part of the score.
const (
	weightHealth  = 0.30
	weightRoutine = 0.30
	weightSkills  = 0.20
	weightJobs    = 0.20
)

// EfficiencyScore 綜合效率分數與各子分數（皆為 0–100）。
type EfficiencyScore struct {
	Total   int     `json:"total"`
	Health  float64 `json:"health"`
	Routine float64 `json:"routine"`
	Skills  float64 `json:"skills"`
	Jobs    float64 `json:"jobs"`
}

// Score 將四個洞察正規化、截頂後加權，回傳 0–100 的整數分數。
func Score(h HealthInsight, r RoutineInsight, s SkillsInsight, j JobsInsight) EfficiencyScore {
	out := EfficiencyScore{
		Health:  HealthScore(h),
		Routine: Clamp100(r.AvgCompliance),
		// 300 分鐘（5 小時）的練習時間對應前半段滿分。
		Skills: Clamp100((s.TotalTime/300)*50 + (s.AvgRating/5)*50),
		Jobs:   Clamp100(float64(j.ActiveApplications)*10 + float64(j.TotalInterviews)*5),
	}
	total := out.Health*weightHealth + out.Routine*weightRoutine + out.Skills*weightSkills + out.Jobs*weightJobs
	out.Total = int(math.Round(Clamp100(total)))
	return out
}

// HealthScore 以睡眠 8h、步數 10000、飲水 3L、精力 10 為各 25 分滿分。
func HealthScore(h HealthInsight) float64 {
	return Clamp100((h.AvgSleep/8)*25 + (h.AvgSteps/10000)*25 + (h.AvgWater/3)*25 + (h.AvgEnergy/10)*25)
}

// Clamp100 將值限制在 [0, 100]；NaN 視為 0。
func Clamp100(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}
