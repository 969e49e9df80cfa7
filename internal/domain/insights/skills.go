package insights

import "life-dashboard/internal/domain/records"

// DifficultyBreakdown 各難度的練習次數。
type DifficultyBreakdown struct {
	Beginner     int `json:"beginner"`
	Intermediate int `json:"intermediate"`
	Advanced     int `json:"advanced"`
}

// SkillsInsight 技能練習摘要。
type SkillsInsight struct {
	TotalTime           float64             `json:"totalTime"`
	Categories          int                 `json:"categories"`
	AvgRating           float64             `json:"avgRating"`
	DifficultyBreakdown DifficultyBreakdown `json:"difficultyBreakdown"`
	TotalSessions       int                 `json:"totalSessions"`
}

// Skills 彙整視窗內所有技能紀錄，不做筆數截斷。
// 未評分的紀錄以 0 分計入平均，分母為全部筆數。
func Skills(logs []records.SkillLog) SkillsInsight {
	out := SkillsInsight{TotalSessions: len(logs)}
	seen := make(map[records.SkillCategory]struct{})
	var ratingSum float64
	for _, l := range logs {
		out.TotalTime += l.TimeSpent
		seen[l.Category] = struct{}{}
		ratingSum += records.Value(l.Rating)
		switch l.Difficulty {
		case records.DifficultyBeginner:
			out.DifficultyBreakdown.Beginner++
		case records.DifficultyIntermediate:
			out.DifficultyBreakdown.Intermediate++
		case records.DifficultyAdvanced:
			out.DifficultyBreakdown.Advanced++
		}
	}
	out.Categories = len(seen)
	out.AvgRating = mean(ratingSum, len(logs))
	return out
}
