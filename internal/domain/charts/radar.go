package charts

import (
	"math"

	"life-dashboard/internal/domain/insights"
	"life-dashboard/internal/domain/records"
)

// RadarCategories 是雷達圖固定顯示的 8 個分類。
// 與 records.SkillEntryCategories 不同：data-science、cybersecurity、tools、
// soft-skills、other 的紀錄不會出現在雷達圖上。
var RadarCategories = []records.SkillCategory{
	records.CategoryFrontend,
	records.CategoryBackend,
	records.CategoryDatabase,
	records.CategoryDevOps,
	records.CategoryMobile,
	records.CategoryAIML,
	records.CategoryAlgorithms,
	records.CategorySystemDesign,
}

// RadarPoint 單一分類的雷達分數。
type RadarPoint struct {
	Category records.SkillCategory `json:"category"`
	Score    int                   `json:"score"`
	Time     float64               `json:"time"`
	Sessions int                   `json:"sessions"`
}

// SkillRadar 依全部技能紀錄計算每個雷達分類的分數，沒有資料的分類以 0 補齊。
func SkillRadar(logs []records.SkillLog) []RadarPoint {
	type agg struct {
		minutes  float64
		ratings  float64
		sessions int
	}
	stats := make(map[records.SkillCategory]*agg, len(RadarCategories))
	for _, c := range RadarCategories {
		stats[c] = &agg{}
	}
	for _, l := range logs {
		a, ok := stats[l.Category]
		if !ok {
			continue
		}
		a.minutes += l.TimeSpent
		a.ratings += records.Value(l.Rating)
		a.sessions++
	}

	out := make([]RadarPoint, 0, len(RadarCategories))
	for _, c := range RadarCategories {
		a := stats[c]
		point := RadarPoint{Category: c, Time: a.minutes, Sessions: a.sessions}
		if a.sessions > 0 {
			timeScore := insights.Clamp100((a.minutes / 60) * 2)
			ratingScore := insights.Clamp100((a.ratings / float64(a.sessions)) * 20)
			sessionScore := insights.Clamp100(float64(a.sessions) * 10)
			point.Score = int(math.Round((timeScore + ratingScore + sessionScore) / 3))
		}
		out = append(out, point)
	}
	return out
}
