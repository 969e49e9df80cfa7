package records

import "strings"

// HealthLog 單日健康紀錄，date 為自然鍵。
type HealthLog struct {
	ID          string   `json:"id,omitempty"`
	Date        string   `json:"date"`
	SleepHrs    *float64 `json:"sleepHrs,omitempty"`
	Steps       *float64 `json:"steps,omitempty"`
	WaterLiters *float64 `json:"waterLiters,omitempty"`
	Energy1to10 *float64 `json:"energy1to10,omitempty"`
}

// Value 回傳指標值，未填寫時為 0。
func Value(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// Float 建立指標，方便組裝測試與種子資料。
func Float(v float64) *float64 {
	return &v
}

// DayOf 取日期或 RFC3339 時間字串的 YYYY-MM-DD 部分。
func DayOf(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 10 {
		return s[:10]
	}
	return s
}
