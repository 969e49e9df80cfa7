package charts

import (
	"fmt"
	"time"

	"life-dashboard/internal/domain/records"
	"life-dashboard/internal/domain/timewindow"
)

const weekBuckets = 4

// WeekBucket 單週的申請數與面試數。
type WeekBucket struct {
	Week         string `json:"week"`
	Applications int    `json:"applications"`
	Interviews   int    `json:"interviews"`
}

// ApplicationFrequency 將最近四週（以 today 為錨點，舊到新）的申請分桶。
// 第 k 桶涵蓋 [today-((3-k)*7+6), today-(3-k)*7]；超出 28 天範圍的申請不計入。
// 沒有任何申請時回傳空序列，而不是四個 0。
func ApplicationFrequency(apps []records.JobApplication, today time.Time) []WeekBucket {
	if len(apps) == 0 {
		return []WeekBucket{}
	}
	out := make([]WeekBucket, weekBuckets)
	bounds := make([]timewindow.Window, weekBuckets)
	for k := 0; k < weekBuckets; k++ {
		offset := (weekBuckets - 1 - k) * 7
		bounds[k] = timewindow.Window{
			Start: today.AddDate(0, 0, -(offset + 6)).Format(timewindow.DateLayout),
			End:   today.AddDate(0, 0, -offset).Format(timewindow.DateLayout),
		}
		out[k].Week = fmt.Sprintf("Week %d", k+1)
	}
	for _, a := range apps {
		day := records.DayOf(a.AppliedDate)
		if day == "" {
			continue
		}
		for k, b := range bounds {
			if b.Contains(day) {
				out[k].Applications++
				out[k].Interviews += len(a.Interviews)
				break
			}
		}
	}
	return out
}
