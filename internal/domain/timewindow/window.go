package timewindow

import (
	"strings"
	"time"
)

// DateLayout 為所有視窗邊界使用的 ISO 日期格式。
const DateLayout = "2006-01-02"

// Selector 儀表板的粗粒度時間範圍選擇。
type Selector string

const (
	Today Selector = "today"
	Week  Selector = "week"
	Month Selector = "month"
)

// ParseSelector 解析查詢參數；未知值一律視為 today。
func ParseSelector(s string) Selector {
	switch Selector(strings.ToLower(strings.TrimSpace(s))) {
	case Week:
		return Week
	case Month:
		return Month
	default:
		return Today
	}
}

// Window 為 [Start, End] 的包含式日期區間。
type Window struct {
	Start string `json:"startDate"`
	End   string `json:"endDate"`
}

// Resolve 以 now 為錨點，將 selector 轉成具體日期區間。
func Resolve(sel Selector, now time.Time) Window {
	end := now.Format(DateLayout)
	switch sel {
	case Week:
		return Window{Start: now.AddDate(0, 0, -7).Format(DateLayout), End: end}
	case Month:
		return Window{Start: now.AddDate(0, -1, 0).Format(DateLayout), End: end}
	default:
		return Window{Start: end, End: end}
	}
}

// Contains 判斷日期（可含時間部分）是否落在區間內；空邊界視為不限。
func (w Window) Contains(date string) bool {
	if len(date) > len(DateLayout) {
		date = date[:len(DateLayout)]
	}
	if w.Start != "" && date < w.Start {
		return false
	}
	if w.End != "" && date > w.End {
		return false
	}
	return true
}

// Unbounded 表示不限日期。
func (w Window) Unbounded() bool {
	return w.Start == "" && w.End == ""
}
