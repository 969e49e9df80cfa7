package insights

import (
	"sort"

	"life-dashboard/internal/domain/records"
)

const (
	// DefaultRecentLimit 健康與作息洞察只取最近幾筆紀錄。
	DefaultRecentLimit = 7
	// DefaultTransactionSample 近期收支快照取前幾筆交易。
	DefaultTransactionSample = 10
)

// Options 控制各洞察的取樣數量。
type Options struct {
	// RecentLimit 套用於健康與作息；即使選擇 month 也只平均最近 RecentLimit 筆。
	RecentLimit int
	// TransactionSample 以筆數（非日期）決定近期收支快照。
	TransactionSample int
}

// DefaultOptions 回傳預設取樣設定。
func DefaultOptions() Options {
	return Options{RecentLimit: DefaultRecentLimit, TransactionSample: DefaultTransactionSample}
}

func (o Options) recentLimit() int {
	if o.RecentLimit <= 0 {
		return DefaultRecentLimit
	}
	return o.RecentLimit
}

// TransactionLimit 回傳實際使用的交易取樣筆數。
func (o Options) TransactionLimit() int {
	if o.TransactionSample <= 0 {
		return DefaultTransactionSample
	}
	return o.TransactionSample
}

// mean 在 count 為 0 時回傳 0。
func mean(sum float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

func latestHealth(logs []records.HealthLog, n int) []records.HealthLog {
	out := make([]records.HealthLog, len(logs))
	copy(out, logs)
	sort.SliceStable(out, func(i, j int) bool {
		return records.DayOf(out[i].Date) > records.DayOf(out[j].Date)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func latestPlans(plans []records.DayPlan, n int) []records.DayPlan {
	out := make([]records.DayPlan, len(plans))
	copy(out, plans)
	sort.SliceStable(out, func(i, j int) bool {
		return records.DayOf(out[i].Date) > records.DayOf(out[j].Date)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
