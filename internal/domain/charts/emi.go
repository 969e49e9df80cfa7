package charts

import (
	"fmt"
	"math"
	"strings"

	"life-dashboard/internal/domain/records"
)

// EMIMonths 是固定的六個月標籤，不對應實際當月。
var EMIMonths = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

const (
	emiMonthlyDecay = 0.15
	emiFloorFactor  = 0.10
)

// EMIPoint 單月的各筆 EMI 推估金額，key 為 EMI 名稱。
type EMIPoint struct {
	Month   string             `json:"month"`
	Amounts map[string]float64 `json:"amounts"`
}

// EMIProjection 以每月遞減 15%、最低 10% 的方式模擬還款走勢。
// 這是顯示用的估算，不是攤還表。
func EMIProjection(emis []records.FinanceItem) []EMIPoint {
	if len(emis) == 0 {
		return []EMIPoint{}
	}
	names := emiNames(emis)
	out := make([]EMIPoint, 0, len(EMIMonths))
	for i, month := range EMIMonths {
		factor := EMIDecayFactor(i)
		point := EMIPoint{Month: month, Amounts: make(map[string]float64, len(emis))}
		for k, emi := range emis {
			point.Amounts[names[k]] = math.Round(emi.Amount * factor)
		}
		out = append(out, point)
	}
	return out
}

// EMIDecayFactor 第 i 個月（從 0 起）的剩餘比例，不低於 0.10。
func EMIDecayFactor(i int) float64 {
	return math.Max(emiFloorFactor, 1-float64(i)*emiMonthlyDecay)
}

// emiNames 補上空白名稱並處理重複名稱，確保每筆 EMI 各有一欄。
// 重複時遞增後綴，直到不與任何已指派的名稱相同。
func emiNames(emis []records.FinanceItem) []string {
	names := make([]string, len(emis))
	taken := make(map[string]bool, len(emis))
	for i, emi := range emis {
		base := strings.TrimSpace(emi.Name)
		if base == "" {
			base = fmt.Sprintf("EMI %d", i+1)
		}
		name := base
		for n := 2; taken[name]; n++ {
			name = fmt.Sprintf("%s (%d)", base, n)
		}
		taken[name] = true
		names[i] = name
	}
	return names
}
