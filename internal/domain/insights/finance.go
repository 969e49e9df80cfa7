package insights

import (
	"github.com/shopspring/decimal"

	"life-dashboard/internal/domain/records"
)

// FinanceInsight 每月收支推估與近期交易快照。
type FinanceInsight struct {
	TotalIncome      float64 `json:"totalIncome"`
	TotalEMIs        float64 `json:"totalEMIs"`
	TotalExpenses    float64 `json:"totalExpenses"`
	TotalInvestments float64 `json:"totalInvestments"`
	NetMonthly       float64 `json:"netMonthly"`
	RecentCredits    float64 `json:"recentCredits"`
	RecentDebits     float64 `json:"recentDebits"`
	CurrentBalance   float64 `json:"currentBalance"`
}

// Finance 在沒有財務設定時回傳 nil，下游應略過財務相關輸出。
// txs 預期為新到舊排序，只取前 TransactionSample 筆。
func Finance(setup *records.FinanceSetup, txs []records.Transaction, opts Options) *FinanceInsight {
	if setup == nil {
		return nil
	}
	income := sumItems(setup.IncomeSources)
	emis := sumItems(setup.EMIs)
	expenses := sumItems(setup.LivingExpenses)
	investments := sumItems(setup.Investments)
	net := income.Sub(emis).Sub(expenses).Sub(investments)

	if n := opts.TransactionLimit(); len(txs) > n {
		txs = txs[:n]
	}
	credits, debits := decimal.Zero, decimal.Zero
	for _, tx := range txs {
		switch tx.Type {
		case records.TxCredit:
			credits = credits.Add(decimal.NewFromFloat(tx.Amount))
		case records.TxDebit:
			debits = debits.Add(decimal.NewFromFloat(tx.Amount))
		}
	}

	return &FinanceInsight{
		TotalIncome:      income.InexactFloat64(),
		TotalEMIs:        emis.InexactFloat64(),
		TotalExpenses:    expenses.InexactFloat64(),
		TotalInvestments: investments.InexactFloat64(),
		NetMonthly:       net.InexactFloat64(),
		RecentCredits:    credits.InexactFloat64(),
		RecentDebits:     debits.InexactFloat64(),
		CurrentBalance:   records.Value(setup.CurrentBalance),
	}
}

func sumItems(items []records.FinanceItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(decimal.NewFromFloat(it.Amount))
	}
	return total
}
