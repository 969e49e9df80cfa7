package records

// FinanceItem 為每月固定金額的收支項目。
type FinanceItem struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// FinanceSetup 財務設定，全域僅一筆。
type FinanceSetup struct {
	CurrentBalance *float64      `json:"currentBalance,omitempty"`
	IncomeSources  []FinanceItem `json:"incomeSources"`
	EMIs           []FinanceItem `json:"emis"`
	LivingExpenses []FinanceItem `json:"livingExpenses"`
	Investments    []FinanceItem `json:"investments"`
}

// TxType 交易方向。
type TxType string

const (
	TxDebit  TxType = "debit"
	TxCredit TxType = "credit"
)

// Transaction 單筆收支交易。
type Transaction struct {
	ID          string  `json:"id,omitempty"`
	Date        string  `json:"date"`
	Type        TxType  `json:"type"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
}
