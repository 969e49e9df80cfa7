package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"life-dashboard/internal/domain/records"
	"life-dashboard/internal/domain/timewindow"
)

// Repo 提供儀表板五個領域的 Postgres 唯讀存取。
type Repo struct {
	db *sql.DB
}

// NewRepo 建立 Postgres 資料存取實例。
func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// 空字串代表該端不設限。
const dateBetween = `BETWEEN COALESCE(NULLIF($1::text, '')::date, '-infinity'::date)
    AND COALESCE(NULLIF($2::text, '')::date, 'infinity'::date)`

// ListHealthLogs 取視窗內的健康紀錄，新到舊。
func (r *Repo) ListHealthLogs(ctx context.Context, w timewindow.Window) ([]records.HealthLog, error) {
	q := `
SELECT id, to_char(log_date, 'YYYY-MM-DD'), sleep_hrs, steps, water_liters, energy
FROM health_logs
WHERE log_date ` + dateBetween + `
ORDER BY log_date DESC;
`
	rows, err := r.db.QueryContext(ctx, q, w.Start, w.End)
	if err != nil {
		return nil, fmt.Errorf("query health_logs: %w", err)
	}
	defer rows.Close()

	var out []records.HealthLog
	for rows.Next() {
		var l records.HealthLog
		var sleep, steps, water, energy sql.NullFloat64
		if err := rows.Scan(&l.ID, &l.Date, &sleep, &steps, &water, &energy); err != nil {
			return nil, err
		}
		l.SleepHrs = floatPtr(sleep)
		l.Steps = floatPtr(steps)
		l.WaterLiters = floatPtr(water)
		l.Energy1to10 = floatPtr(energy)
		out = append(out, l)
	}
	return out, rows.Err()
}

// ListDayPlans 取視窗內的作息計畫；未計算達成度時 Compliance 為 nil。
func (r *Repo) ListDayPlans(ctx context.Context, w timewindow.Window) ([]records.DayPlan, error) {
	q := `
SELECT id, to_char(plan_date, 'YYYY-MM-DD'), COALESCE(day_type_id::text, ''), routine_checks,
       checklist_pct, steps_met, wake_met, sleep_met
FROM day_plans
WHERE plan_date ` + dateBetween + `
ORDER BY plan_date DESC;
`
	rows, err := r.db.QueryContext(ctx, q, w.Start, w.End)
	if err != nil {
		return nil, fmt.Errorf("query day_plans: %w", err)
	}
	defer rows.Close()

	var out []records.DayPlan
	for rows.Next() {
		var p records.DayPlan
		var checks []byte
		var pct sql.NullFloat64
		var stepsMet, wakeMet, sleepMet sql.NullBool
		if err := rows.Scan(&p.ID, &p.Date, &p.DayTypeID, &checks, &pct, &stepsMet, &wakeMet, &sleepMet); err != nil {
			return nil, err
		}
		if err := decodeJSON(checks, &p.RoutineChecks); err != nil {
			return nil, fmt.Errorf("decode routine_checks for %s: %w", p.Date, err)
		}
		if pct.Valid {
			p.Compliance = &records.Compliance{
				ChecklistPct: pct.Float64,
				StepsMet:     stepsMet.Bool,
				WakeMet:      wakeMet.Bool,
				SleepMet:     sleepMet.Bool,
			}
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ListDayTypes 取全部作息範本。
func (r *Repo) ListDayTypes(ctx context.Context) ([]records.DayType, error) {
	const q = `
SELECT id, name, COALESCE(wake_time, ''), COALESCE(sleep_time, ''), step_goal, checklist
FROM day_types
ORDER BY created_at;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query day_types: %w", err)
	}
	defer rows.Close()

	var out []records.DayType
	for rows.Next() {
		var d records.DayType
		var checklist []byte
		if err := rows.Scan(&d.ID, &d.Name, &d.WakeTime, &d.SleepTime, &d.StepGoal, &checklist); err != nil {
			return nil, err
		}
		if err := decodeJSON(checklist, &d.Checklist); err != nil {
			return nil, fmt.Errorf("decode checklist for %s: %w", d.ID, err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ListSkillLogs 取視窗內的技能紀錄，新到舊。
func (r *Repo) ListSkillLogs(ctx context.Context, w timewindow.Window) ([]records.SkillLog, error) {
	q := `
SELECT id, to_char(log_date, 'YYYY-MM-DD'), category, time_spent, difficulty, rating, notes
FROM skill_logs
WHERE log_date ` + dateBetween + `
ORDER BY log_date DESC, created_at DESC;
`
	rows, err := r.db.QueryContext(ctx, q, w.Start, w.End)
	if err != nil {
		return nil, fmt.Errorf("query skill_logs: %w", err)
	}
	defer rows.Close()

	var out []records.SkillLog
	for rows.Next() {
		var l records.SkillLog
		var category, difficulty string
		var rating sql.NullFloat64
		if err := rows.Scan(&l.ID, &l.Date, &category, &l.TimeSpent, &difficulty, &rating, &l.Notes); err != nil {
			return nil, err
		}
		l.Category = records.SkillCategory(category)
		l.Difficulty = records.Difficulty(difficulty)
		l.Rating = floatPtr(rating)
		out = append(out, l)
	}
	return out, rows.Err()
}

// ListJobApplications 取全部求職申請，依申請日新到舊。
func (r *Repo) ListJobApplications(ctx context.Context) ([]records.JobApplication, error) {
	const q = `
SELECT id, company, role, status, COALESCE(to_char(applied_date, 'YYYY-MM-DD'), ''), interviews
FROM job_applications
ORDER BY applied_date DESC NULLS LAST, created_at DESC;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query job_applications: %w", err)
	}
	defer rows.Close()

	var out []records.JobApplication
	for rows.Next() {
		var a records.JobApplication
		var status string
		var interviews []byte
		if err := rows.Scan(&a.ID, &a.Company, &a.Role, &status, &a.AppliedDate, &interviews); err != nil {
			return nil, err
		}
		a.Status = records.JobStatus(status)
		a.Interviews = []records.Interview{}
		if err := decodeJSON(interviews, &a.Interviews); err != nil {
			return nil, fmt.Errorf("decode interviews for %s: %w", a.ID, err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// GetFinanceSetup 未設定時回傳 (nil, nil)。
func (r *Repo) GetFinanceSetup(ctx context.Context) (*records.FinanceSetup, error) {
	const q = `
SELECT current_balance, income_sources, emis, living_expenses, investments
FROM finance_setup
WHERE id = 1;
`
	var balance sql.NullFloat64
	var income, emis, expenses, investments []byte
	err := r.db.QueryRowContext(ctx, q).Scan(&balance, &income, &emis, &expenses, &investments)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query finance_setup: %w", err)
	}

	setup := &records.FinanceSetup{CurrentBalance: floatPtr(balance)}
	for _, col := range []struct {
		name string
		raw  []byte
		dst  *[]records.FinanceItem
	}{
		{"income_sources", income, &setup.IncomeSources},
		{"emis", emis, &setup.EMIs},
		{"living_expenses", expenses, &setup.LivingExpenses},
		{"investments", investments, &setup.Investments},
	} {
		if err := decodeJSON(col.raw, col.dst); err != nil {
			return nil, fmt.Errorf("decode %s: %w", col.name, err)
		}
	}
	return setup, nil
}

// ListTransactions 取視窗內最近 limit 筆交易；limit <= 0 表示不限。
func (r *Repo) ListTransactions(ctx context.Context, w timewindow.Window, limit int) ([]records.Transaction, error) {
	if limit < 0 {
		limit = 0
	}
	q := `
SELECT id, to_char(tx_date, 'YYYY-MM-DD'), tx_type, amount, description
FROM transactions
WHERE tx_date ` + dateBetween + `
ORDER BY tx_date DESC, created_at DESC
LIMIT NULLIF($3::int, 0);
`
	rows, err := r.db.QueryContext(ctx, q, w.Start, w.End, limit)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var out []records.Transaction
	for rows.Next() {
		var tx records.Transaction
		var typ string
		if err := rows.Scan(&tx.ID, &tx.Date, &typ, &tx.Amount, &tx.Description); err != nil {
			return nil, err
		}
		tx.Type = records.TxType(typ)
		out = append(out, tx)
	}
	return out, rows.Err()
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return records.Float(v.Float64)
}

// decodeJSON 將 jsonb 欄位解碼；NULL 或空值保留 dst 原值。
func decodeJSON(raw []byte, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}
