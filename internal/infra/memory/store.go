package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"life-dashboard/internal/domain/records"
	"life-dashboard/internal/domain/timewindow"
)

// Store 為未設定資料庫時使用的記憶體資料來源，可併發讀寫。
type Store struct {
	mu           sync.RWMutex
	healthLogs   map[string]records.HealthLog // date -> log
	dayPlans     map[string]records.DayPlan   // date -> plan
	dayTypes     []records.DayType
	skillLogs    []records.SkillLog
	applications []records.JobApplication
	finance      *records.FinanceSetup
	transactions []records.Transaction
}

// NewStore 建立空的 Store。
func NewStore() *Store {
	return &Store{
		healthLogs: make(map[string]records.HealthLog),
		dayPlans:   make(map[string]records.DayPlan),
	}
}

func newID() string {
	return uuid.NewString()
}

// PutHealthLog 以日期為鍵寫入；同日重複寫入會覆蓋。
func (s *Store) PutHealthLog(l records.HealthLog) records.HealthLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	day := records.DayOf(l.Date)
	if prev, ok := s.healthLogs[day]; ok && l.ID == "" {
		l.ID = prev.ID
	}
	if l.ID == "" {
		l.ID = newID()
	}
	s.healthLogs[day] = l
	return l
}

// PutDayPlan 以日期為鍵寫入作息計畫。
func (s *Store) PutDayPlan(p records.DayPlan) records.DayPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	day := records.DayOf(p.Date)
	if prev, ok := s.dayPlans[day]; ok && p.ID == "" {
		p.ID = prev.ID
	}
	if p.ID == "" {
		p.ID = newID()
	}
	s.dayPlans[day] = p
	return p
}

// AddDayType 新增作息範本。
func (s *Store) AddDayType(d records.DayType) records.DayType {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d.ID == "" {
		d.ID = newID()
	}
	s.dayTypes = append(s.dayTypes, d)
	return d
}

// AddSkillLog 新增技能紀錄。
func (s *Store) AddSkillLog(l records.SkillLog) records.SkillLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l.ID == "" {
		l.ID = newID()
	}
	s.skillLogs = append(s.skillLogs, l)
	return l
}

// AddJobApplication 新增求職申請。
func (s *Store) AddJobApplication(a records.JobApplication) records.JobApplication {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == "" {
		a.ID = newID()
	}
	s.applications = append(s.applications, a)
	return a
}

// SetFinanceSetup 取代財務設定；傳入 nil 代表清除。
func (s *Store) SetFinanceSetup(setup *records.FinanceSetup) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if setup == nil {
		s.finance = nil
		return
	}
	cp := cloneSetup(*setup)
	s.finance = &cp
}

// AddTransaction 新增交易。
func (s *Store) AddTransaction(tx records.Transaction) records.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tx.ID == "" {
		tx.ID = newID()
	}
	s.transactions = append(s.transactions, tx)
	return tx
}

// ListHealthLogs 回傳視窗內的健康紀錄，新到舊。
func (s *Store) ListHealthLogs(_ context.Context, w timewindow.Window) ([]records.HealthLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]records.HealthLog, 0, len(s.healthLogs))
	for day, l := range s.healthLogs {
		if w.Contains(day) {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return records.DayOf(out[i].Date) > records.DayOf(out[j].Date) })
	return out, nil
}

// ListDayPlans 回傳視窗內的作息計畫，新到舊。
func (s *Store) ListDayPlans(_ context.Context, w timewindow.Window) ([]records.DayPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]records.DayPlan, 0, len(s.dayPlans))
	for day, p := range s.dayPlans {
		if w.Contains(day) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return records.DayOf(out[i].Date) > records.DayOf(out[j].Date) })
	return out, nil
}

// ListDayTypes 回傳全部作息範本。
func (s *Store) ListDayTypes(context.Context) ([]records.DayType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]records.DayType{}, s.dayTypes...), nil
}

// ListSkillLogs 回傳視窗內的技能紀錄，新到舊。
func (s *Store) ListSkillLogs(_ context.Context, w timewindow.Window) ([]records.SkillLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]records.SkillLog, 0, len(s.skillLogs))
	for _, l := range s.skillLogs {
		if w.Contains(records.DayOf(l.Date)) {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return records.DayOf(out[i].Date) > records.DayOf(out[j].Date) })
	return out, nil
}

// ListJobApplications 回傳全部申請，依申請日新到舊。
func (s *Store) ListJobApplications(context.Context) ([]records.JobApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append([]records.JobApplication{}, s.applications...)
	sort.SliceStable(out, func(i, j int) bool {
		return records.DayOf(out[i].AppliedDate) > records.DayOf(out[j].AppliedDate)
	})
	return out, nil
}

// GetFinanceSetup 未設定時回傳 (nil, nil)。
func (s *Store) GetFinanceSetup(context.Context) (*records.FinanceSetup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.finance == nil {
		return nil, nil
	}
	cp := cloneSetup(*s.finance)
	return &cp, nil
}

// ListTransactions 回傳視窗內最近的 limit 筆交易；limit <= 0 表示不限。
func (s *Store) ListTransactions(_ context.Context, w timewindow.Window, limit int) ([]records.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]records.Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		if w.Contains(records.DayOf(tx.Date)) {
			out = append(out, tx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func cloneSetup(in records.FinanceSetup) records.FinanceSetup {
	out := in
	if in.CurrentBalance != nil {
		out.CurrentBalance = records.Float(*in.CurrentBalance)
	}
	out.IncomeSources = append([]records.FinanceItem(nil), in.IncomeSources...)
	out.EMIs = append([]records.FinanceItem(nil), in.EMIs...)
	out.LivingExpenses = append([]records.FinanceItem(nil), in.LivingExpenses...)
	out.Investments = append([]records.FinanceItem(nil), in.Investments...)
	return out
}
