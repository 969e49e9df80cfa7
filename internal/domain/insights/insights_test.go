package insights

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"life-dashboard/internal/domain/records"
)

func fullHealthLog(date string) records.HealthLog {
	return records.HealthLog{
		Date:        date,
		SleepHrs:    records.Float(8),
		Steps:       records.Float(10000),
		WaterLiters: records.Float(3),
		Energy1to10: records.Float(10),
	}
}

func TestHealth_PerfectWeek(t *testing.T) {
	logs := make([]records.HealthLog, 0, 7)
	for i := 1; i <= 7; i++ {
		logs = append(logs, fullHealthLog(fmt.Sprintf("2025-03-%02d", i)))
	}

	h := Health(logs, DefaultOptions())
	assert.Equal(t, 8.0, h.AvgSleep)
	assert.Equal(t, 10000.0, h.AvgSteps)
	assert.Equal(t, 3.0, h.AvgWater)
	assert.Equal(t, 10.0, h.AvgEnergy)
	assert.Equal(t, 7, h.TotalLogs)
	assert.Equal(t, 100.0, HealthScore(h))
}

func TestHealth_TruncatesToMostRecent(t *testing.T) {
	var logs []records.HealthLog
	// ten older empty days followed by seven full ones, supplied oldest first
	for i := 1; i <= 10; i++ {
		logs = append(logs, records.HealthLog{Date: fmt.Sprintf("2025-02-%02d", i)})
	}
	for i := 1; i <= 7; i++ {
		logs = append(logs, fullHealthLog(fmt.Sprintf("2025-03-%02d", i)))
	}

	h := Health(logs, DefaultOptions())
	assert.Equal(t, 7, h.TotalLogs)
	assert.Equal(t, 8.0, h.AvgSleep, "only the latest seven logs are averaged")

	wide := Health(logs, Options{RecentLimit: 17})
	assert.Equal(t, 17, wide.TotalLogs)
	assert.InDelta(t, 56.0/17, wide.AvgSleep, 1e-9)
}

func TestHealth_MissingFieldsCountAsZero(t *testing.T) {
	logs := []records.HealthLog{
		{Date: "2025-03-02", SleepHrs: records.Float(6)},
		{Date: "2025-03-01", Steps: records.Float(4000)},
	}
	h := Health(logs, DefaultOptions())
	assert.Equal(t, 3.0, h.AvgSleep)
	assert.Equal(t, 2000.0, h.AvgSteps)
	assert.Equal(t, 0.0, h.AvgWater)
}

func TestRoutine(t *testing.T) {
	plans := []records.DayPlan{
		{Date: "2025-03-03", Compliance: &records.Compliance{ChecklistPct: 100, StepsMet: true, WakeMet: true}},
		{Date: "2025-03-02", Compliance: &records.Compliance{ChecklistPct: 50, SleepMet: true}},
		{Date: "2025-03-01"},
		{Date: "2025-03-04", Compliance: &records.Compliance{ChecklistPct: 90, StepsMet: true}},
	}
	r := Routine(plans, DefaultOptions())
	assert.Equal(t, 4, r.TotalPlans)
	assert.Equal(t, 60.0, r.AvgCompliance)
	assert.Equal(t, 0.5, r.StepsCompliance)
	assert.Equal(t, 0.25, r.WakeCompliance)
	assert.Equal(t, 0.25, r.SleepCompliance)
}

func TestRoutine_NeverConsidersMoreThanLimit(t *testing.T) {
	var plans []records.DayPlan
	for i := 1; i <= 12; i++ {
		pct := 0.0
		if i > 5 {
			pct = 70
		}
		plans = append(plans, records.DayPlan{Date: fmt.Sprintf("2025-03-%02d", i), Compliance: &records.Compliance{ChecklistPct: pct}})
	}
	r := Routine(plans, DefaultOptions())
	assert.Equal(t, 7, r.TotalPlans)
	assert.Equal(t, 70.0, r.AvgCompliance)
}

func TestSkills(t *testing.T) {
	logs := []records.SkillLog{
		{Category: records.CategoryBackend, TimeSpent: 60, Difficulty: records.DifficultyAdvanced, Rating: records.Float(5)},
		{Category: records.CategoryBackend, TimeSpent: 30, Difficulty: records.DifficultyBeginner, Rating: records.Float(3)},
		{Category: records.CategorySoftSkills, TimeSpent: 45, Difficulty: records.DifficultyIntermediate},
	}
	s := Skills(logs)
	assert.Equal(t, 135.0, s.TotalTime)
	assert.Equal(t, 2, s.Categories)
	assert.InDelta(t, 8.0/3, s.AvgRating, 1e-9, "unrated sessions count as zero")
	assert.Equal(t, DifficultyBreakdown{Beginner: 1, Intermediate: 1, Advanced: 1}, s.DifficultyBreakdown)
	assert.Equal(t, 3, s.TotalSessions)
}

func TestJobs(t *testing.T) {
	one := []records.Interview{{Round: "phone"}}
	apps := []records.JobApplication{
		{Status: records.JobInterview, Interviews: one},
		{Status: records.JobInterview, Interviews: one},
		{Status: records.JobOffer},
		{Status: records.JobApplied},
		{Status: records.JobApplied},
	}
	j := Jobs(apps)
	// 只有 rejected、withdrawn 不算進行中，offer 仍算，所以是 5 而不是 4。
	assert.Equal(t, 5, j.ActiveApplications, "no application is rejected or withdrawn")
	assert.Equal(t, 2, j.InInterview)
	assert.Equal(t, 1, j.Offers)
	assert.Equal(t, 2, j.TotalInterviews)
	assert.Equal(t, 5, j.TotalApplications)

	apps = append(apps, records.JobApplication{Status: records.JobRejected, Interviews: one}, records.JobApplication{Status: records.JobWithdrawn})
	j = Jobs(apps)
	assert.Equal(t, 5, j.ActiveApplications)
	assert.Equal(t, 3, j.TotalInterviews)
}

func TestFinance(t *testing.T) {
	t.Run("absent_setup", func(t *testing.T) {
		assert.Nil(t, Finance(nil, []records.Transaction{{Type: records.TxCredit, Amount: 10}}, DefaultOptions()))
	})

	t.Run("projection_and_recent", func(t *testing.T) {
		setup := &records.FinanceSetup{
			CurrentBalance: records.Float(1500.5),
			IncomeSources:  []records.FinanceItem{{Name: "salary", Amount: 5000.10}, {Name: "freelance", Amount: 0.20}},
			EMIs:           []records.FinanceItem{{Name: "car", Amount: 800}},
			LivingExpenses: []records.FinanceItem{{Name: "rent", Amount: 1200}},
		}
		var txs []records.Transaction
		for i := 0; i < 12; i++ {
			txs = append(txs, records.Transaction{Type: records.TxDebit, Amount: 10})
		}
		txs[0] = records.Transaction{Type: records.TxCredit, Amount: 250}

		f := Finance(setup, txs, DefaultOptions())
		require.NotNil(t, f)
		assert.Equal(t, 5000.30, f.TotalIncome)
		assert.Equal(t, 800.0, f.TotalEMIs)
		assert.Equal(t, 1200.0, f.TotalExpenses)
		assert.Equal(t, 0.0, f.TotalInvestments)
		assert.Equal(t, 3000.30, f.NetMonthly)
		assert.Equal(t, 250.0, f.RecentCredits)
		assert.Equal(t, 90.0, f.RecentDebits, "only the first ten transactions are sampled")
		assert.Equal(t, 1500.5, f.CurrentBalance)
	})

	t.Run("missing_balance_defaults_zero", func(t *testing.T) {
		f := Finance(&records.FinanceSetup{}, nil, DefaultOptions())
		require.NotNil(t, f)
		assert.Equal(t, FinanceInsight{}, *f)
	})
}

func TestScore(t *testing.T) {
	t.Run("all_empty_is_zero", func(t *testing.T) {
		opts := DefaultOptions()
		s := Score(Health(nil, opts), Routine(nil, opts), Skills(nil), Jobs(nil))
		assert.Equal(t, EfficiencyScore{}, s)
	})

	t.Run("weights", func(t *testing.T) {
		s := Score(
			HealthInsight{AvgSleep: 8, AvgSteps: 10000, AvgWater: 3, AvgEnergy: 10},
			RoutineInsight{AvgCompliance: 50},
			SkillsInsight{TotalTime: 150, AvgRating: 2.5},
			JobsInsight{ActiveApplications: 3, TotalInterviews: 2},
		)
		assert.Equal(t, 100.0, s.Health)
		assert.Equal(t, 50.0, s.Routine)
		assert.Equal(t, 50.0, s.Skills)
		assert.Equal(t, 40.0, s.Jobs)
		// 30 + 15 + 10 + 8
		assert.Equal(t, 63, s.Total)
	})

	t.Run("sub_scores_are_capped", func(t *testing.T) {
		s := Score(
			HealthInsight{AvgSleep: 24, AvgSteps: 90000, AvgWater: 20, AvgEnergy: 10},
			RoutineInsight{AvgCompliance: 400},
			SkillsInsight{TotalTime: 100000, AvgRating: 5},
			JobsInsight{ActiveApplications: 50, TotalInterviews: 80},
		)
		assert.Equal(t, 100, s.Total)
		assert.Equal(t, 100.0, s.Skills)
	})

	t.Run("malformed_negative_input_floors", func(t *testing.T) {
		s := Score(HealthInsight{AvgSleep: -50}, RoutineInsight{AvgCompliance: -10}, SkillsInsight{TotalTime: -600}, JobsInsight{})
		assert.Equal(t, 0, s.Total)
	})
}

func TestScore_AlwaysInRange(t *testing.T) {
	values := []float64{-1000, -1, 0, 0.5, 3, 7.9, 50, 99.4, 100, 250, 1e6}
	for _, a := range values {
		for _, b := range values {
			s := Score(
				HealthInsight{AvgSleep: a, AvgSteps: b * 100, AvgWater: a, AvgEnergy: b},
				RoutineInsight{AvgCompliance: b},
				SkillsInsight{TotalTime: a * 3, AvgRating: b / 20},
				JobsInsight{ActiveApplications: int(a), TotalInterviews: int(b)},
			)
			if s.Total < 0 || s.Total > 100 {
				t.Fatalf("score out of range: %d (a=%v b=%v)", s.Total, a, b)
			}
		}
	}
}
