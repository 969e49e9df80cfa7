package memory

import (
	"fmt"
	"time"

	"life-dashboard/internal/domain/records"
	"life-dashboard/internal/domain/timewindow"
)

// SeedDemo 以 today 為基準寫入約一個月的示範資料，供本機開發使用。
// 資料是固定的，重複呼叫會以同日期覆蓋健康與作息紀錄。
func (s *Store) SeedDemo(today time.Time) {
	day := func(offset int) string {
		return today.AddDate(0, 0, -offset).Format(timewindow.DateLayout)
	}

	workday := s.AddDayType(records.DayType{
		Name:      "Workday",
		WakeTime:  "07:00",
		SleepTime: "23:00",
		StepGoal:  8000,
		Checklist: []string{"workout", "read", "plan-tomorrow"},
	})

	for i := 0; i < 30; i++ {
		s.PutHealthLog(records.HealthLog{
			Date:        day(i),
			SleepHrs:    records.Float(6.5 + float64(i%4)*0.5),
			Steps:       records.Float(float64(6000 + (i%5)*1000)),
			WaterLiters: records.Float(2 + float64(i%3)*0.5),
			Energy1to10: records.Float(float64(6 + i%4)),
		})

		checks := []records.RoutineCheck{
			{Key: "workout", Checked: i%2 == 0},
			{Key: "read", Checked: i%3 != 0},
			{Key: "plan-tomorrow", Checked: true},
		}
		done := 0
		for _, c := range checks {
			if c.Checked {
				done++
			}
		}
		s.PutDayPlan(records.DayPlan{
			Date:          day(i),
			DayTypeID:     workday.ID,
			RoutineChecks: checks,
			Compliance: &records.Compliance{
				ChecklistPct: float64(done) / float64(len(checks)) * 100,
				StepsMet:     6000+(i%5)*1000 >= workday.StepGoal,
				WakeMet:      i%3 != 1,
				SleepMet:     i%4 != 0,
			},
		})
	}

	categories := []records.SkillCategory{
		records.CategoryBackend, records.CategoryFrontend, records.CategoryAlgorithms,
		records.CategorySystemDesign, records.CategoryDevOps, records.CategoryDatabase,
	}
	difficulties := []records.Difficulty{
		records.DifficultyBeginner, records.DifficultyIntermediate, records.DifficultyAdvanced,
	}
	for i := 0; i < 20; i++ {
		s.AddSkillLog(records.SkillLog{
			Date:       day(i * 2),
			Category:   categories[i%len(categories)],
			TimeSpent:  float64(30 + (i%4)*15),
			Difficulty: difficulties[i%len(difficulties)],
			Rating:     records.Float(float64(3 + i%3)),
		})
	}

	statuses := []records.JobStatus{
		records.JobApplied, records.JobScreening, records.JobInterview,
		records.JobRejected, records.JobApplied, records.JobOffer,
	}
	for i, st := range statuses {
		app := records.JobApplication{
			Company:     fmt.Sprintf("Company %c", 'A'+i),
			Role:        "Backend Engineer",
			Status:      st,
			AppliedDate: day(i * 4),
			Interviews:  []records.Interview{},
		}
		if st == records.JobInterview || st == records.JobOffer {
			app.Interviews = append(app.Interviews, records.Interview{Date: day(i*4 - 2), Round: "Technical"})
		}
		s.AddJobApplication(app)
	}

	s.SetFinanceSetup(&records.FinanceSetup{
		CurrentBalance: records.Float(120000),
		IncomeSources:  []records.FinanceItem{{Name: "Salary", Amount: 85000}},
		EMIs: []records.FinanceItem{
			{Name: "Home Loan", Amount: 18000},
			{Name: "Car Loan", Amount: 7000},
		},
		LivingExpenses: []records.FinanceItem{{Name: "Rent", Amount: 20000}, {Name: "Groceries", Amount: 8000}},
		Investments:    []records.FinanceItem{{Name: "Index Fund", Amount: 10000}},
	})

	for i := 0; i < 15; i++ {
		tx := records.Transaction{
			Date:        day(i),
			Type:        records.TxDebit,
			Amount:      float64(500 + i*100),
			Description: "Daily spend",
		}
		if i%5 == 0 {
			tx.Type = records.TxCredit
			tx.Amount = 3000
			tx.Description = "Refund"
		}
		s.AddTransaction(tx)
	}
}
