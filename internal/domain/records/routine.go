package records

// DayType 為作息範本，只用於顯示，不參與計分。
type DayType struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	WakeTime  string   `json:"wakeTime,omitempty"`
	SleepTime string   `json:"sleepTime,omitempty"`
	StepGoal  int      `json:"stepGoal,omitempty"`
	Checklist []string `json:"checklist,omitempty"`
}

// RoutineCheck 記錄單一檢查項目的完成狀態。
type RoutineCheck struct {
	Key       string `json:"key"`
	Checked   bool   `json:"checked"`
	Timestamp string `json:"timestamp,omitempty"`
}

// Compliance 為當日計畫相對於 DayType 目標的達成度。
type Compliance struct {
	ChecklistPct float64 `json:"checklistPct"`
	StepsMet     bool    `json:"stepsMet"`
	WakeMet      bool    `json:"wakeMet"`
	SleepMet     bool    `json:"sleepMet"`
}

// DayPlan 單日作息計畫，date 為自然鍵。
type DayPlan struct {
	ID            string         `json:"id,omitempty"`
	Date          string         `json:"date"`
	DayTypeID     string         `json:"dayTypeId"`
	RoutineChecks []RoutineCheck `json:"routineChecks,omitempty"`
	Compliance    *Compliance    `json:"compliance,omitempty"`
}
