package records

// JobStatus 求職申請狀態。
type JobStatus string

const (
	JobApplied   JobStatus = "applied"
	JobScreening JobStatus = "screening"
	JobInterview JobStatus = "interview"
	JobOffer     JobStatus = "offer"
	JobRejected  JobStatus = "rejected"
	JobWithdrawn JobStatus = "withdrawn"
)

// Closed 表示申請已結束（被拒或撤回）。
func (s JobStatus) Closed() bool {
	return s == JobRejected || s == JobWithdrawn
}

// Interview 面試紀錄；計分只看筆數。
type Interview struct {
	Date  string `json:"date,omitempty"`
	Round string `json:"round,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// JobApplication 單筆求職申請。
type JobApplication struct {
	ID          string      `json:"id,omitempty"`
	Company     string      `json:"company,omitempty"`
	Role        string      `json:"role,omitempty"`
	Status      JobStatus   `json:"status"`
	AppliedDate string      `json:"appliedDate"`
	Interviews  []Interview `json:"interviews"`
}
