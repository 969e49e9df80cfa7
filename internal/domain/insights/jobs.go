package insights

import "life-dashboard/internal/domain/records"

// JobsInsight 求職漏斗摘要，涵蓋全部申請（不受時間視窗限制）。
type JobsInsight struct {
	ActiveApplications int `json:"activeApplications"`
	InInterview        int `json:"inInterview"`
	Offers             int `json:"offers"`
	TotalInterviews    int `json:"totalInterviews"`
	TotalApplications  int `json:"totalApplications"`
}

// Jobs 統計進行中、面試中、錄取數與面試總數。
func Jobs(apps []records.JobApplication) JobsInsight {
	out := JobsInsight{TotalApplications: len(apps)}
	for _, a := range apps {
		if !a.Status.Closed() {
			out.ActiveApplications++
		}
		switch a.Status {
		case records.JobInterview:
			out.InInterview++
		case records.JobOffer:
			out.Offers++
		}
		out.TotalInterviews += len(a.Interviews)
	}
	return out
}
