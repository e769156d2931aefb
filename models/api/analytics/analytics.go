package analyticsapimodels

import (
	"talentdesk-backend/models"
)

// Summary is the dashboard snapshot computed server side over the full
// tenant data set.
type Summary struct {
	PipelineCounts      map[models.CandidateStatus]int64 `json:"pipeline_counts"`
	OpenJobs            int64                            `json:"open_jobs"`
	PendingRequisitions int64                            `json:"pending_requisitions"`
	Headcount           map[models.EmployeeStatus]int64  `json:"headcount"`
	AvgTimeToHireDays   float64                          `json:"avg_time_to_hire_days"`
	HiredTotal          int64                            `json:"hired_total"`
	OfferedTotal        int64                            `json:"offered_total"`
	OfferAcceptanceRate float64                          `json:"offer_acceptance_rate"`
	AnomalousHires      int64                            `json:"anomalous_hires"` // hired_date before creation, excluded from averages
}
