package analyticshandler

import (
	"bytes"

	log "github.com/sirupsen/logrus"
	"talentdesk-backend/db"
	candidatestore "talentdesk-backend/lib/candidate/store"
	employeestore "talentdesk-backend/lib/employee/store"
	xlsexport "talentdesk-backend/lib/export/xls"
	jobstore "talentdesk-backend/lib/job/store"
	requisitionstore "talentdesk-backend/lib/requisition/store"
	initchecker "talentdesk-backend/lib/utils/init-checker"
	"talentdesk-backend/models"
	analyticsapimodels "talentdesk-backend/models/api/analytics"
	jobapimodels "talentdesk-backend/models/api/job"
)

type Provider interface {
	Summary(companyID string) (analyticsapimodels.Summary, error)
	ExportToXls(companyID string) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		candidateStore:   candidatestore.NewInstance(db.DB),
		jobStore:         jobstore.NewInstance(db.DB),
		requisitionStore: requisitionstore.NewInstance(db.DB),
		employeeStore:    employeestore.NewInstance(db.DB),
		xlsExport:        xlsexport.Instance,
	}
	initchecker.CheckInit(
		"xlsExport", instance.xlsExport,
	)
	Instance = instance
}

type impl struct {
	candidateStore   candidatestore.Provider
	jobStore         jobstore.Provider
	requisitionStore requisitionstore.Provider
	employeeStore    employeestore.Provider
	xlsExport        xlsexport.Provider
}

// Summary computes the dashboard snapshot in a handful of aggregate queries
// plus one scan over the candidate list for the hire-time average.
func (i impl) Summary(companyID string) (analyticsapimodels.Summary, error) {
	logger := log.WithField("company_id", companyID)
	summary := analyticsapimodels.Summary{
		PipelineCounts: map[models.CandidateStatus]int64{},
		Headcount:      map[models.EmployeeStatus]int64{},
	}

	pipeline, err := i.candidateStore.CountByStatus(companyID)
	if err != nil {
		logger.WithError(err).Error("pipeline counts error")
		return summary, err
	}
	for _, status := range models.CandidateStatusList() {
		summary.PipelineCounts[status] = pipeline[string(status)]
	}

	summary.OpenJobs, err = i.jobStore.ListCount(companyID, jobapimodels.JobFilter{Status: models.JobStatusOpen})
	if err != nil {
		logger.WithError(err).Error("open jobs count error")
		return summary, err
	}

	summary.PendingRequisitions, err = i.requisitionStore.PendingCount(companyID)
	if err != nil {
		logger.WithError(err).Error("pending requisitions count error")
		return summary, err
	}

	headcount, err := i.employeeStore.CountByStatus(companyID)
	if err != nil {
		logger.WithError(err).Error("headcount error")
		return summary, err
	}
	for _, status := range models.EmployeeStatusList() {
		summary.Headcount[status] = headcount[string(status)]
	}

	candidates, err := i.candidateStore.ListAll(companyID)
	if err != nil {
		logger.WithError(err).Error("candidate scan error")
		return summary, err
	}
	totalDays := float64(0)
	for _, rec := range candidates {
		switch rec.Status {
		case models.CandidateStatusHired:
			if rec.HiredDate == nil {
				continue
			}
			days := rec.HiredDate.Sub(rec.CreatedAt).Hours() / 24
			if days < 0 {
				// hired date predates the application record; keep it out
				// of the average so one bad row does not skew the metric
				summary.AnomalousHires++
				logger.WithField("rec_id", rec.ID).Warn("hired date before application date")
				continue
			}
			summary.HiredTotal++
			totalDays += days
		case models.CandidateStatusOffered:
			summary.OfferedTotal++
		}
	}
	if summary.HiredTotal > 0 {
		summary.AvgTimeToHireDays = totalDays / float64(summary.HiredTotal)
	}
	if summary.OfferedTotal+summary.HiredTotal > 0 {
		summary.OfferAcceptanceRate = float64(summary.HiredTotal) / float64(summary.OfferedTotal+summary.HiredTotal)
	}
	return summary, nil
}

func (i impl) ExportToXls(companyID string) (*bytes.Buffer, error) {
	summary, err := i.Summary(companyID)
	if err != nil {
		return nil, err
	}
	return i.xlsExport.ExportAnalyticsSummary(summary)
}
