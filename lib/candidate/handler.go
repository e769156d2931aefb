package candidatehandler

import (
	"bytes"
	"time"

	log "github.com/sirupsen/logrus"
	"talentdesk-backend/db"
	candidatestore "talentdesk-backend/lib/candidate/store"
	xlsexport "talentdesk-backend/lib/export/xls"
	jobstore "talentdesk-backend/lib/job/store"
	"talentdesk-backend/lib/utils/helpers"
	initchecker "talentdesk-backend/lib/utils/init-checker"
	"talentdesk-backend/models"
	candidateapimodels "talentdesk-backend/models/api/candidate"
	dbmodels "talentdesk-backend/models/db"
)

type Provider interface {
	Create(companyID, userName string, data candidateapimodels.CandidateData) (id string, err error)
	GetByID(companyID, id string) (item candidateapimodels.CandidateView, err error)
	Update(companyID, id string, data candidateapimodels.CandidateData) error
	ChangeStatus(companyID, id string, data candidateapimodels.CandidateStatusData) error
	Delete(companyID, id string) error
	List(companyID string, filter candidateapimodels.CandidateFilter) (list []candidateapimodels.CandidateView, rowCount int64, err error)
	SetResume(companyID, id, fileID string) error
	GetResumeFileID(companyID, id string) (fileID string, err error)
	ExportToXls(companyID string) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:     candidatestore.NewInstance(db.DB),
		jobStore:  jobstore.NewInstance(db.DB),
		xlsExport: xlsexport.Instance,
	}
	initchecker.CheckInit(
		"xlsExport", instance.xlsExport,
	)
	Instance = instance
}

type impl struct {
	store     candidatestore.Provider
	jobStore  jobstore.Provider
	xlsExport xlsexport.Provider
}

func (i impl) Create(companyID, userName string, data candidateapimodels.CandidateData) (id string, err error) {
	logger := log.WithField("company_id", companyID)
	// the job must exist at application time; it may be deleted later
	job, err := i.jobStore.GetByCode(companyID, data.JobCode)
	if err != nil {
		return "", err
	}
	if job == nil {
		return "", helpers.ValidationErrf("job %s not found", data.JobCode)
	}
	rec := dbmodels.Candidate{
		BaseCompanyModel: dbmodels.BaseCompanyModel{
			CompanyID: companyID,
		},
		JobCode:     data.JobCode,
		Name:        data.Name,
		Email:       data.Email,
		Phone:       data.Phone,
		Position:    data.Position,
		Department:  data.Department,
		Source:      data.Source,
		CurrentCTC:  data.CurrentCTC,
		ExpectedCTC: data.ExpectedCTC,
		Status:      models.CandidateStatusApplied,
		InitiatedBy: userName,
	}
	if rec.Position == "" {
		rec.Position = job.Title
	}
	if rec.Department == "" {
		rec.Department = job.Department
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("candidate create error")
		return "", err
	}
	logger.WithField("rec_id", id).Info("candidate created")
	return id, nil
}

func (i impl) GetByID(companyID, id string) (item candidateapimodels.CandidateView, err error) {
	rec, err := i.getRec(companyID, id)
	if err != nil {
		return candidateapimodels.CandidateView{}, err
	}
	return candidateapimodels.CandidateConvert(*rec), nil
}

func (i impl) Update(companyID, id string, data candidateapimodels.CandidateData) error {
	logger := log.WithField("company_id", companyID).
		WithField("rec_id", id)
	_, err := i.getRec(companyID, id)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"name":         data.Name,
		"email":        data.Email,
		"phone":        data.Phone,
		"position":     data.Position,
		"department":   data.Department,
		"source":       data.Source,
		"current_ctc":  data.CurrentCTC,
		"expected_ctc": data.ExpectedCTC,
	}
	err = i.store.Update(companyID, id, updMap)
	if err != nil {
		logger.WithError(err).Error("candidate update error")
		return err
	}
	logger.Info("candidate updated")
	return nil
}

// ChangeStatus moves the candidate along the pipeline and records the
// interviewed/hired dates as date-only values.
func (i impl) ChangeStatus(companyID, id string, data candidateapimodels.CandidateStatusData) error {
	logger := log.WithField("company_id", companyID).
		WithField("rec_id", id).
		WithField("new_status", data.Status)
	rec, err := i.getRec(companyID, id)
	if err != nil {
		return err
	}
	if rec.Status == data.Status {
		return nil
	}
	if !rec.Status.IsAllowChange(data.Status) {
		return helpers.ValidationErrf("status change from %v to %v is not allowed", rec.Status, data.Status)
	}
	when := time.Now()
	if data.Date != "" {
		when, err = helpers.ParseDateOnly(data.Date)
		if err != nil {
			return helpers.ValidationErrf("date must be in YYYY-MM-DD format")
		}
	}
	updMap := map[string]interface{}{
		"status": data.Status,
	}
	switch data.Status {
	case models.CandidateStatusInterviewed:
		updMap["interviewed_date"] = when
	case models.CandidateStatusHired:
		updMap["hired_date"] = when
	}
	err = i.store.Update(companyID, id, updMap)
	if err != nil {
		logger.WithError(err).Error("candidate status change error")
		return err
	}
	logger.Info("candidate status changed")
	return nil
}

func (i impl) Delete(companyID, id string) error {
	logger := log.WithField("company_id", companyID).
		WithField("rec_id", id)
	_, err := i.getRec(companyID, id)
	if err != nil {
		return err
	}
	err = i.store.Delete(companyID, id)
	if err != nil {
		logger.WithError(err).Error("candidate delete error")
		return err
	}
	logger.Info("candidate deleted")
	return nil
}

func (i impl) List(companyID string, filter candidateapimodels.CandidateFilter) (list []candidateapimodels.CandidateView, rowCount int64, err error) {
	logger := log.WithField("company_id", companyID)
	rowCount, err = i.store.ListCount(companyID, filter)
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []candidateapimodels.CandidateView{}, rowCount, nil
	}
	recList, err := i.store.List(companyID, filter)
	if err != nil {
		logger.WithError(err).Error("candidate list error")
		return nil, 0, err
	}
	result := make([]candidateapimodels.CandidateView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, candidateapimodels.CandidateWithJobConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) SetResume(companyID, id, fileID string) error {
	_, err := i.getRec(companyID, id)
	if err != nil {
		return err
	}
	return i.store.Update(companyID, id, map[string]interface{}{"resume_file_id": fileID})
}

func (i impl) GetResumeFileID(companyID, id string) (fileID string, err error) {
	rec, err := i.getRec(companyID, id)
	if err != nil {
		return "", err
	}
	if rec.ResumeFileID == "" {
		return "", helpers.NotFoundErrf("candidate has no resume")
	}
	return rec.ResumeFileID, nil
}

func (i impl) ExportToXls(companyID string) (*bytes.Buffer, error) {
	list, err := i.store.ListAllWithJob(companyID)
	if err != nil {
		log.WithField("company_id", companyID).
			WithError(err).
			Error("candidate export error")
		return nil, err
	}
	return i.xlsExport.ExportCandidateList(list)
}

func (i impl) getRec(companyID, id string) (*dbmodels.Candidate, error) {
	rec, err := i.store.GetByID(companyID, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, helpers.NotFoundErrf("candidate not found")
	}
	return rec, nil
}
