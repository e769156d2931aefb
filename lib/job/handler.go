package jobhandler

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"talentdesk-backend/db"
	jobstore "talentdesk-backend/lib/job/store"
	"talentdesk-backend/lib/utils/helpers"
	"talentdesk-backend/models"
	jobapimodels "talentdesk-backend/models/api/job"
	dbmodels "talentdesk-backend/models/db"
)

type Provider interface {
	Create(companyID, userName string, data jobapimodels.JobData) (id string, err error)
	GetByID(companyID, id string) (item jobapimodels.JobView, err error)
	Update(companyID, id string, data jobapimodels.JobData) error
	ChangeStatus(companyID, id string, status models.JobStatus) error
	Delete(companyID, id string) error
	List(companyID string, filter jobapimodels.JobFilter) (list []jobapimodels.JobView, rowCount int64, err error)
	SetAttachment(companyID, id string, kind dbmodels.AttachmentKind, fileID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: jobstore.NewInstance(db.DB),
	}
}

type impl struct {
	store jobstore.Provider
}

// GenerateJobCode produces the JOB-<unix-ms> posting code.
func GenerateJobCode() string {
	return fmt.Sprintf("JOB-%d", time.Now().UnixMilli())
}

func (i impl) Create(companyID, userName string, data jobapimodels.JobData) (id string, err error) {
	logger := log.WithField("company_id", companyID)
	rec := dbmodels.Job{
		BaseCompanyModel: dbmodels.BaseCompanyModel{
			CompanyID: companyID,
		},
		JobCode:     GenerateJobCode(),
		Title:       data.Title,
		Department:  data.Department,
		Location:    data.Location,
		Vacancy:     data.Vacancy,
		Description: data.Description,
		SalaryMin:   data.SalaryMin,
		SalaryMax:   data.SalaryMax,
		Status:      models.JobStatusOpen,
		InitiatedBy: userName,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("job create error")
		return "", err
	}
	logger.WithField("rec_id", id).Info("job created")
	return id, nil
}

func (i impl) GetByID(companyID, id string) (item jobapimodels.JobView, err error) {
	rec, err := i.getRec(companyID, id)
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	return jobapimodels.JobConvert(*rec), nil
}

func (i impl) Update(companyID, id string, data jobapimodels.JobData) error {
	logger := log.WithField("company_id", companyID).
		WithField("rec_id", id)
	_, err := i.getRec(companyID, id)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"title":       data.Title,
		"department":  data.Department,
		"location":    data.Location,
		"vacancy":     data.Vacancy,
		"description": data.Description,
		"salary_min":  data.SalaryMin,
		"salary_max":  data.SalaryMax,
	}
	err = i.store.Update(companyID, id, updMap)
	if err != nil {
		logger.WithError(err).Error("job update error")
		return err
	}
	logger.Info("job updated")
	return nil
}

func (i impl) ChangeStatus(companyID, id string, status models.JobStatus) error {
	logger := log.WithField("company_id", companyID).
		WithField("rec_id", id).
		WithField("new_status", status)
	rec, err := i.getRec(companyID, id)
	if err != nil {
		return err
	}
	if rec.Status == status {
		return nil
	}
	if !rec.Status.IsAllowChange(status) {
		return helpers.ValidationErrf("status change from %v to %v is not allowed", rec.Status, status)
	}
	err = i.store.Update(companyID, id, map[string]interface{}{"status": status})
	if err != nil {
		logger.WithError(err).Error("job status change error")
		return err
	}
	logger.Info("job status changed")
	return nil
}

func (i impl) Delete(companyID, id string) error {
	logger := log.WithField("company_id", companyID).
		WithField("rec_id", id)
	_, err := i.getRec(companyID, id)
	if err != nil {
		return err
	}
	// candidates linked by job_code are left in place (no cascade)
	err = i.store.Delete(companyID, id)
	if err != nil {
		logger.WithError(err).Error("job delete error")
		return err
	}
	logger.Info("job deleted")
	return nil
}

func (i impl) List(companyID string, filter jobapimodels.JobFilter) (list []jobapimodels.JobView, rowCount int64, err error) {
	logger := log.WithField("company_id", companyID)
	rowCount, err = i.store.ListCount(companyID, filter)
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []jobapimodels.JobView{}, rowCount, nil
	}
	recList, err := i.store.List(companyID, filter)
	if err != nil {
		logger.WithError(err).Error("job list error")
		return nil, 0, err
	}
	result := make([]jobapimodels.JobView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, jobapimodels.JobConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) SetAttachment(companyID, id string, kind dbmodels.AttachmentKind, fileID string) error {
	_, err := i.getRec(companyID, id)
	if err != nil {
		return err
	}
	var column string
	switch kind {
	case dbmodels.AttachmentJobDesc:
		column = "jd_file_id"
	case dbmodels.AttachmentSupportingDoc:
		column = "supporting_doc_id"
	default:
		return helpers.ValidationErrf("attachment kind %v is not allowed for a job", kind)
	}
	return i.store.Update(companyID, id, map[string]interface{}{column: fileID})
}

func (i impl) getRec(companyID, id string) (*dbmodels.Job, error) {
	rec, err := i.store.GetByID(companyID, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, helpers.NotFoundErrf("job not found")
	}
	return rec, nil
}
