package jobapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"talentdesk-backend/models"
	apimodels "talentdesk-backend/models/api"
	dbmodels "talentdesk-backend/models/db"
)

type JobData struct {
	Title       string `json:"title"`       // position title
	Department  string `json:"department"`  // hiring department
	Location    string `json:"location"`    // work location
	Vacancy     int    `json:"vacancy"`     // number of open positions
	Description string `json:"description"` // job description
	SalaryMin   int    `json:"salary_min"`
	SalaryMax   int    `json:"salary_max"`
}

func (j JobData) Validate() error {
	if strings.TrimSpace(j.Title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(j.Department) == "" {
		return errors.New("department is required")
	}
	if j.Vacancy < 1 {
		return errors.New("vacancy must be at least 1")
	}
	if j.SalaryMin > 0 && j.SalaryMax > 0 && j.SalaryMax < j.SalaryMin {
		return errors.New("salary_max must not be less than salary_min")
	}
	return nil
}

type JobStatusData struct {
	Status models.JobStatus `json:"status"`
}

func (j JobStatusData) Validate() error {
	if !j.Status.Validate() {
		return errors.New("unknown job status")
	}
	return nil
}

type JobFilter struct {
	apimodels.Pagination
	Status models.JobStatus `json:"status"`
	Search string           `json:"search"` // title substring
}

func (f JobFilter) Validate() error {
	if f.Status != "" && !f.Status.Validate() {
		return errors.New("unknown status filter")
	}
	return nil
}

type JobView struct {
	JobData
	ID              string           `json:"id"`
	JobCode         string           `json:"job_code"`
	RequisitionCode string           `json:"requisition_code,omitempty"`
	Status          models.JobStatus `json:"status"`
	JdFileID        string           `json:"jd_file_id,omitempty"`
	SupportingDocID string           `json:"supporting_doc_id,omitempty"`
	InitiatedBy     string           `json:"initiated_by"`
	CreationDate    time.Time        `json:"creation_date"`
}

func JobConvert(rec dbmodels.Job) JobView {
	return JobView{
		JobData: JobData{
			Title:       rec.Title,
			Department:  rec.Department,
			Location:    rec.Location,
			Vacancy:     rec.Vacancy,
			Description: rec.Description,
			SalaryMin:   rec.SalaryMin,
			SalaryMax:   rec.SalaryMax,
		},
		ID:              rec.ID,
		JobCode:         rec.JobCode,
		RequisitionCode: rec.RequisitionCode,
		Status:          rec.Status,
		JdFileID:        rec.JdFileID,
		SupportingDocID: rec.SupportingDocID,
		InitiatedBy:     rec.InitiatedBy,
		CreationDate:    rec.CreatedAt,
	}
}
