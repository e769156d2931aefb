package candidateapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"talentdesk-backend/models"
	apimodels "talentdesk-backend/models/api"
	dbmodels "talentdesk-backend/models/db"
)

type CandidateData struct {
	JobCode     string `json:"job_code"`     // posting the candidate applied to
	Name        string `json:"name"`         // full name
	Email       string `json:"email"`        // contact email
	Phone       string `json:"phone"`        // contact phone
	Position    string `json:"position"`     // applied position
	Department  string `json:"department"`   // target department
	Source      string `json:"source"`       // where the candidate came from
	CurrentCTC  int    `json:"current_ctc"`  // current compensation
	ExpectedCTC int    `json:"expected_ctc"` // expected compensation
}

func (c CandidateData) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("name is required")
	}
	if c.Email == "" && c.Phone == "" {
		return errors.New("email or phone is required")
	}
	if c.JobCode == "" {
		return errors.New("job_code is required")
	}
	return nil
}

type CandidateStatusData struct {
	Status models.CandidateStatus `json:"status"`
	// Date overrides the side-effect date (interviewed/hired) when set,
	// YYYY-MM-DD; defaults to today.
	Date string `json:"date"`
}

func (c CandidateStatusData) Validate() error {
	if !c.Status.Validate() {
		return errors.New("unknown candidate status")
	}
	if c.Date != "" {
		if _, err := time.Parse("2006-01-02", c.Date); err != nil {
			return errors.New("date must be in YYYY-MM-DD format")
		}
	}
	return nil
}

type CandidateFilter struct {
	apimodels.Pagination
	JobCode string                 `json:"job_code"`
	Status  models.CandidateStatus `json:"status"`
	Search  string                 `json:"search"` // name or email substring
}

func (f CandidateFilter) Validate() error {
	if f.Status != "" && !f.Status.Validate() {
		return errors.New("unknown status filter")
	}
	return nil
}

type CandidateView struct {
	CandidateData
	ID              string                 `json:"id"`
	Status          models.CandidateStatus `json:"status"`
	JobTitle        string                 `json:"job_title,omitempty"`
	ResumeFileID    string                 `json:"resume_file_id,omitempty"`
	InterviewedDate string                 `json:"interviewed_date,omitempty"`
	HiredDate       string                 `json:"hired_date,omitempty"`
	InitiatedBy     string                 `json:"initiated_by"`
	CreationDate    time.Time              `json:"creation_date"`
}

func CandidateConvert(rec dbmodels.Candidate) CandidateView {
	result := CandidateView{
		CandidateData: CandidateData{
			JobCode:     rec.JobCode,
			Name:        rec.Name,
			Email:       rec.Email,
			Phone:       rec.Phone,
			Position:    rec.Position,
			Department:  rec.Department,
			Source:      rec.Source,
			CurrentCTC:  rec.CurrentCTC,
			ExpectedCTC: rec.ExpectedCTC,
		},
		ID:           rec.ID,
		Status:       rec.Status,
		ResumeFileID: rec.ResumeFileID,
		InitiatedBy:  rec.InitiatedBy,
		CreationDate: rec.CreatedAt,
	}
	if rec.InterviewedDate != nil {
		result.InterviewedDate = rec.InterviewedDate.Format("2006-01-02")
	}
	if rec.HiredDate != nil {
		result.HiredDate = rec.HiredDate.Format("2006-01-02")
	}
	return result
}

func CandidateWithJobConvert(rec dbmodels.CandidateWithJob) CandidateView {
	result := CandidateConvert(rec.Candidate)
	result.JobTitle = rec.JobTitle
	return result
}
