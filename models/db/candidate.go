package dbmodels

import (
	"time"

	"talentdesk-backend/models"
)

type Candidate struct {
	BaseCompanyModel
	Company *Company
	// JobCode is a soft reference: deleting a job keeps its candidates
	// queryable, so there is no FK constraint here.
	JobCode         string `gorm:"index;type:varchar(100)"`
	Name            string `gorm:"type:varchar(255)"`
	Email           string `gorm:"type:varchar(255)"`
	Phone           string `gorm:"type:varchar(255)"`
	Position        string `gorm:"type:varchar(255)"`
	Department      string `gorm:"type:varchar(255)"`
	Status          models.CandidateStatus `gorm:"index;type:varchar(50)"`
	Source          string                 `gorm:"type:varchar(100)"`
	ResumeFileID    string                 `gorm:"type:varchar(36)"`
	InterviewedDate *time.Time
	HiredDate       *time.Time
	CurrentCTC      int
	ExpectedCTC     int
	InitiatedBy     string `gorm:"type:varchar(255)"`
}

// CandidateWithJob carries the joined job row for list views and exports;
// Job is nil when the job was deleted after the candidate applied.
type CandidateWithJob struct {
	Candidate
	JobTitle      string
	JobDepartment string
}
