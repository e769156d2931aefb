package dbmodels

import (
	"talentdesk-backend/models"
)

type Job struct {
	BaseCompanyModel
	Company         *Company
	JobCode         string `gorm:"uniqueIndex;type:varchar(100)"`
	RequisitionCode string `gorm:"index;type:varchar(100)"` // empty for manually posted jobs
	Title           string `gorm:"type:varchar(255)"`
	Department      string `gorm:"type:varchar(255)"`
	Location        string `gorm:"type:varchar(255)"`
	Vacancy         int
	Description     string
	Status          models.JobStatus `gorm:"index;type:varchar(50)"`
	SalaryMin       int
	SalaryMax       int
	JdFileID        string `gorm:"type:varchar(36)"`
	SupportingDocID string `gorm:"type:varchar(36)"`
	InitiatedBy     string `gorm:"type:varchar(255)"`
}
