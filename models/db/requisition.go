package dbmodels

import (
	"time"

	"github.com/lib/pq"
	"talentdesk-backend/models"
)

type Requisition struct {
	BaseCompanyModel
	Company          *Company
	RequisitionCode  string                 `gorm:"uniqueIndex;type:varchar(100)"`
	Type             models.RequisitionType `gorm:"type:varchar(100)"`
	Title            string                 `gorm:"type:varchar(255)"`
	Department       string                 `gorm:"type:varchar(255)"`
	Location         string                 `gorm:"type:varchar(255)"`
	EmploymentType   string                 `gorm:"type:varchar(100)"`
	Openings         int
	Priority         models.RequisitionPriority `gorm:"type:varchar(50)"`
	NeededBy         *time.Time
	Description      string
	Responsibilities string
	Skills           pq.StringArray `gorm:"type:text[]"`
	Experience       string         `gorm:"type:varchar(255)"`
	Education        string         `gorm:"type:varchar(255)"`
	Currency         string         `gorm:"type:varchar(10)"`
	SalaryType       string         `gorm:"type:varchar(50)"`
	SalaryMin        int
	SalaryMax        int
	BudgetNotes      string
	ClientName       string `gorm:"type:varchar(255)"` // consultancy requisitions only
	RaisedByID       string `gorm:"type:varchar(36)"`
	RaisedBy         *CompanyUser `gorm:"foreignKey:RaisedByID"`
	FinalStatus      models.RequisitionStatus `gorm:"index;type:varchar(100)"`
	DeptHeadID       *string                  `gorm:"type:varchar(36)"`
	DeptHead         *CompanyUser             `gorm:"foreignKey:DeptHeadID"`
	DeptHeadEmail    string                   `gorm:"type:varchar(255)"`
	DeptHeadStatus   models.ApprovalState     `gorm:"type:varchar(50)"`
	DeptHeadRemarks  string
	MdID             *string              `gorm:"type:varchar(36)"`
	Md               *CompanyUser         `gorm:"foreignKey:MdID"`
	MdEmail          string               `gorm:"type:varchar(255)"`
	MdStatus         models.ApprovalState `gorm:"type:varchar(50)"`
	MdRemarks        string
	IsEdited         bool
	Jobs             []Job `gorm:"foreignKey:RequisitionCode;references:RequisitionCode"`
}

// BothApproved reports whether every approval gate has passed.
func (r Requisition) BothApproved() bool {
	return r.DeptHeadStatus == models.ApprovalStateApproved && r.MdStatus == models.ApprovalStateApproved
}

func (r Requisition) AnyRejected() bool {
	return r.DeptHeadStatus == models.ApprovalStateRejected || r.MdStatus == models.ApprovalStateRejected
}
