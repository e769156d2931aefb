package dbmodels

import (
	"talentdesk-backend/models"
)

type Company struct {
	BaseModel
	Name        string         `gorm:"type:varchar(255)"`
	OrgType     models.OrgType `gorm:"type:varchar(100)"`
	Description string
	Web         string `gorm:"type:varchar(255)"`
	Users       []CompanyUser
}

type CompanyUser struct {
	BaseCompanyModel
	Company    *Company
	FirstName  string `gorm:"type:varchar(255)"`
	LastName   string `gorm:"type:varchar(255)"`
	Email      string `gorm:"index;type:varchar(255)"`
	Phone      string `gorm:"type:varchar(255)"`
	Password   string `gorm:"type:varchar(255)"`
	Role       models.UserRole `gorm:"type:varchar(100)"`
	Department string          `gorm:"type:varchar(255)"`
	IsActive   bool
}

func (u CompanyUser) GetFullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
