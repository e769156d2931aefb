package dbmodels

import (
	"time"

	"talentdesk-backend/models"
)

type Employee struct {
	BaseCompanyModel
	Company          *Company
	EmployeeCode     string `gorm:"index;type:varchar(100)"`
	Name             string `gorm:"type:varchar(255)"`
	Email            string `gorm:"type:varchar(255)"`
	ContactNo        string `gorm:"type:varchar(50)"`
	AltContactNo     string `gorm:"type:varchar(50)"`
	PersonalEmail    string `gorm:"type:varchar(255)"`
	Department       string `gorm:"type:varchar(255)"`
	Designation      string `gorm:"type:varchar(255)"`
	Grade            string `gorm:"type:varchar(50)"`
	ReportingTo      string `gorm:"type:varchar(255)"`
	Location         string `gorm:"type:varchar(255)"`
	Nationality      string `gorm:"type:varchar(100)"`
	Doj              time.Time
	Status           models.EmployeeStatus `gorm:"index;type:varchar(50)"`
	Lwd              *time.Time
	ModeOfSeparation string `gorm:"type:varchar(100)"`
	Pan              string `gorm:"type:varchar(50)"`
	Aadhar           string `gorm:"type:varchar(50)"`
	Uan              string `gorm:"type:varchar(50)"`
	Address          string
	FatherName       string `gorm:"type:varchar(255)"`
	HighestEducation string `gorm:"type:varchar(255)"`
}
