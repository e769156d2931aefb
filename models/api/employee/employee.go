package employeeapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"talentdesk-backend/models"
	apimodels "talentdesk-backend/models/api"
	dbmodels "talentdesk-backend/models/db"
)

type EmployeeData struct {
	EmployeeCode     string                `json:"employee_code"`
	Name             string                `json:"name"`
	Email            string                `json:"email"`
	ContactNo        string                `json:"contact_no"`
	AltContactNo     string                `json:"alt_contact_no"`
	PersonalEmail    string                `json:"personal_email"`
	Department       string                `json:"department"`
	Designation      string                `json:"designation"`
	Grade            string                `json:"grade"`
	ReportingTo      string                `json:"reporting_to"`
	Location         string                `json:"location"`
	Nationality      string                `json:"nationality"`
	Doj              string                `json:"doj"` // date of joining, YYYY-MM-DD
	Status           models.EmployeeStatus `json:"status"`
	Lwd              string                `json:"lwd"` // last working date, required when separating
	ModeOfSeparation string                `json:"mode_of_separation"`
	Pan              string                `json:"pan"`
	Aadhar           string                `json:"aadhar"`
	Uan              string                `json:"uan"`
	Address          string                `json:"address"`
	FatherName       string                `json:"father_name"`
	HighestEducation string                `json:"highest_education"`
}

func (e EmployeeData) Validate() error {
	if strings.TrimSpace(e.EmployeeCode) == "" {
		return errors.New("employee code is required")
	}
	if strings.TrimSpace(e.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(e.Department) == "" {
		return errors.New("department is required")
	}
	if e.Doj == "" {
		return errors.New("date of joining is required")
	}
	if _, err := time.Parse("2006-01-02", e.Doj); err != nil {
		return errors.New("doj must be a date in YYYY-MM-DD format")
	}
	if e.Status == "" {
		return nil // defaults to Active on create
	}
	if !e.Status.Validate() {
		return errors.New("unknown employee status")
	}
	return e.ValidateSeparation()
}

// ValidateSeparation enforces the separation-metadata rules: a separating
// employee must carry lwd and mode_of_separation, an active one must not.
func (e EmployeeData) ValidateSeparation() error {
	if e.Status.IsSeparating() {
		if e.Lwd == "" {
			return errors.New("last working date is required when status is not Active")
		}
		if _, err := time.Parse("2006-01-02", e.Lwd); err != nil {
			return errors.New("lwd must be a date in YYYY-MM-DD format")
		}
		if strings.TrimSpace(e.ModeOfSeparation) == "" {
			return errors.New("mode of separation is required when status is not Active")
		}
		return nil
	}
	if e.Lwd != "" || e.ModeOfSeparation != "" {
		return errors.New("separation fields are not allowed for an Active employee")
	}
	return nil
}

type EmployeeFilter struct {
	apimodels.Pagination
	Department string                `json:"department"`
	Status     models.EmployeeStatus `json:"status"`
	Search     string                `json:"search"` // name or employee code substring
}

func (f EmployeeFilter) Validate() error {
	if f.Status != "" && !f.Status.Validate() {
		return errors.New("unknown status filter")
	}
	return nil
}

type EmployeeView struct {
	EmployeeData
	ID           string    `json:"id"`
	StatusName   string    `json:"status_name"`
	CreationDate time.Time `json:"creation_date"`
}

func EmployeeConvert(rec dbmodels.Employee) EmployeeView {
	result := EmployeeView{
		EmployeeData: EmployeeData{
			EmployeeCode:     rec.EmployeeCode,
			Name:             rec.Name,
			Email:            rec.Email,
			ContactNo:        rec.ContactNo,
			AltContactNo:     rec.AltContactNo,
			PersonalEmail:    rec.PersonalEmail,
			Department:       rec.Department,
			Designation:      rec.Designation,
			Grade:            rec.Grade,
			ReportingTo:      rec.ReportingTo,
			Location:         rec.Location,
			Nationality:      rec.Nationality,
			Status:           rec.Status,
			ModeOfSeparation: rec.ModeOfSeparation,
			Pan:              rec.Pan,
			Aadhar:           rec.Aadhar,
			Uan:              rec.Uan,
			Address:          rec.Address,
			FatherName:       rec.FatherName,
			HighestEducation: rec.HighestEducation,
		},
		ID:           rec.ID,
		StatusName:   string(rec.Status),
		CreationDate: rec.CreatedAt,
	}
	if !rec.Doj.IsZero() {
		result.Doj = rec.Doj.Format("2006-01-02")
	}
	if rec.Lwd != nil {
		result.Lwd = rec.Lwd.Format("2006-01-02")
	}
	return result
}
