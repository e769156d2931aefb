package employeehandler

import (
	"bytes"
	"time"

	log "github.com/sirupsen/logrus"
	"talentdesk-backend/db"
	employeestore "talentdesk-backend/lib/employee/store"
	xlsexport "talentdesk-backend/lib/export/xls"
	"talentdesk-backend/lib/utils/helpers"
	initchecker "talentdesk-backend/lib/utils/init-checker"
	"talentdesk-backend/models"
	employeeapimodels "talentdesk-backend/models/api/employee"
	dbmodels "talentdesk-backend/models/db"
)

type Provider interface {
	Create(companyID string, data employeeapimodels.EmployeeData) (id string, err error)
	GetByID(companyID, id string) (item employeeapimodels.EmployeeView, err error)
	Update(companyID, id string, data employeeapimodels.EmployeeData) error
	Delete(companyID, id string) error
	List(companyID string, filter employeeapimodels.EmployeeFilter) (list []employeeapimodels.EmployeeView, rowCount int64, err error)
	ExportToXls(companyID string) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:     employeestore.NewInstance(db.DB),
		xlsExport: xlsexport.Instance,
	}
	initchecker.CheckInit(
		"xlsExport", instance.xlsExport,
	)
	Instance = instance
}

type impl struct {
	store     employeestore.Provider
	xlsExport xlsexport.Provider
}

func (i impl) Create(companyID string, data employeeapimodels.EmployeeData) (id string, err error) {
	logger := log.WithField("company_id", companyID)
	if data.Status == "" {
		data.Status = models.EmployeeStatusActive
	}
	if err = data.ValidateSeparation(); err != nil {
		return "", helpers.ValidationErrf("%v", err)
	}
	doj, err := helpers.ParseDateOnly(data.Doj)
	if err != nil {
		return "", helpers.ValidationErrf("doj must be a date in YYYY-MM-DD format")
	}
	rec := dbmodels.Employee{
		BaseCompanyModel: dbmodels.BaseCompanyModel{
			CompanyID: companyID,
		},
		EmployeeCode:     data.EmployeeCode,
		Name:             data.Name,
		Email:            data.Email,
		ContactNo:        data.ContactNo,
		AltContactNo:     data.AltContactNo,
		PersonalEmail:    data.PersonalEmail,
		Department:       data.Department,
		Designation:      data.Designation,
		Grade:            data.Grade,
		ReportingTo:      data.ReportingTo,
		Location:         data.Location,
		Nationality:      data.Nationality,
		Doj:              doj,
		Status:           data.Status,
		ModeOfSeparation: data.ModeOfSeparation,
		Pan:              data.Pan,
		Aadhar:           data.Aadhar,
		Uan:              data.Uan,
		Address:          data.Address,
		FatherName:       data.FatherName,
		HighestEducation: data.HighestEducation,
	}
	if data.Lwd != "" {
		lwd, err := helpers.ParseDateOnly(data.Lwd)
		if err != nil {
			return "", helpers.ValidationErrf("lwd must be a date in YYYY-MM-DD format")
		}
		rec.Lwd = &lwd
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("employee create error")
		return "", err
	}
	logger.WithField("rec_id", id).Info("employee created")
	return id, nil
}

func (i impl) GetByID(companyID, id string) (item employeeapimodels.EmployeeView, err error) {
	rec, err := i.getRec(companyID, id)
	if err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	return employeeapimodels.EmployeeConvert(*rec), nil
}

func (i impl) Update(companyID, id string, data employeeapimodels.EmployeeData) error {
	logger := log.WithField("company_id", companyID).
		WithField("rec_id", id)
	rec, err := i.getRec(companyID, id)
	if err != nil {
		return err
	}
	if data.Status == "" {
		data.Status = rec.Status
	}
	if data.Status != rec.Status && !rec.Status.IsAllowChange(data.Status) {
		return helpers.ValidationErrf("status change from %v to %v is not allowed", rec.Status, data.Status)
	}
	if err = data.ValidateSeparation(); err != nil {
		return helpers.ValidationErrf("%v", err)
	}
	doj, err := helpers.ParseDateOnly(data.Doj)
	if err != nil {
		return helpers.ValidationErrf("doj must be a date in YYYY-MM-DD format")
	}
	var lwd *time.Time
	if data.Lwd != "" {
		parsed, err := helpers.ParseDateOnly(data.Lwd)
		if err != nil {
			return helpers.ValidationErrf("lwd must be a date in YYYY-MM-DD format")
		}
		lwd = &parsed
	}
	updMap := map[string]interface{}{
		"employee_code":      data.EmployeeCode,
		"name":               data.Name,
		"email":              data.Email,
		"contact_no":         data.ContactNo,
		"alt_contact_no":     data.AltContactNo,
		"personal_email":     data.PersonalEmail,
		"department":         data.Department,
		"designation":        data.Designation,
		"grade":              data.Grade,
		"reporting_to":       data.ReportingTo,
		"location":           data.Location,
		"nationality":        data.Nationality,
		"doj":                doj,
		"status":             data.Status,
		"lwd":                lwd,
		"mode_of_separation": data.ModeOfSeparation,
		"pan":                data.Pan,
		"aadhar":             data.Aadhar,
		"uan":                data.Uan,
		"address":            data.Address,
		"father_name":        data.FatherName,
		"highest_education":  data.HighestEducation,
	}
	err = i.store.Update(companyID, id, updMap)
	if err != nil {
		logger.WithError(err).Error("employee update error")
		return err
	}
	logger.Info("employee updated")
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
		logger.WithError(err).Error("employee delete error")
		return err
	}
	logger.Info("employee deleted")
	return nil
}

func (i impl) List(companyID string, filter employeeapimodels.EmployeeFilter) (list []employeeapimodels.EmployeeView, rowCount int64, err error) {
	logger := log.WithField("company_id", companyID)
	rowCount, err = i.store.ListCount(companyID, filter)
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []employeeapimodels.EmployeeView{}, rowCount, nil
	}
	recList, err := i.store.List(companyID, filter)
	if err != nil {
		logger.WithError(err).Error("employee list error")
		return nil, 0, err
	}
	result := make([]employeeapimodels.EmployeeView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, employeeapimodels.EmployeeConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) ExportToXls(companyID string) (*bytes.Buffer, error) {
	list, err := i.store.ListAll(companyID)
	if err != nil {
		log.WithField("company_id", companyID).
			WithError(err).
			Error("employee export error")
		return nil, err
	}
	return i.xlsExport.ExportEmployeeList(list)
}

func (i impl) getRec(companyID, id string) (*dbmodels.Employee, error) {
	rec, err := i.store.GetByID(companyID, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, helpers.NotFoundErrf("employee not found")
	}
	return rec, nil
}
