package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"talentdesk-backend/models"
	analyticsapimodels "talentdesk-backend/models/api/analytics"
	dbmodels "talentdesk-backend/models/db"
)

type Provider interface {
	ExportEmployeeList(list []dbmodels.Employee) (*bytes.Buffer, error)
	ExportCandidateList(list []dbmodels.CandidateWithJob) (*bytes.Buffer, error)
	ExportAnalyticsSummary(summary analyticsapimodels.Summary) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

// Canonical column set: exports carry the same columns for every row
// regardless of which optional fields are filled.
var employeeHeaders = []string{"Employee Code", "Name", "Email", "Contact", "Department", "Designation", "Grade", "Reporting To", "Location", "Date of Joining", "Status", "Last Working Date", "Mode of Separation"}

func (i impl) ExportEmployeeList(list []dbmodels.Employee) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("xlsx file close error")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, employeeHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "xlsx header write error")
	}
	if len(list) != 0 {
		row, err = writeEmployeeData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "xlsx data write error")
		}
	}
	f.SetSheetName(sheet, "Employees")
	return f.WriteToBuffer()
}

func writeEmployeeData(f *excelize.File, sheet string, list []dbmodels.Employee, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(employeeHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		col := 1
		if err := writeColumn(f, sheet, col, row, item.EmployeeCode); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Name); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Email); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.ContactNo); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Department); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Designation); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Grade); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.ReportingTo); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Location); err != nil {
			return row, err
		}

		col++
		if !item.Doj.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.Doj.Format("02.01.2006")); err != nil {
				return row, err
			}
		}

		col++
		if err := writeColumn(f, sheet, col, row, string(item.Status)); err != nil {
			return row, err
		}

		col++
		if item.Lwd != nil {
			if err := writeColumn(f, sheet, col, row, item.Lwd.Format("02.01.2006")); err != nil {
				return row, err
			}
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.ModeOfSeparation); err != nil {
			return row, err
		}
	}
	return row, nil
}

var candidateHeaders = []string{"Name", "Contacts", "Job", "Position", "Source", "Status", "Interviewed", "Hired", "Expected CTC"}

func (i impl) ExportCandidateList(list []dbmodels.CandidateWithJob) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("xlsx file close error")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, candidateHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "xlsx header write error")
	}
	if len(list) != 0 {
		row, err = writeCandidateData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "xlsx data write error")
		}
	}
	f.SetSheetName(sheet, "Candidates")
	return f.WriteToBuffer()
}

func writeCandidateData(f *excelize.File, sheet string, list []dbmodels.CandidateWithJob, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(candidateHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Name); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v\r%v", item.Phone, item.Email)); err != nil {
			return row, err
		}

		col++
		if item.JobTitle != "" {
			if err := writeColumn(f, sheet, col, row, item.JobTitle); err != nil {
				return row, err
			}
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Position); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Source); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, string(item.Status)); err != nil {
			return row, err
		}

		col++
		if item.InterviewedDate != nil {
			if err := writeColumn(f, sheet, col, row, item.InterviewedDate.Format("02.01.2006")); err != nil {
				return row, err
			}
		}

		col++
		if item.HiredDate != nil {
			if err := writeColumn(f, sheet, col, row, item.HiredDate.Format("02.01.2006")); err != nil {
				return row, err
			}
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.ExpectedCTC); err != nil {
			return row, err
		}
	}
	return row, nil
}

var summaryHeaders = []string{"Metric", "Value"}

func (i impl) ExportAnalyticsSummary(summary analyticsapimodels.Summary) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("xlsx file close error")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, summaryHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "xlsx header write error")
	}
	metrics := []struct {
		name  string
		value interface{}
	}{
		{"Open jobs", summary.OpenJobs},
		{"Requisitions pending approval", summary.PendingRequisitions},
		{"Avg time to hire (days)", summary.AvgTimeToHireDays},
		{"Hired total", summary.HiredTotal},
		{"Offered total", summary.OfferedTotal},
		{"Offer acceptance rate", summary.OfferAcceptanceRate},
	}
	for _, status := range []models.CandidateStatus{
		models.CandidateStatusApplied,
		models.CandidateStatusShortlisted,
		models.CandidateStatusInterviewed,
		models.CandidateStatusOffered,
		models.CandidateStatusHired,
		models.CandidateStatusRejected,
		models.CandidateStatusHold,
	} {
		metrics = append(metrics, struct {
			name  string
			value interface{}
		}{"Pipeline: " + string(status), summary.PipelineCounts[status]})
	}
	for _, status := range []models.EmployeeStatus{
		models.EmployeeStatusActive,
		models.EmployeeStatusServingNotice,
		models.EmployeeStatusInactive,
	} {
		metrics = append(metrics, struct {
			name  string
			value interface{}
		}{"Headcount: " + string(status), summary.Headcount[status]})
	}
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(summaryHeaders), len(metrics)+1); err != nil {
		return nil, errors.Wrap(err, "xlsx data write error")
	}
	for _, metric := range metrics {
		row++
		if err := writeColumn(f, sheet, 1, row, metric.name); err != nil {
			return nil, err
		}
		if err := writeColumn(f, sheet, 2, row, metric.value); err != nil {
			return nil, err
		}
	}
	f.SetSheetName(sheet, "Analytics")
	return f.WriteToBuffer()
}
