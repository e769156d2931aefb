package xlsexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"talentdesk-backend/models"
	analyticsapimodels "talentdesk-backend/models/api/analytics"
	dbmodels "talentdesk-backend/models/db"
)

func TestExportEmployeeList(t *testing.T) {
	lwd := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	list := []dbmodels.Employee{
		{
			EmployeeCode: "EMP-001",
			Name:         "Priya Sharma",
			Department:   "Engineering",
			Doj:          time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Status:       models.EmployeeStatusActive,
		},
		{
			EmployeeCode:     "EMP-002",
			Name:             "Rahul Verma",
			Department:       "Sales",
			Doj:              time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC),
			Status:           models.EmployeeStatusServingNotice,
			Lwd:              &lwd,
			ModeOfSeparation: "Resignation",
		},
	}

	buf, err := impl{}.ExportEmployeeList(list)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	require.Contains(t, f.GetSheetList(), "Employees")

	header, err := f.GetCellValue("Employees", "A1")
	require.NoError(t, err)
	require.Equal(t, "Employee Code", header)

	code, err := f.GetCellValue("Employees", "A2")
	require.NoError(t, err)
	require.Equal(t, "EMP-001", code)

	doj, err := f.GetCellValue("Employees", "J2")
	require.NoError(t, err)
	require.Equal(t, "01.03.2024", doj)

	mode, err := f.GetCellValue("Employees", "M3")
	require.NoError(t, err)
	require.Equal(t, "Resignation", mode)
}

func TestExportCandidateList(t *testing.T) {
	hired := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	rec := dbmodels.CandidateWithJob{
		Candidate: dbmodels.Candidate{
			Name:      "Anil Kumar",
			Email:     "anil@example.test",
			Phone:     "+91 99999 00000",
			Status:    models.CandidateStatusHired,
			HiredDate: &hired,
		},
		JobTitle: "Backend Engineer",
	}

	buf, err := impl{}.ExportCandidateList([]dbmodels.CandidateWithJob{rec})
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	require.Contains(t, f.GetSheetList(), "Candidates")

	name, err := f.GetCellValue("Candidates", "A2")
	require.NoError(t, err)
	require.Equal(t, "Anil Kumar", name)

	job, err := f.GetCellValue("Candidates", "C2")
	require.NoError(t, err)
	require.Equal(t, "Backend Engineer", job)

	hiredCell, err := f.GetCellValue("Candidates", "H2")
	require.NoError(t, err)
	require.Equal(t, "10.08.2026", hiredCell)
}

func TestExportEmptyList(t *testing.T) {
	buf, err := impl{}.ExportEmployeeList(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Employees", "A1")
	require.NoError(t, err)
	require.Equal(t, "Employee Code", header)
}

func TestExportAnalyticsSummary(t *testing.T) {
	summary := analyticsapimodels.Summary{
		PipelineCounts: map[models.CandidateStatus]int64{
			models.CandidateStatusApplied: 5,
		},
		Headcount: map[models.EmployeeStatus]int64{
			models.EmployeeStatusActive: 12,
		},
		OpenJobs:            3,
		PendingRequisitions: 2,
	}

	buf, err := impl{}.ExportAnalyticsSummary(summary)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	require.Contains(t, f.GetSheetList(), "Analytics")

	metric, err := f.GetCellValue("Analytics", "A2")
	require.NoError(t, err)
	require.Equal(t, "Open jobs", metric)

	value, err := f.GetCellValue("Analytics", "B2")
	require.NoError(t, err)
	require.Equal(t, "3", value)
}
