package employeeapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
	"talentdesk-backend/models"
)

func validEmployee() EmployeeData {
	return EmployeeData{
		EmployeeCode: "EMP-001",
		Name:         "Priya Sharma",
		Department:   "Engineering",
		Doj:          "2024-03-01",
		Status:       models.EmployeeStatusActive,
	}
}

func TestEmployeeDataValidate(t *testing.T) {
	t.Run(`valid active employee passes`, func(t *testing.T) {
		require.NoError(t, validEmployee().Validate())
	})
	t.Run(`empty status defaults and passes`, func(t *testing.T) {
		data := validEmployee()
		data.Status = ""
		require.NoError(t, data.Validate())
	})
	t.Run(`doj must be a date`, func(t *testing.T) {
		data := validEmployee()
		data.Doj = "01.03.2024"
		require.Error(t, data.Validate())
	})
}

func TestEmployeeSeparationRules(t *testing.T) {
	t.Run(`serving notice requires lwd and mode`, func(t *testing.T) {
		data := validEmployee()
		data.Status = models.EmployeeStatusServingNotice
		require.Error(t, data.Validate())

		data.Lwd = "2026-09-30"
		require.Error(t, data.Validate())

		data.ModeOfSeparation = "Resignation"
		require.NoError(t, data.Validate())
	})
	t.Run(`inactive requires lwd and mode`, func(t *testing.T) {
		data := validEmployee()
		data.Status = models.EmployeeStatusInactive
		require.Error(t, data.Validate())

		data.Lwd = "2026-08-15"
		data.ModeOfSeparation = "Termination"
		require.NoError(t, data.Validate())
	})
	t.Run(`active employee must not carry separation fields`, func(t *testing.T) {
		data := validEmployee()
		data.Lwd = "2026-09-30"
		require.Error(t, data.Validate())

		data.Lwd = ""
		data.ModeOfSeparation = "Resignation"
		require.Error(t, data.Validate())
	})
	t.Run(`lwd must be a date`, func(t *testing.T) {
		data := validEmployee()
		data.Status = models.EmployeeStatusServingNotice
		data.Lwd = "soon"
		data.ModeOfSeparation = "Resignation"
		require.Error(t, data.Validate())
	})
}
