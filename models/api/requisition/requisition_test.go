package requisitionapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
	"talentdesk-backend/models"
)

func validData() RequisitionData {
	return RequisitionData{
		Type:        models.RequisitionTypeCompany,
		Title:       "Backend Engineer",
		Department:  "Engineering",
		Openings:    2,
		Priority:    models.RequisitionPriorityHigh,
		Description: "Go services development",
		SalaryMin:   1200000,
		SalaryMax:   1800000,
		NeededBy:    "2026-10-01",
	}
}

func TestRequisitionDataValidate(t *testing.T) {
	t.Run(`valid data passes`, func(t *testing.T) {
		require.NoError(t, validData().Validate())
	})
	t.Run(`openings below one rejected`, func(t *testing.T) {
		data := validData()
		data.Openings = 0
		require.Error(t, data.Validate())
	})
	t.Run(`salary range inverted rejected`, func(t *testing.T) {
		data := validData()
		data.SalaryMin = 2000000
		data.SalaryMax = 1000000
		require.Error(t, data.Validate())
	})
	t.Run(`consultancy requires client name`, func(t *testing.T) {
		data := validData()
		data.Type = models.RequisitionTypeConsultancy
		require.Error(t, data.Validate())
		data.ClientName = "Acme Corp"
		require.NoError(t, data.Validate())
	})
	t.Run(`needed_by must be a date`, func(t *testing.T) {
		data := validData()
		data.NeededBy = "next month"
		require.Error(t, data.Validate())
	})
	t.Run(`missing title rejected`, func(t *testing.T) {
		data := validData()
		data.Title = "  "
		require.Error(t, data.Validate())
	})
	t.Run(`unknown priority rejected`, func(t *testing.T) {
		data := validData()
		data.Priority = "asap"
		require.Error(t, data.Validate())
	})
}

func TestRequisitionFilterValidate(t *testing.T) {
	t.Run(`empty filter passes`, func(t *testing.T) {
		require.NoError(t, RequisitionFilter{}.Validate())
	})
	t.Run(`unknown status rejected`, func(t *testing.T) {
		filter := RequisitionFilter{Status: "archived"}
		require.Error(t, filter.Validate())
	})
}
