package analyticshandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"talentdesk-backend/models"
	candidateapimodels "talentdesk-backend/models/api/candidate"
	employeeapimodels "talentdesk-backend/models/api/employee"
	jobapimodels "talentdesk-backend/models/api/job"
	requisitionapimodels "talentdesk-backend/models/api/requisition"
	dbmodels "talentdesk-backend/models/db"
)

type fakeCandidateStore struct {
	candidates []dbmodels.Candidate
	byStatus   map[string]int64
}

func (f fakeCandidateStore) Create(rec dbmodels.Candidate) (string, error) { return "", nil }
func (f fakeCandidateStore) GetByID(companyID, id string) (*dbmodels.Candidate, error) {
	return nil, nil
}
func (f fakeCandidateStore) Update(companyID, id string, updMap map[string]interface{}) error {
	return nil
}
func (f fakeCandidateStore) Delete(companyID, id string) error { return nil }
func (f fakeCandidateStore) List(companyID string, filter candidateapimodels.CandidateFilter) ([]dbmodels.CandidateWithJob, error) {
	return nil, nil
}
func (f fakeCandidateStore) ListCount(companyID string, filter candidateapimodels.CandidateFilter) (int64, error) {
	return 0, nil
}
func (f fakeCandidateStore) ListAll(companyID string) ([]dbmodels.Candidate, error) {
	return f.candidates, nil
}
func (f fakeCandidateStore) ListAllWithJob(companyID string) ([]dbmodels.CandidateWithJob, error) {
	return nil, nil
}
func (f fakeCandidateStore) CountByStatus(companyID string) (map[string]int64, error) {
	return f.byStatus, nil
}

type fakeJobStore struct {
	openCount int64
}

func (f fakeJobStore) Create(rec dbmodels.Job) (string, error)                  { return "", nil }
func (f fakeJobStore) GetByID(companyID, id string) (*dbmodels.Job, error)      { return nil, nil }
func (f fakeJobStore) GetByCode(companyID, code string) (*dbmodels.Job, error)  { return nil, nil }
func (f fakeJobStore) Update(companyID, id string, m map[string]interface{}) error {
	return nil
}
func (f fakeJobStore) Delete(companyID, id string) error { return nil }
func (f fakeJobStore) List(companyID string, filter jobapimodels.JobFilter) ([]dbmodels.Job, error) {
	return nil, nil
}
func (f fakeJobStore) ListCount(companyID string, filter jobapimodels.JobFilter) (int64, error) {
	return f.openCount, nil
}

type fakeRequisitionStore struct {
	pending int64
}

func (f fakeRequisitionStore) Create(rec dbmodels.Requisition) (string, error) { return "", nil }
func (f fakeRequisitionStore) GetByID(companyID, id string) (*dbmodels.Requisition, error) {
	return nil, nil
}
func (f fakeRequisitionStore) Update(companyID, id string, m map[string]interface{}) error {
	return nil
}
func (f fakeRequisitionStore) Delete(companyID, id string) error { return nil }
func (f fakeRequisitionStore) List(companyID string, filter requisitionapimodels.RequisitionFilter) ([]dbmodels.Requisition, error) {
	return nil, nil
}
func (f fakeRequisitionStore) ListCount(companyID string, filter requisitionapimodels.RequisitionFilter) (int64, error) {
	return 0, nil
}
func (f fakeRequisitionStore) PendingCount(companyID string) (int64, error) { return f.pending, nil }

type fakeEmployeeStore struct {
	byStatus map[string]int64
}

func (f fakeEmployeeStore) Create(rec dbmodels.Employee) (string, error) { return "", nil }
func (f fakeEmployeeStore) GetByID(companyID, id string) (*dbmodels.Employee, error) {
	return nil, nil
}
func (f fakeEmployeeStore) Update(companyID, id string, m map[string]interface{}) error {
	return nil
}
func (f fakeEmployeeStore) Delete(companyID, id string) error { return nil }
func (f fakeEmployeeStore) List(companyID string, filter employeeapimodels.EmployeeFilter) ([]dbmodels.Employee, error) {
	return nil, nil
}
func (f fakeEmployeeStore) ListCount(companyID string, filter employeeapimodels.EmployeeFilter) (int64, error) {
	return 0, nil
}
func (f fakeEmployeeStore) ListAll(companyID string) ([]dbmodels.Employee, error) {
	return nil, nil
}
func (f fakeEmployeeStore) CountByStatus(companyID string) (map[string]int64, error) {
	return f.byStatus, nil
}

func hiredCandidate(createdAt time.Time, hiredAt time.Time) dbmodels.Candidate {
	rec := dbmodels.Candidate{
		Status:    models.CandidateStatusHired,
		HiredDate: &hiredAt,
	}
	rec.CreatedAt = createdAt
	return rec
}

func newTestImpl(candidates fakeCandidateStore) impl {
	return impl{
		candidateStore:   candidates,
		jobStore:         fakeJobStore{openCount: 2},
		requisitionStore: fakeRequisitionStore{pending: 1},
		employeeStore:    fakeEmployeeStore{byStatus: map[string]int64{string(models.EmployeeStatusActive): 10}},
	}
}

func TestSummaryTimeToHire(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run(`average over calendar days`, func(t *testing.T) {
		h := newTestImpl(fakeCandidateStore{
			candidates: []dbmodels.Candidate{
				hiredCandidate(base, base.AddDate(0, 0, 10)),
				hiredCandidate(base, base.AddDate(0, 0, 20)),
			},
		})
		summary, err := h.Summary("company-1")
		require.NoError(t, err)
		require.Equal(t, int64(2), summary.HiredTotal)
		require.InDelta(t, 15.0, summary.AvgTimeToHireDays, 0.001)
	})

	t.Run(`negative spans are excluded not absoluted`, func(t *testing.T) {
		h := newTestImpl(fakeCandidateStore{
			candidates: []dbmodels.Candidate{
				hiredCandidate(base, base.AddDate(0, 0, 10)),
				// hired date recorded before the application row was created
				hiredCandidate(base, base.AddDate(0, 0, -30)),
			},
		})
		summary, err := h.Summary("company-1")
		require.NoError(t, err)
		require.Equal(t, int64(1), summary.HiredTotal)
		require.Equal(t, int64(1), summary.AnomalousHires)
		require.InDelta(t, 10.0, summary.AvgTimeToHireDays, 0.001)
	})

	t.Run(`hired without date is skipped`, func(t *testing.T) {
		rec := dbmodels.Candidate{Status: models.CandidateStatusHired}
		rec.CreatedAt = base
		h := newTestImpl(fakeCandidateStore{candidates: []dbmodels.Candidate{rec}})
		summary, err := h.Summary("company-1")
		require.NoError(t, err)
		require.Equal(t, int64(0), summary.HiredTotal)
		require.Equal(t, float64(0), summary.AvgTimeToHireDays)
	})
}

func TestSummaryOfferAcceptance(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	offered := dbmodels.Candidate{Status: models.CandidateStatusOffered}

	t.Run(`rate is hired over offered plus hired`, func(t *testing.T) {
		h := newTestImpl(fakeCandidateStore{
			candidates: []dbmodels.Candidate{
				hiredCandidate(base, base.AddDate(0, 0, 5)),
				offered,
				offered,
				offered,
			},
		})
		summary, err := h.Summary("company-1")
		require.NoError(t, err)
		require.Equal(t, int64(3), summary.OfferedTotal)
		require.InDelta(t, 0.25, summary.OfferAcceptanceRate, 0.001)
	})

	t.Run(`no offers yields zero rate`, func(t *testing.T) {
		h := newTestImpl(fakeCandidateStore{})
		summary, err := h.Summary("company-1")
		require.NoError(t, err)
		require.Equal(t, float64(0), summary.OfferAcceptanceRate)
	})
}

func TestSummaryAggregates(t *testing.T) {
	h := newTestImpl(fakeCandidateStore{
		byStatus: map[string]int64{
			string(models.CandidateStatusApplied): 4,
			string(models.CandidateStatusHired):   1,
		},
	})
	summary, err := h.Summary("company-1")
	require.NoError(t, err)
	require.Equal(t, int64(4), summary.PipelineCounts[models.CandidateStatusApplied])
	require.Equal(t, int64(1), summary.PipelineCounts[models.CandidateStatusHired])
	// stages without rows are present with zero counts
	require.Contains(t, summary.PipelineCounts, models.CandidateStatusOffered)
	require.Equal(t, int64(2), summary.OpenJobs)
	require.Equal(t, int64(1), summary.PendingRequisitions)
	require.Equal(t, int64(10), summary.Headcount[models.EmployeeStatusActive])
}
