package jobstore

import (
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"talentdesk-backend/models"
	jobapimodels "talentdesk-backend/models/api/job"
)

func newStoreMock(t *testing.T) (Provider, sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return NewInstance(gormDB), mock, func() { sqlDB.Close() }
}

func TestJobStoreTenancyFilter(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()

	t.Run(`count is scoped to the company`, func(t *testing.T) {
		mock.ExpectQuery(`SELECT count\(\*\) FROM "jobs" WHERE company_id = \$1 AND status = \$2`).
			WithArgs("company-1", string(models.JobStatusOpen)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		count, err := store.ListCount("company-1", jobapimodels.JobFilter{Status: models.JobStatusOpen})
		require.NoError(t, err)
		require.Equal(t, int64(3), count)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run(`get by id filters on company`, func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "company_id", "job_code", "title", "status"}).
			AddRow("job-1", "company-1", "JOB-100", "Backend Engineer", string(models.JobStatusOpen))
		mock.ExpectQuery(`SELECT \* FROM "jobs" WHERE id = \$1 AND company_id = \$2`).
			WillReturnRows(rows)

		rec, err := store.GetByID("company-1", "job-1")
		require.NoError(t, err)
		require.NotNil(t, rec)
		require.Equal(t, "JOB-100", rec.JobCode)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run(`missing row yields nil without error`, func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "jobs" WHERE id = \$1 AND company_id = \$2`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		rec, err := store.GetByID("company-1", "missing")
		require.NoError(t, err)
		require.Nil(t, rec)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestJobStoreDeleteTouchesJobsOnly(t *testing.T) {
	store, mock, cleanup := newStoreMock(t)
	defer cleanup()

	// a single DELETE against jobs; candidate rows must stay untouched
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "jobs" WHERE id = \$1 AND company_id = \$2`).
		WithArgs("job-1", "company-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.Delete("company-1", "job-1")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
