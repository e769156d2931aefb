package requisitionhandler

import (
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"talentdesk-backend/db"
	"talentdesk-backend/lib/utils/helpers"
	"talentdesk-backend/models"
	requisitionapimodels "talentdesk-backend/models/api/requisition"
	dbmodels "talentdesk-backend/models/db"
)

type fakeUsersStore struct {
	approvers map[models.UserRole]*dbmodels.CompanyUser
}

func (f fakeUsersStore) Create(rec dbmodels.CompanyUser) (string, error) { return "", nil }
func (f fakeUsersStore) GetByID(companyID, id string) (*dbmodels.CompanyUser, error) {
	return nil, nil
}
func (f fakeUsersStore) FindByID(id string) (*dbmodels.CompanyUser, error)      { return nil, nil }
func (f fakeUsersStore) GetByEmail(email string) (*dbmodels.CompanyUser, error) { return nil, nil }
func (f fakeUsersStore) ExistByEmail(email string) (bool, error)                { return false, nil }
func (f fakeUsersStore) FindApprover(companyID string, role models.UserRole, department string) (*dbmodels.CompanyUser, error) {
	return f.approvers[role], nil
}

func approverUser(id, email string, role models.UserRole) *dbmodels.CompanyUser {
	rec := dbmodels.CompanyUser{
		Email:    email,
		Role:     role,
		IsActive: true,
	}
	rec.ID = id
	return &rec
}

func TestResolveApprovers(t *testing.T) {
	t.Run(`company users resolved by role`, func(t *testing.T) {
		h := impl{usersStore: fakeUsersStore{approvers: map[models.UserRole]*dbmodels.CompanyUser{
			models.UserRoleDeptHead: approverUser("dh-1", "dh@acme.test", models.UserRoleDeptHead),
			models.UserRoleMD:       approverUser("md-1", "md@acme.test", models.UserRoleMD),
		}}}
		rec := dbmodels.Requisition{Department: "Engineering"}
		require.NoError(t, h.resolveApprovers(&rec))
		require.NotNil(t, rec.DeptHeadID)
		require.Equal(t, "dh-1", *rec.DeptHeadID)
		require.Equal(t, "dh@acme.test", rec.DeptHeadEmail)
		require.NotNil(t, rec.MdID)
		require.Equal(t, "md-1", *rec.MdID)
	})

	t.Run(`manual email accepted when no user matches`, func(t *testing.T) {
		h := impl{usersStore: fakeUsersStore{}}
		rec := dbmodels.Requisition{
			DeptHeadEmail: "head@client.test",
			MdEmail:       "md@client.test",
		}
		require.NoError(t, h.resolveApprovers(&rec))
		require.Nil(t, rec.DeptHeadID)
		require.Nil(t, rec.MdID)
	})

	t.Run(`unresolvable dept head rejected`, func(t *testing.T) {
		h := impl{usersStore: fakeUsersStore{approvers: map[models.UserRole]*dbmodels.CompanyUser{
			models.UserRoleMD: approverUser("md-1", "md@acme.test", models.UserRoleMD),
		}}}
		rec := dbmodels.Requisition{}
		err := h.resolveApprovers(&rec)
		require.Error(t, err)
		require.True(t, helpers.IsValidation(err))
	})

	t.Run(`unresolvable md rejected`, func(t *testing.T) {
		h := impl{usersStore: fakeUsersStore{approvers: map[models.UserRole]*dbmodels.CompanyUser{
			models.UserRoleDeptHead: approverUser("dh-1", "dh@acme.test", models.UserRoleDeptHead),
		}}}
		rec := dbmodels.Requisition{}
		err := h.resolveApprovers(&rec)
		require.Error(t, err)
		require.True(t, helpers.IsValidation(err))
	})
}

func TestCheckDecider(t *testing.T) {
	deptHeadID := "dh-1"
	mdID := "md-1"
	rec := &dbmodels.Requisition{DeptHeadID: &deptHeadID, MdID: &mdID}

	t.Run(`assigned approver allowed`, func(t *testing.T) {
		require.NoError(t, checkDecider(rec, "dh-1", models.UserRoleDeptHead, false))
		require.NoError(t, checkDecider(rec, "md-1", models.UserRoleMD, true))
	})
	t.Run(`wrong role rejected`, func(t *testing.T) {
		require.Error(t, checkDecider(rec, "dh-1", models.UserRoleHR, false))
		require.Error(t, checkDecider(rec, "md-1", models.UserRoleDeptHead, true))
	})
	t.Run(`other user with the right role rejected`, func(t *testing.T) {
		require.Error(t, checkDecider(rec, "dh-2", models.UserRoleDeptHead, false))
		require.Error(t, checkDecider(rec, "md-2", models.UserRoleMD, true))
	})
	t.Run(`admin overrides assignment`, func(t *testing.T) {
		require.NoError(t, checkDecider(rec, "any", models.UserRoleAdmin, false))
		require.NoError(t, checkDecider(rec, "any", models.UserRoleAdmin, true))
	})
	t.Run(`unassigned approver slot accepts any user with the role`, func(t *testing.T) {
		open := &dbmodels.Requisition{}
		require.NoError(t, checkDecider(open, "dh-9", models.UserRoleDeptHead, false))
		require.NoError(t, checkDecider(open, "md-9", models.UserRoleMD, true))
	})
}

type fakeRequisitionStore struct {
	rec *dbmodels.Requisition
}

func (f fakeRequisitionStore) Create(rec dbmodels.Requisition) (string, error) { return "", nil }
func (f fakeRequisitionStore) GetByID(companyID, id string) (*dbmodels.Requisition, error) {
	cp := *f.rec
	return &cp, nil
}
func (f fakeRequisitionStore) Update(companyID, id string, updMap map[string]interface{}) error {
	return nil
}
func (f fakeRequisitionStore) Delete(companyID, id string) error { return nil }
func (f fakeRequisitionStore) List(companyID string, filter requisitionapimodels.RequisitionFilter) ([]dbmodels.Requisition, error) {
	return nil, nil
}
func (f fakeRequisitionStore) ListCount(companyID string, filter requisitionapimodels.RequisitionFilter) (int64, error) {
	return 0, nil
}
func (f fakeRequisitionStore) PendingCount(companyID string) (int64, error) { return 0, nil }

type fakeMailer struct{}

func (fakeMailer) SendEMail(from, to, message, subject string) error { return nil }

func newDecisionMock(t *testing.T) (sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	prev := db.DB
	db.DB = gormDB
	return mock, func() {
		db.DB = prev
		sqlDB.Close()
	}
}

func pendingRequisition() *dbmodels.Requisition {
	rec := &dbmodels.Requisition{
		RequisitionCode: "REQ-100",
		Title:           "Backend Engineer",
		Department:      "Engineering",
		Openings:        2,
		FinalStatus:     models.RequisitionStatusPendingApproval,
		DeptHeadStatus:  models.ApprovalStateApproved,
		MdStatus:        models.ApprovalStatePending,
	}
	rec.ID = "req-1"
	rec.CompanyID = "company-1"
	return rec
}

func TestDecisionJobSynthesis(t *testing.T) {
	approve := requisitionapimodels.RequisitionDecisionData{Approve: true}

	t.Run(`final approval writes the job in the same transaction`, func(t *testing.T) {
		mock, cleanup := newDecisionMock(t)
		defer cleanup()
		h := impl{store: fakeRequisitionStore{rec: pendingRequisition()}, mailer: fakeMailer{}}

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "requisitions" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`INSERT INTO "jobs"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("job-1"))
		mock.ExpectCommit()

		err := h.decide("company-1", "req-1", "md-1", models.UserRoleMD, approve, true)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run(`failed job insert rolls the approval back`, func(t *testing.T) {
		mock, cleanup := newDecisionMock(t)
		defer cleanup()
		h := impl{store: fakeRequisitionStore{rec: pendingRequisition()}, mailer: fakeMailer{}}

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "requisitions" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`INSERT INTO "jobs"`).
			WillReturnError(errors.New("insert failed"))
		mock.ExpectRollback()

		err := h.decide("company-1", "req-1", "md-1", models.UserRoleMD, approve, true)
		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run(`rejection records the decision without touching jobs`, func(t *testing.T) {
		mock, cleanup := newDecisionMock(t)
		defer cleanup()
		h := impl{store: fakeRequisitionStore{rec: pendingRequisition()}, mailer: fakeMailer{}}

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "requisitions" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		reject := requisitionapimodels.RequisitionDecisionData{Approve: false, Remarks: "budget freeze"}
		err := h.decide("company-1", "req-1", "md-1", models.UserRoleMD, reject, true)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
