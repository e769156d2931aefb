package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "talentdesk-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Running migrations")
	for _, m := range []struct {
		name  string
		model interface{}
	}{
		{"Company", &dbmodels.Company{}},
		{"CompanyUser", &dbmodels.CompanyUser{}},
		{"Requisition", &dbmodels.Requisition{}},
		{"Job", &dbmodels.Job{}},
		{"Candidate", &dbmodels.Candidate{}},
		{"Employee", &dbmodels.Employee{}},
		{"Attachment", &dbmodels.Attachment{}},
	} {
		if err := DB.AutoMigrate(m.model); err != nil {
			return errors.Wrapf(err, "migration of %s failed", m.name)
		}
	}
	log.Info("Migrations finished")
	return nil
}
