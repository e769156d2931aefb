package attachmentstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "talentdesk-backend/models/db"
)

type Provider interface {
	Save(rec dbmodels.Attachment) (id string, err error)
	GetByID(companyID, id string) (rec *dbmodels.Attachment, err error)
	ListByOwner(companyID, ownerID string) (list []dbmodels.Attachment, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{db: DB}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.Attachment) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(companyID, id string) (*dbmodels.Attachment, error) {
	rec := dbmodels.Attachment{}
	err := i.db.
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListByOwner(companyID, ownerID string) (list []dbmodels.Attachment, err error) {
	err = i.db.
		Model(&dbmodels.Attachment{}).
		Where("company_id = ?", companyID).
		Where("owner_id = ?", ownerID).
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}
