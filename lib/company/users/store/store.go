package companyusersstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"talentdesk-backend/models"
	dbmodels "talentdesk-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.CompanyUser) (id string, err error)
	GetByID(companyID, id string) (rec *dbmodels.CompanyUser, err error)
	FindByID(id string) (rec *dbmodels.CompanyUser, err error)
	GetByEmail(email string) (rec *dbmodels.CompanyUser, err error)
	ExistByEmail(email string) (bool, error)
	// FindApprover returns the first active user with the role, preferring a
	// department match when department is not empty.
	FindApprover(companyID string, role models.UserRole, department string) (rec *dbmodels.CompanyUser, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.CompanyUser) (id string, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(companyID, id string) (*dbmodels.CompanyUser, error) {
	rec := dbmodels.CompanyUser{}
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

func (i impl) FindByID(id string) (*dbmodels.CompanyUser, error) {
	rec := dbmodels.CompanyUser{}
	err := i.db.
		Where("id = ?", id).
		Preload("Company").
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

func (i impl) GetByEmail(email string) (*dbmodels.CompanyUser, error) {
	rec := dbmodels.CompanyUser{}
	err := i.db.
		Where("email = ?", email).
		Preload("Company").
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

func (i impl) ExistByEmail(email string) (bool, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.CompanyUser{}).
		Where("email = ?", email).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (i impl) FindApprover(companyID string, role models.UserRole, department string) (*dbmodels.CompanyUser, error) {
	if department != "" {
		rec := dbmodels.CompanyUser{}
		err := i.db.
			Where("company_id = ?", companyID).
			Where("role = ?", role).
			Where("department = ?", department).
			Where("is_active = true").
			First(&rec).
			Error
		if err == nil {
			return &rec, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	rec := dbmodels.CompanyUser{}
	err := i.db.
		Where("company_id = ?", companyID).
		Where("role = ?", role).
		Where("is_active = true").
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
