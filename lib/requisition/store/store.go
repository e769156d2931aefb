package requisitionstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"talentdesk-backend/models"
	requisitionapimodels "talentdesk-backend/models/api/requisition"
	dbmodels "talentdesk-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Requisition) (id string, err error)
	GetByID(companyID, id string) (rec *dbmodels.Requisition, err error)
	Update(companyID, id string, updMap map[string]interface{}) error
	Delete(companyID, id string) error
	List(companyID string, filter requisitionapimodels.RequisitionFilter) (list []dbmodels.Requisition, err error)
	ListCount(companyID string, filter requisitionapimodels.RequisitionFilter) (count int64, err error)
	PendingCount(companyID string) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Requisition) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(companyID, id string) (*dbmodels.Requisition, error) {
	rec := dbmodels.Requisition{}
	err := i.db.
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Preload("DeptHead").
		Preload("Md").
		Preload("RaisedBy").
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

func (i impl) Update(companyID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Requisition{}).
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("record not found")
	}
	return nil
}

func (i impl) Delete(companyID, id string) error {
	return i.db.
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Delete(&dbmodels.Requisition{}).
		Error
}

func (i impl) applyFilter(tx *gorm.DB, companyID string, filter requisitionapimodels.RequisitionFilter) *gorm.DB {
	tx = tx.Where("company_id = ?", companyID)
	if filter.Status != "" {
		tx = tx.Where("final_status = ?", filter.Status)
	}
	if filter.Type != "" {
		tx = tx.Where("type = ?", filter.Type)
	}
	if filter.Search != "" {
		tx = tx.Where("title ILIKE ?", "%"+filter.Search+"%")
	}
	return tx
}

func (i impl) List(companyID string, filter requisitionapimodels.RequisitionFilter) (list []dbmodels.Requisition, err error) {
	list = []dbmodels.Requisition{}
	page, limit := filter.GetPage()
	tx := i.applyFilter(i.db.Model(&dbmodels.Requisition{}), companyID, filter).
		Preload("DeptHead").
		Preload("Md").
		Preload("RaisedBy").
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit)
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(companyID string, filter requisitionapimodels.RequisitionFilter) (count int64, err error) {
	err = i.applyFilter(i.db.Model(&dbmodels.Requisition{}), companyID, filter).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) PendingCount(companyID string) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.Requisition{}).
		Where("company_id = ?", companyID).
		Where("final_status = ?", models.RequisitionStatusPendingApproval).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
