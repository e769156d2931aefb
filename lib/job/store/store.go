package jobstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	jobapimodels "talentdesk-backend/models/api/job"
	dbmodels "talentdesk-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Job) (id string, err error)
	GetByID(companyID, id string) (rec *dbmodels.Job, err error)
	GetByCode(companyID, jobCode string) (rec *dbmodels.Job, err error)
	Update(companyID, id string, updMap map[string]interface{}) error
	Delete(companyID, id string) error
	List(companyID string, filter jobapimodels.JobFilter) (list []dbmodels.Job, err error)
	ListCount(companyID string, filter jobapimodels.JobFilter) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Job) (id string, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(companyID, id string) (*dbmodels.Job, error) {
	rec := dbmodels.Job{}
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

func (i impl) GetByCode(companyID, jobCode string) (*dbmodels.Job, error) {
	rec := dbmodels.Job{}
	err := i.db.
		Where("job_code = ?", jobCode).
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

func (i impl) Update(companyID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Job{}).
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

// Delete removes the job row only; candidates referencing its job_code are
// kept on purpose.
func (i impl) Delete(companyID, id string) error {
	return i.db.
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Delete(&dbmodels.Job{}).
		Error
}

func (i impl) applyFilter(tx *gorm.DB, companyID string, filter jobapimodels.JobFilter) *gorm.DB {
	tx = tx.Where("company_id = ?", companyID)
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		tx = tx.Where("title ILIKE ?", "%"+filter.Search+"%")
	}
	return tx
}

func (i impl) List(companyID string, filter jobapimodels.JobFilter) (list []dbmodels.Job, err error) {
	list = []dbmodels.Job{}
	page, limit := filter.GetPage()
	tx := i.applyFilter(i.db.Model(&dbmodels.Job{}), companyID, filter).
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

func (i impl) ListCount(companyID string, filter jobapimodels.JobFilter) (count int64, err error) {
	err = i.applyFilter(i.db.Model(&dbmodels.Job{}), companyID, filter).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
