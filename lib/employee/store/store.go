package employeestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	employeeapimodels "talentdesk-backend/models/api/employee"
	dbmodels "talentdesk-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Employee) (id string, err error)
	GetByID(companyID, id string) (rec *dbmodels.Employee, err error)
	Update(companyID, id string, updMap map[string]interface{}) error
	Delete(companyID, id string) error
	List(companyID string, filter employeeapimodels.EmployeeFilter) (list []dbmodels.Employee, err error)
	ListCount(companyID string, filter employeeapimodels.EmployeeFilter) (count int64, err error)
	ListAll(companyID string) (list []dbmodels.Employee, err error)
	CountByStatus(companyID string) (counts map[string]int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Employee) (id string, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(companyID, id string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
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

func (i impl) Update(companyID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Employee{}).
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
		Delete(&dbmodels.Employee{}).
		Error
}

func (i impl) applyFilter(tx *gorm.DB, companyID string, filter employeeapimodels.EmployeeFilter) *gorm.DB {
	tx = tx.Where("company_id = ?", companyID)
	if filter.Department != "" {
		tx = tx.Where("department = ?", filter.Department)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		tx = tx.Where("name ILIKE ? OR employee_code ILIKE ?", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}
	return tx
}

func (i impl) List(companyID string, filter employeeapimodels.EmployeeFilter) (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	page, limit := filter.GetPage()
	tx := i.applyFilter(i.db.Model(&dbmodels.Employee{}), companyID, filter).
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

func (i impl) ListCount(companyID string, filter employeeapimodels.EmployeeFilter) (count int64, err error) {
	err = i.applyFilter(i.db.Model(&dbmodels.Employee{}), companyID, filter).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) ListAll(companyID string) (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	err = i.db.
		Where("company_id = ?", companyID).
		Order("employee_code").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CountByStatus(companyID string) (map[string]int64, error) {
	type row struct {
		Status string
		Total  int64
	}
	rows := []row{}
	err := i.db.
		Model(&dbmodels.Employee{}).
		Select("status, count(*) as total").
		Where("company_id = ?", companyID).
		Group("status").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Total
	}
	return counts, nil
}
