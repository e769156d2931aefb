package candidatestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	candidateapimodels "talentdesk-backend/models/api/candidate"
	dbmodels "talentdesk-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Candidate) (id string, err error)
	GetByID(companyID, id string) (rec *dbmodels.Candidate, err error)
	Update(companyID, id string, updMap map[string]interface{}) error
	Delete(companyID, id string) error
	List(companyID string, filter candidateapimodels.CandidateFilter) (list []dbmodels.CandidateWithJob, err error)
	ListCount(companyID string, filter candidateapimodels.CandidateFilter) (count int64, err error)
	ListAll(companyID string) (list []dbmodels.Candidate, err error)
	ListAllWithJob(companyID string) (list []dbmodels.CandidateWithJob, err error)
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

func (i impl) Create(rec dbmodels.Candidate) (id string, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(companyID, id string) (*dbmodels.Candidate, error) {
	rec := dbmodels.Candidate{}
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
		Model(&dbmodels.Candidate{}).
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
		Delete(&dbmodels.Candidate{}).
		Error
}

func (i impl) applyFilter(tx *gorm.DB, companyID string, filter candidateapimodels.CandidateFilter) *gorm.DB {
	tx = tx.Where("candidates.company_id = ?", companyID)
	if filter.JobCode != "" {
		tx = tx.Where("candidates.job_code = ?", filter.JobCode)
	}
	if filter.Status != "" {
		tx = tx.Where("candidates.status = ?", filter.Status)
	}
	if filter.Search != "" {
		tx = tx.Where("candidates.name ILIKE ? OR candidates.email ILIKE ?", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}
	return tx
}

// List joins the job row for display; a left join keeps candidates whose job
// was deleted.
func (i impl) List(companyID string, filter candidateapimodels.CandidateFilter) (list []dbmodels.CandidateWithJob, err error) {
	list = []dbmodels.CandidateWithJob{}
	page, limit := filter.GetPage()
	tx := i.applyFilter(i.db.Model(&dbmodels.Candidate{}), companyID, filter).
		Select("candidates.*, jobs.title as job_title, jobs.department as job_department").
		Joins("LEFT JOIN jobs ON jobs.job_code = candidates.job_code AND jobs.company_id = candidates.company_id").
		Order("candidates.created_at desc").
		Offset((page - 1) * limit).
		Limit(limit)
	err = tx.Scan(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(companyID string, filter candidateapimodels.CandidateFilter) (count int64, err error) {
	err = i.applyFilter(i.db.Model(&dbmodels.Candidate{}), companyID, filter).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) ListAll(companyID string) (list []dbmodels.Candidate, err error) {
	list = []dbmodels.Candidate{}
	err = i.db.
		Where("company_id = ?", companyID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListAllWithJob(companyID string) (list []dbmodels.CandidateWithJob, err error) {
	list = []dbmodels.CandidateWithJob{}
	err = i.db.
		Model(&dbmodels.Candidate{}).
		Select("candidates.*, jobs.title as job_title, jobs.department as job_department").
		Joins("LEFT JOIN jobs ON jobs.job_code = candidates.job_code AND jobs.company_id = candidates.company_id").
		Where("candidates.company_id = ?", companyID).
		Order("candidates.created_at desc").
		Scan(&list).
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
		Model(&dbmodels.Candidate{}).
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
