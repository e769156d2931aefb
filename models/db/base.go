package dbmodels

import (
	"time"
)

type BaseModel struct {
	ID        string    `gorm:"primaryKey;default:uuid_generate_v4()" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BaseCompanyModel is embedded by every tenant-scoped row; company_id is the
// tenancy boundary and every store query filters on it.
type BaseCompanyModel struct {
	BaseModel
	CompanyID string `gorm:"index;type:varchar(36)" json:"company_id"`
}
