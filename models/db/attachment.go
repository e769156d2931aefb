package dbmodels

type AttachmentKind string

const (
	AttachmentResume        AttachmentKind = "resume"
	AttachmentJobDesc       AttachmentKind = "job_description"
	AttachmentSupportingDoc AttachmentKind = "supporting_doc"
)

// Attachment is the metadata row for an object stored in the company bucket;
// the bytes themselves live in object storage under ObjectKey.
type Attachment struct {
	BaseCompanyModel
	Name        string         `gorm:"type:varchar(255)"`
	Kind        AttachmentKind `gorm:"index;type:varchar(50)"`
	OwnerID     string         `gorm:"index;type:varchar(36)"` // candidate or job id
	ObjectKey   string         `gorm:"type:varchar(512)"`
	ContentType string         `gorm:"type:varchar(255)"`
	Size        int64
}
