package filesapimodels

import (
	dbmodels "talentdesk-backend/models/db"
)

type FileView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	OwnerID     string `json:"owner_id"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

func FileConvert(rec dbmodels.Attachment) FileView {
	return FileView{
		ID:          rec.ID,
		Name:        rec.Name,
		Kind:        string(rec.Kind),
		OwnerID:     rec.OwnerID,
		ContentType: rec.ContentType,
		Size:        rec.Size,
	}
}

type SignedURLResponse struct {
	SignedURL string `json:"signed_url"`
	ExpiresIn int    `json:"expires_in"` // seconds
}
