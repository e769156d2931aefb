package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"talentdesk-backend/config"
	"talentdesk-backend/db"
	attachmentstore "talentdesk-backend/lib/file-storage/store"
	"talentdesk-backend/lib/utils/helpers"
	filesapimodels "talentdesk-backend/models/api/files"
	dbmodels "talentdesk-backend/models/db"
	s3client "talentdesk-backend/s3"
)

const (
	// presigned URL expiry bounds, seconds
	signedURLMinExpiry     = 60
	signedURLMaxExpiry     = 600
	signedURLDefaultExpiry = 600
)

type Provider interface {
	Upload(ctx context.Context, companyID string, kind dbmodels.AttachmentKind, ownerID, fileName, contentType string, file []byte) (fileID string, err error)
	GetSignedURL(ctx context.Context, companyID, fileID string, expiresInSec int) (resp filesapimodels.SignedURLResponse, err error)
	ListByOwner(companyID, ownerID string) (list []filesapimodels.FileView, err error)
	MakeCompanyBucket(ctx context.Context, companyID string) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		s3client: s3client.Client,
		store:    attachmentstore.NewInstance(db.DB),
	}
}

type impl struct {
	s3client *minio.Client
	store    attachmentstore.Provider
}

// Upload blocks until the object store acknowledges the write, then saves
// the metadata row.
func (i impl) Upload(ctx context.Context, companyID string, kind dbmodels.AttachmentKind, ownerID, fileName, contentType string, file []byte) (fileID string, err error) {
	logger := log.WithField("company_id", companyID).
		WithField("owner_id", ownerID)
	if helpers.IsContextDone(ctx) {
		return "", errors.New("upload aborted, context is done")
	}
	if len(file) == 0 {
		return "", helpers.ValidationErrf("file is empty")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	objectKey := fmt.Sprintf("%s/%s-%s", kind, uuid.NewString(), fileName)
	bucketName := i.getCompanyBucketName(companyID)
	_, err = i.s3client.PutObject(ctx, bucketName, objectKey,
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		logger.WithError(err).Error("object upload error")
		return "", err
	}
	fileID, err = i.store.Save(dbmodels.Attachment{
		BaseCompanyModel: dbmodels.BaseCompanyModel{
			CompanyID: companyID,
		},
		Name:        fileName,
		Kind:        kind,
		OwnerID:     ownerID,
		ObjectKey:   objectKey,
		ContentType: contentType,
		Size:        int64(len(file)),
	})
	if err != nil {
		logger.WithError(err).Error("attachment metadata save error")
		return "", err
	}
	logger.WithField("file_id", fileID).Info("attachment uploaded")
	return fileID, nil
}

// GetSignedURL returns a short-lived download link; expiry is clamped to
// the 60..600 second window.
func (i impl) GetSignedURL(ctx context.Context, companyID, fileID string, expiresInSec int) (resp filesapimodels.SignedURLResponse, err error) {
	rec, err := i.store.GetByID(companyID, fileID)
	if err != nil {
		return resp, err
	}
	if rec == nil {
		return resp, helpers.NotFoundErrf("attachment not found")
	}
	if expiresInSec <= 0 {
		expiresInSec = signedURLDefaultExpiry
	}
	if expiresInSec < signedURLMinExpiry {
		expiresInSec = signedURLMinExpiry
	}
	if expiresInSec > signedURLMaxExpiry {
		expiresInSec = signedURLMaxExpiry
	}
	reqParams := make(url.Values)
	reqParams.Set("response-content-disposition", fmt.Sprintf("attachment; filename=\"%s\"", rec.Name))
	signedURL, err := i.s3client.PresignedGetObject(ctx, i.getCompanyBucketName(companyID), rec.ObjectKey,
		time.Duration(expiresInSec)*time.Second, reqParams)
	if err != nil {
		log.WithField("file_id", fileID).WithError(err).Error("signed url error")
		return resp, err
	}
	return filesapimodels.SignedURLResponse{
		SignedURL: signedURL.String(),
		ExpiresIn: expiresInSec,
	}, nil
}

func (i impl) ListByOwner(companyID, ownerID string) (list []filesapimodels.FileView, err error) {
	recList, err := i.store.ListByOwner(companyID, ownerID)
	if err != nil {
		return nil, err
	}
	list = make([]filesapimodels.FileView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, filesapimodels.FileConvert(rec))
	}
	return list, nil
}

func (i impl) MakeCompanyBucket(ctx context.Context, companyID string) error {
	bucketName := i.getCompanyBucketName(companyID)
	location := "us-east-1"
	exists, err := i.s3client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
}

func (i impl) getCompanyBucketName(companyID string) string {
	return fmt.Sprintf("%s-%s", config.Conf.S3.BucketName, companyID)
}
