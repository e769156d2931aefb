package filestorage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"talentdesk-backend/lib/utils/helpers"
	dbmodels "talentdesk-backend/models/db"
)

func TestUploadGuards(t *testing.T) {
	t.Run(`canceled context rejected before any write`, func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := impl{}.Upload(ctx, "company-1", dbmodels.AttachmentResume, "cand-1", "cv.pdf", "application/pdf", []byte("data"))
		require.Error(t, err)
	})

	t.Run(`empty file rejected`, func(t *testing.T) {
		_, err := impl{}.Upload(context.Background(), "company-1", dbmodels.AttachmentResume, "cand-1", "cv.pdf", "application/pdf", nil)
		require.Error(t, err)
		require.True(t, helpers.IsValidation(err))
	})
}
