package helpers

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/pkg/errors"
)

// ErrNotFound marks a missing record; controllers map it to 404.
var ErrNotFound = errors.New("record not found")

// ErrValidation marks a domain-rule violation; controllers map it to 400.
var ErrValidation = errors.New("validation error")

func NotFoundErrf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrNotFound, format, args...)
}

func ValidationErrf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrValidation, format, args...)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

func GetFileContentType(file *multipart.FileHeader) string {
	if file == nil {
		return ""
	}
	return file.Header.Get("Content-Type")
}

// ParseDateOnly parses the YYYY-MM-DD strings used for doj/lwd and
// pipeline dates. Timezone-naive on purpose, the system stores dates only.
func ParseDateOnly(dateStr string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}
