package helpers

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestErrorClassification(t *testing.T) {
	t.Run(`not found survives wrapping`, func(t *testing.T) {
		err := NotFoundErrf("candidate %s", "abc")
		require.True(t, IsNotFound(err))
		require.False(t, IsValidation(err))

		wrapped := errors.Wrap(err, "outer")
		require.True(t, IsNotFound(wrapped))
	})
	t.Run(`validation survives wrapping`, func(t *testing.T) {
		err := ValidationErrf("openings must be at least %d", 1)
		require.True(t, IsValidation(err))
		require.False(t, IsNotFound(err))
	})
	t.Run(`plain errors are neither`, func(t *testing.T) {
		err := errors.New("db down")
		require.False(t, IsNotFound(err))
		require.False(t, IsValidation(err))
	})
}

func TestParseDateOnly(t *testing.T) {
	t.Run(`valid date`, func(t *testing.T) {
		d, err := ParseDateOnly("2026-08-28")
		require.NoError(t, err)
		require.Equal(t, 2026, d.Year())
		require.Equal(t, 28, d.Day())
	})
	t.Run(`wrong format rejected`, func(t *testing.T) {
		_, err := ParseDateOnly("28.08.2026")
		require.Error(t, err)
	})
	t.Run(`datetime rejected`, func(t *testing.T) {
		_, err := ParseDateOnly("2026-08-28T10:00:00Z")
		require.Error(t, err)
	})
}
