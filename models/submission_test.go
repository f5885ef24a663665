// path: models/submission_test.go
package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	t.Run("rfc3339", func(t *testing.T) {
		ts, err := ParseTimestamp("2024-03-01T12:30:45Z")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC), ts)
	})

	t.Run("naive iso8601", func(t *testing.T) {
		// Legacy records carry isoformat stamps without a zone.
		ts, err := ParseTimestamp("2024-03-01T12:30:45.123456")
		require.NoError(t, err)
		assert.Equal(t, 2024, ts.Year())
		assert.Equal(t, 123456000, ts.Nanosecond())
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseTimestamp("last tuesday")
		require.Error(t, err)
	})
}

func TestHasOtherPest(t *testing.T) {
	assert.False(t, (&Submission{OtherPest: ""}).HasOtherPest())
	assert.False(t, (&Submission{OtherPest: NA}).HasOtherPest())
	assert.True(t, (&Submission{OtherPest: "silverfish"}).HasOtherPest())
}
