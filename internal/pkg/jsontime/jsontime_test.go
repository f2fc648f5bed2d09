package jsontime_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itemshare/item-rental-backend/internal/pkg/jsontime"
)

func TestLocalDateTime(t *testing.T) {
	t.Run("encodes without a zone suffix", func(t *testing.T) {
		ts := time.Date(2026, 10, 1, 10, 30, 15, 987654321, time.UTC)
		out, err := json.Marshal(jsontime.New(ts))
		require.NoError(t, err)
		assert.Equal(t, `"2026-10-01T10:30:15"`, string(out))
	})

	t.Run("decodes the same layout", func(t *testing.T) {
		var ts jsontime.LocalDateTime
		require.NoError(t, json.Unmarshal([]byte(`"2026-10-01T10:30:15"`), &ts))
		assert.Equal(t, time.Date(2026, 10, 1, 10, 30, 15, 0, time.UTC), ts.Time)
	})

	t.Run("rejects zoned and malformed input", func(t *testing.T) {
		var ts jsontime.LocalDateTime
		assert.Error(t, json.Unmarshal([]byte(`"2026-10-01T10:30:15Z"`), &ts))
		assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
		assert.Error(t, json.Unmarshal([]byte(`42`), &ts))
	})
}
