package utils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePositiveInt64(t *testing.T) {
	id, err := ParsePositiveInt64("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "0", "-3", "abc"} {
		_, err := ParsePositiveInt64(raw)
		assert.Error(t, err, raw)
	}
}

func TestParseOptionalQueryTime(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)

	r := httptest.NewRequest("GET", "/entries?from=2024-03-01&to=2024-03-31", nil)
	from, err := ParseOptionalQueryTime(r, "from", loc)
	require.NoError(t, err)
	assert.True(t, from.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, loc)))

	to, err := ParseOptionalQueryDayEnd(r, "to", loc)
	require.NoError(t, err)
	assert.True(t, to.Equal(time.Date(2024, 4, 1, 0, 0, 0, 0, loc).Add(-time.Nanosecond)))

	r = httptest.NewRequest("GET", "/entries?to=2024-03-31T10:00:00Z", nil)
	to, err = ParseOptionalQueryDayEnd(r, "to", loc)
	require.NoError(t, err)
	assert.True(t, to.Equal(time.Date(2024, 3, 31, 10, 0, 0, 0, time.UTC)))

	missing, err := ParseOptionalQueryTime(r, "from", loc)
	require.NoError(t, err)
	assert.Nil(t, missing)

	r = httptest.NewRequest("GET", "/entries?from=yesterday", nil)
	_, err = ParseOptionalQueryTime(r, "from", loc)
	assert.Error(t, err)
}
