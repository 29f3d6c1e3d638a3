package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStamp_FillsMissingFields(t *testing.T) {
	p := &Post{IdentityID: "u1", Content: "hello"}
	p.Stamp()

	require.NotEmpty(t, p.ID)
	_, err := uuid.Parse(p.ID)
	assert.NoError(t, err, "generated id must be a UUID")

	require.NotEmpty(t, p.Timestamp)
	parsed, err := time.Parse(time.RFC3339Nano, p.Timestamp)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, parsed.Location())
	assert.WithinDuration(t, time.Now().UTC(), parsed, time.Minute)
}

func TestStamp_PreservesExistingFields(t *testing.T) {
	i := &Identity{ID: "fixed-id", Timestamp: "2024-01-02T03:04:05Z"}
	i.Stamp()

	assert.Equal(t, "fixed-id", i.ID)
	assert.Equal(t, "2024-01-02T03:04:05Z", i.Timestamp)
}

func TestStamp_GeneratesDistinctIDs(t *testing.T) {
	a := &QuarantinedAttempt{}
	b := &QuarantinedAttempt{}
	a.Stamp()
	b.Stamp()

	assert.NotEqual(t, a.ID, b.ID)
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{
			name: "rfc3339",
			in:   "2024-05-06T07:08:09Z",
			want: time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC),
		},
		{
			name: "rfc3339 with fraction",
			in:   "2024-05-06T07:08:09.5Z",
			want: time.Date(2024, 5, 6, 7, 8, 9, 500000000, time.UTC),
		},
		{
			name: "zone-less isoformat",
			in:   "2024-05-06T07:08:09.123456",
			want: time.Date(2024, 5, 6, 7, 8, 9, 123456000, time.UTC),
		},
		{
			name: "epoch sentinel",
			in:   "1970-01-01T00:00:00",
			want: time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "garbage",
			in:   "not a timestamp",
			want: time.Time{},
		},
		{
			name: "empty",
			in:   "",
			want: time.Time{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, ParseTimestamp(tc.in).Equal(tc.want))
		})
	}
}
