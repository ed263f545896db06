package pagination

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampPage(t *testing.T) {
	cases := []struct {
		name      string
		total     int
		requested int
		size      int
		want      Page
	}{
		{name: "clamps past end", total: 30, requested: 5, size: 14, want: Page{Number: 3, Size: 14, TotalCount: 30, TotalPages: 3, Start: 28, End: 30}},
		{name: "first page", total: 30, requested: 1, size: 14, want: Page{Number: 1, Size: 14, TotalCount: 30, TotalPages: 3, Start: 0, End: 14}},
		{name: "clamps below one", total: 30, requested: -2, size: 14, want: Page{Number: 1, Size: 14, TotalCount: 30, TotalPages: 3, Start: 0, End: 14}},
		{name: "exact multiple", total: 28, requested: 2, size: 14, want: Page{Number: 2, Size: 14, TotalCount: 28, TotalPages: 2, Start: 14, End: 28}},
		{name: "empty", total: 0, requested: 4, size: 14, want: Page{Number: 1, Size: 14, TotalCount: 0, TotalPages: 0, Start: 0, End: 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClampPage(tc.total, tc.requested, tc.size))
		})
	}
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, NormalizeLimit(0))
	assert.Equal(t, MaxLimit, NormalizeLimit(MaxLimit+10))
	assert.Equal(t, 7, NormalizeLimit(7))
	assert.Equal(t, 8, LimitWithBuffer(7))
}

func TestCursorRoundTrip(t *testing.T) {
	cursor := Cursor{CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), ID: uuid.New()}

	parsed, err := ParseCursor(EncodeCursor(cursor))
	require.NoError(t, err)
	require.NotNil(t, parsed)
	assert.True(t, cursor.CreatedAt.Equal(parsed.CreatedAt))
	assert.Equal(t, cursor.ID, parsed.ID)

	empty, err := ParseCursor("  ")
	require.NoError(t, err)
	assert.Nil(t, empty)

	_, err = ParseCursor("not-base64!")
	assert.Error(t, err)
}
