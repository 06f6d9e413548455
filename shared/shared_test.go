package shared_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"frontdesk/shared"
	"frontdesk/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "zero total", total: 0, limit: 10, want: 1},
		{name: "exact pages", total: 20, limit: 10, want: 2},
		{name: "partial last page", total: 21, limit: 10, want: 3},
		{name: "zero limit", total: 5, limit: 0, want: 1},
		{name: "single page", total: 3, limit: 10, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Status   string    `db:"status"`
		RoomID   string    `db:"room_id"`
		NoTag    string    ``
		ZeroTime time.Time `db:"checked_out_at"`
	}

	fields := shared.TransformFields(update{Status: "CHECKED_OUT", RoomID: "r1", NoTag: "y"}, "frontdesk@example.com")

	assert.Equal(t, "CHECKED_OUT", fields["status"])
	assert.Equal(t, "r1", fields["room_id"])
	assert.NotContains(t, fields, "checked_out_at")
	assert.Contains(t, fields, "modified_at")
	assert.Equal(t, "frontdesk@example.com", fields["modified_by"])
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("abc", "id", "bookings")
	where, args := filter.GetWhereClause()

	assert.Equal(t, "(bookings.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "abc"}, args)
}

func TestConvertStringToBool(t *testing.T) {
	assert.Nil(t, shared.ConvertStringToBool(""))
	assert.Nil(t, shared.ConvertStringToBool("not-a-bool"))

	v := shared.ConvertStringToBool("true")
	if assert.NotNil(t, v) {
		assert.True(t, *v)
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "room", shared.BuildCacheKey("room"))
	assert.Equal(t, "room:r1", shared.BuildCacheKey("room", "r1"))
	assert.Equal(t, "booking:r1:2025-06-01", shared.BuildCacheKey("booking", "r1", "2025-06-01"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 10, Query: "smith", Status: "CONFIRMED", SortBy: "created_at", SortDir: "DESC"}
	filter := shared.FilterByID("r1", "room_id", "bookings")

	key := shared.BuildCacheKeyWithQuery("booking:list", params, filter)

	same := shared.BuildCacheKeyWithQuery("booking:list", params, shared.FilterByID("r1", "room_id", "bookings"))
	assert.Equal(t, key, same)

	otherPage := shared.BuildCacheKeyWithQuery("booking:list", dto.QueryParams{Page: 3, Limit: 10, Query: "smith", Status: "CONFIRMED", SortBy: "created_at", SortDir: "DESC"}, filter)
	assert.NotEqual(t, key, otherPage)

	otherFilter := shared.BuildCacheKeyWithQuery("booking:list", params, shared.FilterByID("r2", "room_id", "bookings"))
	assert.NotEqual(t, key, otherFilter)
}
