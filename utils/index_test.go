package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/utils/tests"
)

func limitClause(t *testing.T, query *gorm.DB) (clause.Limit, bool) {
	t.Helper()
	c, ok := query.Statement.Clauses["LIMIT"]
	if !ok {
		return clause.Limit{}, false
	}
	lim, ok := c.Expression.(clause.Limit)
	require.True(t, ok)
	return lim, true
}

func TestApplyPagination(t *testing.T) {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{})
	require.NoError(t, err)

	intPtr := func(v int) *int { return &v }

	t.Run("limit and page translate to limit and offset", func(t *testing.T) {
		query := ApplyPagination(db.Session(&gorm.Session{NewDB: true}).Table("rooms"), intPtr(10), intPtr(3))
		lim, ok := limitClause(t, query)
		require.True(t, ok)
		require.NotNil(t, lim.Limit)
		assert.Equal(t, 10, *lim.Limit)
		assert.Equal(t, 20, lim.Offset)
	})

	t.Run("missing or out-of-range values leave the query unpaginated", func(t *testing.T) {
		cases := []struct {
			name  string
			limit *int
			page  *int
		}{
			{"nil limit", nil, intPtr(1)},
			{"nil page", intPtr(10), nil},
			{"zero limit", intPtr(0), intPtr(1)},
			{"zero page", intPtr(10), intPtr(0)},
		}
		for _, tc := range cases {
			query := ApplyPagination(db.Session(&gorm.Session{NewDB: true}).Table("rooms"), tc.limit, tc.page)
			_, ok := limitClause(t, query)
			assert.False(t, ok, tc.name)
		}
	})
}
