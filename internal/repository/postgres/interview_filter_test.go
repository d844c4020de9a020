package postgres

import (
	"strings"
	"testing"
	"time"

	"interview-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInterviewFilterQuery(t *testing.T) {
	from := time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, 10, 31, 0, 0, 0, 0, time.UTC)

	t.Run("empty filter selects everything", func(t *testing.T) {
		query, args, err := buildInterviewFilterQuery(domain.InterviewFilter{})
		require.NoError(t, err)
		assert.NotContains(t, query, "WHERE")
		assert.Empty(t, args)
	})

	t.Run("range needs both bounds", func(t *testing.T) {
		query, args, err := buildInterviewFilterQuery(domain.InterviewFilter{From: &from})
		require.NoError(t, err)
		assert.NotContains(t, query, "BETWEEN")
		assert.Empty(t, args)
	})

	t.Run("all conditions numbered in order", func(t *testing.T) {
		query, args, err := buildInterviewFilterQuery(domain.InterviewFilter{
			From:         &from,
			To:           &to,
			Interviewers: []string{interviewerA, interviewerB},
			Equals: []domain.FieldCondition{
				{Field: "job", Value: "j-1"},
				{Field: "duration", Value: 60},
			},
		})
		require.NoError(t, err)
		assert.Contains(t, query, "i.date_time BETWEEN $1 AND $2")
		assert.Contains(t, query, "@> $3::uuid[]")
		assert.Contains(t, query, "i.job = $4")
		assert.Contains(t, query, "i.duration = $5")
		assert.True(t, strings.HasSuffix(query, interviewGroupBy))
		assert.Equal(t, []any{from, to, []string{interviewerA, interviewerB}, "j-1", 60}, args)
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		_, _, err := buildInterviewFilterQuery(domain.InterviewFilter{
			Equals: []domain.FieldCondition{{Field: "1=1; DROP TABLE interviews", Value: 1}},
		})
		assert.Error(t, err)
	})
}
