package postgres

import (
	"fmt"
	"strings"

	"interview-tracker/internal/domain"
)

// interviewFilterColumns whitelists the fields a caller may match on.
var interviewFilterColumns = map[string]string{
	"id":            "i.id",
	"business_area": "i.business_area",
	"job":           "i.job",
	"interviewee":   "i.interviewee",
	"date_time":     "i.date_time",
	"duration":      "i.duration",
	"location":      "i.location",
	"status":        "i.status",
	"notes":         "i.notes",
}

// buildInterviewFilterQuery turns a filter into a parameterised query over
// interviewSelect. Values are never interpolated into the SQL text.
func buildInterviewFilterQuery(filter domain.InterviewFilter) (string, []any, error) {
	var conditions []string
	var args []any
	argIndex := 1

	if filter.From != nil && filter.To != nil {
		conditions = append(conditions, fmt.Sprintf("i.date_time BETWEEN $%d AND $%d", argIndex, argIndex+1))
		args = append(args, *filter.From, *filter.To)
		argIndex += 2
	}

	if len(filter.Interviewers) > 0 {
		conditions = append(conditions, fmt.Sprintf(
			"(SELECT array_agg(f.interviewer_id) FROM interview_interviewers f WHERE f.interview_id = i.id) @> $%d::uuid[]",
			argIndex,
		))
		args = append(args, filter.Interviewers)
		argIndex++
	}

	for _, cond := range filter.Equals {
		column, ok := interviewFilterColumns[cond.Field]
		if !ok {
			return "", nil, fmt.Errorf("postgres: unknown interview filter field %q", cond.Field)
		}
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, cond.Value)
		argIndex++
	}

	query := interviewSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += interviewGroupBy

	return query, args, nil
}
