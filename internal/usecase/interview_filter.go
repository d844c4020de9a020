package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"interview-tracker/internal/domain"
	"interview-tracker/pkg/datetime"

	"github.com/google/uuid"
)

type filterKind int

const (
	uuidFilter filterKind = iota
	dateFilter
	intFilter
	stringFilter
)

// interviewFilterFields lists the payload keys matched by equality.
var interviewFilterFields = map[string]filterKind{
	"id":            uuidFilter,
	"business_area": uuidFilter,
	"job":           uuidFilter,
	"interviewee":   uuidFilter,
	"date_time":     dateFilter,
	"duration":      intFilter,
	"location":      stringFilter,
	"status":        stringFilter,
	"notes":         stringFilter,
}

// BuildInterviewFilter converts a search payload into an InterviewFilter.
//
// "from" and "to" bound date_time only when both are present. "interviewer"
// takes one id or a list and matches interviews linked to all of them. Every
// other key is an equality match; null values are ignored rather than matched
// against NULL. Unknown keys and mistyped values are rejected.
func BuildInterviewFilter(payload map[string]any) (domain.InterviewFilter, error) {
	var filter domain.InterviewFilter

	from, to := payload["from"], payload["to"]
	if present(from) && present(to) {
		fromTime, err := filterDate("from", from)
		if err != nil {
			return filter, err
		}
		toTime, err := filterDate("to", to)
		if err != nil {
			return filter, err
		}
		filter.From, filter.To = &fromTime, &toTime
	}

	keys := make([]string, 0, len(payload))
	for key := range payload {
		if key != "from" && key != "to" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := payload[key]

		if key == "interviewer" {
			ids, err := filterInterviewerIDs(value)
			if err != nil {
				return filter, err
			}
			filter.Interviewers = ids
			continue
		}

		kind, ok := interviewFilterFields[key]
		if !ok {
			return filter, fmt.Errorf("%q is not allowed", key)
		}
		if value == nil {
			continue
		}

		converted, err := convertFilterValue(key, kind, value)
		if err != nil {
			return filter, err
		}
		filter.Equals = append(filter.Equals, domain.FieldCondition{Field: key, Value: converted})
	}

	return filter, nil
}

// present mirrors a truthiness check: null and "" count as absent.
func present(v any) bool {
	if v == nil {
		return false
	}
	if s, ok := v.(string); ok && s == "" {
		return false
	}
	return true
}

func filterDate(key string, v any) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("%q must be a valid date", key)
	}
	t, err := datetime.Parse(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q must be a valid date", key)
	}
	return t, nil
}

func filterInterviewerIDs(v any) ([]string, error) {
	var raw []any
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string:
		raw = []any{val}
	case []any:
		raw = val
	case []string:
		for _, s := range val {
			raw = append(raw, s)
		}
	default:
		return nil, errors.New(`"interviewer" must be a valid GUID or an array of GUIDs`)
	}

	ids := make([]string, 0, len(raw))
	for i, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf(`"interviewer[%d]" must be a valid GUID`, i)
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf(`"interviewer[%d]" must be a valid GUID`, i)
		}
		ids = append(ids, id.String())
	}
	return uniqueIDs(ids), nil
}

func convertFilterValue(key string, kind filterKind, v any) (any, error) {
	switch kind {
	case uuidFilter:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%q must be a valid GUID", key)
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("%q must be a valid GUID", key)
		}
		return id.String(), nil
	case dateFilter:
		return filterDate(key, v)
	case intFilter:
		n, ok := toInt(v)
		if !ok {
			return nil, fmt.Errorf("%q must be an integer", key)
		}
		if n < math.MinInt32 || n > math.MaxInt32 {
			return nil, fmt.Errorf("%q must be between %d and %d", key, math.MinInt32, math.MaxInt32)
		}
		return int(n), nil
	default:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%q must be a string", key)
		}
		return s, nil
	}
}

// toInt reads a JSON integer. Magnitudes beyond int64 are clamped to ±2^32,
// outside every range callers accept.
func toInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		if math.Abs(n) >= math.MaxInt64 {
			return int64(math.Copysign(1<<32, n)), true
		}
		return int64(n), true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return toInt(f)
	default:
		return 0, false
	}
}

// uniqueIDs drops repeated ids, keeping first occurrence order.
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
