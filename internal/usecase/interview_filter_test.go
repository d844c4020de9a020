package usecase_test

import (
	"encoding/json"
	"testing"
	"time"

	"interview-tracker/internal/domain"
	"interview-tracker/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	idA = "6f1c2f8e-3d0b-4a56-9a3e-1b2c3d4e5f60"
	idB = "0a9b8c7d-6e5f-4a3b-8c1d-2e3f4a5b6c7d"
)

func TestBuildInterviewFilter(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		payload map[string]any
		want    domain.InterviewFilter
		wantErr string
	}{
		{
			name:    "empty payload matches everything",
			payload: map[string]any{},
			want:    domain.InterviewFilter{},
		},
		{
			name:    "both bounds set a range",
			payload: map[string]any{"from": "2024-01-01", "to": "2024-01-31T00:00:00Z"},
			want:    domain.InterviewFilter{From: &from, To: &to},
		},
		{
			name:    "single bound is ignored",
			payload: map[string]any{"from": "2024-01-01"},
			want:    domain.InterviewFilter{},
		},
		{
			name:    "empty bound counts as absent",
			payload: map[string]any{"from": "2024-01-01", "to": ""},
			want:    domain.InterviewFilter{},
		},
		{
			name:    "single interviewer becomes a list",
			payload: map[string]any{"interviewer": idA},
			want:    domain.InterviewFilter{Interviewers: []string{idA}},
		},
		{
			name:    "interviewer list is deduplicated",
			payload: map[string]any{"interviewer": []any{idA, idB, idA}},
			want:    domain.InterviewFilter{Interviewers: []string{idA, idB}},
		},
		{
			name:    "equality keys are sorted",
			payload: map[string]any{"status": "scheduled", "duration": json.Number("60"), "job": idB},
			want: domain.InterviewFilter{Equals: []domain.FieldCondition{
				{Field: "duration", Value: 60},
				{Field: "job", Value: idB},
				{Field: "status", Value: "scheduled"},
			}},
		},
		{
			name:    "null values are dropped",
			payload: map[string]any{"notes": nil, "location": "Room 1"},
			want: domain.InterviewFilter{Equals: []domain.FieldCondition{
				{Field: "location", Value: "Room 1"},
			}},
		},
		{
			name:    "unknown key",
			payload: map[string]any{"salary": 10},
			wantErr: `"salary" is not allowed`,
		},
		{
			name:    "invalid bound",
			payload: map[string]any{"from": "yesterday", "to": "2024-01-31"},
			wantErr: `"from" must be a valid date`,
		},
		{
			name:    "invalid interviewer id",
			payload: map[string]any{"interviewer": []any{idA, "nope"}},
			wantErr: `"interviewer[1]" must be a valid GUID`,
		},
		{
			name:    "fractional duration",
			payload: map[string]any{"duration": 1.5},
			wantErr: `"duration" must be an integer`,
		},
		{
			name:    "duration beyond integer column",
			payload: map[string]any{"duration": json.Number("2147483648")},
			wantErr: `"duration" must be between -2147483648 and 2147483647`,
		},
		{
			name:    "huge duration",
			payload: map[string]any{"duration": json.Number("99999999999999999999")},
			wantErr: `"duration" must be between -2147483648 and 2147483647`,
		},
		{
			name:    "non-string status",
			payload: map[string]any{"status": true},
			wantErr: `"status" must be a string`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := usecase.BuildInterviewFilter(tt.payload)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.From, got.From)
			assert.Equal(t, tt.want.To, got.To)
			assert.ElementsMatch(t, tt.want.Interviewers, got.Interviewers)
			assert.Equal(t, tt.want.Equals, got.Equals)
		})
	}
}
