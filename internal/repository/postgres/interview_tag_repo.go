package postgres

import (
	"context"

	"interview-tracker/internal/domain"
	"interview-tracker/pkg/database"
)

type interviewTagRepo struct {
	db database.DBTX
}

func NewInterviewTagRepository(db database.DBTX) domain.InterviewTagRepository {
	return &interviewTagRepo{db: db}
}

func (r *interviewTagRepo) Create(ctx context.Context, link *domain.InterviewTag) error {
	query := `INSERT INTO interview_tags (tag_id, interview_id, date_time, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query, link.TagID, link.InterviewID, link.DateTime, link.CreatedAt, link.UpdatedAt)
	return translatePgError(err)
}

func (r *interviewTagRepo) FetchByInterview(ctx context.Context, interviewID string) ([]domain.InterviewTag, error) {
	query := `SELECT tag_id, interview_id, date_time, created_at, updated_at
                FROM interview_tags
               WHERE interview_id = $1
               ORDER BY date_time`
	rows, err := r.db.Query(ctx, query, interviewID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := []domain.InterviewTag{}
	for rows.Next() {
		var link domain.InterviewTag
		if err := rows.Scan(&link.TagID, &link.InterviewID, &link.DateTime, &link.CreatedAt, &link.UpdatedAt); err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, rows.Err()
}

func (r *interviewTagRepo) Delete(ctx context.Context, interviewID, tagID string) error {
	return execAffectingOne(ctx, r.db,
		`DELETE FROM interview_tags WHERE interview_id = $1 AND tag_id = $2`, interviewID, tagID)
}
