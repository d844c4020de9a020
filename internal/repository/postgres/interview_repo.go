package postgres

import (
	"context"

	"interview-tracker/internal/domain"
	"interview-tracker/pkg/database"
)

type interviewRepo struct {
	db database.DBTX
	tx *database.TxManager
}

// NewInterviewRepository builds the interview store. Writes that touch the
// interviewer links run inside tx; a nil tx runs them directly on db.
func NewInterviewRepository(db database.DBTX, tx *database.TxManager) domain.InterviewRepository {
	return &interviewRepo{db: db, tx: tx}
}

// interviewSelect derives the interviewer id list from the join table, in
// submission order. Callers append WHERE and must end with interviewGroupBy.
const interviewSelect = `SELECT i.id, i.business_area, i.job, i.date_time, i.duration, i.location, i.status, i.notes, i.interviewee,
       i.created_at, i.updated_at,
       COALESCE(array_agg(ii.interviewer_id::text ORDER BY ii.position) FILTER (WHERE ii.interviewer_id IS NOT NULL), '{}') AS interviewer
  FROM interviews i
  LEFT JOIN interview_interviewers ii ON ii.interview_id = i.id`

const interviewGroupBy = ` GROUP BY i.id ORDER BY i.date_time, i.id`

func scanInterview(row rowScanner) (*domain.Interview, error) {
	var iv domain.Interview
	err := row.Scan(
		&iv.ID, &iv.BusinessArea, &iv.Job, &iv.DateTime, &iv.Duration, &iv.Location, &iv.Status, &iv.Notes,
		&iv.Interviewee, &iv.CreatedAt, &iv.UpdatedAt, &iv.Interviewer,
	)
	if err != nil {
		return nil, translatePgError(err)
	}
	if iv.Interviewer == nil {
		iv.Interviewer = []string{}
	}
	return &iv, nil
}

func (r *interviewRepo) Create(ctx context.Context, iv *domain.Interview) error {
	return r.tx.WithinReadWrite(ctx, func(ctx context.Context) error {
		db := database.QueryerFromContext(ctx, r.db)

		query := `INSERT INTO interviews (id, business_area, job, date_time, duration, location, status, notes, interviewee, created_at, updated_at)
                  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
		_, err := db.Exec(ctx, query,
			iv.ID, iv.BusinessArea, iv.Job, iv.DateTime, iv.Duration, iv.Location, iv.Status, iv.Notes,
			iv.Interviewee, iv.CreatedAt, iv.UpdatedAt,
		)
		if err != nil {
			return translatePgError(err)
		}
		return linkInterviewers(ctx, db, iv.ID, iv.Interviewer)
	})
}

func (r *interviewRepo) GetByID(ctx context.Context, id string) (*domain.Interview, error) {
	query := interviewSelect + ` WHERE i.id = $1` + interviewGroupBy
	return scanInterview(r.db.QueryRow(ctx, query, id))
}

func (r *interviewRepo) Fetch(ctx context.Context) ([]domain.Interview, error) {
	return r.list(ctx, interviewSelect+interviewGroupBy)
}

func (r *interviewRepo) Filter(ctx context.Context, filter domain.InterviewFilter) ([]domain.Interview, error) {
	query, args, err := buildInterviewFilterQuery(filter)
	if err != nil {
		return nil, err
	}
	return r.list(ctx, query, args...)
}

func (r *interviewRepo) list(ctx context.Context, query string, args ...any) ([]domain.Interview, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	interviews := []domain.Interview{}
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, err
		}
		interviews = append(interviews, *iv)
	}
	return interviews, rows.Err()
}

func (r *interviewRepo) Update(ctx context.Context, iv *domain.Interview) error {
	return r.tx.WithinReadWrite(ctx, func(ctx context.Context) error {
		db := database.QueryerFromContext(ctx, r.db)

		query := `UPDATE interviews
                     SET business_area = $2, job = $3, date_time = $4, duration = $5, location = $6,
                         status = $7, notes = $8, interviewee = $9, updated_at = $10
                   WHERE id = $1
               RETURNING created_at`
		err := db.QueryRow(ctx, query,
			iv.ID, iv.BusinessArea, iv.Job, iv.DateTime, iv.Duration, iv.Location, iv.Status, iv.Notes,
			iv.Interviewee, iv.UpdatedAt,
		).Scan(&iv.CreatedAt)
		if err != nil {
			return translatePgError(err)
		}

		if _, err := db.Exec(ctx, `DELETE FROM interview_interviewers WHERE interview_id = $1`, iv.ID); err != nil {
			return err
		}
		return linkInterviewers(ctx, db, iv.ID, iv.Interviewer)
	})
}

func (r *interviewRepo) Delete(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM interviews WHERE id = $1`, id)
}

// linkInterviewers inserts one join row per id, keeping the slice order in
// position. ids must be free of duplicates.
func linkInterviewers(ctx context.Context, db database.DBTX, interviewID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	query := `INSERT INTO interview_interviewers (interview_id, interviewer_id, position)
              SELECT $1, t.id, t.ord FROM unnest($2::uuid[]) WITH ORDINALITY AS t(id, ord)`
	_, err := db.Exec(ctx, query, interviewID, ids)
	return translatePgError(err)
}
