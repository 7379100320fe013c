package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"judge_api/internal/common"
	"judge_api/internal/domain/model"
)

type SubmissionRepository interface {
	CreateSubmission(ctx context.Context, sub *model.Submission) error
	ListSubmissions(ctx context.Context) ([]model.Submission, error)
	FindSubmissionByID(ctx context.Context, id int) (*model.Submission, error)
}

type pgSubmissionRepository struct {
	db *sql.DB
}

func NewPgSubmissionRepository(db *sql.DB) SubmissionRepository {
	return &pgSubmissionRepository{db: db}
}

// CreateSubmission inserts sub and fills in the generated ID and SubmittedAt.
// An unknown user or problem is reported as common.ErrNotFound.
func (r *pgSubmissionRepository) CreateSubmission(ctx context.Context, sub *model.Submission) error {
	query := `INSERT INTO submissions (user_id, problem_id, code, language)
	          VALUES ($1, $2, $3, $4) RETURNING id, submitted_at`
	err := r.db.QueryRowContext(ctx, query, sub.UserID, sub.ProblemID, sub.Code, sub.Language).
		Scan(&sub.ID, &sub.SubmittedAt)
	if err != nil {
		if common.IsPgError(err, common.PgForeignKeyViolation) {
			return fmt.Errorf("submission references a missing user or problem: %w", common.ErrNotFound)
		}
		return fmt.Errorf("pgSubmissionRepository.CreateSubmission: %w", err)
	}
	return nil
}

func (r *pgSubmissionRepository) ListSubmissions(ctx context.Context) ([]model.Submission, error) {
	query := `SELECT id, user_id, problem_id, code, language, submitted_at FROM submissions ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgSubmissionRepository.ListSubmissions query: %w", err)
	}
	defer rows.Close()

	submissions := []model.Submission{}
	for rows.Next() {
		var s model.Submission
		if err := rows.Scan(&s.ID, &s.UserID, &s.ProblemID, &s.Code, &s.Language, &s.SubmittedAt); err != nil {
			return nil, fmt.Errorf("pgSubmissionRepository.ListSubmissions scan: %w", err)
		}
		submissions = append(submissions, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgSubmissionRepository.ListSubmissions rows.Err: %w", err)
	}
	return submissions, nil
}

func (r *pgSubmissionRepository) FindSubmissionByID(ctx context.Context, id int) (*model.Submission, error) {
	query := `SELECT id, user_id, problem_id, code, language, submitted_at FROM submissions WHERE id = $1`
	s := &model.Submission{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.UserID, &s.ProblemID, &s.Code, &s.Language, &s.SubmittedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgSubmissionRepository.FindSubmissionByID: %w", err)
	}
	return s, nil
}
