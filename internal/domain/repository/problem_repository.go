package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"judge_api/internal/common"
	"judge_api/internal/domain/model"
)

type ProblemRepository interface {
	ListProblems(ctx context.Context) ([]model.ProblemListEntry, error)
	ListProblemsByContestID(ctx context.Context, contestID int) ([]model.ProblemListEntry, error)
	FindProblemByID(ctx context.Context, id int) (*model.Problem, error)
}

type pgProblemRepository struct {
	db *sql.DB
}

func NewPgProblemRepository(db *sql.DB) ProblemRepository {
	return &pgProblemRepository{db: db}
}

func (r *pgProblemRepository) ListProblems(ctx context.Context) ([]model.ProblemListEntry, error) {
	return r.listEntries(ctx, "pgProblemRepository.ListProblems", `SELECT id, name FROM problems ORDER BY id ASC`)
}

func (r *pgProblemRepository) ListProblemsByContestID(ctx context.Context, contestID int) ([]model.ProblemListEntry, error) {
	return r.listEntries(ctx, "pgProblemRepository.ListProblemsByContestID",
		`SELECT id, name FROM problems WHERE contest_id = $1 ORDER BY id ASC`, contestID)
}

func (r *pgProblemRepository) listEntries(ctx context.Context, op, query string, args ...interface{}) ([]model.ProblemListEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s query: %w", op, err)
	}
	defer rows.Close()

	problems := []model.ProblemListEntry{}
	for rows.Next() {
		var p model.ProblemListEntry
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		problems = append(problems, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s rows.Err: %w", op, err)
	}
	return problems, nil
}

func (r *pgProblemRepository) FindProblemByID(ctx context.Context, id int) (*model.Problem, error) {
	query := `SELECT id, name, problem_statement, contest_id FROM problems WHERE id = $1`
	p := &model.Problem{}
	var contestID sql.NullInt64
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.ProblemStatement, &contestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgProblemRepository.FindProblemByID: %w", err)
	}
	if contestID.Valid {
		cid := int(contestID.Int64)
		p.ContestID = &cid
	}
	return p, nil
}
