package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"judge_api/internal/common"
	"judge_api/internal/domain/model"
)

type ContestRepository interface {
	ListContests(ctx context.Context) ([]model.ContestListEntry, error)
	FindContestByID(ctx context.Context, id int) (*model.Contest, error)
}

type pgContestRepository struct {
	db *sql.DB
}

func NewPgContestRepository(db *sql.DB) ContestRepository {
	return &pgContestRepository{db: db}
}

func (r *pgContestRepository) ListContests(ctx context.Context) ([]model.ContestListEntry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM contests ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("pgContestRepository.ListContests query: %w", err)
	}
	defer rows.Close()

	contests := []model.ContestListEntry{}
	for rows.Next() {
		var c model.ContestListEntry
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("pgContestRepository.ListContests scan: %w", err)
		}
		contests = append(contests, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgContestRepository.ListContests rows.Err: %w", err)
	}
	return contests, nil
}

func (r *pgContestRepository) FindContestByID(ctx context.Context, id int) (*model.Contest, error) {
	query := `SELECT id, name, start_date, end_date FROM contests WHERE id = $1`
	c := &model.Contest{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.StartDate, &c.EndDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgContestRepository.FindContestByID: %w", err)
	}
	return c, nil
}
