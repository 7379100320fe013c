package service

import (
	"context"
	"fmt"
	"judge_api/internal/domain/model"
	"judge_api/internal/domain/repository"
	"time"
)

type ContestService struct {
	contestRepo repository.ContestRepository
	problemRepo repository.ProblemRepository
	now         func() time.Time
}

// NewContestService builds the service. A nil clock means time.Now.
func NewContestService(contestRepo repository.ContestRepository, problemRepo repository.ProblemRepository, clock func() time.Time) *ContestService {
	if clock == nil {
		clock = time.Now
	}
	return &ContestService{contestRepo: contestRepo, problemRepo: problemRepo, now: clock}
}

func (s *ContestService) ListContests(ctx context.Context) ([]model.ContestListEntry, error) {
	return s.contestRepo.ListContests(ctx)
}

// GetContest returns the contest with its problems. Ongoing is evaluated
// against the service clock at call time.
func (s *ContestService) GetContest(ctx context.Context, id int) (*model.ContestDetails, error) {
	contest, err := s.contestRepo.FindContestByID(ctx, id)
	if err != nil {
		return nil, err
	}

	problems, err := s.problemRepo.ListProblemsByContestID(ctx, contest.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list problems for contest %d: %w", contest.ID, err)
	}

	return &model.ContestDetails{
		ID:       contest.ID,
		Name:     contest.Name,
		StartsAt: contest.StartDate,
		EndsAt:   contest.EndDate,
		Ongoing:  contest.OngoingAt(s.now()),
		Problems: problems,
	}, nil
}
