package service

import (
	"context"
	"judge_api/internal/domain/model"
	"judge_api/internal/domain/repository"
)

type ProblemService struct {
	problemRepo repository.ProblemRepository
}

func NewProblemService(problemRepo repository.ProblemRepository) *ProblemService {
	return &ProblemService{problemRepo: problemRepo}
}

func (s *ProblemService) ListProblems(ctx context.Context) ([]model.ProblemListEntry, error) {
	return s.problemRepo.ListProblems(ctx)
}

func (s *ProblemService) GetProblem(ctx context.Context, id int) (*model.Problem, error) {
	return s.problemRepo.FindProblemByID(ctx, id)
}
