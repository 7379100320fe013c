package service

import (
	"context"
	"judge_api/internal/common"
	"judge_api/internal/domain/model"
	"judge_api/internal/domain/repository"
	"judge_api/internal/platform/metrics"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// JudgeQueue receives a job for every stored submission.
type JudgeQueue interface {
	Enqueue(ctx context.Context, job model.JudgeJob) error
}

type SubmissionService struct {
	submissionRepo repository.SubmissionRepository
	judgeQueue     JudgeQueue // nil disables the hand-off
	submitterID    int
	log            logrus.FieldLogger
}

func NewSubmissionService(
	subRepo repository.SubmissionRepository,
	judgeQueue JudgeQueue,
	submitterID int,
	log logrus.FieldLogger,
) *SubmissionService {
	return &SubmissionService{
		submissionRepo: subRepo,
		judgeQueue:     judgeQueue,
		submitterID:    submitterID,
		log:            log,
	}
}

type CreateSubmissionRequest struct {
	Language string `json:"language" validate:"required,max=32"`
	Code     string `json:"code" validate:"required"`
}

// CreateSubmission stores the code under the configured submitter and hands
// it to the judge queue. A queue failure is logged and does not fail the call.
func (s *SubmissionService) CreateSubmission(ctx context.Context, problemID int, req CreateSubmissionRequest) (*model.Submission, error) {
	if problemID <= 0 || req.Language == "" || req.Code == "" {
		return nil, common.ErrBadRequest
	}

	submission := &model.Submission{
		UserID:    s.submitterID,
		ProblemID: problemID,
		Code:      req.Code,
		Language:  req.Language,
	}
	if err := s.submissionRepo.CreateSubmission(ctx, submission); err != nil {
		return nil, common.Errorf("failed to create submission: %w", err)
	}
	metrics.SubmissionsTotal.WithLabelValues(metrics.LanguageLabel(submission.Language)).Inc()

	s.enqueue(ctx, submission)
	return submission, nil
}

func (s *SubmissionService) enqueue(ctx context.Context, submission *model.Submission) {
	if s.judgeQueue == nil {
		return
	}
	job := model.JudgeJob{
		ID:           uuid.NewString(),
		SubmissionID: submission.ID,
		ProblemID:    submission.ProblemID,
		Language:     submission.Language,
		EnqueuedAt:   time.Now().UTC(),
	}
	entry := s.log.WithFields(logrus.Fields{"job_id": job.ID, "submission_id": submission.ID})
	if err := s.judgeQueue.Enqueue(ctx, job); err != nil {
		metrics.JudgeJobsTotal.WithLabelValues("failed").Inc()
		entry.WithError(err).Warn("failed to enqueue judge job")
		return
	}
	metrics.JudgeJobsTotal.WithLabelValues("enqueued").Inc()
	entry.Debug("judge job enqueued")
}

// ListSubmissions returns every submission with its verdict.
func (s *SubmissionService) ListSubmissions(ctx context.Context) ([]model.SubmissionListEntry, error) {
	subs, err := s.submissionRepo.ListSubmissions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.SubmissionListEntry, 0, len(subs))
	for _, sub := range subs {
		out = append(out, model.SubmissionListEntry{
			Language: sub.Language,
			Code:     sub.Code,
			Passed:   passed(sub),
		})
	}
	return out, nil
}

func (s *SubmissionService) GetSubmission(ctx context.Context, id int) (*model.SubmissionDetails, error) {
	sub, err := s.submissionRepo.FindSubmissionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.SubmissionDetails{
		ID:        sub.ID,
		ProblemID: sub.ProblemID,
		Language:  sub.Language,
		Code:      sub.Code,
		Passed:    passed(*sub),
	}, nil
}

// passed is the verdict. There is no judge yet, so nothing passes.
func passed(model.Submission) bool {
	return false
}
