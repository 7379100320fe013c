// Package repositorytest provides in-memory repository implementations for
// tests of the service and API layers.
package repositorytest

import (
	"context"
	"sort"
	"sync"
	"time"

	"judge_api/internal/common"
	"judge_api/internal/domain/model"
	"judge_api/internal/domain/repository"
)

// Store holds every table in memory. The zero value is not usable; call NewStore.
type Store struct {
	mu          sync.Mutex
	users       map[string]model.User
	contests    map[int]model.Contest
	problems    map[int]model.Problem
	submissions []model.Submission

	// Err, when set, is returned by every repository call.
	Err error
}

func NewStore() *Store {
	return &Store{
		users:    map[string]model.User{},
		contests: map[int]model.Contest{},
		problems: map[int]model.Problem{},
	}
}

func (s *Store) AddContest(c model.Contest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contests[c.ID] = c
}

func (s *Store) AddProblem(p model.Problem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.problems[p.ID] = p
}

func (s *Store) Users() repository.UserRepository             { return userRepo{s} }
func (s *Store) Contests() repository.ContestRepository       { return contestRepo{s} }
func (s *Store) Problems() repository.ProblemRepository       { return problemRepo{s} }
func (s *Store) Submissions() repository.SubmissionRepository { return submissionRepo{s} }

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, user *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if _, ok := r.s.users[user.Username]; ok {
		return common.ErrConflict
	}
	user.ID = len(r.s.users) + 1
	user.CreatedAt = time.Now()
	stored := *user
	stored.Email = ""
	r.s.users[user.Username] = stored
	return nil
}

func (r userRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	u, ok := r.s.users[username]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &u, nil
}

type contestRepo struct{ s *Store }

func (r contestRepo) ListContests(_ context.Context) ([]model.ContestListEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	out := []model.ContestListEntry{}
	for _, c := range r.s.contests {
		out = append(out, model.ContestListEntry{ID: c.ID, Name: c.Name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r contestRepo) FindContestByID(_ context.Context, id int) (*model.Contest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	c, ok := r.s.contests[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &c, nil
}

type problemRepo struct{ s *Store }

func (r problemRepo) list(match func(model.Problem) bool) ([]model.ProblemListEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	out := []model.ProblemListEntry{}
	for _, p := range r.s.problems {
		if match(p) {
			out = append(out, model.ProblemListEntry{ID: p.ID, Name: p.Name})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r problemRepo) ListProblems(_ context.Context) ([]model.ProblemListEntry, error) {
	return r.list(func(model.Problem) bool { return true })
}

func (r problemRepo) ListProblemsByContestID(_ context.Context, contestID int) ([]model.ProblemListEntry, error) {
	return r.list(func(p model.Problem) bool { return p.ContestID != nil && *p.ContestID == contestID })
}

func (r problemRepo) FindProblemByID(_ context.Context, id int) (*model.Problem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	p, ok := r.s.problems[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &p, nil
}

type submissionRepo struct{ s *Store }

func (r submissionRepo) CreateSubmission(_ context.Context, sub *model.Submission) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if _, ok := r.s.problems[sub.ProblemID]; !ok {
		return common.ErrNotFound
	}
	sub.ID = len(r.s.submissions) + 1
	sub.SubmittedAt = time.Now()
	r.s.submissions = append(r.s.submissions, *sub)
	return nil
}

func (r submissionRepo) ListSubmissions(_ context.Context) ([]model.Submission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	return append([]model.Submission{}, r.s.submissions...), nil
}

func (r submissionRepo) FindSubmissionByID(_ context.Context, id int) (*model.Submission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	if id < 1 || id > len(r.s.submissions) {
		return nil, common.ErrNotFound
	}
	sub := r.s.submissions[id-1]
	return &sub, nil
}
