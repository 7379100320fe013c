package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"judge_api/internal/common"
	"judge_api/internal/domain/model"
	"judge_api/internal/domain/repository/repositorytest"
)

func TestGetContestOngoing(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	store := repositorytest.NewStore()
	store.AddContest(model.Contest{ID: 1, Name: "March Cup", StartDate: start, EndDate: end})

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"before start", start.Add(-time.Second), false},
		{"at start", start, true},
		{"midway", start.Add(time.Hour), true},
		{"at end", end, true},
		{"after end", end.Add(time.Second), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewContestService(store.Contests(), store.Problems(), func() time.Time { return tt.now })
			got, err := svc.GetContest(context.Background(), 1)
			if err != nil {
				t.Fatal(err)
			}
			if got.Ongoing != tt.want {
				t.Fatalf("Ongoing = %v, want %v", got.Ongoing, tt.want)
			}
		})
	}
}

func TestGetContestProblems(t *testing.T) {
	store := repositorytest.NewStore()
	one, two := 1, 2
	store.AddContest(model.Contest{ID: 1, Name: "Round 1"})
	store.AddContest(model.Contest{ID: 2, Name: "Round 2"})
	store.AddProblem(model.Problem{ID: 3, Name: "C", ContestID: &one})
	store.AddProblem(model.Problem{ID: 1, Name: "A", ContestID: &one})
	store.AddProblem(model.Problem{ID: 2, Name: "B", ContestID: &two})
	store.AddProblem(model.Problem{ID: 4, Name: "Standalone"})

	svc := NewContestService(store.Contests(), store.Problems(), nil)
	got, err := svc.GetContest(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Problems) != 2 || got.Problems[0].ID != 1 || got.Problems[1].ID != 3 {
		t.Fatalf("unexpected problems: %+v", got.Problems)
	}

	got, err = svc.GetContest(context.Background(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Problems) != 1 || got.Problems[0].Name != "B" {
		t.Fatalf("unexpected problems: %+v", got.Problems)
	}
}

func TestGetContestMissing(t *testing.T) {
	store := repositorytest.NewStore()
	svc := NewContestService(store.Contests(), store.Problems(), nil)
	if _, err := svc.GetContest(context.Background(), 7); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListContestsNewestFirst(t *testing.T) {
	store := repositorytest.NewStore()
	for id := 1; id <= 3; id++ {
		store.AddContest(model.Contest{ID: id, Name: "Round"})
	}
	svc := NewContestService(store.Contests(), store.Problems(), nil)
	got, err := svc.ListContests(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0].ID != 3 || got[2].ID != 1 {
		t.Fatalf("unexpected order: %+v", got)
	}
}
