package model

import "time"

type Submission struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	ProblemID   int       `json:"problem_id"`
	Code        string    `json:"code"`
	Language    string    `json:"language"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// SubmissionListEntry is what GET /submissions returns per row.
type SubmissionListEntry struct {
	Language string `json:"language"`
	Code     string `json:"code"`
	Passed   bool   `json:"passed"`
}

type SubmissionDetails struct {
	ID        int    `json:"id"`
	ProblemID int    `json:"problem_id"`
	Language  string `json:"language"`
	Code      string `json:"code"`
	Passed    bool   `json:"passed"`
}
