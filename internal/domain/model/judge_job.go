package model

import "time"

// JudgeJob is handed to the judge queue once a submission has been stored.
type JudgeJob struct {
	ID           string    `json:"job_id"`
	SubmissionID int       `json:"submission_id"`
	ProblemID    int       `json:"problem_id"`
	Language     string    `json:"language"`
	EnqueuedAt   time.Time `json:"enqueued_at"`
}
