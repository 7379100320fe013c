package model

type Problem struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	ProblemStatement string `json:"problem_statement"`
	ContestID        *int   `json:"-"` // Optional association
}

// ProblemListEntry is the projection used by problem listings and contest details.
type ProblemListEntry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
