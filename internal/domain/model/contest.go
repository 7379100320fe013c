package model

import "time"

type Contest struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"starts_at"`
	EndDate   time.Time `json:"ends_at"`
}

// OngoingAt reports whether at falls inside the closed interval [StartDate, EndDate].
func (c *Contest) OngoingAt(at time.Time) bool {
	return !at.Before(c.StartDate) && !at.After(c.EndDate)
}

// ContestListEntry is the projection returned by contest listings.
type ContestListEntry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ContestDetails is a contest together with its problems and the ongoing flag
// computed at read time.
type ContestDetails struct {
	ID       int                `json:"id"`
	Name     string             `json:"name"`
	StartsAt time.Time          `json:"starts_at"`
	EndsAt   time.Time          `json:"ends_at"`
	Ongoing  bool               `json:"ongoing"`
	Problems []ProblemListEntry `json:"problems"`
}
