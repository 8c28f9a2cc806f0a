package model

import "time"

type Contest struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	CreatorID   int64     `json:"creatorId"`
	CreatedAt   time.Time `json:"-"`
}

// IsActiveAt reports whether the contest accepts submissions at t: the window
// is closed before startTime and from endTime onward.
func (c *Contest) IsActiveAt(t time.Time) bool {
	return !t.Before(c.StartTime) && t.Before(c.EndTime)
}

// ContestDetail embeds the contest's question sets for the detail endpoint.
// Questions carry no correct answers and problems carry no test cases here.
type ContestDetail struct {
	Contest
	MCQs        []Question `json:"mcqs"`
	DSAProblems []Problem  `json:"dsaProblems"`
}
