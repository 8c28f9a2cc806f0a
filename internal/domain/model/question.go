package model

import "time"

// Question is a multiple-choice question. CorrectOptionIndex is never
// serialized; contestees must not learn the answer from any endpoint.
type Question struct {
	ID                 int64     `json:"id"`
	ContestID          int64     `json:"contestId"`
	QuestionText       string    `json:"questionText"`
	Options            []string  `json:"options"`
	CorrectOptionIndex int       `json:"-"`
	Points             int       `json:"points"`
	CreatedAt          time.Time `json:"-"`
}
