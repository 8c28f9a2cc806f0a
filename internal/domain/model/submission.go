package model

import "time"

// MCQSubmission records a contestant's answer to a question. At most one row
// may exist per (user, question); a unique constraint enforces it.
type MCQSubmission struct {
	ID                  int64     `json:"id"`
	UserID              int64     `json:"userId"`
	QuestionID          int64     `json:"questionId"`
	ContestID           int64     `json:"contestId"`
	SelectedOptionIndex int       `json:"selectedOptionIndex"`
	IsCorrect           bool      `json:"isCorrect"`
	PointsEarned        int       `json:"pointsEarned"`
	CreatedAt           time.Time `json:"-"`
}

// DSASubmission records one grading attempt. Users may submit to the same
// problem any number of times; every attempt creates a new immutable row.
type DSASubmission struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"userId"`
	ProblemID       int64     `json:"problemId"`
	Code            string    `json:"-"`
	Language        string    `json:"language"`
	Status          string    `json:"status"`
	PointsEarned    int       `json:"pointsEarned"`
	TestCasesPassed int       `json:"testCasesPassed"`
	TotalTestCases  int       `json:"totalTestCases"`
	CreatedAt       time.Time `json:"-"`
}

type MCQResult struct {
	IsCorrect    bool `json:"isCorrect"`
	PointsEarned int  `json:"pointsEarned"`
}

type DSAResult struct {
	Status          string `json:"status"`
	PointsEarned    int    `json:"pointsEarned"`
	TestCasesPassed int    `json:"testCasesPassed"`
	TotalTestCases  int    `json:"totalTestCases"`
}
