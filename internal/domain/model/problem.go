package model

import "time"

// Problem is an algorithmic problem graded against ordered test cases.
// Problems are immutable once created.
type Problem struct {
	ID            int64     `json:"id"`
	ContestID     int64     `json:"contestId"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	Tags          []string  `json:"tags"`
	Points        int       `json:"points"`
	TimeLimitMs   int       `json:"timeLimit"`
	MemoryLimitMB int       `json:"memoryLimit"`
	TestCases     []TestCase `json:"-"`
	CreatedAt     time.Time `json:"-"`
}

type TestCase struct {
	ID             int64  `json:"-"`
	ProblemID      int64  `json:"-"`
	Input          string `json:"input"`
	ExpectedOutput string `json:"expectedOutput"`
	IsHidden       bool   `json:"-"`
	SortOrder      int    `json:"-"`
}

// TestCaseView is the externally visible shape of a non-hidden test case.
type TestCaseView struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expectedOutput"`
}

// ProblemDetail is the problem detail payload: only non-hidden cases, and of
// those only input and expected output.
type ProblemDetail struct {
	Problem
	VisibleTestCases []TestCaseView `json:"visibleTestCases"`
}
