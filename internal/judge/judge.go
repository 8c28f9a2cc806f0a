// Package judge grades contest submissions: it executes submitted source code
// against a problem's ordered test cases inside a subprocess sandbox, reduces
// the per-case outcomes to a single verdict and computes partial-credit points.
// The package is stateless and persists nothing.
package judge

import "context"

type Status string

const (
	StatusAccepted          Status = "accepted"
	StatusWrongAnswer       Status = "wrong_answer"
	StatusTimeLimitExceeded Status = "time_limit_exceeded"
	StatusRuntimeError      Status = "runtime_error"
)

// Limits are a problem's per-case execution constraints.
type Limits struct {
	TimeMs   int
	MemoryMB int
}

// TestCase is one (input, expected output) pair, in declaration order.
type TestCase struct {
	Input          string
	ExpectedOutput string
}

// ExecutionResult is the transient per-case outcome. TimedOut and Crashed are
// mutually exclusive with Matched: a case that timed out or crashed is never
// compared for correctness.
type ExecutionResult struct {
	Matched   bool
	TimedOut  bool
	Crashed   bool
	Output    string
	ElapsedMs int64
}

// Sandbox runs one (code, input) pair under the given limits. The returned
// error signals an infrastructure fault (temp dir, scheduling), never a
// property of the submitted code: bad code comes back as Crashed or TimedOut.
type Sandbox interface {
	Run(ctx context.Context, code, language, input string, limits Limits) (ExecutionResult, error)
}

// Verdict is the overall grading outcome of one submission.
type Verdict struct {
	Status          Status
	PointsEarned    int
	TestCasesPassed int
	TotalTestCases  int
}

type Judge struct {
	runner *Runner
}

func New(sandbox Sandbox) *Judge {
	return &Judge{runner: NewRunner(sandbox)}
}

// Evaluate runs the full pipeline for one submission. A runtime_error verdict
// forfeits partial credit: passed and points are reported as zero regardless
// of how other cases fared.
func (j *Judge) Evaluate(ctx context.Context, cases []TestCase, code, language string, limits Limits, points int) (*Verdict, error) {
	results, err := j.runner.RunAll(ctx, cases, code, language, limits)
	if err != nil {
		return nil, err
	}

	status := Classify(results)
	passed := CountPassed(results)
	if status == StatusRuntimeError {
		passed = 0
	}

	return &Verdict{
		Status:          status,
		PointsEarned:    Score(passed, len(cases), points),
		TestCasesPassed: passed,
		TotalTestCases:  len(cases),
	}, nil
}
