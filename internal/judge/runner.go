package judge

import (
	"context"
	"fmt"
	"strings"
)

// Runner iterates a problem's test cases through the sandbox.
type Runner struct {
	sandbox Sandbox
}

func NewRunner(sandbox Sandbox) *Runner {
	return &Runner{sandbox: sandbox}
}

// RunAll executes every test case in declaration order and returns one result
// per case. A case that crashes or times out is not compared for correctness
// but does not stop the remaining cases from being attempted. Only an
// infrastructure fault aborts the run.
func (r *Runner) RunAll(ctx context.Context, cases []TestCase, code, language string, limits Limits) ([]ExecutionResult, error) {
	results := make([]ExecutionResult, 0, len(cases))
	for i, tc := range cases {
		res, err := r.sandbox.Run(ctx, code, language, tc.Input, limits)
		if err != nil {
			return nil, fmt.Errorf("runner: test case %d: %w", i+1, err)
		}
		if !res.TimedOut && !res.Crashed {
			res.Matched = OutputsMatch(res.Output, tc.ExpectedOutput)
		}
		results = append(results, res)
	}
	return results, nil
}

// OutputsMatch compares actual and expected output after normalization:
// line endings unified, leading/trailing whitespace trimmed, then exact
// string equality. No numeric tolerance.
func OutputsMatch(actual, expected string) bool {
	return normalizeOutput(actual) == normalizeOutput(expected)
}

func normalizeOutput(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.TrimSpace(s)
}
