package judge

import (
	"context"
	"testing"
)

func evaluate(t *testing.T, sb Sandbox, cases []TestCase, points int) *Verdict {
	t.Helper()
	v, err := New(sb).Evaluate(context.Background(), cases, "code", LanguageJavaScript, Limits{TimeMs: 1000, MemoryMB: 64}, points)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return v
}

func TestEvaluateAccepted(t *testing.T) {
	sb := &stubSandbox{results: map[string]ExecutionResult{
		"5":  {Output: "5"},
		"10": {Output: "10"},
	}}
	cases := []TestCase{
		{Input: "5", ExpectedOutput: "5"},
		{Input: "10", ExpectedOutput: "10"},
	}

	v := evaluate(t, sb, cases, 100)
	if v.Status != StatusAccepted {
		t.Fatalf("expected accepted, got %s", v.Status)
	}
	if v.PointsEarned != 100 || v.TestCasesPassed != 2 || v.TotalTestCases != 2 {
		t.Fatalf("unexpected verdict: %+v", v)
	}
}

func TestEvaluateCrashForfeitsPartialCredit(t *testing.T) {
	sb := &stubSandbox{results: map[string]ExecutionResult{
		"5":  {Output: "5"},
		"10": {Crashed: true},
	}}
	cases := []TestCase{
		{Input: "5", ExpectedOutput: "5"},
		{Input: "10", ExpectedOutput: "10"},
	}

	v := evaluate(t, sb, cases, 100)
	if v.Status != StatusRuntimeError {
		t.Fatalf("expected runtime_error, got %s", v.Status)
	}
	if v.PointsEarned != 0 || v.TestCasesPassed != 0 {
		t.Fatalf("crash must zero points and passed count, got %+v", v)
	}
}

func TestEvaluateTimeoutKeepsPartialCredit(t *testing.T) {
	sb := &stubSandbox{results: map[string]ExecutionResult{
		"5":  {Output: "5"},
		"10": {TimedOut: true},
	}}
	cases := []TestCase{
		{Input: "5", ExpectedOutput: "5"},
		{Input: "10", ExpectedOutput: "10"},
	}

	v := evaluate(t, sb, cases, 100)
	if v.Status != StatusTimeLimitExceeded {
		t.Fatalf("expected time_limit_exceeded, got %s", v.Status)
	}
	if v.TestCasesPassed != 1 || v.PointsEarned != 50 {
		t.Fatalf("expected 1 passed / 50 points, got %+v", v)
	}
}

func TestEvaluatePartialPass(t *testing.T) {
	sb := &stubSandbox{results: map[string]ExecutionResult{
		"5":  {Output: "5"},
		"10": {Output: "wrong"},
	}}
	cases := []TestCase{
		{Input: "5", ExpectedOutput: "5"},
		{Input: "10", ExpectedOutput: "10"},
	}

	v := evaluate(t, sb, cases, 100)
	if v.Status != StatusWrongAnswer {
		t.Fatalf("expected wrong_answer, got %s", v.Status)
	}
	if v.TestCasesPassed != 1 || v.PointsEarned != 50 {
		t.Fatalf("expected 1 passed / 50 points, got %+v", v)
	}
}

func TestEvaluateInvariants(t *testing.T) {
	sb := &stubSandbox{results: map[string]ExecutionResult{
		"a": {Output: "ok"},
		"b": {Output: "nope"},
		"c": {Output: "ok"},
	}}
	cases := []TestCase{
		{Input: "a", ExpectedOutput: "ok"},
		{Input: "b", ExpectedOutput: "ok"},
		{Input: "c", ExpectedOutput: "ok"},
	}

	v := evaluate(t, sb, cases, 70)
	if v.TestCasesPassed > v.TotalTestCases {
		t.Fatalf("passed %d exceeds total %d", v.TestCasesPassed, v.TotalTestCases)
	}
	if v.PointsEarned < 0 || v.PointsEarned > 70 {
		t.Fatalf("points %d out of [0, 70]", v.PointsEarned)
	}
	if v.PointsEarned != Score(v.TestCasesPassed, v.TotalTestCases, 70) {
		t.Fatalf("points %d inconsistent with score formula", v.PointsEarned)
	}
}
