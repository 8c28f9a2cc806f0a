package judge

// Verdict classification is an ordered rule list: the first matching rule
// wins. A crash on any case dominates a timeout, which dominates correctness,
// so the status always reflects the worst per-case outcome.
var verdictRules = []struct {
	applies func([]ExecutionResult) bool
	status  Status
}{
	{anyCrashed, StatusRuntimeError},
	{anyTimedOut, StatusTimeLimitExceeded},
	{allMatched, StatusAccepted},
}

// Classify reduces per-case results to one overall status.
func Classify(results []ExecutionResult) Status {
	for _, rule := range verdictRules {
		if rule.applies(results) {
			return rule.status
		}
	}
	return StatusWrongAnswer
}

// CountPassed counts cases whose output matched. Crashed and timed-out cases
// never count as passed.
func CountPassed(results []ExecutionResult) int {
	passed := 0
	for _, r := range results {
		if r.Matched {
			passed++
		}
	}
	return passed
}

func anyCrashed(results []ExecutionResult) bool {
	for _, r := range results {
		if r.Crashed {
			return true
		}
	}
	return false
}

func anyTimedOut(results []ExecutionResult) bool {
	for _, r := range results {
		if r.TimedOut {
			return true
		}
	}
	return false
}

func allMatched(results []ExecutionResult) bool {
	if len(results) == 0 {
		return false
	}
	for _, r := range results {
		if !r.Matched {
			return false
		}
	}
	return true
}
