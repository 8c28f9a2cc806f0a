package judge

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
)

const LanguageJavaScript = "javascript"

// NodeSandbox executes JavaScript submissions as node subprocesses. Every run
// gets its own temp directory and its own process; nothing is shared between
// runs, and the wall-clock limit is enforced by killing the process, so an
// infinite loop in submitted code cannot stall the runner. A semaphore caps
// how many submissions execute at once.
type NodeSandbox struct {
	binary    string
	tempDir   string
	maxOutput int64
	sem       *semaphore.Weighted
}

func NewNodeSandbox(binary, tempDir string, maxOutputBytes int64, maxConcurrent int) *NodeSandbox {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &NodeSandbox{
		binary:    binary,
		tempDir:   tempDir,
		maxOutput: maxOutputBytes,
		sem:       semaphore.NewWeighted(int64(maxConcurrent)),
	}
}

func (s *NodeSandbox) Run(ctx context.Context, code, language, input string, limits Limits) (ExecutionResult, error) {
	if language != LanguageJavaScript {
		// Unsupported languages cannot execute; graded as a crash.
		return ExecutionResult{Crashed: true}, nil
	}

	if err := s.sem.Acquire(ctx, 1); err != nil {
		return ExecutionResult{}, fmt.Errorf("sandbox: acquire execution slot: %w", err)
	}
	defer s.sem.Release(1)

	runDir := filepath.Join(s.tempDir, "judge-"+uuid.NewString())
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return ExecutionResult{}, fmt.Errorf("sandbox: create run dir: %w", err)
	}
	defer os.RemoveAll(runDir)

	srcPath := filepath.Join(runDir, "main.js")
	if err := os.WriteFile(srcPath, []byte(code), 0o644); err != nil {
		return ExecutionResult{}, fmt.Errorf("sandbox: write source file: %w", err)
	}

	runCtx, cancel := context.WithTimeout(ctx, time.Duration(limits.TimeMs)*time.Millisecond)
	defer cancel()

	// #nosec G204 -- binary comes from server config, arguments are fixed
	cmd := exec.CommandContext(runCtx, s.binary, fmt.Sprintf("--max-old-space-size=%d", limits.MemoryMB), srcPath)
	cmd.Dir = runDir
	cmd.Stdin = strings.NewReader(input)
	cmd.WaitDelay = time.Second // force kill if the process ignores the signal

	var stdout, stderr bytes.Buffer
	cmd.Stdout = newLimitedWriter(&stdout, s.maxOutput)
	cmd.Stderr = newLimitedWriter(&stderr, s.maxOutput)

	start := time.Now()
	runErr := cmd.Run()
	elapsed := time.Since(start)

	result := ExecutionResult{ElapsedMs: elapsed.Milliseconds()}

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		// Partial output from an aborted run is not trusted.
		result.TimedOut = true
		return result, nil
	}
	if runErr != nil {
		result.Crashed = true
		return result, nil
	}

	result.Output = stdout.String()
	return result, nil
}

// limitedWriter stops retaining output after limit bytes but keeps accepting
// writes, so a flood of output cannot exhaust memory or break the pipe.
type limitedWriter struct {
	w       io.Writer
	limit   int64
	written int64
	mu      sync.Mutex
}

func newLimitedWriter(w io.Writer, limit int64) io.Writer {
	return &limitedWriter{w: w, limit: limit}
}

func (lw *limitedWriter) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	remaining := lw.limit - lw.written
	if remaining <= 0 {
		return len(p), nil
	}

	writeLen := int64(len(p))
	if writeLen > remaining {
		writeLen = remaining
	}

	n, err := lw.w.Write(p[:writeLen])
	lw.written += int64(n)
	if err != nil {
		return n, err
	}
	return len(p), nil
}
