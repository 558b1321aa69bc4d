package python

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// execResult is the raw outcome of one harness process. Exactly one of
// timedOut / launchErr / (exitCode, stdout, stderr) describes the terminal
// state.
type execResult struct {
	stdout    string
	stderr    string
	exitCode  int
	elapsed   time.Duration
	timedOut  bool
	launchErr error
}

// runHarness materializes the harness into a uniquely named temp file,
// executes it as an isolated process under a wall-clock deadline, and
// guarantees the file is removed on every exit path, including timeout and
// host-side failures. Removal errors are swallowed: a leaked temp file must
// never fail a grade.
func (r *Runner) runHarness(ctx context.Context, harness string) execResult {
	tmp, err := os.CreateTemp("", "guardian-harness-*.py")
	if err != nil {
		return execResult{launchErr: errors.Wrap(err, "create harness file")}
	}
	path := tmp.Name()
	defer func() {
		_ = os.Remove(path)
	}()

	if _, err := tmp.WriteString(harness); err != nil {
		_ = tmp.Close()
		return execResult{launchErr: errors.Wrap(err, "write harness file")}
	}
	if err := tmp.Close(); err != nil {
		return execResult{launchErr: errors.Wrap(err, "close harness file")}
	}

	runCtx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(runCtx, r.cfg.PythonBin, path)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// The child gets nothing from the host environment beyond the lookup
	// path; PYTHONDONTWRITEBYTECODE keeps __pycache__ out of the temp dir.
	cmd.Env = []string{"PATH=" + os.Getenv("PATH"), "PYTHONDONTWRITEBYTECODE=1"}
	// Own process group, so the deadline kill also reaps anything the
	// candidate code managed to fork.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return unix.Kill(-cmd.Process.Pid, unix.SIGKILL)
	}
	cmd.WaitDelay = time.Second

	start := time.Now()
	runErr := cmd.Run()
	res := execResult{
		stdout:  stdout.String(),
		stderr:  stderr.String(),
		elapsed: time.Since(start),
	}

	if runCtx.Err() == context.DeadlineExceeded {
		res.timedOut = true
		return res
	}
	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			res.exitCode = exitErr.ExitCode()
		} else {
			res.launchErr = runErr
		}
	}
	return res
}
