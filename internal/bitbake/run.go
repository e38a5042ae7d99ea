package bitbake

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/hehos/jetson-hooks/internal/log"
)

// ExitError reports an invocation that exited non-zero.
type ExitError struct {
	Name string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s: command failed with exit code %d", e.Name, e.Code)
}

// Runner executes invocations. Output goes to the runner's writers unless
// the caller supplies its own via RunTo.
type Runner interface {
	Run(ctx context.Context, inv Invocation) error
	RunTo(ctx context.Context, inv Invocation, out io.Writer) error
}

// ShellRunner runs invocations as "<shell> -c <script>".
type ShellRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewShellRunner returns a runner streaming to the given writers with stdin attached.
func NewShellRunner(stdout, stderr io.Writer) *ShellRunner {
	return &ShellRunner{Stdin: os.Stdin, Stdout: stdout, Stderr: stderr}
}

// Run executes inv, streaming its output.
func (r *ShellRunner) Run(ctx context.Context, inv Invocation) error {
	return r.run(ctx, inv, r.Stdout, r.Stderr)
}

// RunTo executes inv with stdout and stderr both sent to out.
func (r *ShellRunner) RunTo(ctx context.Context, inv Invocation, out io.Writer) error {
	return r.run(ctx, inv, out, out)
}

func (r *ShellRunner) run(ctx context.Context, inv Invocation, stdout, stderr io.Writer) error {
	l := log.FromContext(ctx)

	cmd := exec.CommandContext(ctx, inv.Shell, "-c", inv.Script)
	cmd.Dir = inv.Dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	done := l.Command(inv.Dir, inv.Shell, "-c", inv.Script)
	start := time.Now()
	err := cmd.Run()
	done(time.Since(start))

	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%s: %w", inv.Name, ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// Killed by a signal; there is no exit status to forward.
			code = 1
		}
		return &ExitError{Name: inv.Name, Code: code}
	}
	return fmt.Errorf("%s: %w", inv.Name, err)
}
