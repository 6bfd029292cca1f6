// Package installer runs the dependency manager inside a freshly generated
// project.
package installer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
	"time"
)

// DefaultCommand is the dependency installation command for generated projects.
const DefaultCommand = "composer install"

// tailLines is how many trailing output lines are kept for error messages.
const tailLines = 15

var (
	// ErrEmptyCommand indicates the configured command has no program.
	ErrEmptyCommand = errors.New("installer command is empty")

	// ErrNotFound indicates the installer program is not on PATH.
	ErrNotFound = errors.New("installer not found")

	// ErrTimeout indicates the installer did not finish within its timeout.
	ErrTimeout = errors.New("installer timed out")
)

// Config configures a Composer invocation.
type Config struct {
	// Command is split on whitespace; the first field is the program.
	Command string
	// Timeout bounds the run. Zero means no timeout.
	Timeout time.Duration
	// Output receives combined stdout/stderr as it is produced. Nil discards it.
	Output io.Writer
}

// Composer runs the configured install command.
type Composer struct {
	args     []string
	timeout  time.Duration
	output   io.Writer
	lookPath func(string) (string, error)
}

// NewComposer creates an installer from cfg. An empty command falls back to
// DefaultCommand.
func NewComposer(cfg Config) *Composer {
	cmd := cfg.Command
	if strings.TrimSpace(cmd) == "" {
		cmd = DefaultCommand
	}
	out := cfg.Output
	if out == nil {
		out = io.Discard
	}
	return &Composer{
		args:     strings.Fields(cmd),
		timeout:  cfg.Timeout,
		output:   out,
		lookPath: exec.LookPath,
	}
}

// Command returns the command line that Install runs.
func (c *Composer) Command() string {
	return strings.Join(c.args, " ")
}

// Install runs the command with dir as its working directory. A non-zero
// exit is reported as an *ExitError carrying the tail of the output.
func (c *Composer) Install(ctx context.Context, dir string) error {
	if len(c.args) == 0 {
		return ErrEmptyCommand
	}
	bin, err := c.lookPath(c.args[0])
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNotFound, c.args[0], err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	tail := newTailBuffer(tailLines)
	w := io.MultiWriter(c.output, tail)

	cmd := exec.CommandContext(ctx, bin, c.args[1:]...)
	cmd.Dir = dir
	cmd.Stdout = w
	cmd.Stderr = w

	if runErr := cmd.Run(); runErr != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w after %s: %s", ErrTimeout, c.timeout, c.Command())
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return &ExitError{Command: c.Command(), Tail: tail.String(), Err: runErr}
	}
	return nil
}

// ExitError reports an unsuccessful installer run.
type ExitError struct {
	Command string
	Tail    string // last lines of combined output
	Err     error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *ExitError) Unwrap() error { return e.Err }

// tailBuffer keeps the last n complete lines written to it, plus any
// trailing partial line.
type tailBuffer struct {
	mu      sync.Mutex
	n       int
	lines   []string
	partial bytes.Buffer
}

func newTailBuffer(n int) *tailBuffer {
	return &tailBuffer{n: n}
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.partial.Write(p)
	for {
		line, err := t.partial.ReadString('\n')
		if err != nil {
			// No newline yet; keep the fragment for the next write.
			t.partial.Reset()
			t.partial.WriteString(line)
			break
		}
		t.push(strings.TrimRight(line, "\r\n"))
	}
	return len(p), nil
}

func (t *tailBuffer) push(line string) {
	t.lines = append(t.lines, line)
	if len(t.lines) > t.n {
		t.lines = t.lines[len(t.lines)-t.n:]
	}
}

func (t *tailBuffer) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	lines := t.lines
	if t.partial.Len() > 0 {
		lines = append(append([]string(nil), lines...), t.partial.String())
		if len(lines) > t.n {
			lines = lines[len(lines)-t.n:]
		}
	}
	return strings.Join(lines, "\n")
}
