// Package shell runs the external helpers (xdotool, xclip, wl-copy, ...)
// the clipboard and capture backends shell out to.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/andareed/mini-text/logging"
)

const DefaultTimeout = 10 * time.Second

var (
	ErrNotFound = errors.New("command not found")
	ErrTimeout  = errors.New("command timed out")
)

type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes one command. stdin may be empty.
type Runner interface {
	Run(ctx context.Context, name string, args []string, stdin string) (Result, error)
	LookPath(name string) (string, error)
}

// Exec runs commands with os/exec, each bounded by Timeout.
type Exec struct {
	Timeout time.Duration
}

func NewExec(timeout time.Duration) *Exec {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Exec{Timeout: timeout}
}

func (e *Exec) LookPath(name string) (string, error) {
	p, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return p, nil
}

func (e *Exec) Run(ctx context.Context, name string, args []string, stdin string) (Result, error) {
	path, err := e.LookPath(name)
	if err != nil {
		return Result{ExitCode: -1}, err
	}

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, args...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	// helpers that fork (xclip does) can hold the pipes open after a kill
	cmd.WaitDelay = time.Second

	logging.Debugf("shell: %s %s", name, strings.Join(args, " "))
	runErr := cmd.Run()
	res := Result{Stdout: outBuf.String(), Stderr: errBuf.String()}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		res.ExitCode = 124
		return res, fmt.Errorf("%s: %w after %s", name, ErrTimeout, timeout)
	}
	if runErr != nil {
		var ee *exec.ExitError
		if errors.As(runErr, &ee) {
			res.ExitCode = ee.ExitCode()
			if msg := strings.TrimSpace(res.Stderr); msg != "" {
				return res, fmt.Errorf("%s failed: %s", name, msg)
			}
			return res, fmt.Errorf("%s failed: %w", name, runErr)
		}
		res.ExitCode = -1
		return res, fmt.Errorf("%s: %w", name, runErr)
	}
	return res, nil
}
