// Package capture grabs the text of the focused window after a short delay,
// giving the user time to switch to it.
package capture

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/andareed/mini-text/logging"
	"github.com/andareed/mini-text/shell"
)

const (
	DefaultDelay   = 3 * time.Second
	DefaultKeyWait = 300 * time.Millisecond
)

// ClipboardReader is the part of the clipboard the xdotool backend needs.
type ClipboardReader interface {
	ReadText(ctx context.Context) (text string, ok bool, err error)
}

type Options struct {
	Backend string // xdotool (default) or command
	// Command is the argv run by the command backend; its stdout is the capture.
	Command []string
	Delay   time.Duration
	KeyWait time.Duration

	Runner    shell.Runner
	Clipboard ClipboardReader
	// Sleep waits between steps; tests replace it.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Capturer is a window-capture backend.
type Capturer interface {
	CaptureActiveWindowText(ctx context.Context) (text string, ok bool, err error)
	// Tools lists the external programs the backend runs.
	Tools() []string
}

func New(opts Options) (Capturer, error) {
	if opts.Runner == nil {
		opts.Runner = shell.NewExec(shell.DefaultTimeout)
	}
	if opts.Sleep == nil {
		opts.Sleep = Sleep
	}
	if opts.Delay < 0 {
		opts.Delay = 0
	}
	if opts.KeyWait < 0 {
		opts.KeyWait = 0
	}

	switch strings.ToLower(opts.Backend) {
	case "", "xdotool":
		if opts.Clipboard == nil {
			return nil, fmt.Errorf("capture: xdotool backend needs a clipboard to read from")
		}
		return &xdotool{opts: opts}, nil
	case "command":
		if len(opts.Command) == 0 || strings.TrimSpace(opts.Command[0]) == "" {
			return nil, fmt.Errorf("capture: command backend needs capture.command")
		}
		return &external{opts: opts}, nil
	default:
		return nil, fmt.Errorf("unknown capture backend %q (want xdotool or command)", opts.Backend)
	}
}

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// xdotool selects everything in the focused window, copies it and reads the
// clipboard back.
type xdotool struct {
	opts Options
}

func (x *xdotool) Tools() []string { return []string{"xdotool"} }

func (x *xdotool) CaptureActiveWindowText(ctx context.Context) (string, bool, error) {
	logging.Debugf("capture: waiting %s for the target window", x.opts.Delay)
	if err := x.opts.Sleep(ctx, x.opts.Delay); err != nil {
		return "", false, err
	}

	if err := x.key(ctx, "ctrl+a", "select all"); err != nil {
		return "", false, err
	}
	if err := x.opts.Sleep(ctx, x.opts.KeyWait); err != nil {
		return "", false, err
	}
	if err := x.key(ctx, "ctrl+c", "copy"); err != nil {
		return "", false, err
	}
	if err := x.opts.Sleep(ctx, x.opts.KeyWait); err != nil {
		return "", false, err
	}

	text, ok, err := x.opts.Clipboard.ReadText(ctx)
	if err != nil {
		return "", false, err
	}
	logging.Infof("capture: read %d bytes after copy", len(text))
	return text, ok, nil
}

func (x *xdotool) key(ctx context.Context, keys, what string) error {
	if _, err := x.opts.Runner.Run(ctx, "xdotool", []string{"key", "--clearmodifiers", keys}, ""); err != nil {
		return fmt.Errorf("%s failed: %w", what, err)
	}
	return nil
}

// external runs a user-supplied capture program.
type external struct {
	opts Options
}

func (e *external) Tools() []string { return []string{e.opts.Command[0]} }

func (e *external) CaptureActiveWindowText(ctx context.Context) (string, bool, error) {
	if err := e.opts.Sleep(ctx, e.opts.Delay); err != nil {
		return "", false, err
	}
	res, err := e.opts.Runner.Run(ctx, e.opts.Command[0], e.opts.Command[1:], "")
	if err != nil {
		return "", false, err
	}
	if res.Stdout == "" {
		return "", false, nil
	}
	return res.Stdout, true, nil
}
