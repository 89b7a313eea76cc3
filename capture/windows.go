package capture

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/andareed/mini-text/logging"
	"github.com/andareed/mini-text/shell"
)

const DefaultActivateWait = 300 * time.Millisecond

// Window is a visible top-level window as reported by xdotool.
type Window struct {
	ID   string
	Name string
}

// Windows lists, focuses and pastes into X11 windows through xdotool.
type Windows struct {
	runner       shell.Runner
	activateWait time.Duration
	sleep        func(ctx context.Context, d time.Duration) error
}

func NewWindows(runner shell.Runner, activateWait time.Duration) *Windows {
	if runner == nil {
		runner = shell.NewExec(shell.DefaultTimeout)
	}
	if activateWait < 0 {
		activateWait = 0
	}
	return &Windows{runner: runner, activateWait: activateWait, sleep: Sleep}
}

// List returns the visible windows that have a title, in xdotool's order.
// Windows whose name cannot be read are skipped.
func (w *Windows) List(ctx context.Context) ([]Window, error) {
	res, err := w.runner.Run(ctx, "xdotool", []string{"search", "--onlyvisible", "--name", "."}, "")
	if err != nil {
		return nil, fmt.Errorf("window search failed: %w", err)
	}

	var windows []Window
	for _, id := range strings.Fields(res.Stdout) {
		name, err := w.runner.Run(ctx, "xdotool", []string{"getwindowname", id}, "")
		if err != nil {
			logging.Debugf("windows: skipping %s: %v", id, err)
			continue
		}
		title := strings.TrimSpace(name.Stdout)
		if title == "" {
			continue
		}
		windows = append(windows, Window{ID: id, Name: title})
	}
	logging.Debugf("windows: %d visible", len(windows))
	return windows, nil
}

// Activate focuses the window and waits for it to settle.
func (w *Windows) Activate(ctx context.Context, id string) error {
	if _, err := strconv.ParseUint(id, 10, 64); err != nil {
		return fmt.Errorf("invalid window id %q", id)
	}
	if _, err := w.runner.Run(ctx, "xdotool", []string{"windowactivate", "--sync", id}, ""); err != nil {
		return fmt.Errorf("window activation failed: %w", err)
	}
	return w.sleep(ctx, w.activateWait)
}

// PasteInto focuses the window and pastes the clipboard into it. The text
// must already be on the clipboard.
func (w *Windows) PasteInto(ctx context.Context, id string) error {
	if err := w.Activate(ctx, id); err != nil {
		return err
	}
	if _, err := w.runner.Run(ctx, "xdotool", []string{"key", "--clearmodifiers", "ctrl+v"}, ""); err != nil {
		return fmt.Errorf("paste failed: %w", err)
	}
	logging.Infof("windows: pasted into %s", id)
	return nil
}
