package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/andareed/mini-text/bridge"
	"github.com/andareed/mini-text/capture"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

const countdownStep = 100 * time.Millisecond

func sendCmd() *cobra.Command {
	var window string
	cmd := &cobra.Command{
		Use:   "send [text...]",
		Short: "Copy text (arguments or stdin) to the clipboard",
		Long: `Copy text (arguments or stdin) to the clipboard. With --window the text is
then pasted into that window (see "mini-text windows" for ids).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadServices(cmd)
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
				text = string(data)
			}

			return runSend(cmd.Context(), svc, text, window, cmd.ErrOrStderr())
		},
	}
	cmd.Flags().StringVarP(&window, "window", "w", "", "Paste into this X11 window id after copying")
	return cmd
}

func windowsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "windows",
		Short: "List visible windows and their ids (for send --window)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadServices(cmd)
			if err != nil {
				return err
			}
			return runWindows(cmd.Context(), svc, cmd.OutOrStdout())
		},
	}
}

func captureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "capture",
		Short: "Capture text from the active window (or clipboard) and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadServices(cmd)
			if err != nil {
				return err
			}
			return runCapture(cmd.Context(), svc, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that the external tools the configured backends need are installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadServices(cmd)
			if err != nil {
				return err
			}
			return runCheck(svc, cmd.OutOrStdout())
		},
	}
}

func printStatus(w io.Writer) bridge.StatusSink {
	return func(st bridge.Status) {
		fmt.Fprintln(w, statusLine(st))
	}
}

func runSend(ctx context.Context, svc *services, text, window string, errOut io.Writer) error {
	sink := printStatus(errOut)
	ctrl, err := svc.controller(bridge.NewBuffer(text), sink)
	if err != nil {
		return err
	}
	st, err := ctrl.Send(ctx, text)
	if err != nil {
		return err
	}
	if st.IsError() {
		return exitCode(1)
	}
	if window == "" {
		return nil
	}

	if err := svc.windows.PasteInto(ctx, window); err != nil {
		sink(bridge.Status{Message: "error: " + err.Error(), Severity: bridge.SeverityError, Err: err})
		return exitCode(1)
	}
	sink(bridge.Status{Message: fmt.Sprintf("pasted into window %s", window), Severity: bridge.SeveritySuccess})
	return nil
}

func runWindows(ctx context.Context, svc *services, out io.Writer) error {
	windows, err := svc.windows.List(ctx)
	if err != nil {
		return err
	}
	if len(windows) == 0 {
		fmt.Fprintln(out, "no visible windows")
		return nil
	}
	for _, w := range windows {
		fmt.Fprintf(out, "%-10s %s\n", w.ID, w.Name)
	}
	return nil
}

func runCapture(ctx context.Context, svc *services, out, errOut io.Writer) error {
	doc := bridge.NewBuffer("")
	ctrl, err := svc.controller(doc, printStatus(errOut))
	if err != nil {
		return err
	}

	stop := func() {}
	if ctrl.Strategy() == bridge.ExternalCapture && isTerminal(errOut) {
		stop = startCountdown(errOut, svc.cfg.Timing.CopyFromWait)
	}
	st, err := ctrl.Capture(ctx)
	stop()
	if err != nil {
		return err
	}
	if st.IsError() {
		return exitCode(1)
	}

	fmt.Fprint(out, doc.Text())
	return nil
}

func runCheck(svc *services, out io.Writer) error {
	fmt.Fprintf(out, "mode:      %s\n", svc.cfg.Strategy())
	fmt.Fprintf(out, "clipboard: %s\n", svc.clip.Name())
	if svc.cfg.Strategy() == bridge.ExternalCapture {
		fmt.Fprintf(out, "capture:   %s (wait %s)\n", svc.cfg.Capture.Backend, svc.cfg.Timing.CopyFromWait)
	}

	missing := capture.Missing(svc.runner, svc.requiredTools()...)
	if len(missing) == 0 {
		fmt.Fprintln(out, "all required tools found")
		return nil
	}
	fmt.Fprintf(out, "missing tools: %s\n", strings.Join(missing, ", "))
	return exitCode(1)
}

// startCountdown shows how long the user has to focus the target window.
func startCountdown(w io.Writer, d time.Duration) (stop func()) {
	steps := int(d / countdownStep)
	if steps <= 0 {
		return func() {}
	}
	bar := progressbar.NewOptions(steps,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("focus the target window"),
		progressbar.OptionClearOnFinish(),
	)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		t := time.NewTicker(countdownStep)
		defer t.Stop()
		for i := 0; i < steps; i++ {
			select {
			case <-done:
				return
			case <-t.C:
				_ = bar.Add(1)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			wg.Wait()
			_ = bar.Finish()
		})
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
