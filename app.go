package main

import (
	"context"
	"os"

	"github.com/andareed/mini-text/bridge"
	"github.com/andareed/mini-text/capture"
	"github.com/andareed/mini-text/clipboard"
	"github.com/andareed/mini-text/config"
	"github.com/andareed/mini-text/logging"
	"github.com/andareed/mini-text/shell"
)

// windowService lists X11 windows and pastes the clipboard into one.
type windowService interface {
	List(ctx context.Context) ([]capture.Window, error)
	PasteInto(ctx context.Context, id string) error
}

// services are the collaborators built from the configuration, shared by
// the panel and the headless commands.
type services struct {
	cfg      *config.Config
	runner   shell.Runner
	clip     clipboard.Backend
	capturer capture.Capturer
	windows  windowService
}

func newServices(cfg *config.Config) (*services, error) {
	runner := shell.NewExec(cfg.Timing.CommandTimeout)

	clip, err := clipboard.New(cfg.Clipboard.Backend, clipboard.Options{Runner: runner, Out: os.Stderr})
	if err != nil {
		logging.Warnf("clipboard backend %q unavailable: %v", cfg.Clipboard.Backend, err)
		clip = clipboard.Unavailable(cfg.Clipboard.Backend, err)
	}

	capturer, err := capture.New(capture.Options{
		Backend:   cfg.Capture.Backend,
		Command:   cfg.Capture.Command,
		Delay:     cfg.Timing.CopyFromWait,
		KeyWait:   cfg.Timing.KeyInputWait,
		Runner:    runner,
		Clipboard: clip,
	})
	if err != nil {
		return nil, err
	}

	return &services{
		cfg:      cfg,
		runner:   runner,
		clip:     clip,
		capturer: capturer,
		windows:  capture.NewWindows(runner, cfg.Timing.WindowActivateWait),
	}, nil
}

func (s *services) controller(doc bridge.Document, sink bridge.StatusSink) (*bridge.Controller, error) {
	var capturer bridge.WindowCapturer
	if s.cfg.Strategy() == bridge.ExternalCapture {
		capturer = s.capturer
	}
	return bridge.New(s.clip, capturer, doc, sink, bridge.Options{
		Strategy:     s.cfg.Strategy(),
		CaptureDelay: s.cfg.Timing.CopyFromWait,
		Serialize:    s.cfg.UI.SerializeActions,
	})
}

// requiredTools lists external programs the configured backends run.
func (s *services) requiredTools() [][]string {
	var tools [][]string
	if s.cfg.Clipboard.Backend == "command" {
		tools = append(tools, clipboard.Tools())
	}
	if s.cfg.Strategy() == bridge.ExternalCapture {
		tools = append(tools, s.capturer.Tools())
	}
	return tools
}
