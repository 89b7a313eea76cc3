package main

import (
	"context"
	"errors"
	"sync"

	"github.com/andareed/mini-text/capture"
	"github.com/andareed/mini-text/config"
	"github.com/andareed/mini-text/shell"
)

type fakeClip struct {
	mu       sync.Mutex
	writes   []string
	writeErr error
	text     string
	ok       bool
	readErr  error
}

func (f *fakeClip) Name() string { return "fake" }

func (f *fakeClip) WriteText(_ context.Context, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, text)
	return f.writeErr
}

func (f *fakeClip) ReadText(context.Context) (string, bool, error) {
	return f.text, f.ok, f.readErr
}

type fakeCapturer struct {
	text  string
	ok    bool
	err   error
	tools []string
}

func (f *fakeCapturer) CaptureActiveWindowText(context.Context) (string, bool, error) {
	return f.text, f.ok, f.err
}

func (f *fakeCapturer) Tools() []string { return f.tools }

type fakeWindows struct {
	list     []capture.Window
	listErr  error
	pasteErr error
	pasted   []string
}

func (f *fakeWindows) List(context.Context) ([]capture.Window, error) {
	return f.list, f.listErr
}

func (f *fakeWindows) PasteInto(_ context.Context, id string) error {
	f.pasted = append(f.pasted, id)
	return f.pasteErr
}

type fakeRunner struct {
	installed map[string]bool
}

func (f *fakeRunner) Run(context.Context, string, []string, string) (shell.Result, error) {
	return shell.Result{}, errors.New("not expected")
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if f.installed[name] {
		return "/usr/bin/" + name, nil
	}
	return "", shell.ErrNotFound
}

func testServices(mode string, clip *fakeClip, capturer *fakeCapturer) *services {
	cfg := config.Default()
	cfg.Mode = mode
	if capturer == nil {
		capturer = &fakeCapturer{}
	}
	return &services{
		cfg:      cfg,
		runner:   &fakeRunner{},
		clip:     clip,
		capturer: capturer,
		windows:  &fakeWindows{},
	}
}
