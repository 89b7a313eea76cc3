package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/andareed/mini-text/capture"
)

func TestRunSend(t *testing.T) {
	clip := &fakeClip{}
	var errOut bytes.Buffer

	if err := runSend(context.Background(), testServices("clipboard", clip, nil), "hello", "", &errOut); err != nil {
		t.Fatalf("runSend: %v", err)
	}
	if len(clip.writes) != 1 || clip.writes[0] != "hello" {
		t.Errorf("writes = %q", clip.writes)
	}
	if got := errOut.String(); !strings.Contains(got, "copied to clipboard (5 characters)") {
		t.Errorf("stderr = %q", got)
	}
}

func TestRunSendEmptyExitsNonZero(t *testing.T) {
	clip := &fakeClip{}
	var errOut bytes.Buffer

	err := runSend(context.Background(), testServices("clipboard", clip, nil), "  ", "", &errOut)
	var code exitCode
	if !errors.As(err, &code) || code != 1 {
		t.Fatalf("err = %v, want exit code 1", err)
	}
	if len(clip.writes) != 0 {
		t.Errorf("wrote %q", clip.writes)
	}
	if !strings.Contains(errOut.String(), "× text is empty") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestRunSendToWindow(t *testing.T) {
	clip := &fakeClip{}
	svc := testServices("clipboard", clip, nil)
	windows := &fakeWindows{}
	svc.windows = windows
	var errOut bytes.Buffer

	if err := runSend(context.Background(), svc, "hello", "4194307", &errOut); err != nil {
		t.Fatalf("runSend: %v", err)
	}
	if len(clip.writes) != 1 || len(windows.pasted) != 1 || windows.pasted[0] != "4194307" {
		t.Fatalf("writes = %q pasted = %q", clip.writes, windows.pasted)
	}
	lines := strings.Split(strings.TrimSpace(errOut.String()), "\n")
	if len(lines) != 2 || !strings.Contains(lines[1], "✓ pasted into window 4194307") {
		t.Errorf("stderr lines = %q", lines)
	}
}

func TestRunSendToWindowFailures(t *testing.T) {
	t.Run("paste fails", func(t *testing.T) {
		svc := testServices("clipboard", &fakeClip{}, nil)
		svc.windows = &fakeWindows{pasteErr: errors.New("window activation failed: BadWindow")}
		var errOut bytes.Buffer

		err := runSend(context.Background(), svc, "hello", "7", &errOut)
		var code exitCode
		if !errors.As(err, &code) || code != 1 {
			t.Fatalf("err = %v", err)
		}
		if !strings.Contains(errOut.String(), "× error: window activation failed: BadWindow") {
			t.Errorf("stderr = %q", errOut.String())
		}
	})

	t.Run("empty text skips the window", func(t *testing.T) {
		svc := testServices("clipboard", &fakeClip{}, nil)
		windows := &fakeWindows{}
		svc.windows = windows

		err := runSend(context.Background(), svc, " ", "7", &bytes.Buffer{})
		if err == nil {
			t.Fatal("expected an error exit")
		}
		if len(windows.pasted) != 0 {
			t.Errorf("pasted into %q after a failed send", windows.pasted)
		}
	})
}

func TestRunWindows(t *testing.T) {
	svc := testServices("external", &fakeClip{}, nil)
	svc.windows = &fakeWindows{list: []capture.Window{
		{ID: "4194307", Name: "Terminal"},
		{ID: "60817411", Name: "notes.txt - Editor"},
	}}
	var out bytes.Buffer

	if err := runWindows(context.Background(), svc, &out); err != nil {
		t.Fatalf("runWindows: %v", err)
	}
	want := "4194307    Terminal\n60817411   notes.txt - Editor\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}

	svc.windows = &fakeWindows{}
	out.Reset()
	if err := runWindows(context.Background(), svc, &out); err != nil || out.String() != "no visible windows\n" {
		t.Errorf("empty list: %q, %v", out.String(), err)
	}

	boom := errors.New("Can't open display")
	svc.windows = &fakeWindows{listErr: boom}
	if err := runWindows(context.Background(), svc, &out); !errors.Is(err, boom) {
		t.Errorf("err = %v", err)
	}
}

func TestRunCaptureClipboardMode(t *testing.T) {
	clip := &fakeClip{text: "world", ok: true}
	var out, errOut bytes.Buffer

	if err := runCapture(context.Background(), testServices("clipboard", clip, nil), &out, &errOut); err != nil {
		t.Fatalf("runCapture: %v", err)
	}
	if out.String() != "world" {
		t.Errorf("stdout = %q", out.String())
	}
	if !strings.Contains(errOut.String(), "pasted from clipboard (5 characters)") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestRunCaptureExternalMode(t *testing.T) {
	capturer := &fakeCapturer{text: "window text", ok: true}
	var out, errOut bytes.Buffer

	if err := runCapture(context.Background(), testServices("external", &fakeClip{}, capturer), &out, &errOut); err != nil {
		t.Fatalf("runCapture: %v", err)
	}
	if out.String() != "window text" {
		t.Errorf("stdout = %q", out.String())
	}
	lines := strings.Split(strings.TrimSpace(errOut.String()), "\n")
	if len(lines) != 2 || !strings.Contains(lines[0], "in 3 seconds") || !strings.Contains(lines[1], "(11 characters)") {
		t.Errorf("stderr lines = %q", lines)
	}
}

func TestRunCaptureEmptyPrintsNothing(t *testing.T) {
	var out, errOut bytes.Buffer

	err := runCapture(context.Background(), testServices("external", &fakeClip{}, &fakeCapturer{}), &out, &errOut)
	var code exitCode
	if !errors.As(err, &code) {
		t.Fatalf("err = %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("stdout = %q", out.String())
	}
	if !strings.Contains(errOut.String(), "captured text is empty") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestRunCheck(t *testing.T) {
	svc := testServices("external", &fakeClip{}, &fakeCapturer{tools: []string{"xdotool"}})
	var out bytes.Buffer

	err := runCheck(svc, &out)
	var code exitCode
	if !errors.As(err, &code) {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(out.String(), "missing tools: xdotool") {
		t.Errorf("output = %q", out.String())
	}

	svc.runner = &fakeRunner{installed: map[string]bool{"xdotool": true}}
	out.Reset()
	if err := runCheck(svc, &out); err != nil {
		t.Fatalf("runCheck: %v", err)
	}
	if !strings.Contains(out.String(), "all required tools found") {
		t.Errorf("output = %q", out.String())
	}
}

func TestCheckIgnoresCapturerInClipboardMode(t *testing.T) {
	svc := testServices("clipboard", &fakeClip{}, &fakeCapturer{tools: []string{"xdotool"}})
	var out bytes.Buffer

	if err := runCheck(svc, &out); err != nil {
		t.Fatalf("runCheck: %v\n%s", err, out.String())
	}
}
