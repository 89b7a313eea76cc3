package capture

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestWindows(s *script) *Windows {
	w := NewWindows(s, DefaultActivateWait)
	w.sleep = s.sleep
	return w
}

func TestWindowsList(t *testing.T) {
	s := &script{
		outputs: map[string]string{
			"xdotool search --onlyvisible --name .": "4194307\n52428803\n\n60817411\n",
			"xdotool getwindowname 4194307":         "Terminal\n",
			"xdotool getwindowname 52428803":        "  \n",
			"xdotool getwindowname 60817411":        "notes.txt - Editor\n",
		},
	}

	got, err := newTestWindows(s).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []Window{
		{ID: "4194307", Name: "Terminal"},
		{ID: "60817411", Name: "notes.txt - Editor"},
	}
	if len(got) != len(want) {
		t.Fatalf("windows = %+v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("window %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestWindowsListSkipsUnreadableNames(t *testing.T) {
	s := &script{
		outputs: map[string]string{
			"xdotool search --onlyvisible --name .": "1\n2\n",
			"xdotool getwindowname 2":               "Browser",
		},
		runErr: map[string]error{"xdotool getwindowname 1": errors.New("BadWindow")},
	}

	got, err := newTestWindows(s).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("windows = %+v", got)
	}
}

func TestWindowsListSearchFailure(t *testing.T) {
	boom := errors.New("Can't open display")
	s := &script{runErr: map[string]error{"xdotool search --onlyvisible --name .": boom}}

	if _, err := newTestWindows(s).List(context.Background()); !errors.Is(err, boom) {
		t.Errorf("err = %v", err)
	}
}

func TestWindowsPasteInto(t *testing.T) {
	s := &script{}

	if err := newTestWindows(s).PasteInto(context.Background(), "4194307"); err != nil {
		t.Fatalf("PasteInto: %v", err)
	}
	want := []step{
		{"run", "xdotool windowactivate --sync 4194307"},
		{"sleep", "300ms"},
		{"run", "xdotool key --clearmodifiers ctrl+v"},
	}
	if len(s.steps) != len(want) {
		t.Fatalf("steps = %+v", s.steps)
	}
	for i := range want {
		if s.steps[i] != want[i] {
			t.Errorf("step %d = %+v, want %+v", i, s.steps[i], want[i])
		}
	}
}

func TestWindowsActivateFailureSkipsPaste(t *testing.T) {
	boom := errors.New("XGetWindowProperty failed")
	s := &script{runErr: map[string]error{"xdotool windowactivate --sync 7": boom}}

	err := newTestWindows(s).PasteInto(context.Background(), "7")
	if !errors.Is(err, boom) || !strings.Contains(err.Error(), "window activation failed") {
		t.Fatalf("err = %v", err)
	}
	if len(s.steps) != 1 {
		t.Errorf("steps after failed activation = %+v", s.steps)
	}
}

func TestWindowsRejectsBadID(t *testing.T) {
	s := &script{}

	for _, id := range []string{"", "abc", "12; rm -rf /", "-3"} {
		if err := newTestWindows(s).Activate(context.Background(), id); err == nil {
			t.Errorf("Activate(%q) accepted", id)
		}
	}
	if len(s.steps) != 0 {
		t.Errorf("ran commands for invalid ids: %+v", s.steps)
	}
}

func TestNewWindowsClampsWait(t *testing.T) {
	w := NewWindows(&script{}, -time.Second)
	if w.activateWait != 0 {
		t.Errorf("activateWait = %s", w.activateWait)
	}
}
