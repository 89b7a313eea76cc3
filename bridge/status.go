package bridge

import (
	"errors"
	"unicode/utf8"
)

// Severity drives the colour of the status readout.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhasePending
	PhaseResolved
)

func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseResolved:
		return "resolved"
	default:
		return "idle"
	}
}

var (
	ErrEmptyText       = errors.New("text is empty")
	ErrEmptyCapture    = errors.New("captured text is empty")
	ErrNoClipboardText = errors.New("no text in clipboard")

	// ErrBusy is returned when serialized actions are enabled and a trigger
	// arrives while another action is still running.
	ErrBusy = errors.New("another action is in flight")
)

// Status is the single piece of state the controller owns.
// Err is nil on info/success and holds the cause for error statuses.
type Status struct {
	Message  string
	Severity Severity
	Err      error
}

// IdleStatus is shown before the first action.
func IdleStatus() Status {
	return Status{Message: "waiting", Severity: SeverityInfo}
}

func (s Status) IsError() bool { return s.Severity == SeverityError }

func charCount(s string) int {
	return utf8.RuneCountInString(s)
}
