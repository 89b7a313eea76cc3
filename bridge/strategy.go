package bridge

import (
	"fmt"
	"strings"
)

// CaptureStrategy selects where Capture pulls text from.
type CaptureStrategy int

const (
	// ExternalCapture asks the window-capture service for the focused window's text.
	ExternalCapture CaptureStrategy = iota
	// ClipboardRead pastes whatever text the clipboard currently holds.
	ClipboardRead
)

func (s CaptureStrategy) String() string {
	switch s {
	case ExternalCapture:
		return "external"
	case ClipboardRead:
		return "clipboard"
	default:
		return fmt.Sprintf("CaptureStrategy(%d)", int(s))
	}
}

func ParseCaptureStrategy(name string) (CaptureStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "external", "window":
		return ExternalCapture, nil
	case "clipboard", "paste":
		return ClipboardRead, nil
	default:
		return 0, fmt.Errorf("unknown capture mode %q (want external or clipboard)", name)
	}
}
