package main

import (
	"github.com/andareed/mini-text/bridge"
)

func noticeText(msg string, sev bridge.Severity) string {
	if msg == "" {
		return ""
	}
	var icon string
	switch sev {
	case bridge.SeverityInfo:
		icon = "ℹ"
	case bridge.SeveritySuccess:
		icon = "✓"
	case bridge.SeverityError:
		icon = "×"
	default:
		icon = ""
	}
	if icon == "" {
		return msg
	}
	return icon + " " + msg
}

// statusLine is the plain status text, shared by the panel and the
// headless commands.
func statusLine(st bridge.Status) string {
	return "status: " + noticeText(st.Message, st.Severity)
}
