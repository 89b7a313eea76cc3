package main

import (
	"fmt"
	"strings"

	"github.com/andareed/mini-text/bridge"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

type FooterState struct {
	Strategy         bridge.CaptureStrategy
	ClipboardBackend string
	CaptureBackend   string

	InFlight int
	Chars    int

	Status bridge.Status
	Legend string
}

func RenderFooter(width int, st FooterState) string {
	if width <= 0 {
		return ""
	}
	if st.Legend == "" {
		st.Legend = "(f1 help · ctrl+s send · ctrl+g capture)"
	}
	if st.InFlight < 0 {
		st.InFlight = 0
	}

	line1 := renderControlBar(width, st)
	line2 := renderStatusBar(width, st)
	return line1 + "\n" + line2
}

func renderControlBar(width int, st FooterState) string {
	pill := modePillStyle.Render(modeLabel(st.Strategy))
	pillW := runewidth.StringWidth(modeLabel(st.Strategy)) + 2

	rightPlain := fmt.Sprintf(" %d chars ", st.Chars)
	busyPlain := ""
	if st.InFlight > 0 {
		busyPlain = fmt.Sprintf(" ● %d running ", st.InFlight)
	}
	rightW := runewidth.StringWidth(rightPlain) + runewidth.StringWidth(busyPlain)

	midW := width - pillW - rightW
	if midW < 0 {
		midW = 0
	}
	backends := "▸ clipboard: " + orNone(st.ClipboardBackend)
	if st.Strategy == bridge.ExternalCapture {
		backends += " · capture: " + orNone(st.CaptureBackend)
	}
	mid := padRightPlain(truncatePlain(" "+backends, midW), midW)

	return pill + footerDimStyle.Render(mid) + busyMarkerStyle.Render(busyPlain) + footerBarStyle.Render(rightPlain)
}

// Legend may already be styled, so it is measured with lipgloss.
func renderStatusBar(width int, st FooterState) string {
	legend := st.Legend
	if lipgloss.Width(legend) > width {
		legend = truncate.StringWithTail(legend, uint(width), "…")
	}
	legendW := lipgloss.Width(legend)

	leftW := width - legendW
	if leftW < 0 {
		leftW = 0
	}

	msgPlain := truncatePlain(statusLine(st.Status), leftW)
	msgPlain = padRightPlain(msgPlain, leftW)

	return statusStyle(st.Status.Severity).Render(msgPlain) + legend
}

func modeLabel(s bridge.CaptureStrategy) string {
	switch s {
	case bridge.ClipboardRead:
		return "CLIPBOARD"
	default:
		return "EXTERNAL"
	}
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(none)"
	}
	return s
}

func padRightPlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	cur := runewidth.StringWidth(s)
	if cur >= w {
		return s
	}
	return s + strings.Repeat(" ", w-cur)
}

func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= w {
		return s
	}
	return truncate.StringWithTail(s, uint(w), "…")
}
