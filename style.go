package main

import (
	"github.com/andareed/mini-text/bridge"
	"github.com/charmbracelet/lipgloss"
)

const (
	textFGColor    = "#c0c0c0"
	dimFGColor     = "#a0a0a0"
	infoFGColor    = "#9a9a9a"
	successFGColor = "#5fd75f"
	errorFGColor   = "#ff5f5f"
	barBGColor     = "#2b2b2b"
	pillBGColor    = "#ff9f1c"
	pillFGColor    = "#000000"
)

var (
	// Styles
	appstyle   = lipgloss.NewStyle().Margin(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(textFGColor))
	editorArea = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	// status readout, one style per severity
	statusInfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(infoFGColor))
	statusSuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(successFGColor))
	statusErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(errorFGColor)).Bold(true)

	footerBarStyle  = lipgloss.NewStyle().Background(lipgloss.Color(barBGColor)).Foreground(lipgloss.Color(textFGColor))
	modePillStyle   = lipgloss.NewStyle().Background(lipgloss.Color(pillBGColor)).Foreground(lipgloss.Color(pillFGColor)).Padding(0, 1)
	footerDimStyle  = lipgloss.NewStyle().Background(lipgloss.Color(barBGColor)).Foreground(lipgloss.Color(dimFGColor))
	busyMarkerStyle = lipgloss.NewStyle().Background(lipgloss.Color(barBGColor)).Foreground(lipgloss.Color(pillBGColor))
)

func statusStyle(sev bridge.Severity) lipgloss.Style {
	switch sev {
	case bridge.SeveritySuccess:
		return statusSuccessStyle
	case bridge.SeverityError:
		return statusErrorStyle
	default:
		return statusInfoStyle
	}
}
