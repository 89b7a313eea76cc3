package dialogs

import tea "github.com/charmbracelet/bubbletea"

// Dialog is the common interface overlays implement so the panel can route
// keys to whichever one is visible.
type Dialog interface {
	Init() tea.Cmd // optional, can return nil
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string

	IsVisible() bool
	Show()
	Hide()
}
