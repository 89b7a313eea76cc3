package dialogs

import (
	"fmt"
	"strings"

	"github.com/andareed/mini-text/logging"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Help lists the key bindings plus a few lines about the active setup.
type Help struct {
	visible  bool
	bindings []key.Binding
	notes    []string
}

func (d *Help) Init() tea.Cmd { return nil }

// NewHelpDialog creates a hidden help dialog for the given bindings.
func NewHelpDialog(bindings []key.Binding, notes ...string) *Help {
	return &Help{
		bindings: bindings,
		notes:    notes,
	}
}

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		switch m.String() {
		case "enter", "esc", "f1", "q":
			logging.Debugf("HelpDialog: closed with %s", m.String())
			d.visible = false
			return d, nil
		}
	}

	return d, nil
}

func (d *Help) View() string {
	if !d.visible {
		return ""
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")).
		BorderBackground(lipgloss.Color("236")).
		Padding(1, 2).
		Width(60)

	// Build lines "keys   description" from the bindings.
	var lines []string
	for _, b := range d.bindings {
		helpItem := b.Help()
		lines = append(lines, fmt.Sprintf("%-12s %s", helpItem.Key, helpItem.Desc))
	}

	content := strings.Join(lines, "\n")
	if len(d.notes) > 0 {
		content += "\n\n" + strings.Join(d.notes, "\n")
	}

	helpHint := lipgloss.NewStyle().
		Faint(true).
		Render("enter/esc to return")

	return box.Render(content + "\n\n" + helpHint)
}

func (d *Help) Show() {
	d.visible = true
}

func (d *Help) Hide() {
	d.visible = false
}

func (d *Help) IsVisible() bool { return d.visible }
