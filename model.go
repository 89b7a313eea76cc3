package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/andareed/mini-text/bridge"
	"github.com/andareed/mini-text/dialogs"
	"github.com/andareed/mini-text/logging"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// statusMsg and documentMsg come back from the controller through the
// events channel so every model mutation happens inside Update.
type statusMsg struct{ status bridge.Status }

type documentMsg struct{ text string }

type actionDoneMsg struct {
	action   string
	external bool
	err      error
}

const eventBuffer = 16

// editorDocument is the controller's view of the textarea. Reads return the
// last value the model published; writes are queued for Update.
type editorDocument struct {
	mu     sync.Mutex
	text   string
	events chan<- tea.Msg
}

func (d *editorDocument) Text() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.text
}

func (d *editorDocument) SetText(text string) {
	d.publish(text)
	d.events <- documentMsg{text: text}
}

func (d *editorDocument) publish(text string) {
	d.mu.Lock()
	d.text = text
	d.mu.Unlock()
}

type model struct {
	ctx    context.Context
	ctrl   *bridge.Controller
	doc    *editorDocument
	events chan tea.Msg

	editor     textarea.Model
	help       help.Model
	helpDialog *dialogs.Help
	footer     FooterState
	ui         uiState
}

func newModel(ctx context.Context, svc *services) (*model, error) {
	events := make(chan tea.Msg, eventBuffer)
	doc := &editorDocument{events: events}

	sink := func(st bridge.Status) { events <- statusMsg{status: st} }
	ctrl, err := svc.controller(doc, sink)
	if err != nil {
		return nil, err
	}

	ta := textarea.New()
	ta.Placeholder = "Type or capture text..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(svc.cfg.UI.Width)
	ta.SetHeight(svc.cfg.UI.Height)
	ta.Focus()

	notes := []string{fmt.Sprintf("capture mode: %s", ctrl.Strategy())}
	if ctrl.Strategy() == bridge.ExternalCapture {
		notes = append(notes, fmt.Sprintf("focus the target window within %s after ctrl+g", svc.cfg.Timing.CopyFromWait))
	}

	m := &model{
		ctx:        ctx,
		ctrl:       ctrl,
		doc:        doc,
		events:     events,
		editor:     ta,
		help:       help.New(),
		helpDialog: dialogs.NewHelpDialog(Keys.Legend(), notes...),
		footer: FooterState{
			Strategy:         ctrl.Strategy(),
			ClipboardBackend: svc.clip.Name(),
			CaptureBackend:   svc.cfg.Capture.Backend,
		},
		ui: uiState{status: ctrl.Status()},
	}
	return m, nil
}

func waitForEvent(events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg { return <-events }
}

func (m *model) Init() tea.Cmd {
	logging.Infof("mini-text: Initialised in %s mode", m.ctrl.Strategy())
	return tea.Batch(textarea.Blink, waitForEvent(m.events))
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case statusMsg:
		m.ui.status = msg.status
		return m, waitForEvent(m.events)
	case documentMsg:
		m.editor.SetValue(msg.text)
		m.doc.publish(m.editor.Value())
		return m, waitForEvent(m.events)
	case actionDoneMsg:
		m.ui.inFlight--
		if msg.external {
			m.ui.capturing--
		}
		if errors.Is(msg.err, bridge.ErrBusy) {
			logging.Debugf("%s ignored while another action runs", msg.action)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.helpDialog.IsVisible() {
		_, cmd := m.helpDialog.Update(msg)
		return m, cmd
	}

	switch {
	case msg.Type == tea.KeyCtrlC && m.ui.capturing > 0:
		// xdotool's ctrl+c lands here when the panel kept focus
		logging.Debugf("ctrl+c ignored during window capture")
		return m, nil
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, Keys.OpenHelp):
		m.helpDialog.Show()
		return m, nil
	case key.Matches(msg, Keys.Send):
		return m, m.send()
	case key.Matches(msg, Keys.Capture):
		return m, m.capture()
	case key.Matches(msg, Keys.Clear):
		m.editor.Reset()
		m.doc.publish("")
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.doc.publish(m.editor.Value())
	return m, cmd
}

// send reads the editor now and writes it to the clipboard off the loop.
func (m *model) send() tea.Cmd {
	text := m.editor.Value()
	ctx, ctrl := m.ctx, m.ctrl
	m.ui.inFlight++
	logging.Debugf("send triggered with %d bytes", len(text))
	return func() tea.Msg {
		_, err := ctrl.Send(ctx, text)
		return actionDoneMsg{action: "send", err: err}
	}
}

func (m *model) capture() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	external := ctrl.Strategy() == bridge.ExternalCapture
	m.ui.inFlight++
	if external {
		m.ui.capturing++
	}
	logging.Debugf("capture triggered (%s)", ctrl.Strategy())
	return func() tea.Msg {
		_, err := ctrl.Capture(ctx)
		return actionDoneMsg{action: "capture", external: external, err: err}
	}
}

func (m *model) resize(width, height int) {
	m.ui.width, m.ui.height = width, height
	m.ui.ready = true
	m.help.Width = width

	// margins and border; title and the two footer rows take 3 more
	w := width - 6
	h := height - 2 - 2 - 3
	if w < 10 {
		w = 10
	}
	if h < 3 {
		h = 3
	}
	m.editor.SetWidth(w)
	m.editor.SetHeight(h)
}

func (m *model) View() string {
	if !m.ui.ready {
		return "loading..."
	}
	if m.helpDialog.IsVisible() {
		return dialogs.Center(m.helpDialog.View(), m.ui.width, m.ui.height)
	}

	innerW := m.ui.width - 4
	title := titleStyle.Render("mini-text")

	m.footer.InFlight = m.ui.inFlight
	m.footer.Status = m.ui.status
	m.footer.Chars = utf8.RuneCountInString(m.editor.Value())
	m.footer.Legend = m.help.ShortHelpView(Keys.ShortHelp())
	footer := RenderFooter(innerW, m.footer)

	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		editorArea.Render(m.editor.View()),
		footer,
	))
}
