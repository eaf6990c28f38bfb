package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/smm/internal/dashboard"
	"github.com/desertthunder/smm/internal/models"
	"github.com/desertthunder/smm/internal/services"
)

// focusRow is the row that receives navigation keys.
type focusRow int

const (
	platformRow focusRow = iota
	typeRow
	formRow
)

const title = "Social Monitoring"

// Model represents the TUI application state. The draft itself lives in the [dashboard.Dashboard];
// the model only tracks focus, cursor positions and the text input widget.
type Model struct {
	ctx         context.Context
	dash        *dashboard.Dashboard
	reporter    services.Reporter
	logger      *log.Logger
	platforms   []models.Platform
	types       []models.EntityType
	focus       focusRow
	platformIdx int
	typeIdx     int
	input       textinput.Model
	notice      dashboard.Notice
	width       int
	help        help.Model
	keys        keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, dash *dashboard.Dashboard, reporter services.Reporter, logger *log.Logger) *Model {
	input := textinput.New()
	input.CharLimit = 2048
	input.Width = 48
	input.Prompt = "› "

	return &Model{
		ctx:       ctx,
		dash:      dash,
		reporter:  reporter,
		logger:    logger,
		platforms: models.Platforms(),
		types:     models.EntityTypes(),
		focus:     platformRow,
		input:     input,
		help:      help.New(),
		keys:      newKeyMap(),
	}
}

// Init has nothing to load; the dashboard starts idle.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > 20 {
			m.input.Width = min(msg.Width-20, 80)
		}
		return m, nil

	case tea.KeyMsg:
		m.notice = dashboard.Notice{}
		if m.focus == formRow {
			return m.handleFormKeys(msg)
		}
		return m.handleButtonKeys(msg)

	case submitCompleteMsg:
		m.notice = m.dash.CompleteSubmit(msg.req, msg.err)
		if msg.err != nil {
			m.logger.Error("submission failed", "platform", msg.req.Platform, "type", msg.req.Type, "url", msg.req.URL, "error", msg.err)
		} else {
			m.logger.Info("submission accepted", "platform", msg.req.Platform, "type", msg.req.Type, "url", msg.req.URL)
			m.input.Reset()
		}
		m.syncFocus()
		return m, nil
	}

	if m.focus == formRow {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the dashboard rows, the current notice and contextual help.
func (m *Model) View() string {
	snap := m.dash.Snapshot()

	var b strings.Builder
	b.WriteString(styles.title.Render(title))
	b.WriteString("\n")

	platformLabels := make([]string, len(m.platforms))
	for i, p := range m.platforms {
		platformLabels[i] = p.Label()
	}
	b.WriteString(m.renderRow("Platform", platformLabels, m.platformIdx, indexOf(m.platforms, snap.Platform), m.focus == platformRow))

	if snap.ShowTypeButtons {
		typeLabels := make([]string, len(m.types))
		for i, t := range m.types {
			typeLabels[i] = t.Label()
		}
		b.WriteString("\n")
		b.WriteString(m.renderRow("Monitor", typeLabels, m.typeIdx, indexOf(m.types, snap.EntityType), m.focus == typeRow))
	}

	if snap.ShowForm {
		b.WriteString("\n\n")
		b.WriteString(styles.title.Render(snap.FormHeading))
		b.WriteString("\n")
		b.WriteString(styles.label.Render(snap.FieldLabel))
		b.WriteString(m.input.View())
	}

	if snap.State == dashboard.Submitting {
		b.WriteString("\n\n")
		b.WriteString(styles.warn.Render("Submitting..."))
	}

	if !m.notice.Empty() {
		b.WriteString("\n\n")
		b.WriteString(renderNotice(m.notice))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.ShortHelpView(m.keys.rowHelp(m.focus, snap.ShowTypeButtons)))
	return b.String()
}

func (m *Model) handleButtonKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.dash.Snapshot()

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.up):
		if m.focus == typeRow {
			m.focus = platformRow
		}
	case key.Matches(msg, m.keys.down):
		switch {
		case m.focus == platformRow && snap.ShowTypeButtons:
			m.focus = typeRow
		case m.focus == typeRow && snap.ShowForm:
			return m, m.focusForm()
		}
	case key.Matches(msg, m.keys.enter):
		if m.focus == platformRow {
			m.choosePlatform(m.platforms[m.platformIdx])
			return m, nil
		}
		return m, m.chooseType(m.types[m.typeIdx])
	case key.Matches(msg, m.keys.instagram):
		m.choosePlatform(models.PlatformInstagram)
	case key.Matches(msg, m.keys.twitter):
		m.choosePlatform(models.PlatformTwitter)
	case key.Matches(msg, m.keys.facebook):
		m.choosePlatform(models.PlatformFacebook)
	case key.Matches(msg, m.keys.user) && snap.ShowTypeButtons:
		return m, m.chooseType(models.EntityUser)
	case key.Matches(msg, m.keys.page) && snap.ShowTypeButtons:
		return m, m.chooseType(models.EntityPage)
	}
	return m, nil
}

func (m *Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.interrupt):
		return m, tea.Quit
	case key.Matches(msg, m.keys.enter):
		return m, m.submit()
	case key.Matches(msg, m.keys.back):
		// re-selecting the current platform is how the form is dismissed
		m.choosePlatform(m.dash.Snapshot().Platform)
		return m, nil
	case key.Matches(msg, m.keys.leaveForm):
		m.input.Blur()
		m.focus = typeRow
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.dash.UpdateURLText(m.input.Value())
	return m, cmd
}

func (m *Model) moveCursor(delta int) {
	switch m.focus {
	case platformRow:
		m.platformIdx = wrap(m.platformIdx+delta, len(m.platforms))
	case typeRow:
		m.typeIdx = wrap(m.typeIdx+delta, len(m.types))
	}
}

func (m *Model) choosePlatform(p models.Platform) {
	m.dash.SelectPlatform(p)
	if i := indexOf(m.platforms, p); i >= 0 {
		m.platformIdx = i
	}
	m.input.Blur()
	m.focus = typeRow
	m.logger.Debug("platform selected", "platform", p)
}

func (m *Model) chooseType(t models.EntityType) tea.Cmd {
	m.dash.SelectEntityType(t)
	if i := indexOf(m.types, t); i >= 0 {
		m.typeIdx = i
	}
	m.logger.Debug("entity type selected", "type", t)
	return m.focusForm()
}

// focusForm moves focus into the URL field, seeding it from the draft.
func (m *Model) focusForm() tea.Cmd {
	snap := m.dash.Snapshot()
	m.input.Placeholder = snap.Placeholder
	m.input.SetValue(snap.URLText)
	m.input.CursorEnd()
	m.focus = formRow
	return m.input.Focus()
}

// submit starts a submission and returns the command that performs the reporter call.
func (m *Model) submit() tea.Cmd {
	req, err := m.dash.BeginSubmit()
	if err != nil {
		m.notice = dashboard.RejectionNotice(err)
		m.logger.Warn("submission rejected", "error", err)
		return nil
	}

	ctx, reporter := m.ctx, m.reporter
	return func() tea.Msg {
		return submitCompleteMsg{req: req, err: reporter.SubmitMonitoringTarget(ctx, req)}
	}
}

// syncFocus keeps focus on a row that is still visible.
func (m *Model) syncFocus() {
	snap := m.dash.Snapshot()
	if m.focus == formRow && !snap.ShowForm {
		m.input.Blur()
		m.focus = typeRow
	}
	if m.focus == typeRow && !snap.ShowTypeButtons {
		m.focus = platformRow
	}
}

func (m *Model) renderRow(label string, buttons []string, cursor, active int, focused bool) string {
	rendered := make([]string, len(buttons))
	for i, text := range buttons {
		style := styles.button
		switch {
		case focused && i == cursor:
			style = styles.cursor
		case i == active:
			style = styles.active
		}
		rendered[i] = style.Render(text)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, rendered...)
	return lipgloss.JoinHorizontal(lipgloss.Center, styles.label.Render(label), row)
}

func renderNotice(n dashboard.Notice) string {
	switch n.Kind {
	case dashboard.NoticeSuccess:
		return styles.ok.Render("✓ " + n.Text)
	case dashboard.NoticeValidation:
		return styles.warn.Render("! " + n.Text)
	case dashboard.NoticeError:
		return styles.err.Render(fmt.Sprintf("✗ %s", n.Text))
	}
	return ""
}

func indexOf[T comparable](items []T, v T) int {
	for i, item := range items {
		if item == v {
			return i
		}
	}
	return -1
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
