package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/faizmokh/salidas/internal/outing"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
)

// Deps are the collaborators the TUI works against.
type Deps struct {
	Log     *outing.Log
	Adapter *outing.Adapter
	Sink    outing.Sink
	Logger  *zap.Logger
	Now     func() time.Time
}

// Model owns Bubble Tea state for the outing form.
type Model struct {
	ctx     context.Context
	log     *outing.Log
	adapter *outing.Adapter
	sink    outing.Sink
	logger  *zap.Logger
	now     func() time.Time

	mode  mode
	step  step
	input textinput.Model
	draft draft

	exporting  bool
	statusLine string
	errorLine  string
}

type mode uint8

const (
	modeNormal mode = iota
	modeAdd
	modeConfirmClear
)

type step uint8

const (
	stepDate step = iota
	stepDeparture
	stepReturn
	stepReason
	stepCount
)

var stepLabels = [stepCount]string{
	stepDate:      "Fecha (YYYY-MM-DD)",
	stepDeparture: "Hora de salida (HH:MM)",
	stepReturn:    "Hora de regreso (HH:MM)",
	stepReason:    "Motivo",
}

// draft accumulates the fields of the outing being added.
type draft struct {
	date      string
	departure string
	ret       string
	noReturn  bool
	reason    string
}

func (d draft) record() outing.Record {
	ret := d.ret
	if d.noReturn {
		ret = outing.NoReturn
	}
	return outing.Record{Date: d.date, Departure: d.departure, Return: ret, Reason: d.reason}
}

type exportResultMsg struct {
	count int
	err   error
}

// NewModel seeds a Bubble Tea model with required collaborators.
func NewModel(ctx context.Context, deps Deps) Model {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 200

	return Model{
		ctx:     ctx,
		log:     deps.Log,
		adapter: deps.Adapter,
		sink:    deps.Sink,
		logger:  logger,
		now:     now,
		mode:    modeNormal,
		input:   input,
	}
}

// Init has nothing to load; the log is restored before the program starts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update wires TUI state transitions from user input and async commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case exportResultMsg:
		return m.handleExportResult(msg)
	default:
		if m.mode == modeAdd {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeAdd:
		return m.handleAddKey(msg)
	case modeConfirmClear:
		return m.handleConfirmKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "a":
		return m.beginAdd()
	case "c":
		return m.beginClear()
	case "e":
		return m.beginExport()
	}
	return m, nil
}

func (m Model) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		return m.cancelInput("Cancelled.")
	case tea.KeyEnter:
		return m.submitStep()
	case tea.KeyTab:
		if m.step == stepReturn {
			return m.toggleNoReturn()
		}
		return m, nil
	}

	if m.step == stepReturn && m.draft.noReturn {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m.confirmClear()
	case "n", "N", "esc":
		return m.cancelInput("Clear cancelled.")
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) beginAdd() (tea.Model, tea.Cmd) {
	now := m.now()
	m.mode = modeAdd
	m.draft = draft{}
	m.statusLine = ""
	m.errorLine = ""
	return m.gotoStep(stepDate, now.Format(dateLayout))
}

func (m Model) gotoStep(s step, value string) (tea.Model, tea.Cmd) {
	m.step = s
	m.input.Reset()
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Placeholder = stepLabels[s]
	return m, m.input.Focus()
}

func (m Model) toggleNoReturn() (tea.Model, tea.Cmd) {
	m.draft.noReturn = !m.draft.noReturn
	m.errorLine = ""
	if m.draft.noReturn {
		m.input.Blur()
		return m, nil
	}
	return m, m.input.Focus()
}

func (m Model) submitStep() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())
	m.errorLine = ""

	switch m.step {
	case stepDate:
		if _, err := time.ParseInLocation(dateLayout, value, time.Local); err != nil {
			m.errorLine = "Fecha: use YYYY-MM-DD."
			return m, nil
		}
		m.draft.date = value
		return m.gotoStep(stepDeparture, m.now().Format(clockLayout))
	case stepDeparture:
		if _, err := outing.ParseClock(value); err != nil {
			m.errorLine = "Hora de salida: use HH:MM (24-hour)."
			return m, nil
		}
		m.draft.departure = value
		return m.gotoStep(stepReturn, "")
	case stepReturn:
		if !m.draft.noReturn {
			if _, err := outing.ParseClock(value); err != nil {
				m.errorLine = "Hora de regreso: use HH:MM (24-hour), or tab for Sin retorno."
				return m, nil
			}
			m.draft.ret = value
		}
		return m.gotoStep(stepReason, m.draft.reason)
	case stepReason:
		if value == "" {
			m.errorLine = "Motivo cannot be empty."
			return m, nil
		}
		m.draft.reason = value
		return m.saveDraft()
	}
	return m, nil
}

// saveDraft appends inline so the log is only ever mutated from Update.
func (m Model) saveDraft() (tea.Model, tea.Cmd) {
	record := m.draft.record()
	if err := m.log.Append(m.ctx, record); err != nil {
		m.errorLine = err.Error()
		return m, nil
	}
	m.logger.Info("outing appended",
		zap.String("date", record.Date),
		zap.Bool("has_return", record.HasReturn()),
		zap.Int("used_minutes", m.log.UsedMinutes()))

	m.mode = modeNormal
	m.draft = draft{}
	m.input.Reset()
	m.input.Blur()
	m.statusLine = fmt.Sprintf("Saved outing %d.", m.log.Len())
	return m, nil
}

func (m Model) beginClear() (tea.Model, tea.Cmd) {
	if m.log.Len() == 0 {
		m.statusLine = "Nothing to clear."
		m.errorLine = ""
		return m, nil
	}
	m.mode = modeConfirmClear
	m.statusLine = ""
	m.errorLine = ""
	return m, nil
}

func (m Model) confirmClear() (tea.Model, tea.Cmd) {
	count := m.log.Len()
	m.mode = modeNormal
	if err := m.log.Clear(m.ctx); err != nil {
		m.errorLine = err.Error()
		return m, nil
	}
	m.logger.Info("outings cleared", zap.Int("records", count))
	m.statusLine = fmt.Sprintf("Cleared %d outing%s.", count, plural(count))
	m.errorLine = ""
	return m, nil
}

func (m Model) beginExport() (tea.Model, tea.Cmd) {
	if m.exporting {
		return m, nil
	}
	m.exporting = true
	m.statusLine = "Copying report..."
	m.errorLine = ""
	return m, m.exportCmd(m.log.Records())
}

func (m Model) exportCmd(records []outing.Record) tea.Cmd {
	adapter := m.adapter
	sink := m.sink
	ctx := m.ctx
	return func() tea.Msg {
		err := adapter.Export(ctx, records, sink)
		return exportResultMsg{count: len(records), err: err}
	}
}

func (m Model) handleExportResult(msg exportResultMsg) (tea.Model, tea.Cmd) {
	m.exporting = false
	if msg.err != nil {
		m.statusLine = ""
		m.errorLine = msg.err.Error()
		return m, nil
	}
	m.statusLine = fmt.Sprintf("Copied %d outing%s to the clipboard.", msg.count, plural(msg.count))
	m.errorLine = ""
	return m, nil
}

func (m Model) cancelInput(status string) (tea.Model, tea.Cmd) {
	m.mode = modeNormal
	m.draft = draft{}
	m.input.Reset()
	m.input.Blur()
	m.statusLine = status
	m.errorLine = ""
	return m, nil
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Salidas particulares"))
	b.WriteString("\n\n")

	records := m.log.Records()
	if len(records) == 0 {
		b.WriteString(labelStyle.Render("(no outings)"))
		b.WriteByte('\n')
	} else {
		b.WriteString("Salidas registradas:\n")
		for i, r := range records {
			fmt.Fprintf(&b, "%2d. %s\n", i+1, formatRecord(r))
		}
	}

	summary := m.log.Summary()
	b.WriteByte('\n')
	b.WriteString(summary.UsedLine())
	b.WriteByte('\n')
	b.WriteString(summary.RemainingLine())
	b.WriteByte('\n')

	if m.errorLine != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.statusLine))
		b.WriteByte('\n')
	}

	switch m.mode {
	case modeAdd:
		b.WriteString("\n")
		fmt.Fprintf(&b, "Nueva salida (%d/%d) %s\n", m.step+1, stepCount, labelStyle.Render(stepLabels[m.step]))
		if m.step == stepReturn && m.draft.noReturn {
			b.WriteString("> " + outing.NoReturn)
		} else {
			b.WriteString(m.input.View())
		}
		b.WriteByte('\n')
		if m.step == stepReturn {
			check := " "
			if m.draft.noReturn {
				check = "x"
			}
			fmt.Fprintf(&b, "[%s] %s\n", check, outing.NoReturn)
		}
		b.WriteString(helpStyle.Render(addHelp(m.step)))
		b.WriteByte('\n')
	case modeConfirmClear:
		b.WriteString("\n")
		fmt.Fprintf(&b, "Borrar %d salida%s registrada%s? (y/n, Esc to cancel)\n",
			m.log.Len(), plural(m.log.Len()), plural(m.log.Len()))
	default:
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("Actions: a add  e export  c clear  q quit"))
		b.WriteByte('\n')
	}

	return b.String()
}

func addHelp(s step) string {
	if s == stepReturn {
		return "Enter next  tab toggle Sin retorno  Esc cancel"
	}
	if s == stepReason {
		return "Enter save  Esc cancel"
	}
	return "Enter next  Esc cancel"
}

func formatRecord(r outing.Record) string {
	return fmt.Sprintf("%s %s  %s %s  %s %s  %s %s",
		labelStyle.Render("Fecha:"), r.Date,
		labelStyle.Render("Hora de salida:"), r.Departure,
		labelStyle.Render("Hora de regreso:"), r.Return,
		labelStyle.Render("Motivo:"), r.Reason)
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
