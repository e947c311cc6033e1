package ui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/salidas/internal/outing"
	"github.com/faizmokh/salidas/internal/store"
)

var fixedNow = time.Date(2024, time.March, 5, 9, 0, 0, 0, time.Local)

type fakeSink struct {
	text string
	err  error
}

func (s *fakeSink) WriteText(text string) error {
	if s.err != nil {
		return s.err
	}
	s.text = text
	return nil
}

func newTestModel(t *testing.T, sink outing.Sink) (Model, *outing.Log) {
	t.Helper()
	adapter := outing.NewAdapter(store.NewMemoryStore(), "", nil)
	log, err := outing.Open(context.Background(), adapter)
	if err != nil {
		t.Fatalf("outing.Open: %v", err)
	}
	m := NewModel(context.Background(), Deps{
		Log:     log,
		Adapter: adapter,
		Sink:    sink,
		Now:     func() time.Time { return fixedNow },
	})
	return m, log
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter     = tea.KeyMsg{Type: tea.KeyEnter}
	esc       = tea.KeyMsg{Type: tea.KeyEsc}
	tab       = tea.KeyMsg{Type: tea.KeyTab}
	backspace = tea.KeyMsg{Type: tea.KeyBackspace}
)

func TestAddWizardAppendsAndResets(t *testing.T) {
	m, log := newTestModel(t, &fakeSink{})

	m = press(t, m, runes("a"))
	if m.mode != modeAdd || m.step != stepDate {
		t.Fatalf("expected add mode on the date step, got mode=%d step=%d", m.mode, m.step)
	}
	if got := m.input.Value(); got != "2024-03-05" {
		t.Fatalf("date prefill = %q, want today", got)
	}

	m = press(t, m, enter)
	if got := m.input.Value(); got != "09:00" {
		t.Fatalf("departure prefill = %q, want current time", got)
	}

	m = press(t, m, enter, runes("10:30"), enter, runes("Turno médico"), enter)

	if m.mode != modeNormal {
		t.Fatalf("expected normal mode after saving, got %d", m.mode)
	}
	if m.errorLine != "" {
		t.Fatalf("unexpected error line %q", m.errorLine)
	}
	records := log.Records()
	want := outing.Record{Date: "2024-03-05", Departure: "09:00", Return: "10:30", Reason: "Turno médico"}
	if len(records) != 1 || records[0] != want {
		t.Fatalf("records = %#v, want [%#v]", records, want)
	}
	if log.UsedMinutes() != 90 {
		t.Fatalf("used = %d, want 90", log.UsedMinutes())
	}
	if m.draft != (draft{}) || m.input.Value() != "" {
		t.Fatalf("form not reset: draft=%#v input=%q", m.draft, m.input.Value())
	}

	view := m.View()
	for _, want := range []string{"Saved outing 1.", "Turno médico", "Tiempo utilizado: 1 horas 30 minutos", "Tiempo remanente: 10 horas 30 minutos"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestAddWizardNoReturnToggle(t *testing.T) {
	m, log := newTestModel(t, &fakeSink{})

	m = press(t, m, runes("a"), enter, enter)
	if m.step != stepReturn {
		t.Fatalf("expected return step, got %d", m.step)
	}

	m = press(t, m, tab, runes("12:00"))
	if !m.draft.noReturn {
		t.Fatalf("tab should enable Sin retorno")
	}
	if m.input.Value() != "" {
		t.Fatalf("typing while Sin retorno is set must be ignored, got %q", m.input.Value())
	}
	if !strings.Contains(m.View(), "[x] Sin retorno") {
		t.Fatalf("view should show the checked toggle:\n%s", m.View())
	}

	m = press(t, m, enter, runes("Trámite"), enter)

	records := log.Records()
	if len(records) != 1 || records[0].Return != outing.NoReturn {
		t.Fatalf("records = %#v, want one Sin retorno record", records)
	}
	if log.UsedMinutes() != 0 {
		t.Fatalf("used = %d, want 0", log.UsedMinutes())
	}
}

func TestAddWizardRejectsMalformedTime(t *testing.T) {
	m, log := newTestModel(t, &fakeSink{})

	m = press(t, m, runes("a"), enter, enter, runes("10h"), enter)
	if m.step != stepReturn || m.errorLine == "" {
		t.Fatalf("expected to stay on the return step with an error, step=%d err=%q", m.step, m.errorLine)
	}

	m = press(t, m, backspace, backspace, backspace, runes("10:00"), enter)
	if m.step != stepReason || m.errorLine != "" {
		t.Fatalf("expected reason step after fixing the time, step=%d err=%q", m.step, m.errorLine)
	}

	m = press(t, m, enter)
	if m.errorLine != "Motivo cannot be empty." {
		t.Fatalf("errorLine = %q", m.errorLine)
	}
	if log.Len() != 0 {
		t.Fatalf("nothing should be appended yet")
	}
}

func TestAddWizardEscCancels(t *testing.T) {
	m, log := newTestModel(t, &fakeSink{})

	m = press(t, m, runes("a"), enter, esc)

	if m.mode != modeNormal || m.statusLine != "Cancelled." {
		t.Fatalf("mode=%d status=%q, want normal and Cancelled.", m.mode, m.statusLine)
	}
	if log.Len() != 0 {
		t.Fatalf("cancel must not append")
	}
}

func TestClearConfirmation(t *testing.T) {
	m, log := newTestModel(t, &fakeSink{})
	if err := log.Append(context.Background(), outing.Record{Date: "2024-03-05", Departure: "09:00", Return: "11:00", Reason: "A"}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	m = press(t, m, runes("c"))
	if m.mode != modeConfirmClear {
		t.Fatalf("expected confirm mode, got %d", m.mode)
	}
	m = press(t, m, runes("n"))
	if log.Len() != 1 || m.statusLine != "Clear cancelled." {
		t.Fatalf("refusal must keep records, len=%d status=%q", log.Len(), m.statusLine)
	}

	m = press(t, m, runes("c"), runes("y"))
	if log.Len() != 0 || log.UsedMinutes() != 0 || log.TotalMinutes() != outing.BudgetMinutes {
		t.Fatalf("log not reset: len=%d used=%d total=%d", log.Len(), log.UsedMinutes(), log.TotalMinutes())
	}
	if m.statusLine != "Cleared 1 outing." {
		t.Fatalf("statusLine = %q", m.statusLine)
	}

	m = press(t, m, runes("c"))
	if m.mode != modeNormal || m.statusLine != "Nothing to clear." {
		t.Fatalf("empty log should not prompt, mode=%d status=%q", m.mode, m.statusLine)
	}
}

func TestExportDeliversReport(t *testing.T) {
	sink := &fakeSink{}
	m, log := newTestModel(t, sink)
	if err := log.Append(context.Background(), outing.Record{Date: "2024-01-01", Departure: "09:00", Return: "10:00", Reason: "A"}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	next, cmd := m.Update(runes("e"))
	m = next.(Model)
	if cmd == nil || !m.exporting {
		t.Fatalf("expected an export command")
	}

	next, _ = m.Update(cmd())
	m = next.(Model)

	if sink.text != "Fecha: 2024-01-01, Hora de salida: 09:00, Hora de regreso: 10:00, Motivo: A" {
		t.Fatalf("exported %q", sink.text)
	}
	if m.exporting || m.statusLine != "Copied 1 outing to the clipboard." {
		t.Fatalf("exporting=%v status=%q", m.exporting, m.statusLine)
	}
}

func TestExportFailureKeepsLog(t *testing.T) {
	m, log := newTestModel(t, &fakeSink{err: errors.New("no clipboard")})
	if err := log.Append(context.Background(), outing.Record{Date: "2024-01-01", Departure: "09:00", Return: "10:00", Reason: "A"}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	next, cmd := m.Update(runes("e"))
	m = next.(Model)
	next, _ = m.Update(cmd())
	m = next.(Model)

	if !strings.Contains(m.errorLine, outing.ErrSinkUnavailable.Error()) {
		t.Fatalf("errorLine = %q, want sink unavailable", m.errorLine)
	}
	if log.Len() != 1 || log.UsedMinutes() != 60 {
		t.Fatalf("log changed by failed export")
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, &fakeSink{})

	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
