package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/calcalc/internal/calculator"
	"github.com/msto63/calcalc/pkg/calendar"
)

func newTestModel() Model {
	svc := calculator.NewService(calculator.Config{
		Clock: calendar.FixedClock{Instant: time.Date(2023, time.January, 12, 9, 30, 0, 0, time.UTC)},
	})
	return NewModel(svc)
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T, want Model", next)
		}
	}
	return m
}

func typeText(s string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_Distance(t *testing.T) {
	m := send(t, newTestModel(),
		typeText("2001-02-18 10:00:00"),
		tea.KeyMsg{Type: tea.KeyTab},
		typeText("1997-07-12 10:00:00"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	if m.err != nil {
		t.Fatalf("unexpected error: %v", m.err)
	}
	if m.distance == nil {
		t.Fatal("no distance computed")
	}
	if m.distance.Distance.Days != 1317 || m.distance.Distance.Sundays != 189 {
		t.Errorf("distance = %+v", m.distance.Distance)
	}

	view := m.View()
	for _, want := range []string{"working_days", "1317", "189"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestModel_FocusCycles(t *testing.T) {
	m := newTestModel()
	if m.focus != 0 {
		t.Fatalf("initial focus = %d", m.focus)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != 1 {
		t.Errorf("focus after tab = %d, want 1", m.focus)
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != 0 {
		t.Errorf("focus after second tab = %d, want 0", m.focus)
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != 1 {
		t.Errorf("focus after shift+tab = %d, want 1", m.focus)
	}
}

func TestModel_Error(t *testing.T) {
	m := send(t, newTestModel(),
		typeText("2023-13-01 00:00:00"),
		tea.KeyMsg{Type: tea.KeyTab},
		typeText("2023-01-01 00:00:00"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	if m.err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(m.View(), "Error:") {
		t.Errorf("View() does not show the error:\n%s", m.View())
	}
}

func TestModel_Add(t *testing.T) {
	m := send(t, newTestModel(),
		tea.KeyMsg{Type: tea.KeyCtrlN},
		typeText("2004-02-29 10:00:00"),
		tea.KeyMsg{Type: tea.KeyTab},
		typeText("-2423"),
		tea.KeyMsg{Type: tea.KeyTab},
		typeText("days"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	if m.view != ViewAdd {
		t.Fatalf("view = %v, want Add", m.view)
	}
	if m.err != nil {
		t.Fatalf("unexpected error: %v", m.err)
	}
	if m.added == nil || m.added.Result.String() != "1997-07-12 10:00:00" {
		t.Errorf("added = %+v", m.added)
	}
	if !strings.Contains(m.View(), "1997-07-12 10:00:00") {
		t.Error("View() does not show the result")
	}
}

func TestModel_InsertNowAndClear(t *testing.T) {
	m := send(t, newTestModel(), tea.KeyMsg{Type: tea.KeyCtrlT})
	if got := m.value(0); got != "2023-01-12 09:30:00" {
		t.Errorf("first field = %q, want clock reading", got)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	if got := m.value(0); got != "" {
		t.Errorf("first field after clear = %q", got)
	}
}

func TestModel_InsertNowFromAmountField(t *testing.T) {
	m := send(t, newTestModel(),
		tea.KeyMsg{Type: tea.KeyCtrlN},
		tea.KeyMsg{Type: tea.KeyTab},
		typeText("3"),
		tea.KeyMsg{Type: tea.KeyCtrlT},
	)

	if m.focus != 0 {
		t.Errorf("focus = %d, want the timestamp field", m.focus)
	}
	if got := m.value(0); got != "2023-01-12 09:30:00" {
		t.Errorf("timestamp field = %q, want clock reading", got)
	}
	if got := m.value(1); got != "3" {
		t.Errorf("amount field = %q, want it untouched", got)
	}
}

func TestModel_InputWidth(t *testing.T) {
	svc := calculator.NewService(calculator.Config{})
	m := NewModel(svc, WithInputWidth(30))

	for _, v := range []View{ViewDistance, ViewAdd} {
		for _, f := range m.fields[v] {
			if f.input.Width != 30 {
				t.Errorf("%s/%s width = %d, want 30", v, f.label, f.input.Width)
			}
		}
	}
}

func TestModel_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		_, cmd := newTestModel().Update(msg)
		if cmd == nil {
			t.Fatalf("%s returned no command", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s did not quit", msg)
		}
	}
}
