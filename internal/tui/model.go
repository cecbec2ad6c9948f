package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/calcalc/internal/calculator"
)

// View represents the calculator screens
type View int

const (
	ViewDistance View = iota
	ViewAdd
)

// String returns the tab label of the view
func (v View) String() string {
	switch v {
	case ViewDistance:
		return "Distance"
	case ViewAdd:
		return "Add"
	default:
		return "Unknown"
	}
}

type field struct {
	label string
	input textinput.Model
}

// Model is the bubbletea model of the calculator
type Model struct {
	svc  *calculator.Service
	keys keyMap
	help help.Model

	view   View
	fields map[View][]field
	focus  int

	distance *calculator.DistanceResult
	added    *calculator.AddResult
	err      error

	width int
}

// MinInputWidth fits a full timestamp
const MinInputWidth = 19

// Option customizes a Model
type Option func(*Model)

// WithInputWidth sets the visible width of every input field
func WithInputWidth(width int) Option {
	return func(m *Model) {
		for _, fields := range m.fields {
			for i := range fields {
				fields[i].input.Width = width
			}
		}
	}
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 22
	ti.Prompt = ""
	return ti
}

// NewModel creates a new calculator model backed by svc
func NewModel(svc *calculator.Service, opts ...Option) Model {
	m := Model{
		svc:  svc,
		keys: defaultKeyMap(),
		help: help.New(),
		view: ViewDistance,
		fields: map[View][]field{
			ViewDistance: {
				{"From", newInput("YYYY-MM-DD HH:MM:SS", 19)},
				{"To", newInput("YYYY-MM-DD HH:MM:SS", 19)},
			},
			ViewAdd: {
				{"Timestamp", newInput("YYYY-MM-DD HH:MM:SS", 19)},
				{"Amount", newInput("-2423", 32)},
				{"Unit", newInput("days", 16)},
			},
		},
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.setFocus(0)
	return m
}

// Run starts the terminal UI and blocks until the user quits
func Run(svc *calculator.Service, opts ...Option) error {
	_, err := tea.NewProgram(NewModel(svc, opts...)).Run()
	return err
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			m.setFocus(m.focus + 1)
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.setFocus(m.focus - 1)
			return m, nil

		case key.Matches(msg, m.keys.SwitchTo):
			m.view = (m.view + 1) % 2
			m.err = nil
			m.setFocus(0)
			return m, nil

		case key.Matches(msg, m.keys.Now):
			now, err := m.svc.Now()
			if err != nil {
				m.err = err
				return m, nil
			}
			// the add view has a single timestamp field
			if m.view == ViewAdd && m.focus != 0 {
				m.setFocus(0)
			}
			m.current().input.SetValue(now.String())
			return m, nil

		case key.Matches(msg, m.keys.Clear):
			for i := range m.fields[m.view] {
				m.fields[m.view][i].input.Reset()
			}
			m.distance, m.added, m.err = nil, nil, nil
			m.setFocus(0)
			return m, nil

		case key.Matches(msg, m.keys.Submit):
			m.calculate()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}

	var cmd tea.Cmd
	f := m.current()
	f.input, cmd = f.input.Update(msg)
	return m, cmd
}

func (m *Model) current() *field {
	return &m.fields[m.view][m.focus]
}

func (m *Model) setFocus(i int) {
	fields := m.fields[m.view]
	n := len(fields)
	m.focus = ((i % n) + n) % n

	for _, v := range []View{ViewDistance, ViewAdd} {
		for j := range m.fields[v] {
			if v == m.view && j == m.focus {
				m.fields[v][j].input.Focus()
			} else {
				m.fields[v][j].input.Blur()
			}
		}
	}
}

func (m *Model) value(i int) string {
	return strings.TrimSpace(m.fields[m.view][i].input.Value())
}

func (m *Model) calculate() {
	m.err = nil

	switch m.view {
	case ViewDistance:
		res, err := m.svc.Between(m.value(0), m.value(1))
		if err != nil {
			m.err = err
			return
		}
		m.distance = &res

	case ViewAdd:
		res, err := m.svc.Add(m.value(0), m.value(1), m.value(2))
		if err != nil {
			m.err = err
			return
		}
		m.added = &res
	}
}

// View renders the UI
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("calcalc"))
	s.WriteString("\n\n")
	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	for i, f := range m.fields[m.view] {
		style := fieldStyle
		if i == m.focus {
			style = focusedFieldStyle
		}
		s.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
			labelStyle.Render(f.label),
			style.Render(f.input.View())))
		s.WriteString("\n")
	}
	s.WriteString("\n")

	switch {
	case m.err != nil:
		s.WriteString(errStyle.Render("Error: " + m.err.Error()))
	case m.view == ViewDistance && m.distance != nil:
		s.WriteString(RenderDistance(m.distance))
	case m.view == ViewAdd && m.added != nil:
		s.WriteString(resultBox.Render(fmt.Sprintf("%s %+d %s = %s",
			m.added.Start, m.added.Quantity.Amount, m.added.Quantity.Unit,
			ResultStyle.Render(m.added.Result.String()))))
	default:
		s.WriteString(hintStyle.Render("Enter timestamps as YYYY-MM-DD HH:MM:SS"))
	}
	s.WriteString("\n")

	s.WriteString(helpStyle.Render(m.help.View(m.keys)))
	s.WriteString("\n")

	return s.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, 2)
	for _, v := range []View{ViewDistance, ViewAdd} {
		if v == m.view {
			tabs = append(tabs, activeTabStyle.Render(v.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(v.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// RenderDistance renders a distance result as a labelled table
func RenderDistance(res *calculator.DistanceResult) string {
	rows := []string{
		hintStyle.Render(fmt.Sprintf("%s  ->  %s", res.From, res.To)),
	}
	for _, f := range res.Distance.Fields() {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(f.Name),
			numberStyle.Render(fmt.Sprintf("%d", f.Value))))
	}
	return resultBox.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
