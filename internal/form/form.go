// Package form implements the contact form: a handful of input fields plus a
// simulated submission lifecycle (idle → sending → sent → idle). There is no
// transport and no failure path; the delays stand in for a real round trip
// and are the contract anything adding real transport must preserve.
package form

import (
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type Status int

const (
	StatusIdle Status = iota
	StatusSending
	StatusSent
)

const (
	// SendDelay is the simulated network latency (sending → sent).
	SendDelay = 650 * time.Millisecond
	// SettleDelay keeps the confirmation visible before the form resets.
	SettleDelay = 900 * time.Millisecond
)

// Field focus order within the form.
const (
	FieldName = iota
	FieldEmail
	FieldCompany
	FieldGoal
	FieldMessage
	FieldSubmit
	fieldCount
)

// SentMsg moves an accepted submission from sending to sent.
type SentMsg struct{ Gen int }

// SettledMsg ends the confirmation display and resets the draft.
type SettledMsg struct{ Gen int }

// Draft is a snapshot of the form contents.
type Draft struct {
	Name    string
	Email   string
	Company string
	Goal    string
	Message string
}

type Model struct {
	name    textinput.Model
	email   textinput.Model
	company textinput.Model
	message textarea.Model

	goals   []string
	goalIdx int

	status  Status
	focus   int
	focused bool

	// gen ties the delayed transition messages to the submission that
	// scheduled them; stale timers from an interrupted cycle are ignored.
	gen int
}

func New(goals []string) Model {
	m := Model{goals: append([]string(nil), goals...)}

	m.name = newInput("Ada Lovelace", 60)
	m.email = newInput("you@company.com", 80)
	m.company = newInput("Company (optional)", 60)

	m.message = textarea.New()
	m.message.Placeholder = "What are you building?"
	m.message.CharLimit = 2000
	m.message.SetHeight(4)
	m.message.ShowLineNumbers = false

	return m
}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Prompt = ""
	return in
}

func (m Model) Status() Status { return m.status }
func (m Model) Focus() int     { return m.focus }
func (m Model) Focused() bool  { return m.focused }

func (m Model) Goal() string {
	if len(m.goals) == 0 {
		return ""
	}
	return m.goals[m.goalIdx]
}

func (m Model) Draft() Draft {
	return Draft{
		Name:    m.name.Value(),
		Email:   m.email.Value(),
		Company: m.company.Value(),
		Goal:    m.Goal(),
		Message: m.message.Value(),
	}
}

// ValidName requires at least two characters of actual content.
func ValidName(s string) bool {
	return len(strings.TrimSpace(s)) >= 2
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

// ValidEmail checks the basic local@domain.tld shape, nothing more.
func ValidEmail(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

// ValidMessage requires at least ten characters.
func ValidMessage(s string) bool {
	return len(strings.TrimSpace(s)) >= 10
}

// CanSend gates submission: valid draft and no send already in flight.
func (m Model) CanSend() bool {
	if m.status == StatusSending {
		return false
	}
	d := m.Draft()
	return ValidName(d.Name) && ValidEmail(d.Email) && ValidMessage(d.Message)
}

// Submit starts the simulated send. Invalid drafts are a no-op (accepted is
// false) rather than an error; the submit control renders disabled in that
// case anyway.
func (m Model) Submit() (Model, tea.Cmd, bool) {
	if !m.CanSend() {
		return m, nil, false
	}
	m.status = StatusSending
	m.gen++
	gen := m.gen
	return m, tea.Tick(SendDelay, func(time.Time) tea.Msg { return SentMsg{Gen: gen} }), true
}

// SetFocused turns keyboard routing to the fields on or off.
func (m Model) SetFocused(focused bool) Model {
	m.focused = focused
	if !focused {
		m.blurAll()
		return m
	}
	return m.applyFocus()
}

func (m *Model) blurAll() {
	m.name.Blur()
	m.email.Blur()
	m.company.Blur()
	m.message.Blur()
}

func (m Model) applyFocus() Model {
	m.blurAll()
	switch m.focus {
	case FieldName:
		m.name.Focus()
	case FieldEmail:
		m.email.Focus()
	case FieldCompany:
		m.company.Focus()
	case FieldMessage:
		m.message.Focus()
	}
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SentMsg:
		if msg.Gen != m.gen || m.status != StatusSending {
			return m, nil
		}
		m.status = StatusSent
		gen := m.gen
		return m, tea.Tick(SettleDelay, func(time.Time) tea.Msg { return SettledMsg{Gen: gen} })

	case SettledMsg:
		if msg.Gen != m.gen || m.status != StatusSent {
			return m, nil
		}
		m.status = StatusIdle
		m = m.reset()
		return m, nil

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		if msg.String() == "down" && m.focus == FieldMessage {
			break // let the textarea move its own cursor
		}
		m.focus = (m.focus + 1) % fieldCount
		return m.applyFocus(), nil
	case "shift+tab", "up":
		if msg.String() == "up" && m.focus == FieldMessage {
			break
		}
		m.focus = (m.focus + fieldCount - 1) % fieldCount
		return m.applyFocus(), nil
	case "left", "right":
		if m.focus == FieldGoal && len(m.goals) > 0 {
			if msg.String() == "right" {
				m.goalIdx = (m.goalIdx + 1) % len(m.goals)
			} else {
				m.goalIdx = (m.goalIdx + len(m.goals) - 1) % len(m.goals)
			}
			return m, nil
		}
	case "enter":
		if m.focus == FieldSubmit {
			next, cmd, _ := m.Submit()
			return next, cmd
		}
		if m.focus != FieldMessage {
			m.focus = (m.focus + 1) % fieldCount
			return m.applyFocus(), nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case FieldName:
		m.name, cmd = m.name.Update(msg)
	case FieldEmail:
		m.email, cmd = m.email.Update(msg)
	case FieldCompany:
		m.company, cmd = m.company.Update(msg)
	case FieldMessage:
		m.message, cmd = m.message.Update(msg)
	}
	return m, cmd
}

// SetWidth sizes every field to the rendered form width.
func (m Model) SetWidth(w int) Model {
	if w < 20 {
		w = 20
	}
	m.name.Width = w
	m.email.Width = w
	m.company.Width = w
	m.message.SetWidth(w)
	return m
}

// FieldView renders one field's current contents. The goal "field" is a
// cycled option rather than free text.
func (m Model) FieldView(field int) string {
	switch field {
	case FieldName:
		return m.name.View()
	case FieldEmail:
		return m.email.View()
	case FieldCompany:
		return m.company.View()
	case FieldGoal:
		return "◂ " + m.Goal() + " ▸"
	case FieldMessage:
		return m.message.View()
	}
	return ""
}

func (m Model) reset() Model {
	m.name.Reset()
	m.email.Reset()
	m.company.Reset()
	m.message.Reset()
	m.goalIdx = 0
	m.focus = FieldName
	if m.focused {
		m = m.applyFocus()
	}
	return m
}
