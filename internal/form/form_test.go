package form

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

var testGoals = []string{"New product", "Redesign", "Something else"}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		var cmd tea.Cmd
		m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		_ = cmd
	}
	return m
}

func press(t *testing.T, m Model, key string) (Model, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		msg = tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	default:
		t.Fatalf("unknown key %q", key)
	}
	return m.Update(msg)
}

// fillValid types a draft that satisfies every canSend rule.
func fillValid(t *testing.T, m Model) Model {
	t.Helper()
	m = m.SetFocused(true)
	m = typeText(t, m, "Ana")
	m, _ = press(t, m, "tab")
	m = typeText(t, m, "a@b.co")
	m, _ = press(t, m, "tab") // company (optional, leave empty)
	m, _ = press(t, m, "tab") // goal
	m, _ = press(t, m, "tab") // message
	m = typeText(t, m, "1234567890")
	m, _ = press(t, m, "tab") // submit
	return m
}

func TestValidators(t *testing.T) {
	tests := []struct {
		name, email, message string
		want                 bool
	}{
		{"A", "a@b.co", "1234567890", false},       // name too short
		{"Ana", "a@b.co", "1234567890", true},
		{"Ana", "not-an-email", "1234567890", false},
		{"Ana", "a@b", "1234567890", false},        // missing tld
		{"Ana", "a@b.co", "short", false},          // message too short
		{"  Ana  ", "a@b.co", "1234567890", true},  // whitespace trimmed
	}
	for _, tt := range tests {
		got := ValidName(tt.name) && ValidEmail(tt.email) && ValidMessage(tt.message)
		if got != tt.want {
			t.Fatalf("valid(%q,%q,%q)=%v, want %v", tt.name, tt.email, tt.message, got, tt.want)
		}
	}
}

func TestCanSendOnFilledDraft(t *testing.T) {
	m := New(testGoals)
	if m.CanSend() {
		t.Fatalf("empty draft should not be sendable")
	}
	m = fillValid(t, m)
	if !m.CanSend() {
		t.Fatalf("valid draft should be sendable, draft=%+v", m.Draft())
	}
}

func TestSubmitInvalidDraftIsNoOp(t *testing.T) {
	m := New(testGoals)
	next, cmd, accepted := m.Submit()
	if accepted || cmd != nil {
		t.Fatalf("invalid submit must be a no-op, accepted=%v", accepted)
	}
	if next.Status() != StatusIdle {
		t.Fatalf("status = %v, want idle", next.Status())
	}
}

func TestSubmissionLifecycle(t *testing.T) {
	m := fillValid(t, New(testGoals))

	m, cmd, accepted := m.Submit()
	if !accepted || cmd == nil {
		t.Fatalf("valid submit should be accepted and schedule a transition")
	}
	if m.Status() != StatusSending {
		t.Fatalf("status after submit = %v, want sending", m.Status())
	}
	if m.CanSend() {
		t.Fatalf("canSend must be false while sending")
	}

	// A stale timer from a previous cycle must not advance this one.
	m, _ = m.Update(SentMsg{Gen: 99})
	if m.Status() != StatusSending {
		t.Fatalf("stale SentMsg advanced the state machine")
	}

	m, cmd = m.Update(SentMsg{Gen: 1})
	if m.Status() != StatusSent {
		t.Fatalf("status = %v, want sent", m.Status())
	}
	if cmd == nil {
		t.Fatalf("sent state should schedule the settle transition")
	}

	m, _ = m.Update(SettledMsg{Gen: 1})
	if m.Status() != StatusIdle {
		t.Fatalf("status = %v, want idle after settling", m.Status())
	}

	// Full reset: fields cleared, goal back to the default option.
	d := m.Draft()
	want := Draft{Goal: testGoals[0]}
	if d != want {
		t.Fatalf("draft after cycle = %+v, want %+v", d, want)
	}
}

func TestResetIsIdempotent(t *testing.T) {
	initial := New(testGoals).Draft()

	m := fillValid(t, New(testGoals))
	m, _, _ = m.Submit()
	m, _ = m.Update(SentMsg{Gen: 1})
	m, _ = m.Update(SettledMsg{Gen: 1})

	if got := m.Draft(); got != initial {
		t.Fatalf("post-cycle draft = %+v, want initial %+v", got, initial)
	}
}

func TestGoalCycling(t *testing.T) {
	m := New(testGoals).SetFocused(true)
	for i := 0; i < FieldGoal; i++ {
		m, _ = press(t, m, "tab")
	}
	if m.Focus() != FieldGoal {
		t.Fatalf("focus = %d, want goal field", m.Focus())
	}

	m, _ = press(t, m, "right")
	if m.Goal() != "Redesign" {
		t.Fatalf("goal after right = %q", m.Goal())
	}
	m, _ = press(t, m, "left")
	m, _ = press(t, m, "left")
	if m.Goal() != "Something else" {
		t.Fatalf("goal should wrap backwards, got %q", m.Goal())
	}
}

func TestEnterOnSubmitFieldSubmits(t *testing.T) {
	m := fillValid(t, New(testGoals))
	if m.Focus() != FieldSubmit {
		t.Fatalf("focus = %d, want submit", m.Focus())
	}
	m, cmd := press(t, m, "enter")
	if m.Status() != StatusSending || cmd == nil {
		t.Fatalf("enter on submit: status=%v cmd=%v", m.Status(), cmd)
	}
}

func TestUnfocusedFormIgnoresKeys(t *testing.T) {
	m := New(testGoals)
	m = typeText(t, m, "should not appear")
	if d := m.Draft(); d.Name != "" {
		t.Fatalf("unfocused form accepted input: %q", d.Name)
	}
}
