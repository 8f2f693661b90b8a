package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette helpers.
//
// The page must stay readable on both light and dark terminals, so every
// color is a lipgloss.AdaptiveColor pair. "Glass" cards are faked with a
// slightly elevated surface plus a rounded border.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorBrand      = ac("55", "183")  // purple brand mark
	colorAccent     = ac("27", "75")   // links, active nav, button
	colorAccentFg   = ac("255", "235") // text on accent backgrounds
	colorHeadline   = ac("232", "255")
	colorMuted      = ac("240", "245")
	colorCardBorder = ac("250", "240")
	// Tilted cards brighten their border toward the accent so the pointer
	// interaction reads even without real perspective.
	colorCardBorderLit = ac("27", "117")
	colorCardSurface   = ac("255", "236")
	colorGlow          = ac("220", "222") // warm light marker
	colorChip          = ac("28", "114")  // metric chips
	colorOK            = ac("28", "77")   // sent confirmation
)

func styleNav(active bool) lipgloss.Style {
	st := lipgloss.NewStyle().Padding(0, 1)
	if active {
		return st.Bold(true).Foreground(colorAccentFg).Background(colorAccent)
	}
	return st.Foreground(colorMuted)
}

func styleBrand() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorBrand)
}

func styleHeadline() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorHeadline)
}

func styleMuted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorMuted)
}

func styleSectionHeading() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
}

func styleCard(lit bool, width int) lipgloss.Style {
	border := colorCardBorder
	if lit {
		border = colorCardBorderLit
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Background(colorCardSurface).
		Padding(0, 1).
		Width(width)
}

func styleChip() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorChip).Bold(true)
}

func styleGlow() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorGlow)
}

func styleButton(enabled bool) lipgloss.Style {
	st := lipgloss.NewStyle().Padding(0, 2).Bold(true)
	if enabled {
		return st.Foreground(colorAccentFg).Background(colorAccent)
	}
	return st.Foreground(colorMuted)
}

func styleOK() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorOK)
}

// applyColorProfilePreference sets Lip Gloss's color profile for the TUI.
// Only NO_COLOR disables colors; otherwise we follow terminal capability,
// trusting COLORTERM/TERM when they report more than the detector does.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") && (profile == termenv.Ascii || profile == termenv.ANSI) {
		profile = termenv.ANSI256
	}
	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures background detection for AdaptiveColor.
// Priority: NORTHLIGHT_THEME=light|dark, NORTHLIGHT_DARKBG=bool, then the
// COLORFGBG heuristic ("fg;bg", last segment is the background index).
func applyThemePreference() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("NORTHLIGHT_THEME"))) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}

	if v := strings.TrimSpace(os.Getenv("NORTHLIGHT_DARKBG")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			lipgloss.SetHasDarkBackground(b)
			return
		}
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}
