package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bloom/internal/engine"
)

// Bloom theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconSeed    = "🌱"
	IconPlant   = "🪴"
	IconBloom   = "🌸"
	IconWater   = "💧"
	IconSun     = "☀️"
	IconFood    = "🍽️"
	IconFriends = "🧑‍🌾"
	IconParty   = "🏡"
	IconDone    = "✅"
	IconStreak  = "🔥"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🥀"
	IconRevive  = "🔄"
)

var (
	cPrimary = lipgloss.Color("42")  // green
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// StageIcon maps a growth stage to its emoji.
func StageIcon(stage engine.PlantStage) string {
	switch stage {
	case engine.StageSeed:
		return "🌰"
	case engine.StageSprout:
		return "🌱"
	case engine.StageSapling:
		return "🌿"
	case engine.StageTree:
		return "🌳"
	case engine.StageFlowering:
		return "🌸"
	case engine.StageMythical:
		return "✨"
	default:
		return "🪴"
	}
}

// HealthStyle returns the style used to render a health tier.
func HealthStyle(health engine.PlantHealth) lipgloss.Style {
	switch health {
	case engine.HealthThriving:
		return Good
	case engine.HealthWilting:
		return Warn
	case engine.HealthWithered:
		return Bad
	case engine.HealthDead:
		return Bad
	default:
		return Muted
	}
}

// ProgressBar renders a simple text bar for a 0..100 percentage.
func ProgressBar(percent float64, width int) string {
	if width <= 3 {
		width = 3
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
