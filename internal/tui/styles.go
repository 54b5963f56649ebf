// Package tui provides the terminal user interface for malsum.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Base palette
var (
	colorPrimary   = lipgloss.Color("#8b7cf6")
	colorSecondary = lipgloss.Color("#5eead4")
	colorAccent    = lipgloss.Color("#facc15")
	colorError     = lipgloss.Color("#f87171")
	colorBorder    = lipgloss.Color("#3f3f46")
	colorText      = lipgloss.Color("#e4e4e7")
	colorTextDim   = lipgloss.Color("#a1a1aa")
	colorTextMute  = lipgloss.Color("#52525b")
)

var (
	headerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorTextMute)

	contentAreaStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorBorder).
				Padding(0, 1)

	passageStyle = lipgloss.NewStyle().
			Foreground(colorText).
			PaddingLeft(1)

	passageRefStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Underline(true)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(colorTextDim)

	tabEmptyStyle = lipgloss.NewStyle().
			Foreground(colorTextMute)

	userLabelStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	userBubbleStyle = lipgloss.NewStyle().
			Foreground(colorText).
			PaddingLeft(2)

	modelLabelStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	modelBubbleStyle = lipgloss.NewStyle().
				PaddingLeft(2)

	failedTagStyle = lipgloss.NewStyle().
			Foreground(colorError)

	inputPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	inputLabelStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	loadingStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorTextMute)

	statusKeyStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	statusDescStyle = lipgloss.NewStyle().
			Foreground(colorTextMute)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	noticeStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	welcomeStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Align(lipgloss.Center)

	welcomeTitleStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				Align(lipgloss.Center)

	welcomeIconStyle = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Align(lipgloss.Center)
)

// Gradient colors for the animated loading bar
var gradientColors = []lipgloss.Color{
	lipgloss.Color("#8b7cf6"),
	lipgloss.Color("#7c8ef6"),
	lipgloss.Color("#6da5f0"),
	lipgloss.Color("#5ebfe0"),
	lipgloss.Color("#5eead4"),
	lipgloss.Color("#6dd4a8"),
}
