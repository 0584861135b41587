package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/pomokeeper/internal/pomodoro"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	workStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	breakStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2)
)

const progressWidth = 20

// progressBar renders p in [0, 1] as a fixed width bar.
func progressBar(p float64) string {
	filled := int(p * progressWidth)
	if filled > progressWidth {
		filled = progressWidth
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", progressWidth-filled) + "]"
}

// renderStatus is the one line summary shown by the status command.
func renderStatus(s pomodoro.State) string {
	if !s.IsRunning {
		mode := "off"
		if s.PomodoroEnabled {
			mode = fmt.Sprintf("%d/%d min", s.WorkDuration, s.BreakDuration)
		}
		return dimStyle.Render("idle") + " " + dimStyle.Render("(pomodoro "+mode+")")
	}

	label := workStyle.Render("working")
	if s.IsBreak {
		label = breakStyle.Render("break")
	}
	if s.IsPaused {
		label += " " + warningStyle.Render("paused")
	}

	line := fmt.Sprintf("%s %s %s", label, s.DisplayTime(), progressBar(s.Progress()))
	if s.Description != "" {
		line += " " + s.Description
	}
	if s.PomodoroEnded() {
		line += " " + warningStyle.Render("(session over: break | work | stop)")
	}
	return line
}

// promptStatus is the short state shown in the REPL prompt.
func promptStatus(s pomodoro.State) string {
	if !s.IsRunning {
		return "idle"
	}
	st := s.Phase().String()
	if s.IsPaused {
		st += ", paused"
	}
	return st + " " + s.DisplayTime()
}
