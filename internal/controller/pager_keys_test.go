package controller

import tea "github.com/charmbracelet/bubbletea"

func teaKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
