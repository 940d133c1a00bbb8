package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mariusbk/wander/internal/domain"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// alertMsg raises a blocking alert overlay. All input is swallowed
// until the user dismisses it with a key press.
type alertMsg struct {
	text string
}

// placeCreatedMsg announces a newly persisted place. The appModel
// broadcasts it to every view on the stack so the list view can
// prepend the record while the form stays on top.
type placeCreatedMsg struct {
	place *domain.Place
}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

// alert returns a tea.Cmd that raises the alert overlay.
func alert(text string) tea.Cmd {
	return func() tea.Msg { return alertMsg{text: text} }
}
