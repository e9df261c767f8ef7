package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// gotoProjectMsg asks the app to show the project with the raw identifier
// typed into the go-to prompt. The detail view validates it.
type gotoProjectMsg struct {
	raw string
}

// ownedMsg is a message addressed to one view. It is delivered to that view
// wherever it sits on the stack and dropped once the view has been popped,
// so a background fetch never lands on whichever view happens to be on top.
type ownedMsg struct {
	owner View
	msg   tea.Msg
}

// deliverTo wraps cmd so its result is routed back to owner.
func deliverTo(owner View, cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		msg := cmd()
		if msg == nil {
			return nil
		}
		return ownedMsg{owner: owner, msg: msg}
	}
}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}
