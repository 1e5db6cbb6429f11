package tui

// confirmAction identifies what a pending confirmation will do when the
// user presses "y".
type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmDeleteSession
	confirmDeleteAccount
)

type confirmModel struct {
	action  confirmAction
	message string
}

func (m confirmModel) active() bool {
	return m.action != confirmNone
}

func (m confirmModel) View() string {
	return appStyle.Render(
		boxStyle.Render(m.message+"\n\n"+helpStyle.Render("y confirm  n cancel")),
	)
}
