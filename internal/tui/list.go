package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/savasana/yoga-client/internal/session"
	"github.com/savasana/yoga-client/models"
)

type listModel struct {
	sessions []models.Session
	idx      int
	loading  bool
	spin     spinner.Model
	errMsg   string
}

func newListModel() listModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return listModel{spin: sp, loading: true}
}

func (m *listModel) moveUp() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *listModel) moveDown() {
	if m.idx < len(m.sessions)-1 {
		m.idx++
	}
}

func (m listModel) selected() (models.Session, bool) {
	if m.idx < 0 || m.idx >= len(m.sessions) {
		return models.Session{}, false
	}
	return m.sessions[m.idx], true
}

func (m listModel) View(gate session.ViewState) string {
	out := titleStyle.Render("Sessions") + "\n\n"

	switch {
	case m.loading:
		out += m.spin.View() + " loading...\n"
	case m.errMsg != "":
		out += errorStyle.Render(m.errMsg) + "\n"
	case len(m.sessions) == 0:
		out += "No sessions yet.\n"
	default:
		for i, s := range m.sessions {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s  %s  (%d attending)\n",
				cursor, s.Date.Format("2006-01-02"), s.Name, len(s.Users))
		}
	}

	help := "enter open  a account  L logout  q quit"
	if gate.CanEditResource {
		help = "n new  " + help
	}
	out += "\n" + helpStyle.Render(help)
	return appStyle.Render(out)
}
