package tui

import (
	"fmt"

	"github.com/savasana/yoga-client/internal/service"
	"github.com/savasana/yoga-client/internal/session"
)

type detailModel struct {
	detail service.SessionDetail
	loaded bool
	busy   bool
	status string
	errMsg string
}

func newDetailModel() detailModel {
	return detailModel{}
}

func (m detailModel) View(gate session.ViewState) string {
	out := titleStyle.Render("Session") + "\n\n"

	switch {
	case !m.loaded && m.errMsg != "":
		out += errorStyle.Render(m.errMsg) + "\n"
	case !m.loaded:
		out += "loading...\n"
	default:
		d := m.detail
		body := fmt.Sprintf("%s\n\nTeacher: %s %s\nDate: %s\nAttending: %d\n\n%s",
			titleStyle.Render(d.Session.Name),
			d.Teacher.FirstName, d.Teacher.LastName,
			d.Session.Date.Format("Monday, 2 January 2006"),
			len(d.Session.Users),
			d.Session.Description,
		)
		out += boxStyle.Render(body) + "\n"

		if d.IsParticipant {
			out += "\n" + statusStyle.Render("You are attending this session.") + "\n"
		}
		if m.busy {
			out += "\n" + statusStyle.Render("working...") + "\n"
		}
		if m.errMsg != "" {
			out += "\n" + errorStyle.Render(m.errMsg) + "\n"
		} else if m.status != "" {
			out += "\n" + statusStyle.Render(m.status) + "\n"
		}
	}

	help := "c copy  esc back  q quit"
	if m.loaded && gate.CanToggleParticipation {
		if m.detail.IsParticipant {
			help = "p cancel attendance  " + help
		} else {
			help = "p attend  " + help
		}
	}
	if m.loaded && gate.CanEditResource {
		help = "e edit  d delete  " + help
	}
	out += "\n" + helpStyle.Render(help)
	return appStyle.Render(out)
}

// clipboardText is what "c" places on the system clipboard.
func (m detailModel) clipboardText() string {
	d := m.detail
	return fmt.Sprintf("%s with %s %s on %s",
		d.Session.Name,
		d.Teacher.FirstName, d.Teacher.LastName,
		d.Session.Date.Format("2006-01-02"))
}
