package tui

import (
	"fmt"

	"github.com/savasana/yoga-client/models"
)

type accountModel struct {
	user   models.User
	loaded bool
	busy   bool
	errMsg string
}

func newAccountModel() accountModel {
	return accountModel{}
}

func (m accountModel) View() string {
	out := titleStyle.Render("My account") + "\n\n"

	switch {
	case !m.loaded && m.errMsg != "":
		out += errorStyle.Render(m.errMsg) + "\n"
	case !m.loaded:
		out += "loading...\n"
	default:
		u := m.user
		role := "Member"
		if u.Admin {
			role = "Admin"
		}
		body := fmt.Sprintf("%s %s\n%s\n%s\n\nMember since %s",
			u.FirstName, u.LastName, u.Email, role,
			u.CreatedAt.Format("2 January 2006"))
		out += boxStyle.Render(body) + "\n"

		if m.busy {
			out += "\n" + statusStyle.Render("working...") + "\n"
		}
		if m.errMsg != "" {
			out += "\n" + errorStyle.Render(m.errMsg) + "\n"
		}
	}

	help := "esc back  q quit"
	if m.loaded && !m.user.Admin {
		help = "d delete account  " + help
	}
	out += "\n" + helpStyle.Render(help)
	return appStyle.Render(out)
}
