package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/savasana/yoga-client/internal/validators"
	"github.com/savasana/yoga-client/models"
)

type loginModel struct {
	validator validators.Validator

	inputs     []textinput.Model
	focus      int
	submitting bool
	valid      bool
	ruleMsg    string
	errMsg     string
	status     string
}

func newLoginModel(validator validators.Validator) loginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 100
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 40
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return loginModel{
		validator: validator,
		inputs:    []textinput.Model{emailInput, passwordInput},
	}
}

func (m loginModel) values() (email, password string) {
	return strings.TrimSpace(m.inputs[0].Value()), m.inputs[1].Value()
}

// revalidate re-evaluates the rule set; called after every field change so
// the submit affordance always reflects the current form state.
func (m *loginModel) revalidate() {
	email, password := m.values()
	err := m.validator.Validate(models.LoginRequest{Email: email, Password: password})
	m.valid = err == nil
	if err != nil {
		m.ruleMsg = err.Error()
	} else {
		m.ruleMsg = ""
	}
}

func (m *loginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *loginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + len(m.inputs) - 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m loginModel) updateInputs(msg tea.Msg) (loginModel, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	m.revalidate()
	return m, tea.Batch(cmds...)
}

func (m loginModel) View() string {
	out := titleStyle.Render("Log in") + "\n\n"
	for i := range m.inputs {
		out += m.inputs[i].View() + "\n"
	}

	if m.status != "" {
		out += "\n" + statusStyle.Render(m.status) + "\n"
	}
	if m.submitting {
		out += "\nSigning in...\n"
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render(m.errMsg) + "\n"
	} else if m.ruleMsg != "" {
		out += "\n" + helpStyle.Render(m.ruleMsg) + "\n"
	}

	submit := "enter submit"
	if !m.valid {
		submit = "enter submit (disabled)"
	}
	out += "\n" + helpStyle.Render("tab next  "+submit+"  esc back")
	return appStyle.Render(out)
}
