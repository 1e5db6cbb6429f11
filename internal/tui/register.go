package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/savasana/yoga-client/internal/validators"
	"github.com/savasana/yoga-client/models"
)

type registerModel struct {
	validator validators.Validator

	inputs     []textinput.Model
	focus      int
	submitting bool
	valid      bool
	ruleMsg    string
	errMsg     string
}

func newRegisterModel(validator validators.Validator) registerModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 100
	emailInput.Width = 40
	emailInput.Focus()

	firstNameInput := textinput.New()
	firstNameInput.Placeholder = "first name"
	firstNameInput.CharLimit = 20
	firstNameInput.Width = 40

	lastNameInput := textinput.New()
	lastNameInput.Placeholder = "last name"
	lastNameInput.CharLimit = 20
	lastNameInput.Width = 40

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 40
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return registerModel{
		validator: validator,
		inputs:    []textinput.Model{emailInput, firstNameInput, lastNameInput, passwordInput},
	}
}

func (m registerModel) request() models.RegisterRequest {
	return models.RegisterRequest{
		Email:     strings.TrimSpace(m.inputs[0].Value()),
		FirstName: strings.TrimSpace(m.inputs[1].Value()),
		LastName:  strings.TrimSpace(m.inputs[2].Value()),
		Password:  m.inputs[3].Value(),
	}
}

func (m *registerModel) revalidate() {
	err := m.validator.Validate(m.request())
	m.valid = err == nil
	if err != nil {
		m.ruleMsg = err.Error()
	} else {
		m.ruleMsg = ""
	}
}

func (m *registerModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *registerModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + len(m.inputs) - 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m registerModel) updateInputs(msg tea.Msg) (registerModel, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	m.revalidate()
	return m, tea.Batch(cmds...)
}

func (m registerModel) View() string {
	out := titleStyle.Render("Register") + "\n\n"
	for i := range m.inputs {
		out += m.inputs[i].View() + "\n"
	}

	if m.submitting {
		out += "\nCreating account...\n"
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
