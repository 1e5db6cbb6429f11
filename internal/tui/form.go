package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/savasana/yoga-client/internal/validators"
	"github.com/savasana/yoga-client/models"
)

const dateLayout = "2006-01-02"

// Form focus slots: name and date are text inputs, the teacher picker is a
// cycling selector, description is the last text input.
const (
	formFocusName = iota
	formFocusDate
	formFocusTeacher
	formFocusDescription
	formFocusCount
)

type formModel struct {
	validator validators.Validator

	editingID     int64 // 0 means create
	wantTeacherID int64

	inputs     []textinput.Model
	teachers   []models.Teacher
	teacherIdx int
	focus      int
	submitting bool
	valid      bool
	ruleMsg    string
	errMsg     string
}

func newFormModel(validator validators.Validator) formModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "name"
	nameInput.CharLimit = 100
	nameInput.Width = 40
	nameInput.Focus()

	dateInput := textinput.New()
	dateInput.Placeholder = dateLayout
	dateInput.CharLimit = len(dateLayout)
	dateInput.Width = 40

	descriptionInput := textinput.New()
	descriptionInput.Placeholder = "description"
	descriptionInput.CharLimit = 2000
	descriptionInput.Width = 60

	return formModel{
		validator: validator,
		inputs:    []textinput.Model{nameInput, dateInput, descriptionInput},
	}
}

// prefill loads an existing session into the form for editing.
func (m *formModel) prefill(s models.Session) {
	m.editingID = s.ID
	m.wantTeacherID = s.TeacherID
	m.inputs[0].SetValue(s.Name)
	m.inputs[1].SetValue(s.Date.Format(dateLayout))
	m.inputs[2].SetValue(s.Description)
	m.revalidate()
}

func (m *formModel) setTeachers(teachers []models.Teacher, selectedID int64) {
	m.teachers = teachers
	m.teacherIdx = 0
	for i, t := range teachers {
		if t.ID == selectedID {
			m.teacherIdx = i
			break
		}
	}
	m.revalidate()
}

func (m formModel) buildForm() (models.SessionForm, error) {
	date, err := time.Parse(dateLayout, strings.TrimSpace(m.inputs[1].Value()))
	if err != nil {
		return models.SessionForm{}, fmt.Errorf("date must look like %s", dateLayout)
	}

	var teacherID int64
	if m.teacherIdx >= 0 && m.teacherIdx < len(m.teachers) {
		teacherID = m.teachers[m.teacherIdx].ID
	}

	return models.SessionForm{
		Name:        strings.TrimSpace(m.inputs[0].Value()),
		Date:        date,
		TeacherID:   teacherID,
		Description: strings.TrimSpace(m.inputs[2].Value()),
	}, nil
}

func (m *formModel) revalidate() {
	form, err := m.buildForm()
	if err == nil {
		err = m.validator.Validate(form)
	}
	m.valid = err == nil
	if err != nil {
		m.ruleMsg = err.Error()
	} else {
		m.ruleMsg = ""
	}
}

func (m *formModel) focusNext() {
	m.setFocus((m.focus + 1) % formFocusCount)
}

func (m *formModel) focusPrev() {
	m.setFocus((m.focus + formFocusCount - 1) % formFocusCount)
}

func (m *formModel) setFocus(focus int) {
	m.focus = focus
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	if idx, ok := m.inputIndex(); ok {
		m.inputs[idx].Focus()
	}
}

// inputIndex maps the current focus slot to its text input, if any.
func (m formModel) inputIndex() (int, bool) {
	switch m.focus {
	case formFocusName:
		return 0, true
	case formFocusDate:
		return 1, true
	case formFocusDescription:
		return 2, true
	default:
		return 0, false
	}
}

func (m *formModel) cycleTeacher(step int) {
	if len(m.teachers) == 0 {
		return
	}
	m.teacherIdx = (m.teacherIdx + step + len(m.teachers)) % len(m.teachers)
	m.revalidate()
}

func (m formModel) updateInputs(msg tea.Msg) (formModel, tea.Cmd) {
	idx, ok := m.inputIndex()
	if !ok {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	m.revalidate()
	return m, cmd
}

func (m formModel) View() string {
	title := "New session"
	if m.editingID != 0 {
		title = "Edit session"
	}
	out := titleStyle.Render(title) + "\n\n"

	out += m.inputs[0].View() + "\n"
	out += m.inputs[1].View() + "\n"

	teacherLine := "Teacher: (none available)"
	if m.teacherIdx >= 0 && m.teacherIdx < len(m.teachers) {
		t := m.teachers[m.teacherIdx]
		teacherLine = fmt.Sprintf("Teacher: < %s %s >", t.FirstName, t.LastName)
	}
	if m.focus == formFocusTeacher {
		teacherLine = "> " + teacherLine
	} else {
		teacherLine = "  " + teacherLine
	}
	out += teacherLine + "\n"

	out += m.inputs[2].View() + "\n"

	if m.submitting {
		out += "\nSaving...\n"
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render(m.errMsg) + "\n"
	} else if m.ruleMsg != "" {
		out += "\n" + helpStyle.Render(m.ruleMsg) + "\n"
	}

	submit := "enter save"
	if !m.valid {
		submit = "enter save (disabled)"
	}
	out += "\n" + helpStyle.Render("tab next  left/right pick teacher  "+submit+"  esc cancel")
	return appStyle.Render(out)
}
