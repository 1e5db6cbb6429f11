package tui

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/savasana/yoga-client/internal/service"
	"github.com/savasana/yoga-client/internal/session"
	"github.com/savasana/yoga-client/models"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenList
	screenDetail
	screenForm
	screenAccount
)

// appModel is the root Bubble Tea model. It owns the screen stack, the
// generation counter and the store subscription; the sub-models own only
// their widgets.
type appModel struct {
	ctx      context.Context
	services *service.ClientServices

	loggedCh    <-chan bool
	unsubscribe func()
	gate        session.ViewState

	screen screen
	// gen invalidates in-flight async work. Every navigation bumps it; a
	// result message whose gen is older than the current one is dropped.
	gen int

	// detailID is the session currently open on the detail screen.
	detailID int64

	welcome  welcomeModel
	login    loginModel
	register registerModel
	list     listModel
	detail   detailModel
	form     formModel
	account  accountModel
	confirm  confirmModel

	quitting bool
}

func newAppModel(ctx context.Context, services *service.ClientServices) appModel {
	loggedCh, unsubscribe := services.Store.ObserveLoggedIn()

	return appModel{
		ctx:         ctx,
		services:    services,
		loggedCh:    loggedCh,
		unsubscribe: unsubscribe,
		gate:        session.DeriveView(services.Store.Current()),
		screen:      screenWelcome,
		welcome:     newWelcomeModel(),
	}
}

func (m appModel) teardown() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitLoggedIn())
}

// waitLoggedIn blocks on the store's logged-in stream and re-enters the
// update loop with the next emission. The handler re-arms it after every
// emission, so the UI follows every transition for the life of the program.
func (m appModel) waitLoggedIn() tea.Cmd {
	ch := m.loggedCh
	return func() tea.Msg {
		value, ok := <-ch
		if !ok {
			return nil
		}
		return loggedChangedMsg{value: value}
	}
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loggedChangedMsg:
		return m.onLoggedChanged(msg.value)

	case spinner.TickMsg:
		if m.screen == screenList && m.list.loading {
			var cmd tea.Cmd
			m.list.spin, cmd = m.list.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.onKey(msg)

	case loginResultMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.login.submitting = false
		if msg.err != nil {
			m.login.errMsg = humanizeError(msg.err)
			return m, nil
		}
		cmd := m.enterList()
		return m, cmd

	case registerResultMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.register.submitting = false
		if msg.err != nil {
			m.register.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.screen = screenLogin
		m.gen++
		m.login = newLoginModel(m.services.Validator)
		m.login.status = "Account created, please log in."
		return m, nil

	case listLoadedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.list.loading = false
		if msg.err != nil {
			m.list.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.list.sessions = msg.sessions
		if m.list.idx >= len(msg.sessions) {
			m.list.idx = 0
		}
		return m, nil

	case detailLoadedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		if msg.err != nil {
			m.detail.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.detail.loaded = true
		m.detail.errMsg = ""
		m.detail.detail = msg.detail
		return m, nil

	case participationMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.detail.busy = false
		if msg.err != nil {
			m.detail.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.detail.errMsg = ""
		m.detail.detail = msg.detail
		if msg.detail.IsParticipant {
			m.detail.status = "See you there!"
		} else {
			m.detail.status = "Attendance cancelled."
		}
		return m, nil

	case teachersLoadedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		if msg.err != nil {
			m.form.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.form.setTeachers(msg.teachers, m.form.wantTeacherID)
		return m, nil

	case sessionSavedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.form.submitting = false
		if msg.err != nil {
			m.form.errMsg = humanizeError(msg.err)
			return m, nil
		}
		cmd := m.enterList()
		return m, cmd

	case sessionDeletedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.detail.busy = false
		if msg.err != nil {
			m.detail.errMsg = humanizeError(msg.err)
			return m, nil
		}
		cmd := m.enterList()
		return m, cmd

	case profileLoadedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		if msg.err != nil {
			m.account.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.account.loaded = true
		m.account.errMsg = ""
		m.account.user = msg.user
		return m, nil

	case accountDeletedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.account.busy = false
		if msg.err != nil {
			m.account.errMsg = humanizeError(msg.err)
			return m, nil
		}
		// The store broadcast already flipped to logged-out; routing to the
		// welcome screen here just avoids a one-frame stale account view.
		m.screen = screenWelcome
		m.gen++
		m.welcome = newWelcomeModel()
		return m, nil

	case copiedMsg:
		m.detail.status = "Copied to clipboard."
		return m, nil
	}

	return m, nil
}

// onLoggedChanged recomputes the gate and, on logout, evicts the user from
// any screen that requires an identity.
func (m appModel) onLoggedChanged(logged bool) (tea.Model, tea.Cmd) {
	m.gate = session.DeriveView(m.services.Store.Current())

	if !logged {
		switch m.screen {
		case screenList, screenDetail, screenForm, screenAccount:
			m.screen = screenWelcome
			m.gen++
			m.welcome = newWelcomeModel()
			m.confirm = confirmModel{}
		}
	}

	return m, m.waitLoggedIn()
}

func (m appModel) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, even mid-typing.
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.confirm.active() {
		return m.onConfirmKey(msg)
	}

	switch m.screen {
	case screenWelcome:
		return m.onWelcomeKey(msg)
	case screenLogin:
		return m.onLoginKey(msg)
	case screenRegister:
		return m.onRegisterKey(msg)
	case screenList:
		return m.onListKey(msg)
	case screenDetail:
		return m.onDetailKey(msg)
	case screenForm:
		return m.onFormKey(msg)
	case screenAccount:
		return m.onAccountKey(msg)
	}
	return m, nil
}

func (m appModel) onConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		action := m.confirm.action
		m.confirm = confirmModel{}
		switch action {
		case confirmDeleteSession:
			m.detail.busy = true
			return m, m.cmdDeleteSession(m.gen, m.detailID)
		case confirmDeleteAccount:
			m.account.busy = true
			return m, m.cmdDeleteAccount(m.gen)
		}
	case key.Matches(msg, keys.no):
		m.confirm = confirmModel{}
	}
	return m, nil
}

func (m appModel) onWelcomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(msg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(msg, keys.enter):
		m.gen++
		if m.welcome.idx == 0 {
			m.screen = screenLogin
			m.login = newLoginModel(m.services.Validator)
		} else {
			m.screen = screenRegister
			m.register = newRegisterModel(m.services.Validator)
		}
		return m, textinput.Blink
	}
	return m, nil
}

func (m appModel) onLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenWelcome
		m.gen++
		m.welcome = newWelcomeModel()
		return m, nil
	case key.Matches(msg, keys.tab):
		m.login.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.login.focusPrev()
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.login.submitting || !m.login.valid {
			return m, nil
		}
		m.login.submitting = true
		m.login.errMsg = ""
		email, password := m.login.values()
		return m, m.cmdLogin(m.gen, email, password)
	}

	var cmd tea.Cmd
	m.login, cmd = m.login.updateInputs(msg)
	return m, cmd
}

func (m appModel) onRegisterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenWelcome
		m.gen++
		m.welcome = newWelcomeModel()
		return m, nil
	case key.Matches(msg, keys.tab):
		m.register.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.register.focusPrev()
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.register.submitting || !m.register.valid {
			return m, nil
		}
		m.register.submitting = true
		m.register.errMsg = ""
		return m, m.cmdRegister(m.gen, m.register.request())
	}

	var cmd tea.Cmd
	m.register, cmd = m.register.updateInputs(msg)
	return m, cmd
}

func (m appModel) onListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.list.moveUp()
	case key.Matches(msg, keys.down):
		m.list.moveDown()
	case key.Matches(msg, keys.enter):
		if selected, ok := m.list.selected(); ok {
			cmd := m.enterDetail(selected.ID)
			return m, cmd
		}
	case key.Matches(msg, keys.newItem):
		if m.gate.CanEditResource {
			cmd := m.enterForm(nil)
			return m, cmd
		}
	case key.Matches(msg, keys.account):
		cmd := m.enterAccount()
		return m, cmd
	case key.Matches(msg, keys.logout):
		m.services.Auth.Logout()
	}
	return m, nil
}

func (m appModel) onDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		cmd := m.enterList()
		return m, cmd
	case key.Matches(msg, keys.toggle):
		if !m.detail.loaded || m.detail.busy || !m.gate.CanToggleParticipation {
			return m, nil
		}
		m.detail.busy = true
		m.detail.status = ""
		return m, m.cmdToggleParticipation(m.gen, m.detailID, !m.detail.detail.IsParticipant)
	case key.Matches(msg, keys.edit):
		if m.detail.loaded && m.gate.CanEditResource {
			editing := m.detail.detail.Session
			cmd := m.enterForm(&editing)
			return m, cmd
		}
	case key.Matches(msg, keys.delete):
		if m.detail.loaded && m.gate.CanEditResource {
			m.confirm = confirmModel{
				action:  confirmDeleteSession,
				message: "Delete session \"" + m.detail.detail.Session.Name + "\"?",
			}
		}
	case key.Matches(msg, keys.copy):
		if m.detail.loaded {
			return m, cmdCopy(m.detail.clipboardText())
		}
	}
	return m, nil
}

func (m appModel) onFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		cmd := m.enterList()
		return m, cmd
	case key.Matches(msg, keys.tab):
		m.form.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form.focusPrev()
		return m, nil
	case key.Matches(msg, keys.left):
		if m.form.focus == formFocusTeacher {
			m.form.cycleTeacher(-1)
			return m, nil
		}
	case key.Matches(msg, keys.right):
		if m.form.focus == formFocusTeacher {
			m.form.cycleTeacher(1)
			return m, nil
		}
	case key.Matches(msg, keys.enter):
		if m.form.submitting || !m.form.valid {
			return m, nil
		}
		form, err := m.form.buildForm()
		if err != nil {
			m.form.ruleMsg = err.Error()
			return m, nil
		}
		m.form.submitting = true
		m.form.errMsg = ""
		return m, m.cmdSaveSession(m.gen, m.form.editingID, form)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.updateInputs(msg)
	return m, cmd
}

func (m appModel) onAccountKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		cmd := m.enterList()
		return m, cmd
	case key.Matches(msg, keys.delete):
		if m.account.loaded && !m.account.busy && !m.account.user.Admin {
			m.confirm = confirmModel{
				action:  confirmDeleteAccount,
				message: "Delete your account? This cannot be undone.",
			}
		}
	}
	return m, nil
}

// Screen transitions. Each bumps the generation so responses dispatched for
// the previous screen fall on the floor.

func (m *appModel) enterList() tea.Cmd {
	m.screen = screenList
	m.gen++
	m.list = newListModel()
	return tea.Batch(m.cmdLoadList(m.gen), m.list.spin.Tick)
}

func (m *appModel) enterDetail(id int64) tea.Cmd {
	m.screen = screenDetail
	m.gen++
	m.detailID = id
	m.detail = newDetailModel()
	return m.cmdLoadDetail(m.gen, id)
}

func (m *appModel) enterForm(editing *models.Session) tea.Cmd {
	m.screen = screenForm
	m.gen++
	m.form = newFormModel(m.services.Validator)
	if editing != nil {
		m.form.prefill(*editing)
	}
	return tea.Batch(m.cmdLoadTeachers(m.gen), textinput.Blink)
}

func (m *appModel) enterAccount() tea.Cmd {
	m.screen = screenAccount
	m.gen++
	m.account = newAccountModel()
	return m.cmdLoadProfile(m.gen)
}

// Commands. Each closes over the values it needs and returns a message that
// carries its dispatch generation back into the loop.

func (m appModel) cmdLogin(gen int, email, password string) tea.Cmd {
	return func() tea.Msg {
		identity, err := m.services.Auth.Login(m.ctx, email, password)
		return loginResultMsg{gen: gen, identity: identity, err: err}
	}
}

func (m appModel) cmdRegister(gen int, req models.RegisterRequest) tea.Cmd {
	return func() tea.Msg {
		err := m.services.Auth.Register(m.ctx, req)
		return registerResultMsg{gen: gen, err: err}
	}
}

func (m appModel) cmdLoadList(gen int) tea.Cmd {
	return func() tea.Msg {
		sessions, err := m.services.Booking.List(m.ctx)
		return listLoadedMsg{gen: gen, sessions: sessions, err: err}
	}
}

func (m appModel) cmdLoadDetail(gen int, id int64) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.services.Booking.LoadDetail(m.ctx, id)
		return detailLoadedMsg{gen: gen, detail: detail, err: err}
	}
}

func (m appModel) cmdToggleParticipation(gen int, id int64, join bool) tea.Cmd {
	return func() tea.Msg {
		var (
			detail service.SessionDetail
			err    error
		)
		if join {
			detail, err = m.services.Booking.Participate(m.ctx, id)
		} else {
			detail, err = m.services.Booking.UnParticipate(m.ctx, id)
		}
		return participationMsg{gen: gen, detail: detail, err: err}
	}
}

func (m appModel) cmdLoadTeachers(gen int) tea.Cmd {
	return func() tea.Msg {
		teachers, err := m.services.Booking.Teachers(m.ctx)
		return teachersLoadedMsg{gen: gen, teachers: teachers, err: err}
	}
}

func (m appModel) cmdSaveSession(gen int, editingID int64, form models.SessionForm) tea.Cmd {
	return func() tea.Msg {
		var err error
		if editingID == 0 {
			_, err = m.services.Booking.Create(m.ctx, form)
		} else {
			_, err = m.services.Booking.Update(m.ctx, editingID, form)
		}
		return sessionSavedMsg{gen: gen, err: err}
	}
}

func (m appModel) cmdDeleteSession(gen int, id int64) tea.Cmd {
	return func() tea.Msg {
		err := m.services.Booking.Delete(m.ctx, id)
		return sessionDeletedMsg{gen: gen, err: err}
	}
}

func (m appModel) cmdLoadProfile(gen int) tea.Cmd {
	return func() tea.Msg {
		user, err := m.services.Account.Me(m.ctx)
		return profileLoadedMsg{gen: gen, user: user, err: err}
	}
}

func (m appModel) cmdDeleteAccount(gen int) tea.Cmd {
	return func() tea.Msg {
		err := m.services.Account.DeleteOwnAccount(m.ctx)
		return accountDeletedMsg{gen: gen, err: err}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		_ = clipboard.WriteAll(text)
		return copiedMsg{}
	}
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}
	if m.confirm.active() {
		return m.confirm.View()
	}

	switch m.screen {
	case screenWelcome:
		return m.welcome.View()
	case screenLogin:
		return m.login.View()
	case screenRegister:
		return m.register.View()
	case screenList:
		return m.list.View(m.gate)
	case screenDetail:
		return m.detail.View(m.gate)
	case screenForm:
		return m.form.View()
	case screenAccount:
		return m.account.View()
	}
	return ""
}
