package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/userdb/internal/models"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	UserListView ViewState = iota
	DetailView
	ConfirmDeleteView
	ResultView
)

// Model represents the TUI application state.
type Model struct {
	view     ViewState
	store    models.UserStore
	width    int
	height   int
	userList list.Model
	users    []*models.User
	selected *models.User
	result   *models.Deletion
	err      error
	help     help.Model
	keys     keyMap
}

type usersFetchedMsg struct {
	users []*models.User
	err   error
}

type deleteCompleteMsg struct {
	result *models.Deletion
	err    error
}

// NewModel creates a new TUI model over the given store.
func NewModel(store models.UserStore) *Model {
	return &Model{
		view:  UserListView,
		store: store,
		help:  help.New(),
		keys:  newKeyMap(),
	}
}

// Init initializes the TUI by fetching users from the store.
func (m *Model) Init() tea.Cmd {
	return m.fetchUsers()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.userList.Width() == 0 {
			m.userList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case UserListView:
			return m.handleUserListKeys(msg)
		case DetailView:
			return m.handleDetailKeys(msg)
		case ConfirmDeleteView:
			return m.handleConfirmKeys(msg)
		case ResultView:
			return m.handleResultKeys(msg)
		}

	case usersFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.users = msg.users
		items := make([]list.Item, len(msg.users))
		for i, user := range msg.users {
			items[i] = userItem{user: user}
		}
		m.userList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.userList.Title = "Users"
		m.userList.SetSize(m.width-4, m.height-8)
		m.view = UserListView
		return m, nil

	case deleteCompleteMsg:
		m.result = msg.result
		m.err = msg.err
		m.view = ResultView
		return m, nil
	}

	if m.view == UserListView {
		var cmd tea.Cmd
		m.userList, cmd = m.userList.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil && m.view != ResultView {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case UserListView:
		return m.renderUserList()
	case DetailView:
		return m.renderDetail()
	case ConfirmDeleteView:
		return m.renderConfirm()
	case ResultView:
		return m.renderResult()
	default:
		return ""
	}
}

func (m *Model) handleUserListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		if item, ok := m.userList.SelectedItem().(userItem); ok {
			m.selected = item.user
			m.view = DetailView
		}
		return m, nil
	case "d":
		if item, ok := m.userList.SelectedItem().(userItem); ok {
			m.selected = item.user
			m.view = ConfirmDeleteView
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.userList, cmd = m.userList.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = UserListView
		return m, nil
	case "d":
		m.view = ConfirmDeleteView
		return m, nil
	}
	return m, nil
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "n", "esc":
		m.view = UserListView
		return m, nil
	case "y":
		return m, m.deleteSelected()
	}
	return m, nil
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "enter":
		m.selected = nil
		m.result = nil
		m.err = nil
		return m, m.fetchUsers()
	}
	return m, nil
}

func (m *Model) fetchUsers() tea.Cmd {
	return func() tea.Msg {
		users, err := m.store.List()
		return usersFetchedMsg{users: users, err: err}
	}
}

func (m *Model) deleteSelected() tea.Cmd {
	id := m.selected.ID
	return func() tea.Msg {
		result, err := m.store.DeleteWithLog(id)
		return deleteCompleteMsg{result: result, err: err}
	}
}

func (m *Model) renderUserList() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.delete, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.userList.View(), helpView)
}

func (m *Model) renderDetail() string {
	title := styles.title.Render(fmt.Sprintf("User #%d", m.selected.ID))
	info := fmt.Sprintf("\nName: %s\nEmail: %s\nCreated: %s\n", m.selected.Name, m.selected.Email, m.selected.CreatedAt)

	helpKeys := []key.Binding{m.keys.delete, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s%s\n%s", title, info, helpView)
}

func (m *Model) renderConfirm() string {
	title := styles.warn.Render(fmt.Sprintf("Delete '%s' <%s>?", m.selected.Name, m.selected.Email))
	info := "\nThe record is removed permanently and an audit entry is written.\n"

	helpKeys := []key.Binding{m.keys.yes, m.keys.no, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s%s\n%s", title, info, helpView)
}

func (m *Model) renderResult() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Delete failed: %v\n\nPress esc to go back, q to quit", m.err))
	}

	if m.result == nil {
		return styles.warn.Render("User no longer exists\n\nPress esc to go back, q to quit")
	}

	title := styles.ok.Render("✓ User Deleted")
	info := fmt.Sprintf(
		"\n#%d %s <%s>\nDeleted at: %s",
		m.result.User.ID,
		m.result.User.Name,
		m.result.User.Email,
		m.result.DeletedAt,
	)

	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s%s\n\n%s", title, info, helpView)
}
