// Package ui renders the todo list with Bubble Tea and translates key
// events into dispatched actions. It never mutates state itself; all
// transitions go through the store.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arximboldi/vibe-todo/internal/config"
	"github.com/arximboldi/vibe-todo/internal/store"
)

type mode int

const (
	modeList mode = iota
	modeAdd
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type Model struct {
	store      *store.Store
	cfg        config.Config
	input      textinput.Model
	mode       mode
	confirmDel bool
}

// New builds the UI model around an existing store.
func New(st *store.Store, cfg config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Todo text"
	ti.CharLimit = 256
	ti.Width = 40

	return Model{
		store: st,
		cfg:   cfg,
		input: ti,
		mode:  modeList,
	}
}

// Run drives the Bubble Tea program until the store's state requests
// exit or the terminal session ends.
func Run(st *store.Store, cfg config.Config) error {
	program := tea.NewProgram(New(st, cfg))
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.confirmDel {
			return m.updateDeleteConfirm(msg.String())
		}
		if m.mode == modeAdd {
			return m.updateAddMode(msg.String(), msg)
		}
		return m.updateListMode(msg.String())
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
	}
	return m, nil
}

// dispatch forwards an action and quits the program once the store
// reports that exit was requested.
func (m Model) dispatch(action store.Action) tea.Cmd {
	m.store.Dispatch(action)
	if m.store.State().ExitRequested {
		return tea.Quit
	}
	return nil
}

func (m Model) autosave() {
	if m.cfg.Autosave {
		m.store.Dispatch(store.RequestSave{})
	}
}

func (m Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", m.cfg.Keys.Quit:
		m.autosave()
		return m, m.dispatch(store.Quit{})
	case m.cfg.Keys.Down, "down":
		state := m.store.State()
		return m, m.dispatch(store.SelectTodo{Index: state.SelectedIndex + 1})
	case m.cfg.Keys.Up, "up":
		state := m.store.State()
		if state.SelectedIndex > 0 {
			return m, m.dispatch(store.SelectTodo{Index: state.SelectedIndex - 1})
		}
	case m.cfg.Keys.Add:
		m.mode = modeAdd
		m.input.SetValue(m.store.State().CurrentInput)
		m.input.Focus()
	case m.cfg.Keys.Toggle, " ":
		cmd := m.dispatch(store.ToggleSelectedTodo{})
		if m.store.State().Selected() {
			m.autosave()
		}
		return m, cmd
	case m.cfg.Keys.Remove, "delete":
		if m.store.State().Selected() {
			m.confirmDel = true
			return m, nil
		}
		return m, m.dispatch(store.RemoveSelectedTodo{})
	case m.cfg.Keys.Save:
		return m, m.dispatch(store.RequestSave{})
	case m.cfg.Keys.Load:
		return m, m.dispatch(store.RequestLoad{})
	}
	return m, nil
}

func (m Model) updateAddMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel:
		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		return m, m.dispatch(store.SetInputText{})
	case m.cfg.Keys.Confirm:
		text := strings.TrimSpace(m.input.Value())
		m.store.Dispatch(store.SetInputText{Text: text})
		cmd := m.dispatch(store.AddTodo{})
		if text != "" {
			m.autosave()
		}
		m.input.SetValue("")
		m.input.Blur()
		m.mode = modeList
		return m, cmd
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.store.Dispatch(store.SetInputText{Text: m.input.Value()})
		return m, cmd
	}
}

func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y":
		m.confirmDel = false
		cmd := m.dispatch(store.RemoveSelectedTodo{})
		m.autosave()
		return m, cmd
	case "n", "N", m.cfg.Keys.Cancel:
		m.confirmDel = false
		return m, m.dispatch(store.SetStatus{Message: "Delete cancelled."})
	default:
		return m, nil
	}
}

func (m Model) View() string {
	state := m.store.State()

	var b strings.Builder
	b.WriteString(titleStyle.Render("TODO List Manager"))
	b.WriteString("\n\n")

	if len(state.Todos) == 0 {
		b.WriteString(helpStyle.Render(fmt.Sprintf("No todos yet. Press '%s' to add one.", m.cfg.Keys.Add)))
		b.WriteString("\n")
	} else {
		for i, todo := range state.Todos {
			cursor := " "
			if i == state.SelectedIndex {
				cursor = ">"
			}
			checkbox := "[ ]"
			if todo.Done {
				checkbox = "[x]"
			}
			line := fmt.Sprintf("%s %s %s", cursor, checkbox, todo.Text)
			switch {
			case i == state.SelectedIndex:
				line = selectedStyle.Render(line)
			case todo.Done:
				line = doneStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.mode == modeAdd {
		b.WriteString("New todo: ")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	}

	if m.confirmDel && state.Selected() {
		b.WriteString(statusStyle.Render(fmt.Sprintf("Delete %q? y/n", state.Todos[state.SelectedIndex].Text)))
	} else {
		b.WriteString(statusStyle.Render("Status: " + state.StatusMessage))
	}
	b.WriteString("\n")

	if m.mode == modeAdd {
		b.WriteString(helpStyle.Render("Enter to add the todo item, Esc to cancel"))
	} else {
		b.WriteString(helpStyle.Render(renderHelp(m.cfg.Keys)))
	}
	b.WriteString("\n")

	return b.String()
}

func renderHelp(k config.Keymap) string {
	return fmt.Sprintf("%s/%s move • %s add • %s toggle • %s remove • %s save • %s load • %s quit",
		k.Up, k.Down, k.Add, k.Toggle, k.Remove, k.Save, k.Load, k.Quit)
}
