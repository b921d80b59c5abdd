package store

import "slices"

// Reduce maps the current state and one action to the next state and
// an optional effect. It is pure: no I/O, no hidden state. Index
// bounds are always checked against the pre-mutation list.
func Reduce(state AppState, action Action) (AppState, Effect) {
	next := state

	switch act := action.(type) {
	case SetInputText:
		next.CurrentInput = act.Text
		return next, nil

	case AddTodo:
		if next.CurrentInput == "" {
			next.StatusMessage = "Input is empty."
			return next, nil
		}
		next.Todos = append(next.cloneTodos(), TodoItem{Text: next.CurrentInput})
		next.CurrentInput = ""
		next.SelectedIndex = len(next.Todos) - 1
		next.StatusMessage = "Todo added."
		return next, nil

	case RemoveSelectedTodo:
		if !next.Selected() {
			next.StatusMessage = "No item selected to remove."
			return next, nil
		}
		i := next.SelectedIndex
		next.Todos = slices.Delete(next.cloneTodos(), i, i+1)
		if len(next.Todos) == 0 {
			next.SelectedIndex = -1
		} else if next.SelectedIndex >= len(next.Todos) {
			next.SelectedIndex = len(next.Todos) - 1
		}
		next.StatusMessage = "Todo removed."
		return next, nil

	case ToggleSelectedTodo:
		if !next.Selected() {
			next.StatusMessage = "No item selected to toggle."
			return next, nil
		}
		todos := next.cloneTodos()
		todos[next.SelectedIndex].Done = !todos[next.SelectedIndex].Done
		next.Todos = todos
		next.StatusMessage = "Todo toggled."
		return next, nil

	case SelectTodo:
		// Out-of-range requests are silently ignored.
		if act.Index >= -1 && act.Index < len(next.Todos) {
			next.SelectedIndex = act.Index
		}
		return next, nil

	case RequestSave:
		next.StatusMessage = "Saving..."
		// The effect carries the state as it was when the save was
		// requested, not the "Saving..." state.
		return next, SaveState{Snapshot: state}

	case RequestLoad:
		next.StatusMessage = "Loading..."
		return next, LoadState{}

	case LoadComplete:
		if act.State != nil {
			next.Todos = act.State.Todos
			if len(next.Todos) == 0 {
				next.SelectedIndex = -1
			} else {
				next.SelectedIndex = 0
			}
		}
		next.StatusMessage = act.Message
		return next, nil

	case SetStatus:
		next.StatusMessage = act.Message
		return next, nil

	case Quit:
		next.ExitRequested = true
		next.StatusMessage = "Exiting..."
		return next, nil
	}

	return next, nil
}
