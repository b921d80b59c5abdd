package store

// Action is one requested state change. The set is closed: every
// variant lives in this package and Reduce switches over all of them.
type Action interface {
	isAction()
}

// SetInputText replaces the pending input buffer.
type SetInputText struct{ Text string }

// AddTodo commits the pending input as a new item.
type AddTodo struct{}

// RemoveSelectedTodo deletes the currently selected item.
type RemoveSelectedTodo struct{}

// ToggleSelectedTodo flips Done on the currently selected item.
type ToggleSelectedTodo struct{}

// SelectTodo changes the selection. -1 clears it.
type SelectTodo struct{ Index int }

// RequestSave asks to persist the current list.
type RequestSave struct{}

// RequestLoad asks to reload the list from storage.
type RequestLoad struct{}

// LoadComplete carries the result of a load effect. State is nil when
// nothing usable could be read.
type LoadComplete struct {
	State   *AppState
	Message string
}

// SetStatus sets the status text directly. Effect completions use it.
type SetStatus struct{ Message string }

// Quit requests termination.
type Quit struct{}

func (SetInputText) isAction()       {}
func (AddTodo) isAction()            {}
func (RemoveSelectedTodo) isAction() {}
func (ToggleSelectedTodo) isAction() {}
func (SelectTodo) isAction()         {}
func (RequestSave) isAction()        {}
func (RequestLoad) isAction()        {}
func (LoadComplete) isAction()       {}
func (SetStatus) isAction()          {}
func (Quit) isAction()               {}
