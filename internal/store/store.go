package store

// Subscriber is a callback invoked with the new state after every
// commit. Subscribers must not block; dispatching from inside one is
// allowed and queues the action.
type Subscriber func(AppState)

// Store owns the single live AppState and mediates dispatch and
// notification. It is single-threaded cooperative: safe for use from
// the Bubble Tea update loop, not for concurrent mutation.
type Store struct {
	state       AppState
	subscribers []Subscriber
	runner      *Runner

	// Actions dispatched while a dispatch is already running (by an
	// observer or an effect completion) queue here and drain in FIFO
	// order, so a follow-up action is always reduced strictly after
	// the action that spawned it has been committed and observed.
	queue    []Action
	draining bool
}

// New creates a store with the given initial state and effect runner.
func New(initial AppState, runner *Runner) *Store {
	return &Store{state: initial, runner: runner}
}

// State returns the current state value.
func (s *Store) State() AppState {
	return s.state
}

// Subscribe registers a callback invoked on every state change.
func (s *Store) Subscribe(fn Subscriber) {
	s.subscribers = append(s.subscribers, fn)
}

// Dispatch reduces the action, commits the new state, notifies all
// subscribers and then runs the emitted effect, in that order. It
// never rejects an action; validation happens inside the reducer.
func (s *Store) Dispatch(action Action) {
	s.queue = append(s.queue, action)
	if s.draining {
		return
	}
	s.draining = true
	defer func() { s.draining = false }()

	for len(s.queue) > 0 {
		next := s.queue[0]
		s.queue = s.queue[1:]

		newState, effect := Reduce(s.state, next)
		s.state = newState
		for _, fn := range s.subscribers {
			fn(newState)
		}
		if effect != nil && s.runner != nil {
			s.runner.Run(effect, s.Dispatch)
		}
	}
}
