package order

import "fmt"

// The form session moves through four states. INIT seeds from the draft
// store, EDITING re-enters on every field change, SUBMITTING has exactly two
// exits and SUCCESS is terminal. The table below is exhaustive: anything not
// listed is an invalid transition.
type SessionState string

const (
	StateInit       SessionState = "INIT"
	StateEditing    SessionState = "EDITING"
	StateSubmitting SessionState = "SUBMITTING"
	StateSuccess    SessionState = "SUCCESS"
)

type SessionEvent string

const (
	EventSeed    SessionEvent = "SEED"    // draft loaded from the store
	EventEdit    SessionEvent = "EDIT"    // any field change
	EventSubmit  SessionEvent = "SUBMIT"  // submit invoked with predicate true
	EventSucceed SessionEvent = "SUCCEED" // order persisted
	EventFail    SessionEvent = "FAIL"    // submission rejected or errored
)

var sessionTransitions = map[SessionState]map[SessionEvent]SessionState{
	StateInit: {
		EventSeed: StateEditing,
	},
	StateEditing: {
		EventEdit:   StateEditing,
		EventSubmit: StateSubmitting,
	},
	StateSubmitting: {
		EventSucceed: StateSuccess,
		EventFail:    StateEditing,
	},
	StateSuccess: {},
}

type Session struct {
	state SessionState
}

func NewSession() *Session {
	return &Session{state: StateInit}
}

func (s *Session) State() SessionState {
	return s.state
}

// Apply moves the session along the transition table. An event that is not
// legal in the current state is an error and leaves the state unchanged.
func (s *Session) Apply(event SessionEvent) error {
	next, ok := sessionTransitions[s.state][event]
	if !ok {
		return fmt.Errorf("invalid transition: %s does not accept %s", s.state, event)
	}
	s.state = next
	return nil
}
