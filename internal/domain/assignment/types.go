package assignment

import "errors"

var (
	ErrInvalidState      = errors.New("invalid assignment state")
	ErrInvalidTransition = errors.New("assignment state transition is not allowed")
)

type State string

const (
	StateDraft     State = "draft"
	StateActive    State = "active"
	StateCompleted State = "completed"
)

var stateLabels = map[State]string{
	StateDraft:     "Черновик",
	StateActive:    "Активно",
	StateCompleted: "Выполнено",
}

// draft <-> active, active -> completed
var transitions = map[State][]State{
	StateDraft:  {StateActive},
	StateActive: {StateDraft, StateCompleted},
}

func NewState(s string) (State, error) {
	st := State(s)
	if !st.IsValid() {
		return "", ErrInvalidState
	}
	return st, nil
}

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	_, ok := stateLabels[s]
	return ok
}

func (s State) Label() string {
	return stateLabels[s]
}

func (s State) CanTransitionTo(next State) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func States() []State {
	return []State{StateDraft, StateActive, StateCompleted}
}
