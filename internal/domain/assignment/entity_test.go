//go:build unit

package assignment_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue-desk/internal/domain/assignment"
)

var deadline = time.Date(2024, 4, 1, 18, 0, 0, 0, time.UTC)

func newAssignment(t *testing.T, state assignment.State) *assignment.Assignment {
	t.Helper()
	a, err := assignment.NewAssignment(assignment.Params{Description: "Set up chairs", Deadline: deadline}, "")
	require.NoError(t, err)
	switch state {
	case assignment.StateActive:
		require.NoError(t, a.TransitionTo(assignment.StateActive))
	case assignment.StateCompleted:
		require.NoError(t, a.TransitionTo(assignment.StateActive))
		require.NoError(t, a.Complete())
	}
	return a
}

func TestNewAssignment(t *testing.T) {
	a := newAssignment(t, assignment.StateDraft)
	assert.Equal(t, assignment.StateDraft, a.State())
	assert.False(t, a.IsOnDesktop())

	_, err := assignment.NewAssignment(assignment.Params{}, "")
	assert.ErrorIs(t, err, assignment.ErrMissingDeadline)

	_, err = assignment.NewAssignment(assignment.Params{Deadline: deadline}, assignment.StateCompleted)
	assert.ErrorIs(t, err, assignment.ErrInvalidTransition)

	_, err = assignment.NewAssignment(assignment.Params{Deadline: deadline}, "archived")
	assert.ErrorIs(t, err, assignment.ErrInvalidState)

	active, err := assignment.NewAssignment(assignment.Params{Deadline: deadline}, assignment.StateActive)
	require.NoError(t, err)
	assert.True(t, active.IsOnDesktop())
}

func TestAssignment_Complete(t *testing.T) {
	tests := []struct {
		name  string
		state assignment.State
		errIs error
	}{
		{name: "active completes", state: assignment.StateActive},
		{name: "draft cannot complete", state: assignment.StateDraft, errIs: assignment.ErrInvalidTransition},
		{name: "completed cannot complete again", state: assignment.StateCompleted, errIs: assignment.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newAssignment(t, tt.state)
			err := a.Complete()
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				assert.Equal(t, tt.state, a.State())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, assignment.StateCompleted, a.State())
		})
	}
}

func TestAssignment_TransitionTo(t *testing.T) {
	a := newAssignment(t, assignment.StateActive)
	require.NoError(t, a.TransitionTo(assignment.StateDraft))
	require.NoError(t, a.TransitionTo(assignment.StateDraft))
	assert.ErrorIs(t, a.TransitionTo(assignment.StateCompleted), assignment.ErrInvalidTransition)

	done := newAssignment(t, assignment.StateCompleted)
	assert.ErrorIs(t, done.TransitionTo(assignment.StateActive), assignment.ErrInvalidTransition)
}

func TestAssignment_UpdateCompletedIsRejected(t *testing.T) {
	a := newAssignment(t, assignment.StateCompleted)
	err := a.Update(assignment.Params{Description: "changed", Deadline: deadline})
	assert.ErrorIs(t, err, assignment.ErrCompletedReadOnly)
	assert.Equal(t, "Set up chairs", a.Description())
}

func TestState_Labels(t *testing.T) {
	assert.Equal(t, "Активно", assignment.StateActive.Label())
	assert.Len(t, assignment.States(), 3)
}
