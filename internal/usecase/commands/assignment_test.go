//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"venue-desk/internal/domain/assignment"
	"venue-desk/internal/infra"
	"venue-desk/internal/pkg/errs"
	"venue-desk/internal/usecase/commands"
	"venue-desk/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func assignmentIn(state assignment.State) *assignment.Assignment {
	return assignment.ReconstructAssignment(uuid.New(), "Подготовить зал", nil, nil, nil,
		testNow.Add(48*time.Hour), state, testNow)
}

func TestAssignmentCommands_Complete(t *testing.T) {
	t.Run("success: every active assignment is completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		first, second := assignmentIn(assignment.StateActive), assignmentIn(assignment.StateActive)
		ids := []uuid.UUID{first.ID(), second.ID(), first.ID()}

		m.assignments.EXPECT().FindByIDsForUpdate(gomock.Any(), []uuid.UUID{first.ID(), second.ID()}).
			Return([]*assignment.Assignment{first, second}, nil)
		m.assignments.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		uc := commands.NewAssignmentCommands(m.uow, discardLogger())
		err := uc.Complete(context.Background(), ids, shared.Confirmed(true))

		require.NoError(t, err)
		assert.Equal(t, assignment.StateCompleted, first.State())
		assert.Equal(t, assignment.StateCompleted, second.State())
	})

	t.Run("error: one draft blocks the whole batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		active, draft := assignmentIn(assignment.StateActive), assignmentIn(assignment.StateDraft)

		m.assignments.EXPECT().FindByIDsForUpdate(gomock.Any(), gomock.Any()).
			Return([]*assignment.Assignment{active, draft}, nil)

		uc := commands.NewAssignmentCommands(m.uow, discardLogger())
		err := uc.Complete(context.Background(), []uuid.UUID{active.ID(), draft.ID()}, shared.Confirmed(true))

		assert.ErrorIs(t, err, assignment.ErrInvalidTransition)
	})

	t.Run("error: unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		active := assignmentIn(assignment.StateActive)

		m.assignments.EXPECT().FindByIDsForUpdate(gomock.Any(), gomock.Any()).
			Return([]*assignment.Assignment{active}, nil)

		uc := commands.NewAssignmentCommands(m.uow, discardLogger())
		err := uc.Complete(context.Background(), []uuid.UUID{active.ID(), uuid.New()}, shared.Confirmed(true))

		assert.ErrorIs(t, err, commands.ErrAssignmentNotFound)
	})

	t.Run("error: empty selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)

		uc := commands.NewAssignmentCommands(m.uow, discardLogger())
		err := uc.Complete(context.Background(), nil, shared.Confirmed(true))

		assert.ErrorIs(t, err, commands.ErrNothingSelected)
	})

	t.Run("error: declined", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)

		uc := commands.NewAssignmentCommands(m.uow, discardLogger())
		err := uc.Complete(context.Background(), []uuid.UUID{uuid.New()}, nil)

		assert.ErrorIs(t, err, shared.ErrNotConfirmed)
	})
}

func TestAssignmentCommands_Update(t *testing.T) {
	activate := "active"
	complete := "completed"

	tests := []struct {
		name    string
		current assignment.State
		req     commands.UpdateAssignmentRequest
		wantErr error
		want    assignment.State
	}{
		{name: "draft to active", current: assignment.StateDraft, req: commands.UpdateAssignmentRequest{State: &activate}, want: assignment.StateActive},
		{name: "draft cannot complete", current: assignment.StateDraft, req: commands.UpdateAssignmentRequest{State: &complete}, wantErr: assignment.ErrInvalidTransition},
		{name: "completed is read-only", current: assignment.StateCompleted, req: commands.UpdateAssignmentRequest{State: &activate}, wantErr: assignment.ErrCompletedReadOnly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newTxMocks(ctrl)
			a := assignmentIn(tt.current)

			m.assignments.EXPECT().FindByID(gomock.Any(), a.ID()).Return(a, nil)
			if tt.wantErr == nil {
				m.assignments.EXPECT().Update(gomock.Any(), a).Return(nil)
			}

			err := commands.NewAssignmentCommands(m.uow, discardLogger()).Update(context.Background(), a.ID(), tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.State())
		})
	}

	t.Run("error: dangling event reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		a := assignmentIn(assignment.StateDraft)
		eventID := uuid.New()

		m.assignments.EXPECT().FindByID(gomock.Any(), a.ID()).Return(a, nil)
		m.assignments.EXPECT().Update(gomock.Any(), a).
			Return(infra.WrapRepoErr("failed to update assignment", nil, infra.KindForeignKeyViolated))

		err := commands.NewAssignmentCommands(m.uow, discardLogger()).
			Update(context.Background(), a.ID(), commands.UpdateAssignmentRequest{EventID: &eventID})

		assert.True(t, errs.Is(err, commands.ErrReferenceNotFound))
	})
}
