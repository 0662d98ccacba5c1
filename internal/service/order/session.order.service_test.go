package order

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionTransitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		from    SessionState
		event   SessionEvent
		want    SessionState
		wantErr bool
	}{
		{name: "seed enters editing", from: StateInit, event: EventSeed, want: StateEditing},
		{name: "edit stays in editing", from: StateEditing, event: EventEdit, want: StateEditing},
		{name: "submit enters submitting", from: StateEditing, event: EventSubmit, want: StateSubmitting},
		{name: "succeed ends the session", from: StateSubmitting, event: EventSucceed, want: StateSuccess},
		{name: "fail returns to editing", from: StateSubmitting, event: EventFail, want: StateEditing},
		{name: "cannot submit before seeding", from: StateInit, event: EventSubmit, wantErr: true},
		{name: "cannot seed twice", from: StateEditing, event: EventSeed, wantErr: true},
		{name: "cannot edit while submitting", from: StateSubmitting, event: EventEdit, wantErr: true},
		{name: "success is terminal", from: StateSuccess, event: EventEdit, wantErr: true},
		{name: "cannot resubmit after success", from: StateSuccess, event: EventSubmit, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := &Session{state: tt.from}
			err := s.Apply(tt.event)
			if tt.wantErr {
				require.Error(t, err)
				require.Equal(t, tt.from, s.State(), "failed transition must not move the state")
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, s.State())
		})
	}
}

func TestSessionFullRound(t *testing.T) {
	t.Parallel()

	s := NewSession()
	require.Equal(t, StateInit, s.State())

	require.NoError(t, s.Apply(EventSeed))
	require.NoError(t, s.Apply(EventEdit))
	require.NoError(t, s.Apply(EventEdit))
	require.NoError(t, s.Apply(EventSubmit))
	require.NoError(t, s.Apply(EventFail))

	// A failed submission drops back to editing and can be retried.
	require.NoError(t, s.Apply(EventSubmit))
	require.NoError(t, s.Apply(EventSucceed))
	require.Equal(t, StateSuccess, s.State())
}
