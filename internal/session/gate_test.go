package session

import (
	"testing"

	"github.com/avc/cargo-office/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.SessionState
		event   Event
		want    domain.SessionState
		wantErr bool
	}{
		{name: "Login starts", from: domain.SessionStateLoggedOut, event: EventLoginStarted, want: domain.SessionStateAuthenticating},
		{name: "Login succeeds", from: domain.SessionStateAuthenticating, event: EventLoginSucceeded, want: domain.SessionStateLoggedIn},
		{name: "Login fails", from: domain.SessionStateAuthenticating, event: EventLoginFailed, want: domain.SessionStateLoggedOut},
		{name: "Logout", from: domain.SessionStateLoggedIn, event: EventLogout, want: domain.SessionStateLoggedOut},
		{name: "Backend rejects token", from: domain.SessionStateLoggedIn, event: EventUnauthorized, want: domain.SessionStateLoggedOut},
		{name: "Logout while logged out", from: domain.SessionStateLoggedOut, event: EventLogout, wantErr: true},
		{name: "Skip authentication", from: domain.SessionStateLoggedOut, event: EventLoginSucceeded, wantErr: true},
		{name: "Login twice", from: domain.SessionStateLoggedIn, event: EventLoginStarted, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Next(tt.from, tt.event)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTransition)
				assert.Equal(t, tt.from, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
