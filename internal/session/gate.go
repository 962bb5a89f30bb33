package session

import (
	"fmt"

	"github.com/avc/cargo-office/internal/domain"
)

// Event - событие, переводящее сессию в другое состояние
type Event string

const (
	EventLoginStarted   Event = "login_started"
	EventLoginSucceeded Event = "login_succeeded"
	EventLoginFailed    Event = "login_failed"
	EventLogout         Event = "logout"
	EventUnauthorized   Event = "unauthorized"
)

// transitions - допустимые переходы состояний сессии
var transitions = map[domain.SessionState]map[Event]domain.SessionState{
	domain.SessionStateLoggedOut: {
		EventLoginStarted: domain.SessionStateAuthenticating,
	},
	domain.SessionStateAuthenticating: {
		EventLoginSucceeded: domain.SessionStateLoggedIn,
		EventLoginFailed:    domain.SessionStateLoggedOut,
	},
	domain.SessionStateLoggedIn: {
		EventLogout:       domain.SessionStateLoggedOut,
		EventUnauthorized: domain.SessionStateLoggedOut,
	},
}

// Next возвращает состояние после события или ErrInvalidTransition
func Next(from domain.SessionState, ev Event) (domain.SessionState, error) {
	to, ok := transitions[from][ev]
	if !ok {
		return from, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, ev, from)
	}
	return to, nil
}
