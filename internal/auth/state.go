package auth

import (
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/google/uuid"
)

// OAuth states are single-use and expire after ten minutes.
const stateLifetime = 10 * time.Minute

const (
	sessionStateKey   = "oauth_state"
	sessionStampedKey = "oauth_state_at"
)

// NewState stores a fresh random state value in the session and returns
// it. The value goes into the GitHub authorize URL and must come back
// unchanged on the callback.
func NewState(session sessions.Session) (string, error) {
	state := uuid.New().String()
	session.Set(sessionStateKey, state)
	session.Set(sessionStampedKey, time.Now().UTC().Unix())
	if err := session.Save(); err != nil {
		return "", err
	}
	return state, nil
}

// ConsumeState validates a callback state against the session and clears
// it either way; states are one-shot.
func ConsumeState(session sessions.Session, state string) bool {
	stored, _ := session.Get(sessionStateKey).(string)
	stampedAt, _ := session.Get(sessionStampedKey).(int64)

	session.Delete(sessionStateKey)
	session.Delete(sessionStampedKey)
	_ = session.Save()

	if stored == "" || state == "" || stored != state {
		return false
	}
	if stampedAt == 0 || time.Since(time.Unix(stampedAt, 0)) > stateLifetime {
		return false
	}
	return true
}
