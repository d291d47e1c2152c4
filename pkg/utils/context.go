package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	SessionIDKey contextKey = "session_id"
)

// SessionHeader carries the booking session ID on session-scoped routes.
const SessionHeader = "X-Session-ID"

func GetSessionIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	sessionIDVal := ctx.Value(SessionIDKey)
	if sessionIDVal == nil {
		return uuid.Nil, false
	}

	sessionIDStr, ok := sessionIDVal.(string)
	if !ok {
		return uuid.Nil, false
	}

	sessionID, err := uuid.Parse(sessionIDStr)
	if err != nil {
		return uuid.Nil, false
	}

	return sessionID, true
}

func SetSessionContext(ctx context.Context, sessionID uuid.UUID) context.Context {
	return context.WithValue(ctx, SessionIDKey, sessionID.String())
}
