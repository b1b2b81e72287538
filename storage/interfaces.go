package storage

import (
	"context"
	"errors"

	"hcm-analyzer/models"
)

// ErrSessionNotFound is returned when a store has no session with the
// requested id, or no session at all.
var ErrSessionNotFound = errors.New("session not found")

// SessionWriter writes a session out as files and reports the paths written.
type SessionWriter interface {
	WriteSession(s *models.Session) ([]string, error)
}

// SessionStore is the interface any database backend must satisfy. Stores
// keep the session header and its records; derived values are recomputed
// by the caller after loading.
type SessionStore interface {
	SaveSession(ctx context.Context, s *models.Session) error
	LoadSession(ctx context.Context, id string) (*models.Session, error)
	LatestSessionID(ctx context.Context) (string, error)
	Close() error
}
