package storage

import (
	"context"

	"contractbot/internal/domain"
)

// Session is everything persisted for one conversation: the state the
// dialogue is waiting in and the record accumulated so far.
type Session struct {
	State  domain.State       `json:"state"`
	Record domain.OrderRecord `json:"record"`
}

// Store keeps sessions keyed by conversation identity. Get returns nil
// (not an error) when no session exists.
type Store interface {
	Get(ctx context.Context, conversationID int64) (*Session, error)
	Set(ctx context.Context, conversationID int64, session Session) error
	Clear(ctx context.Context, conversationID int64) error
}
