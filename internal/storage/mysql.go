package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"contractbot/internal/domain"
)

// MySQLStore persists sessions in a single table, one row per conversation.
type MySQLStore struct {
	db *sql.DB
}

func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

// EnsureSchema creates the sessions table if it is missing.
func (s *MySQLStore) EnsureSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS conversation_sessions (
			conversation_id BIGINT NOT NULL PRIMARY KEY,
			state VARCHAR(32) NOT NULL,
			record JSON NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)
	`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating sessions table: %w", err)
	}
	return nil
}

func (s *MySQLStore) Get(ctx context.Context, conversationID int64) (*Session, error) {
	query := `
		SELECT state, record
		FROM conversation_sessions
		WHERE conversation_id = ?
	`

	var state string
	var record []byte
	err := s.db.QueryRowContext(ctx, query, conversationID).Scan(&state, &record)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying session: %w", err)
	}

	session := Session{State: domain.State(state)}
	if err := json.Unmarshal(record, &session.Record); err != nil {
		return nil, fmt.Errorf("decoding session record: %w", err)
	}
	return &session, nil
}

func (s *MySQLStore) Set(ctx context.Context, conversationID int64, session Session) error {
	record, err := json.Marshal(session.Record)
	if err != nil {
		return fmt.Errorf("encoding session record: %w", err)
	}

	query := `
		INSERT INTO conversation_sessions (conversation_id, state, record)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE state = VALUES(state), record = VALUES(record)
	`
	if _, err := s.db.ExecContext(ctx, query, conversationID, string(session.State), record); err != nil {
		return fmt.Errorf("upserting session: %w", err)
	}
	return nil
}

func (s *MySQLStore) Clear(ctx context.Context, conversationID int64) error {
	query := `DELETE FROM conversation_sessions WHERE conversation_id = ?`
	if _, err := s.db.ExecContext(ctx, query, conversationID); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}
