// README: Session state store backed by Redis, with an append-only Postgres audit log.
package conversation

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:%s:state"

type Store struct {
	redis *redis.Client
	db    *pgxpool.Pool
	ttl   time.Duration
}

// NewStore creates a session store. db may be nil; the audit log is
// then skipped.
func NewStore(rdb *redis.Client, db *pgxpool.Pool, ttl time.Duration) *Store {
	return &Store{redis: rdb, db: db, ttl: ttl}
}

// Get loads a session state. A missing session returns (nil, nil).
func (s *Store) Get(ctx context.Context, sessionID string) (*State, error) {
	raw, err := s.redis.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("conversation: load session %s: %w", sessionID, err)
	}

	var st State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return nil, fmt.Errorf("conversation: decode session %s: %w", sessionID, err)
	}
	return &st, nil
}

// Save persists the session state with the configured TTL. Each save
// refreshes the TTL so active conversations do not expire mid-flight.
func (s *Store) Save(ctx context.Context, st *State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("conversation: encode session %s: %w", st.SessionID, err)
	}
	if err := s.redis.Set(ctx, sessionKey(st.SessionID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("conversation: save session %s: %w", st.SessionID, err)
	}
	return nil
}

// Delete removes a session's state.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	return s.redis.Del(ctx, sessionKey(sessionID)).Err()
}

// Audit appends one message to the Postgres audit log. Failures are
// logged and swallowed: audit must never break a conversational turn.
func (s *Store) Audit(ctx context.Context, sessionID, userID, role, content string) {
	if s.db == nil {
		return
	}
	_, err := s.db.Exec(ctx,
		`INSERT INTO conversation_messages (session_id, user_id, role, content, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		sessionID, userID, role, content, time.Now().UTC())
	if err != nil {
		log.Printf("conversation audit insert failed session=%s: %v", sessionID, err)
	}
}

// History returns the full audited history of a session, oldest first.
func (s *Store) History(ctx context.Context, sessionID string) ([]Message, error) {
	if s.db == nil {
		return nil, nil
	}
	rows, err := s.db.Query(ctx,
		`SELECT role, content FROM conversation_messages
		 WHERE session_id = $1 ORDER BY created_at ASC, id ASC`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("conversation: history query: %w", err)
	}
	defer rows.Close()

	var out []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.Role, &m.Content); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf(sessionKeyPrefix, sessionID)
}
