package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/moodiary/internal/client/repositories/kv"
	"github.com/dmitrijs2005/moodiary/internal/dbx"
)

// SQLiteStore keeps the session in the client_state table.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Load reads the session. Missing keys load as empty values; an unreadable
// user record loads as the zero User.
func (s *SQLiteStore) Load(ctx context.Context) (Session, error) {
	repo := kv.NewSQLiteRepository(s.db)

	token, err := repo.Get(ctx, KeyToken)
	if err != nil {
		return Session{}, fmt.Errorf("load session: %w", err)
	}
	tokenType, err := repo.Get(ctx, KeyTokenType)
	if err != nil {
		return Session{}, fmt.Errorf("load session: %w", err)
	}
	rawUser, err := repo.Get(ctx, KeyUser)
	if err != nil {
		return Session{}, fmt.Errorf("load session: %w", err)
	}

	out := Session{Token: string(token), TokenType: string(tokenType)}
	if len(rawUser) > 0 {
		var u User
		if json.Unmarshal(rawUser, &u) == nil {
			out.User = u
		}
	}
	return out, nil
}

// Save writes all three keys in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, sess Session) error {
	rawUser, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, KeyToken, []byte(sess.Token)); err != nil {
			return err
		}
		if err := repo.Set(ctx, KeyTokenType, []byte(sess.TokenType)); err != nil {
			return err
		}
		return repo.Set(ctx, KeyUser, rawUser)
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Clear removes the token, its type, and the user record.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)
		for _, k := range []string{KeyToken, KeyTokenType, KeyUser} {
			if err := repo.Delete(ctx, k); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// MemoryStore is a Store held in process memory.
type MemoryStore struct {
	mu   sync.Mutex
	sess Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(context.Context) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sess, nil
}

func (m *MemoryStore) Save(_ context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = s
	return nil
}

func (m *MemoryStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = Session{}
	return nil
}
