package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gigdesk/internal/client/models"
	"github.com/dmitrijs2005/gigdesk/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gigdesk/internal/common"
	"github.com/dmitrijs2005/gigdesk/internal/dbx"
)

// Persistence stores the (token, profile) pair. Save and Clear write both
// entries or neither.
type Persistence interface {
	// Load returns an empty token when nothing is stored. A stored token
	// with an unreadable profile yields a nil profile.
	Load(ctx context.Context) (token string, profile *models.UserProfile, err error)
	Save(ctx context.Context, token string, profile models.UserProfile) error
	Clear(ctx context.Context) error
}

// SQLitePersistence keeps the pair in the metadata table.
type SQLitePersistence struct {
	db *sql.DB
}

func NewSQLitePersistence(db *sql.DB) *SQLitePersistence {
	return &SQLitePersistence{db: db}
}

func (p *SQLitePersistence) Load(ctx context.Context) (string, *models.UserProfile, error) {
	entries, err := metadata.NewSQLiteRepository(p.db).GetMany(ctx, common.MetadataKeyToken, common.MetadataKeyProfile)
	if err != nil {
		return "", nil, err
	}

	token := string(entries[common.MetadataKeyToken])
	if token == "" {
		return "", nil, nil
	}

	raw, ok := entries[common.MetadataKeyProfile]
	if !ok {
		return token, nil, nil
	}
	var profile models.UserProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return token, nil, nil
	}
	return token, &profile, nil
}

func (p *SQLitePersistence) Save(ctx context.Context, token string, profile models.UserProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	return dbx.WithTx(ctx, p.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.MetadataKeyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, common.MetadataKeyProfile, raw)
	})
}

func (p *SQLitePersistence) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, p.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Delete(ctx, common.MetadataKeyToken, common.MetadataKeyProfile)
	})
}

// MemoryPersistence keeps the pair in process memory.
type MemoryPersistence struct {
	mu      sync.Mutex
	token   string
	profile *models.UserProfile
}

func NewMemoryPersistence() *MemoryPersistence {
	return &MemoryPersistence{}
}

func (m *MemoryPersistence) Load(_ context.Context) (string, *models.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.profile == nil {
		return m.token, nil, nil
	}
	p := m.profile.Clone()
	return m.token, &p, nil
}

func (m *MemoryPersistence) Save(_ context.Context, token string, profile models.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := profile.Clone()
	m.token, m.profile = token, &p
	return nil
}

func (m *MemoryPersistence) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token, m.profile = "", nil
	return nil
}
