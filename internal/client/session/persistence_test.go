package session

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gigdesk/internal/client/client"
	"github.com/dmitrijs2005/gigdesk/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLitePersistence(t *testing.T) *SQLitePersistence {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLitePersistence(db)
}

func TestSQLitePersistence_SaveLoadClear(t *testing.T) {
	p := newSQLitePersistence(t)
	ctx := context.Background()

	tok, prof, err := p.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
	assert.Nil(t, prof)

	ann := models.UserProfile{ID: "u1", Name: "Ann", Role: models.RoleFreelancer, Skills: []string{"figma"}}
	require.NoError(t, p.Save(ctx, "tok-1", ann))

	tok, prof, err = p.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)
	require.NotNil(t, prof)
	assert.Equal(t, ann, *prof)

	require.NoError(t, p.Clear(ctx))
	tok, prof, err = p.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
	assert.Nil(t, prof)
}

func TestSQLitePersistence_CorruptProfileLoadsAsNil(t *testing.T) {
	p := newSQLitePersistence(t)
	ctx := context.Background()

	_, err := p.db.ExecContext(ctx, `INSERT INTO metadata(key, value) VALUES ('token', 'tok'), ('user', '{broken')`)
	require.NoError(t, err)

	tok, prof, err := p.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", tok)
	assert.Nil(t, prof)
}

func TestSQLitePersistence_SaveRollsBackOnSecondWrite(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO metadata").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO metadata").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err = NewSQLitePersistence(db).Save(context.Background(), "tok", models.UserProfile{ID: "u1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLitePersistence_ClearRollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM metadata").WithArgs("token", "user").WillReturnError(errors.New("locked"))
	mock.ExpectRollback()

	err = NewSQLitePersistence(db).Clear(context.Background())
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLitePersistence_FailedSaveKeepsPriorPair(t *testing.T) {
	p := newSQLitePersistence(t)
	ctx := context.Background()

	require.NoError(t, p.Save(ctx, "old", models.UserProfile{ID: "u1", Name: "Old"}))

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	require.Error(t, p.Save(canceled, "new", models.UserProfile{ID: "u2", Name: "New"}))

	tok, prof, err := p.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "old", tok)
	require.NotNil(t, prof)
	assert.Equal(t, "Old", prof.Name)
}

func TestMemoryPersistence_ReturnsCopies(t *testing.T) {
	m := NewMemoryPersistence()
	ctx := context.Background()

	require.NoError(t, m.Save(ctx, "t", models.UserProfile{Skills: []string{"a"}}))
	_, prof, err := m.Load(ctx)
	require.NoError(t, err)
	prof.Skills[0] = "mutated"

	_, again, err := m.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, again.Skills)

	require.NoError(t, m.Clear(ctx))
	tok, prof, err := m.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
	assert.Nil(t, prof)
}
