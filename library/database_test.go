package library

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func tempDB(t *testing.T) (*Database, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := NewDatabase(path)
	if err != nil {
		t.Fatalf("new db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, path
}

func TestDatabaseLoadMissingKey(t *testing.T) {
	db, _ := tempDB(t)

	raw, ok, err := db.Load("never-saved")
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, raw)
}

func TestDatabaseSaveLoadRoundTrip(t *testing.T) {
	db, _ := tempDB(t)

	require.NoError(t, db.Save(KeyBooks, []byte(`[{"id":"b1"}]`)))

	raw, ok, err := db.Load(KeyBooks)
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `[{"id":"b1"}]`, string(raw))
}

func TestDatabaseSaveOverwrites(t *testing.T) {
	db, _ := tempDB(t)

	require.NoError(t, db.Save(KeyMembers, []byte(`["old"]`)))
	require.NoError(t, db.Save(KeyMembers, []byte(`["new"]`)))

	raw, ok, err := db.Load(KeyMembers)
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `["new"]`, string(raw))
}

func TestDatabaseSurvivesReopen(t *testing.T) {
	db, path := tempDB(t)

	lib := OpenWith(db, &seqIDs{}, testClock())
	book, err := lib.AddBook(Book{Title: "Durable", Copies: 1})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	reopened, err := NewDatabase(path)
	require.NoError(t, err)
	t.Cleanup(func() { reopened.Close() })

	reloaded := OpenWith(reopened, &seqIDs{}, testClock())
	got, ok := reloaded.FindBook(book.ID)
	require.True(t, ok)
	require.Equal(t, book, got)
}
