package foundry

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheJoeSmo/Foundry/worldmap"
)

func testDB(t *testing.T) (*LevelDB, func()) {
	t.Helper()

	dir, err := ioutil.TempDir("", "foundry")
	require.NoError(t, err)

	db, err := NewLevelDB(filepath.Join(dir, "test.db"))
	require.NoError(t, err)

	return db, func() {
		db.Close()
		os.RemoveAll(dir)
	}
}

func TestAddROMIdempotent(t *testing.T) {
	db, done := testDB(t)
	defer done()

	id, err := db.AddROM("A0B1C2D3", "smb3.nes")
	require.NoError(t, err)

	again, err := db.AddROM("A0B1C2D3", "renamed.nes")
	require.NoError(t, err)
	assert.Equal(t, id, again)

	other, err := db.AddROM("00112233", "other.nes")
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}

func TestAddLevelAndQuery(t *testing.T) {
	db, done := testDB(t)
	defer done()

	romID, err := db.AddROM("A0B1C2D3", "smb3.nes")
	require.NoError(t, err)

	entries := []worldmap.Entry{
		{Screen: 0, Row: 4, Column: 8, Resolution: worldmap.Resolution{Address: worldmap.LevelAddress{
			LayoutAddress: 0x1E200, EnemyAddress: 0xCE00, Tileset: 1,
		}}},
		{Screen: 0, Row: 2, Column: 3, Resolution: worldmap.Resolution{Address: worldmap.LevelAddress{
			LayoutAddress: 0x1E010, EnemyAddress: 0xC800, Tileset: 3,
		}}},
	}
	for _, e := range entries {
		require.NoError(t, db.AddLevel(romID, 0, e))
	}

	levels, err := db.LevelsByCRC("A0B1C2D3")
	require.NoError(t, err)
	require.Len(t, levels, 2)

	// board order, not insertion order
	assert.Equal(t, CatalogLevel{
		World: 0, Screen: 0, Row: 2, Column: 3, Tileset: 3,
		LayoutAddress: 0x1E010, EnemyAddress: 0xC800,
	}, levels[0])
	assert.Equal(t, 4, levels[1].Row)

	// re-adding the same board position replaces, never duplicates
	entries[1].Resolution.Address.Tileset = 9
	require.NoError(t, db.AddLevel(romID, 0, entries[1]))
	levels, err = db.LevelsByCRC("A0B1C2D3")
	require.NoError(t, err)
	require.Len(t, levels, 2)
	assert.Equal(t, uint8(9), levels[0].Tileset)

	levels, err = db.LevelsByCRC("unknown")
	require.NoError(t, err)
	assert.Empty(t, levels)
}
