package foundry

import (
	"database/sql"
	"fmt"

	"github.com/TheJoeSmo/Foundry/worldmap"
	_ "github.com/mattn/go-sqlite3"
)

// LevelDB is the persistent catalogue of levels discovered by scanning
// cartridge images, keyed by image checksum so the same database can hold
// several ROM variants.
type LevelDB struct {
	db *sql.DB
}

func NewLevelDB(file string) (*LevelDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS rom (id INTEGER PRIMARY KEY NOT NULL, crc TEXT NOT NULL UNIQUE, name STRING NOT NULL)"); err != nil {
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS level (id INTEGER PRIMARY KEY NOT NULL, rom_id INTEGER NOT NULL, world INTEGER NOT NULL, screen INTEGER NOT NULL, board_row INTEGER NOT NULL, board_column INTEGER NOT NULL, tileset INTEGER NOT NULL, layout_address INTEGER NOT NULL, enemy_address INTEGER NOT NULL, UNIQUE(rom_id, world, screen, board_row, board_column), FOREIGN KEY(rom_id) REFERENCES rom(id))"); err != nil {
		return nil, err
	}

	return &LevelDB{
		db: db,
	}, nil
}

func (db *LevelDB) Close() error {
	return db.db.Close()
}

// AddROM registers an image by checksum, returning its row id. A known
// checksum returns the existing row.
func (db *LevelDB) AddROM(crc, name string) (int64, error) {
	var id int64
	switch err := db.db.QueryRow("SELECT id FROM rom WHERE crc = ?", crc).Scan(&id); err {
	case sql.ErrNoRows:
		result, err := db.db.Exec("INSERT INTO rom (crc, name) VALUES (?, ?)", crc, name)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	case nil:
		return id, nil
	default:
		return 0, err
	}
}

// AddLevel records one resolved level of an image.
func (db *LevelDB) AddLevel(romID int64, world int, e worldmap.Entry) error {
	if _, err := db.db.Exec(
		"INSERT OR REPLACE INTO level (rom_id, world, screen, board_row, board_column, tileset, layout_address, enemy_address) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		romID, world, e.Screen, e.Row, e.Column,
		e.Resolution.Address.Tileset, e.Resolution.Address.LayoutAddress, e.Resolution.Address.EnemyAddress,
	); err != nil {
		return err
	}
	return nil
}

// CatalogLevel is one catalogued level as stored in the database.
type CatalogLevel struct {
	World   int
	Screen  int
	Row     int
	Column  int
	Tileset uint8

	LayoutAddress int
	EnemyAddress  int
}

// LevelsByCRC returns every catalogued level of the image with the given
// checksum, in board order.
func (db *LevelDB) LevelsByCRC(crc string) ([]CatalogLevel, error) {
	rows, err := db.db.Query(
		"SELECT l.world, l.screen, l.board_row, l.board_column, l.tileset, l.layout_address, l.enemy_address FROM level AS l JOIN rom AS r ON l.rom_id = r.id WHERE r.crc = ? ORDER BY l.world, l.screen, l.board_row, l.board_column",
		crc,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var levels []CatalogLevel
	for rows.Next() {
		var l CatalogLevel
		if err := rows.Scan(&l.World, &l.Screen, &l.Row, &l.Column, &l.Tileset, &l.LayoutAddress, &l.EnemyAddress); err != nil {
			return nil, err
		}
		levels = append(levels, l)
	}

	return levels, rows.Err()
}
