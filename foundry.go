/*
Package foundry is a library for reading and editing the level and
world-map data inside a Super Mario Bros. 3 cartridge image.

The format subpackages do the actual byte work: tileset holds the shape
rules that give level records their length, level codes the object, enemy
and warp streams, worldmap codes the overworld grid and the index lists
that place levels on it, and rom knows where everything lives in the
image. This package ties them together behind a facade that can resolve
board positions to levels and catalogue every level of an image into a
database.
*/
package foundry

import (
	"errors"
	"log"

	"github.com/TheJoeSmo/Foundry/level"
	"github.com/TheJoeSmo/Foundry/rom"
	"github.com/TheJoeSmo/Foundry/tileset"
	"github.com/TheJoeSmo/Foundry/worldmap"
)

type Foundry struct {
	db     *LevelDB
	logger *log.Logger
	table  *tileset.Table
}

func New(dbFile string, logger *log.Logger) (*Foundry, error) {
	db, err := NewLevelDB(dbFile)
	if err != nil {
		return nil, err
	}
	return &Foundry{
		db:     db,
		logger: logger,
		table:  tileset.Stock(),
	}, nil
}

func (f *Foundry) Close() error {
	return f.db.Close()
}

// SetShapeTable replaces the stock shape table, for images whose
// generator tables have been rewritten.
func (f *Foundry) SetShapeTable(t *tileset.Table) {
	f.table = t
}

// Resolve locates the level behind a board position, re-entering the
// lookup for the target world whenever the warp world redirects, the same
// way the game does before it reads any level data. Board rows count from
// below the map border; the stored row nibbles include it.
func (f *Foundry) Resolve(r *rom.ROM, pos worldmap.Position) (worldmap.Resolution, error) {
	for hop := 0; hop < worldmap.WorldCount; hop++ {
		regions, err := rom.ReadIndexRegions(r, pos.World)
		if err != nil {
			return worldmap.Resolution{}, err
		}

		index, err := worldmap.DecodeIndex(regions)
		if err != nil {
			return worldmap.Resolution{}, err
		}

		res, err := index.Locate(pos.Screen, pos.Row+worldmap.FirstValidRow, pos.Column)
		if err != nil {
			return worldmap.Resolution{}, err
		}

		if !res.Redirect {
			return res, nil
		}

		f.logger.Printf("Position %s redirects to world %d\n", pos, res.TargetWorld)
		pos.World = res.TargetWorld
	}

	return worldmap.Resolution{}, errors.New("foundry: warp world redirect loop")
}

// Locate loads an image from disk and resolves a board position in it.
func (f *Foundry) Locate(path string, pos worldmap.Position) (worldmap.Resolution, error) {
	r, err := rom.Load(path)
	if err != nil {
		return worldmap.Resolution{}, err
	}
	return f.Resolve(r, pos)
}

// Levels returns the catalogued levels of the image with the given
// checksum, as recorded by an earlier Scan.
func (f *Foundry) Levels(crc string) ([]CatalogLevel, error) {
	return f.db.LevelsByCRC(crc)
}

// LevelsForFile checksums an image on disk and returns its catalogued
// levels, without loading the image into memory.
func (f *Foundry) LevelsForFile(path string) ([]CatalogLevel, error) {
	crc, err := crcFile(path)
	if err != nil {
		return nil, err
	}
	return f.db.LevelsByCRC(crc)
}

// Level resolves a board position and decodes the level behind it.
func (f *Foundry) Level(r *rom.ROM, pos worldmap.Position) (*level.Level, error) {
	res, err := f.Resolve(r, pos)
	if err != nil {
		return nil, err
	}
	return level.ReadLevel(r, res.Address, f.table)
}
