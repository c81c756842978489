package level

import (
	"github.com/TheJoeSmo/Foundry/rom"
	"github.com/TheJoeSmo/Foundry/tileset"
	"github.com/TheJoeSmo/Foundry/worldmap"
)

// Level is the decoded content of one level: the geometry records in
// draw order and the enemy list, together with the tileset that governed
// their decoding. All values are copies; the Level holds no reference
// into the image it came from.
type Level struct {
	Tileset uint8
	Records []Record
	Enemies []Enemy
}

// ReadLevel decodes both streams of a resolved level out of the image.
func ReadLevel(r *rom.ROM, addr worldmap.LevelAddress, table *tileset.Table) (*Level, error) {
	objects, err := r.Slice(addr.LayoutAddress)
	if err != nil {
		return nil, err
	}
	records, _, err := DecodeRecords(objects, addr.Tileset, table)
	if err != nil {
		return nil, err
	}

	enemyBytes, err := r.Slice(addr.EnemyAddress)
	if err != nil {
		return nil, err
	}
	enemies, _, err := DecodeEnemies(enemyBytes)
	if err != nil {
		return nil, err
	}

	return &Level{
		Tileset: addr.Tileset,
		Records: records,
		Enemies: enemies,
	}, nil
}

// WriteLevel encodes the level and overwrites both of its byte ranges in
// the image. The caller keeps the addresses from the original resolution;
// growing a stream past the space the original occupied is the caller's
// problem to detect, the format records no lengths to check against.
func WriteLevel(r *rom.ROM, addr worldmap.LevelAddress, l *Level, table *tileset.Table) error {
	objects, err := EncodeRecords(l.Records, l.Tileset, table)
	if err != nil {
		return err
	}
	if err := r.Write(addr.LayoutAddress, objects); err != nil {
		return err
	}
	return r.Write(addr.EnemyAddress, EncodeEnemies(l.Enemies))
}
