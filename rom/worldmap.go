package rom

import (
	"fmt"

	"github.com/TheJoeSmo/Foundry/worldmap"
)

// layoutTerminator ends a world's layout bytes, the same sentinel the
// level streams use.
const layoutTerminator = 0xFF

// Fixed tables anchoring world-map data, named after the disassembly
// labels they were located through. All values already include the iNES
// header shift.
const (
	offsetSize = 2

	// worldMapBase anchors most world and level related pointers.
	worldMapBase = BaseOffset + 0xE000

	// tileAttributes holds the four quadrant minimums for enterable
	// overworld tiles (Tile_Attributes_TS0).
	tileAttributes = worldMapBase + 0xA400

	// layoutList is the per-world list of world-map layout pointers
	// (Map_Tile_Layouts).
	layoutList = worldMapBase + 0xA598

	// structureData points at each world's meta block, which starts with
	// the per-screen start indexes into the row list
	// (Map_ByXHi_InitIndex).
	structureData = worldMapBase + 0xB3CA

	// rowLists and columnLists point at each world's packed row/tileset
	// and screen/column lists (Map_ByRowType, Map_ByScrCol).
	rowLists    = worldMapBase + 0xB3DC
	columnLists = worldMapBase + 0xB3EE

	// enemyLists points at each world's list of enemy data pointers
	// (Map_ObjSets).
	enemyLists = worldMapBase + 0xB400

	// levelLists points at each world's list of level layout pointers
	// (Map_LevelLayouts).
	levelLists = worldMapBase + 0xB412

	// pageA000ByTileset maps a tileset to the page banked in at 0xA000,
	// the key to translating level pointers into flat offsets
	// (PAGE_A000_ByTileset).
	pageA000ByTileset = BaseOffset + 0x34000 + 0x83E9
)

// Level layout pointers always land in the banked 0xA000-0xC000 window.
const (
	levelPointerLow  = 0xA000
	levelPointerHigh = 0xC000
)

// WorldMapAddresses returns the flat offset of every world's layout
// bytes, warp world included.
func WorldMapAddresses(r *ROM) ([]int, error) {
	addresses := make([]int, worldmap.WorldCount)
	for world := range addresses {
		offset, err := r.LittleEndian(layoutList + world*offsetSize)
		if err != nil {
			return nil, err
		}
		addresses[world] = worldMapBase + offset
	}
	return addresses, nil
}

// ReadLayout returns a world's layout bytes, terminator excluded, ready
// for worldmap.DecodeLayout.
func ReadLayout(r *ROM, world int) ([]byte, error) {
	addresses, err := WorldMapAddresses(r)
	if err != nil {
		return nil, err
	}
	if world < 0 || world >= len(addresses) {
		return nil, fmt.Errorf("rom: world %d out of range", world)
	}

	start := addresses[world]
	end := r.Find(layoutTerminator, start)
	if end < 0 {
		return nil, fmt.Errorf("rom: world %d layout at %#x has no terminator", world, start)
	}
	return r.Read(start, end-start)
}

// ReadTileAttributes returns the enterable-tile rules stored in the
// image.
func ReadTileAttributes(r *ROM) (*worldmap.TileAttributes, error) {
	quadrants, err := r.Read(tileAttributes, 4)
	if err != nil {
		return nil, err
	}

	a := new(worldmap.TileAttributes)
	copy(a.QuadrantMinimums[:], quadrants)
	return a, nil
}

// ReadIndexRegions extracts a world's parallel index lists and translates
// every stored pointer into a flat file offset. The row nibbles keep the
// game's border-inclusive coordinate system; subtract
// worldmap.FirstValidRow to compare them against board rows.
func ReadIndexRegions(r *ROM, world int) (worldmap.IndexRegions, error) {
	var regions worldmap.IndexRegions

	if world < 0 || world >= worldmap.WorldCount {
		return regions, fmt.Errorf("rom: world %d out of range", world)
	}

	rowStart, err := pointerAt(r, rowLists, world)
	if err != nil {
		return regions, err
	}
	columnStart, err := pointerAt(r, columnLists, world)
	if err != nil {
		return regions, err
	}

	// The row list runs up to the column list; the difference is the
	// world's total level count.
	total := columnStart - rowStart
	if total < 0 {
		return regions, fmt.Errorf("rom: world %d has inverted index lists", world)
	}

	// The structure block opens with the row-list start index of each
	// screen, which yields the per-screen level counts.
	structStart, err := pointerAt(r, structureData, world)
	if err != nil {
		return regions, err
	}
	screenStarts, err := r.Read(structStart, worldmap.MaxScreens)
	if err != nil {
		return regions, err
	}

	counts := make([]int, worldmap.MaxScreens)
	for screen := range counts {
		next := total
		if screen+1 < len(screenStarts) {
			next = int(screenStarts[screen+1])
		}
		counts[screen] = next - int(screenStarts[screen])
	}

	rowTileset, err := r.Read(rowStart, total)
	if err != nil {
		return regions, err
	}
	screenColumn, err := r.Read(columnStart, total)
	if err != nil {
		return regions, err
	}

	layoutListStart, err := pointerAt(r, levelLists, world)
	if err != nil {
		return regions, err
	}
	enemyListStart, err := pointerAt(r, enemyLists, world)
	if err != nil {
		return regions, err
	}

	layouts := make([]int, total)
	enemies := make([]int, total)
	for i := 0; i < total; i++ {
		pointer, err := r.LittleEndian(layoutListStart + i*offsetSize)
		if err != nil {
			return regions, err
		}

		if world == worldmap.WarpWorld {
			// Warp world entries redirect instead of resolving; their
			// tileset nibble is a world number, so no page translation
			// applies and the raw pointer is kept only for symmetry.
			layouts[i] = BaseOffset + pointer
		} else {
			layouts[i], err = translateLevelPointer(r, pointer, rowTileset[i]&0x0F)
			if err != nil {
				return regions, fmt.Errorf("rom: world %d level %d: %w", world, i, err)
			}
		}

		enemyPointer, err := r.LittleEndian(enemyListStart + i*offsetSize)
		if err != nil {
			return regions, err
		}
		enemies[i] = BaseOffset + enemyPointer
	}

	regions = worldmap.IndexRegions{
		World:           world,
		LevelCounts:     counts,
		RowTileset:      rowTileset,
		ScreenColumn:    screenColumn,
		LayoutAddresses: layouts,
		EnemyAddresses:  enemies,
	}
	return regions, nil
}

// translateLevelPointer turns a bank-relative level pointer into a flat
// offset using the page table for the level's tileset.
func translateLevelPointer(r *ROM, pointer int, set uint8) (int, error) {
	if pointer < levelPointerLow || pointer >= levelPointerHigh {
		return 0, fmt.Errorf("level pointer %#x outside the %#x-%#x window", pointer, levelPointerLow, levelPointerHigh)
	}

	page, err := r.Byte(pageA000ByTileset + int(set))
	if err != nil {
		return 0, err
	}

	return BaseOffset + (int(page)*2-10)*0x1000 + pointer, nil
}

func pointerAt(r *ROM, table, world int) (int, error) {
	offset, err := r.LittleEndian(table + world*offsetSize)
	if err != nil {
		return 0, err
	}
	return worldMapBase + offset, nil
}
