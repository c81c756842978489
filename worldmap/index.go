package worldmap

import (
	"errors"
	"fmt"
)

const (
	// WorldCount includes the warp world.
	WorldCount = 9

	// WarpWorld is the zero-based index of the world whose row/tileset
	// list encodes target-world redirects instead of tilesets.
	WarpWorld = 8
)

// ErrLevelNotFound reports a board position with no level behind it. It is
// an ordinary lookup miss, fatal only to that navigation attempt.
var ErrLevelNotFound = errors.New("worldmap: no level at position")

// ErrIndexOrder reports parallel lists that violate the format's implicit
// ordering: rows ascending within each screen's slice, columns grouped by
// row and ascending within a group. The lists carry no explicit keys, so
// these invariants are all that makes the lookup sound; they are checked
// here, at construction, rather than trusted silently.
var ErrIndexOrder = errors.New("worldmap: index lists violate ordering invariant")

// Position is a board cell the player can stand on.
type Position struct {
	World  int
	Screen int
	Row    int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("world %d screen %d row %d column %d", p.World, p.Screen, p.Row, p.Column)
}

// LevelAddress is the resolved location of one level's data. Addresses are
// flat-file offsets, already translated from the console's bank-relative
// pointers by whoever built the IndexRegions. A LevelAddress is ephemeral;
// it is recomputed per lookup, never persisted.
type LevelAddress struct {
	LayoutAddress int
	EnemyAddress  int
	Tileset       uint8
}

// Resolution is the outcome of a successful Locate. In the warp world a
// position resolves to the world it redirects to instead of to level data;
// the caller re-enters Locate for the target world.
type Resolution struct {
	Redirect    bool
	TargetWorld int
	Address     LevelAddress
}

// IndexRegions carries the raw parallel lists of one world, extracted from
// their regions of the image by the caller. The address slices hold flat
// offsets; translating the stored bank-relative pointers happens before
// the data reaches this package.
type IndexRegions struct {
	World           int
	LevelCounts     []int
	RowTileset      []byte
	ScreenColumn    []byte
	LayoutAddresses []int
	EnemyAddresses  []int
}

// Index is the decoded per-world level index. The four per-level lists are
// index-aligned: position i in each describes the same level.
type Index struct {
	world        int
	counts       []int
	rowTileset   []byte
	screenColumn []byte
	layouts      []int
	enemies      []int
}

// DecodeIndex validates the parallel lists and their ordering invariants
// and returns the index. Length inconsistencies and ordering violations
// fail here, never later inside a lookup.
func DecodeIndex(r IndexRegions) (*Index, error) {
	if r.World < 0 || r.World >= WorldCount {
		return nil, fmt.Errorf("worldmap: world %d out of range", r.World)
	}
	if len(r.LevelCounts) == 0 || len(r.LevelCounts) > MaxScreens {
		return nil, &MalformedLengthError{What: "level counts", Length: len(r.LevelCounts)}
	}

	total := 0
	for screen, n := range r.LevelCounts {
		if n < 0 {
			return nil, fmt.Errorf("worldmap: screen %d has negative level count %d", screen, n)
		}
		total += n
	}

	if len(r.RowTileset) != total {
		return nil, &MalformedLengthError{What: "row/tileset list", Length: len(r.RowTileset)}
	}
	if len(r.ScreenColumn) != total {
		return nil, &MalformedLengthError{What: "screen/column list", Length: len(r.ScreenColumn)}
	}
	if len(r.LayoutAddresses) != total {
		return nil, &MalformedLengthError{What: "layout address list", Length: len(r.LayoutAddresses)}
	}
	if len(r.EnemyAddresses) != total {
		return nil, &MalformedLengthError{What: "enemy address list", Length: len(r.EnemyAddresses)}
	}

	x := &Index{
		world:        r.World,
		counts:       append([]int(nil), r.LevelCounts...),
		rowTileset:   append([]byte(nil), r.RowTileset...),
		screenColumn: append([]byte(nil), r.ScreenColumn...),
		layouts:      append([]int(nil), r.LayoutAddresses...),
		enemies:      append([]int(nil), r.EnemyAddresses...),
	}

	if err := x.validateOrder(); err != nil {
		return nil, err
	}
	return x, nil
}

func (x *Index) validateOrder() error {
	for screen := range x.counts {
		start, end := x.screenSlice(screen)
		for i := start; i < end; i++ {
			if got := int(x.screenColumn[i] >> 4); got != screen {
				return fmt.Errorf("%w: entry %d stores screen %d inside screen %d's slice", ErrIndexOrder, i, got, screen)
			}
			if i == start {
				continue
			}
			prevRow, row := x.rowTileset[i-1]>>4, x.rowTileset[i]>>4
			if row < prevRow {
				return fmt.Errorf("%w: rows descend at entry %d", ErrIndexOrder, i)
			}
			if row == prevRow && x.screenColumn[i]&0x0F <= x.screenColumn[i-1]&0x0F {
				return fmt.Errorf("%w: columns do not ascend within row group at entry %d", ErrIndexOrder, i)
			}
		}
	}
	return nil
}

func (x *Index) screenSlice(screen int) (int, int) {
	start := 0
	for s := 0; s < screen; s++ {
		start += x.counts[s]
	}
	return start, start + x.counts[screen]
}

// World returns the zero-based world number the index belongs to.
func (x *Index) World() int {
	return x.world
}

// LevelCount returns the number of levels across all screens.
func (x *Index) LevelCount() int {
	total := 0
	for _, n := range x.counts {
		total += n
	}
	return total
}

// Locate resolves a board position to the addresses of its level data.
//
// The search mirrors the game's: scan the screen's slice of the row list
// for the first entry matching the row, then scan the column list from
// that point, within the matched row's contiguous group, for the column.
// First-match on rows matters because several levels can share a row; the
// grouping invariant guarantees the right column appears at or after the
// first row match. The final index is shared by all four lists.
func (x *Index) Locate(screen, row, column int) (Resolution, error) {
	if screen < 0 || screen >= len(x.counts) {
		return Resolution{}, fmt.Errorf("worldmap: world %d has %d screens, screen %d invalid", x.world, len(x.counts), screen)
	}

	start, end := x.screenSlice(screen)

	i0 := -1
	for i := start; i < end; i++ {
		if int(x.rowTileset[i]>>4) == row {
			i0 = i
			break
		}
	}
	if i0 < 0 {
		return Resolution{}, ErrLevelNotFound
	}

	groupEnd := i0
	for groupEnd < end && int(x.rowTileset[groupEnd]>>4) == row {
		groupEnd++
	}

	for i := i0; i < groupEnd; i++ {
		if int(x.screenColumn[i]&0x0F) != column {
			continue
		}

		if x.world == WarpWorld {
			return Resolution{
				Redirect:    true,
				TargetWorld: int(x.rowTileset[i] >> 4),
			}, nil
		}

		return Resolution{
			Address: LevelAddress{
				LayoutAddress: x.layouts[i],
				EnemyAddress:  x.enemies[i],
				Tileset:       x.rowTileset[i] & 0x0F,
			},
		}, nil
	}

	return Resolution{}, ErrLevelNotFound
}

// Entry is one level of the index in board terms, used when walking a
// whole world rather than probing one position.
type Entry struct {
	Screen     int
	Row        int
	Column     int
	Resolution Resolution
}

// Entries lists every level of the index in stream order.
func (x *Index) Entries() []Entry {
	var out []Entry

	for screen := range x.counts {
		start, end := x.screenSlice(screen)
		for i := start; i < end; i++ {
			e := Entry{
				Screen: screen,
				Row:    int(x.rowTileset[i] >> 4),
				Column: int(x.screenColumn[i] & 0x0F),
			}
			if x.world == WarpWorld {
				e.Resolution = Resolution{Redirect: true, TargetWorld: int(x.rowTileset[i] >> 4)}
			} else {
				e.Resolution = Resolution{Address: LevelAddress{
					LayoutAddress: x.layouts[i],
					EnemyAddress:  x.enemies[i],
					Tileset:       x.rowTileset[i] & 0x0F,
				}}
			}
			out = append(out, e)
		}
	}
	return out
}
