/*
Package worldmap decodes the overworld of each world: the flat tile grid
the player walks on, and the parallel index lists that say which board
positions hold levels and where their data lives in the image.
*/
package worldmap

import (
	"fmt"
)

const (
	// ScreenWidth and ScreenHeight are the fixed dimensions of one
	// world-map screen in tile blocks.
	ScreenWidth  = 16
	ScreenHeight = 9

	// ScreenSize is the byte length of one screen's layout.
	ScreenSize = ScreenWidth * ScreenHeight

	// MaxScreens is the most screens a world map can span.
	MaxScreens = 4

	// FirstValidRow is the first row below the map border the player can
	// stand on. The stored row nibbles of the index lists count from the
	// border, board coordinates count from this row.
	FirstValidRow = 2
)

// MalformedLengthError reports a byte region whose length does not fit the
// format's fixed geometry.
type MalformedLengthError struct {
	What   string
	Length int
}

func (e *MalformedLengthError) Error() string {
	return fmt.Sprintf("worldmap: %s has malformed length %d", e.What, e.Length)
}

// Layout is the visual tile grid of a world map. Every byte is a direct
// block id, row-major, one screen after another. The screen count is
// always derived from the data length; it is deliberately not a stored
// field that could fall out of sync.
type Layout struct {
	tiles []byte
}

// DecodeLayout copies the layout out of a byte region. The region must be
// a whole number of screens and at most MaxScreens of them.
func DecodeLayout(b []byte) (*Layout, error) {
	if len(b)%ScreenSize != 0 || len(b) > ScreenSize*MaxScreens || len(b) == 0 {
		return nil, &MalformedLengthError{What: "layout", Length: len(b)}
	}

	tiles := make([]byte, len(b))
	copy(tiles, b)
	return &Layout{tiles: tiles}, nil
}

// Encode returns the layout bytes, the identity inverse of DecodeLayout.
func (l *Layout) Encode() []byte {
	out := make([]byte, len(l.tiles))
	copy(out, l.tiles)
	return out
}

// ScreenCount reports how many screens the layout spans.
func (l *Layout) ScreenCount() int {
	return len(l.tiles) / ScreenSize
}

// Width is the map width in blocks across all screens.
func (l *Layout) Width() int {
	return l.ScreenCount() * ScreenWidth
}

func (l *Layout) index(screen, row, column int) (int, error) {
	if screen < 0 || screen >= l.ScreenCount() {
		return 0, fmt.Errorf("worldmap: screen %d outside the %d screens of this map", screen, l.ScreenCount())
	}
	if row < 0 || row >= ScreenHeight {
		return 0, fmt.Errorf("worldmap: row %d outside the map", row)
	}
	if column < 0 || column >= ScreenWidth {
		return 0, fmt.Errorf("worldmap: column %d outside the map", column)
	}
	return screen*ScreenSize + row*ScreenWidth + column, nil
}

// TileAt returns the block id at a board position.
func (l *Layout) TileAt(screen, row, column int) (uint8, error) {
	i, err := l.index(screen, row, column)
	if err != nil {
		return 0, err
	}
	return l.tiles[i], nil
}

// SetTile overwrites the block id at a board position.
func (l *Layout) SetTile(screen, row, column int, tile uint8) error {
	i, err := l.index(screen, row, column)
	if err != nil {
		return err
	}
	l.tiles[i] = tile
	return nil
}
