package worldmap

// AnimatedSet is the set of block ids drawn with a cycling animation.
// Animation is a property of the id alone; there is no in-band flag bit.
type AnimatedSet map[uint8]bool

// Contains reports whether a block id animates.
func (s AnimatedSet) Contains(id uint8) bool {
	return s[id]
}

// StockAnimated lists the animating blocks of the unmodified game: the
// water border tiles and the sparkling level panels.
var StockAnimated = AnimatedSet{
	0x40: true, 0x41: true, 0x42: true, 0x43: true,
	0x44: true, 0x45: true, 0x46: true, 0x47: true,
	0x48: true, 0x49: true, 0x4A: true, 0x4B: true,
	0xE5: true, 0xE6: true, 0xE7: true, 0xE8: true,
}

// TileAttributes decides which board tiles the player can enter. The
// base rule is the game's quadrant check: the two most significant bits of
// a block id select one of four minimum values, and ids at or above the
// minimum are enterable. Special and completable tiles are enterable
// regardless, matching how the game treats castles and bonus houses.
type TileAttributes struct {
	QuadrantMinimums [4]uint8
	SpecialEnterable []uint8
	CompletableBonus []uint8
}

// Enterable reports whether a block id can be entered.
func (a *TileAttributes) Enterable(tile uint8) bool {
	if tile >= a.QuadrantMinimums[tile>>6] {
		return true
	}
	return contains(a.SpecialEnterable, tile) || contains(a.CompletableBonus, tile)
}

func contains(tiles []uint8, tile uint8) bool {
	for _, t := range tiles {
		if t == tile {
			return true
		}
	}
	return false
}
