package level

// WarpYTable maps a warp's YIndex to the row the player appears on. The
// table has sixteen entries, eight for horizontal levels followed by eight
// for vertical ones; which half applies comes from the level's
// orientation, not from the warp bytes. The table is immutable injected
// configuration so synthetic values can be used in tests.
type WarpYTable [16]uint8

// Position resolves a YIndex against the orientation of the destination
// level.
func (t WarpYTable) Position(yIndex uint8, vertical bool) uint8 {
	i := int(yIndex & 0x07)
	if vertical {
		i += 8
	}
	return t[i]
}

// StockWarpYTable is the arrival-row table of the unmodified game,
// transcribed from its level-junction data.
var StockWarpYTable = WarpYTable{
	// horizontal levels
	0x17, 0x04, 0x08, 0x0C, 0x10, 0x14, 0x17, 0x17,
	// vertical levels
	0x17, 0x00, 0x04, 0x08, 0x0C, 0x10, 0x14, 0x17,
}
