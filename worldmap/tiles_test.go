package worldmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnterable(t *testing.T) {
	attrs := &TileAttributes{
		QuadrantMinimums: [4]uint8{0x10, 0x50, 0x90, 0xD0},
		SpecialEnterable: []uint8{0x05},
		CompletableBonus: []uint8{0x47},
	}

	// quadrant rule: minimum is picked by the top two bits of the id
	assert.True(t, attrs.Enterable(0x10))
	assert.False(t, attrs.Enterable(0x0F))
	assert.True(t, attrs.Enterable(0x60))
	assert.False(t, attrs.Enterable(0x42))

	// listed tiles are enterable below their quadrant minimum
	assert.True(t, attrs.Enterable(0x05))
	assert.True(t, attrs.Enterable(0x47))
}

func TestAnimatedSet(t *testing.T) {
	assert.True(t, StockAnimated.Contains(0x45))
	assert.True(t, StockAnimated.Contains(0xE5))
	assert.False(t, StockAnimated.Contains(0x00))
}
