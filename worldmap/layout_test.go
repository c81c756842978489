package worldmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLayoutLengthLaw(t *testing.T) {
	tables := []struct {
		length  int
		screens int
	}{
		{ScreenSize, 1},
		{ScreenSize * 2, 2},
		{ScreenSize * 4, 4},
	}
	for _, table := range tables {
		l, err := DecodeLayout(make([]byte, table.length))
		require.NoError(t, err)
		assert.Equal(t, table.screens, l.ScreenCount())
		assert.Equal(t, table.screens*ScreenWidth, l.Width())
	}

	for _, length := range []int{0, 1, ScreenSize - 1, ScreenSize + 1, ScreenSize * 5} {
		_, err := DecodeLayout(make([]byte, length))
		require.Error(t, err)

		lengthErr, ok := err.(*MalformedLengthError)
		require.True(t, ok)
		assert.Equal(t, length, lengthErr.Length)
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	b := make([]byte, ScreenSize*2)
	for i := range b {
		b[i] = uint8(i)
	}

	l, err := DecodeLayout(b)
	require.NoError(t, err)
	assert.Equal(t, b, l.Encode())

	// the layout owns a copy, mutating the source leaves it alone
	b[0] = 0xEE
	assert.NotEqual(t, b, l.Encode())
}

func TestLayoutTiles(t *testing.T) {
	l, err := DecodeLayout(make([]byte, ScreenSize*2))
	require.NoError(t, err)

	require.NoError(t, l.SetTile(1, 3, 7, 0x42))
	tile, err := l.TileAt(1, 3, 7)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x42), tile)

	// the write landed at the expected flat position
	assert.Equal(t, uint8(0x42), l.Encode()[ScreenSize+3*ScreenWidth+7])

	for _, bad := range [][3]int{
		{2, 0, 0},
		{-1, 0, 0},
		{0, ScreenHeight, 0},
		{0, 0, ScreenWidth},
	} {
		_, err := l.TileAt(bad[0], bad[1], bad[2])
		assert.Error(t, err)
		assert.Error(t, l.SetTile(bad[0], bad[1], bad[2], 0))
	}
}
