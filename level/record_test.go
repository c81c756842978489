package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheJoeSmo/Foundry/tileset"
)

// testTable marks id 0x20 as a four-byte width generator in every set and
// everything else as three bytes.
func testTable(t *testing.T) *tileset.Table {
	t.Helper()

	var defs [tileset.Count]tileset.Definition
	for i := range defs {
		defs[i] = tileset.Definition{
			Name: tileset.Names[i],
			Spans: []tileset.Span{
				{First: 0x00, Last: 0x1F, Shape: tileset.Shape{ByteLength: 3, Axis: tileset.AxisNone}},
				{First: 0x20, Last: 0x20, Shape: tileset.Shape{ByteLength: 4, Axis: tileset.AxisWidth}},
				{First: 0x21, Last: 0xFF, Shape: tileset.Shape{ByteLength: 3, Axis: tileset.AxisNone}},
			},
		}
	}

	table, err := tileset.NewTable(defs)
	require.NoError(t, err)
	return table
}

func TestDecodeEmptyStream(t *testing.T) {
	records, n, err := DecodeRecords([]byte{Terminator}, tileset.Plains, testTable(t))
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, 1, n)
}

func TestDecodeFourByteObject(t *testing.T) {
	records, n, err := DecodeRecords([]byte{0x02, 0x00, 0x20, 0xFF, Terminator}, tileset.Plains, testTable(t))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 5, n)

	obj, ok := records[0].(Object)
	require.True(t, ok)
	assert.Equal(t, uint8(0), obj.Domain)
	assert.Equal(t, uint8(2), obj.Y)
	assert.Equal(t, uint8(0), obj.X)
	assert.Equal(t, uint8(0x20), obj.ID)
	require.NotNil(t, obj.ExtraLength)
	assert.Equal(t, uint8(0xFF), *obj.ExtraLength)

	out, err := EncodeRecords(records, tileset.Plains, testTable(t))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x00, 0x20, 0xFF, Terminator}, out)
}

func TestRecordRoundTripPreservesOrder(t *testing.T) {
	table := testTable(t)
	extra := uint8(0x0A)

	records := []Record{
		Object{Domain: 1, Y: 5, X: 10, ID: 0x31},
		Object{Domain: 0, Y: 0, X: 0, ID: 0x20, ExtraLength: &extra},
		Warp{ExitAction: 3, YIndex: 2, X: 0x45},
		Object{Domain: 6, Y: 31, X: 255, ID: 0xFE},
	}

	b, err := EncodeRecords(records, tileset.Hilly, table)
	require.NoError(t, err)

	decoded, n, err := DecodeRecords(b, tileset.Hilly, table)
	require.NoError(t, err)
	assert.Equal(t, len(b), n)
	assert.Equal(t, records, decoded)
}

func TestDecodeDispatchesWarpsByDomain(t *testing.T) {
	b := []byte{
		0xE3, 0x20, 0x54, // warp: action 3, y index 2, x 0x45 stored swapped
		0x25, 0x07, 0x11, // object in domain 1
		Terminator,
	}

	records, _, err := DecodeRecords(b, tileset.Plains, testTable(t))
	require.NoError(t, err)
	require.Len(t, records, 2)

	w, ok := records[0].(Warp)
	require.True(t, ok)
	assert.Equal(t, uint8(3), w.ExitAction)
	assert.Equal(t, uint8(2), w.YIndex)
	assert.Equal(t, uint8(0x45), w.X)

	obj, ok := records[1].(Object)
	require.True(t, ok)
	assert.Equal(t, uint8(1), obj.Domain)
	assert.Equal(t, uint8(5), obj.Y)
}

func TestDecodeTruncatedStream(t *testing.T) {
	table := testTable(t)

	for _, b := range [][]byte{
		{},                       // no terminator at all
		{0x02, 0x00},             // object cut short
		{0x02, 0x00, 0x20},       // missing declared fourth byte
		{0xE3, 0x20},             // warp cut short
		{0x02, 0x00, 0x21, 0x02}, // second record cut short
	} {
		_, _, err := DecodeRecords(b, tileset.Plains, table)
		assert.Equal(t, ErrTruncated, err, "input %#v", b)
	}
}

func TestEncodeRejectsBadObjects(t *testing.T) {
	table := testTable(t)
	extra := uint8(1)

	// reserved domain
	_, err := EncodeRecords([]Record{Object{Domain: 7, ID: 0x21}}, tileset.Plains, table)
	require.Error(t, err)

	// missing required length byte
	_, err = EncodeRecords([]Record{Object{ID: 0x20}}, tileset.Plains, table)
	require.Error(t, err)

	// length byte on a three-byte object
	_, err = EncodeRecords([]Record{Object{ID: 0x21, ExtraLength: &extra}}, tileset.Plains, table)
	require.Error(t, err)

	// y out of range
	_, err = EncodeRecords([]Record{Object{Y: 32, ID: 0x21}}, tileset.Plains, table)
	require.Error(t, err)
}
