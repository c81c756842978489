/*
Package rom provides access to the flat cartridge image and knows where
the fixed world-map tables live inside it.

The codec packages treat the image as an opaque byte array; everything
offset-specific is concentrated here. Stored pointers are bank-relative
16-bit values; this package translates them into flat file offsets before
any codec sees them, so the codecs never touch bank arithmetic.
*/
package rom

import (
	"fmt"
	"hash/crc32"
	"io/ioutil"
	"os"
)

// BaseOffset is the size of the iNES header in front of the cartridge
// data; all in-game offsets are shifted by it.
const BaseOffset = 0x10

// ROM is a cartridge image held in memory. Reads copy values out; writes
// are total overwrites of a known byte range. The ROM performs no locking,
// callers serialise overlapping writes themselves.
type ROM struct {
	data []byte
}

// New wraps an image already in memory. The ROM takes ownership of the
// slice.
func New(data []byte) *ROM {
	return &ROM{data: data}
}

// Load reads an image from disk.
func Load(path string) (*ROM, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(data), nil
}

// SaveTo writes the image back to disk.
func (r *ROM) SaveTo(path string) error {
	return ioutil.WriteFile(path, r.data, os.FileMode(0644))
}

// Len returns the image size in bytes.
func (r *ROM) Len() int {
	return len(r.data)
}

func (r *ROM) check(offset, n int) error {
	if offset < 0 || n < 0 || offset+n > len(r.data) {
		return fmt.Errorf("rom: range %#x+%d outside %d byte image", offset, n, len(r.data))
	}
	return nil
}

// Read copies n bytes out of the image.
func (r *ROM) Read(offset, n int) ([]byte, error) {
	if err := r.check(offset, n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, r.data[offset:])
	return out, nil
}

// Slice returns a view of the image from offset to its end, for codecs
// that find their own terminator. The view aliases the image; callers copy
// out what they keep.
func (r *ROM) Slice(offset int) ([]byte, error) {
	if err := r.check(offset, 0); err != nil {
		return nil, err
	}
	return r.data[offset:], nil
}

// Write overwrites the byte range starting at offset.
func (r *ROM) Write(offset int, b []byte) error {
	if err := r.check(offset, len(b)); err != nil {
		return err
	}
	copy(r.data[offset:], b)
	return nil
}

// Byte reads a single byte.
func (r *ROM) Byte(offset int) (uint8, error) {
	if err := r.check(offset, 1); err != nil {
		return 0, err
	}
	return r.data[offset], nil
}

// LittleEndian reads a 16-bit little-endian value.
func (r *ROM) LittleEndian(offset int) (int, error) {
	if err := r.check(offset, 2); err != nil {
		return 0, err
	}
	return int(r.data[offset]) | int(r.data[offset+1])<<8, nil
}

// Find returns the offset of the first occurrence of b at or after from,
// or -1 if the byte never occurs.
func (r *ROM) Find(b byte, from int) int {
	for i := from; i < len(r.data); i++ {
		if r.data[i] == b {
			return i
		}
	}
	return -1
}

// Checksum is the CRC-32 of the cartridge data, header excluded, the
// value emulator databases key on.
func (r *ROM) Checksum() uint32 {
	if len(r.data) <= BaseOffset {
		return crc32.ChecksumIEEE(r.data)
	}
	return crc32.ChecksumIEEE(r.data[BaseOffset:])
}
