// seehuhn.de/go/svm - a library for reading StarView metafiles
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package dib reads device independent bitmaps, as embedded in metafiles.
//
// A bitmap is stored as a complete BMP file: a file header, an info header,
// an optional colour table and the pixel data.  Since the input is
// untrusted, all sizes are checked against the remaining input before
// memory is allocated.
package dib

import (
	"fmt"
	"image/color"

	"seehuhn.de/go/svm/gdi"
)

// Limits for the size of bitmaps.
const (
	MaxDimension = 32768
	MaxPixels    = 64 << 20
)

// Compression describes how the pixel data is stored.
type Compression uint32

// These are the supported compression types.
const (
	CompressRGB       Compression = 0
	CompressRLE8      Compression = 1
	CompressRLE4      Compression = 2
	CompressBitfields Compression = 3
)

func (c Compression) String() string {
	switch c {
	case CompressRGB:
		return "RGB"
	case CompressRLE8:
		return "RLE8"
	case CompressRLE4:
		return "RLE4"
	case CompressBitfields:
		return "BITFIELDS"
	default:
		return fmt.Sprintf("Compression(%d)", uint32(c))
	}
}

// Header sizes of the supported info header variants.
const (
	fileHeaderSize = 14
	coreHeaderSize = 12
	infoHeaderSize = 40
	v4HeaderSize   = 108
	v5HeaderSize   = 124
)

// profileEmbedded is the colour space type of V5 headers which carry an
// ICC profile.
const profileEmbedded = 0x4D424544 // "MBED"

// Bitmap is a decoded device independent bitmap.
type Bitmap struct {
	Width  int
	Height int

	// TopDown is true if the first row of Data is the top row of the
	// image.
	TopDown bool

	BitCount    uint16
	Compression Compression
	HeaderSize  uint32

	// XPelsPerMeter and YPelsPerMeter give the resolution, 0 if unknown.
	XPelsPerMeter int32
	YPelsPerMeter int32

	// Palette is the colour table, for bit counts up to 8.
	Palette color.Palette

	// Masks are the red, green, blue and alpha channel masks for
	// bitfield encoded data.
	Masks [4]uint32

	// Data holds the pixel data as stored in the file.
	Data []byte

	// Profile holds an embedded ICC profile, if any.
	Profile []byte
}

// Stride returns the number of bytes per row of uncompressed pixel data.
func (b *Bitmap) Stride() int {
	return stride(b.Width, b.BitCount)
}

func stride(width int, bitCount uint16) int {
	return ((width*int(bitCount) + 31) / 32) * 4
}

func (b *Bitmap) String() string {
	return fmt.Sprintf("%dx%dx%d", b.Width, b.Height, b.BitCount)
}

// InvalidBitmapError indicates malformed bitmap data.
type InvalidBitmapError struct {
	Pos    int64
	Reason string
}

func (err *InvalidBitmapError) Error() string {
	return fmt.Sprintf("dib@%d: %s", err.Pos, err.Reason)
}

func invalid(pos int64, format string, args ...any) error {
	return &InvalidBitmapError{Pos: pos, Reason: fmt.Sprintf(format, args...)}
}

// Read reads a bitmap, including its file header.  After a successful
// read, the stream is positioned after the pixel data.
func Read(r *gdi.Reader) (*Bitmap, error) {
	start := r.Pos()

	magic, err := r.ReadUInt16()
	if err != nil {
		return nil, err
	}
	if magic != 0x4D42 { // "BM"
		return nil, invalid(start, "invalid signature 0x%04x", magic)
	}
	fileSize, err := r.ReadUInt32()
	if err != nil {
		return nil, err
	}
	if err := r.Skip(4); err != nil {
		return nil, err
	}
	offBits, err := r.ReadUInt32()
	if err != nil {
		return nil, err
	}

	b, err := readInfoHeader(r)
	if err != nil {
		return nil, err
	}
	infoStart := start + fileHeaderSize

	var profileOffset, profileSize uint32
	if b.HeaderSize >= v5HeaderSize {
		profileOffset, profileSize, err = readV5Fields(r, b, infoStart)
		if err != nil {
			return nil, err
		}
	}
	err = r.Seek(infoStart + int64(b.HeaderSize))
	if err != nil {
		return nil, err
	}

	if b.Compression == CompressBitfields && b.HeaderSize == infoHeaderSize {
		for i := range 3 {
			b.Masks[i], err = r.ReadUInt32()
			if err != nil {
				return nil, err
			}
		}
	}

	err = readPalette(r, b)
	if err != nil {
		return nil, err
	}

	// The pixel data offset is honoured if it points beyond the colour
	// table.
	if pixelStart := start + int64(offBits); offBits != 0 && pixelStart > r.Pos() {
		if pixelStart > r.Size() {
			return nil, invalid(start, "pixel offset %d beyond end of data", offBits)
		}
		err = r.Seek(pixelStart)
		if err != nil {
			return nil, err
		}
	}

	var dataSize int64
	switch b.Compression {
	case CompressRLE4, CompressRLE8:
		dataSize = int64(b.sizeImage)
	default:
		dataSize = int64(b.Stride()) * int64(b.Height)
	}
	if dataSize > r.Remaining() {
		return nil, invalid(r.Pos(), "%d bytes of pixel data expected, %d available",
			dataSize, r.Remaining())
	}
	b.Data, err = r.ReadBytes(int(dataSize))
	if err != nil {
		return nil, err
	}
	end := r.Pos()

	if profileSize > 0 {
		pStart := infoStart + int64(profileOffset)
		pEnd := pStart + int64(profileSize)
		if pEnd <= start+int64(fileSize) && pEnd <= r.Size() {
			err = r.Seek(pStart)
			if err != nil {
				return nil, err
			}
			b.Profile, err = r.ReadBytes(int(profileSize))
			if err != nil {
				return nil, err
			}
			end = max(end, pEnd)
		}
		err = r.Seek(end)
		if err != nil {
			return nil, err
		}
	}

	return b.Bitmap, nil
}

type header struct {
	*Bitmap
	sizeImage  uint32
	colorsUsed uint32
}

func readInfoHeader(r *gdi.Reader) (*header, error) {
	pos := r.Pos()
	size, err := r.ReadUInt32()
	if err != nil {
		return nil, err
	}

	b := &header{Bitmap: &Bitmap{HeaderSize: size}}
	var width, height int32
	var planes uint16
	switch {
	case size == coreHeaderSize:
		w, err := r.ReadUInt16()
		if err != nil {
			return nil, err
		}
		h, err := r.ReadUInt16()
		if err != nil {
			return nil, err
		}
		width, height = int32(w), int32(h)
		if planes, err = r.ReadUInt16(); err != nil {
			return nil, err
		}
		if b.BitCount, err = r.ReadUInt16(); err != nil {
			return nil, err
		}

	case size >= infoHeaderSize && size <= v5HeaderSize:
		if width, err = r.ReadInt32(); err != nil {
			return nil, err
		}
		if height, err = r.ReadInt32(); err != nil {
			return nil, err
		}
		if planes, err = r.ReadUInt16(); err != nil {
			return nil, err
		}
		if b.BitCount, err = r.ReadUInt16(); err != nil {
			return nil, err
		}
		var v [6]uint32
		for i := range v {
			v[i], err = r.ReadUInt32()
			if err != nil {
				return nil, err
			}
		}
		b.Compression = Compression(v[0])
		b.sizeImage = v[1]
		b.XPelsPerMeter = int32(v[2])
		b.YPelsPerMeter = int32(v[3])
		b.colorsUsed = v[4]

		// BITMAPV2INFOHEADER and later carry the channel masks.
		nMasks := min(int(size-infoHeaderSize)/4, 4)
		for i := range nMasks {
			b.Masks[i], err = r.ReadUInt32()
			if err != nil {
				return nil, err
			}
		}

	default:
		return nil, invalid(pos, "unsupported info header size %d", size)
	}

	if planes != 1 {
		return nil, invalid(pos, "invalid number of planes %d", planes)
	}
	switch b.BitCount {
	case 1, 4, 8, 16, 24, 32:
		// pass
	default:
		return nil, invalid(pos, "invalid bit count %d", b.BitCount)
	}
	switch b.Compression {
	case CompressRGB:
		// pass
	case CompressRLE8:
		if b.BitCount != 8 {
			return nil, invalid(pos, "RLE8 compression with bit count %d", b.BitCount)
		}
	case CompressRLE4:
		if b.BitCount != 4 {
			return nil, invalid(pos, "RLE4 compression with bit count %d", b.BitCount)
		}
	case CompressBitfields:
		if b.BitCount != 16 && b.BitCount != 32 {
			return nil, invalid(pos, "bitfields with bit count %d", b.BitCount)
		}
	default:
		return nil, invalid(pos, "unsupported compression %d", uint32(b.Compression))
	}

	if height < 0 {
		if b.Compression == CompressRLE4 || b.Compression == CompressRLE8 {
			return nil, invalid(pos, "top-down bitmap with RLE compression")
		}
		b.TopDown = true
		height = -height
	}
	if width <= 0 || height <= 0 || width > MaxDimension || height > MaxDimension {
		return nil, invalid(pos, "invalid dimensions %dx%d", width, height)
	}
	if int64(width)*int64(height) > MaxPixels {
		return nil, invalid(pos, "too many pixels (%dx%d)", width, height)
	}
	b.Width = int(width)
	b.Height = int(height)

	return b, nil
}

// readV5Fields reads the colour space type and the location of an
// embedded ICC profile from a BITMAPV5HEADER.
func readV5Fields(r *gdi.Reader, b *header, infoStart int64) (uint32, uint32, error) {
	// colour space type, directly after the masks
	err := r.Seek(infoStart + 56)
	if err != nil {
		return 0, 0, err
	}
	csType, err := r.ReadUInt32()
	if err != nil {
		return 0, 0, err
	}
	// intent, profile offset and profile size
	err = r.Seek(infoStart + 108)
	if err != nil {
		return 0, 0, err
	}
	if _, err := r.ReadUInt32(); err != nil {
		return 0, 0, err
	}
	offset, err := r.ReadUInt32()
	if err != nil {
		return 0, 0, err
	}
	size, err := r.ReadUInt32()
	if err != nil {
		return 0, 0, err
	}
	if csType != profileEmbedded {
		return 0, 0, nil
	}
	return offset, size, nil
}

func readPalette(r *gdi.Reader, b *header) error {
	if b.BitCount > 8 {
		return nil
	}
	maxColors := uint32(1) << b.BitCount
	n := b.colorsUsed
	if n == 0 || n > maxColors {
		n = maxColors
	}
	entrySize := int64(4)
	if b.HeaderSize == coreHeaderSize {
		entrySize = 3
	}
	if int64(n)*entrySize > r.Remaining() {
		return invalid(r.Pos(), "colour table with %d entries exceeds data", n)
	}

	raw, err := r.ReadBytes(int(int64(n) * entrySize))
	if err != nil {
		return err
	}
	b.Palette = make(color.Palette, n)
	for i := range b.Palette {
		p := raw[int64(i)*entrySize:]
		b.Palette[i] = color.RGBA{R: p[2], G: p[1], B: p[0], A: 0xFF}
	}
	return nil
}
