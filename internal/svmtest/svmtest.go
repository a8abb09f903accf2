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

// Package svmtest constructs little-endian metafile streams for use in
// tests.
package svmtest

import (
	"bytes"
	"encoding/binary"
	"io"
	"unicode/utf16"

	"seehuhn.de/go/svm/stream"
)

// Builder accumulates the bytes of a metafile stream.
//
// Record sizes are patched in place once the payload of a record is
// complete, so records can be nested freely.
type Builder struct {
	Data []byte
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// Bytes returns a copy of the accumulated data.
func (b *Builder) Bytes() []byte {
	return bytes.Clone(b.Data)
}

// Reader returns a reader for the accumulated data.
func (b *Builder) Reader() io.ReadSeeker {
	return bytes.NewReader(b.Bytes())
}

// Stream returns a stream for the accumulated data.
func (b *Builder) Stream() *stream.Stream {
	s, err := stream.New(b.Reader())
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of bytes written so far.
func (b *Builder) Len() int {
	return len(b.Data)
}

// Raw appends bytes unchanged.
func (b *Builder) Raw(p ...byte) *Builder {
	b.Data = append(b.Data, p...)
	return b
}

// U8 appends a byte.
func (b *Builder) U8(x uint8) *Builder {
	b.Data = append(b.Data, x)
	return b
}

// Bool appends a boolean as a single byte.
func (b *Builder) Bool(x bool) *Builder {
	if x {
		return b.U8(1)
	}
	return b.U8(0)
}

// U16 appends a uint16.
func (b *Builder) U16(x uint16) *Builder {
	b.Data = binary.LittleEndian.AppendUint16(b.Data, x)
	return b
}

// I16 appends an int16.
func (b *Builder) I16(x int16) *Builder {
	return b.U16(uint16(x))
}

// U32 appends a uint32.
func (b *Builder) U32(x uint32) *Builder {
	b.Data = binary.LittleEndian.AppendUint32(b.Data, x)
	return b
}

// I32 appends an int32.
func (b *Builder) I32(x int32) *Builder {
	return b.U32(uint32(x))
}

// Pt appends a point.
func (b *Builder) Pt(x, y int32) *Builder {
	return b.I32(x).I32(y)
}

// Rect appends a rectangle.
func (b *Builder) Rect(left, top, right, bottom int32) *Builder {
	return b.I32(left).I32(top).I32(right).I32(bottom)
}

// Poly appends a polygon without flags: a point count followed by the
// coordinates, given as x, y pairs.
func (b *Builder) Poly(xy ...int32) *Builder {
	b.U16(uint16(len(xy) / 2))
	for _, v := range xy {
		b.I32(v)
	}
	return b
}

// ByteString appends a byte string with a uint16 length prefix.
func (b *Builder) ByteString(s string) *Builder {
	b.U16(uint16(len(s)))
	b.Data = append(b.Data, s...)
	return b
}

// UTF16 appends a string as a uint16 count of UTF-16 code units followed
// by the code units.
func (b *Builder) UTF16(s string) *Builder {
	units := utf16.Encode([]rune(s))
	b.U16(uint16(len(units)))
	for _, u := range units {
		b.U16(u)
	}
	return b
}

// Compat appends a version envelope and calls body to write the payload.
// The size field is filled in after body returns.
func (b *Builder) Compat(version uint16, body func(b *Builder)) *Builder {
	b.U16(version)
	sizePos := len(b.Data)
	b.U32(0)
	if body != nil {
		body(b)
	}
	size := len(b.Data) - sizePos - 4
	binary.LittleEndian.PutUint32(b.Data[sizePos:], uint32(size))
	return b
}

// CompatSize appends a version envelope with an explicit size field.
// The payload must be written by the caller.
func (b *Builder) CompatSize(version uint16, size uint32) *Builder {
	return b.U16(version).U32(size)
}

// Action appends a tagged record.
func (b *Builder) Action(tag uint16, version uint16, body func(b *Builder)) *Builder {
	b.U16(tag)
	return b.Compat(version, body)
}

// MapMode appends a map mode record.
func (b *Builder) MapMode(unit uint16, ox, oy int32) *Builder {
	return b.Compat(1, func(b *Builder) {
		b.U16(unit).Pt(ox, oy).I32(1).I32(1).I32(1).I32(1).Bool(true)
	})
}

// Header appends the signature and the file header.  The header uses
// the 100thMM map unit and the given preferred size.
func (b *Builder) Header(width, height int32, count uint32) *Builder {
	b.Data = append(b.Data, "VCLMTF"...)
	return b.Compat(1, func(b *Builder) {
		b.U32(0)
		b.MapMode(0, 0, 0)
		b.I32(width).I32(height)
		b.U32(count)
	})
}

// CountPos returns the position of the action count field in a stream
// which starts with a header written by [Builder.Header].
func CountPos() int {
	// signature, envelope, compression mode, map mode, size
	return 6 + 6 + 4 + 33 + 8
}

// SetCount overwrites the action count of a header written at the start
// of the data.
func (b *Builder) SetCount(count uint32) *Builder {
	binary.LittleEndian.PutUint32(b.Data[CountPos():], count)
	return b
}

// BMP appends a bitmap file with a 40 byte info header.  Rows in data
// must be padded to multiples of four bytes.
func (b *Builder) BMP(width, height int32, bitCount uint16, palette []uint32, data []byte) *Builder {
	offset := uint32(14 + 40 + 4*len(palette))
	b.Raw('B', 'M').U32(offset + uint32(len(data))).U32(0).U32(offset)
	b.U32(40).I32(width).I32(height).U16(1).U16(bitCount)
	b.U32(0).U32(uint32(len(data))).I32(2835).I32(2835)
	b.U32(uint32(len(palette))).U32(0)
	for _, c := range palette {
		b.U32(c)
	}
	return b.Raw(data...)
}
