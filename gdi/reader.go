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

package gdi

import (
	"io"
	"unicode/utf16"

	"golang.org/x/text/encoding/unicode"
	"seehuhn.de/go/svm/stream"
	"seehuhn.de/go/svm/textenc"
)

// A Reader reads the primitive values used in metafile records.
type Reader struct {
	*stream.Stream

	// CharSet is the default encoding of the stream.  This is used for
	// byte strings which are not governed by the current font, for
	// example font names.
	CharSet textenc.CharSet

	// OnInconsistency, if set, is called whenever malformed data has been
	// corrected while reading.  If the function returns an error, reading
	// stops with this error.
	OnInconsistency func(msg string, args ...any) error
}

// NewReader allocates a new Reader.
func NewReader(s *stream.Stream) *Reader {
	return &Reader{
		Stream:  s,
		CharSet: textenc.UTF8,
	}
}

// Inconsistency reports a correction of malformed data.
func (r *Reader) Inconsistency(msg string, args ...any) error {
	if r.OnInconsistency == nil {
		return nil
	}
	return r.OnInconsistency(msg, args...)
}

// ClampCount limits a declared element count to the number of elements of
// size elemSize which fit into the remaining data.
func (r *Reader) ClampCount(what string, n int, elemSize int64) (int, error) {
	limit := r.Remaining() / elemSize
	if int64(n) <= limit {
		return n, nil
	}
	err := r.Inconsistency("count exceeds remaining data, truncating",
		"what", what, "claimed", n, "max", limit)
	return int(limit), err
}

// ReadByteString reads a byte string with a uint16 length prefix and
// converts it to UTF-8 using the given encoding.
func (r *Reader) ReadByteString(cs textenc.CharSet) (string, error) {
	raw, err := r.ReadRawString()
	if err != nil {
		return "", err
	}
	return cs.DecodeString(raw), nil
}

// ReadRawString reads a byte string with a uint16 length prefix.
func (r *Reader) ReadRawString() ([]byte, error) {
	n, err := r.ReadUInt16()
	if err != nil {
		return nil, err
	}
	return r.ReadBytes(int(n))
}

// ReadUniOrByteString reads a string in the encoding cs.  For the Unicode
// encoding, the string is stored as a uint32 count followed by UTF-16
// code units.  All other encodings use a byte string with a uint16 length.
func (r *Reader) ReadUniOrByteString(cs textenc.CharSet) (string, error) {
	if cs != textenc.Unicode {
		return r.ReadByteString(cs)
	}
	n, err := r.ReadUInt32()
	if err != nil {
		return "", err
	}
	if int64(n) > r.Remaining()/2 {
		return "", io.ErrUnexpectedEOF
	}
	return r.readUTF16(int(n))
}

// ReadUnicodeString reads a string stored as a uint16 count followed by
// UTF-16 code units.
func (r *Reader) ReadUnicodeString() (string, error) {
	n, err := r.ReadUInt16()
	if err != nil {
		return "", err
	}
	return r.readUTF16(int(n))
}

func (r *Reader) readUTF16(n int) (string, error) {
	raw, err := r.ReadBytes(2 * n)
	if err != nil {
		return "", err
	}
	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	res, err := dec.Bytes(raw)
	if err != nil {
		return "", r.Error("invalid UTF-16 string: %w", err)
	}
	return string(res), nil
}

// UTF16Len returns the length of s in UTF-16 code units.  Text positions
// in metafiles are given in these units.
func UTF16Len(s string) int {
	n := 0
	for _, c := range s {
		n += utf16.RuneLen(c)
	}
	return n
}
