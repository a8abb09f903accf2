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

package stream

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

func newStream(t *testing.T, data []byte) *Stream {
	t.Helper()
	s, err := New(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// TestNewReadsFromStart checks that the first read after New returns the
// first bytes of the input, even though New has to seek to the end.
func TestNewReadsFromStart(t *testing.T) {
	r := bytes.NewReader([]byte{1, 2, 3, 4})
	s, err := New(r)
	if err != nil {
		t.Fatal(err)
	}
	if s.Size() != 4 || s.Remaining() != 4 {
		t.Fatalf("size %d, remaining %d, expected 4", s.Size(), s.Remaining())
	}

	x, err := s.ReadUInt16()
	if err != nil {
		t.Fatal(err)
	}
	if x != 0x0201 {
		t.Errorf("wrong value, expected 0x0201 but got 0x%04x", x)
	}
	y, err := s.ReadUInt16()
	if err != nil {
		t.Fatal(err)
	}
	if y != 0x0403 {
		t.Errorf("wrong value, expected 0x0403 but got 0x%04x", y)
	}
	if !errors.Is(s.Skip(1), io.ErrUnexpectedEOF) {
		t.Error("expected end of data")
	}
}

func TestPos(t *testing.T) {
	s := newStream(t, []byte{'0', '1', '2', '3', '4', '5', '6', '7'})

	pos := s.Pos()
	if pos != 0 {
		t.Errorf("wrong position, expected 0 but got %d", pos)
	}

	_, err := s.ReadUInt16()
	if err != nil {
		t.Fatal(err)
	}

	pos = s.Pos()
	if pos != 2 {
		t.Errorf("wrong position, expected 2 but got %d", pos)
	}
	if s.Remaining() != 6 {
		t.Errorf("wrong remaining size, expected 6 but got %d", s.Remaining())
	}

	err = s.Seek(5)
	if err != nil {
		t.Fatal(err)
	}
	if s.Pos() != 5 {
		t.Errorf("wrong position, expected 5 but got %d", s.Pos())
	}
	b, err := s.ReadUInt8()
	if err != nil {
		t.Fatal(err)
	}
	if b != '5' {
		t.Errorf("wrong byte, expected '5' but got %q", b)
	}
}

func TestByteOrder(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x01, 0x02, 0x03, 0x04}
	s := newStream(t, data)

	x, err := s.ReadUInt32()
	if err != nil {
		t.Fatal(err)
	}
	if x != 0x04030201 {
		t.Errorf("little endian: got %08x", x)
	}

	s.SetOrder(binary.BigEndian)
	x, err = s.ReadUInt32()
	if err != nil {
		t.Fatal(err)
	}
	if x != 0x01020304 {
		t.Errorf("big endian: got %08x", x)
	}
}

func TestSignedValues(t *testing.T) {
	s := newStream(t, []byte{0xFE, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF})
	a, err := s.ReadInt32()
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.ReadInt16()
	if err != nil {
		t.Fatal(err)
	}
	if a != -2 || b != -1 {
		t.Errorf("got %d, %d, expected -2, -1", a, b)
	}
}

func TestShortRead(t *testing.T) {
	s := newStream(t, []byte{1, 2, 3})
	_, err := s.ReadUInt32()
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected io.ErrUnexpectedEOF, got %v", err)
	}
	if !s.EOF() {
		t.Error("EOF flag not set")
	}
	if s.Err() != nil {
		t.Errorf("short read must not set the error state, got %v", s.Err())
	}

	err = s.Seek(0)
	if err != nil {
		t.Fatal(err)
	}
	if s.EOF() {
		t.Error("Seek did not clear the EOF flag")
	}
}

func TestReadBytesBound(t *testing.T) {
	s := newStream(t, make([]byte, 3000))

	buf, err := s.ReadBytes(2500)
	if err != nil {
		t.Fatal(err)
	}
	if len(buf) != 2500 {
		t.Errorf("got %d bytes, expected 2500", len(buf))
	}

	_, err = s.ReadBytes(1 << 30)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected io.ErrUnexpectedEOF, got %v", err)
	}
	if s.Pos() != 2500 {
		t.Errorf("failed read moved the position to %d", s.Pos())
	}
}

func TestStickyError(t *testing.T) {
	s := newStream(t, []byte{1, 2, 3, 4})
	errTest := errors.New("test")
	s.SetErr(errTest)

	_, err := s.ReadUInt8()
	if err != errTest {
		t.Errorf("expected sticky error, got %v", err)
	}

	s.ResetErr()
	_, err = s.ReadUInt8()
	if err != nil {
		t.Errorf("unexpected error after reset: %v", err)
	}
}

func TestCompatSkip(t *testing.T) {
	data := []byte{
		3, 0, // version
		6, 0, 0, 0, // size
		0xAA, 0xBB, 0, 0, 0, 0,
		0xCC,
	}
	s := newStream(t, data)

	c, err := s.ReadCompat()
	if err != nil {
		t.Fatal(err)
	}
	if c.Version != 3 || c.Size != 6 {
		t.Errorf("wrong envelope %d/%d", c.Version, c.Size)
	}
	_, err = s.ReadUInt16()
	if err != nil {
		t.Fatal(err)
	}
	err = c.Close()
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.ReadUInt8()
	if err != nil {
		t.Fatal(err)
	}
	if b != 0xCC {
		t.Errorf("wrong position after Close, read %02x", b)
	}
}

func TestCompatNoBackwards(t *testing.T) {
	data := []byte{
		1, 0,
		1, 0, 0, 0,
		0x11, 0x22, 0x33,
	}
	s := newStream(t, data)

	c, err := s.ReadCompat()
	if err != nil {
		t.Fatal(err)
	}
	_, err = s.ReadUInt16() // reads past the declared end
	if err != nil {
		t.Fatal(err)
	}
	err = c.Close()
	if err != nil {
		t.Fatal(err)
	}
	if s.Pos() != 8 {
		t.Errorf("Close moved the position to %d", s.Pos())
	}
}

func TestCompatBeyondEnd(t *testing.T) {
	data := []byte{
		1, 0,
		0xFF, 0xFF, 0, 0,
		0x11,
	}
	s := newStream(t, data)

	c, err := s.ReadCompat()
	if err != nil {
		t.Fatal(err)
	}
	err = c.Close()
	if err != nil {
		t.Fatal(err)
	}
	if !s.EOF() {
		t.Error("EOF flag not set")
	}
	if s.Pos() != int64(len(data)) {
		t.Errorf("wrong position %d", s.Pos())
	}
}
