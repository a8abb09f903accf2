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
	"encoding/binary"
	"fmt"
	"io"
)

const bufferSize = 1024

// Stream allows to read binary data from a seekable input.
type Stream struct {
	r     io.ReadSeeker
	size  int64
	order binary.ByteOrder

	buf       []byte
	from      int64
	pos, used int
	lastRead  int64

	err error
	eof bool
}

// New allocates a new Stream.  The size of the input is determined by
// seeking to the end, and the reading position is set to the start of the
// data.  The byte order is little endian.
func New(r io.ReadSeeker) (*Stream, error) {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}
	// The buffer is empty, so the underlying reader must be at the start.
	_, err = r.Seek(0, io.SeekStart)
	if err != nil {
		return nil, err
	}
	s := &Stream{
		r:     r,
		size:  size,
		order: binary.LittleEndian,
	}
	return s, nil
}

// Size returns the total size of the underlying input.
func (s *Stream) Size() int64 {
	return s.size
}

// Pos returns the current reading position.
func (s *Stream) Pos() int64 {
	return s.from + int64(s.pos)
}

// Remaining returns the number of bytes between the current position and
// the end of the input.
func (s *Stream) Remaining() int64 {
	n := s.size - s.Pos()
	if n < 0 {
		return 0
	}
	return n
}

// Seek changes the reading position.  This clears the end-of-data flag.
// Seeking beyond the end of the input moves the position to the end and
// sets the end-of-data flag.
func (s *Stream) Seek(filePos int64) error {
	s.eof = false
	if filePos > s.size {
		filePos = s.size
		s.eof = true
	}
	if filePos < 0 {
		filePos = 0
	}

	if filePos >= s.from && filePos <= s.from+int64(s.used) {
		s.pos = int(filePos - s.from)
		return nil
	}

	_, err := s.r.Seek(filePos, io.SeekStart)
	if err != nil {
		return err
	}
	s.from = filePos
	s.pos = 0
	s.used = 0
	return nil
}

// Order returns the byte order used for multi-byte values.
func (s *Stream) Order() binary.ByteOrder {
	return s.order
}

// SetOrder changes the byte order used for multi-byte values.
func (s *Stream) SetOrder(order binary.ByteOrder) {
	s.order = order
}

// Err returns the error state of the stream.
func (s *Stream) Err() error {
	return s.err
}

// SetErr puts the stream into an error state.  All subsequent reads fail
// with err, until ResetErr is called.
func (s *Stream) SetErr(err error) {
	s.err = err
}

// ResetErr clears the error state and the end-of-data flag.
func (s *Stream) ResetErr() {
	s.err = nil
	s.eof = false
}

// EOF reports whether a read has hit the end of the input.
func (s *Stream) EOF() bool {
	return s.eof
}

// ReadUInt8 reads a single uint8 value from the current position.
func (s *Stream) ReadUInt8() (uint8, error) {
	buf, err := s.readBuf(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadBool reads a single byte and interprets any non-zero value as true.
func (s *Stream) ReadBool() (bool, error) {
	b, err := s.ReadUInt8()
	return b != 0, err
}

// ReadUInt16 reads a single uint16 value from the current position.
func (s *Stream) ReadUInt16() (uint16, error) {
	buf, err := s.readBuf(2)
	if err != nil {
		return 0, err
	}
	return s.order.Uint16(buf), nil
}

// ReadInt16 reads a single int16 value from the current position.
func (s *Stream) ReadInt16() (int16, error) {
	val, err := s.ReadUInt16()
	return int16(val), err
}

// ReadUInt32 reads a single uint32 value from the current position.
func (s *Stream) ReadUInt32() (uint32, error) {
	buf, err := s.readBuf(4)
	if err != nil {
		return 0, err
	}
	return s.order.Uint32(buf), nil
}

// ReadInt32 reads a single int32 value from the current position.
func (s *Stream) ReadInt32() (int32, error) {
	val, err := s.ReadUInt32()
	return int32(val), err
}

// ReadBytes reads n bytes into a newly allocated slice.  If fewer than n
// bytes remain, nothing is allocated and io.ErrUnexpectedEOF is returned.
func (s *Stream) ReadBytes(n int) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	if n < 0 {
		return nil, s.Error("invalid length %d", n)
	}
	if int64(n) > s.Remaining() {
		s.lastRead = s.Pos()
		s.eof = true
		return nil, io.ErrUnexpectedEOF
	}

	res := make([]byte, n)
	buf := res
	for len(buf) > 0 {
		k := min(len(buf), bufferSize)
		tmp, err := s.readBuf(k)
		if err != nil {
			return nil, err
		}
		copy(buf, tmp)
		buf = buf[k:]
	}
	return res, nil
}

// Skip advances the reading position by n bytes.
func (s *Stream) Skip(n int64) error {
	if s.err != nil {
		return s.err
	}
	if n > s.Remaining() {
		s.Seek(s.size)
		s.eof = true
		return io.ErrUnexpectedEOF
	}
	return s.Seek(s.Pos() + n)
}

// readBuf reads n bytes, starting at the current position.  The returned
// slice points into the internal buffer and is only valid until the next
// call to one of the stream methods.
//
// The read size n must be <= 1024.
func (s *Stream) readBuf(n int) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastRead = s.from + int64(s.pos)
	if n > bufferSize {
		panic("buffer size exceeded")
	}

	for s.pos+n > s.used {
		if len(s.buf) == 0 {
			s.buf = make([]byte, bufferSize)
		}
		k := copy(s.buf, s.buf[s.pos:s.used])
		s.from += int64(s.pos)
		s.pos = 0
		s.used = k

		l, err := s.r.Read(s.buf[s.used:])
		s.used += l
		if err == io.EOF {
			if l > 0 {
				continue
			}
			s.eof = true
			return nil, io.ErrUnexpectedEOF
		} else if err != nil {
			return nil, s.Error("read failed: %w", err)
		}
	}

	res := s.buf[s.pos : s.pos+n]
	s.pos += n
	return res, nil
}

// Error returns an error which includes the position of the most recent
// read.
func (s *Stream) Error(format string, a ...interface{}) error {
	a = append([]interface{}{s.lastRead}, a...)
	return fmt.Errorf("svm@%d: "+format, a...)
}
