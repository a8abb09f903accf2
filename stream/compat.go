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

// Compat is the version envelope which precedes most records.
//
// On the wire, the envelope consists of a uint16 version number followed by
// a uint32 giving the number of payload bytes after the envelope.  Newer
// writers only ever append fields to a record, so a reader reads the fields
// it knows about and then skips to the end of the record using Close.
type Compat struct {
	Version uint16
	Size    uint32

	s     *Stream
	start int64
}

// ReadCompat reads a version envelope from the current position.
func (s *Stream) ReadCompat() (*Compat, error) {
	version, err := s.ReadUInt16()
	if err != nil {
		return nil, err
	}
	size, err := s.ReadUInt32()
	if err != nil {
		return nil, err
	}
	c := &Compat{
		Version: version,
		Size:    size,
		s:       s,
		start:   s.Pos(),
	}
	return c, nil
}

// End returns the stream position just after the record.
func (c *Compat) End() int64 {
	return c.start + int64(c.Size)
}

// Close moves the stream position to the end of the record, if the record
// has not been read completely.  The position never moves backwards.
// If the declared end lies beyond the end of the input, the stream is
// positioned at the end of the input and its end-of-data flag is set.
func (c *Compat) Close() error {
	if c.s.err != nil {
		return c.s.err
	}
	end := c.End()
	if c.s.Pos() >= end {
		return nil
	}
	return c.s.Seek(end)
}
