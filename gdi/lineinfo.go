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

// LineStyle selects solid, dashed or invisible lines.
type LineStyle uint16

// These are the possible line styles.
const (
	LineNone  LineStyle = 0
	LineSolid LineStyle = 1
	LineDash  LineStyle = 2
)

// LineJoin describes how line segments are joined.
type LineJoin uint16

// These are the possible line joins.
const (
	JoinNone  LineJoin = 0
	JoinBevel LineJoin = 1
	JoinMiter LineJoin = 2
	JoinRound LineJoin = 3
)

// LineCap describes the shape of line ends.
type LineCap uint16

// These are the possible line caps.
const (
	CapButt   LineCap = 0
	CapRound  LineCap = 1
	CapSquare LineCap = 2
)

// LineInfo describes the stroke of a line.
type LineInfo struct {
	Style LineStyle
	Width int32

	DashCount uint16
	DashLen   int32
	DotCount  uint16
	DotLen    int32
	Distance  int32

	Join LineJoin
	Cap  LineCap
}

// DefaultLineInfo is used for records which carry no line information.
var DefaultLineInfo = LineInfo{
	Style: LineSolid,
	Join:  JoinRound,
	Cap:   CapButt,
}

// ReadLineInfo reads a line description.
func (r *Reader) ReadLineInfo() (LineInfo, error) {
	compat, err := r.ReadCompat()
	if err != nil {
		return LineInfo{}, err
	}

	info := DefaultLineInfo

	style, err := r.ReadUInt16()
	if err != nil {
		return LineInfo{}, err
	}
	info.Style = LineStyle(style)
	info.Width, err = r.ReadInt32()
	if err != nil {
		return LineInfo{}, err
	}

	if compat.Version >= 2 {
		if info.DashCount, err = r.ReadUInt16(); err != nil {
			return LineInfo{}, err
		}
		if info.DashLen, err = r.ReadInt32(); err != nil {
			return LineInfo{}, err
		}
		if info.DotCount, err = r.ReadUInt16(); err != nil {
			return LineInfo{}, err
		}
		if info.DotLen, err = r.ReadInt32(); err != nil {
			return LineInfo{}, err
		}
		if info.Distance, err = r.ReadInt32(); err != nil {
			return LineInfo{}, err
		}
	}

	if compat.Version >= 3 {
		join, err := r.ReadUInt16()
		if err != nil {
			return LineInfo{}, err
		}
		info.Join = LineJoin(join)
	}

	if compat.Version >= 4 {
		lineCap, err := r.ReadUInt16()
		if err != nil {
			return LineInfo{}, err
		}
		info.Cap = LineCap(lineCap)
	}

	err = compat.Close()
	if err != nil {
		return LineInfo{}, err
	}
	return info, nil
}
