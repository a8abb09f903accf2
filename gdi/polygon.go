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

// PolyFlag describes the role of a polygon point.
type PolyFlag uint8

// These are the possible values of a PolyFlag.
const (
	FlagNormal    PolyFlag = 0 // point on the curve
	FlagSmooth    PolyFlag = 1 // smooth join between two curve segments
	FlagControl   PolyFlag = 2 // Bezier control point
	FlagSymmetric PolyFlag = 3 // smooth and symmetric join
)

// Polygon is a sequence of points.  If Flags is not nil, it has the same
// length as Points.
type Polygon struct {
	Points []Point
	Flags  []PolyFlag
}

// HasFlags reports whether the polygon carries per-point flags.
func (p Polygon) HasFlags() bool {
	return p.Flags != nil
}

// PolyPolygon is a list of polygons.
type PolyPolygon []Polygon

// ReadPolygon reads a polygon without flags: a uint16 point count followed
// by the points.
func (r *Reader) ReadPolygon() (Polygon, error) {
	n, err := r.ReadUInt16()
	if err != nil {
		return Polygon{}, err
	}
	count, err := r.ClampCount("polygon points", int(n), 8)
	if err != nil {
		return Polygon{}, err
	}

	points := make([]Point, count)
	for i := range points {
		points[i], err = r.ReadPoint()
		if err != nil {
			return Polygon{}, err
		}
	}
	return Polygon{Points: points}, nil
}

// ReadPolygonWithFlags reads a polygon inside a version envelope,
// followed by an optional array of point flags.
func (r *Reader) ReadPolygonWithFlags() (Polygon, error) {
	compat, err := r.ReadCompat()
	if err != nil {
		return Polygon{}, err
	}

	poly, err := r.ReadPolygon()
	if err != nil {
		return Polygon{}, err
	}
	hasFlags, err := r.ReadBool()
	if err != nil {
		return Polygon{}, err
	}
	if hasFlags {
		n := len(poly.Points)
		avail := int(min(int64(n), r.Remaining()))
		raw, err := r.ReadBytes(avail)
		if err != nil {
			return Polygon{}, err
		}
		if avail < n {
			err = r.Inconsistency("polygon flags truncated",
				"expected", n, "read", avail)
			if err != nil {
				return Polygon{}, err
			}
		}
		flags := make([]PolyFlag, n)
		for i, b := range raw {
			flags[i] = PolyFlag(b)
		}
		poly.Flags = flags
	}

	err = compat.Close()
	if err != nil {
		return Polygon{}, err
	}
	return poly, nil
}

// ReadPolyPolygon reads a uint16 polygon count followed by the polygons.
func (r *Reader) ReadPolyPolygon() (PolyPolygon, error) {
	n, err := r.ReadUInt16()
	if err != nil {
		return nil, err
	}
	count, err := r.ClampCount("polypolygon members", int(n), 2)
	if err != nil {
		return nil, err
	}

	res := make(PolyPolygon, 0, count)
	for range count {
		poly, err := r.ReadPolygon()
		if err != nil {
			return nil, err
		}
		res = append(res, poly)
	}
	return res, nil
}
