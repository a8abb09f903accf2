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

import "errors"

// RegionType distinguishes the different kinds of regions.
type RegionType uint16

// These are the possible region types.
const (
	RegionNull      RegionType = 0 // the unbounded region
	RegionEmpty     RegionType = 1
	RegionRectangle RegionType = 2
	RegionComplex   RegionType = 3
)

func (t RegionType) String() string {
	switch t {
	case RegionNull:
		return "null"
	case RegionEmpty:
		return "empty"
	case RegionRectangle:
		return "rectangle"
	case RegionComplex:
		return "complex"
	default:
		return "invalid"
	}
}

// Band is a horizontal strip of a region, covering the rows Top to Bottom
// inclusive.  Separations lists the covered x-ranges as pairs of left and
// right coordinates.
type Band struct {
	Top, Bottom int32
	Separations []int32
}

// Region is an area of the plane, used for clipping.  The area is given
// either by a list of bands, or by a polypolygon, or both.
type Region struct {
	Type  RegionType
	Bands []Band
	Poly  PolyPolygon
}

// IsNull reports whether the region is unbounded.
func (r *Region) IsNull() bool {
	return r.Type == RegionNull
}

const regionStreamVersion = 1

const (
	bandHeader     = 0
	bandSeparation = 1
	bandEnd        = 2
)

// ReadRegion reads a region.  Malformed band data makes the region null;
// this is reported as an inconsistency.
func (r *Reader) ReadRegion() (*Region, error) {
	compat, err := r.ReadCompat()
	if err != nil {
		return nil, err
	}

	version, err := r.ReadUInt16()
	if err != nil {
		return nil, err
	}
	tp, err := r.ReadUInt16()
	if err != nil {
		return nil, err
	}

	res := &Region{Type: RegionType(tp)}
	valid := false
	switch {
	case version != regionStreamVersion:
		err = r.Inconsistency("unsupported region version", "version", version)
		res = &Region{}
	case res.Type == RegionNull || res.Type == RegionEmpty:
		valid = true
	case res.Type == RegionRectangle || res.Type == RegionComplex:
		res.Bands, err = r.readBands()
		if errors.Is(err, errBadBands) {
			err = r.Inconsistency("malformed region bands")
			res = &Region{}
		} else {
			valid = true
		}
	default:
		err = r.Inconsistency("invalid region type", "type", tp)
		res = &Region{}
	}
	if err != nil {
		return nil, err
	}

	if valid && compat.Version >= 2 && r.Pos() < compat.End() {
		hasPoly, err := r.ReadBool()
		if err != nil {
			return nil, err
		}
		if hasPoly {
			res.Poly, err = r.ReadPolyPolygon()
			if err != nil {
				return nil, err
			}
		}
	}

	err = compat.Close()
	if err != nil {
		return nil, err
	}
	return res, nil
}

var errBadBands = errors.New("malformed region bands")

func (r *Reader) readBands() ([]Band, error) {
	var bands []Band
	for {
		entry, err := r.ReadUInt16()
		if err != nil {
			return nil, err
		}
		switch entry {
		case bandHeader:
			if r.Remaining() < 8 {
				return nil, errBadBands
			}
			top, _ := r.ReadInt32()
			bottom, _ := r.ReadInt32()
			if bottom < top {
				return nil, errBadBands
			}
			bands = append(bands, Band{Top: top, Bottom: bottom})
		case bandSeparation:
			if len(bands) == 0 || r.Remaining() < 8 {
				return nil, errBadBands
			}
			left, _ := r.ReadInt32()
			right, _ := r.ReadInt32()
			b := &bands[len(bands)-1]
			b.Separations = append(b.Separations, left, right)
		case bandEnd:
			return bands, nil
		default:
			return nil, errBadBands
		}
	}
}
