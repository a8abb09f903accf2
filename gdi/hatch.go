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

// HatchStyle selects single, double or triple hatching.
type HatchStyle uint16

// These are the possible hatch styles.
const (
	HatchSingle HatchStyle = 0
	HatchDouble HatchStyle = 1
	HatchTriple HatchStyle = 2
)

// Hatch describes a pattern of parallel lines.
type Hatch struct {
	Style    HatchStyle
	Color    Color
	Distance int32
	Angle    uint16 // in units of 0.1 degrees
}

// ReadHatch reads a hatch description.
func (r *Reader) ReadHatch() (Hatch, error) {
	compat, err := r.ReadCompat()
	if err != nil {
		return Hatch{}, err
	}

	var h Hatch
	style, err := r.ReadUInt16()
	if err != nil {
		return Hatch{}, err
	}
	h.Style = HatchStyle(style)
	if h.Color, err = r.ReadNamedColor(); err != nil {
		return Hatch{}, err
	}
	if h.Distance, err = r.ReadInt32(); err != nil {
		return Hatch{}, err
	}
	if h.Angle, err = r.ReadUInt16(); err != nil {
		return Hatch{}, err
	}

	err = compat.Close()
	if err != nil {
		return Hatch{}, err
	}
	return h, nil
}
