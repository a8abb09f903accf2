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
	"strconv"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// MapUnit is the unit of logical coordinates.
type MapUnit uint16

// These are the possible map units.
const (
	Map100thMM MapUnit = iota
	Map10thMM
	MapMM
	MapCM
	Map1000thInch
	Map100thInch
	Map10thInch
	MapInch
	MapPoint
	MapTwip
	MapPixel
	MapSysFont
	MapAppFont
	MapRelative
)

var unitNames = []string{
	"100thMM", "10thMM", "MM", "CM", "1000thInch", "100thInch", "10thInch",
	"Inch", "Point", "Twip", "Pixel", "SysFont", "AppFont", "Relative",
}

func (u MapUnit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}
	return "MapUnit(" + strconv.Itoa(int(u)) + ")"
}

// PixelsPerInch is the resolution assumed for MapPixel.
const PixelsPerInch = 96

// PointsPerUnit returns the length of one unit in PDF points (1/72 inch).
// Font and relative units are device dependent; for these 1 is returned.
func (u MapUnit) PointsPerUnit() float64 {
	switch u {
	case Map100thMM:
		return 72 / 2540.0
	case Map10thMM:
		return 72 / 254.0
	case MapMM:
		return 72 / 25.4
	case MapCM:
		return 72 / 2.54
	case Map1000thInch:
		return 72 / 1000.0
	case Map100thInch:
		return 72 / 100.0
	case Map10thInch:
		return 72 / 10.0
	case MapInch:
		return 72
	case MapPoint:
		return 1
	case MapTwip:
		return 1 / 20.0
	case MapPixel:
		return 72.0 / PixelsPerInch
	default:
		return 1
	}
}

// MapMode describes the logical coordinate system.
type MapMode struct {
	Unit   MapUnit
	Origin Point
	ScaleX Fraction
	ScaleY Fraction
	Simple bool
}

// DefaultMapMode is the identity mapping in pixel units.
var DefaultMapMode = MapMode{
	Unit:   MapPixel,
	ScaleX: Fraction{1, 1},
	ScaleY: Fraction{1, 1},
	Simple: true,
}

// Matrix returns the transformation from logical coordinates to PDF
// points.  The origin is added before scaling.  The y axis is not
// flipped.  Invalid scale factors are treated as 1.
func (m MapMode) Matrix() matrix.Matrix {
	f := m.Unit.PointsPerUnit()
	sx, sy := 1.0, 1.0
	if m.ScaleX.IsValid() {
		sx = m.ScaleX.Float()
	}
	if m.ScaleY.IsValid() {
		sy = m.ScaleY.Float()
	}
	ox, oy := float64(m.Origin.X), float64(m.Origin.Y)
	return matrix.Translate(ox, oy).Mul(matrix.Scale(sx*f, sy*f))
}

// Apply maps a point in logical coordinates to PDF points.
func (m MapMode) Apply(p Point) vec.Vec2 {
	M := m.Matrix()
	v := p.Vec()
	return vec.Vec2{
		X: M[0]*v.X + M[2]*v.Y + M[4],
		Y: M[1]*v.X + M[3]*v.Y + M[5],
	}
}

// Box returns the rectangle spanned by the origin and the given size,
// converted to PDF points.
func (m MapMode) Box(sz Size) rect.Rect {
	a := m.Apply(Point{})
	b := m.Apply(Point{X: sz.Width, Y: sz.Height})
	return rect.Rect{
		LLx: min(a.X, b.X),
		LLy: min(a.Y, b.Y),
		URx: max(a.X, b.X),
		URy: max(a.Y, b.Y),
	}
}

// ReadMapMode reads a map mode.
func (r *Reader) ReadMapMode() (MapMode, error) {
	compat, err := r.ReadCompat()
	if err != nil {
		return MapMode{}, err
	}

	var mm MapMode
	unit, err := r.ReadUInt16()
	if err != nil {
		return MapMode{}, err
	}
	mm.Unit = MapUnit(unit)
	if mm.Origin, err = r.ReadPoint(); err != nil {
		return MapMode{}, err
	}
	if mm.ScaleX, err = r.ReadFraction(); err != nil {
		return MapMode{}, err
	}
	if mm.ScaleY, err = r.ReadFraction(); err != nil {
		return MapMode{}, err
	}
	if mm.Simple, err = r.ReadBool(); err != nil {
		return MapMode{}, err
	}

	err = compat.Close()
	if err != nil {
		return MapMode{}, err
	}
	return mm, nil
}
