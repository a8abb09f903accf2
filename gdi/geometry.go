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
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Point is a position in logical coordinates.
type Point struct {
	X, Y int32
}

// Vec returns the point as a floating point vector.
func (p Point) Vec() vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size is an extent in logical coordinates.
type Size struct {
	Width, Height int32
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// RectEmpty is the value stored in Right or Bottom to mark a rectangle
// with empty width or height.
const RectEmpty = -32767

// Rect is a rectangle in logical coordinates.  Right and Bottom are
// inclusive.
type Rect struct {
	Left, Top, Right, Bottom int32
}

// IsEmpty reports whether the width or the height of the rectangle is
// marked as empty.
func (r Rect) IsEmpty() bool {
	return r.Right == RectEmpty || r.Bottom == RectEmpty
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d,%d,%d]", r.Left, r.Top, r.Right, r.Bottom)
}

// Fraction is a rational number.  A zero denominator marks an invalid
// value.
type Fraction struct {
	Num, Den int32
}

// Float returns the value of the fraction.  Invalid fractions give 0.
func (f Fraction) Float() float64 {
	if f.Den == 0 {
		return 0
	}
	return float64(f.Num) / float64(f.Den)
}

// IsValid reports whether the denominator is non-zero.
func (f Fraction) IsValid() bool {
	return f.Den != 0
}

// ReadPoint reads a point, stored as two int32 values.
func (r *Reader) ReadPoint() (Point, error) {
	x, err := r.ReadInt32()
	if err != nil {
		return Point{}, err
	}
	y, err := r.ReadInt32()
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

// ReadSize reads a size, stored as two int32 values.
func (r *Reader) ReadSize() (Size, error) {
	w, err := r.ReadInt32()
	if err != nil {
		return Size{}, err
	}
	h, err := r.ReadInt32()
	if err != nil {
		return Size{}, err
	}
	return Size{Width: w, Height: h}, nil
}

// ReadRect reads a rectangle, stored as four int32 values in the order
// left, top, right, bottom.
func (r *Reader) ReadRect() (Rect, error) {
	var v [4]int32
	for i := range v {
		x, err := r.ReadInt32()
		if err != nil {
			return Rect{}, err
		}
		v[i] = x
	}
	return Rect{Left: v[0], Top: v[1], Right: v[2], Bottom: v[3]}, nil
}

// ReadFraction reads a fraction, stored as numerator and denominator.
func (r *Reader) ReadFraction() (Fraction, error) {
	num, err := r.ReadInt32()
	if err != nil {
		return Fraction{}, err
	}
	den, err := r.ReadInt32()
	if err != nil {
		return Fraction{}, err
	}
	return Fraction{Num: num, Den: den}, nil
}
