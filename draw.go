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

package svm

import "seehuhn.de/go/svm/gdi"

// Pixel sets a single pixel to the given colour.
type Pixel struct {
	Pos   gdi.Point
	Color gdi.Color
}

// Type implements the [Action] interface.
func (*Pixel) Type() ActionType { return TypePixel }

func (d *decoder) pixel() (Action, error) {
	pos, err := d.gr.ReadPoint()
	if err != nil {
		return nil, err
	}
	col, err := d.gr.ReadColor()
	if err != nil {
		return nil, err
	}
	return &Pixel{Pos: pos, Color: col}, nil
}

// Point draws a point using the current line colour.
type Point struct {
	Pos gdi.Point
}

// Type implements the [Action] interface.
func (*Point) Type() ActionType { return TypePoint }

func (d *decoder) point() (Action, error) {
	pos, err := d.gr.ReadPoint()
	if err != nil {
		return nil, err
	}
	return &Point{Pos: pos}, nil
}

// Line draws a straight line.
type Line struct {
	Start, End gdi.Point
	LineInfo   gdi.LineInfo
}

// Type implements the [Action] interface.
func (*Line) Type() ActionType { return TypeLine }

func (d *decoder) line(version uint16) (Action, error) {
	a := &Line{LineInfo: gdi.DefaultLineInfo}
	var err error
	if a.Start, err = d.gr.ReadPoint(); err != nil {
		return nil, err
	}
	if a.End, err = d.gr.ReadPoint(); err != nil {
		return nil, err
	}
	if version >= 2 {
		if a.LineInfo, err = d.gr.ReadLineInfo(); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Rect draws a rectangle.
type Rect struct {
	Rect gdi.Rect
}

// Type implements the [Action] interface.
func (*Rect) Type() ActionType { return TypeRect }

func (d *decoder) rect() (Action, error) {
	r, err := d.gr.ReadRect()
	if err != nil {
		return nil, err
	}
	return &Rect{Rect: r}, nil
}

// RoundRect draws a rectangle with rounded corners.
type RoundRect struct {
	Rect      gdi.Rect
	HorzRound uint32
	VertRound uint32
}

// Type implements the [Action] interface.
func (*RoundRect) Type() ActionType { return TypeRoundRect }

func (d *decoder) roundRect() (Action, error) {
	a := &RoundRect{}
	var err error
	if a.Rect, err = d.gr.ReadRect(); err != nil {
		return nil, err
	}
	if a.HorzRound, err = d.s.ReadUInt32(); err != nil {
		return nil, err
	}
	if a.VertRound, err = d.s.ReadUInt32(); err != nil {
		return nil, err
	}
	return a, nil
}

// Ellipse draws the ellipse inscribed in a rectangle.
type Ellipse struct {
	Rect gdi.Rect
}

// Type implements the [Action] interface.
func (*Ellipse) Type() ActionType { return TypeEllipse }

func (d *decoder) ellipse() (Action, error) {
	r, err := d.gr.ReadRect()
	if err != nil {
		return nil, err
	}
	return &Ellipse{Rect: r}, nil
}

// Arc draws an elliptical arc.  The ellipse is inscribed in Rect, and the
// arc runs counter-clockwise from the ray through Start to the ray through
// End.
type Arc struct {
	Rect       gdi.Rect
	Start, End gdi.Point
}

// Type implements the [Action] interface.
func (*Arc) Type() ActionType { return TypeArc }

// Pie draws an elliptical sector.  The fields are as for [Arc].
type Pie Arc

// Type implements the [Action] interface.
func (*Pie) Type() ActionType { return TypePie }

// Chord draws an elliptical segment.  The fields are as for [Arc].
type Chord Arc

// Type implements the [Action] interface.
func (*Chord) Type() ActionType { return TypeChord }

// arc decodes Arc, Pie and Chord actions.
func (d *decoder) arc() (Action, error) {
	var a Arc
	var err error
	if a.Rect, err = d.gr.ReadRect(); err != nil {
		return nil, err
	}
	if a.Start, err = d.gr.ReadPoint(); err != nil {
		return nil, err
	}
	if a.End, err = d.gr.ReadPoint(); err != nil {
		return nil, err
	}

	switch d.tag {
	case TypePie:
		p := Pie(a)
		return &p, nil
	case TypeChord:
		c := Chord(a)
		return &c, nil
	default:
		return &a, nil
	}
}

// PolyLine draws an open polygonal line, which may contain Bezier
// segments.
type PolyLine struct {
	Poly     gdi.Polygon
	LineInfo gdi.LineInfo
}

// Type implements the [Action] interface.
func (*PolyLine) Type() ActionType { return TypePolyLine }

func (d *decoder) polyLine(version uint16) (Action, error) {
	a := &PolyLine{LineInfo: gdi.DefaultLineInfo}
	var err error
	if a.Poly, err = d.gr.ReadPolygon(); err != nil {
		return nil, err
	}
	if version >= 2 {
		if a.LineInfo, err = d.gr.ReadLineInfo(); err != nil {
			return nil, err
		}
	}
	if version >= 3 {
		a.Poly, err = d.flaggedPolygon(a.Poly)
		if err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Polygon draws a closed polygon.
type Polygon struct {
	Poly gdi.Polygon
}

// Type implements the [Action] interface.
func (*Polygon) Type() ActionType { return TypePolygon }

func (d *decoder) polygon(version uint16) (Action, error) {
	poly, err := d.gr.ReadPolygon()
	if err != nil {
		return nil, err
	}
	if version >= 2 {
		poly, err = d.flaggedPolygon(poly)
		if err != nil {
			return nil, err
		}
	}
	return &Polygon{Poly: poly}, nil
}

// flaggedPolygon reads the optional replacement of a polygon by a version
// which includes point flags.
func (d *decoder) flaggedPolygon(poly gdi.Polygon) (gdi.Polygon, error) {
	hasFlags, err := d.s.ReadBool()
	if err != nil {
		return gdi.Polygon{}, err
	}
	if !hasFlags {
		return poly, nil
	}
	return d.gr.ReadPolygonWithFlags()
}

// PolyPolygon draws a set of closed polygons.
type PolyPolygon struct {
	Polys gdi.PolyPolygon
}

// Type implements the [Action] interface.
func (*PolyPolygon) Type() ActionType { return TypePolyPolygon }

func (d *decoder) polyPolygon(version uint16) (Action, error) {
	polys, err := d.gr.ReadPolyPolygon()
	if err != nil {
		return nil, err
	}
	if version < 2 {
		return &PolyPolygon{Polys: polys}, nil
	}

	// Version 2 replaces some of the polygons by versions with point flags.
	n, err := d.s.ReadUInt16()
	if err != nil {
		return nil, err
	}
	count, err := d.gr.ClampCount("complex polygons", int(n), 2)
	if err != nil {
		return nil, err
	}
	for range count {
		idx, err := d.s.ReadUInt16()
		if err != nil {
			return nil, err
		}
		poly, err := d.gr.ReadPolygonWithFlags()
		if err != nil {
			return nil, err
		}
		if int(idx) >= len(polys) {
			err = d.inconsistency("polygon index out of range",
				"index", idx, "polygons", len(polys))
			if err != nil {
				return nil, err
			}
			continue
		}
		polys[idx] = poly
	}
	return &PolyPolygon{Polys: polys}, nil
}

// Transparent draws a set of polygons with uniform transparency.
type Transparent struct {
	Polys gdi.PolyPolygon

	// Percent is the transparency, from 0 (opaque) to 100 (invisible).
	Percent uint16
}

// Type implements the [Action] interface.
func (*Transparent) Type() ActionType { return TypeTransparent }

func (d *decoder) transparent() (Action, error) {
	a := &Transparent{}
	var err error
	if a.Polys, err = d.gr.ReadPolyPolygon(); err != nil {
		return nil, err
	}
	if a.Percent, err = d.s.ReadUInt16(); err != nil {
		return nil, err
	}
	return a, nil
}

// Gradient fills a rectangle with a colour gradient.
type Gradient struct {
	Rect     gdi.Rect
	Gradient gdi.Gradient
}

// Type implements the [Action] interface.
func (*Gradient) Type() ActionType { return TypeGradient }

func (d *decoder) gradient() (Action, error) {
	a := &Gradient{}
	var err error
	if a.Rect, err = d.gr.ReadRect(); err != nil {
		return nil, err
	}
	if a.Gradient, err = d.gr.ReadGradient(); err != nil {
		return nil, err
	}
	return a, nil
}

// GradientEx fills a set of polygons with a colour gradient.
type GradientEx struct {
	Polys    gdi.PolyPolygon
	Gradient gdi.Gradient
}

// Type implements the [Action] interface.
func (*GradientEx) Type() ActionType { return TypeGradientEx }

func (d *decoder) gradientEx() (Action, error) {
	a := &GradientEx{}
	var err error
	if a.Polys, err = d.gr.ReadPolyPolygon(); err != nil {
		return nil, err
	}
	if a.Gradient, err = d.gr.ReadGradient(); err != nil {
		return nil, err
	}
	return a, nil
}

// Hatch fills a set of polygons with a hatch pattern.
type Hatch struct {
	Polys gdi.PolyPolygon
	Hatch gdi.Hatch
}

// Type implements the [Action] interface.
func (*Hatch) Type() ActionType { return TypeHatch }

func (d *decoder) hatch() (Action, error) {
	a := &Hatch{}
	var err error
	if a.Polys, err = d.gr.ReadPolyPolygon(); err != nil {
		return nil, err
	}
	if a.Hatch, err = d.gr.ReadHatch(); err != nil {
		return nil, err
	}
	return a, nil
}
