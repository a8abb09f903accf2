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

import (
	"seehuhn.de/go/svm/dib"
	"seehuhn.de/go/svm/gdi"
)

// Bmp draws a bitmap at its natural size.
type Bmp struct {
	Bitmap *dib.Bitmap
	Pos    gdi.Point
}

// Type implements the [Action] interface.
func (*Bmp) Type() ActionType { return TypeBmp }

func (d *decoder) bmp() (Action, error) {
	bm, err := dib.Read(d.gr)
	if err != nil {
		return nil, err
	}
	pos, err := d.gr.ReadPoint()
	if err != nil {
		return nil, err
	}
	return &Bmp{Bitmap: bm, Pos: pos}, nil
}

// BmpScale draws a bitmap scaled to the given size.
type BmpScale struct {
	Bitmap *dib.Bitmap
	Pos    gdi.Point
	Size   gdi.Size
}

// Type implements the [Action] interface.
func (*BmpScale) Type() ActionType { return TypeBmpScale }

func (d *decoder) bmpScale() (Action, error) {
	bm, err := dib.Read(d.gr)
	if err != nil {
		return nil, err
	}
	pos, size, err := d.placement()
	if err != nil {
		return nil, err
	}
	return &BmpScale{Bitmap: bm, Pos: pos, Size: size}, nil
}

// BmpScalePart draws the part of a bitmap given by SrcPos and SrcSize,
// scaled to fill the destination rectangle.
type BmpScalePart struct {
	Bitmap   *dib.Bitmap
	DestPos  gdi.Point
	DestSize gdi.Size
	SrcPos   gdi.Point
	SrcSize  gdi.Size
}

// Type implements the [Action] interface.
func (*BmpScalePart) Type() ActionType { return TypeBmpScalePart }

func (d *decoder) bmpScalePart() (Action, error) {
	bm, err := dib.Read(d.gr)
	if err != nil {
		return nil, err
	}
	a := &BmpScalePart{Bitmap: bm}
	a.DestPos, a.DestSize, a.SrcPos, a.SrcSize, err = d.partPlacement()
	if err != nil {
		return nil, err
	}
	return a, nil
}

// BmpEx draws a bitmap with transparency at its natural size.
type BmpEx struct {
	Bitmap *dib.BitmapEx
	Pos    gdi.Point
}

// Type implements the [Action] interface.
func (*BmpEx) Type() ActionType { return TypeBmpEx }

func (d *decoder) bmpEx() (Action, error) {
	bm, err := dib.ReadEx(d.gr)
	if err != nil {
		return nil, err
	}
	pos, err := d.gr.ReadPoint()
	if err != nil {
		return nil, err
	}
	return &BmpEx{Bitmap: bm, Pos: pos}, nil
}

// BmpExScale draws a bitmap with transparency, scaled to the given size.
type BmpExScale struct {
	Bitmap *dib.BitmapEx
	Pos    gdi.Point
	Size   gdi.Size
}

// Type implements the [Action] interface.
func (*BmpExScale) Type() ActionType { return TypeBmpExScale }

func (d *decoder) bmpExScale() (Action, error) {
	bm, err := dib.ReadEx(d.gr)
	if err != nil {
		return nil, err
	}
	pos, size, err := d.placement()
	if err != nil {
		return nil, err
	}
	return &BmpExScale{Bitmap: bm, Pos: pos, Size: size}, nil
}

// BmpExScalePart draws a part of a bitmap with transparency.  The fields
// are as for [BmpScalePart].
type BmpExScalePart struct {
	Bitmap   *dib.BitmapEx
	DestPos  gdi.Point
	DestSize gdi.Size
	SrcPos   gdi.Point
	SrcSize  gdi.Size
}

// Type implements the [Action] interface.
func (*BmpExScalePart) Type() ActionType { return TypeBmpExScalePart }

func (d *decoder) bmpExScalePart() (Action, error) {
	bm, err := dib.ReadEx(d.gr)
	if err != nil {
		return nil, err
	}
	a := &BmpExScalePart{Bitmap: bm}
	a.DestPos, a.DestSize, a.SrcPos, a.SrcSize, err = d.partPlacement()
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Mask fills the set pixels of a monochrome bitmap with the current fill
// colour.
type Mask struct {
	Bitmap *dib.Bitmap
	Pos    gdi.Point
}

// Type implements the [Action] interface.
func (*Mask) Type() ActionType { return TypeMask }

func (d *decoder) mask() (Action, error) {
	bm, err := dib.Read(d.gr)
	if err != nil {
		return nil, err
	}
	pos, err := d.gr.ReadPoint()
	if err != nil {
		return nil, err
	}
	return &Mask{Bitmap: bm, Pos: pos}, nil
}

// MaskScale is like [Mask], but scales the bitmap to the given size.
type MaskScale struct {
	Bitmap *dib.Bitmap
	Pos    gdi.Point
	Size   gdi.Size
}

// Type implements the [Action] interface.
func (*MaskScale) Type() ActionType { return TypeMaskScale }

func (d *decoder) maskScale() (Action, error) {
	bm, err := dib.Read(d.gr)
	if err != nil {
		return nil, err
	}
	pos, size, err := d.placement()
	if err != nil {
		return nil, err
	}
	return &MaskScale{Bitmap: bm, Pos: pos, Size: size}, nil
}

// MaskScalePart fills the set pixels of a part of a monochrome bitmap
// with the given colour.
type MaskScalePart struct {
	Bitmap   *dib.Bitmap
	Color    gdi.Color
	DestPos  gdi.Point
	DestSize gdi.Size
	SrcPos   gdi.Point
	SrcSize  gdi.Size
}

// Type implements the [Action] interface.
func (*MaskScalePart) Type() ActionType { return TypeMaskScalePart }

func (d *decoder) maskScalePart() (Action, error) {
	bm, err := dib.Read(d.gr)
	if err != nil {
		return nil, err
	}
	a := &MaskScalePart{Bitmap: bm}
	if a.Color, err = d.gr.ReadColor(); err != nil {
		return nil, err
	}
	a.DestPos, a.DestSize, a.SrcPos, a.SrcSize, err = d.partPlacement()
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (d *decoder) placement() (gdi.Point, gdi.Size, error) {
	pos, err := d.gr.ReadPoint()
	if err != nil {
		return gdi.Point{}, gdi.Size{}, err
	}
	size, err := d.gr.ReadSize()
	if err != nil {
		return gdi.Point{}, gdi.Size{}, err
	}
	return pos, size, nil
}

func (d *decoder) partPlacement() (destPos gdi.Point, destSize gdi.Size, srcPos gdi.Point, srcSize gdi.Size, err error) {
	destPos, destSize, err = d.placement()
	if err != nil {
		return
	}
	srcPos, srcSize, err = d.placement()
	return
}
