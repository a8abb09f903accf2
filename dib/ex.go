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

package dib

import "seehuhn.de/go/svm/gdi"

// Markers which introduce the transparency information of a BitmapEx.
const (
	exMagic1 = 0x25091962
	exMagic2 = 0xACB20201
)

// TransparentType describes how transparency is represented in a BitmapEx.
type TransparentType uint8

// These are the possible values of TransparentType.
const (
	TransparentNone   TransparentType = 0
	TransparentColor  TransparentType = 1
	TransparentBitmap TransparentType = 2
)

// BitmapEx is a bitmap with optional transparency information.
type BitmapEx struct {
	Bitmap *Bitmap

	Transparent TransparentType

	// Mask is the transparency mask, for TransparentBitmap.  A mask with
	// 8 bits per pixel gives alpha values; other masks mark transparent
	// pixels with set bits.
	Mask *Bitmap

	// Color is the transparent colour, for TransparentColor.
	Color gdi.Color
}

// ReadEx reads a bitmap with optional transparency information.  If the
// transparency markers are missing, the stream is positioned directly
// after the bitmap.
func ReadEx(r *gdi.Reader) (*BitmapEx, error) {
	bm, err := Read(r)
	if err != nil {
		return nil, err
	}
	res := &BitmapEx{Bitmap: bm}

	afterBitmap := r.Pos()
	if r.Remaining() < 9 {
		return res, nil
	}
	m1, err := r.ReadUInt32()
	if err != nil {
		return nil, err
	}
	m2, err := r.ReadUInt32()
	if err != nil {
		return nil, err
	}
	if m1 != exMagic1 || m2 != exMagic2 {
		err = r.Seek(afterBitmap)
		if err != nil {
			return nil, err
		}
		return res, nil
	}

	tp, err := r.ReadUInt8()
	if err != nil {
		return nil, err
	}
	switch TransparentType(tp) {
	case TransparentBitmap:
		res.Mask, err = Read(r)
		if err != nil {
			return nil, err
		}
		if res.Mask.Width != bm.Width || res.Mask.Height != bm.Height {
			err = r.Inconsistency("bitmap mask size mismatch",
				"bitmap", bm.String(), "mask", res.Mask.String())
			if err != nil {
				return nil, err
			}
			res.Mask = nil
			break
		}
		res.Transparent = TransparentBitmap
	case TransparentColor:
		res.Color, err = r.ReadNamedColor()
		if err != nil {
			return nil, err
		}
		res.Transparent = TransparentColor
	}
	return res, nil
}
