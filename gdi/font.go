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

import "seehuhn.de/go/svm/textenc"

// FontWeight is the stroke weight of a font, from 1 (thin) to 10 (black).
type FontWeight uint16

// Some common font weights.
const (
	WeightDontKnow FontWeight = 0
	WeightThin     FontWeight = 1
	WeightLight    FontWeight = 3
	WeightNormal   FontWeight = 5
	WeightMedium   FontWeight = 6
	WeightBold     FontWeight = 8
	WeightBlack    FontWeight = 10
)

// FontItalic describes the slant of a font.
type FontItalic uint16

// These are the possible values of FontItalic.
const (
	ItalicNone    FontItalic = 0
	ItalicOblique FontItalic = 1
	ItalicNormal  FontItalic = 2
)

// Font describes the font used for subsequent text actions.
type Font struct {
	FamilyName string
	StyleName  string
	Size       Size

	CharSet   textenc.CharSet
	Family    uint16
	Pitch     uint16
	Weight    FontWeight
	Underline uint16
	Strikeout uint16
	Italic    FontItalic
	Language  LanguageType
	WidthType uint16

	// Orientation is the text direction in units of 0.1 degrees.
	Orientation int16

	WordLine bool
	Outline  bool
	Shadow   bool
	Kerning  uint8

	// Version 2
	Relief      uint8
	CJKLanguage LanguageType
	Vertical    bool
	Emphasis    uint16

	// Version 3
	Overline uint16
}

// ReadFont reads a font description.  The font names are decoded using
// the default character set of the reader.
func (r *Reader) ReadFont() (*Font, error) {
	compat, err := r.ReadCompat()
	if err != nil {
		return nil, err
	}

	f := &Font{}
	if f.FamilyName, err = r.ReadUniOrByteString(r.CharSet); err != nil {
		return nil, err
	}
	if f.StyleName, err = r.ReadUniOrByteString(r.CharSet); err != nil {
		return nil, err
	}
	if f.Size, err = r.ReadSize(); err != nil {
		return nil, err
	}

	var v [9]uint16
	for i := range v {
		v[i], err = r.ReadUInt16()
		if err != nil {
			return nil, err
		}
	}
	f.CharSet = textenc.CharSet(v[0])
	f.Family = v[1]
	f.Pitch = v[2]
	f.Weight = FontWeight(v[3])
	f.Underline = v[4]
	f.Strikeout = v[5]
	f.Italic = FontItalic(v[6])
	f.Language = LanguageType(v[7])
	f.WidthType = v[8]

	if f.Orientation, err = r.ReadInt16(); err != nil {
		return nil, err
	}
	if f.WordLine, err = r.ReadBool(); err != nil {
		return nil, err
	}
	if f.Outline, err = r.ReadBool(); err != nil {
		return nil, err
	}
	if f.Shadow, err = r.ReadBool(); err != nil {
		return nil, err
	}
	if f.Kerning, err = r.ReadUInt8(); err != nil {
		return nil, err
	}

	if compat.Version >= 2 {
		if f.Relief, err = r.ReadUInt8(); err != nil {
			return nil, err
		}
		lang, err := r.ReadUInt16()
		if err != nil {
			return nil, err
		}
		f.CJKLanguage = LanguageType(lang)
		if f.Vertical, err = r.ReadBool(); err != nil {
			return nil, err
		}
		if f.Emphasis, err = r.ReadUInt16(); err != nil {
			return nil, err
		}
	}

	if compat.Version >= 3 {
		if f.Overline, err = r.ReadUInt16(); err != nil {
			return nil, err
		}
	}

	err = compat.Close()
	if err != nil {
		return nil, err
	}
	return f, nil
}
