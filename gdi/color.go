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
	"image/color"
)

// Color is a colour value of the form 0xTTRRGGBB, where TT is the
// transparency (0 means opaque).
type Color uint32

// RGB returns an opaque colour.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// R returns the red component.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green component.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue component.
func (c Color) B() uint8 { return uint8(c) }

// Transparency returns the transparency, 0 for opaque and 255 for fully
// transparent.
func (c Color) Transparency() uint8 { return uint8(c >> 24) }

// RGBA implements the [color.Color] interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	alpha := uint32(255 - c.Transparency())
	nrgba := color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: uint8(alpha)}
	return nrgba.RGBA()
}

func (c Color) String() string {
	if c.Transparency() != 0 {
		return fmt.Sprintf("#%08x", uint32(c))
	}
	return fmt.Sprintf("#%06x", uint32(c))
}

// The colours of the named colour table.
const (
	Black        Color = 0x000000
	Blue         Color = 0x000080
	Green        Color = 0x008000
	Cyan         Color = 0x008080
	Red          Color = 0x800000
	Magenta      Color = 0x800080
	Brown        Color = 0x808000
	Gray         Color = 0x808080
	LightGray    Color = 0xC0C0C0
	LightBlue    Color = 0x0000FF
	LightGreen   Color = 0x00FF00
	LightCyan    Color = 0x00FFFF
	LightRed     Color = 0xFF0000
	LightMagenta Color = 0xFF00FF
	Yellow       Color = 0xFFFF00
	White        Color = 0xFFFFFF
)

var namedColors = []Color{
	Black, Blue, Green, Cyan, Red, Magenta, Brown, Gray,
	LightGray, LightBlue, LightGreen, LightCyan, LightRed, LightMagenta,
	Yellow, White,
}

// colorNameUser marks a named colour record which stores explicit
// channel values.
const colorNameUser = 0x8000

// ReadColor reads a colour stored as a uint32 value.
func (r *Reader) ReadColor() (Color, error) {
	x, err := r.ReadUInt32()
	return Color(x), err
}

// ReadNamedColor reads a colour in the older format used inside gradients,
// hatches and bitmap transparency data.  The record starts with a uint16
// name.  If bit 15 is set, three uint16 channel values follow, of which
// only the high bytes are used.  Otherwise the name indexes a table of
// predefined colours.
func (r *Reader) ReadNamedColor() (Color, error) {
	id, err := r.ReadUInt16()
	if err != nil {
		return 0, err
	}
	if id&colorNameUser == 0 {
		if int(id) < len(namedColors) {
			return namedColors[id], nil
		}
		return Black, nil
	}

	var ch [3]uint16
	for i := range ch {
		ch[i], err = r.ReadUInt16()
		if err != nil {
			return 0, err
		}
	}
	return RGB(uint8(ch[0]>>8), uint8(ch[1]>>8), uint8(ch[2]>>8)), nil
}
