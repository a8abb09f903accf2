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
	"golang.org/x/text/language"

	"seehuhn.de/go/svm/gdi"
	"seehuhn.de/go/svm/textenc"
)

// LineColor sets the colour for lines and outlines.  If Set is false,
// outlines are not drawn.
type LineColor struct {
	Color gdi.Color
	Set   bool
}

// Type implements the [Action] interface.
func (*LineColor) Type() ActionType { return TypeLineColor }

// FillColor sets the colour used to fill shapes.  If Set is false, shapes
// are not filled.
type FillColor LineColor

// Type implements the [Action] interface.
func (*FillColor) Type() ActionType { return TypeFillColor }

// TextFillColor sets the background colour for text.  If Set is false,
// the text background is transparent.
type TextFillColor LineColor

// Type implements the [Action] interface.
func (*TextFillColor) Type() ActionType { return TypeTextFillColor }

// TextLineColor sets the colour for underlines.  If Set is false, the
// text colour is used.
type TextLineColor LineColor

// Type implements the [Action] interface.
func (*TextLineColor) Type() ActionType { return TypeTextLineColor }

// OverlineColor sets the colour for overlines.  If Set is false, the
// text colour is used.
type OverlineColor LineColor

// Type implements the [Action] interface.
func (*OverlineColor) Type() ActionType { return TypeOverlineColor }

// optionalColor decodes the actions which set or unset one of the
// drawing colours.
func (d *decoder) optionalColor() (Action, error) {
	var a LineColor
	var err error
	if a.Color, err = d.gr.ReadColor(); err != nil {
		return nil, err
	}
	if a.Set, err = d.s.ReadBool(); err != nil {
		return nil, err
	}

	switch d.tag {
	case TypeFillColor:
		res := FillColor(a)
		return &res, nil
	case TypeTextFillColor:
		res := TextFillColor(a)
		return &res, nil
	case TypeTextLineColor:
		res := TextLineColor(a)
		return &res, nil
	case TypeOverlineColor:
		res := OverlineColor(a)
		return &res, nil
	default:
		return &a, nil
	}
}

// TextColor sets the colour used for text.
type TextColor struct {
	Color gdi.Color
}

// Type implements the [Action] interface.
func (*TextColor) Type() ActionType { return TypeTextColor }

func (d *decoder) textColor() (Action, error) {
	c, err := d.gr.ReadColor()
	if err != nil {
		return nil, err
	}
	return &TextColor{Color: c}, nil
}

// TextAlign sets the vertical alignment of text relative to the text
// position.
type TextAlign struct {
	Align uint16
}

// Type implements the [Action] interface.
func (*TextAlign) Type() ActionType { return TypeTextAlign }

func (d *decoder) textAlign() (Action, error) {
	x, err := d.s.ReadUInt16()
	if err != nil {
		return nil, err
	}
	return &TextAlign{Align: x}, nil
}

// MapMode changes the coordinate system for subsequent actions.
type MapMode struct {
	MapMode gdi.MapMode
}

// Type implements the [Action] interface.
func (*MapMode) Type() ActionType { return TypeMapMode }

func (d *decoder) mapMode() (Action, error) {
	m, err := d.gr.ReadMapMode()
	if err != nil {
		return nil, err
	}
	return &MapMode{MapMode: m}, nil
}

// Font selects the font for subsequent text actions.
type Font struct {
	Font *gdi.Font
}

// Type implements the [Action] interface.
func (*Font) Type() ActionType { return TypeFont }

// font decodes a font action.  The character set of the font becomes the
// encoding for the strings of subsequent text actions.
func (d *decoder) font() (Action, error) {
	f, err := d.gr.ReadFont()
	if err != nil {
		return nil, err
	}

	cs := f.CharSet
	if cs == textenc.DontKnow {
		cs = d.r.opt.CharSet
	}
	if !cs.Known() {
		d.r.log.Debug("unknown character set",
			"action", d.tag.String(), "offset", d.pos, "charset", uint16(cs))
	}
	d.ctx.CharSet = cs

	return &Font{Font: f}, nil
}

// PushFlags select which parts of the graphics state are saved by a
// [Push] action.
type PushFlags uint16

// These are the bits of PushFlags.
const (
	PushLineColor     PushFlags = 0x0001
	PushFillColor     PushFlags = 0x0002
	PushFont          PushFlags = 0x0004
	PushTextColor     PushFlags = 0x0008
	PushMapMode       PushFlags = 0x0010
	PushClipRegion    PushFlags = 0x0020
	PushRasterOp      PushFlags = 0x0040
	PushTextFillColor PushFlags = 0x0080
	PushTextAlign     PushFlags = 0x0100
	PushRefPoint      PushFlags = 0x0200
	PushTextLineColor PushFlags = 0x0400
	PushTextLayout    PushFlags = 0x0800
	PushTextLanguage  PushFlags = 0x1000
	PushOverlineColor PushFlags = 0x2000
	PushAll           PushFlags = 0xFFFF
)

// Push saves parts of the graphics state.
type Push struct {
	Flags PushFlags
}

// Type implements the [Action] interface.
func (*Push) Type() ActionType { return TypePush }

func (d *decoder) push() (Action, error) {
	x, err := d.s.ReadUInt16()
	if err != nil {
		return nil, err
	}
	return &Push{Flags: PushFlags(x)}, nil
}

// Pop restores the graphics state saved by the matching [Push].
type Pop struct{}

// Type implements the [Action] interface.
func (Pop) Type() ActionType { return TypePop }

// RasterOp sets the raster operation used for drawing.
type RasterOp struct {
	Op uint16
}

// Type implements the [Action] interface.
func (*RasterOp) Type() ActionType { return TypeRasterOp }

func (d *decoder) rasterOp() (Action, error) {
	x, err := d.s.ReadUInt16()
	if err != nil {
		return nil, err
	}
	return &RasterOp{Op: x}, nil
}

// ClipRegion sets the clipping region.  If Clip is false, clipping is
// disabled.
type ClipRegion struct {
	Region *gdi.Region
	Clip   bool
}

// Type implements the [Action] interface.
func (*ClipRegion) Type() ActionType { return TypeClipRegion }

func (d *decoder) clipRegion() (Action, error) {
	rgn, err := d.gr.ReadRegion()
	if err != nil {
		return nil, err
	}
	clip, err := d.s.ReadBool()
	if err != nil {
		return nil, err
	}
	return &ClipRegion{Region: rgn, Clip: clip}, nil
}

// ISectRectClipRegion intersects the clipping region with a rectangle.
type ISectRectClipRegion struct {
	Rect gdi.Rect
}

// Type implements the [Action] interface.
func (*ISectRectClipRegion) Type() ActionType { return TypeISectRectClipRegion }

func (d *decoder) iSectRectClipRegion() (Action, error) {
	r, err := d.gr.ReadRect()
	if err != nil {
		return nil, err
	}
	return &ISectRectClipRegion{Rect: r}, nil
}

// ISectRegionClipRegion intersects the clipping region with a region.
type ISectRegionClipRegion struct {
	Region *gdi.Region
}

// Type implements the [Action] interface.
func (*ISectRegionClipRegion) Type() ActionType { return TypeISectRegionClipRegion }

func (d *decoder) iSectRegionClipRegion() (Action, error) {
	rgn, err := d.gr.ReadRegion()
	if err != nil {
		return nil, err
	}
	return &ISectRegionClipRegion{Region: rgn}, nil
}

// MoveClipRegion translates the clipping region.
type MoveClipRegion struct {
	DX, DY int32
}

// Type implements the [Action] interface.
func (*MoveClipRegion) Type() ActionType { return TypeMoveClipRegion }

func (d *decoder) moveClipRegion() (Action, error) {
	dx, err := d.s.ReadInt32()
	if err != nil {
		return nil, err
	}
	dy, err := d.s.ReadInt32()
	if err != nil {
		return nil, err
	}
	return &MoveClipRegion{DX: dx, DY: dy}, nil
}

// RefPoint sets the reference point for hatch and bitmap patterns.
type RefPoint struct {
	Pos gdi.Point
	Set bool
}

// Type implements the [Action] interface.
func (*RefPoint) Type() ActionType { return TypeRefPoint }

func (d *decoder) refPoint() (Action, error) {
	pos, err := d.gr.ReadPoint()
	if err != nil {
		return nil, err
	}
	set, err := d.s.ReadBool()
	if err != nil {
		return nil, err
	}
	return &RefPoint{Pos: pos, Set: set}, nil
}

// LayoutMode sets the text layout mode, for example right-to-left text.
type LayoutMode struct {
	Mode uint32
}

// Type implements the [Action] interface.
func (*LayoutMode) Type() ActionType { return TypeLayoutMode }

func (d *decoder) layoutMode() (Action, error) {
	x, err := d.s.ReadUInt32()
	if err != nil {
		return nil, err
	}
	return &LayoutMode{Mode: x}, nil
}

// TextLanguage sets the language of subsequent text.
type TextLanguage struct {
	Language gdi.LanguageType
}

// Type implements the [Action] interface.
func (*TextLanguage) Type() ActionType { return TypeTextLanguage }

// Tag returns the BCP 47 tag for the language.
func (a *TextLanguage) Tag() language.Tag {
	return a.Language.Tag()
}

func (d *decoder) textLanguage() (Action, error) {
	l, err := d.gr.ReadLanguage()
	if err != nil {
		return nil, err
	}
	return &TextLanguage{Language: l}, nil
}
