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
	"seehuhn.de/go/svm/gdi"
)

// Text draws a part of a string.  The substring starts at Index and has
// Len elements, both measured in UTF-16 code units.
type Text struct {
	Pos   gdi.Point
	Text  string
	Index int
	Len   int
}

// Type implements the [Action] interface.
func (*Text) Type() ActionType { return TypeText }

func (d *decoder) text(version uint16) (Action, error) {
	a := &Text{}
	var err error
	if a.Pos, err = d.gr.ReadPoint(); err != nil {
		return nil, err
	}
	if a.Text, err = d.gr.ReadUniOrByteString(d.ctx.CharSet); err != nil {
		return nil, err
	}
	idx, err := d.s.ReadUInt16()
	if err != nil {
		return nil, err
	}
	n, err := d.s.ReadUInt16()
	if err != nil {
		return nil, err
	}
	a.Index, a.Len = int(idx), int(n)
	if version >= 2 {
		if a.Text, err = d.gr.ReadUnicodeString(); err != nil {
			return nil, err
		}
	}

	if _, err := d.clampText(a.Text, &a.Index, &a.Len); err != nil {
		return nil, err
	}
	return a, nil
}

// TextArray draws a part of a string with explicit character positions.
type TextArray struct {
	Pos   gdi.Point
	Text  string
	Index int
	Len   int

	// Advances, if non-nil, has Len elements.  Element i gives the
	// horizontal offset of the end of character i from Pos.
	Advances []int32
}

// Type implements the [Action] interface.
func (*TextArray) Type() ActionType { return TypeTextArray }

func (d *decoder) textArray(version uint16) (Action, error) {
	a := &TextArray{}
	var err error
	if a.Pos, err = d.gr.ReadPoint(); err != nil {
		return nil, err
	}
	if a.Text, err = d.gr.ReadUniOrByteString(d.ctx.CharSet); err != nil {
		return nil, err
	}
	idx, err := d.s.ReadUInt16()
	if err != nil {
		return nil, err
	}
	n, err := d.s.ReadUInt16()
	if err != nil {
		return nil, err
	}
	a.Index, a.Len = int(idx), int(n)

	count, err := d.s.ReadInt32()
	if err != nil {
		return nil, err
	}
	if count > 0 && int(count) < a.Len {
		// The record is unusable beyond this point.  The envelope skips
		// the remaining fields.
		err = d.inconsistency("too few character advances",
			"advances", count, "len", a.Len)
		if err != nil {
			return nil, err
		}
		if _, err := d.clampText(a.Text, &a.Index, &a.Len); err != nil {
			return nil, err
		}
		return a, nil
	}
	if count > 0 {
		a.Advances, err = d.readAdvances(int(count), a.Len)
		if err != nil {
			return nil, err
		}
	}

	if version >= 2 {
		if a.Text, err = d.gr.ReadUnicodeString(); err != nil {
			return nil, err
		}
	}

	clamped, err := d.clampText(a.Text, &a.Index, &a.Len)
	if err != nil {
		return nil, err
	}
	if clamped {
		a.Advances = nil
	}
	return a, nil
}

// readAdvances reads count advance values and returns the first keep
// of them.  Values missing because the data ends early are zero.
func (d *decoder) readAdvances(count, keep int) ([]int32, error) {
	avail := int(d.s.Remaining() / 4)
	if count > avail {
		err := d.inconsistency("advance array exceeds remaining data",
			"claimed", count, "max", avail)
		if err != nil {
			return nil, err
		}
		count = avail
	}

	res := make([]int32, keep)
	for i := range count {
		x, err := d.s.ReadInt32()
		if err != nil {
			return nil, err
		}
		if i < keep {
			res[i] = x
		}
	}
	return res, nil
}

// StretchText draws a part of a string, scaled horizontally to the given
// width.
type StretchText struct {
	Pos   gdi.Point
	Text  string
	Width uint32
	Index int
	Len   int
}

// Type implements the [Action] interface.
func (*StretchText) Type() ActionType { return TypeStretchText }

func (d *decoder) stretchText(version uint16) (Action, error) {
	a := &StretchText{}
	var err error
	if a.Pos, err = d.gr.ReadPoint(); err != nil {
		return nil, err
	}
	if a.Text, err = d.gr.ReadUniOrByteString(d.ctx.CharSet); err != nil {
		return nil, err
	}
	if a.Width, err = d.s.ReadUInt32(); err != nil {
		return nil, err
	}
	idx, err := d.s.ReadUInt16()
	if err != nil {
		return nil, err
	}
	n, err := d.s.ReadUInt16()
	if err != nil {
		return nil, err
	}
	a.Index, a.Len = int(idx), int(n)
	if version >= 2 {
		if a.Text, err = d.gr.ReadUnicodeString(); err != nil {
			return nil, err
		}
	}

	if _, err := d.clampText(a.Text, &a.Index, &a.Len); err != nil {
		return nil, err
	}
	return a, nil
}

// TextRect draws a string, formatted to fit into a rectangle.
type TextRect struct {
	Rect  gdi.Rect
	Text  string
	Style uint16
}

// Type implements the [Action] interface.
func (*TextRect) Type() ActionType { return TypeTextRect }

func (d *decoder) textRect(version uint16) (Action, error) {
	a := &TextRect{}
	var err error
	if a.Rect, err = d.gr.ReadRect(); err != nil {
		return nil, err
	}
	if a.Text, err = d.gr.ReadUniOrByteString(d.ctx.CharSet); err != nil {
		return nil, err
	}
	if a.Style, err = d.s.ReadUInt16(); err != nil {
		return nil, err
	}
	if version >= 2 {
		if a.Text, err = d.gr.ReadUnicodeString(); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// TextLine draws text decoration lines, without the text itself.
type TextLine struct {
	Pos       gdi.Point
	Width     int32
	Strikeout uint32
	Underline uint32
	Overline  uint32
}

// Type implements the [Action] interface.
func (*TextLine) Type() ActionType { return TypeTextLine }

func (d *decoder) textLine(version uint16) (Action, error) {
	a := &TextLine{}
	var err error
	if a.Pos, err = d.gr.ReadPoint(); err != nil {
		return nil, err
	}
	if a.Width, err = d.s.ReadInt32(); err != nil {
		return nil, err
	}
	if a.Strikeout, err = d.s.ReadUInt32(); err != nil {
		return nil, err
	}
	if a.Underline, err = d.s.ReadUInt32(); err != nil {
		return nil, err
	}
	if version >= 2 {
		if a.Overline, err = d.s.ReadUInt32(); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// clampText makes sure that the substring given by index and n lies
// inside text.  If not, the whole string is used instead and true is
// returned.
func (d *decoder) clampText(text string, index, n *int) (bool, error) {
	total := gdi.UTF16Len(text)
	if *index+*n <= total {
		return false, nil
	}
	err := d.inconsistency("text range out of bounds, using whole string",
		"index", *index, "len", *n, "textLen", total)
	if err != nil {
		return false, err
	}
	*index = 0
	*n = total
	return true, nil
}
