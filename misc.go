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

// Comment carries application specific data.  Comments do not affect the
// drawing, except that an "EMF_PLUS" comment marks the metafile as needing
// advanced composition support.
type Comment struct {
	Comment string
	Value   int32
	Data    []byte
}

// Type implements the [Action] interface.
func (*Comment) Type() ActionType { return TypeComment }

func (d *decoder) comment() (Action, error) {
	a := &Comment{}
	raw, err := d.gr.ReadRawString()
	if err != nil {
		return nil, err
	}
	a.Comment = string(raw)
	if a.Value, err = d.s.ReadInt32(); err != nil {
		return nil, err
	}
	size, err := d.s.ReadUInt32()
	if err != nil {
		return nil, err
	}
	n, err := d.gr.ClampCount("comment data", int(min(size, 1<<31-1)), 1)
	if err != nil {
		return nil, err
	}
	if a.Data, err = d.s.ReadBytes(n); err != nil {
		return nil, err
	}

	d.r.log.Debug("comment",
		"offset", d.pos, "comment", a.Comment, "value", a.Value, "size", n)
	return a, nil
}

// EPS embeds an encapsulated PostScript graphic, together with a metafile
// which can be used in its place.
type EPS struct {
	Link *gdi.GfxLink
	Pos  gdi.Point
	Size gdi.Size

	// Subst is the replacement drawing.
	Subst *Metafile
}

// Type implements the [Action] interface.
func (*EPS) Type() ActionType { return TypeEPS }

func (d *decoder) eps() (Action, error) {
	a := &EPS{}
	var err error
	if a.Link, err = d.gr.ReadGfxLink(); err != nil {
		return nil, err
	}
	if a.Pos, a.Size, err = d.placement(); err != nil {
		return nil, err
	}
	if a.Subst, err = d.nested(); err != nil {
		return nil, err
	}
	return a, nil
}

// FloatTransparent draws a metafile with a transparency gradient.
type FloatTransparent struct {
	Content  *Metafile
	Pos      gdi.Point
	Size     gdi.Size
	Gradient gdi.Gradient
}

// Type implements the [Action] interface.
func (*FloatTransparent) Type() ActionType { return TypeFloatTransparent }

func (d *decoder) floatTransparent() (Action, error) {
	a := &FloatTransparent{}
	var err error
	if a.Content, err = d.nested(); err != nil {
		return nil, err
	}
	if a.Pos, a.Size, err = d.placement(); err != nil {
		return nil, err
	}
	if a.Gradient, err = d.gr.ReadGradient(); err != nil {
		return nil, err
	}
	return a, nil
}
