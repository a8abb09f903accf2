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
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/svm/gdi"
)

// Metafile is a decoded metafile: a sequence of actions, in the order in
// which they are executed, together with the preferred size of the
// drawing.
type Metafile struct {
	PrefMapMode gdi.MapMode
	PrefSize    gdi.Size

	// CompressMode is the compression mode stored in the file header.
	// It does not affect decoding.
	CompressMode uint32

	// UseCanvas is set if the metafile contains an "EMF_PLUS" comment,
	// which marks drawings that need advanced composition support.
	UseCanvas bool

	Actions []Action
}

// Clear removes all actions and resets the header fields.
func (m *Metafile) Clear() {
	*m = Metafile{}
}

// Add appends an action.
func (m *Metafile) Add(a Action) {
	m.Actions = append(m.Actions, a)
}

// Len returns the number of actions.
func (m *Metafile) Len() int {
	return len(m.Actions)
}

// Count returns the number of actions of the given type.
func (m *Metafile) Count(tp ActionType) int {
	n := 0
	for _, a := range m.Actions {
		if a.Type() == tp {
			n++
		}
	}
	return n
}

// PrefBox returns the preferred size of the drawing, converted to PDF
// points.
func (m *Metafile) PrefBox() rect.Rect {
	return m.PrefMapMode.Box(m.PrefSize)
}
