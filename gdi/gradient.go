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

// GradientStyle selects the shape of a colour gradient.
type GradientStyle uint16

// These are the possible gradient styles.
const (
	GradientLinear     GradientStyle = 0
	GradientAxial      GradientStyle = 1
	GradientRadial     GradientStyle = 2
	GradientElliptical GradientStyle = 3
	GradientSquare     GradientStyle = 4
	GradientRect       GradientStyle = 5
)

// Gradient describes a colour transition.
type Gradient struct {
	Style      GradientStyle
	StartColor Color
	EndColor   Color

	// Angle is given in units of 0.1 degrees.
	Angle  uint16
	Border uint16

	// OffsetX and OffsetY give the centre of radial gradients, in percent.
	OffsetX uint16
	OffsetY uint16

	// StartIntensity and EndIntensity are percentages.
	StartIntensity uint16
	EndIntensity   uint16

	// Steps is the number of colour steps, 0 means automatic.
	Steps uint16
}

// ReadGradient reads a gradient.
func (r *Reader) ReadGradient() (Gradient, error) {
	compat, err := r.ReadCompat()
	if err != nil {
		return Gradient{}, err
	}

	var g Gradient
	style, err := r.ReadUInt16()
	if err != nil {
		return Gradient{}, err
	}
	g.Style = GradientStyle(style)
	if g.StartColor, err = r.ReadNamedColor(); err != nil {
		return Gradient{}, err
	}
	if g.EndColor, err = r.ReadNamedColor(); err != nil {
		return Gradient{}, err
	}
	fields := []*uint16{
		&g.Angle, &g.Border, &g.OffsetX, &g.OffsetY,
		&g.StartIntensity, &g.EndIntensity, &g.Steps,
	}
	for _, f := range fields {
		*f, err = r.ReadUInt16()
		if err != nil {
			return Gradient{}, err
		}
	}

	err = compat.Close()
	if err != nil {
		return Gradient{}, err
	}
	return g, nil
}
