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

// WallpaperStyle describes how the bitmap of a wallpaper is placed.
type WallpaperStyle uint16

// These are the possible values of WallpaperStyle.
const (
	WallpaperNull        WallpaperStyle = 0
	WallpaperTile        WallpaperStyle = 1
	WallpaperCenter      WallpaperStyle = 2
	WallpaperScale       WallpaperStyle = 3
	WallpaperTopLeft     WallpaperStyle = 4
	WallpaperTop         WallpaperStyle = 5
	WallpaperTopRight    WallpaperStyle = 6
	WallpaperLeft        WallpaperStyle = 7
	WallpaperRight       WallpaperStyle = 8
	WallpaperBottomLeft  WallpaperStyle = 9
	WallpaperBottom      WallpaperStyle = 10
	WallpaperBottomRight WallpaperStyle = 11
	WallpaperApplication WallpaperStyle = 12
)

// Wallpaper fills the drawing area with a background.
type Wallpaper struct {
	Color gdi.Color
	Style WallpaperStyle

	// Rect, if non-nil, restricts the wallpaper to a rectangle.
	Rect *gdi.Rect

	// Gradient and Bitmap are optional.
	Gradient *gdi.Gradient
	Bitmap   *dib.BitmapEx
}

// Type implements the [Action] interface.
func (*Wallpaper) Type() ActionType { return TypeWallpaper }

func (d *decoder) wallpaper() (Action, error) {
	compat, err := d.s.ReadCompat()
	if err != nil {
		return nil, err
	}

	a := &Wallpaper{}
	if a.Color, err = d.gr.ReadNamedColor(); err != nil {
		return nil, err
	}
	style, err := d.s.ReadUInt16()
	if err != nil {
		return nil, err
	}
	a.Style = WallpaperStyle(style)

	if compat.Version >= 2 {
		var present [6]bool // rect, gradient, bitmap, 3 unused
		for i := range present {
			present[i], err = d.s.ReadBool()
			if err != nil {
				return nil, err
			}
		}
		if present[0] {
			r, err := d.gr.ReadRect()
			if err != nil {
				return nil, err
			}
			a.Rect = &r
		}
		if present[1] {
			g, err := d.gr.ReadGradient()
			if err != nil {
				return nil, err
			}
			a.Gradient = &g
		}
		if present[2] {
			a.Bitmap, err = dib.ReadEx(d.gr)
			if err != nil {
				return nil, err
			}
		}
	}
	if compat.Version >= 3 {
		if a.Color, err = d.gr.ReadColor(); err != nil {
			return nil, err
		}
	}

	err = compat.Close()
	if err != nil {
		return nil, err
	}
	return a, nil
}
