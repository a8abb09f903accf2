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

package main

import (
	"fmt"

	"seehuhn.de/go/svm"
	"seehuhn.de/go/svm/dib"
	"seehuhn.de/go/svm/gdi"
)

// describe returns a short summary of the action data.
func describe(a svm.Action) string {
	switch a := a.(type) {
	case *svm.Pixel:
		return fmt.Sprintf("%s %s", a.Pos, a.Color)
	case *svm.Point:
		return a.Pos.String()
	case *svm.Line:
		return fmt.Sprintf("%s-%s width=%d", a.Start, a.End, a.LineInfo.Width)
	case *svm.Rect:
		return a.Rect.String()
	case *svm.RoundRect:
		return fmt.Sprintf("%s r=%d,%d", a.Rect, a.HorzRound, a.VertRound)
	case *svm.Ellipse:
		return a.Rect.String()
	case *svm.Arc:
		return fmt.Sprintf("%s %s %s", a.Rect, a.Start, a.End)
	case *svm.Pie:
		return fmt.Sprintf("%s %s %s", a.Rect, a.Start, a.End)
	case *svm.Chord:
		return fmt.Sprintf("%s %s %s", a.Rect, a.Start, a.End)
	case *svm.PolyLine:
		return polygon(a.Poly)
	case *svm.Polygon:
		return polygon(a.Poly)
	case *svm.PolyPolygon:
		return fmt.Sprintf("%d polygons", len(a.Polys))
	case *svm.Text:
		return fmt.Sprintf("%s %q", a.Pos, substring(a.Text, a.Index, a.Len))
	case *svm.TextArray:
		return fmt.Sprintf("%s %q advances=%d", a.Pos, substring(a.Text, a.Index, a.Len), len(a.Advances))
	case *svm.StretchText:
		return fmt.Sprintf("%s %q width=%d", a.Pos, substring(a.Text, a.Index, a.Len), a.Width)
	case *svm.TextRect:
		return fmt.Sprintf("%s %q", a.Rect, a.Text)
	case *svm.TextLine:
		return fmt.Sprintf("%s width=%d", a.Pos, a.Width)
	case *svm.Bmp:
		return fmt.Sprintf("%s at %s", a.Bitmap, a.Pos)
	case *svm.BmpScale:
		return fmt.Sprintf("%s at %s size %s", a.Bitmap, a.Pos, a.Size)
	case *svm.BmpScalePart:
		return fmt.Sprintf("%s at %s size %s", a.Bitmap, a.DestPos, a.DestSize)
	case *svm.BmpEx:
		return fmt.Sprintf("%s at %s", a.Bitmap.Bitmap, a.Pos)
	case *svm.BmpExScale:
		return fmt.Sprintf("%s at %s size %s", a.Bitmap.Bitmap, a.Pos, a.Size)
	case *svm.BmpExScalePart:
		return fmt.Sprintf("%s at %s size %s", a.Bitmap.Bitmap, a.DestPos, a.DestSize)
	case *svm.Mask:
		return fmt.Sprintf("%s at %s", a.Bitmap, a.Pos)
	case *svm.MaskScale:
		return fmt.Sprintf("%s at %s size %s", a.Bitmap, a.Pos, a.Size)
	case *svm.MaskScalePart:
		return fmt.Sprintf("%s %s at %s size %s", a.Bitmap, a.Color, a.DestPos, a.DestSize)
	case *svm.Gradient:
		return fmt.Sprintf("%s %s-%s", a.Rect, a.Gradient.StartColor, a.Gradient.EndColor)
	case *svm.GradientEx:
		return fmt.Sprintf("%d polygons %s-%s", len(a.Polys), a.Gradient.StartColor, a.Gradient.EndColor)
	case *svm.Hatch:
		return fmt.Sprintf("%d polygons %s", len(a.Polys), a.Hatch.Color)
	case *svm.Transparent:
		return fmt.Sprintf("%d polygons %d%%", len(a.Polys), a.Percent)
	case *svm.FloatTransparent:
		return fmt.Sprintf("%s size %s, %d actions", a.Pos, a.Size, a.Content.Len())
	case *svm.EPS:
		return fmt.Sprintf("%s size %s, %d bytes, %d actions", a.Pos, a.Size, len(a.Link.Data), a.Subst.Len())
	case *svm.Wallpaper:
		return fmt.Sprintf("%s style=%d", a.Color, a.Style)
	case *svm.ClipRegion:
		return fmt.Sprintf("%s clip=%t", a.Region.Type, a.Clip)
	case *svm.ISectRectClipRegion:
		return a.Rect.String()
	case *svm.ISectRegionClipRegion:
		return a.Region.Type.String()
	case *svm.MoveClipRegion:
		return fmt.Sprintf("%d,%d", a.DX, a.DY)
	case *svm.LineColor:
		return optColor(a.Color, a.Set)
	case *svm.FillColor:
		return optColor(a.Color, a.Set)
	case *svm.TextFillColor:
		return optColor(a.Color, a.Set)
	case *svm.TextLineColor:
		return optColor(a.Color, a.Set)
	case *svm.OverlineColor:
		return optColor(a.Color, a.Set)
	case *svm.TextColor:
		return a.Color.String()
	case *svm.TextAlign:
		return fmt.Sprint(a.Align)
	case *svm.MapMode:
		return fmt.Sprintf("%s origin %s", a.MapMode.Unit, a.MapMode.Origin)
	case *svm.Font:
		return fmt.Sprintf("%q %q %s %s", a.Font.FamilyName, a.Font.StyleName, a.Font.Size, a.Font.CharSet)
	case *svm.Push:
		return fmt.Sprintf("0x%04x", uint16(a.Flags))
	case *svm.RasterOp:
		return fmt.Sprint(a.Op)
	case *svm.RefPoint:
		return fmt.Sprintf("%s set=%t", a.Pos, a.Set)
	case *svm.LayoutMode:
		return fmt.Sprint(a.Mode)
	case *svm.TextLanguage:
		return a.Language.String()
	case *svm.Comment:
		return fmt.Sprintf("%q value=%d, %d bytes", a.Comment, a.Value, len(a.Data))
	default:
		return ""
	}
}

// bitmaps returns the bitmaps used by an action.
func bitmaps(a svm.Action) []*dib.Bitmap {
	var res []*dib.Bitmap
	addEx := func(ex *dib.BitmapEx) {
		res = append(res, ex.Bitmap)
		if ex.Mask != nil {
			res = append(res, ex.Mask)
		}
	}
	switch a := a.(type) {
	case *svm.Bmp:
		res = append(res, a.Bitmap)
	case *svm.BmpScale:
		res = append(res, a.Bitmap)
	case *svm.BmpScalePart:
		res = append(res, a.Bitmap)
	case *svm.Mask:
		res = append(res, a.Bitmap)
	case *svm.MaskScale:
		res = append(res, a.Bitmap)
	case *svm.MaskScalePart:
		res = append(res, a.Bitmap)
	case *svm.BmpEx:
		addEx(a.Bitmap)
	case *svm.BmpExScale:
		addEx(a.Bitmap)
	case *svm.BmpExScalePart:
		addEx(a.Bitmap)
	case *svm.Wallpaper:
		if a.Bitmap != nil {
			addEx(a.Bitmap)
		}
	}
	return res
}

func polygon(p gdi.Polygon) string {
	res := fmt.Sprintf("%d points", len(p.Points))
	if p.HasFlags() {
		res += " with flags"
	}
	return res
}

func optColor(c gdi.Color, set bool) string {
	if !set {
		return "none"
	}
	return c.String()
}

// substring returns the part of s given by a range of UTF-16 code units.
func substring(s string, index, n int) string {
	pos := 0
	start, end := len(s), len(s)
	for i, r := range s {
		if pos == index {
			start = i
		}
		if pos == index+n {
			end = i
			break
		}
		pos++
		if r > 0xFFFF {
			pos++
		}
	}
	if start > end {
		return ""
	}
	return s[start:end]
}
