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

import "strconv"

// ActionType is the tag which identifies the kind of an action in the
// record stream.
type ActionType uint16

// These are the action types which can be decoded.
const (
	TypeNone                  ActionType = 0
	TypePixel                 ActionType = 100
	TypePoint                 ActionType = 101
	TypeLine                  ActionType = 102
	TypeRect                  ActionType = 103
	TypeRoundRect             ActionType = 104
	TypeEllipse               ActionType = 105
	TypeArc                   ActionType = 106
	TypePie                   ActionType = 107
	TypeChord                 ActionType = 108
	TypePolyLine              ActionType = 109
	TypePolygon               ActionType = 110
	TypePolyPolygon           ActionType = 111
	TypeText                  ActionType = 112
	TypeTextArray             ActionType = 113
	TypeStretchText           ActionType = 114
	TypeTextRect              ActionType = 115
	TypeBmp                   ActionType = 116
	TypeBmpScale              ActionType = 117
	TypeBmpScalePart          ActionType = 118
	TypeBmpEx                 ActionType = 119
	TypeBmpExScale            ActionType = 120
	TypeBmpExScalePart        ActionType = 121
	TypeMask                  ActionType = 122
	TypeMaskScale             ActionType = 123
	TypeMaskScalePart         ActionType = 124
	TypeGradient              ActionType = 125
	TypeHatch                 ActionType = 126
	TypeWallpaper             ActionType = 127
	TypeClipRegion            ActionType = 128
	TypeISectRectClipRegion   ActionType = 129
	TypeISectRegionClipRegion ActionType = 130
	TypeMoveClipRegion        ActionType = 131
	TypeLineColor             ActionType = 132
	TypeFillColor             ActionType = 133
	TypeTextColor             ActionType = 134
	TypeTextFillColor         ActionType = 135
	TypeTextAlign             ActionType = 136
	TypeMapMode               ActionType = 137
	TypeFont                  ActionType = 138
	TypePush                  ActionType = 139
	TypePop                   ActionType = 140
	TypeRasterOp              ActionType = 141
	TypeTransparent           ActionType = 142
	TypeEPS                   ActionType = 143
	TypeRefPoint              ActionType = 144
	TypeTextLineColor         ActionType = 145
	TypeTextLine              ActionType = 146
	TypeFloatTransparent      ActionType = 147
	TypeGradientEx            ActionType = 148
	TypeLayoutMode            ActionType = 149
	TypeTextLanguage          ActionType = 150
	TypeOverlineColor         ActionType = 151
	TypeComment               ActionType = 512
)

var typeNames = map[ActionType]string{
	TypeNone:                  "NONE",
	TypePixel:                 "PIXEL",
	TypePoint:                 "POINT",
	TypeLine:                  "LINE",
	TypeRect:                  "RECT",
	TypeRoundRect:             "ROUNDRECT",
	TypeEllipse:               "ELLIPSE",
	TypeArc:                   "ARC",
	TypePie:                   "PIE",
	TypeChord:                 "CHORD",
	TypePolyLine:              "POLYLINE",
	TypePolygon:               "POLYGON",
	TypePolyPolygon:           "POLYPOLYGON",
	TypeText:                  "TEXT",
	TypeTextArray:             "TEXTARRAY",
	TypeStretchText:           "STRETCHTEXT",
	TypeTextRect:              "TEXTRECT",
	TypeBmp:                   "BMP",
	TypeBmpScale:              "BMPSCALE",
	TypeBmpScalePart:          "BMPSCALEPART",
	TypeBmpEx:                 "BMPEX",
	TypeBmpExScale:            "BMPEXSCALE",
	TypeBmpExScalePart:        "BMPEXSCALEPART",
	TypeMask:                  "MASK",
	TypeMaskScale:             "MASKSCALE",
	TypeMaskScalePart:         "MASKSCALEPART",
	TypeGradient:              "GRADIENT",
	TypeHatch:                 "HATCH",
	TypeWallpaper:             "WALLPAPER",
	TypeClipRegion:            "CLIPREGION",
	TypeISectRectClipRegion:   "ISECTRECTCLIPREGION",
	TypeISectRegionClipRegion: "ISECTREGIONCLIPREGION",
	TypeMoveClipRegion:        "MOVECLIPREGION",
	TypeLineColor:             "LINECOLOR",
	TypeFillColor:             "FILLCOLOR",
	TypeTextColor:             "TEXTCOLOR",
	TypeTextFillColor:         "TEXTFILLCOLOR",
	TypeTextAlign:             "TEXTALIGN",
	TypeMapMode:               "MAPMODE",
	TypeFont:                  "FONT",
	TypePush:                  "PUSH",
	TypePop:                   "POP",
	TypeRasterOp:              "RASTEROP",
	TypeTransparent:           "TRANSPARENT",
	TypeEPS:                   "EPS",
	TypeRefPoint:              "REFPOINT",
	TypeTextLineColor:         "TEXTLINECOLOR",
	TypeTextLine:              "TEXTLINE",
	TypeFloatTransparent:      "FLOATTRANSPARENT",
	TypeGradientEx:            "GRADIENTEX",
	TypeLayoutMode:            "LAYOUTMODE",
	TypeTextLanguage:          "TEXTLANGUAGE",
	TypeOverlineColor:         "OVERLINECOLOR",
	TypeComment:               "COMMENT",
}

func (t ActionType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "ActionType(" + strconv.Itoa(int(t)) + ")"
}

// Known reports whether actions of this type can be decoded.
func (t ActionType) Known() bool {
	_, ok := typeNames[t]
	return ok
}

// Action is a single drawing instruction.
//
// The concrete types in this package which implement Action are the only
// implementations; each corresponds to exactly one ActionType.
type Action interface {
	Type() ActionType
}

// None is an action which does nothing.
type None struct{}

// Type implements the [Action] interface.
func (None) Type() ActionType { return TypeNone }
