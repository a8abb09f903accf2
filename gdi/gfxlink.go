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

// GfxLinkType identifies the format of the data embedded in a GfxLink.
type GfxLinkType uint16

// These are the possible link types.
const (
	LinkNone GfxLinkType = iota
	LinkEPS
	LinkTIFF
	LinkWMF
	LinkMET
	LinkPCT
	LinkGIF
	LinkJPG
	LinkPNG
	LinkSVG
	LinkEMF
	LinkPDF
	LinkWEBP
)

var linkNames = []string{
	"none", "EPS", "TIFF", "WMF", "MET", "PCT", "GIF", "JPG", "PNG", "SVG",
	"EMF", "PDF", "WEBP",
}

func (t GfxLinkType) String() string {
	if int(t) < len(linkNames) {
		return linkNames[t]
	}
	return "unknown"
}

// GfxLink holds the original data of an embedded graphic.
type GfxLink struct {
	Type   GfxLinkType
	UserID uint32

	// Version 2
	PrefSize    Size
	PrefMapMode MapMode

	Data []byte
}

// ReadGfxLink reads an embedded graphic.  If the declared data size
// exceeds the remaining input, the data is truncated.
func (r *Reader) ReadGfxLink() (*GfxLink, error) {
	compat, err := r.ReadCompat()
	if err != nil {
		return nil, err
	}

	link := &GfxLink{}
	tp, err := r.ReadUInt16()
	if err != nil {
		return nil, err
	}
	link.Type = GfxLinkType(tp)
	size, err := r.ReadUInt32()
	if err != nil {
		return nil, err
	}
	if link.UserID, err = r.ReadUInt32(); err != nil {
		return nil, err
	}

	if compat.Version >= 2 {
		if link.PrefSize, err = r.ReadSize(); err != nil {
			return nil, err
		}
		if link.PrefMapMode, err = r.ReadMapMode(); err != nil {
			return nil, err
		}
	}

	// The data follows the envelope.
	err = compat.Close()
	if err != nil {
		return nil, err
	}

	n, err := r.ClampCount("gfx link data", int(min(size, 1<<31-1)), 1)
	if err != nil {
		return nil, err
	}
	link.Data, err = r.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	return link, nil
}
