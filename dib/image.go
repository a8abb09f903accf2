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

package dib

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"math/bits"

	"golang.org/x/image/bmp"
	"seehuhn.de/go/icc"
)

// ErrUnsupported is returned by [Bitmap.Image] for pixel formats which
// cannot be converted.
var ErrUnsupported = errors.New("dib: unsupported pixel format")

// Image converts the bitmap to an image.
func (b *Bitmap) Image() (image.Image, error) {
	switch b.Compression {
	case CompressRLE4, CompressRLE8:
		return nil, ErrUnsupported
	}

	switch b.BitCount {
	case 1, 4:
		return b.paletted(), nil
	case 8, 24:
		return bmp.Decode(bytes.NewReader(b.bmpFile()))
	case 32:
		if b.Compression == CompressBitfields && b.Masks != [4]uint32{0xFF0000, 0xFF00, 0xFF, b.Masks[3]} {
			return b.masked(), nil
		}
		return bmp.Decode(bytes.NewReader(b.bmpFile()))
	case 16:
		return b.masked(), nil
	}
	return nil, ErrUnsupported
}

// ProfileChannels decodes the embedded ICC profile and returns the number
// of colour channels of its colour space.
func (b *Bitmap) ProfileChannels() (int, error) {
	if len(b.Profile) == 0 {
		return 0, errors.New("dib: no embedded colour profile")
	}
	p, err := icc.Decode(b.Profile)
	if err != nil {
		return 0, err
	}
	return p.ColorSpace.NumComponents(), nil
}

// srcRow returns the pixel data of image row y, counted from the top.
func (b *Bitmap) srcRow(y int) []byte {
	if !b.TopDown {
		y = b.Height - 1 - y
	}
	stride := b.Stride()
	return b.Data[y*stride : (y+1)*stride]
}

// bmpFile assembles a BMP file which can be read by [bmp.Decode].
// The info header is always a BITMAPINFOHEADER, or a BITMAPV4HEADER if
// the alpha channel is used.
func (b *Bitmap) bmpFile() []byte {
	hdrSize := uint32(infoHeaderSize)
	if b.BitCount == 32 && b.Masks[3] != 0 {
		hdrSize = v4HeaderSize
	}
	var palette []byte
	nColors := uint32(0)
	if b.BitCount == 8 {
		// Pixel values beyond the end of the colour table are black.
		nColors = 256
		palette = make([]byte, 4*nColors)
		for i, c := range b.Palette {
			r, g, bl, _ := c.RGBA()
			palette[4*i] = uint8(bl >> 8)
			palette[4*i+1] = uint8(g >> 8)
			palette[4*i+2] = uint8(r >> 8)
		}
	}
	offset := fileHeaderSize + hdrSize + uint32(len(palette))

	height := int32(b.Height)
	if b.TopDown {
		height = -height
	}

	le := binary.LittleEndian
	buf := make([]byte, 0, int(offset)+len(b.Data))
	buf = append(buf, 'B', 'M')
	buf = le.AppendUint32(buf, offset+uint32(len(b.Data)))
	buf = le.AppendUint32(buf, 0)
	buf = le.AppendUint32(buf, offset)
	buf = le.AppendUint32(buf, hdrSize)
	buf = le.AppendUint32(buf, uint32(b.Width))
	buf = le.AppendUint32(buf, uint32(height))
	buf = le.AppendUint16(buf, 1)
	buf = le.AppendUint16(buf, b.BitCount)
	buf = le.AppendUint32(buf, uint32(CompressRGB))
	buf = le.AppendUint32(buf, uint32(len(b.Data)))
	buf = le.AppendUint32(buf, uint32(b.XPelsPerMeter))
	buf = le.AppendUint32(buf, uint32(b.YPelsPerMeter))
	buf = le.AppendUint32(buf, nColors)
	buf = le.AppendUint32(buf, 0)
	buf = append(buf, make([]byte, hdrSize-infoHeaderSize)...)
	buf = append(buf, palette...)
	buf = append(buf, b.Data...)
	return buf
}

// paletted decodes 1 and 4 bit images.
func (b *Bitmap) paletted() image.Image {
	n := 1 << b.BitCount
	pal := make(color.Palette, n)
	for i := range pal {
		if i < len(b.Palette) {
			pal[i] = b.Palette[i]
		} else {
			pal[i] = color.RGBA{A: 0xFF}
		}
	}

	img := image.NewPaletted(image.Rect(0, 0, b.Width, b.Height), pal)
	bpp := int(b.BitCount)
	perByte := 8 / bpp
	mask := byte(n - 1)
	for y := range b.Height {
		row := b.srcRow(y)
		dst := img.Pix[y*img.Stride:]
		for x := range b.Width {
			shift := 8 - bpp*(x%perByte+1)
			dst[x] = (row[x/perByte] >> shift) & mask
		}
	}
	return img
}

// masked decodes 16 and 32 bit images with arbitrary channel masks.
func (b *Bitmap) masked() image.Image {
	masks := b.Masks
	if b.Compression != CompressBitfields {
		if b.BitCount == 16 {
			masks = [4]uint32{0x7C00, 0x03E0, 0x001F, 0}
		} else {
			masks = [4]uint32{0xFF0000, 0xFF00, 0xFF, 0}
		}
	}

	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	bytesPP := int(b.BitCount / 8)
	for y := range b.Height {
		row := b.srcRow(y)
		dst := img.Pix[y*img.Stride:]
		for x := range b.Width {
			var px uint32
			if bytesPP == 2 {
				px = uint32(binary.LittleEndian.Uint16(row[2*x:]))
			} else {
				px = binary.LittleEndian.Uint32(row[4*x:])
			}
			dst[4*x] = channel(px, masks[0])
			dst[4*x+1] = channel(px, masks[1])
			dst[4*x+2] = channel(px, masks[2])
			if masks[3] != 0 {
				dst[4*x+3] = channel(px, masks[3])
			} else {
				dst[4*x+3] = 0xFF
			}
		}
	}
	return img
}

// channel extracts the bits selected by mask and scales them to 8 bits.
func channel(px, mask uint32) uint8 {
	if mask == 0 {
		return 0
	}
	shift := bits.TrailingZeros32(mask)
	width := bits.OnesCount32(mask)
	v := uint64((px & mask) >> shift)
	maxVal := uint64(1)<<width - 1
	return uint8(v * 255 / maxVal)
}
