package pic

import (
	"encoding/binary"
	"image"

	"github.com/golang/glog"

	"badc0de.net/pkg/go-wadlauncher/playpal"
)

const (
	// ScreenWidth and ScreenHeight are the size of a raw picture, and the
	// fallback size of a patch whose header cannot be trusted.
	ScreenWidth  = 320
	ScreenHeight = 200

	// Alpha is the alpha value of every written pixel.
	Alpha = 16

	postEnd = 0xFF
)

// Format identifies which lump a picture came from, and thus its encoding.
type Format int

const (
	FormatPatch     Format = iota // TITLEPIC
	FormatRaw                     // TITLE
	FormatRawPacked               // HTITLE
)

func (f Format) String() string {
	switch f {
	case FormatPatch:
		return "patch"
	case FormatRaw:
		return "raw"
	case FormatRawPacked:
		return "raw (packed)"
	default:
		return "unknown"
	}
}

// SniffDimensions reads the little endian width and height at the start of
// a patch. If either is zero, or data cannot hold a column offset table of
// that width after the four header bytes, it returns 320x200 instead.
func SniffDimensions(data []byte) (width, height int) {
	if len(data) < 4 {
		return ScreenWidth, ScreenHeight
	}
	width = int(binary.LittleEndian.Uint16(data[0:]))
	height = int(binary.LittleEndian.Uint16(data[2:]))
	if width == 0 || height == 0 || len(data) < 4+width*4 {
		glog.V(1).Infof("pic: untrusted patch header %dx%d for %d bytes, assuming %dx%d", width, height, len(data), ScreenWidth, ScreenHeight)
		return ScreenWidth, ScreenHeight
	}
	return width, height
}

// DecodePatch decodes patch data of the given size.
//
// The column offset table is read from the very start of data. It reports
// false if data is too short for the table. Posts running past the end of
// data end their column early, and rows outside the image are skipped.
func DecodePatch(data []byte, pal *playpal.Palette, width, height int) (*image.NRGBA, bool) {
	if pal == nil || width <= 0 || height <= 0 {
		return nil, false
	}
	if len(data) < width*4 {
		return nil, false
	}

	offsets := make([]uint32, width)
	for x := range offsets {
		offsets[x] = binary.LittleEndian.Uint32(data[x*4:])
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for x, off := range offsets {
		decodeColumn(img, data, pal, x, int64(off))
	}
	return img, true
}

func decodeColumn(img *image.NRGBA, data []byte, pal *playpal.Palette, x int, pos int64) {
	size := int64(len(data))
	height := img.Rect.Dy()
	for pos < size {
		top := int(data[pos])
		if top == postEnd {
			return
		}
		if pos+1 >= size {
			return
		}
		n := int(data[pos+1])
		pos += 3 // top, length, unused byte
		for y := top; y < top+n; y++ {
			if pos >= size {
				glog.V(2).Infof("pic: column %d runs past end of data", x)
				return
			}
			if y < height {
				setPixel(img.Pix[y*img.Stride+x*4:], pal, data[pos])
			}
			pos++
		}
		pos++ // unused byte
	}
}

// DecodeRaw decodes a 320x200 raw picture. It reports false unless data is
// exactly 64000 bytes.
func DecodeRaw(data []byte, pal *playpal.Palette) (*image.NRGBA, bool) {
	if pal == nil || len(data) != ScreenWidth*ScreenHeight {
		return nil, false
	}
	img := image.NewNRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight))
	for i, idx := range data {
		setPixel(img.Pix[i*4:], pal, idx)
	}
	return img, true
}

func setPixel(dst []byte, pal *playpal.Palette, idx uint8) {
	dst[0], dst[1], dst[2] = pal.RGB(idx)
	dst[3] = Alpha
}

// Decode decodes data according to the lump it came from.
//
// Raw lumps of the wrong size are retried as a 320x200 patch, since some
// archives store a patch under a raw lump's name. Patches are decoded at
// the size their header claims, see SniffDimensions.
func Decode(f Format, data []byte, pal *playpal.Palette) (*image.NRGBA, bool) {
	switch f {
	case FormatRaw, FormatRawPacked:
		if img, ok := DecodeRaw(data, pal); ok {
			return img, true
		}
		glog.V(1).Infof("pic: %s picture is %d bytes, not %d; trying as patch", f, len(data), ScreenWidth*ScreenHeight)
		return DecodePatch(data, pal, ScreenWidth, ScreenHeight)
	case FormatPatch:
		w, h := SniffDimensions(data)
		return DecodePatch(data, pal, w, h)
	default:
		return nil, false
	}
}
