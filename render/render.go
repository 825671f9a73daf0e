// Package render turns decoded title screens into image files.
package render

import (
	"bytes"
	"image"
	"image/gif"
	"image/png"
	"io"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"github.com/pkg/errors"
	"github.com/vincent-petithory/dataurl"
	"golang.org/x/image/draw"

	"badc0de.net/pkg/go-wadlauncher/playpal"
)

// Format is an output file format, named by its usual extension.
type Format string

const (
	PNG  Format = "png"
	WebP Format = "webp"
	TGA  Format = "tga"
	GIF  Format = "gif"
)

// Formats lists every supported Format.
var Formats = []Format{PNG, WebP, TGA, GIF}

// MIMEType returns the media type of f, or an empty string.
func (f Format) MIMEType() string {
	switch f {
	case PNG:
		return "image/png"
	case WebP:
		return "image/webp"
	case TGA:
		return "image/x-tga"
	case GIF:
		return "image/gif"
	}
	return ""
}

// ParseFormat maps an extension, with or without the leading dot, to a Format.
func ParseFormat(s string) (Format, error) {
	if len(s) > 0 && s[0] == '.' {
		s = s[1:]
	}
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", errors.Errorf("render: unknown format %q", s)
}

// Encode writes img to w in format f.
//
// GIF output is paletted with pal and has no transparency, so img is made
// opaque first; pal may be nil for the other formats.
func Encode(w io.Writer, img image.Image, pal *playpal.Palette, f Format) error {
	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case WebP:
		err = nativewebp.Encode(w, img, nil)
	case TGA:
		err = tga.Encode(w, img)
	case GIF:
		if pal == nil {
			return errors.New("render: gif output needs a palette")
		}
		src := Opaque(img)
		dst := image.NewPaletted(src.Rect, pal.ColorPalette())
		draw.Draw(dst, dst.Rect, src, image.Point{}, draw.Src)
		err = gif.Encode(w, dst, &gif.Options{NumColors: 256})
	default:
		return errors.Errorf("render: unknown format %q", f)
	}
	return errors.Wrapf(err, "render: encoding %s", f)
}

// DataURL returns img encoded in format f as a data: URL.
func DataURL(img image.Image, pal *playpal.Palette, f Format) (string, error) {
	buf := &bytes.Buffer{}
	if err := Encode(buf, img, pal, f); err != nil {
		return "", err
	}
	return dataurl.New(buf.Bytes(), f.MIMEType()).String(), nil
}

// Scale returns img enlarged factor times with nearest neighbour sampling,
// which keeps the pixel art crisp. Factors below 2 return img unchanged.
//
// Non-premultiplied images are scaled by copying pixels, so translucent
// pixels keep their exact stored values.
func Scale(img image.Image, factor int) image.Image {
	if factor < 2 {
		return img
	}
	b := img.Bounds()
	if src, ok := img.(*image.NRGBA); ok {
		dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
		for y := 0; y < dst.Rect.Dy(); y++ {
			for x := 0; x < dst.Rect.Dx(); x++ {
				s := src.PixOffset(b.Min.X+x/factor, b.Min.Y+y/factor)
				copy(dst.Pix[dst.PixOffset(x, y):], src.Pix[s:s+4])
			}
		}
		return dst
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Rect, img, b, draw.Src, nil)
	return dst
}

// Opaque returns a copy of img with every pixel's alpha set to 255. For
// non-premultiplied images the colour channels are kept exactly as stored.
func Opaque(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < b.Dy(); y++ {
			s := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:(y+1)*dst.Stride], src.Pix[s:])
		}
	} else {
		draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)
	}
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xFF
	}
	return dst
}

// Swatch draws pal as a 16x16 grid of cells, each cell size pixels wide.
func Swatch(pal *playpal.Palette, size int) *image.RGBA {
	if size < 1 {
		size = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, 16*size, 16*size))
	cp := pal.ColorPalette()
	for i, c := range cp {
		x, y := (i%16)*size, (i/16)*size
		draw.Draw(img, image.Rect(x, y, x+size, y+size), image.NewUniform(c), image.Point{}, draw.Src)
	}
	return img
}
