package render

import (
	"bytes"
	"image"
	"image/gif"
	"image/png"
	"strings"
	"testing"

	"badc0de.net/pkg/go-wadlauncher/playpal"
	"badc0de.net/pkg/go-wadlauncher/ttesting"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	copy(img.Pix, []byte{
		255, 0, 0, 16, 0, 255, 0, 16,
		0, 0, 255, 16, 0, 0, 0, 0,
	})
	return img
}

func testPalette(t *testing.T) *playpal.Palette {
	t.Helper()
	raw := make([]byte, playpal.Size)
	copy(raw, []byte{0, 0, 0, 255, 0, 0, 0, 255, 0, 0, 0, 255})
	pal, ok := playpal.New(raw)
	if !ok {
		t.Fatalf("failed to build palette")
	}
	return pal
}

func TestEncodePNGKeepsAlpha(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Encode(buf, testImage(), nil, PNG); err != nil {
		t.Fatalf("failed to encode: %s", err)
	}
	got, err := png.Decode(buf)
	if err != nil {
		t.Fatalf("failed to decode: %s", err)
	}
	nrgba, ok := got.(*image.NRGBA)
	if !ok {
		t.Fatalf("got %T; want *image.NRGBA", got)
	}
	ttesting.AssertEqualBytes(t, "pixels", nrgba.Pix, testImage().Pix)
}

func TestEncodeGIF(t *testing.T) {
	pal := testPalette(t)
	buf := &bytes.Buffer{}
	if err := Encode(buf, testImage(), pal, GIF); err != nil {
		t.Fatalf("failed to encode: %s", err)
	}
	got, err := gif.Decode(buf)
	if err != nil {
		t.Fatalf("failed to decode: %s", err)
	}
	p, ok := got.(*image.Paletted)
	if !ok {
		t.Fatalf("got %T; want *image.Paletted", got)
	}
	ttesting.AssertEqualBytes(t, "indices", p.Pix, []byte{1, 2, 3, 0})

	if err := Encode(buf, testImage(), nil, GIF); err == nil {
		t.Errorf("gif without palette: got no error")
	}
}

func TestEncodeOtherFormats(t *testing.T) {
	for _, f := range []Format{WebP, TGA} {
		t.Run(string(f), func(t *testing.T) {
			buf := &bytes.Buffer{}
			if err := Encode(buf, testImage(), nil, f); err != nil {
				t.Fatalf("failed to encode: %s", err)
			}
			if buf.Len() == 0 {
				t.Errorf("got empty output")
			}
		})
	}
	if err := Encode(&bytes.Buffer{}, testImage(), nil, Format("bmp")); err == nil {
		t.Errorf("unknown format: got no error")
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"png", ".webp", "tga", ".gif"} {
		if _, err := ParseFormat(s); err != nil {
			t.Errorf("ParseFormat(%q): %s", s, err)
		}
	}
	if _, err := ParseFormat("jpeg"); err == nil {
		t.Errorf("ParseFormat(jpeg): got no error")
	}
}

func TestDataURL(t *testing.T) {
	u, err := DataURL(testImage(), nil, PNG)
	if err != nil {
		t.Fatalf("DataURL: %s", err)
	}
	if !strings.HasPrefix(u, "data:image/png") {
		t.Errorf("got %.30q...; want data:image/png prefix", u)
	}
}

func TestScale(t *testing.T) {
	img := testImage()
	if got := Scale(img, 1); got != image.Image(img) {
		t.Errorf("factor 1 should return the image unchanged")
	}
	scaled, ok := Scale(img, 3).(*image.NRGBA)
	if !ok {
		t.Fatalf("scaling an NRGBA should give an NRGBA")
	}
	ttesting.AssertEqualInt(t, "width", scaled.Rect.Dx(), 6)
	ttesting.AssertEqualInt(t, "height", scaled.Rect.Dy(), 6)
	o := scaled.PixOffset(5, 2)
	ttesting.AssertEqualBytes(t, "top right block", scaled.Pix[o:o+4], []byte{0, 255, 0, 16})
	o = scaled.PixOffset(0, 5)
	ttesting.AssertEqualBytes(t, "bottom left block", scaled.Pix[o:o+4], []byte{0, 0, 255, 16})
}

func TestOpaque(t *testing.T) {
	got := Opaque(testImage())
	ttesting.AssertEqualBytes(t, "pixels", got.Pix, []byte{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 0, 0, 0, 255,
	})
}

func TestSwatch(t *testing.T) {
	img := Swatch(testPalette(t), 2)
	ttesting.AssertEqualInt(t, "width", img.Rect.Dx(), 32)
	o := img.PixOffset(3, 1)
	ttesting.AssertEqualBytes(t, "cell 1", img.Pix[o:o+4], []byte{255, 0, 0, 255})
}
