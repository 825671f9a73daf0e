package ttesting

import (
	"bytes"
	"image"
	"testing"
)

func AssertEqualInt(t *testing.T, name string, got, want int) {
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d; want %d", got, want)
		}
	})
}

func AssertEqualBytes(t *testing.T, name string, got, want []byte) {
	t.Run(name, func(t *testing.T) {
		if !bytes.Equal(got, want) {
			if len(got) > 32 || len(want) > 32 {
				t.Errorf("got %d bytes; want %d bytes (contents differ)", len(got), len(want))
				return
			}
			t.Errorf("got %v; want %v", got, want)
		}
	})
}

// AssertPixels checks an image's size and that its pixel buffer is tightly
// packed, then compares the buffer against want.
func AssertPixels(t *testing.T, name string, img *image.NRGBA, wantW, wantH int, want []byte) {
	t.Run(name, func(t *testing.T) {
		if img == nil {
			t.Fatalf("got nil image; want %dx%d", wantW, wantH)
		}
		if sz := img.Bounds().Size(); sz.X != wantW || sz.Y != wantH {
			t.Fatalf("got %dx%d; want %dx%d", sz.X, sz.Y, wantW, wantH)
		}
		if img.Stride != wantW*4 || len(img.Pix) != wantW*wantH*4 {
			t.Fatalf("got stride %d and %d bytes; want %d and %d", img.Stride, len(img.Pix), wantW*4, wantW*wantH*4)
		}
		if want != nil && !bytes.Equal(img.Pix, want) {
			for i := range want {
				if img.Pix[i] != want[i] {
					t.Errorf("pixel byte %d (x=%d y=%d channel %d): got %d; want %d",
						i, (i/4)%wantW, (i/4)/wantW, i%4, img.Pix[i], want[i])
					return
				}
			}
		}
	})
}
