// Package imageprint previews title screens on a terminal.
//
// Translucent pixels are shown with their stored colour; only fully
// transparent pixels are left blank, so a title decoded with its low
// compositing alpha is still legible.
package imageprint

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	ic "image/color"
	"image/png"
	"io"

	"github.com/gookit/color"
)

// Mode selects how pixels are written to the terminal.
type Mode int

const (
	TrueColor Mode = iota // 24 bit background colour escapes.
	Color256              // gookit/color escapes, downgraded to what the terminal supports.
	NoColor               // Plain characters only; use with Blanks false.
	ITerm                 // iTerm2 inline image escape.
	RasTerm               // Kitty, iTerm2 or sixel, whichever the terminal supports.
)

// Options control Print.
type Options struct {
	Mode Mode
	// Blanks prints coloured spaces instead of an ascii brightness ramp.
	Blanks bool
	// Name is reported to terminals that label inline images.
	Name string
}

// Print writes img to w as described by o.
func Print(w io.Writer, img image.Image, o Options) error {
	switch o.Mode {
	case ITerm:
		return printITerm(w, img, o.Name)
	case RasTerm:
		return printRasTerm(w, img)
	}

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			io.WriteString(w, cell(img.At(x, y), o))
		}
		if o.Mode != NoColor {
			io.WriteString(w, "\x1b[0m")
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// cell renders one pixel as two characters, roughly square on most fonts.
func cell(col ic.Color, o Options) string {
	c := ic.NRGBAModel.Convert(col).(ic.NRGBA)
	if c.A == 0 {
		if o.Mode == NoColor {
			return "  "
		}
		return "\x1b[0m  "
	}

	glyph := "  "
	if !o.Blanks {
		switch a := (int(c.R) + int(c.G) + int(c.B)) / 3; {
		case a < 32:
			glyph = ".."
		case a < 64:
			glyph = "--"
		case a < 128:
			glyph = "=="
		default:
			glyph = "##"
		}
	}

	switch o.Mode {
	case NoColor:
		return glyph
	case Color256:
		return color.RGB(c.R, c.G, c.B, true).Sprint(glyph)
	default:
		return fmt.Sprintf("\x1b[48;2;%d;%d;%dm%s\x1b[0m", c.R, c.G, c.B, glyph)
	}
}

// printITerm draws an image using iTerm2's escape sequences.
//
// https://www.iterm2.com/documentation-images.html
func printITerm(w io.Writer, img image.Image, fn string) error {
	if !isTermItermWez() {
		return fmt.Errorf("imageprint: terminal does not support iTerm2 images")
	}
	name := base64.StdEncoding.EncodeToString([]byte(fn))
	b := &bytes.Buffer{}
	bEnc := base64.NewEncoder(base64.StdEncoding, b)
	if err := png.Encode(bEnc, img); err != nil {
		return err
	}
	bEnc.Close()
	_, err := fmt.Fprintf(w, "\n\033]1337;File=name=%s;inline=1;size=%d;width=%dpx;height=%dpx:%s\a\n", name, b.Len(), img.Bounds().Dx(), img.Bounds().Dy(), b.String())
	return err
}
