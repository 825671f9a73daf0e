//go:build !windows

package imageprint

import (
	"fmt"
	"image"
	"io"

	"github.com/BourgeoisBear/rasterm"
	"github.com/andybons/gogif"
)

func isTermItermWez() bool {
	return rasterm.IsTermItermWez()
}

// printRasTerm draws an image using the RasTerm library.
//
// This enables drawing in Kitty and sixel capable terminals.
func printRasTerm(w io.Writer, img image.Image) error {
	if rasterm.IsTermKitty() {
		if err := (rasterm.Settings{}).KittyWriteImage(w, img); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "\n")
		return err
	}
	if rasterm.IsTermItermWez() {
		if err := (rasterm.Settings{}).ItermWriteImage(w, img); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "\n")
		return err
	}
	if capable, err := rasterm.IsSixelCapable(); capable && err == nil {
		palettedImage := image.NewPaletted(img.Bounds(), nil)
		quantizer := gogif.MedianCutQuantizer{NumColor: 255}
		quantizer.Quantize(palettedImage, img.Bounds(), img, image.Point{})

		if err := (rasterm.Settings{}).SixelWriteImage(w, palettedImage); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "\n")
		return err
	}
	return fmt.Errorf("imageprint: terminal supports neither kitty, iterm nor sixel images")
}
