package main

import (
	"flag"
	"image"
	"os"

	"github.com/golang/glog"
	"github.com/nfnt/resize"

	"badc0de.net/pkg/go-wadlauncher/imageprint"
)

var (
	preview  = flag.Bool("print", false, "whether to preview the title screen on the terminal")
	col      = flag.Bool("col", true, "whether to use colour at all")
	col256   = flag.Bool("col256", false, "whether to use 256 col instead of 24 bit")
	iterm    = flag.Bool("iterm", false, "whether to print with iterm escape code instead of 24 bit")
	rasterm  = flag.Bool("rasterm", false, "whether to print with kitty, iterm or sixel graphics")
	blanks   = flag.Bool("blanks", true, "whether to just use colored blanks instead of some bad ascii art")
	downsize = flag.Bool("downsize", true, "whether to shrink the preview to fit the terminal")
)

func out(img image.Image) {
	if *downsize {
		termSize, err := GetTermSize()
		if err == nil {
			if (termSize.WSXPixel != 0 && termSize.WSYPixel != 0) && (*rasterm || *iterm) {
				// Pixel graphics can use the window's pixel size.
				img = resize.Thumbnail(termSize.WSXPixel/2, termSize.WSYPixel/2, img, resize.Lanczos3)
			} else {
				// Each pixel takes two columns.
				img = resize.Thumbnail(termSize.WSCol/2, termSize.WSRow, img, resize.Lanczos3)
			}
		}
	}

	o := imageprint.Options{Blanks: *blanks, Name: "title.png"}
	switch {
	case *rasterm:
		o.Mode = imageprint.RasTerm
	case !*col:
		o.Mode = imageprint.NoColor
	case *iterm:
		o.Mode = imageprint.ITerm
	case *col256:
		o.Mode = imageprint.Color256
	default:
		o.Mode = imageprint.TrueColor
	}
	if err := imageprint.Print(os.Stdout, img, o); err != nil {
		glog.Errorf("printing preview: %v", err)
	}
}
