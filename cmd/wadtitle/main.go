// Command wadtitle decodes the title screen of an IWAD, optionally
// overridden by a PWAD, and writes it to a file or the terminal.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/common-nighthawk/go-figure"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-wadlauncher/paths"
	"badc0de.net/pkg/go-wadlauncher/render"
	"badc0de.net/pkg/go-wadlauncher/title"
	"badc0de.net/pkg/go-wadlauncher/wad"
)

var (
	filePath    = flag.String("file", "", "path to a PWAD whose lumps override the IWAD's")
	outPath     = flag.String("out", "", "file to write the title screen to")
	format      = flag.String("format", "", "output format: png, webp, tga or gif (default: from -out's extension, else png)")
	scale       = flag.Int("scale", 1, "integer factor to enlarge the image by")
	opaque      = flag.Bool("opaque", false, "whether to force full alpha instead of the title screen's alpha of 16")
	dataURL     = flag.Bool("dataurl", false, "whether to print the encoded image as a data: URL")
	extractPath = flag.String("extract", "", "write a PWAD holding only the palette and title lump to this path")

	iwadPath string
)

func outputFormat() (render.Format, error) {
	if *format != "" {
		return render.ParseFormat(*format)
	}
	if ext := filepath.Ext(*outPath); ext != "" {
		return render.ParseFormat(ext)
	}
	return render.PNG, nil
}

func extract(l *title.Loader) error {
	lumps, ok := l.Extract(*filePath, iwadPath)
	if !ok {
		return errors.New("no decodable title screen to extract")
	}
	buf := &bytes.Buffer{}
	if err := wad.Encode(buf, wad.PWAD, lumps); err != nil {
		return err
	}
	return errors.Wrapf(os.WriteFile(*extractPath, buf.Bytes(), 0644), "writing %q", *extractPath)
}

func writeImage(img image.Image, s title.Screen, f render.Format) error {
	out, err := os.Create(*outPath)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	if err := render.Encode(out, img, s.Palette, f); err != nil {
		out.Close()
		return err
	}
	return errors.Wrap(out.Close(), "closing output")
}

func run() int {
	if iwadPath == "" && *filePath == "" {
		glog.Errorf("no archives given; pass -iwad and/or -file")
		return 2
	}
	f, err := outputFormat()
	if err != nil {
		glog.Errorf("%v", err)
		return 2
	}

	l := &title.Loader{}
	if *extractPath != "" {
		if err := extract(l); err != nil {
			glog.Errorf("extracting title lumps: %v", err)
			return 1
		}
		glog.Infof("wrote %s", *extractPath)
	}

	s, ok := l.LoadScreen(*filePath, iwadPath)
	if !ok {
		if *preview {
			figure.NewFigure("no title", "", true).Print()
		}
		glog.Errorf("no title screen in iwad %q / file %q", iwadPath, *filePath)
		return 1
	}
	glog.Infof("decoded %s (%s): %dx%d", s.Lump.Name, s.Lump.Format, s.Image.Rect.Dx(), s.Image.Rect.Dy())

	var img image.Image = s.Image
	if *opaque {
		img = render.Opaque(img)
	}
	img = render.Scale(img, *scale)

	if *outPath != "" {
		if err := writeImage(img, s, f); err != nil {
			glog.Errorf("writing %q: %v", *outPath, err)
			return 1
		}
	}
	if *dataURL {
		u, err := render.DataURL(img, s.Palette, f)
		if err != nil {
			glog.Errorf("encoding data url: %v", err)
			return 1
		}
		fmt.Println(u)
	}
	if *preview {
		out(img)
	}
	return 0
}

func main() {
	paths.SetupIWADFlag("iwad", &iwadPath)
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	code := run()
	glog.Flush()
	os.Exit(code)
}
