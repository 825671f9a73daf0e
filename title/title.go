// Package title finds and decodes the title screen of a base archive
// (IWAD) optionally overridden by a patch archive (PWAD).
//
// The override archive always has priority. Within one archive TITLEPIC is
// preferred over the legacy TITLE and HTITLE lumps, but an override's legacy
// lump still beats a base archive's TITLEPIC.
package title

import (
	"image"

	"github.com/golang/glog"

	"badc0de.net/pkg/go-wadlauncher/pic"
	"badc0de.net/pkg/go-wadlauncher/playpal"
	"badc0de.net/pkg/go-wadlauncher/wad"
)

// Lump is a title picture lump and the format its name implies.
type Lump struct {
	Name   string
	Format pic.Format
	Data   []byte
}

// lumpNames are probed in order within each archive.
var lumpNames = []struct {
	name   string
	format pic.Format
}{
	{"TITLEPIC", pic.FormatPatch},
	{"TITLE", pic.FormatRaw},
	{"HTITLE", pic.FormatRawPacked},
}

// Resolve returns the first title lump found, searching archives in order
// and, within each archive, lump names in priority order. Nil archives are
// skipped.
func Resolve(archives ...wad.Archive) (Lump, bool) {
	for i, a := range archives {
		if a == nil {
			continue
		}
		for _, n := range lumpNames {
			if data, ok := a.Lump(n.name); ok {
				glog.V(1).Infof("title: using %s (%s) from candidate %d", n.name, n.format, i)
				return Lump{Name: n.name, Format: n.format, Data: data}, true
			}
		}
		glog.V(1).Infof("title: candidate %d has no title lump", i)
	}
	return Lump{}, false
}

// Screen is a decoded title screen with the palette and lump it came from.
type Screen struct {
	Image   *image.NRGBA
	Palette *playpal.Palette
	Lump    Lump
}

// LoadArchives decodes the title picture of archives, searched in order.
// It reports false if no palette or no decodable title lump is found.
func LoadArchives(archives ...wad.Archive) (*image.NRGBA, bool) {
	s, ok := LoadScreen(archives...)
	return s.Image, ok
}

// LoadScreen is LoadArchives, also returning the palette and lump used.
// On failure the palette is still set if one was found.
func LoadScreen(archives ...wad.Archive) (Screen, bool) {
	var s Screen
	pal, ok := playpal.Extract(archives...)
	if !ok {
		return s, false
	}
	s.Palette = pal
	lump, ok := Resolve(archives...)
	if !ok {
		return s, false
	}
	s.Lump = lump
	img, ok := pic.Decode(lump.Format, lump.Data, pal)
	if !ok {
		glog.V(1).Infof("title: could not decode %s (%d bytes)", lump.Name, len(lump.Data))
		return s, false
	}
	s.Image = img
	return s, true
}
