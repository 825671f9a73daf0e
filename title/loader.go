package title

import (
	"image"
	"io"

	"github.com/golang/glog"

	"badc0de.net/pkg/go-wadlauncher/playpal"
	"badc0de.net/pkg/go-wadlauncher/wad"
)

// Opener opens the archive at path.
type Opener func(path string) (wad.Archive, error)

// OpenFile opens path with wad.Open.
func OpenFile(path string) (wad.Archive, error) {
	f, err := wad.Open(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Loader loads title screens from archive paths. An empty path means the
// archive is absent. The zero value opens files with OpenFile.
type Loader struct {
	Open Opener
}

var defaultLoader = &Loader{}

// Load decodes the title screen of base as overridden by override, using
// the default Loader.
func Load(override, base string) (*image.NRGBA, bool) {
	return defaultLoader.Load(override, base)
}

// ExtractPalette returns the palette of override, or of base if override
// has none, using the default Loader.
func ExtractPalette(override, base string) (*playpal.Palette, bool) {
	return defaultLoader.ExtractPalette(override, base)
}

// ResolveLump returns the title lump Load would decode, using the default
// Loader.
func ResolveLump(override, base string) (Lump, bool) {
	return defaultLoader.ResolveLump(override, base)
}

// Load decodes the title screen of base as overridden by override. Archives
// that fail to open are skipped.
func (l *Loader) Load(override, base string) (*image.NRGBA, bool) {
	s, ok := l.LoadScreen(override, base)
	return s.Image, ok
}

// LoadScreen is Load, also returning the palette and lump used.
func (l *Loader) LoadScreen(override, base string) (Screen, bool) {
	archives, done := l.openAll(override, base)
	defer done()
	return LoadScreen(archives...)
}

// ExtractPalette returns the first palette of override then base.
func (l *Loader) ExtractPalette(override, base string) (*playpal.Palette, bool) {
	archives, done := l.openAll(override, base)
	defer done()
	return playpal.Extract(archives...)
}

// ResolveLump returns the first title lump of override then base.
func (l *Loader) ResolveLump(override, base string) (Lump, bool) {
	archives, done := l.openAll(override, base)
	defer done()
	return Resolve(archives...)
}

// Extract returns the palette and title lumps that Load would use, so they
// can be written out on their own. The palette is trimmed to one block.
func (l *Loader) Extract(override, base string) ([]wad.NamedLump, bool) {
	s, ok := l.LoadScreen(override, base)
	if !ok {
		return nil, false
	}
	return []wad.NamedLump{
		{Name: playpal.LumpName, Data: s.Palette.Bytes()},
		{Name: s.Lump.Name, Data: s.Lump.Data},
	}, true
}

// openAll opens override then base. The returned slice always has two
// entries; absent or unopenable archives are nil.
func (l *Loader) openAll(override, base string) ([]wad.Archive, func()) {
	open := l.Open
	if open == nil {
		open = OpenFile
	}

	archives := make([]wad.Archive, 2)
	for i, path := range []string{override, base} {
		if path == "" {
			continue
		}
		a, err := open(path)
		if err != nil {
			glog.V(1).Infof("title: skipping %q: %v", path, err)
			continue
		}
		archives[i] = a
	}

	return archives, func() {
		for _, a := range archives {
			if c, ok := a.(io.Closer); ok {
				c.Close()
			}
		}
	}
}
