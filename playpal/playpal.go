// Package playpal reads the PLAYPAL lump: the 256 colour palette that maps
// palette indices in pictures to RGB.
//
// PLAYPAL usually holds 14 palettes back to back (damage and pickup tints);
// only the first one is used here.
package playpal

import (
	"image/color"

	"github.com/golang/glog"

	"badc0de.net/pkg/go-wadlauncher/wad"
)

const (
	// LumpName is the name of the palette lump.
	LumpName = "PLAYPAL"

	// Size is the length in bytes of one palette: 256 RGB triples.
	Size = 256 * 3
)

// Palette is one 256 colour RGB palette. It is immutable once built.
type Palette struct {
	rgb [Size]byte
}

// New builds a palette from the first Size bytes of data. It reports false
// if data is shorter than that.
func New(data []byte) (*Palette, bool) {
	if len(data) < Size {
		return nil, false
	}
	p := &Palette{}
	copy(p.rgb[:], data[:Size])
	return p, true
}

// RGB returns the colour at index i.
func (p *Palette) RGB(i uint8) (r, g, b uint8) {
	o := int(i) * 3
	return p.rgb[o], p.rgb[o+1], p.rgb[o+2]
}

// Bytes returns a copy of the raw 768 palette bytes.
func (p *Palette) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, p.rgb[:])
	return b
}

// ColorPalette returns the palette as fully opaque colours, suitable for
// paletted output such as GIF.
func (p *Palette) ColorPalette() color.Palette {
	cp := make(color.Palette, 256)
	for i := range cp {
		r, g, b := p.RGB(uint8(i))
		cp[i] = color.RGBA{R: r, G: g, B: b, A: 0xFF}
	}
	return cp
}

// Extract returns the first palette found in archives, searched in order.
// Nil archives are skipped, as are archives whose PLAYPAL is too short.
func Extract(archives ...wad.Archive) (*Palette, bool) {
	for i, a := range archives {
		if a == nil {
			continue
		}
		data, ok := a.Lump(LumpName)
		if !ok {
			glog.V(1).Infof("playpal: candidate %d has no %s", i, LumpName)
			continue
		}
		p, ok := New(data)
		if !ok {
			glog.Warningf("playpal: candidate %d has a %d byte %s, want at least %d", i, len(data), LumpName, Size)
			continue
		}
		return p, true
	}
	return nil, false
}
