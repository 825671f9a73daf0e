package title

import (
	"image"
)

// Reloader holds the title screen for the archives a caller has selected
// and reloads it when the selection changes.
//
// It is not safe for concurrent use.
type Reloader struct {
	Loader *Loader

	base, override string
	img            *image.NRGBA
}

// Update reloads the title screen if base or override differ from the last
// call, or if no image is held. Nothing is reloaded while both are empty.
//
// It returns the current image, nil if there is none, and whether a reload
// was attempted.
func (r *Reloader) Update(base, override string) (*image.NRGBA, bool) {
	if base == "" && override == "" {
		return r.img, false
	}
	if r.img != nil && base == r.base && override == r.override {
		return r.img, false
	}

	l := r.Loader
	if l == nil {
		l = defaultLoader
	}
	r.img = nil
	if img, ok := l.Load(override, base); ok {
		r.img = img
	}
	r.base, r.override = base, override
	return r.img, true
}

// Image returns the image loaded by the last reload, or nil.
func (r *Reloader) Image() *image.NRGBA {
	return r.img
}
