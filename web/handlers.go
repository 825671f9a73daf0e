// Package web serves the title screen and palette of a pair of archives
// over HTTP.
package web

import (
	"image"
	"net/http"
	"strconv"

	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"golang.org/x/sync/singleflight"

	"badc0de.net/pkg/go-wadlauncher/render"
	"badc0de.net/pkg/go-wadlauncher/title"
)

const maxScale = 8

type Handler struct {
	loader *title.Loader
	group  singleflight.Group // keyed by the archive path pair

	basePath     string
	overridePath string
}

// NewHandler constructs a web handler for the title screen of basePath as
// overridden by overridePath. Either may be empty.
func NewHandler(basePath, overridePath string) *Handler {
	return &Handler{
		loader:       &title.Loader{},
		basePath:     basePath,
		overridePath: overridePath,
	}
}

// load decodes the title screen. Concurrent requests share one load.
func (h *Handler) load() (title.Screen, bool) {
	v, _, _ := h.group.Do(h.overridePath+"\x00"+h.basePath, func() (interface{}, error) {
		s, _ := h.loader.LoadScreen(h.overridePath, h.basePath)
		return s, nil
	})
	s := v.(title.Screen)
	return s, s.Image != nil
}

func (h *Handler) titleHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	f, err := render.ParseFormat(vars["ext"])
	if err != nil {
		http.Error(w, "unknown image format", http.StatusNotFound)
		return
	}

	scale := 1
	if s := r.URL.Query().Get("scale"); s != "" {
		scale, err = strconv.Atoi(s)
		if err != nil || scale < 1 || scale > maxScale {
			http.Error(w, "scale must be a number between 1 and "+strconv.Itoa(maxScale), http.StatusBadRequest)
			return
		}
	}

	s, ok := h.load()
	if !ok {
		http.Error(w, "no title screen", http.StatusNotFound)
		return
	}

	var img image.Image = s.Image
	if r.URL.Query().Get("opaque") == "1" {
		img = render.Opaque(img)
	}
	img = render.Scale(img, scale)

	w.Header().Set("Content-Type", f.MIMEType())
	w.WriteHeader(http.StatusOK)
	if err := render.Encode(w, img, s.Palette, f); err != nil {
		glog.Errorf("web: writing title: %v", err)
	}
}

func (h *Handler) paletteHandler(w http.ResponseWriter, r *http.Request) {
	s, _ := h.load()
	if s.Palette == nil {
		http.Error(w, "no palette", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", render.PNG.MIMEType())
	w.WriteHeader(http.StatusOK)
	if err := render.Encode(w, render.Swatch(s.Palette, 16), nil, render.PNG); err != nil {
		glog.Errorf("web: writing palette: %v", err)
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/title.{ext:png|webp|tga|gif}", h.titleHandler)
	r.HandleFunc("/palette.png", h.paletteHandler)
}
