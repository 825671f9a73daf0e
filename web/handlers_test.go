package web

import (
	"bytes"
	"encoding/binary"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"

	"badc0de.net/pkg/go-wadlauncher/ttesting"
	"badc0de.net/pkg/go-wadlauncher/wad"
)

// writeIWAD writes an IWAD with a palette and a 1x1 TITLEPIC of index 1.
func writeIWAD(t *testing.T) string {
	t.Helper()
	pal := make([]byte, 768)
	pal[3] = 255

	// Width 1 and height 1 read as column 0's offset: 0x00010001.
	titlepic := make([]byte, 0x00010001+6)
	binary.LittleEndian.PutUint16(titlepic[0:], 1)
	binary.LittleEndian.PutUint16(titlepic[2:], 1)
	copy(titlepic[0x00010001:], []byte{0, 1, 0, 1, 0, 0xFF})

	var buf bytes.Buffer
	if err := wad.Encode(&buf, wad.IWAD, []wad.NamedLump{
		{Name: "PLAYPAL", Data: pal},
		{Name: "TITLEPIC", Data: titlepic},
	}); err != nil {
		t.Fatalf("failed to encode: %s", err)
	}
	path := filepath.Join(t.TempDir(), "doom2.wad")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("failed to write: %s", err)
	}
	return path
}

func serve(h *Handler, url string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	h.RegisterRoutes(r)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestTitleHandler(t *testing.T) {
	h := NewHandler(writeIWAD(t), "")

	rec := serve(h, "/title.png")
	ttesting.AssertEqualInt(t, "status", rec.Code, http.StatusOK)
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("got content type %q; want image/png", ct)
	}
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("failed to decode response: %s", err)
	}
	// RGBA() is premultiplied: red 255 at alpha 16 reads back as 16.
	r, g, b, a := img.At(0, 0).RGBA()
	if r>>8 != 16 || g != 0 || b != 0 || a>>8 != 16 {
		t.Errorf("got %d %d %d %d; want 16 0 0 16 (premultiplied)", r>>8, g>>8, b>>8, a>>8)
	}

	rec = serve(h, "/title.png?scale=3&opaque=1")
	ttesting.AssertEqualInt(t, "scaled status", rec.Code, http.StatusOK)
	img, err = png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("failed to decode scaled response: %s", err)
	}
	ttesting.AssertEqualInt(t, "scaled width", img.Bounds().Dx(), 3)
	if _, _, _, a := img.At(2, 2).RGBA(); a>>8 != 0xFF {
		t.Errorf("opaque pixel has alpha %d", a>>8)
	}

	for _, ext := range []string{"webp", "tga", "gif"} {
		rec = serve(h, "/title."+ext)
		ttesting.AssertEqualInt(t, ext+" status", rec.Code, http.StatusOK)
	}

	ttesting.AssertEqualInt(t, "bad scale", serve(h, "/title.png?scale=0").Code, http.StatusBadRequest)
	ttesting.AssertEqualInt(t, "huge scale", serve(h, "/title.png?scale=100").Code, http.StatusBadRequest)
	ttesting.AssertEqualInt(t, "unrouted format", serve(h, "/title.bmp").Code, http.StatusNotFound)
}

func TestPaletteHandler(t *testing.T) {
	rec := serve(NewHandler(writeIWAD(t), ""), "/palette.png")
	ttesting.AssertEqualInt(t, "status", rec.Code, http.StatusOK)
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("failed to decode response: %s", err)
	}
	ttesting.AssertEqualInt(t, "width", img.Bounds().Dx(), 256)
}

func TestMissingArchives(t *testing.T) {
	h := NewHandler(filepath.Join(t.TempDir(), "missing.wad"), "")
	ttesting.AssertEqualInt(t, "title", serve(h, "/title.png").Code, http.StatusNotFound)
	ttesting.AssertEqualInt(t, "palette", serve(h, "/palette.png").Code, http.StatusNotFound)
}
