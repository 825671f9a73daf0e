package playpal

import (
	"testing"

	"github.com/bradfitz/iter"

	"badc0de.net/pkg/go-wadlauncher/ttesting"
	"badc0de.net/pkg/go-wadlauncher/wad"
)

// gradient returns n bytes where byte i is i*step.
func gradient(n int, step byte) []byte {
	b := make([]byte, n)
	for i := range iter.N(n) {
		b[i] = byte(i) * step
	}
	return b
}

func TestNew(t *testing.T) {
	// Two full palettes; only the first must be kept.
	p, ok := New(gradient(2*Size, 1))
	if !ok {
		t.Fatalf("New failed on a %d byte lump", 2*Size)
	}
	ttesting.AssertEqualBytes(t, "first 768 bytes kept", p.Bytes(), gradient(Size, 1))

	r, g, b := p.RGB(1)
	ttesting.AssertEqualBytes(t, "index 1", []byte{r, g, b}, []byte{3, 4, 5})

	r, g, b = p.RGB(255)
	ttesting.AssertEqualBytes(t, "index 255", []byte{r, g, b}, []byte{253, 254, 255}) // 765..767 wrapped to a byte

	if _, ok := New(make([]byte, Size-1)); ok {
		t.Errorf("New accepted a %d byte lump", Size-1)
	}
}

func TestBytesIsACopy(t *testing.T) {
	p, _ := New(make([]byte, Size))
	b := p.Bytes()
	b[0] = 42
	if r, _, _ := p.RGB(0); r != 0 {
		t.Errorf("modifying Bytes() changed the palette")
	}
}

func TestColorPalette(t *testing.T) {
	p, _ := New(gradient(Size, 1))
	cp := p.ColorPalette()
	ttesting.AssertEqualInt(t, "length", len(cp), 256)
	r, g, b, a := cp[2].RGBA()
	if r>>8 != 6 || g>>8 != 7 || b>>8 != 8 || a>>8 != 0xFF {
		t.Errorf("got %d %d %d %d; want 6 7 8 255", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestExtract(t *testing.T) {
	override := wad.Memory{LumpName: gradient(Size, 2)}
	base := wad.Memory{LumpName: gradient(Size, 1)}
	short := wad.Memory{LumpName: make([]byte, 10)}
	empty := wad.Memory{}

	for _, tc := range []struct {
		name     string
		archives []wad.Archive
		want     []byte
	}{
		{"override wins", []wad.Archive{override, base}, gradient(Size, 2)},
		{"nil override", []wad.Archive{nil, base}, gradient(Size, 1)},
		{"override without palette", []wad.Archive{empty, base}, gradient(Size, 1)},
		{"short palette skipped", []wad.Archive{short, base}, gradient(Size, 1)},
		{"none", []wad.Archive{empty, nil}, nil},
		{"no archives", nil, nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p, ok := Extract(tc.archives...)
			if tc.want == nil {
				if ok {
					t.Fatalf("got a palette; want none")
				}
				return
			}
			if !ok {
				t.Fatalf("got no palette")
			}
			ttesting.AssertEqualBytes(t, "palette", p.Bytes(), tc.want)
		})
	}
}
