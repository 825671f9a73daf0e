package wad

// This file contains code directly related to reading the WAD container
// format: a 12-byte header, the lump data, and a directory of 16-byte
// entries describing each lump.

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// Archive is anything that can return the raw bytes of a lump by name.
//
// Implementations apply their own name encoding; the lookup reports false
// when there is no such lump or it cannot be read.
type Archive interface {
	Lump(name string) ([]byte, bool)
}

// Kind is the four byte magic at the start of a WAD.
type Kind string

const (
	IWAD Kind = "IWAD" // Base content archive shipped with a game.
	PWAD Kind = "PWAD" // Patch archive loaded on top of an IWAD.
)

const (
	headerSize   = 12
	dirEntrySize = 16
	nameLength   = 8
)

type header struct {
	Magic        [4]byte
	NumLumps     int32
	InfoTableOfs int32
}

type dirEntry struct {
	Filepos int32
	Size    int32
	Name    [nameLength]byte
}

// LumpInfo describes where a lump is stored.
type LumpInfo struct {
	Name    string
	Filepos int64
	Size    int64
}

// File is a WAD archive whose directory has been read into memory. Lump data
// is read on demand.
type File struct {
	Kind Kind

	r      io.ReaderAt
	closer io.Closer
	size   int64

	lumps []LumpInfo
	index map[string]int
}

// Open opens the WAD at the passed path and reads its directory.
//
// Paths ending in ".zst" are decompressed into memory first.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "wad: opening %q", path)
	}

	if strings.HasSuffix(strings.ToLower(path), ".zst") {
		defer f.Close()
		data, err := decompress(f)
		if err != nil {
			return nil, errors.Wrapf(err, "wad: decompressing %q", path)
		}
		w, err := NewFile(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, errors.Wrapf(err, "wad: reading %q", path)
		}
		return w, nil
	}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "wad: stat %q", path)
	}
	w, err := NewFile(f, st.Size())
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "wad: reading %q", path)
	}
	w.closer = f
	glog.V(2).Infof("wad.Open(%q): %s with %d lumps", path, w.Kind, len(w.lumps))
	return w, nil
}

func decompress(r io.Reader) ([]byte, error) {
	compressed, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(compressed, nil)
}

// NewFile reads the header and directory of a WAD of the given size.
func NewFile(r io.ReaderAt, size int64) (*File, error) {
	var h header
	if err := binary.Read(io.NewSectionReader(r, 0, size), binary.LittleEndian, &h); err != nil {
		return nil, errors.Wrap(err, "wad: could not read header")
	}

	kind := Kind(h.Magic[:])
	if kind != IWAD && kind != PWAD {
		return nil, errors.Errorf("wad: bad magic; got %q, want %q or %q", h.Magic[:], IWAD, PWAD)
	}
	if h.NumLumps < 0 || h.InfoTableOfs < 0 {
		return nil, errors.Errorf("wad: negative directory; got %d lumps at %d", h.NumLumps, h.InfoTableOfs)
	}
	dirEnd := int64(h.InfoTableOfs) + int64(h.NumLumps)*dirEntrySize
	if dirEnd > size {
		return nil, errors.Errorf("wad: directory ends at %d, past end of file at %d", dirEnd, size)
	}

	entries := make([]dirEntry, h.NumLumps)
	dir := io.NewSectionReader(r, int64(h.InfoTableOfs), dirEnd-int64(h.InfoTableOfs))
	if err := binary.Read(dir, binary.LittleEndian, entries); err != nil {
		return nil, errors.Wrap(err, "wad: could not read directory")
	}

	w := &File{
		Kind:  kind,
		r:     r,
		size:  size,
		lumps: make([]LumpInfo, len(entries)),
		index: make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		info := LumpInfo{
			Name:    storedName(e.Name),
			Filepos: int64(e.Filepos),
			Size:    int64(e.Size),
		}
		w.lumps[i] = info
		// Later entries shadow earlier ones, same as the engine's lookup.
		w.index[info.Name] = i
	}
	return w, nil
}

// Lump returns a copy of the named lump's data.
func (w *File) Lump(name string) ([]byte, bool) {
	i, ok := w.index[NormalizeName(name)]
	if !ok {
		return nil, false
	}
	info := w.lumps[i]
	if info.Filepos < 0 || info.Size < 0 || info.Filepos+info.Size > w.size {
		glog.Warningf("wad: lump %q at %d+%d lies outside the archive (size %d)", info.Name, info.Filepos, info.Size, w.size)
		return nil, false
	}
	data := make([]byte, info.Size)
	if _, err := w.r.ReadAt(data, info.Filepos); err != nil && !(err == io.EOF && info.Size == 0) {
		glog.Warningf("wad: reading lump %q: %v", info.Name, err)
		return nil, false
	}
	return data, true
}

// Info returns the directory entry that a lookup of name would use.
func (w *File) Info(name string) (LumpInfo, bool) {
	i, ok := w.index[NormalizeName(name)]
	if !ok {
		return LumpInfo{}, false
	}
	return w.lumps[i], true
}

// NumLumps returns the number of directory entries, duplicates included.
func (w *File) NumLumps() int {
	return len(w.lumps)
}

// Close releases the underlying file, if Open created one.
func (w *File) Close() error {
	if w.closer == nil {
		return nil
	}
	return w.closer.Close()
}

// NormalizeName maps a lookup name onto the directory's name encoding:
// upper case, at most eight bytes.
func NormalizeName(name string) string {
	name = strings.ToUpper(name)
	if len(name) > nameLength {
		name = name[:nameLength]
	}
	return name
}

func storedName(raw [nameLength]byte) string {
	n := bytes.IndexByte(raw[:], 0)
	if n == -1 {
		n = nameLength
	}
	return strings.ToUpper(string(raw[:n]))
}
