package wad

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// NamedLump is one lump to be written by Encode.
type NamedLump struct {
	Name string
	Data []byte
}

// Encode writes a WAD of the passed kind holding lumps in order. Lump data
// directly follows the header; the directory comes last.
func Encode(w io.Writer, kind Kind, lumps []NamedLump) error {
	if kind != IWAD && kind != PWAD {
		return errors.Errorf("wad: cannot encode kind %q", kind)
	}

	var body bytes.Buffer
	entries := make([]dirEntry, len(lumps))
	for i, l := range lumps {
		if len(l.Name) > nameLength {
			return errors.Errorf("wad: lump name %q longer than %d bytes", l.Name, nameLength)
		}
		entries[i].Filepos = int32(headerSize + body.Len())
		entries[i].Size = int32(len(l.Data))
		copy(entries[i].Name[:], NormalizeName(l.Name))
		body.Write(l.Data)
	}

	h := header{
		NumLumps:     int32(len(lumps)),
		InfoTableOfs: int32(headerSize + body.Len()),
	}
	copy(h.Magic[:], kind)

	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return errors.Wrap(err, "wad: writing header")
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		return errors.Wrap(err, "wad: writing lumps")
	}
	if err := binary.Write(w, binary.LittleEndian, entries); err != nil {
		return errors.Wrap(err, "wad: writing directory")
	}
	return nil
}
