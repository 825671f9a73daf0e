package wad

// Memory is an Archive backed by a map of lump names to data.
//
// Keys are matched after NormalizeName, so Memory{"titlepic": b} and a
// lookup of "TITLEPIC" agree.
type Memory map[string][]byte

// Lump returns the named lump held in m.
func (m Memory) Lump(name string) ([]byte, bool) {
	want := NormalizeName(name)
	if data, ok := m[want]; ok {
		return data, true
	}
	for k, data := range m {
		if NormalizeName(k) == want {
			return data, true
		}
	}
	return nil, false
}
