// Package wad implements read access to individual lumps in WAD archives,
// the container format of the Doom engine family.
//
// Only named lookup is offered. An IWAD is the base content archive; a PWAD
// is a smaller archive layered on top of it, and callers search PWADs first.
// Anything that can hand out lump bytes by name satisfies Archive, which
// lets higher level code work equally over files on disk and in-memory
// fixtures.
package wad
