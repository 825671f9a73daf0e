// Package pic decodes the title screen picture encodings of the Doom engine
// family into non-premultiplied RGBA images.
//
// Two encodings are supported. The patch format is column major: a table of
// column offsets, each pointing at a list of posts (vertical runs of palette
// indices). The raw format is a headerless 320x200 block of row major
// palette indices, used by the TITLE and HTITLE lumps of later games.
//
// Every pixel a decoder writes carries alpha 16, matching how the launcher
// composites the title screen; pixels no post covers stay fully transparent.
package pic
