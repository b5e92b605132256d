package pbrgen

import (
	"archive/zip"
	"fmt"
	"io"
)

// MapSet holds the seven raw pixmaps produced by one synthesis call,
// before encoding. Preview renderers consume this form directly and skip
// serialization.
type MapSet struct {
	Albedo       *Pixmap
	Normal       *Pixmap
	Roughness    *Pixmap
	Metallic     *Pixmap
	Height       *Pixmap
	Displacement *Pixmap
	AO           *Pixmap
}

// TextureSet holds the seven encoded texture maps produced atomically by
// one synthesis call. It is a plain return value with no lifecycle of its
// own.
type TextureSet struct {
	Albedo       []byte
	Normal       []byte
	Roughness    []byte
	Metallic     []byte
	Height       []byte
	Displacement []byte
	AO           []byte

	// AlbedoFormat and DataFormat record how the streams were encoded.
	AlbedoFormat Format
	DataFormat   Format
}

// Entry is one named encoded map of a TextureSet.
type Entry struct {
	Name   string
	Format Format
	Data   []byte
}

// Entries returns the maps in pipeline order with their canonical names.
func (s *TextureSet) Entries() []Entry {
	return []Entry{
		{"albedo", s.AlbedoFormat, s.Albedo},
		{"normal", s.DataFormat, s.Normal},
		{"roughness", s.DataFormat, s.Roughness},
		{"metallic", s.DataFormat, s.Metallic},
		{"height", s.DataFormat, s.Height},
		{"displacement", s.DataFormat, s.Displacement},
		{"ao", s.DataFormat, s.AO},
	}
}

// WriteArchive writes the set as a zip archive with one file per map,
// named "<base>_<map><ext>".
func (s *TextureSet) WriteArchive(w io.Writer, base string) error {
	zw := zip.NewWriter(w)
	for _, e := range s.Entries() {
		f, err := zw.Create(base + "_" + e.Name + e.Format.Ext())
		if err != nil {
			return fmt.Errorf("pbrgen: archive %s: %w", e.Name, err)
		}
		if _, err := f.Write(e.Data); err != nil {
			return fmt.Errorf("pbrgen: archive %s: %w", e.Name, err)
		}
	}
	return zw.Close()
}
