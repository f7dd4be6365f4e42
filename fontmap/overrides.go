package fontmap

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/unicharts/uniscript"
	"golang.org/x/image/font/sfnt"
	"gopkg.in/yaml.v3"
)

// LoadOverrides reads script to family assignments from a YAML mapping:
//
//	Latin: Noto Serif Display
//	Old_Italic: ~
//
// Keys are script names as accepted by [uniscript.ByName]. A null or empty
// family marks the script as unsupported.
func (fr *Resolver) LoadOverrides(r io.Reader) error {
	var m map[string]*string
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("font overrides: %w", err)
	}
	for name, family := range m {
		s, ok := uniscript.ByName(name)
		if !ok {
			tracer().Errorf("font overrides: unknown script %q", name)
			return fmt.Errorf("font overrides: unknown script %q", name)
		}
		f := ""
		if family != nil {
			f = *family
		}
		fr.SetFamily(s, f)
	}
	tracer().Infof("loaded %d font overrides", len(m))
	return nil
}

// FamilyName reads the family name from the 'name' table of a TrueType or
// OpenType font.
func FamilyName(fontdata []byte) (string, error) {
	f, err := sfnt.Parse(fontdata)
	if err != nil {
		return "", fmt.Errorf("font file: %w", err)
	}
	var buf sfnt.Buffer
	family, err := f.Name(&buf, sfnt.NameIDTypographicFamily)
	if err != nil || family == "" {
		family, err = f.Name(&buf, sfnt.NameIDFamily)
	}
	if err != nil {
		return "", fmt.Errorf("font file: %w", err)
	}
	return family, nil
}

// SetFontFile overrides the family for script s with the family of a font
// file.
func (fr *Resolver) SetFontFile(s uniscript.Script, fontdata []byte) error {
	family, err := FamilyName(fontdata)
	if err != nil {
		return err
	}
	fr.SetFamily(s, family)
	return nil
}
