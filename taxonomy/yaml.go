package taxonomy

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Load reads a taxonomy from YAML:
//
//	title: Scripts
//	subject: Unicode scripts
//	groups:
//	  - name: Middle Eastern Scripts
//	    entries:
//	      - block: Hebrew
//	        sub_blocks: [Hebrew Presentation Forms]
func Load(r io.Reader) (*Taxonomy, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	t := &Taxonomy{}
	if err := dec.Decode(t); err != nil {
		return nil, fmt.Errorf("taxonomy: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	tracer().Infof("loaded taxonomy %q with %d groups", t.Title, len(t.Groups))
	return t, nil
}

// WriteYAML writes t in the format read by [Load].
func (t *Taxonomy) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("taxonomy: %w", err)
	}
	return enc.Close()
}
