package rfcxml

import (
	"errors"
	"fmt"
)

// ErrNoOpenSection is returned when closing a section while none is open.
var ErrNoOpenSection = errors.New("rfcxml: no open section")

// Builder assembles a fragment of nested sections. Nodes are added to the
// innermost open section or, with no section open, to the top level.
type Builder struct {
	top   Fragment
	stack []*Section
}

// Open starts a new section nested into the innermost open one.
func (b *Builder) Open(name string) *Section {
	s := &Section{Name: name}
	b.Add(s)
	b.stack = append(b.stack, s)
	return s
}

// Add appends nodes to the innermost open section.
func (b *Builder) Add(nodes ...Node) {
	if len(b.stack) == 0 {
		b.top = append(b.top, nodes...)
		return
	}
	s := b.stack[len(b.stack)-1]
	s.Children = append(s.Children, nodes...)
}

// Close ends the innermost open section.
func (b *Builder) Close() error {
	if len(b.stack) == 0 {
		return ErrNoOpenSection
	}
	b.stack = b.stack[:len(b.stack)-1]
	return nil
}

// Depth returns the number of open sections.
func (b *Builder) Depth() int {
	return len(b.stack)
}

// Fragment returns the assembled nodes. All sections must have been closed.
func (b *Builder) Fragment() (Fragment, error) {
	if len(b.stack) > 0 {
		return nil, fmt.Errorf("rfcxml: %d section(s) left open, innermost is %q",
			len(b.stack), b.stack[len(b.stack)-1].Name)
	}
	return b.top, nil
}
