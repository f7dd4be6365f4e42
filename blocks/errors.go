package blocks

import "fmt"

// TableError reports a violation of the invariants of a block table.
// Block tables are static configuration, so a TableError is a
// configuration fault and not meant to be recovered from.
type TableError struct {
	Block string // name of the offending block, or its range if unnamed
	Issue string // human-readable description of the issue
}

// Error implements the error interface.
func (e *TableError) Error() string {
	return fmt.Sprintf("block table: %s: %s", e.Block, e.Issue)
}
