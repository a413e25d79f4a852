package parser

import "fmt"

// ParseError describes a lexical or structural failure in an EQL source
// string. Offset is the byte offset of the offending input. A ParseError
// means no AST was produced; there is no partial recovery.
type ParseError struct {
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Message)
}
