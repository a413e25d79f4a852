package eval

import (
	"errors"
	"fmt"

	"github.com/oleksiybondar/eqlgo/ast"
)

// ErrUnresolvedSegment is returned for missing chain segments when the
// evaluator runs with AbsentError. Under the default AbsentFalse policy
// it is never surfaced.
var ErrUnresolvedSegment = errors.New("unresolved element chain segment")

// TypeMismatchError indicates an operator was applied to operands of
// incompatible kinds, e.g. ordering a bool or matching ~= against a
// non-regex operand.
type TypeMismatchError struct {
	Op    ast.Op
	Left  string
	Right string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("operator %s cannot compare %s with %s", e.Op, e.Left, e.Right)
}
