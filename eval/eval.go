// Package eval executes parsed EQL expressions against queryable UI nodes.
//
// Chain segments that fail to resolve make the enclosing comparison
// evaluate to false rather than failing, so a query can safely express
// "does not exist"; this applies to every operator, including !=. The
// policy is explicit in Evaluator.Absent. Node-resolved text that cannot
// be coerced to the literal's kind behaves the same way; only operand
// *kind* conflicts raise a TypeMismatchError.
package eval

import (
	"fmt"

	"github.com/oleksiybondar/eqlgo/ast"
	"github.com/oleksiybondar/eqlgo/node"
)

// AbsentMode selects how missing chain segments are handled.
type AbsentMode int

const (
	// AbsentFalse evaluates the enclosing comparison to false.
	AbsentFalse AbsentMode = iota
	// AbsentError surfaces ErrUnresolvedSegment instead.
	AbsentError
)

// Evaluator evaluates EQL expressions. The zero value uses the default
// absent-segment policy and is ready to use.
type Evaluator struct {
	Absent AbsentMode
}

// Evaluate executes expr against root using the default evaluator.
func Evaluate(expr ast.Node, root node.Queryable) (bool, error) {
	return Evaluator{}.Evaluate(expr, root)
}

// Evaluate executes a parsed expression against the given root node.
func (e Evaluator) Evaluate(expr ast.Node, root node.Queryable) (bool, error) {
	switch n := expr.(type) {
	case ast.Comparison:
		return e.compare(n, root)

	case ast.Logical:
		left, err := e.Evaluate(n.Left, root)
		if err != nil {
			return false, err
		}
		// Short-circuit: the right side is not evaluated when the left
		// side already determines the result.
		if n.Op == ast.OpAnd && !left {
			return false, nil
		}
		if n.Op == ast.OpOr && left {
			return true, nil
		}
		return e.Evaluate(n.Right, root)

	default:
		return false, fmt.Errorf("unsupported expression node %T", expr)
	}
}

func (e Evaluator) compare(c ast.Comparison, root node.Queryable) (bool, error) {
	left, err := e.operand(c.Left, root)
	if err != nil {
		return false, err
	}
	right, err := e.operand(c.Right, root)
	if err != nil {
		return false, err
	}
	if left.kind == kindAbsent || right.kind == kindAbsent {
		return false, nil
	}
	return applyOp(c.Op, left, right)
}

// operand evaluates a single operand to a concrete value. Literals map
// directly; element chains resolve against the root node.
func (e Evaluator) operand(o ast.Operand, root node.Queryable) (value, error) {
	switch v := o.(type) {
	case ast.String:
		return value{kind: kindString, text: v.Value}, nil
	case ast.Number:
		return value{kind: kindNumber, num: v}, nil
	case ast.Bool:
		return value{kind: kindBool, b: v.Value}, nil
	case ast.Date:
		return value{kind: kindDate, text: v.Value}, nil
	case ast.Regex:
		return value{kind: kindRegex, re: v}, nil
	case ast.ElementChain:
		text, found := resolveChain(v, root)
		if !found {
			if e.Absent == AbsentError {
				return value{}, fmt.Errorf("%w: %s", ErrUnresolvedSegment, v)
			}
			return value{kind: kindAbsent}, nil
		}
		return value{kind: kindText, text: text}, nil
	default:
		return value{}, fmt.Errorf("unsupported operand %T", o)
	}
}

// resolveChain walks segments left to right starting at root. A terminal
// attribute/style segment resolves a value; any other terminal segment
// resolves a node whose visible text becomes the value.
func resolveChain(chain ast.ElementChain, root node.Queryable) (string, bool) {
	cur := root
	for i, seg := range chain.Segments {
		if seg.Attr != ast.AttrNone {
			// Parser guarantees attribute segments are terminal.
			if seg.Attr == ast.AttrStyle {
				return cur.Style(seg.Name)
			}
			return cur.Attribute(seg.Name)
		}

		var (
			next node.Queryable
			ok   bool
		)
		if seg.HasIndex {
			next, ok = cur.ChildAt(seg.Name, seg.Index)
		} else {
			next, ok = cur.Child(seg.Name)
		}
		if !ok {
			return "", false
		}
		if i == len(chain.Segments)-1 {
			return next.Text(), true
		}
		cur = next
	}
	return "", false
}
