// Package ast defines the Abstract Syntax Tree types for EQL expressions.
package ast

import "fmt"

// Node represents a boolean expression node. String renders the node back
// to EQL surface syntax.
type Node interface {
	fmt.Stringer
	exprNode()
}

// Op is a comparison operator.
type Op string

const (
	OpEq    Op = "=="
	OpNe    Op = "!="
	OpLt    Op = "<"
	OpLe    Op = "<="
	OpGt    Op = ">"
	OpGe    Op = ">="
	OpMatch Op = "~="
)

// Ordering reports whether the operator is one of <, <=, >, >=.
func (o Op) Ordering() bool {
	switch o {
	case OpLt, OpLe, OpGt, OpGe:
		return true
	}
	return false
}

// LogicalOp is a boolean connective.
type LogicalOp string

const (
	OpAnd LogicalOp = "and"
	OpOr  LogicalOp = "or"
)

// Comparison applies a comparison operator to two operands.
type Comparison struct {
	Left  Operand
	Op    Op
	Right Operand
}

func (Comparison) exprNode() {}

// Logical combines two expressions with and/or.
type Logical struct {
	Op    LogicalOp
	Left  Node
	Right Node
}

func (Logical) exprNode() {}
