// Package slot decides which concrete wrapper type represents each
// position of a heterogeneous ordered collection, such as a table cell
// or a tab panel. Declarative rules select positions by index, reserved
// predicate, key lookup, or an EQL expression evaluated against the live
// node; resolution is last-match-wins in declaration order.
package slot

import (
	"fmt"

	"github.com/oleksiybondar/eqlgo/ast"
	"github.com/oleksiybondar/eqlgo/parser"
)

// Kind discriminates how a rule selects positions.
type Kind int

const (
	KindUnspecified Kind = iota
	KindIndex
	KindPredicate
	KindKey
	KindEQL
)

func (k Kind) String() string {
	switch k {
	case KindIndex:
		return "index"
	case KindPredicate:
		return "predicate"
	case KindKey:
		return "key"
	case KindEQL:
		return "eql"
	default:
		return "unspecified"
	}
}

// Reserved predicate keywords.
const (
	PredicateAll   = "ALL"
	PredicateFirst = "FIRST"
	PredicateLast  = "LAST"
)

// IsReservedPredicate reports whether s is a reserved predicate keyword.
func IsReservedPredicate(s string) bool {
	return s == PredicateAll || s == PredicateFirst || s == PredicateLast
}

// Rule maps a selector value to a target wrapper type. Rules are
// immutable value objects; EQL-kind rules carry their expression parsed
// once at construction.
type Rule struct {
	value  any
	target any
	kind   Kind
	expr   ast.Node
}

// NewRule builds a rule from an int or string selector value. When kind
// is omitted it is inferred: int values select by index, reserved
// predicate keywords by predicate, any other string by key. KindEQL is
// never inferred and must be requested explicitly, since an EQL
// expression is lexically indistinguishable from a key string.
//
// An explicit KindKey whose value is a reserved predicate keyword is
// rejected; use ForceKeyRule when the collision is intentional.
func NewRule(value, target any, kind ...Kind) (Rule, error) {
	explicit := KindUnspecified
	if len(kind) > 0 {
		explicit = kind[0]
	}

	switch v := value.(type) {
	case int:
		if explicit != KindUnspecified && explicit != KindIndex {
			return Rule{}, fmt.Errorf("%w: %s rule with int value %d", ErrBadRuleValue, explicit, v)
		}
		return Rule{value: v, target: target, kind: KindIndex}, nil

	case string:
		return newStringRule(v, target, explicit)

	default:
		return Rule{}, fmt.Errorf("%w: unsupported value type %T", ErrBadRuleValue, value)
	}
}

func newStringRule(value string, target any, explicit Kind) (Rule, error) {
	switch explicit {
	case KindUnspecified:
		if IsReservedPredicate(value) {
			return Rule{value: value, target: target, kind: KindPredicate}, nil
		}
		return Rule{value: value, target: target, kind: KindKey}, nil

	case KindPredicate:
		if !IsReservedPredicate(value) {
			return Rule{}, fmt.Errorf("%w: predicate rule with value %q", ErrBadRuleValue, value)
		}
		return Rule{value: value, target: target, kind: KindPredicate}, nil

	case KindKey:
		if IsReservedPredicate(value) {
			return Rule{}, fmt.Errorf("%w: %q", ErrReservedKeyword, value)
		}
		return Rule{value: value, target: target, kind: KindKey}, nil

	case KindEQL:
		expr, err := parser.Parse(value)
		if err != nil {
			return Rule{}, fmt.Errorf("eql rule %q: %w", value, err)
		}
		return Rule{value: value, target: target, kind: KindEQL, expr: expr}, nil

	default:
		return Rule{}, fmt.Errorf("%w: %s rule with string value %q", ErrBadRuleValue, explicit, value)
	}
}

// ForceKeyRule builds a key rule whose value intentionally collides with
// a reserved predicate keyword.
func ForceKeyRule(value string, target any) Rule {
	return Rule{value: value, target: target, kind: KindKey}
}

// Value returns the rule's selector value (int or string).
func (r Rule) Value() any { return r.value }

// Target returns the wrapper type the rule selects.
func (r Rule) Target() any { return r.target }

// Kind returns the rule's kind.
func (r Rule) Kind() Kind { return r.kind }

// Equal reports whether two rules have the same value, target and kind.
func (r Rule) Equal(other Rule) bool {
	return r.value == other.value && r.target == other.target && r.kind == other.kind
}

// EquivalentTo compares the rule against another rule, a raw selector
// value (int or string), or a target type. Intended for diagnostics and
// tests.
func (r Rule) EquivalentTo(x any) bool {
	switch v := x.(type) {
	case Rule:
		return r.Equal(v)
	case int:
		return r.kind == KindIndex && r.value == v
	case string:
		return r.value == v
	default:
		return r.target == x
	}
}

func (r Rule) String() string {
	return fmt.Sprintf("%s(%v)->%v", r.kind, r.value, r.target)
}
