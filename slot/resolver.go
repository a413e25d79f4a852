package slot

import (
	"fmt"

	"github.com/oleksiybondar/eqlgo/eval"
	"github.com/oleksiybondar/eqlgo/node"
)

// KeyResolver maps a key rule's value to the index it currently
// designates. The second return value reports whether the key resolved.
type KeyResolver func(key string) (int, bool)

// Resolver resolves, per position, which target type represents an item
// of an ordered collection. The rule list is fixed at construction and
// Resolve holds no per-call state, so results always reflect the inputs
// of the current call.
type Resolver struct {
	rules []Rule
	keyFn KeyResolver
}

// NewResolver builds a resolver over the given rules. keyFn may be nil,
// in which case key rules never match.
func NewResolver(rules []Rule, keyFn KeyResolver) *Resolver {
	owned := make([]Rule, len(rules))
	copy(owned, rules)
	return &Resolver{rules: owned, keyFn: keyFn}
}

// Resolve returns the target type for the item at index within a
// collection of total items. Rules are tried in declaration order and
// the last matching rule wins; matched=false means no rule matched and
// the caller should fall back to its default representation.
func (r *Resolver) Resolve(index int, n node.Queryable, total int) (target any, matched bool, err error) {
	for _, rule := range r.rules {
		m, err := r.ruleMatches(rule, index, n, total)
		if err != nil {
			return nil, false, err
		}
		if m {
			target = rule.target
			matched = true
		}
	}
	return target, matched, nil
}

func (r *Resolver) ruleMatches(rule Rule, index int, n node.Queryable, total int) (bool, error) {
	switch rule.kind {
	case KindPredicate:
		switch rule.value.(string) {
		case PredicateAll:
			return true, nil
		case PredicateFirst:
			return index == 0, nil
		default: // PredicateLast
			return index == total-1, nil
		}

	case KindIndex:
		v := rule.value.(int)
		if v >= 0 {
			return index == v, nil
		}
		// Negative values index from the end: -1 is the last position.
		return index == total+v, nil

	case KindEQL:
		return eval.Evaluate(rule.expr, n)

	case KindKey:
		if r.keyFn == nil {
			return false, nil
		}
		i, ok := r.keyFn(rule.value.(string))
		return ok && i == index, nil

	default:
		return false, fmt.Errorf("%w: %d", ErrUnknownRuleKind, int(rule.kind))
	}
}
