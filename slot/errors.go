package slot

import "errors"

// Sentinel errors for slot rule configuration. These indicate authoring
// mistakes and are surfaced at rule construction or resolve time, never
// treated as a non-match.
var (
	// ErrUnknownRuleKind indicates a rule with an unrecognized kind
	// reached resolution.
	ErrUnknownRuleKind = errors.New("unknown slot rule kind")

	// ErrReservedKeyword indicates a key rule whose value collides with
	// a reserved predicate keyword without being explicitly forced.
	ErrReservedKeyword = errors.New("key rule value collides with reserved predicate keyword")

	// ErrBadRuleValue indicates a rule value whose type does not fit the
	// requested kind.
	ErrBadRuleValue = errors.New("rule value does not fit rule kind")
)
