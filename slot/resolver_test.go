package slot

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/oleksiybondar/eqlgo/jsonnode"
	"github.com/oleksiybondar/eqlgo/node"
)

func cell(text string) node.Queryable {
	return jsonnode.FromValue(map[string]any{"text": text})
}

func resolveAll(t *testing.T, r *Resolver, texts []string) []any {
	t.Helper()
	targets := make([]any, len(texts))
	for i, text := range texts {
		target, matched, err := r.Resolve(i, cell(text), len(texts))
		if err != nil {
			t.Fatalf("resolve position %d: %v", i, err)
		}
		if matched {
			targets[i] = target
		}
	}
	return targets
}

func TestResolvePredicates(t *testing.T) {
	rules := []Rule{
		mustRule(t, "ALL", textWidget{}),
		mustRule(t, "FIRST", linkWidget{}),
		mustRule(t, "LAST", linkWidget{}),
	}
	r := NewResolver(rules, nil)

	got := resolveAll(t, r, []string{"a", "b", "c", "d"})
	want := []any{linkWidget{}, textWidget{}, textWidget{}, linkWidget{}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %T, got %T", i, want[i], got[i])
		}
	}
}

func TestResolveLastMatchWins(t *testing.T) {
	rules := []Rule{
		mustRule(t, 0, textWidget{}),
		mustRule(t, "FIRST", linkWidget{}),
	}
	r := NewResolver(rules, nil)

	target, matched, err := r.Resolve(0, cell("a"), 3)
	if err != nil {
		t.Fatal(err)
	}
	if !matched {
		t.Fatal("expected a match at position 0")
	}
	if target != (linkWidget{}) {
		t.Errorf("later rule should win, got %T", target)
	}
}

func TestResolveNoMatch(t *testing.T) {
	r := NewResolver([]Rule{mustRule(t, 5, textWidget{})}, nil)

	target, matched, err := r.Resolve(1, cell("a"), 3)
	if err != nil {
		t.Fatal(err)
	}
	if matched || target != nil {
		t.Errorf("expected no match, got %v", target)
	}
}

func TestResolveNegativeIndex(t *testing.T) {
	rules := []Rule{
		mustRule(t, -1, textWidget{}),
		mustRule(t, -3, linkWidget{}),
	}
	r := NewResolver(rules, nil)

	got := resolveAll(t, r, []string{"a", "b", "c"})
	want := []any{linkWidget{}, nil, textWidget{}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestResolveEQLRule(t *testing.T) {
	// EQL rules evaluate against each position's node. The chain segment
	// "label" resolves a child of the cell.
	rules := []Rule{
		mustRule(t, "ALL", textWidget{}),
		mustRule(t, `label == "Total"`, linkWidget{}, KindEQL),
	}
	r := NewResolver(rules, nil)

	cells := []node.Queryable{
		jsonnode.FromValue(map[string]any{"label": "Subtotal"}),
		jsonnode.FromValue(map[string]any{"label": "Total"}),
	}
	for i, c := range cells {
		target, matched, err := r.Resolve(i, c, len(cells))
		if err != nil {
			t.Fatalf("resolve position %d: %v", i, err)
		}
		if !matched {
			t.Fatalf("expected a match at position %d", i)
		}
		want := any(textWidget{})
		if i == 1 {
			want = linkWidget{}
		}
		if target != want {
			t.Errorf("position %d: expected %T, got %T", i, want, target)
		}
	}
}

func TestResolveKeyRule(t *testing.T) {
	keys := map[string]int{"header": 0, "footer": 2}
	keyFn := func(key string) (int, bool) {
		i, ok := keys[key]
		return i, ok
	}

	rules := []Rule{
		mustRule(t, "header", textWidget{}),
		mustRule(t, "footer", linkWidget{}),
	}
	r := NewResolver(rules, keyFn)

	got := resolveAll(t, r, []string{"a", "b", "c"})
	want := []any{textWidget{}, nil, linkWidget{}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestResolveUnknownKind(t *testing.T) {
	// The zero Rule carries KindUnspecified, which must surface as an
	// error rather than a silent non-match.
	r := NewResolver([]Rule{{}}, nil)
	_, _, err := r.Resolve(0, cell("a"), 1)
	if !errors.Is(err, ErrUnknownRuleKind) {
		t.Errorf("expected ErrUnknownRuleKind, got %v", err)
	}
}

func TestResolverRuleIsolation(t *testing.T) {
	rules := []Rule{mustRule(t, 0, textWidget{})}
	r := NewResolver(rules, nil)

	// Mutating the caller's slice after construction must not affect the
	// resolver.
	rules[0] = mustRule(t, 0, linkWidget{})

	target, matched, err := r.Resolve(0, cell("a"), 1)
	if err != nil || !matched {
		t.Fatalf("expected a match, got %v, %v", matched, err)
	}
	if target != (textWidget{}) {
		t.Errorf("expected the original target, got %T", target)
	}
}

func TestResolveProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("-1 always selects the last position", prop.ForAll(
		func(total int) bool {
			r := NewResolver([]Rule{mustForcedIndex(-1)}, nil)
			for i := 0; i < total; i++ {
				_, matched, err := r.Resolve(i, cell("x"), total)
				if err != nil {
					return false
				}
				if matched != (i == total-1) {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 20),
	))

	properties.Property("negative and positive forms select the same position", prop.ForAll(
		func(total, offset int) bool {
			if offset >= total {
				return true
			}
			neg := NewResolver([]Rule{mustForcedIndex(-(offset + 1))}, nil)
			pos := NewResolver([]Rule{mustForcedIndex(total - offset - 1)}, nil)
			for i := 0; i < total; i++ {
				_, nm, err1 := neg.Resolve(i, cell("x"), total)
				_, pm, err2 := pos.Resolve(i, cell("x"), total)
				if err1 != nil || err2 != nil || nm != pm {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 20),
		gen.IntRange(0, 19),
	))

	properties.Property("the later of two matching rules wins", prop.ForAll(
		func(total, index int) bool {
			if index >= total {
				return true
			}
			rules := []Rule{
				mustForcedIndex(index),
				{value: "ALL", target: linkWidget{}, kind: KindPredicate},
			}
			r := NewResolver(rules, nil)
			target, matched, err := r.Resolve(index, cell("x"), total)
			return err == nil && matched && target == (linkWidget{})
		},
		gen.IntRange(1, 20),
		gen.IntRange(0, 19),
	))

	properties.Property("key rules never match without a key resolver", prop.ForAll(
		func(key string, index, total int) bool {
			if total < 1 {
				return true
			}
			r := NewResolver([]Rule{ForceKeyRule(key, textWidget{})}, nil)
			_, matched, err := r.Resolve(index%total, cell("x"), total)
			return err == nil && !matched
		},
		gen.AlphaString(),
		gen.IntRange(0, 19),
		gen.IntRange(1, 20),
	))

	properties.TestingRun(t)
}

func mustForcedIndex(v int) Rule {
	r, err := NewRule(v, textWidget{})
	if err != nil {
		panic(err)
	}
	return r
}
