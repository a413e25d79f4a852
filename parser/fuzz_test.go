package parser

import (
	"errors"
	"testing"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		`name == "John"`,
		`age > 18`,
		`10 < age < 50`,
		`user.friends[0].name == "Jane"`,
		`pattern ~= /[A-Za-z0-9]+/`,
		`attribute:metadata == "1.0.0"`,
		`style:color == "red"`,
		`created > date(2020-01-02)`,
		`enabled == true and count != 0`,
		`a == 1 or b == 2 and c == 3`,
		`items[3].label ~= /total/im`,
		``,
		`==`,
		`"unterminated`,
		`a[999999999999999999999]`,
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		n, err := Parse(input)
		if err != nil {
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Errorf("parse error is not a *ParseError: %T %v", err, err)
			}
			if n != nil {
				t.Error("partial tree returned alongside an error")
			}
			return
		}

		// A successful parse must render back to parseable canonical form.
		canonical := n.String()
		again, err := Parse(canonical)
		if err != nil {
			t.Errorf("canonical form %q failed to reparse: %v", canonical, err)
			return
		}
		if again.String() != canonical {
			t.Errorf("canonical form is not stable: %q != %q", again.String(), canonical)
		}
	})
}
