package slot_test

import (
	"fmt"

	"github.com/oleksiybondar/eqlgo/jsonnode"
	"github.com/oleksiybondar/eqlgo/slot"
)

func ExampleResolver() {
	type Text struct{}
	type Money struct{}

	all, _ := slot.NewRule("ALL", Text{})
	totals, _ := slot.NewRule(`label == "Total"`, Money{}, slot.KindEQL)
	resolver := slot.NewResolver([]slot.Rule{all, totals}, nil)

	doc := jsonnode.FromValue(map[string]any{
		"cells": []any{
			map[string]any{"label": "Subtotal"},
			map[string]any{"label": "Total"},
		},
	})
	cells, _ := doc.Collection("cells")

	for i, cell := range cells {
		target, _, err := resolver.Resolve(i, cell, len(cells))
		if err != nil {
			panic(err)
		}
		fmt.Printf("%d: %T\n", i, target)
	}
	// Output:
	// 0: slot_test.Text
	// 1: slot_test.Money
}
