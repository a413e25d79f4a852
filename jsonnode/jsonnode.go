// Package jsonnode adapts a decoded JSON document to the node.Queryable
// capability, giving the evaluator and slot resolver a concrete node
// implementation for tests and tooling.
//
// Document conventions: the object keys "text", "attributes" and
// "styles" are reserved; every other key is a child node. Arrays are
// indexed collections, scalars are leaf nodes whose text is the
// formatted value.
package jsonnode

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/oleksiybondar/eqlgo/node"
)

const (
	keyText       = "text"
	keyAttributes = "attributes"
	keyStyles     = "styles"
)

// Node is a JSON-backed node.Queryable.
type Node struct {
	value any
}

var _ node.Queryable = (*Node)(nil)

// Parse decodes a JSON document into a Node.
func Parse(data []byte) (*Node, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decoding node document: %w", err)
	}
	return &Node{value: v}, nil
}

// FromValue wraps an already decoded JSON value.
func FromValue(v any) *Node {
	return &Node{value: v}
}

// Attribute returns the named entry of the node's "attributes" object.
func (n *Node) Attribute(name string) (string, bool) {
	return n.lookupReserved(keyAttributes, name)
}

// Style returns the named entry of the node's "styles" object.
func (n *Node) Style(name string) (string, bool) {
	return n.lookupReserved(keyStyles, name)
}

func (n *Node) lookupReserved(section, name string) (string, bool) {
	obj, ok := n.value.(map[string]any)
	if !ok {
		return "", false
	}
	m, ok := obj[section].(map[string]any)
	if !ok {
		return "", false
	}
	v, ok := m[name]
	if !ok {
		return "", false
	}
	return formatScalar(v), true
}

// Text returns the node's visible text: the "text" key for objects, the
// formatted value for scalar leaves, empty for collections.
func (n *Node) Text() string {
	switch v := n.value.(type) {
	case map[string]any:
		if t, ok := v[keyText]; ok {
			return formatScalar(t)
		}
		return ""
	case []any:
		return ""
	default:
		return formatScalar(v)
	}
}

// Child resolves a named child. Reserved keys and collections are not
// children; collections require ChildAt.
func (n *Node) Child(name string) (node.Queryable, bool) {
	v, ok := n.childValue(name)
	if !ok {
		return nil, false
	}
	if _, isArray := v.([]any); isArray {
		return nil, false
	}
	return &Node{value: v}, true
}

// ChildAt resolves the named collection and indexes it.
func (n *Node) ChildAt(name string, index int) (node.Queryable, bool) {
	v, ok := n.childValue(name)
	if !ok {
		return nil, false
	}
	items, ok := v.([]any)
	if !ok || index < 0 || index >= len(items) {
		return nil, false
	}
	return &Node{value: items[index]}, true
}

// Collection returns the named collection's items, for callers that
// iterate positions (slot resolution).
func (n *Node) Collection(name string) ([]*Node, bool) {
	v, ok := n.childValue(name)
	if !ok {
		return nil, false
	}
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	nodes := make([]*Node, len(items))
	for i, item := range items {
		nodes[i] = &Node{value: item}
	}
	return nodes, true
}

// Items returns the node's own elements when the node wraps an array.
func (n *Node) Items() ([]*Node, bool) {
	items, ok := n.value.([]any)
	if !ok {
		return nil, false
	}
	nodes := make([]*Node, len(items))
	for i, item := range items {
		nodes[i] = &Node{value: item}
	}
	return nodes, true
}

func (n *Node) childValue(name string) (any, bool) {
	obj, ok := n.value.(map[string]any)
	if !ok {
		return nil, false
	}
	switch name {
	case keyText, keyAttributes, keyStyles:
		return nil, false
	}
	v, ok := obj[name]
	return v, ok
}

// formatScalar renders a JSON scalar the way it reads in the document.
func formatScalar(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		if s {
			return "true"
		}
		return "false"
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", s)
	}
}
