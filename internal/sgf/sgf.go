// Package sgf parses and writes the Smart Game Format subset spec.md
// §6 names: a tree of nodes delimited by '(', ')', ';', properties
// written NAME[value]... with '\]' escaping inside values.
//
// Grounded on original_source/src/sgf.c's node/property shape: each
// node tracks its game-tree number, tree level (depth), whether it
// lies on the main line, and a parent pointer.
package sgf

import (
	"fmt"
	"strings"
	"unicode"
)

// Property is one NAME[value][value]... entry attached to a node.
type Property struct {
	Name   string
	Values []string
}

// Node is one ';'-delimited SGF node.
type Node struct {
	Number     int
	TreeNr     int
	TreeLevel  int
	IsMain     bool
	Parent     *Node
	Properties []Property
}

// Property looks up the first property named name, if present.
func (n *Node) Property(name string) (Property, bool) {
	for _, p := range n.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// Parse parses SGF source text into a flat, parent-linked node list in
// document order (node 0 is the root of the first game tree).
func Parse(content string) ([]*Node, error) {
	var nodes []*Node
	var parentStack []*Node
	treeNr := -1
	treeLevel := -1
	isMain := true
	var current *Node

	runes := []rune(content)
	i := 0
	for i < len(runes) {
		c := runes[i]
		switch c {
		case '(':
			treeNr++
			treeLevel++
			parentStack = append(parentStack, current)
			i++
		case ')':
			treeLevel--
			isMain = false
			if len(parentStack) > 0 {
				current = parentStack[len(parentStack)-1]
				parentStack = parentStack[:len(parentStack)-1]
			}
			i++
		case ';':
			current = &Node{
				Number:    len(nodes),
				TreeNr:    treeNr,
				TreeLevel: treeLevel,
				IsMain:    isMain,
				Parent:    current,
			}
			nodes = append(nodes, current)
			i++
		default:
			if unicode.IsSpace(c) {
				i++
				continue
			}
			if unicode.IsUpper(c) {
				name, next, err := parsePropertyName(runes, i)
				if err != nil {
					return nil, err
				}
				if current == nil {
					return nil, fmt.Errorf("sgf: property %q outside any node", name)
				}
				values, next, err := parsePropertyValues(runes, next)
				if err != nil {
					return nil, err
				}
				current.Properties = append(current.Properties, Property{Name: name, Values: values})
				i = next
				continue
			}
			i++
		}
	}
	return nodes, nil
}

func parsePropertyName(runes []rune, i int) (string, int, error) {
	start := i
	for i < len(runes) && unicode.IsUpper(runes[i]) {
		i++
	}
	return string(runes[start:i]), i, nil
}

func parsePropertyValues(runes []rune, i int) ([]string, int, error) {
	var values []string
	for i < len(runes) {
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}
		if i >= len(runes) || runes[i] != '[' {
			break
		}
		i++
		var b strings.Builder
		for i < len(runes) {
			if runes[i] == '\\' && i+1 < len(runes) {
				b.WriteRune(runes[i+1])
				i += 2
				continue
			}
			if runes[i] == ']' {
				break
			}
			b.WriteRune(runes[i])
			i++
		}
		if i >= len(runes) {
			return nil, i, fmt.Errorf("sgf: unterminated property value")
		}
		i++ // consume ']'
		values = append(values, b.String())
	}
	if len(values) == 0 {
		return nil, i, fmt.Errorf("sgf: property with no values")
	}
	return values, i, nil
}
