/*
Package htmlsrc extracts integers from the textual content of HTML fragments.

Only text nodes are considered. Content of <script> and <style> elements and
all markup (including attribute values) is ignored. Every maximal run of
decimal digits, optionally preceded by a minus sign, is taken as a number:

	<ul><li>90</li><li>91 and 92</li></ul>

yields 90, 91, 92.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package htmlsrc

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer writes to trace with key 'subsums', falling back to the core tracer
// if no trace has been selected for this key.
func tracer() tracing.Trace {
	if t := tracing.Select("subsums"); t != nil {
		return t
	}
	return gtrace.CoreTracer
}

// ErrIllegalArguments is flagged for a nil node or reader.
var ErrIllegalArguments = errors.New("htmlsrc: illegal arguments")

var number = regexp.MustCompile(`-?\d+`)

// InnerNumbers collects the numbers of the textual content of an HTML element and
// all its descendents, in document order.
func InnerNumbers(n *html.Node) ([]int64, error) {
	if n == nil {
		return nil, ErrIllegalArguments
	}
	var numbers []int64
	if err := collectNumbers(n, &numbers); err != nil {
		return numbers, err
	}
	return numbers, nil
}

// Numbers parses an HTML fragment and collects the numbers of its text content.
func Numbers(input io.Reader) ([]int64, error) {
	if input == nil {
		return nil, ErrIllegalArguments
	}
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	var numbers []int64
	for _, n := range nodes {
		if err := collectNumbers(n, &numbers); err != nil {
			return numbers, err
		}
	}
	tracer().Debugf("htmlsrc: %d numbers in %d top-level nodes", len(numbers), len(nodes))
	return numbers, nil
}

func collectNumbers(n *html.Node, numbers *[]int64) error {
	switch n.Type {
	case html.ElementNode:
		if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
			return nil
		}
	case html.TextNode:
		for _, tok := range number.FindAllString(n.Data, -1) {
			x, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return fmt.Errorf("htmlsrc: cannot read %q: %w", tok, err)
			}
			*numbers = append(*numbers, x)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := collectNumbers(c, numbers); err != nil {
			return err
		}
	}
	return nil
}
