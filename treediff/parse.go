package treediff

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// Parse reads an XML document into a Node tree.
//
// Only elements, attributes and character data are kept; comments,
// processing instructions and directives are skipped. Each node's direct
// text is the concatenation of its trimmed text runs separated by a space.
//
// Parse fails with an error wrapping [ErrMalformedDocument] when the
// document is not a single well formed element tree.
func Parse(d []byte, opts ...Option) (*Node, error) {
	cfg := NewConfig(opts...)
	dec := xml.NewDecoder(bytes.NewReader(d))
	dec.CharsetReader = charsetReader
	var (
		root  *Node
		stack []*Node
	)
	for {
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if len(stack) == 0 && root != nil {
				return nil, fmt.Errorf("%w: line %d: more than one root element",
					ErrMalformedDocument, line(dec))
			}
			n, err := newNode(t, cfg.IdentifierAttrs)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedDocument, line(dec), err)
			}
			if len(stack) == 0 {
				n.Path = n.DisplayName
				root = n
			} else {
				parent := stack[len(stack)-1]
				n.Path = joinPath(parent.Path, n.DisplayName)
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: line %d: unexpected end element </%s>",
					ErrMalformedDocument, line(dec), qname(t.Name))
			}
			top := stack[len(stack)-1]
			if name := qname(t.Name); name != top.Name {
				return nil, fmt.Errorf("%w: line %d: element <%s> closed by </%s>",
					ErrMalformedDocument, line(dec), top.Name, name)
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			text := strings.TrimSpace(string(t))
			if text == "" {
				continue
			}
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: line %d: text outside of root element",
					ErrMalformedDocument, line(dec))
			}
			top := stack[len(stack)-1]
			if top.Text == "" {
				top.Text = text
			} else {
				top.Text += " " + text
			}
		}
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("%w: unexpected end of document, <%s> not closed",
			ErrMalformedDocument, stack[len(stack)-1].Name)
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformedDocument)
	}
	return root, nil
}

func newNode(t xml.StartElement, idAttrs []string) (*Node, error) {
	n := &Node{Name: qname(t.Name)}
	if len(t.Attr) != 0 {
		n.Attrs = make([]Attr, len(t.Attr))
		for i, a := range t.Attr {
			name := qname(a.Name)
			if _, dup := n.Attr(name); dup {
				return nil, fmt.Errorf("attribute %q redefined on <%s>", name, n.Name)
			}
			n.Attrs[i] = Attr{Name: name, Value: a.Value}
		}
	}
	n.Identifier = identifier(n.Attrs, idAttrs)
	n.DisplayName = displayName(n.Name, n.Identifier)
	return n, nil
}

// qname returns the name as written, with its prefix if any.
func qname(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

func line(dec *xml.Decoder) int {
	l, _ := dec.InputPos()
	return l
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}
