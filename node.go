package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

const (
	xmlDeclaration = `<?xml version="1.0" standalone="no"?>`
	svgDoctype     = `<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">`
	svgNamespace   = "http://www.w3.org/2000/svg"
	xlinkNamespace = "http://www.w3.org/1999/xlink"
	indentUnit     = "  "
)

// Attr is a single attribute; Node keeps them in insertion order.
type Attr struct {
	Name  string
	Value string
}

// Node is one element of the vector document. Nodes are values: the With* methods
// return modified copies and never touch the receiver.
type Node struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Children []Node
}

func newNode(tag string, attrs ...Attr) Node {
	return Node{Tag: tag, Attrs: append([]Attr(nil), attrs...)}
}

func attr(name string, value any) Attr {
	switch v := value.(type) {
	case string:
		return Attr{Name: name, Value: v}
	case float64:
		return Attr{Name: name, Value: formatNumber(v)}
	default:
		return Attr{Name: name, Value: fmt.Sprint(v)}
	}
}

// WithText returns a copy of n carrying the given text content.
func (n Node) WithText(text string) Node {
	n.Attrs = append([]Attr(nil), n.Attrs...)
	n.Children = append([]Node(nil), n.Children...)
	n.Text = text
	return n
}

// WithAttrs returns a copy of n with attributes appended.
func (n Node) WithAttrs(attrs ...Attr) Node {
	n.Attrs = append(append([]Attr(nil), n.Attrs...), attrs...)
	n.Children = append([]Node(nil), n.Children...)
	return n
}

// WithChildren returns a copy of n with children appended.
func (n Node) WithChildren(children ...Node) Node {
	n.Attrs = append([]Attr(nil), n.Attrs...)
	n.Children = append(append([]Node(nil), n.Children...), children...)
	return n
}

// Attr returns the value of the named attribute.
func (n Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// ChildrenByTag returns the direct children with the given tag.
func (n Node) ChildrenByTag(tag string) []Node {
	var out []Node
	for _, c := range n.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// FindByID does a depth-first search for the node whose id attribute matches.
func (n Node) FindByID(id string) (Node, bool) {
	if v, ok := n.Attr("id"); ok && v == id {
		return n, true
	}
	for _, c := range n.Children {
		if found, ok := c.FindByID(id); ok {
			return found, true
		}
	}
	return Node{}, false
}

// Document is a complete SVG file: the fixed prolog plus the root svg node.
type Document struct {
	Root Node
}

// WriteTo serializes the document as UTF-8 SVG markup.
func (d Document) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString(xmlDeclaration)
	buf.WriteString("\n")
	buf.WriteString(svgDoctype)
	buf.WriteString("\n")
	writeNode(&buf, d.Root, 0)
	return buf.WriteTo(w)
}

func (d Document) String() string {
	var sb strings.Builder
	d.WriteTo(&sb)
	return sb.String()
}

func writeNode(buf *bytes.Buffer, n Node, depth int) {
	indent := strings.Repeat(indentUnit, depth)
	buf.WriteString(indent)
	buf.WriteString("<" + n.Tag)
	for _, a := range n.Attrs {
		fmt.Fprintf(buf, ` %s="%s"`, a.Name, escapeAttr(a.Value))
	}

	switch {
	case len(n.Children) == 0 && n.Text == "":
		buf.WriteString("/>\n")
	case len(n.Children) == 0:
		buf.WriteString(">")
		buf.WriteString(escapeXML(n.Text))
		fmt.Fprintf(buf, "</%s>\n", n.Tag)
	default:
		buf.WriteString(">\n")
		if n.Text != "" {
			buf.WriteString(indent + indentUnit + escapeXML(n.Text) + "\n")
		}
		for _, c := range n.Children {
			writeNode(buf, c, depth+1)
		}
		fmt.Fprintf(buf, "%s</%s>\n", indent, n.Tag)
	}
}
