package main

import (
	"testing"
)

func TestNodeBuildersDoNotMutate(t *testing.T) {
	base := newNode("g", attr("id", "base"))
	child := newNode("text", attr("x", 1))

	withText := base.WithText("hello")
	withAttrs := base.WithAttrs(attr("fill", "#000"))
	withChild := base.WithChildren(child)

	if base.Text != "" || len(base.Attrs) != 1 || len(base.Children) != 0 {
		t.Fatalf("base node was mutated: %+v", base)
	}
	if withText.Text != "hello" {
		t.Errorf("WithText text = %q", withText.Text)
	}
	if len(withAttrs.Attrs) != 2 {
		t.Errorf("WithAttrs attrs = %v", withAttrs.Attrs)
	}
	if len(withChild.Children) != 1 || withChild.Children[0].Tag != "text" {
		t.Errorf("WithChildren children = %v", withChild.Children)
	}

	// Appending to a derived node must not leak into its siblings.
	a := withAttrs.WithAttrs(attr("a", "1"))
	b := withAttrs.WithAttrs(attr("b", "2"))
	if v, _ := a.Attr("a"); v != "1" {
		t.Errorf("a lost its attribute: %v", a.Attrs)
	}
	if _, ok := a.Attr("b"); ok {
		t.Errorf("b's attribute leaked into a: %v", a.Attrs)
	}
	if _, ok := b.Attr("a"); ok {
		t.Errorf("a's attribute leaked into b: %v", b.Attrs)
	}
}

func TestAttrFormatting(t *testing.T) {
	cases := []struct {
		value any
		want  string
	}{
		{"text", "text"},
		{1920, "1920"},
		{-268, "-268"},
		{0.0, "0"},
		{-180.0, "-180"},
		{1440.5, "1440.5"},
	}
	for _, tc := range cases {
		if got := attr("v", tc.value).Value; got != tc.want {
			t.Errorf("attr(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestFindByID(t *testing.T) {
	tree := newNode("svg").WithChildren(
		newNode("g", attr("id", "outer")).WithChildren(
			newNode("g", attr("id", "inner")).WithText("found"),
		),
	)
	n, ok := tree.FindByID("inner")
	if !ok || n.Text != "found" {
		t.Errorf("FindByID(inner) = %+v, %v", n, ok)
	}
	if _, ok := tree.FindByID("missing"); ok {
		t.Errorf("FindByID(missing) reported a match")
	}
}

func TestDocumentWriter(t *testing.T) {
	doc := Document{Root: newNode("svg", attr("width", 10)).WithChildren(
		newNode("image", attr("xlink:href", "a&b.jpg")),
		newNode("g", attr("id", "photo_info")).WithChildren(
			newNode("text", attr("x", 1)).WithText("Tom & <Jerry>"),
			newNode("text", attr("x", 2)),
		),
	)}

	want := xmlDeclaration + "\n" +
		svgDoctype + "\n" +
		`<svg width="10">` + "\n" +
		`  <image xlink:href="a&amp;b.jpg"/>` + "\n" +
		`  <g id="photo_info">` + "\n" +
		`    <text x="1">Tom &amp; &lt;Jerry&gt;</text>` + "\n" +
		`    <text x="2"/>` + "\n" +
		`  </g>` + "\n" +
		`</svg>` + "\n"

	if got := doc.String(); got != want {
		diff := findFirstDifference(want, got)
		t.Errorf("document mismatch near %d:\nEXPECTED: ...%s...\nGOT:      ...%s...",
			diff.Index, diff.ExpectedContext, diff.GotContext)
	}
}
