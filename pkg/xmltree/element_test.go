package xmltree

import (
	"slices"
	"testing"
)

const testNS = "urn:test"

func n(local string) Name {
	return Name{Space: testNS, Local: local}
}

func buildSample() *Element {
	root := NewElement(n("root"))
	a := root.SubElement(n("item"))
	a.Text = "a"
	nested := root.SubElement(n("group"))
	b := nested.SubElement(n("item"))
	b.Text = "b"
	c := root.SubElement(n("item"))
	c.Text = "c"
	return root
}

func TestNameString(t *testing.T) {
	if got := n("object").String(); got != "{urn:test}object" {
		t.Fatalf("String() = %q, want %q", got, "{urn:test}object")
	}
	if got := (Name{Local: "plain"}).String(); got != "plain" {
		t.Fatalf("String() = %q, want %q", got, "plain")
	}
}

func TestSetKeepsAttributeOrder(t *testing.T) {
	e := NewElement(n("e"))
	e.Set(Name{Local: "b"}, "1")
	e.Set(Name{Local: "a"}, "2")
	e.Set(Name{Local: "b"}, "3")

	if len(e.Attrs) != 2 {
		t.Fatalf("len(Attrs) = %d, want 2", len(e.Attrs))
	}
	if e.Attrs[0].Name.Local != "b" || e.Attrs[0].Value != "3" {
		t.Fatalf("Attrs[0] = %+v, want b=3", e.Attrs[0])
	}
	if got, ok := e.Get(Name{Local: "a"}); !ok || got != "2" {
		t.Fatalf("Get(a) = %q, %v, want %q, true", got, ok, "2")
	}
	if _, ok := e.Get(Name{Local: "missing"}); ok {
		t.Fatal("Get(missing) ok = true")
	}
}

func TestAppendSkipsNil(t *testing.T) {
	e := NewElement(n("e"))
	e.Append(nil, NewElement(n("x")), nil)
	if len(e.Children) != 1 {
		t.Fatalf("len(Children) = %d, want 1", len(e.Children))
	}
}

func TestDescendantsDocumentOrder(t *testing.T) {
	root := buildSample()
	var got []string
	for item := range root.Descendants(n("item")) {
		got = append(got, item.Text)
	}
	if want := []string{"a", "b", "c"}; !slices.Equal(got, want) {
		t.Fatalf("Descendants() = %v, want %v", got, want)
	}
}

func TestDescendantsRestartable(t *testing.T) {
	root := buildSample()
	seq := root.Descendants(n("item"))
	first, second := 0, 0
	for range seq {
		first++
	}
	for range seq {
		second++
	}
	if first != 3 || second != 3 {
		t.Fatalf("iterations = %d, %d, want 3, 3", first, second)
	}
}

func TestDescendantsExcludesSelf(t *testing.T) {
	root := NewElement(n("item"))
	root.SubElement(n("item"))
	count := 0
	for range root.Descendants(n("item")) {
		count++
	}
	if count != 1 {
		t.Fatalf("Descendants() yielded %d, want 1", count)
	}
}

func TestFindSelfOrDescendant(t *testing.T) {
	root := buildSample()
	if got := root.Find(n("root")); got != root {
		t.Fatal("Find(self) did not return receiver")
	}
	if got := root.Find(n("item")); got == nil || got.Text != "a" {
		t.Fatalf("Find(item) = %v, want first item", got)
	}
	if got := root.Find(n("missing")); got != nil {
		t.Fatalf("Find(missing) = %v, want nil", got)
	}
	var nilElem *Element
	if got := nilElem.Find(n("x")); got != nil {
		t.Fatal("nil Find() returned element")
	}
}

func TestChildAndChildText(t *testing.T) {
	root := buildSample()
	if got, ok := root.ChildText(n("item")); !ok || got != "a" {
		t.Fatalf("ChildText(item) = %q, %v, want %q, true", got, ok, "a")
	}
	if root.Child(n("missing")) != nil {
		t.Fatal("Child(missing) != nil")
	}
	var got []string
	for item := range root.ChildrenNamed(n("item")) {
		got = append(got, item.Text)
	}
	if want := []string{"a", "c"}; !slices.Equal(got, want) {
		t.Fatalf("ChildrenNamed() = %v, want %v", got, want)
	}
}

func TestTextContent(t *testing.T) {
	if got := buildSample().TextContent(); got != "abc" {
		t.Fatalf("TextContent() = %q, want %q", got, "abc")
	}
}
