package model

import (
	"errors"
	"testing"
)

// mustElement builds an element or fails the test.
func mustElement(t *testing.T, pt PageType, attrs map[string]string) *Element {
	t.Helper()
	el, err := NewElement(pt, attrs)
	if err != nil {
		t.Fatalf("NewElement(%s): %v", pt, err)
	}
	return el
}

func TestNewElement(t *testing.T) {
	el := mustElement(t, TextRegion, map[string]string{"id": "r1"})
	if el.PageType() != TextRegion {
		t.Errorf("type = %s, want TextRegion", el.PageType())
	}
	if !el.IsRegion() {
		t.Error("TextRegion element should be a region")
	}
	if el.ID() != "r1" {
		t.Errorf("ID = %q, want r1", el.ID())
	}
	if el.Parent() != nil {
		t.Error("new element should be detached")
	}

	if _, err := NewElement("FooBar", nil); !errors.Is(err, ErrInvalidPageType) {
		t.Errorf("error = %v, want ErrInvalidPageType", err)
	}
}

func TestElementAttributes(t *testing.T) {
	el := mustElement(t, TextLine, map[string]string{"id": "l1"})

	el.SetAttribute("custom", "readingOrder {index:0;}")
	if v, ok := el.Attribute("custom"); !ok || v != "readingOrder {index:0;}" {
		t.Errorf("Attribute(custom) = %q, %v", v, ok)
	}

	prior, ok := el.RemoveAttribute("custom")
	if !ok || prior != "readingOrder {index:0;}" {
		t.Errorf("RemoveAttribute returned %q, %v", prior, ok)
	}
	if _, ok := el.Attribute("custom"); ok {
		t.Error("attribute should be gone after removal")
	}
	if _, ok := el.RemoveAttribute("custom"); ok {
		t.Error("removing a missing attribute should report absence")
	}

	// The constructor copies the map.
	src := map[string]string{"id": "x"}
	copied := mustElement(t, Word, src)
	src["id"] = "mutated"
	if copied.ID() != "x" {
		t.Error("attribute map must be copied on construction")
	}
}

func TestElementText(t *testing.T) {
	el := mustElement(t, Unicode, nil)
	if _, ok := el.Text(); ok {
		t.Error("new element should have no text")
	}
	el.SetText("Hello")
	if text, ok := el.Text(); !ok || text != "Hello" {
		t.Errorf("Text = %q, %v", text, ok)
	}
	el.SetText("")
	if text, ok := el.Text(); !ok || text != "" {
		t.Error("empty text is still text")
	}
	el.RemoveText()
	if _, ok := el.Text(); ok {
		t.Error("text should be gone after RemoveText")
	}
}

func TestElementAddAndInsert(t *testing.T) {
	region := mustElement(t, TextRegion, nil)
	a := mustElement(t, TextLine, map[string]string{"id": "a"})
	b := mustElement(t, TextLine, map[string]string{"id": "b"})
	c := mustElement(t, TextLine, map[string]string{"id": "c"})

	if err := region.Add(a); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := region.Add(b); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := region.Insert(1, c); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got := ids(region.Elements())
	want := []string{"a", "c", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("children = %v, want %v", got, want)
		}
	}
	if a.Parent() != region {
		t.Error("child parent must point at its container")
	}
}

func TestElementAddDetachesFromOldParent(t *testing.T) {
	first := mustElement(t, TextRegion, nil)
	second := mustElement(t, TextRegion, nil)
	line := mustElement(t, TextLine, map[string]string{"id": "l1"})

	if err := first.Add(line); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := second.Add(line); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if first.Len() != 0 {
		t.Error("old parent must not keep a moved child")
	}
	if second.Len() != 1 || line.Parent() != second {
		t.Error("new parent must hold the moved child")
	}
}

func TestElementAddRejectsCycles(t *testing.T) {
	a := mustElement(t, TextRegion, nil)
	b := mustElement(t, TextRegion, nil)
	if err := a.Add(b); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := a.Add(a); !errors.Is(err, ErrCycle) {
		t.Errorf("self insertion: error = %v, want ErrCycle", err)
	}
	if err := b.Add(a); !errors.Is(err, ErrCycle) {
		t.Errorf("ancestor insertion: error = %v, want ErrCycle", err)
	}
}

func TestElementDeleteAndDetach(t *testing.T) {
	region := mustElement(t, TextRegion, nil)
	line := mustElement(t, TextLine, nil)
	other := mustElement(t, TextLine, nil)
	if err := region.Add(line); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if got := region.Delete(other); got != nil {
		t.Error("deleting a non-child should return nil")
	}
	if got := region.Delete(line); got != line {
		t.Error("deleting a child should return it")
	}
	if line.Parent() != nil {
		t.Error("deleted child must be detached")
	}

	if err := region.Add(line); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got := line.Detach(); got != line {
		t.Error("Detach should return the element")
	}
	if region.Len() != 0 {
		t.Error("Detach must remove the element from its parent")
	}
	if got := line.Detach(); got != nil {
		t.Error("detaching a detached element should return nil")
	}
}

func TestElementClear(t *testing.T) {
	region := mustElement(t, TextRegion, map[string]string{"id": "r1"})
	line := mustElement(t, TextLine, nil)
	region.Add(line)
	region.SetText("keep")

	region.Clear()
	if region.Len() != 0 {
		t.Error("Clear must remove all children")
	}
	if line.Parent() != nil {
		t.Error("cleared children must be detached")
	}
	if region.ID() != "r1" {
		t.Error("Clear must not touch attributes")
	}
	if _, ok := region.Text(); !ok {
		t.Error("Clear must not touch text")
	}
}

func TestElementCoordsAndBaseline(t *testing.T) {
	line := mustElement(t, TextLine, nil)
	coords, err := line.Create(Coords, -1, map[string]string{"points": "0,0 1,1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	baseline, err := line.Create(Baseline, -1, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if line.Coords() != coords {
		t.Error("Coords should find the direct Coords child")
	}
	if line.Baseline() != baseline {
		t.Error("Baseline should find the direct Baseline child")
	}
	if coords.Coords() != coords {
		t.Error("a Coords element is its own Coords")
	}
	if mustElement(t, TextLine, nil).Coords() != nil {
		t.Error("missing Coords should yield nil")
	}
}

func ids(elements []*Element) []string {
	out := make([]string, len(elements))
	for i, e := range elements {
		out[i] = e.ID()
	}
	return out
}
