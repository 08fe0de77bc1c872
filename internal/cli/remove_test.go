package cli

import (
	"testing"

	"github.com/jahtz/gopxml/model"
)

func TestParseAttributePairs(t *testing.T) {
	attrs, err := parseAttributePairs([]string{"production=printed", "custom=structure {type:heading;}"})
	if err != nil {
		t.Fatalf("parseAttributePairs: %v", err)
	}
	if attrs["production"] != "printed" {
		t.Errorf("production = %q", attrs["production"])
	}
	if attrs["custom"] != "structure {type:heading;}" {
		t.Errorf("custom = %q", attrs["custom"])
	}

	if attrs, err := parseAttributePairs(nil); err != nil || attrs != nil {
		t.Errorf("empty input = %v, %v", attrs, err)
	}
	for _, bad := range []string{"novalue", "=x"} {
		if _, err := parseAttributePairs([]string{bad}); err == nil {
			t.Errorf("filter %q must fail", bad)
		}
	}
}

// removePage builds two regions with lines for the removal tests: r1 holds
// l1 (production=printed) and l2, r2 holds l3 (production=printed).
func removePage(t *testing.T) *model.Page {
	t.Helper()
	page := model.NewPage(nil)
	lines := map[string][]struct{ id, production string }{
		"r1": {{"l1", "printed"}, {"l2", ""}},
		"r2": {{"l3", "printed"}},
	}
	for _, id := range []string{"r1", "r2"} {
		region, err := page.Create(model.TextRegion, -1, true, map[string]string{"id": id})
		if err != nil {
			t.Fatal(err)
		}
		for _, l := range lines[id] {
			attrs := map[string]string{"id": l.id}
			if l.production != "" {
				attrs["production"] = l.production
			}
			if _, err := region.Create(model.TextLine, -1, attrs); err != nil {
				t.Fatal(err)
			}
		}
	}
	return page
}

func TestRemoveElementsByType(t *testing.T) {
	page := removePage(t)
	removed := removeElements(page, model.TextLine, nil)
	if removed != 3 {
		t.Errorf("removed = %d, want 3", removed)
	}
	if page.Find(model.Filter{Types: []model.PageType{model.TextLine}, Depth: -1}) != nil {
		t.Error("no TextLine should survive")
	}
	// Regions and their reading order entries stay untouched.
	if len(page.Regions()) != 2 {
		t.Errorf("regions = %d, want 2", len(page.Regions()))
	}
	if order := page.ReadingOrder(); len(order) != 2 {
		t.Errorf("reading order = %v", order)
	}
}

func TestRemoveElementsByTypeAndAttribute(t *testing.T) {
	page := removePage(t)
	removed := removeElements(page, model.TextLine, map[string]string{"production": "printed"})
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}
	if page.Find(model.Filter{IDs: []string{"l1"}, Depth: -1}) != nil {
		t.Error("l1 should be removed")
	}
	if page.Find(model.Filter{IDs: []string{"l2"}, Depth: -1}) == nil {
		t.Error("l2 should survive")
	}
	if page.Find(model.Filter{IDs: []string{"l3"}, Depth: -1}) != nil {
		t.Error("l3 should be removed")
	}
}

func TestRemoveElementsRegion(t *testing.T) {
	page := removePage(t)
	removed := removeElements(page, model.TextRegion, map[string]string{"id": "r1"})
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	// Top-level removal goes through the page, keeping the reading order
	// consistent.
	if order := page.ReadingOrder(); len(order) != 1 || order[0] != "r2" {
		t.Errorf("reading order = %v, want [r2]", order)
	}
}

func TestRemoveElementsAll(t *testing.T) {
	page := removePage(t)
	removed := removeElements(page, "", map[string]string{"production": "printed"})
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}
	if page.Len() != 0 {
		t.Error("all elements should be removed")
	}
	if len(page.ReadingOrder()) != 0 {
		t.Error("reading order should be cleared")
	}
}
