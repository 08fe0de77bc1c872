package model

import (
	"fmt"
	"strconv"
	"time"
)

// DefaultCreator is recorded in the Metadata block of pages created without
// an explicit creator.
const DefaultCreator = "gopxml"

// Page represents the Page element of a PAGE-XML file together with the
// document metadata and the reading order index.
//
// The reading order lists ids of region elements in logical reading
// sequence. Set and Delete keep it consistent with the element list: every
// id refers to a present region and no id appears twice.
type Page struct {
	creator    string
	created    string
	lastChange string

	attributes   map[string]string
	elements     []*Element
	readingOrder []string

	// path remembers the source file the page was parsed from, if any.
	path string
}

// NewPage creates an empty page. The attribute map is copied. Creator and
// timestamps default to DefaultCreator and the current time (UTC, ISO 8601).
func NewPage(attributes map[string]string) *Page {
	now := time.Now().UTC().Format(time.RFC3339)
	p := &Page{
		creator:    DefaultCreator,
		created:    now,
		lastChange: now,
		attributes: make(map[string]string, len(attributes)),
	}
	for k, v := range attributes {
		p.attributes[k] = v
	}
	return p
}

func (p *Page) isParent() {}

// Creator returns the creator recorded in the document metadata.
func (p *Page) Creator() string { return p.creator }

// SetCreator sets the creator recorded in the document metadata.
func (p *Page) SetCreator(creator string) { p.creator = creator }

// Created returns the creation timestamp (ISO 8601, UTC).
func (p *Page) Created() string { return p.created }

// SetCreated sets the creation timestamp. The value is stored verbatim and
// should be an ISO 8601 UTC timestamp.
func (p *Page) SetCreated(created string) { p.created = created }

// LastChange returns the last-change timestamp. Serialization overwrites it
// with the current time.
func (p *Page) LastChange() string { return p.lastChange }

// SetLastChange sets the last-change timestamp.
func (p *Page) SetLastChange(lastChange string) { p.lastChange = lastChange }

// Touch sets the last-change timestamp to the current time (UTC, ISO 8601).
func (p *Page) Touch() {
	p.lastChange = time.Now().UTC().Format(time.RFC3339)
}

// Path returns the source file this page was parsed from, or "".
func (p *Page) Path() string { return p.path }

// SetPath records the source file path.
func (p *Page) SetPath(path string) { p.path = path }

// Attribute returns the value of a Page attribute and whether it is present.
func (p *Page) Attribute(key string) (string, bool) {
	v, ok := p.attributes[key]
	return v, ok
}

// SetAttribute sets a Page attribute.
func (p *Page) SetAttribute(key, value string) {
	p.attributes[key] = value
}

// RemoveAttribute deletes a Page attribute and returns its prior value.
func (p *Page) RemoveAttribute(key string) (string, bool) {
	v, ok := p.attributes[key]
	delete(p.attributes, key)
	return v, ok
}

// Attributes returns a copy of the Page attribute map.
func (p *Page) Attributes() map[string]string {
	attrs := make(map[string]string, len(p.attributes))
	for k, v := range p.attributes {
		attrs[k] = v
	}
	return attrs
}

// ImageFilename returns the imageFilename attribute, or "".
func (p *Page) ImageFilename() string {
	return p.attributes["imageFilename"]
}

// ImageWidth returns the imageWidth attribute as an integer.
func (p *Page) ImageWidth() (int, bool) {
	return p.intAttribute("imageWidth")
}

// ImageHeight returns the imageHeight attribute as an integer.
func (p *Page) ImageHeight() (int, bool) {
	return p.intAttribute("imageHeight")
}

func (p *Page) intAttribute(key string) (int, bool) {
	v, ok := p.attributes[key]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Len returns the number of top-level elements.
func (p *Page) Len() int {
	return len(p.elements)
}

// Elements returns a copy of the list of top-level elements.
func (p *Page) Elements() []*Element {
	elements := make([]*Element, len(p.elements))
	copy(elements, p.elements)
	return elements
}

// Regions returns the top-level elements whose type is a region, in tree
// order.
func (p *Page) Regions() []*Element {
	var regions []*Element
	for _, e := range p.elements {
		if e.IsRegion() {
			regions = append(regions, e)
		}
	}
	return regions
}

// ReadingOrder returns a copy of the reading order index.
func (p *Page) ReadingOrder() []string {
	order := make([]string, len(p.readingOrder))
	copy(order, p.readingOrder)
	return order
}

// Find returns the first top-level or nested element matching the filter, in
// traversal order, or nil.
func (p *Page) Find(f Filter) *Element {
	return findFirst(p.elements, f)
}

// FindAll returns all elements matching the filter, in traversal order.
func (p *Page) FindAll(f Filter) []*Element {
	return findAll(p.elements, f, nil)
}

// Create builds a new element and inserts it as a top-level element. A
// negative index appends. See Set for the reading order rules.
func (p *Page) Create(pt PageType, index int, readingOrder bool, attributes map[string]string) (*Element, error) {
	el, err := NewElement(pt, attributes)
	if err != nil {
		return nil, err
	}
	if err := p.Set(el, index, readingOrder); err != nil {
		return nil, err
	}
	return el, nil
}

// Set inserts an element into the top-level element list at index (negative
// appends). If the element currently has a parent it is detached first.
//
// If readingOrder is true and the element is a region with an id, the id is
// inserted into the reading order at the same position. A duplicate id fails
// with ErrDuplicateID and leaves both the tree and the index unmodified.
func (p *Page) Set(el *Element, index int, readingOrder bool) error {
	if readingOrder && el.IsRegion() {
		if id := el.ID(); id != "" {
			if containsString(p.readingOrder, id) {
				return fmt.Errorf("%w: %q", ErrDuplicateID, id)
			}
			p.readingOrder = insertString(p.readingOrder, id, index)
		}
	}
	if el.parent != nil {
		el.parent.Delete(el)
	}
	el.parent = p
	p.elements = insertElement(p.elements, el, index)
	return nil
}

// Delete removes an element from the top-level element list by identity and
// returns it, or returns nil if it is not present. If the element's id is in
// the reading order it is removed from there as well; this is the only path
// that keeps both structures consistent.
func (p *Page) Delete(el *Element) *Element {
	for i, e := range p.elements {
		if e == el {
			p.elements = append(p.elements[:i], p.elements[i+1:]...)
			el.parent = nil
			if id := el.ID(); id != "" {
				p.removeFromReadingOrder(id)
			}
			return el
		}
	}
	return nil
}

// Clear removes top-level elements. With regionsOnly true, only region
// elements are deleted and the rest stay in order. The reading order is
// cleared unconditionally.
func (p *Page) Clear(regionsOnly bool) {
	if regionsOnly {
		for _, r := range p.Regions() {
			p.Delete(r)
		}
	} else {
		for _, e := range p.elements {
			e.parent = nil
		}
		p.elements = nil
	}
	p.readingOrder = nil
}

// CreateReadingOrder rebuilds the reading order from the current tree order
// of region elements. Regions without an id are skipped. If a reading order
// already exists and overwrite is false, the call is a no-op.
func (p *Page) CreateReadingOrder(overwrite bool) {
	if len(p.readingOrder) > 0 && !overwrite {
		logger.Warn("reading order already exists, not overwriting")
		return
	}
	p.readingOrder = p.regionIDs()
}

// SetReadingOrder replaces the reading order wholesale. The ids are not
// validated against the element list; this is a low-level escape hatch. A
// nil or empty slice clears the index. If apply is true the element list is
// reordered to match immediately.
func (p *Page) SetReadingOrder(ids []string, apply bool) {
	if len(ids) == 0 {
		p.readingOrder = nil
		return
	}
	p.readingOrder = make([]string, len(ids))
	copy(p.readingOrder, ids)
	if apply {
		p.ApplyReadingOrder()
	}
}

// ClearReadingOrder empties the reading order without touching elements.
func (p *Page) ClearReadingOrder() {
	p.readingOrder = nil
}

func (p *Page) removeFromReadingOrder(id string) {
	for i, v := range p.readingOrder {
		if v == id {
			p.readingOrder = append(p.readingOrder[:i], p.readingOrder[i+1:]...)
			return
		}
	}
}

// regionIDs returns the ids of region elements in tree order, skipping
// regions without an id.
func (p *Page) regionIDs() []string {
	var ids []string
	for _, e := range p.elements {
		if e.IsRegion() {
			if id := e.ID(); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// insertString inserts s into list at index, clamping the position. A
// negative index appends.
func insertString(list []string, s string, index int) []string {
	if index < 0 || index >= len(list) {
		return append(list, s)
	}
	list = append(list, "")
	copy(list[index+1:], list[index:])
	list[index] = s
	return list
}
