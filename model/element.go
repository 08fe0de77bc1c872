package model

import "fmt"

// Parent is implemented by the two container types that can own elements:
// *Page for top-level elements and *Element for nested ones. An element is
// held by exactly one parent at a time.
type Parent interface {
	// Delete removes el from the container's child list and returns it,
	// or returns nil if el is not a direct child.
	Delete(el *Element) *Element

	isParent()
}

// Element is one node of the PAGE-XML tree: a typed XML element with string
// attributes, optional direct text content and ordered children.
type Element struct {
	pagetype   PageType
	attributes map[string]string
	text       string
	hasText    bool
	children   []*Element
	parent     Parent
}

// NewElement creates a detached element of the given type. The attribute map
// is copied; a nil map creates an element without attributes. Fails with
// ErrInvalidPageType if pt is not part of the PAGE vocabulary.
func NewElement(pt PageType, attributes map[string]string) (*Element, error) {
	if !pt.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPageType, string(pt))
	}
	e := &Element{
		pagetype:   pt,
		attributes: make(map[string]string, len(attributes)),
	}
	for k, v := range attributes {
		e.attributes[k] = v
	}
	return e, nil
}

func (e *Element) isParent() {}

// PageType returns the element's type.
func (e *Element) PageType() PageType {
	return e.pagetype
}

// SetPageType changes the element's type. Fails with ErrInvalidPageType if
// pt is not part of the PAGE vocabulary.
func (e *Element) SetPageType(pt PageType) error {
	if !pt.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPageType, string(pt))
	}
	e.pagetype = pt
	return nil
}

// IsRegion reports whether the element is a page region.
func (e *Element) IsRegion() bool {
	return e.pagetype.IsRegion()
}

// Parent returns the container currently holding this element, or nil for a
// detached element.
func (e *Element) Parent() Parent {
	return e.parent
}

// ID returns the element's id attribute, or "" if it has none.
func (e *Element) ID() string {
	return e.attributes["id"]
}

// Attribute returns the value of an attribute and whether it is present.
func (e *Element) Attribute(key string) (string, bool) {
	v, ok := e.attributes[key]
	return v, ok
}

// SetAttribute sets an attribute value.
func (e *Element) SetAttribute(key, value string) {
	e.attributes[key] = value
}

// RemoveAttribute deletes an attribute and returns its prior value.
func (e *Element) RemoveAttribute(key string) (string, bool) {
	v, ok := e.attributes[key]
	delete(e.attributes, key)
	return v, ok
}

// Attributes returns a copy of the attribute map.
func (e *Element) Attributes() map[string]string {
	attrs := make(map[string]string, len(e.attributes))
	for k, v := range e.attributes {
		attrs[k] = v
	}
	return attrs
}

// Text returns the element's direct text content and whether it is set.
// Text is only meaningful for leaf content elements (Unicode, PlainText).
func (e *Element) Text() (string, bool) {
	return e.text, e.hasText
}

// SetText sets the element's direct text content.
func (e *Element) SetText(text string) {
	e.text = text
	e.hasText = true
}

// RemoveText clears the element's direct text content.
func (e *Element) RemoveText() {
	e.text = ""
	e.hasText = false
}

// Len returns the number of direct children.
func (e *Element) Len() int {
	return len(e.children)
}

// Elements returns a copy of the list of direct children.
func (e *Element) Elements() []*Element {
	children := make([]*Element, len(e.children))
	copy(children, e.children)
	return children
}

// Add appends child to the element's children. If child currently has a
// parent it is detached from it first, so an element is never held by two
// containers. Fails with ErrCycle if child is the element itself or one of
// its ancestors.
func (e *Element) Add(child *Element) error {
	return e.Insert(-1, child)
}

// Insert adds child at the given position. A negative index or an index past
// the end appends. See Add for re-parenting and cycle rules.
func (e *Element) Insert(index int, child *Element) error {
	if child == e || e.hasAncestor(child) {
		return ErrCycle
	}
	if child.parent != nil {
		child.parent.Delete(child)
	}
	child.parent = e
	e.children = insertElement(e.children, child, index)
	return nil
}

// Create builds a new element of the given type and inserts it as a child.
// A negative index appends.
func (e *Element) Create(pt PageType, index int, attributes map[string]string) (*Element, error) {
	child, err := NewElement(pt, attributes)
	if err != nil {
		return nil, err
	}
	if err := e.Insert(index, child); err != nil {
		return nil, err
	}
	return child, nil
}

// Delete removes child from the element's children by identity and returns
// it, or returns nil if child is not a direct child.
func (e *Element) Delete(child *Element) *Element {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			return child
		}
	}
	return nil
}

// Detach removes the element from its parent and returns it. Detaching an
// element with no parent returns nil.
func (e *Element) Detach() *Element {
	if e.parent == nil {
		return nil
	}
	return e.parent.Delete(e)
}

// Clear removes all children. Attributes and text are kept.
func (e *Element) Clear() {
	for _, c := range e.children {
		c.parent = nil
	}
	e.children = nil
}

// Coords returns the element's Coords child. If the element itself is a
// Coords element it is returned directly; otherwise the first direct Coords
// child is returned, or nil.
func (e *Element) Coords() *Element {
	if e.pagetype == Coords {
		return e
	}
	return e.Find(Filter{Types: []PageType{Coords}})
}

// Baseline returns the element's Baseline child. If the element itself is a
// Baseline element it is returned directly; otherwise the first direct
// Baseline child is returned, or nil.
func (e *Element) Baseline() *Element {
	if e.pagetype == Baseline {
		return e
	}
	return e.Find(Filter{Types: []PageType{Baseline}})
}

// Find returns the first element below this one matching the filter, in
// traversal order (each child is tested before its own subtree), or nil.
func (e *Element) Find(f Filter) *Element {
	return findFirst(e.children, f)
}

// FindAll returns all elements below this one matching the filter, in
// traversal order.
func (e *Element) FindAll(f Filter) []*Element {
	return findAll(e.children, f, nil)
}

// hasAncestor reports whether candidate is on the element's parent chain.
func (e *Element) hasAncestor(candidate *Element) bool {
	p := e.parent
	for p != nil {
		el, ok := p.(*Element)
		if !ok {
			return false
		}
		if el == candidate {
			return true
		}
		p = el.parent
	}
	return false
}

// insertElement inserts el into list at index, clamping the position. A
// negative index appends.
func insertElement(list []*Element, el *Element, index int) []*Element {
	if index < 0 || index >= len(list) {
		return append(list, el)
	}
	list = append(list, nil)
	copy(list[index+1:], list[index:])
	list[index] = el
	return list
}
