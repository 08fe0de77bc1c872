// Package model provides the in-memory document tree for PAGE-XML content.
//
// This package defines the user-facing data structures for layout and text
// ground truth of document page images. All parsing operations ultimately
// produce these types, making them the primary API for querying and mutating
// PAGE-XML content.
//
// # Document Structure
//
// The [Page] type represents the Page element of a PAGE-XML file: its
// attributes (image metadata), document metadata (creator and timestamps),
// its ordered top-level elements and the reading order index:
//
//	page := model.NewPage(map[string]string{"imageFilename": "0001.png"})
//	region, err := page.Create(model.TextRegion, -1, true, map[string]string{"id": "r1"})
//
// Every other element of the tree is an [Element]: a typed node with string
// attributes, optional text content and ordered children. Element types are
// drawn from the closed [PageType] vocabulary.
//
// # Reading Order
//
// The reading order is a denormalized index over the page's region elements:
// an ordered list of region ids describing the logical reading sequence,
// independent of tree order. Page.Set and Page.Delete keep the index and the
// element list consistent; the ReadingOrder family of methods rebuilds,
// replaces, applies or spatially re-derives the index.
//
// # Searching
//
// Find and FindAll locate elements by id, type and attribute values with
// explicit depth control: depth 0 scans direct children only, -1 recurses
// without limit, and n > 0 descends at most n additional levels.
//
// The tree is a mutable, single-threaded data structure. Sharing a Page
// across goroutines requires external synchronization.
package model
