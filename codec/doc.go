// Package codec converts between PAGE-XML bytes and the typed document tree
// of the model package.
//
// Parsing consumes a generic XML tree (beevik/etree) and produces a
// [model.Page]; serialization walks the typed tree back into an etree
// document with the namespace declarations of a registered schema version,
// pretty printing and an XML declaration.
//
// The ReadingOrder subtree receives special handling on both sides: parsing
// collects RegionRefIndexed entries, sorts them by their index attribute and
// stores only the resulting id list; serialization emits the list as one
// OrderedGroup with indices renumbered 0..n-1 in list order. A round trip
// therefore normalizes non-contiguous or out-of-order index attributes.
package codec
