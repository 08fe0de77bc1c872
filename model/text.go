package model

import (
	"sort"
	"strconv"

	"go.uber.org/zap"
)

// GetText resolves the text content of an element.
//
// Text leaves (Unicode, PlainText) return their own text. For any other
// element the TextEquiv children are consulted: index selects a TextEquiv by
// its index attribute (a negative index matches any), and source selects the
// text leaf type below it, Unicode by default.
//
// If several TextEquiv children qualify, the one with the lowest index
// attribute wins; a TextEquiv without an index attribute counts as index -1
// and therefore sorts first. The ambiguity is logged, never an error.
func GetText(el *Element, index int, source PageType) (string, bool) {
	if source != Unicode && source != PlainText {
		source = Unicode
	}
	if el.pagetype == Unicode || el.pagetype == PlainText {
		return el.Text()
	}

	var candidates []*Element
	if el.pagetype == TextEquiv {
		candidates = []*Element{el}
	} else {
		f := Filter{Types: []PageType{TextEquiv}}
		if index >= 0 {
			f.Attributes = map[string]string{"index": strconv.Itoa(index)}
		}
		candidates = el.FindAll(f)
	}
	if len(candidates) > 1 {
		logger.Warn("multiple TextEquiv elements found, selecting the lowest index",
			zap.String("id", el.ID()))
		sort.SliceStable(candidates, func(i, j int) bool {
			return textEquivIndex(candidates[i]) < textEquivIndex(candidates[j])
		})
	}
	if len(candidates) == 0 {
		return "", false
	}
	if leaf := candidates[0].Find(Filter{Types: []PageType{source}}); leaf != nil {
		return leaf.Text()
	}
	return "", false
}

// Unicode text of an element with default selection rules.
func GetUnicode(el *Element) (string, bool) {
	return GetText(el, -1, Unicode)
}

// textEquivIndex reads a TextEquiv's index attribute; absent or malformed
// values count as -1 so they sort before any explicit index.
func textEquivIndex(e *Element) int {
	v, ok := e.Attribute("index")
	if !ok {
		return -1
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return -1
	}
	return n
}
