package model

// Filter selects elements in Find and FindAll. Unset criteria match
// everything: an element matches when its id is in IDs (if set), its type is
// in Types (if set) and it carries every attribute in Attributes with the
// given value.
//
// Depth bounds the recursion below the searched container: 0 scans direct
// children only, -1 recurses without limit, and n > 0 descends at most n
// additional levels below the direct children.
type Filter struct {
	IDs        []string
	Types      []PageType
	Attributes map[string]string
	Depth      int
}

func (f Filter) matches(e *Element) bool {
	if len(f.IDs) > 0 {
		id := e.ID()
		if id == "" || !containsString(f.IDs, id) {
			return false
		}
	}
	if len(f.Types) > 0 {
		found := false
		for _, t := range f.Types {
			if e.pagetype == t {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for k, v := range f.Attributes {
		if got, ok := e.attributes[k]; !ok || got != v {
			return false
		}
	}
	return true
}

// step returns the filter for the next recursion level.
func (f Filter) step() Filter {
	next := f
	next.Depth = max(-1, f.Depth-1)
	return next
}

// findFirst returns the first match in traversal order: each child is tested
// before its own subtree is descended into.
func findFirst(children []*Element, f Filter) *Element {
	for _, child := range children {
		if f.matches(child) {
			return child
		}
		if f.Depth != 0 {
			if found := findFirst(child.children, f.step()); found != nil {
				return found
			}
		}
	}
	return nil
}

// findAll accumulates every match of a full subtree scan bounded by depth.
func findAll(children []*Element, f Filter, results []*Element) []*Element {
	for _, child := range children {
		if f.matches(child) {
			results = append(results, child)
		}
		if f.Depth != 0 {
			results = findAll(child.children, f.step(), results)
		}
	}
	return results
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
