package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Reference selects which point of a region's polygon is used as the sort
// key when deriving a reading order spatially.
type Reference int

const (
	// ReferenceMinimum uses the smallest coordinate on the sort axis.
	ReferenceMinimum Reference = iota
	// ReferenceMaximum uses the largest coordinate on the sort axis.
	ReferenceMaximum
	// ReferenceCentroid uses the arithmetic mean of all polygon points on
	// the sort axis.
	ReferenceCentroid
)

func (r Reference) String() string {
	switch r {
	case ReferenceMinimum:
		return "minimum"
	case ReferenceMaximum:
		return "maximum"
	case ReferenceCentroid:
		return "centroid"
	default:
		return "unknown"
	}
}

// ParseReference converts a reference name ("minimum", "maximum",
// "centroid") into a Reference.
func ParseReference(s string) (Reference, error) {
	switch s {
	case "minimum":
		return ReferenceMinimum, nil
	case "maximum":
		return ReferenceMaximum, nil
	case "centroid":
		return ReferenceCentroid, nil
	default:
		return 0, fmt.Errorf("pagexml: unknown sort reference %q", s)
	}
}

// Direction selects the axis and orientation of a spatial reading order
// sort.
type Direction int

const (
	TopBottom Direction = iota
	BottomTop
	LeftRight
	RightLeft
)

func (d Direction) String() string {
	switch d {
	case TopBottom:
		return "top-bottom"
	case BottomTop:
		return "bottom-top"
	case LeftRight:
		return "left-right"
	case RightLeft:
		return "right-left"
	default:
		return "unknown"
	}
}

// ParseDirection converts a direction name ("top-bottom", "bottom-top",
// "left-right", "right-left") into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "top-bottom":
		return TopBottom, nil
	case "bottom-top":
		return BottomTop, nil
	case "left-right":
		return LeftRight, nil
	case "right-left":
		return RightLeft, nil
	default:
		return 0, fmt.Errorf("pagexml: unknown sort direction %q", s)
	}
}

// sortKey is a two-part sort key: class groups elements (non-regions first,
// keyed regions next, everything else last) and value orders within the
// middle class. The sort over these keys must be stable so ties keep their
// original relative order.
type sortKey struct {
	class int
	value float64
}

func (k sortKey) less(other sortKey) bool {
	if k.class != other.class {
		return k.class < other.class
	}
	return k.value < other.value
}

// ApplyReadingOrder reorders the top-level elements in place to match the
// reading order: non-region elements first, then regions in reading order
// position, then regions whose id is not in the reading order. Within each
// group the prior relative order is preserved, so applying twice yields the
// same order.
func (p *Page) ApplyReadingOrder() {
	position := make(map[string]int, len(p.readingOrder))
	for i, id := range p.readingOrder {
		position[id] = i
	}
	keys := make([]sortKey, len(p.elements))
	for i, e := range p.elements {
		switch {
		case !e.IsRegion():
			keys[i] = sortKey{class: 0}
		default:
			if pos, ok := position[e.ID()]; ok && e.ID() != "" {
				keys[i] = sortKey{class: 1, value: float64(pos)}
			} else {
				keys[i] = sortKey{class: 2}
			}
		}
	}
	p.sortElementsStable(keys)
}

// SortReadingOrder derives a new reading order spatially from each region's
// Coords polygon. The sort axis follows direction (Y for top-bottom and
// bottom-top, X otherwise) and reference picks the polygon point used as the
// key; for bottom-top and right-left the key is negated. Non-region elements
// sort first, regions without usable coordinates last; the sort is stable.
//
// The reading order is rebuilt from the resulting element order. If apply is
// true, ApplyReadingOrder runs afterwards (idempotent at that point).
func (p *Page) SortReadingOrder(reference Reference, direction Direction, apply bool) {
	keys := make([]sortKey, len(p.elements))
	for i, e := range p.elements {
		keys[i] = coordsSortKey(e, reference, direction)
	}
	p.sortElementsStable(keys)
	p.readingOrder = p.regionIDs()
	if apply {
		p.ApplyReadingOrder()
	}
}

// sortElementsStable reorders p.elements by the parallel key slice using a
// stable sort.
func (p *Page) sortElementsStable(keys []sortKey) {
	type keyed struct {
		el  *Element
		key sortKey
	}
	pairs := make([]keyed, len(p.elements))
	for i, e := range p.elements {
		pairs[i] = keyed{el: e, key: keys[i]}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].key.less(pairs[j].key)
	})
	for i, pair := range pairs {
		p.elements[i] = pair.el
	}
}

// coordsSortKey computes the spatial sort key for one element.
func coordsSortKey(e *Element, reference Reference, direction Direction) sortKey {
	if !e.IsRegion() {
		return sortKey{class: 0}
	}
	coords := e.Coords()
	if coords == nil {
		return sortKey{class: 2}
	}
	points, ok := coords.Attribute("points")
	if !ok {
		return sortKey{class: 2}
	}
	values, err := pointsOnAxis(points, direction)
	if err != nil || len(values) == 0 {
		logger.Warn("region has unusable coordinates, sorting it last",
			zap.String("id", e.ID()), zap.Error(err))
		return sortKey{class: 2}
	}

	var key float64
	switch reference {
	case ReferenceMinimum:
		key = values[0]
		for _, v := range values[1:] {
			if v < key {
				key = v
			}
		}
	case ReferenceMaximum:
		key = values[0]
		for _, v := range values[1:] {
			if v > key {
				key = v
			}
		}
	case ReferenceCentroid:
		var sum float64
		for _, v := range values {
			sum += v
		}
		key = sum / float64(len(values))
	}
	if direction == BottomTop || direction == RightLeft {
		key = -key
	}
	return sortKey{class: 1, value: key}
}

// pointsOnAxis parses a PAGE points attribute (whitespace separated "x,y"
// pairs) and returns the coordinates of the axis selected by direction.
func pointsOnAxis(points string, direction Direction) ([]float64, error) {
	axis := 0
	if direction == TopBottom || direction == BottomTop {
		axis = 1
	}
	var values []float64
	for _, pair := range strings.Fields(points) {
		xy := strings.Split(pair, ",")
		if len(xy) != 2 {
			return nil, fmt.Errorf("pagexml: malformed point %q", pair)
		}
		v, err := strconv.ParseFloat(xy[axis], 64)
		if err != nil {
			return nil, fmt.Errorf("pagexml: malformed coordinate %q: %w", xy[axis], err)
		}
		values = append(values, v)
	}
	return values, nil
}
