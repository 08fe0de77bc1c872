package model

import "fmt"

// PageType identifies the element vocabulary of the PAGE content schema.
// The set of valid values is closed: a PageType is exactly one of the
// constants below, and its string value is the XML tag name.
//
// Reference: https://ocr-d.de/de/gt-guidelines/pagexml/pagecontent_xsd_Complex_Type_pc_PcGtsType.html
type PageType string

// Reading order structure.
const (
	ReadingOrder          PageType = "ReadingOrder"
	RegionRef             PageType = "RegionRef"
	RegionRefIndexed      PageType = "RegionRefIndexed"
	OrderedGroup          PageType = "OrderedGroup"
	UnorderedGroup        PageType = "UnorderedGroup"
	OrderedGroupIndexed   PageType = "OrderedGroupIndexed"
	UnorderedGroupIndexed PageType = "UnorderedGroupIndexed"
)

// Region types.
const (
	AdvertRegion      PageType = "AdvertRegion"
	ChartRegion       PageType = "ChartRegion"
	ChemRegion        PageType = "ChemRegion"
	CustomRegion      PageType = "CustomRegion"
	GraphicRegion     PageType = "GraphicRegion"
	ImageRegion       PageType = "ImageRegion"
	LineDrawingRegion PageType = "LineDrawingRegion"
	MapRegion         PageType = "MapRegion"
	MathsRegion       PageType = "MathsRegion"
	MusicRegion       PageType = "MusicRegion"
	NoiseRegion       PageType = "NoiseRegion"
	SeparatorRegion   PageType = "SeparatorRegion"
	TableRegion       PageType = "TableRegion"
	TextRegion        PageType = "TextRegion"
	UnknownRegion     PageType = "UnknownRegion"
)

// Structural and content elements.
const (
	AlternativeImage PageType = "AlternativeImage"
	Baseline         PageType = "Baseline"
	Border           PageType = "Border"
	Coords           PageType = "Coords"
	Glyph            PageType = "Glyph"
	Grapheme         PageType = "Grapheme"
	GraphemeGroup    PageType = "GraphemeGroup"
	Graphemes        PageType = "Graphemes"
	Grid             PageType = "Grid"
	GridPoints       PageType = "GridPoints"
	Label            PageType = "Label"
	Labels           PageType = "Labels"
	Layer            PageType = "Layer"
	Layers           PageType = "Layers"
	Metadata         PageType = "Metadata"
	MetadataItem     PageType = "MetadataItem"
	NonPrintingChar  PageType = "NonPrintingChar"
	PlainText        PageType = "PlainText"
	PrintSpace       PageType = "PrintSpace"
	Relation         PageType = "Relation"
	Relations        PageType = "Relations"
	Roles            PageType = "Roles"
	TableCellRole    PageType = "TableCellRole"
	TextEquiv        PageType = "TextEquiv"
	TextLine         PageType = "TextLine"
	TextStyle        PageType = "TextStyle"
	Unicode          PageType = "Unicode"
	UserAttribute    PageType = "UserAttribute"
	UserDefined      PageType = "UserDefined"
	Word             PageType = "Word"
)

// pageTypes holds every legal tag. The boolean marks region types.
var pageTypes = map[PageType]bool{
	ReadingOrder:          false,
	RegionRef:             false,
	RegionRefIndexed:      false,
	OrderedGroup:          false,
	UnorderedGroup:        false,
	OrderedGroupIndexed:   false,
	UnorderedGroupIndexed: false,

	AdvertRegion:      true,
	ChartRegion:       true,
	ChemRegion:        true,
	CustomRegion:      true,
	GraphicRegion:     true,
	ImageRegion:       true,
	LineDrawingRegion: true,
	MapRegion:         true,
	MathsRegion:       true,
	MusicRegion:       true,
	NoiseRegion:       true,
	SeparatorRegion:   true,
	TableRegion:       true,
	TextRegion:        true,
	UnknownRegion:     true,

	AlternativeImage: false,
	Baseline:         false,
	Border:           false,
	Coords:           false,
	Glyph:            false,
	Grapheme:         false,
	GraphemeGroup:    false,
	Graphemes:        false,
	Grid:             false,
	GridPoints:       false,
	Label:            false,
	Labels:           false,
	Layer:            false,
	Layers:           false,
	Metadata:         false,
	MetadataItem:     false,
	NonPrintingChar:  false,
	PlainText:        false,
	PrintSpace:       false,
	Relation:         false,
	Relations:        false,
	Roles:            false,
	TableCellRole:    false,
	TextEquiv:        false,
	TextLine:         false,
	TextStyle:        false,
	Unicode:          false,
	UserAttribute:    false,
	UserDefined:      false,
	Word:             false,
}

// ParsePageType converts a tag name into a PageType. The match is exact and
// case-sensitive; unknown tags fail with ErrInvalidPageType.
func ParsePageType(tag string) (PageType, error) {
	pt := PageType(tag)
	if _, ok := pageTypes[pt]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidPageType, tag)
	}
	return pt, nil
}

// IsValidPageType reports whether tag is a legal PAGE element tag.
func IsValidPageType(tag string) bool {
	_, ok := pageTypes[PageType(tag)]
	return ok
}

// IsRegion reports whether the type is one of the page region types
// (TextRegion, ImageRegion, TableRegion, ...).
func (pt PageType) IsRegion() bool {
	return pageTypes[pt]
}

// Valid reports whether the value is part of the closed vocabulary.
func (pt PageType) Valid() bool {
	_, ok := pageTypes[pt]
	return ok
}

func (pt PageType) String() string {
	return string(pt)
}
