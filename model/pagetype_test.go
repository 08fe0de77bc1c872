package model

import (
	"errors"
	"testing"
)

func TestParsePageType(t *testing.T) {
	tests := []struct {
		tag     string
		wantErr bool
	}{
		{"TextRegion", false},
		{"TextLine", false},
		{"Coords", false},
		{"RegionRefIndexed", false},
		{"textregion", true}, // case-sensitive
		{"FooBarRegion", true},
		{"", true},
	}

	for _, tt := range tests {
		pt, err := ParsePageType(tt.tag)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePageType(%q): expected error, got %v", tt.tag, pt)
			} else if !errors.Is(err, ErrInvalidPageType) {
				t.Errorf("ParsePageType(%q): error = %v, want ErrInvalidPageType", tt.tag, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePageType(%q): unexpected error: %v", tt.tag, err)
			continue
		}
		if string(pt) != tt.tag {
			t.Errorf("ParsePageType(%q) = %q", tt.tag, pt)
		}
	}
}

func TestIsValidPageType(t *testing.T) {
	if !IsValidPageType("Word") {
		t.Error("Word should be valid")
	}
	if IsValidPageType("word") {
		t.Error("validity must be case-sensitive")
	}
	if IsValidPageType("NotAThing") {
		t.Error("unknown tags must be invalid")
	}
}

func TestPageTypeIsRegion(t *testing.T) {
	regions := []PageType{
		AdvertRegion, ChartRegion, ChemRegion, CustomRegion, GraphicRegion,
		ImageRegion, LineDrawingRegion, MapRegion, MathsRegion, MusicRegion,
		NoiseRegion, SeparatorRegion, TableRegion, TextRegion, UnknownRegion,
	}
	for _, pt := range regions {
		if !pt.IsRegion() {
			t.Errorf("%s should be a region", pt)
		}
	}

	nonRegions := []PageType{TextLine, Word, Glyph, Coords, TextEquiv, Unicode,
		PlainText, Baseline, Metadata, ReadingOrder, OrderedGroup, RegionRefIndexed}
	for _, pt := range nonRegions {
		if pt.IsRegion() {
			t.Errorf("%s should not be a region", pt)
		}
	}

	if PageType("FooBarRegion").IsRegion() {
		t.Error("invalid types are never regions")
	}
}
