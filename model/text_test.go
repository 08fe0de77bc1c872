package model

import (
	"strconv"
	"testing"
)

// textLine builds a TextLine carrying one TextEquiv per entry. An entry
// with index < 0 gets no index attribute.
func textLine(t *testing.T, entries []struct {
	index int
	text  string
}) *Element {
	t.Helper()
	line := mustElement(t, TextLine, nil)
	for _, entry := range entries {
		var attrs map[string]string
		if entry.index >= 0 {
			attrs = map[string]string{"index": strconv.Itoa(entry.index)}
		}
		te, err := line.Create(TextEquiv, -1, attrs)
		if err != nil {
			t.Fatal(err)
		}
		leaf, err := te.Create(Unicode, -1, nil)
		if err != nil {
			t.Fatal(err)
		}
		leaf.SetText(entry.text)
	}
	return line
}

func TestGetTextLeaf(t *testing.T) {
	leaf := mustElement(t, Unicode, nil)
	leaf.SetText("hello")
	if got, ok := GetText(leaf, -1, Unicode); !ok || got != "hello" {
		t.Errorf("GetText = %q, %v", got, ok)
	}

	plain := mustElement(t, PlainText, nil)
	if _, ok := GetText(plain, -1, Unicode); ok {
		t.Error("leaf without text must report absence")
	}
}

func TestGetTextSingleEquiv(t *testing.T) {
	line := textLine(t, []struct {
		index int
		text  string
	}{{0, "only"}})
	if got, ok := GetText(line, -1, Unicode); !ok || got != "only" {
		t.Errorf("GetText = %q, %v", got, ok)
	}
	if got, ok := GetUnicode(line); !ok || got != "only" {
		t.Errorf("GetUnicode = %q, %v", got, ok)
	}
}

func TestGetTextByIndex(t *testing.T) {
	line := textLine(t, []struct {
		index int
		text  string
	}{{0, "first"}, {1, "second"}})

	if got, _ := GetText(line, 1, Unicode); got != "second" {
		t.Errorf("GetText(index=1) = %q, want second", got)
	}
	if _, ok := GetText(line, 5, Unicode); ok {
		t.Error("absent index must report absence")
	}
}

func TestGetTextTieBreak(t *testing.T) {
	// A TextEquiv without an index attribute counts as index -1 and wins
	// against any explicit index.
	line := textLine(t, []struct {
		index int
		text  string
	}{{1, "B"}, {-1, "A"}})

	if got, _ := GetText(line, -1, Unicode); got != "A" {
		t.Errorf("GetText = %q, want A", got)
	}
}

func TestGetTextMalformedIndexCountsAsMinusOne(t *testing.T) {
	line := mustElement(t, TextLine, nil)
	te1, _ := line.Create(TextEquiv, -1, map[string]string{"index": "2"})
	leaf1, _ := te1.Create(Unicode, -1, nil)
	leaf1.SetText("explicit")
	te2, _ := line.Create(TextEquiv, -1, map[string]string{"index": "junk"})
	leaf2, _ := te2.Create(Unicode, -1, nil)
	leaf2.SetText("malformed")

	if got, _ := GetText(line, -1, Unicode); got != "malformed" {
		t.Errorf("GetText = %q, want malformed", got)
	}
}

func TestGetTextPlainTextSource(t *testing.T) {
	line := mustElement(t, TextLine, nil)
	te, _ := line.Create(TextEquiv, -1, nil)
	uni, _ := te.Create(Unicode, -1, nil)
	uni.SetText("unicode")
	plain, _ := te.Create(PlainText, -1, nil)
	plain.SetText("plain")

	if got, _ := GetText(line, -1, PlainText); got != "plain" {
		t.Errorf("GetText(PlainText) = %q, want plain", got)
	}
	// Any other source falls back to Unicode.
	if got, _ := GetText(line, -1, TextRegion); got != "unicode" {
		t.Errorf("GetText(fallback) = %q, want unicode", got)
	}
}

func TestGetTextOnTextEquiv(t *testing.T) {
	te := mustElement(t, TextEquiv, nil)
	leaf, _ := te.Create(Unicode, -1, nil)
	leaf.SetText("direct")
	if got, _ := GetText(te, -1, Unicode); got != "direct" {
		t.Errorf("GetText = %q, want direct", got)
	}
}
