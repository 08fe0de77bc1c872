// Package gopxml provides a document-tree model and manipulation toolkit for
// PAGE-XML, the layout and text ground-truth schema for document page
// images.
//
// Basic usage:
//
//	page, err := gopxml.Open("0001.xml")
//	if err != nil {
//	    // handle error
//	}
//	for _, region := range page.Regions() {
//	    text, _ := model.GetUnicode(region)
//	    fmt.Println(text)
//	}
//	err = gopxml.Save(page, "0001.xml")
//
// With options:
//
//	page, err := gopxml.Open("0001.xml",
//	    gopxml.WithStrict(),
//	    gopxml.WithCharset("iso-8859-1"),
//	    gopxml.WithLogger(logger))
//
// For advanced use cases, the lower-level model and codec packages are also
// available.
package gopxml

import (
	"io"

	"github.com/jahtz/gopxml/codec"
	"github.com/jahtz/gopxml/model"
)

// Open parses a PAGE-XML file into a document tree. The returned page
// remembers its source path.
func Open(path string, opts ...Option) (*model.Page, error) {
	return codec.ParseFile(path, buildOptions(opts).codec)
}

// OpenReader parses PAGE-XML from an io.Reader.
func OpenReader(r io.Reader, opts ...Option) (*model.Page, error) {
	return codec.Parse(r, buildOptions(opts).codec)
}

// Save writes the page as pretty-printed PAGE-XML to the named file,
// refreshing its last-change timestamp. The schema version defaults to
// codec.DefaultSchema and can be overridden with WithSchema.
func Save(page *model.Page, path string, opts ...Option) error {
	return codec.WriteFile(path, page, buildOptions(opts).schema)
}

// Serialize renders the page as PAGE-XML bytes.
func Serialize(page *model.Page, opts ...Option) ([]byte, error) {
	return codec.Serialize(page, buildOptions(opts).schema)
}

// Must is a helper that wraps a call to a function returning (T, error) and
// panics if the error is non-nil. It is intended for use in scripts or tests
// where error handling would be cumbersome.
//
// Example:
//
//	page := gopxml.Must(gopxml.Open("0001.xml"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
