package codec

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/beevik/etree"

	"github.com/jahtz/gopxml/model"
)

// imageAttrs are emitted first on the Page element, in this order.
var imageAttrs = []string{"imageFilename", "imageWidth", "imageHeight"}

// Serialize renders the page as pretty-printed PAGE-XML using the named
// schema version. The page's last-change timestamp is refreshed as a side
// effect. Fails with ErrUnknownSchema for unregistered schema names.
func Serialize(page *model.Page, schema string) ([]byte, error) {
	doc, err := toTree(page, schema)
	if err != nil {
		return nil, err
	}
	return doc.WriteToBytes()
}

// Write renders the page as PAGE-XML onto w.
func Write(w io.Writer, page *model.Page, schema string) error {
	doc, err := toTree(page, schema)
	if err != nil {
		return err
	}
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("pagexml: writing document: %w", err)
	}
	return nil
}

// WriteFile renders the page as PAGE-XML into the named file.
func WriteFile(path string, page *model.Page, schema string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pagexml: creating %s: %w", path, err)
	}
	if err := Write(f, page, schema); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// toTree maps a model.Page onto a generic XML tree.
func toTree(page *model.Page, schema string) (*etree.Document, error) {
	if schema == "" {
		schema = DefaultSchema
	}
	s, err := GetSchema(schema)
	if err != nil {
		return nil, err
	}
	page.Touch()

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("PcGts")
	root.CreateAttr("xmlns", s.XMLNS)
	root.CreateAttr("xmlns:xsi", s.XMLNSXSI)
	root.CreateAttr("xsi:schemaLocation", s.SchemaLocation)

	metadata := root.CreateElement(string(model.Metadata))
	metadata.CreateElement("Creator").SetText(page.Creator())
	metadata.CreateElement("Created").SetText(page.Created())
	metadata.CreateElement("LastChange").SetText(page.LastChange())

	pageEl := root.CreateElement("Page")
	attrs := page.Attributes()
	for _, key := range imageAttrs {
		if v, ok := attrs[key]; ok {
			pageEl.CreateAttr(key, v)
			delete(attrs, key)
		}
	}
	for _, key := range sortedKeys(attrs) {
		pageEl.CreateAttr(key, attrs[key])
	}

	// The list order is authoritative here: entries are renumbered
	// 0..n-1 regardless of the index attributes they were parsed with.
	if order := page.ReadingOrder(); len(order) > 0 {
		ro := pageEl.CreateElement(string(model.ReadingOrder))
		group := ro.CreateElement(string(model.OrderedGroup))
		group.CreateAttr("id", "g0")
		for i, id := range order {
			ref := group.CreateElement(string(model.RegionRefIndexed))
			ref.CreateAttr("index", strconv.Itoa(i))
			ref.CreateAttr("regionRef", id)
		}
	}

	for _, el := range page.Elements() {
		encodeElement(pageEl, el)
	}

	doc.Indent(2)
	return doc, nil
}

// encodeElement appends the XML form of el and its subtree to parent. The id
// attribute leads, remaining attributes follow in sorted order.
func encodeElement(parent *etree.Element, el *model.Element) {
	dst := parent.CreateElement(string(el.PageType()))
	attrs := el.Attributes()
	if id, ok := attrs["id"]; ok {
		dst.CreateAttr("id", id)
		delete(attrs, "id")
	}
	for _, key := range sortedKeys(attrs) {
		dst.CreateAttr(key, attrs[key])
	}
	if text, ok := el.Text(); ok {
		dst.SetText(text)
	}
	for _, child := range el.Elements() {
		encodeElement(dst, child)
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
