package codec

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"github.com/jahtz/gopxml/model"
)

// Parse reads a PAGE-XML document and builds the typed page tree. The root
// element must contain exactly one Page child; its absence fails with
// ErrMissingPage. Malformed XML or read failures surface as wrapped errors.
func Parse(r io.Reader, opts Options) (*model.Page, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader
	if opts.Charset != "" {
		decoded, err := charsetReader(opts.Charset, r)
		if err != nil {
			return nil, err
		}
		r = decoded
		// The input is already UTF-8 at this point. A declared encoding
		// must not trigger a second decode.
		doc.ReadSettings.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
			return input, nil
		}
	}
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("pagexml: parsing document: %w", err)
	}
	return fromTree(doc, opts)
}

// ParseBytes parses a PAGE-XML document held in memory.
func ParseBytes(b []byte, opts Options) (*model.Page, error) {
	return Parse(bytes.NewReader(b), opts)
}

// ParseFile parses a PAGE-XML file and remembers its path on the returned
// page.
func ParseFile(path string, opts Options) (*model.Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pagexml: opening %s: %w", path, err)
	}
	defer f.Close()
	page, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("pagexml: %s: %w", path, err)
	}
	page.SetPath(path)
	return page, nil
}

// fromTree maps the generic XML tree onto a model.Page.
func fromTree(doc *etree.Document, opts Options) (*model.Page, error) {
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("pagexml: %w", io.ErrUnexpectedEOF)
	}
	pageEl := childByTag(root, "Page")
	if pageEl == nil {
		return nil, ErrMissingPage
	}

	attrs := make(map[string]string)
	for _, a := range pageEl.Attr {
		if a.Space == "" {
			attrs[a.Key] = a.Value
		}
	}
	if opts.RequireImageAttrs {
		for _, key := range []string{"imageFilename", "imageWidth", "imageHeight"} {
			if _, ok := attrs[key]; !ok {
				return nil, fmt.Errorf("%w: %s", ErrMissingImageAttr, key)
			}
		}
	}

	page := model.NewPage(attrs)

	// Metadata lives beside Page under the root.
	if md := childByTag(root, "Metadata"); md != nil {
		if el := childByTag(md, "Creator"); el != nil {
			page.SetCreator(el.Text())
		}
		if el := childByTag(md, "Created"); el != nil {
			page.SetCreated(el.Text())
		}
		if el := childByTag(md, "LastChange"); el != nil {
			page.SetLastChange(el.Text())
		}
	}

	log := opts.logger()
	for _, child := range pageEl.ChildElements() {
		if child.Tag == string(model.ReadingOrder) {
			order, err := decodeReadingOrder(child, opts, log)
			if err != nil {
				return nil, err
			}
			page.SetReadingOrder(order, false)
			continue
		}
		el, err := decodeElement(child, opts, log)
		if err != nil {
			return nil, err
		}
		if el == nil {
			continue
		}
		// The reading order comes only from the explicit ReadingOrder
		// block, never re-derived from the elements themselves.
		if err := page.Set(el, -1, false); err != nil {
			return nil, err
		}
	}
	return page, nil
}

// decodeReadingOrder collects every RegionRefIndexed entry below the
// ReadingOrder element and rebuilds the id list sorted by the entries' index
// attribute, not their document order. The subtree itself is not modeled.
func decodeReadingOrder(ro *etree.Element, opts Options, log *zap.Logger) ([]string, error) {
	type entry struct {
		index int
		ref   string
	}
	var entries []entry
	var collect func(el *etree.Element) error
	collect = func(el *etree.Element) error {
		for _, child := range el.ChildElements() {
			if child.Tag == string(model.RegionRefIndexed) {
				ref := child.SelectAttrValue("regionRef", "")
				idx, err := strconv.Atoi(child.SelectAttrValue("index", ""))
				if err != nil {
					if opts.Strict {
						return fmt.Errorf("pagexml: malformed RegionRefIndexed index: %w", err)
					}
					log.Warn("skipping RegionRefIndexed with malformed index",
						zap.String("regionRef", ref))
					continue
				}
				if ref != "" {
					entries = append(entries, entry{index: idx, ref: ref})
				}
				continue
			}
			if err := collect(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := collect(ro); err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].index < entries[j].index })
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ref
	}
	return ids, nil
}

// decodeElement converts one XML element and its subtree. Unknown tags fail
// with ErrUnknownElement in strict mode and are skipped with a warning
// otherwise (nil, nil).
func decodeElement(src *etree.Element, opts Options, log *zap.Logger) (*model.Element, error) {
	pt, err := model.ParsePageType(src.Tag)
	if err != nil {
		if opts.Strict {
			return nil, fmt.Errorf("%w: %q", ErrUnknownElement, src.Tag)
		}
		log.Warn("skipping unknown element", zap.String("tag", src.Tag))
		return nil, nil
	}
	attrs := make(map[string]string)
	for _, a := range src.Attr {
		if a.Space == "" {
			attrs[a.Key] = a.Value
		}
	}
	el, err := model.NewElement(pt, attrs)
	if err != nil {
		return nil, err
	}
	if text := src.Text(); strings.TrimSpace(text) != "" {
		el.SetText(text)
	}
	for _, child := range src.ChildElements() {
		sub, err := decodeElement(child, opts, log)
		if err != nil {
			return nil, err
		}
		if sub == nil {
			continue
		}
		if err := el.Add(sub); err != nil {
			return nil, err
		}
	}
	return el, nil
}

// childByTag returns the first child element with the given local tag name,
// ignoring namespace prefixes.
func childByTag(el *etree.Element, tag string) *etree.Element {
	for _, child := range el.ChildElements() {
		if child.Tag == tag {
			return child
		}
	}
	return nil
}
