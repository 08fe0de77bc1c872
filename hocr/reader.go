// Package hocr imports hOCR output (the HTML-based OCR result format) into a
// PAGE-XML document tree.
//
// The hOCR class hierarchy maps onto PAGE elements: ocr_par (or ocr_carea
// without paragraphs) becomes a TextRegion, ocr_line a TextLine and
// ocrx_word a Word, each with Coords derived from the bbox of its title
// attribute and text stored below a TextEquiv. The reading order is derived
// from document order.
package hocr

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/jahtz/gopxml/model"
)

// Import parses an hOCR document and builds a page tree for its first
// ocr_page. Fails if no ocr_page element is present.
func Import(r io.Reader) (*model.Page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("hocr: parsing HTML: %w", err)
	}
	pageNode := findClass(doc, "ocr_page")
	if pageNode == nil {
		return nil, fmt.Errorf("hocr: no ocr_page element found")
	}

	title := parseTitle(attr(pageNode, "title"))
	attrs := make(map[string]string)
	if img, ok := title["image"]; ok {
		attrs["imageFilename"] = strings.Trim(img, `"`)
	}
	if box, ok := parseBBox(title); ok {
		attrs["imageWidth"] = strconv.Itoa(box[2])
		attrs["imageHeight"] = strconv.Itoa(box[3])
	}
	page := model.NewPage(attrs)

	if err := importRegions(page, pageNode); err != nil {
		return nil, err
	}
	page.CreateReadingOrder(true)
	return page, nil
}

// ImportFile parses an hOCR file and remembers its path on the returned
// page.
func ImportFile(path string) (*model.Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("hocr: opening %s: %w", path, err)
	}
	defer f.Close()
	page, err := Import(f)
	if err != nil {
		return nil, err
	}
	page.SetPath(path)
	return page, nil
}

// importRegions walks the subtree below the page node and emits one
// TextRegion per ocr_par, or per ocr_carea that contains no paragraphs.
func importRegions(page *model.Page, n *html.Node) error {
	var walk func(*html.Node) error
	walk = func(node *html.Node) error {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch {
			case hasClass(c, "ocr_par"):
				if err := addRegion(page, c); err != nil {
					return err
				}
			case hasClass(c, "ocr_carea"):
				if findClass(c, "ocr_par") != nil {
					if err := walk(c); err != nil {
						return err
					}
				} else if err := addRegion(page, c); err != nil {
					return err
				}
			default:
				if err := walk(c); err != nil {
					return err
				}
			}
		}
		return nil
	}
	return walk(n)
}

// addRegion converts one paragraph or content-area node into a TextRegion
// with its lines and words.
func addRegion(page *model.Page, n *html.Node) error {
	region, err := model.NewElement(model.TextRegion, idAttrs(n))
	if err != nil {
		return err
	}
	addCoords(region, n)

	var lines []string
	var walk func(*html.Node) error
	walk = func(node *html.Node) error {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			if hasClass(c, "ocr_line") || hasClass(c, "ocr_header") || hasClass(c, "ocr_textfloat") {
				text, err := addLine(region, c)
				if err != nil {
					return err
				}
				if text != "" {
					lines = append(lines, text)
				}
				continue
			}
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(n); err != nil {
		return err
	}
	if len(lines) > 0 {
		addTextEquiv(region, strings.Join(lines, "\n"), "")
	}
	return page.Set(region, -1, false)
}

// addLine converts an ocr_line node into a TextLine and returns the line
// text.
func addLine(region *model.Element, n *html.Node) (string, error) {
	line, err := region.Create(model.TextLine, -1, idAttrs(n))
	if err != nil {
		return "", err
	}
	addCoords(line, n)

	var words []string
	var walk func(*html.Node) error
	walk = func(node *html.Node) error {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			if hasClass(c, "ocrx_word") {
				text := strings.TrimSpace(textContent(c))
				if text == "" {
					continue
				}
				words = append(words, text)
				word, err := line.Create(model.Word, -1, idAttrs(c))
				if err != nil {
					return err
				}
				addCoords(word, c)
				addTextEquiv(word, text, wordConfidence(c))
				continue
			}
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(n); err != nil {
		return "", err
	}
	text := strings.Join(words, " ")
	if text == "" {
		text = strings.TrimSpace(textContent(n))
	}
	if text != "" {
		addTextEquiv(line, text, "")
	}
	return text, nil
}

// addCoords attaches a Coords child derived from the node's bbox, if any.
func addCoords(el *model.Element, n *html.Node) {
	box, ok := parseBBox(parseTitle(attr(n, "title")))
	if !ok {
		return
	}
	points := fmt.Sprintf("%d,%d %d,%d %d,%d %d,%d",
		box[0], box[1], box[2], box[1], box[2], box[3], box[0], box[3])
	el.Create(model.Coords, -1, map[string]string{"points": points})
}

// addTextEquiv attaches TextEquiv/Unicode children holding text.
func addTextEquiv(el *model.Element, text, conf string) {
	attrs := map[string]string{}
	if conf != "" {
		attrs["conf"] = conf
	}
	te, err := el.Create(model.TextEquiv, -1, attrs)
	if err != nil {
		return
	}
	unicode, err := te.Create(model.Unicode, -1, nil)
	if err != nil {
		return
	}
	unicode.SetText(text)
}

// wordConfidence maps an x_wconf percentage onto the PAGE conf scale (0..1).
func wordConfidence(n *html.Node) string {
	title := parseTitle(attr(n, "title"))
	raw, ok := title["x_wconf"]
	if !ok {
		return ""
	}
	pct, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return ""
	}
	return strconv.FormatFloat(pct/100, 'f', 2, 64)
}

// idAttrs copies the node's id into a PAGE attribute map.
func idAttrs(n *html.Node) map[string]string {
	attrs := make(map[string]string)
	if id := attr(n, "id"); id != "" {
		attrs["id"] = id
	}
	return attrs
}

// parseTitle splits an hOCR title attribute into its semicolon-separated
// fields, keyed by the first token of each field.
func parseTitle(title string) map[string]string {
	fields := make(map[string]string)
	for _, part := range strings.Split(title, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, " ")
		fields[key] = strings.TrimSpace(value)
	}
	return fields
}

// parseBBox reads the bbox field (x0 y0 x1 y1) from parsed title fields.
func parseBBox(fields map[string]string) ([4]int, bool) {
	var box [4]int
	raw, ok := fields["bbox"]
	if !ok {
		return box, false
	}
	parts := strings.Fields(raw)
	if len(parts) != 4 {
		return box, false
	}
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return box, false
		}
		box[i] = v
	}
	return box, true
}

// findClass returns the first element in the subtree carrying the hOCR
// class, or nil.
func findClass(n *html.Node, class string) *html.Node {
	if n.Type == html.ElementNode && hasClass(n, class) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findClass(c, class); found != nil {
			return found
		}
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	for _, field := range strings.Fields(attr(n, "class")) {
		if field == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// textContent concatenates all text below a node.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}
