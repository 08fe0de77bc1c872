package hocr

import (
	"strings"
	"testing"

	"github.com/jahtz/gopxml/model"
)

const sampleHOCR = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"/></head>
<body>
  <div class="ocr_page" id="page_1" title='image "scan.png"; bbox 0 0 2480 3508'>
    <div class="ocr_carea" id="block_1" title="bbox 100 100 2300 600">
      <p class="ocr_par" id="par_1" title="bbox 100 100 2300 300">
        <span class="ocr_line" id="line_1" title="bbox 100 100 2300 160">
          <span class="ocrx_word" id="word_1" title="bbox 100 100 400 160; x_wconf 95">Hello</span>
          <span class="ocrx_word" id="word_2" title="bbox 420 100 800 160; x_wconf 87">world</span>
        </span>
        <span class="ocr_line" id="line_2" title="bbox 100 200 2300 260">
          <span class="ocrx_word" id="word_3" title="bbox 100 200 500 260">again</span>
        </span>
      </p>
    </div>
    <div class="ocr_carea" id="block_2" title="bbox 100 700 2300 900">
      <span class="ocr_line" id="line_3" title="bbox 100 700 2300 760">
        <span class="ocrx_word" id="word_4" title="bbox 100 700 400 760">bare</span>
      </span>
    </div>
  </div>
</body>
</html>`

func importSample(t *testing.T) *model.Page {
	t.Helper()
	page, err := Import(strings.NewReader(sampleHOCR))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	return page
}

func TestImportPageAttributes(t *testing.T) {
	page := importSample(t)
	if page.ImageFilename() != "scan.png" {
		t.Errorf("imageFilename = %q", page.ImageFilename())
	}
	if w, ok := page.ImageWidth(); !ok || w != 2480 {
		t.Errorf("imageWidth = %d, %v", w, ok)
	}
	if h, ok := page.ImageHeight(); !ok || h != 3508 {
		t.Errorf("imageHeight = %d, %v", h, ok)
	}
}

func TestImportRegions(t *testing.T) {
	page := importSample(t)

	// par_1 from its ocr_par, block_2 directly because it has no
	// paragraphs.
	regions := page.Regions()
	if len(regions) != 2 {
		t.Fatalf("regions = %d, want 2", len(regions))
	}
	if regions[0].ID() != "par_1" || regions[1].ID() != "block_2" {
		t.Errorf("region ids = %v", []string{regions[0].ID(), regions[1].ID()})
	}

	order := page.ReadingOrder()
	if len(order) != 2 || order[0] != "par_1" || order[1] != "block_2" {
		t.Errorf("reading order = %v", order)
	}
}

func TestImportLinesAndWords(t *testing.T) {
	page := importSample(t)
	region := page.Find(model.Filter{IDs: []string{"par_1"}})
	if region == nil {
		t.Fatal("par_1 not found")
	}

	lines := region.FindAll(model.Filter{Types: []model.PageType{model.TextLine}})
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if got, _ := model.GetUnicode(lines[0]); got != "Hello world" {
		t.Errorf("line 1 text = %q", got)
	}
	if got, _ := model.GetUnicode(region); got != "Hello world\nagain" {
		t.Errorf("region text = %q", got)
	}

	words := lines[0].FindAll(model.Filter{Types: []model.PageType{model.Word}})
	if len(words) != 2 {
		t.Fatalf("words = %d, want 2", len(words))
	}
	if got, _ := model.GetUnicode(words[1]); got != "world" {
		t.Errorf("word text = %q", got)
	}
}

func TestImportCoords(t *testing.T) {
	page := importSample(t)
	word := page.Find(model.Filter{IDs: []string{"word_1"}, Depth: -1})
	if word == nil {
		t.Fatal("word_1 not found")
	}
	coords := word.Coords()
	if coords == nil {
		t.Fatal("word_1 should carry Coords")
	}
	points, _ := coords.Attribute("points")
	if points != "100,100 400,100 400,160 100,160" {
		t.Errorf("points = %q", points)
	}
}

func TestImportWordConfidence(t *testing.T) {
	page := importSample(t)
	word := page.Find(model.Filter{IDs: []string{"word_1"}, Depth: -1})
	te := word.Find(model.Filter{Types: []model.PageType{model.TextEquiv}})
	if te == nil {
		t.Fatal("word_1 should carry a TextEquiv")
	}
	if conf, _ := te.Attribute("conf"); conf != "0.95" {
		t.Errorf("conf = %q", conf)
	}
}

func TestImportNoPage(t *testing.T) {
	if _, err := Import(strings.NewReader("<html><body><p>plain</p></body></html>")); err == nil {
		t.Fatal("document without ocr_page must fail")
	}
}
