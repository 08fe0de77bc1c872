package codec

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"
)

// Options control parsing. The zero value parses leniently: unknown elements
// are skipped with a warning, image metadata is not validated and input is
// assumed to declare its own charset (UTF-8 otherwise).
type Options struct {
	// Strict aborts the parse at the first element whose tag is not part
	// of the PAGE vocabulary instead of skipping its subtree.
	Strict bool

	// RequireImageAttrs validates that the Page element carries
	// imageFilename, imageWidth and imageHeight.
	RequireImageAttrs bool

	// Charset forces a character encoding for the input (an IANA label
	// such as "iso-8859-1"), overriding the XML declaration.
	Charset string

	// Logger receives skip warnings during lenient parsing. Defaults to a
	// no-op logger.
	Logger *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// charsetReader decodes input declared with the given IANA charset label.
// It is installed as the etree CharsetReader so non-UTF-8 PAGE files parse
// transparently.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("pagexml: unsupported charset %q", charset)
	}
	return enc.NewDecoder().Reader(input), nil
}
