package codec

import "errors"

var (
	// ErrMissingPage is returned when the parsed document has no Page
	// element below its root.
	ErrMissingPage = errors.New("pagexml: missing Page element")

	// ErrUnknownElement is returned in strict mode when a tag is not part
	// of the PAGE element vocabulary.
	ErrUnknownElement = errors.New("pagexml: unknown element")

	// ErrUnknownSchema is returned when serialization is requested with an
	// unregistered schema name.
	ErrUnknownSchema = errors.New("pagexml: unknown schema")

	// ErrMissingImageAttr is returned when image metadata validation is
	// requested and a required Page attribute is absent.
	ErrMissingImageAttr = errors.New("pagexml: missing required image attribute")
)
