package codec

import (
	"fmt"
	"sync"
)

// Schema holds the namespace declarations emitted on the root element of a
// serialized PAGE-XML document. Values are immutable once registered and
// safe to share.
type Schema struct {
	XMLNS          string
	XMLNSXSI       string
	SchemaLocation string
}

var (
	schemaMu sync.RWMutex
	schemas  = map[string]Schema{
		"2017": {
			XMLNS:    "http://schema.primaresearch.org/PAGE/gts/pagecontent/2017-07-15",
			XMLNSXSI: "http://www.w3.org/2001/XMLSchema-instance",
			SchemaLocation: "http://schema.primaresearch.org/PAGE/gts/pagecontent/2017-07-15 " +
				"http://schema.primaresearch.org/PAGE/gts/pagecontent/2017-07-15/pagecontent.xsd",
		},
		"2019": {
			XMLNS:    "http://schema.primaresearch.org/PAGE/gts/pagecontent/2019-07-15",
			XMLNSXSI: "http://www.w3.org/2001/XMLSchema-instance",
			SchemaLocation: "http://schema.primaresearch.org/PAGE/gts/pagecontent/2019-07-15 " +
				"http://schema.primaresearch.org/PAGE/gts/pagecontent/2019-07-15/pagecontent.xsd",
		},
	}
)

// DefaultSchema is used when no schema version is requested.
const DefaultSchema = "2019"

// GetSchema looks up a registered schema version ("2017" and "2019" by
// default). Fails with ErrUnknownSchema for unregistered names.
func GetSchema(name string) (Schema, error) {
	schemaMu.RLock()
	defer schemaMu.RUnlock()
	s, ok := schemas[name]
	if !ok {
		return Schema{}, fmt.Errorf("%w: %q", ErrUnknownSchema, name)
	}
	return s, nil
}

// RegisterSchema adds or overrides a schema version. Registration is
// process-wide and intended to run once at startup.
func RegisterSchema(name string, schema Schema) {
	schemaMu.Lock()
	defer schemaMu.Unlock()
	schemas[name] = schema
}

// CustomSchema builds an unregistered Schema from its three components.
func CustomSchema(xmlns, xmlnsXSI, schemaLocation string) Schema {
	return Schema{XMLNS: xmlns, XMLNSXSI: xmlnsXSI, SchemaLocation: schemaLocation}
}
