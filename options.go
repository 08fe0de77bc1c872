package gopxml

import (
	"go.uber.org/zap"

	"github.com/jahtz/gopxml/codec"
)

// options holds the resolved configuration for the facade functions.
type options struct {
	codec  codec.Options
	schema string
}

func defaultOptions() options {
	return options{schema: codec.DefaultSchema}
}

// Option configures Open, Save and friends.
type Option func(*options)

// WithStrict aborts parsing at the first unknown element instead of
// skipping it.
func WithStrict() Option {
	return func(o *options) { o.codec.Strict = true }
}

// WithRequiredImageAttrs validates that the Page element carries
// imageFilename, imageWidth and imageHeight.
func WithRequiredImageAttrs() Option {
	return func(o *options) { o.codec.RequireImageAttrs = true }
}

// WithCharset forces a character encoding for the input (an IANA label such
// as "iso-8859-1"), overriding the XML declaration.
func WithCharset(charset string) Option {
	return func(o *options) { o.codec.Charset = charset }
}

// WithLogger routes parse warnings to the given logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.codec.Logger = l }
}

// WithSchema selects the schema version used for serialization ("2017",
// "2019" or a version registered with codec.RegisterSchema).
func WithSchema(name string) Option {
	return func(o *options) { o.schema = name }
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
