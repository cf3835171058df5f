package xmlparser

import (
	"io"
	"log/slog"
)

type parseOpts struct {
	allowDuplicates bool
	logger          *slog.Logger
}

// ParseOption configures Parse.
type ParseOption func(*parseOpts)

// AllowDuplicateParams makes a repeated attribute replace the earlier one
// instead of failing the parse.
func AllowDuplicateParams() ParseOption {
	return func(o *parseOpts) { o.allowDuplicates = true }
}

// WithLogger sets the logger used for debug tracing of the parse.
func WithLogger(l *slog.Logger) ParseOption {
	return func(o *parseOpts) { o.logger = l }
}

func newParseOpts(opts []ParseOption) *parseOpts {
	o := &parseOpts{}
	for _, f := range opts {
		f(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}
