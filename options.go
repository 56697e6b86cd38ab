package kparsec2

import (
	"github.com/go-logr/logr"

	"github.com/belyaev-mikhail/kparsec2/input"
)

type locationKind int

const (
	lineColumn locationKind = iota
	offsets
	managed
)

type config struct {
	locations     locationKind
	filename      string
	allowTrailing bool
	logger        *logr.Logger
	bufferSize    int
}

// An Option to modify how ParseString and ParseReader run a parser.
type Option func(c *config)

// Offsets makes positions rune offsets rather than lines and columns.
func Offsets() Option {
	return func(c *config) { c.locations = offsets }
}

// ManagedLocations defers computing lines and columns until a position is rendered.
func ManagedLocations() Option {
	return func(c *config) { c.locations = managed }
}

// Filename is an Option that sets the filename used in the positions of diagnostics.
func Filename(filename string) Option {
	return func(c *config) { c.filename = filename }
}

// AllowTrailing allows the parser to match a prefix of the input only.
//
// By default the parser must consume the whole input.
func AllowTrailing() Option {
	return func(c *config) { c.allowTrailing = true }
}

// Tracing logs the invocations of the top-level parser, see Trace.
//
// Parsers are opaque, so nested parsers are only logged where the grammar wraps them with Trace
// itself.
func Tracing(logger logr.Logger) Option {
	return func(c *config) { c.logger = &logger }
}

// BufferSize sets the number of runes ParseReader reads at a time.
func BufferSize(n int) Option {
	return func(c *config) { c.bufferSize = n }
}

func configure(options []Option) *config {
	c := &config{bufferSize: input.DefaultBufferSize}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *config) location(src input.Source[rune]) input.Location[rune] {
	switch c.locations {
	case offsets:
		return input.OffsetLocation[rune]{}
	case managed:
		return input.NewLocationManager(src).Start()
	}
	return input.StartOfText()
}
