package jsondiff

import (
	"fmt"

	"github.com/rs/zerolog"
)

// DefaultEscape is the prefix used to spell marker symbols as strings.
const DefaultEscape = "$"

// Options configures diffing, patching and marshaling. An Options value is
// never modified: the With methods return a changed copy, so a value can be
// shared between goroutines.
type Options struct {
	syntax       Syntax
	escape       string
	excludePaths map[string]struct{}
	convertFunc  func(value interface{}) interface{}

	load   bool
	loader Loader
	dump   bool
	dumper Dumper

	marshal bool
	logger  zerolog.Logger
}

// The default options: the compact syntax, no loading, dumping or marshaling.
var DefaultOptions = Options{logger: zerolog.Nop()}

// Default options for each of the builtin syntaxes.
var (
	CompactOptions   = DefaultOptions.WithSyntax(Compact)
	ExplicitOptions  = DefaultOptions.WithSyntax(Explicit)
	SymmetricOptions = DefaultOptions.WithSyntax(Symmetric)
	RightOnlyOptions = DefaultOptions.WithSyntax(RightOnly)
)

// OptionsFor returns the default options for a builtin syntax name. Unknown
// names fail with ErrUnknownSyntax.
func OptionsFor(name string) (Options, error) {
	syntax, err := SyntaxByName(name)
	if err != nil {
		return Options{}, err
	}
	return DefaultOptions.WithSyntax(syntax), nil
}

// Syntax returns the configured syntax.
func (options Options) Syntax() Syntax {
	if options.syntax == nil {
		return Compact
	}
	return options.syntax
}

// Escape returns the configured escape prefix.
func (options Options) Escape() string {
	if options.escape == "" {
		return DefaultEscape
	}
	return options.escape
}

// WithSyntax creates a new option object using the given syntax.
func (options Options) WithSyntax(syntax Syntax) Options {
	options.syntax = syntax
	return options
}

// WithSyntaxName is WithSyntax for one of the builtin syntaxes.
func (options Options) WithSyntaxName(name string) (Options, error) {
	syntax, err := SyntaxByName(name)
	if err != nil {
		return options, err
	}
	return options.WithSyntax(syntax), nil
}

// WithEscape creates a new option object with a given escape prefix for marshaling.
func (options Options) WithEscape(escape string) Options {
	options.escape = escape
	return options
}

// WithExcludePaths creates a new option object which ignores the given
// dotted key paths (e.g. "a.b") in both documents.
func (options Options) WithExcludePaths(paths ...string) Options {
	excluded := make(map[string]struct{}, len(options.excludePaths)+len(paths))
	for path := range options.excludePaths {
		excluded[path] = struct{}{}
	}
	for _, path := range paths {
		excluded[path] = struct{}{}
	}
	options.excludePaths = excluded
	return options
}

// WithConvertFunc creates a new option object with a given convert function.
//
// The convert function is applied by Diff and Patch to every value it looks at.
// This can be used to support additional types by converting it into one of the supported types.
func (options Options) WithConvertFunc(convertFunc func(value interface{}) interface{}) Options {
	options.convertFunc = convertFunc
	return options
}

// WithLoad creates a new option object which decodes the inputs of Diff,
// Patch and Unpatch with the loader before using them.
func (options Options) WithLoad(load bool) Options {
	options.load = load
	return options
}

// WithLoader sets the loader used when loading is enabled. The default is JSONLoader.
func (options Options) WithLoader(loader Loader) Options {
	options.loader = loader
	return options
}

// WithDump creates a new option object which marshals the result of Diff
// and encodes it with the dumper.
func (options Options) WithDump(dump bool) Options {
	options.dump = dump
	return options
}

// WithDumper sets the dumper used when dumping is enabled. The default is JSONDumper.
func (options Options) WithDumper(dumper Dumper) Options {
	options.dumper = dumper
	return options
}

// WithMarshal creates a new option object which escapes marker symbols in
// the result of Diff and unescapes the fragments passed to Patch and Unpatch.
func (options Options) WithMarshal(marshal bool) Options {
	options.marshal = marshal
	return options
}

// WithLogger creates a new option object logging to the given logger.
func (options Options) WithLogger(logger zerolog.Logger) Options {
	options.logger = logger
	return options
}

func (options Options) getLoader() Loader {
	if options.loader == nil {
		return JSONLoader{}
	}
	return options.loader
}

func (options Options) getDumper() Dumper {
	if options.dumper == nil {
		return JSONDumper{}
	}
	return options.dumper
}

func (options Options) String() string {
	return fmt.Sprintf("Options{syntax: %s, escape: %q, excluded: %d}", syntaxName(options.Syntax()), options.Escape(), len(options.excludePaths))
}
