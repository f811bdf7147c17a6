package readinput

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/Azhovan/readinput/linesource"
)

var (
	stdin  LineSource = linesource.NewReader(os.Stdin)
	stdout Output     = linesource.NewWriter(os.Stdout)

	discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// check is one registered constraint with its optional rejection message.
type check[T any] struct {
	constraint Constraint[T]
	msg        Optional[string]
	label      string // Used by Describe (e.g., "[1, 100)")
}

// Builder accumulates the configuration of one read.
// Builder is a value: every method returns a modified copy and never changes the receiver,
// so a partially configured Builder can be shared and extended independently.
type Builder[T any] struct {
	parser   Parser[T]
	prompt   Optional[string]
	repeat   bool
	def      Optional[T]
	err      Optional[string]
	checks   []check[T]
	onParse  func(*ParseError) (string, bool)
	messages Messages
	source   LineSource
	output   Output
	logger   *slog.Logger
}

// New creates a Builder using DefaultParser for T.
// If T has no parser, Get returns ErrNoParser.
func New[T any]() Builder[T] {
	p, _ := DefaultParser[T]()
	return NewWithParser(p)
}

// NewWithParser creates a Builder that parses input with p.
func NewWithParser[T any](p Parser[T]) Builder[T] {
	return Builder[T]{
		parser:   p,
		messages: DefaultMessages(),
	}
}

// NewRune creates a Builder reading a single character.
func NewRune() Builder[rune] {
	return NewWithParser(RuneParser())
}

// Prompt sets the message shown before the first read.
func (b Builder[T]) Prompt(msg string) Builder[T] {
	b.prompt = Some(msg)
	return b
}

// RepeatPrompt sets the prompt and shows it again before every retry.
func (b Builder[T]) RepeatPrompt(msg string) Builder[T] {
	b.prompt = Some(msg)
	b.repeat = true
	return b
}

// Repeat controls whether the prompt is shown again before every retry. Default: false.
func (b Builder[T]) Repeat(repeat bool) Builder[T] {
	b.repeat = repeat
	return b
}

// Default sets the value returned when the user submits an empty line.
// The default is returned as is: it is neither parsed nor checked against constraints.
func (b Builder[T]) Default(v T) Builder[T] {
	b.def = Some(v)
	return b
}

// Err sets the generic message shown when nothing more specific applies.
func (b Builder[T]) Err(msg string) Builder[T] {
	b.err = Some(msg)
	return b
}

// Check adds a test that rejects with the generic message.
func (b Builder[T]) Check(fn func(T) bool) Builder[T] {
	return b.with(check[T]{constraint: Predicate[T](fn), label: "predicate"})
}

// CheckMsg adds a test that rejects with msg.
func (b Builder[T]) CheckMsg(fn func(T) bool, msg string) Builder[T] {
	return b.with(check[T]{constraint: Predicate[T](fn), msg: Some(msg), label: "predicate"})
}

// Inside adds a range, collection or predicate constraint that rejects with the generic message.
func (b Builder[T]) Inside(c Constraint[T]) Builder[T] {
	return b.with(check[T]{constraint: c, label: constraintLabel(c)})
}

// InsideMsg adds a range, collection or predicate constraint that rejects with msg.
func (b Builder[T]) InsideMsg(c Constraint[T], msg string) Builder[T] {
	return b.with(check[T]{constraint: c, msg: Some(msg), label: constraintLabel(c)})
}

// ClearChecks removes all constraints.
func (b Builder[T]) ClearChecks() Builder[T] {
	b.checks = nil
	return b
}

// OnParseError sets the handler consulted first when a line fails to parse.
// Returning false falls back to the message table, then to the generic message.
func (b Builder[T]) OnParseError(fn func(*ParseError) (string, bool)) Builder[T] {
	b.onParse = fn
	return b
}

// Messages replaces the message table. Default: DefaultMessages().
func (b Builder[T]) Messages(m Messages) Builder[T] {
	b.messages = m
	return b
}

// WithSource sets the line source. Default: standard input.
func (b Builder[T]) WithSource(src LineSource) Builder[T] {
	b.source = src
	return b
}

// WithOutput sets where prompts and messages are written. Default: standard output.
func (b Builder[T]) WithOutput(out Output) Builder[T] {
	b.output = out
	return b
}

// WithLogger sets the logger for rejected input and output failures. Default: discard.
func (b Builder[T]) WithLogger(l *slog.Logger) Builder[T] {
	b.logger = l
	return b
}

// Build freezes the configuration into a Request.
func (b Builder[T]) Build() Request[T] {
	r := Request[T]{
		parser:   b.parser,
		prompt:   b.prompt,
		repeat:   b.repeat,
		def:      b.def,
		err:      b.err,
		checks:   slices.Clone(b.checks),
		onParse:  b.onParse,
		messages: b.messages,
		source:   b.source,
		output:   b.output,
		logger:   b.logger,
	}
	if r.source == nil {
		r.source = stdin
	}
	if r.output == nil {
		r.output = stdout
	}
	if r.logger == nil {
		r.logger = discardLogger
	}
	return r
}

// Get reads until a valid value is entered or the default is accepted.
// Only a line source failure or ErrNoParser is returned as an error.
func (b Builder[T]) Get() (T, error) {
	return b.Build().Run()
}

// with appends c without sharing backing storage with other builders.
func (b Builder[T]) with(c check[T]) Builder[T] {
	b.checks = append(slices.Clip(b.checks), c)
	return b
}

func constraintLabel[T any](c Constraint[T]) string {
	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}
	return "predicate"
}

// WithDisplay is a parse failure handler showing the failure itself, e.g. `Error: "overflow: ..."`.
func WithDisplay(pe *ParseError) (string, bool) {
	return fmt.Sprintf("Error: \"%s\"", pe.Error()), true
}
