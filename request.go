package readinput

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"
)

// Request is the frozen configuration driving one read-validate-retry loop.
// It is created by Builder.Build and never changes afterwards, so Run may be called repeatedly.
type Request[T any] struct {
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

// Run prompts, reads, parses and validates until a value passes every constraint
// or an empty line selects the default. Rejections are printed and retried without limit.
// A line source failure aborts the loop and is returned wrapped.
func (r Request[T]) Run() (T, error) {
	var zero T
	if r.parser == nil {
		return zero, fmt.Errorf("%w %T", ErrNoParser, zero)
	}

	prompt := r.prompt.OrDefault(r.parser.Prompt())
	r.write(prompt)

	for attempt := 1; ; attempt++ {
		line, err := r.source.ReadLine()
		if err != nil {
			return zero, fmt.Errorf("readinput: read line: %w", err)
		}

		if len(line) == 0 {
			if v, ok := r.def.Get(); ok {
				r.logger.Debug("empty input, using default", slog.Int("attempt", attempt))
				return v, nil
			}
		}

		v, msg, ok := r.evaluate(line)
		if ok {
			return v, nil
		}

		r.write(msg + "\n")
		if r.repeat {
			r.write(prompt)
		}
	}
}

// evaluate parses line and applies constraints in order.
// On rejection it returns the message to show; the first failing constraint decides it.
func (r Request[T]) evaluate(line []byte) (T, string, bool) {
	var zero T

	v, err := r.parser.Parse(line)
	if err != nil {
		pe := asParseError(line, err)
		r.logger.Debug("input rejected",
			slog.String("code", pe.Code),
			slog.String("kind", pe.Kind),
		)
		return zero, r.parseMessage(pe), false
	}

	for i, c := range r.checks {
		if !c.constraint.Contains(v) {
			r.logger.Debug("input rejected by constraint",
				slog.Int("index", i),
				slog.String("constraint", c.label),
			)
			return zero, c.msg.OrDefault(r.generic()), false
		}
	}

	return v, "", true
}

// parseMessage resolves handler → message table → generic message.
func (r Request[T]) parseMessage(pe *ParseError) string {
	if r.onParse != nil {
		if msg, ok := r.onParse(pe); ok {
			return msg
		}
	}
	if msg := r.messages.For(pe); msg != "" {
		return msg
	}
	return r.generic()
}

func (r Request[T]) generic() string {
	if msg, ok := r.err.Get(); ok {
		return msg
	}
	if r.messages.Generic != "" {
		return r.messages.Generic
	}
	return DefaultMessages().Generic
}

// write prints text and flushes. Output failures never abort the loop.
func (r Request[T]) write(text string) {
	if text != "" {
		if _, err := io.WriteString(r.output, text); err != nil {
			r.logger.Warn("failed to write output", slog.String("error", err.Error()))
		}
	}
	if err := r.output.Flush(); err != nil {
		r.logger.Warn("failed to flush output", slog.String("error", err.Error()))
	}
}

// asParseError keeps a *ParseError returned by a parser and wraps anything else.
func asParseError(line []byte, err error) *ParseError {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe
	}

	pe = &ParseError{Code: ErrCodeInvalid, Kind: KindCustom, Err: err}
	if utf8.Valid(line) {
		pe.Input = string(line)
	}
	return pe
}
