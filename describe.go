package readinput

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// DescribeOption configures describe behavior using the functional options pattern.
type DescribeOption func(*describeConfig)

// describeConfig holds options for Describe.
type describeConfig struct {
	asJSON bool   // Output as JSON instead of text format
	indent string // Indentation for JSON output (default: "  ")
}

// AsJSON outputs the request as JSON instead of text format.
func AsJSON() DescribeOption {
	return func(cfg *describeConfig) {
		cfg.asJSON = true
	}
}

// WithIndent sets the indentation for JSON output.
// Default is two spaces ("  "). An empty indent produces compact JSON.
func WithIndent(indent string) DescribeOption {
	return func(cfg *describeConfig) {
		cfg.indent = indent
	}
}

// description is the rendered form of a Request.
type description struct {
	Prompt        string             `json:"prompt"`
	PromptDefault bool               `json:"prompt_is_type_default"`
	Repeat        bool               `json:"repeat"`
	Default       *string            `json:"default,omitempty"`
	Error         string             `json:"error"`
	ParseHandler  bool               `json:"parse_handler"`
	Checks        []checkDescription `json:"checks"`
}

type checkDescription struct {
	Constraint string  `json:"constraint"`
	Message    *string `json:"message,omitempty"`
}

func (r Request[T]) describe() description {
	d := description{
		Repeat:       r.repeat,
		Error:        r.generic(),
		ParseHandler: r.onParse != nil,
		Checks:       make([]checkDescription, 0, len(r.checks)),
	}

	if msg, ok := r.prompt.Get(); ok {
		d.Prompt = msg
	} else if r.parser != nil {
		d.Prompt = r.parser.Prompt()
		d.PromptDefault = true
	}

	if v, ok := r.def.Get(); ok {
		s := fmt.Sprintf("%v", v)
		d.Default = &s
	}

	for _, c := range r.checks {
		cd := checkDescription{Constraint: c.label}
		if msg, ok := c.msg.Get(); ok {
			cd.Message = &msg
		}
		d.Checks = append(d.Checks, cd)
	}
	return d
}

// Describe writes a human-readable representation of the request configuration.
// Returns an error if writing to the writer fails.
func (r Request[T]) Describe(w io.Writer, opts ...DescribeOption) error {
	config := describeConfig{
		indent: "  ",
	}
	for _, opt := range opts {
		opt(&config)
	}

	d := r.describe()
	if config.asJSON {
		return describeAsJSON(w, d, config)
	}
	return describeAsText(w, d)
}

// describeAsText outputs the request in text format (key: value).
func describeAsText(w io.Writer, d description) error {
	var b strings.Builder

	fmt.Fprintf(&b, "prompt: %q", d.Prompt)
	if d.PromptDefault {
		b.WriteString(" (type default)")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "repeat: %t\n", d.Repeat)
	if d.Default != nil {
		fmt.Fprintf(&b, "default: %s\n", *d.Default)
	} else {
		b.WriteString("default: <not set>\n")
	}
	fmt.Fprintf(&b, "error: %q\n", d.Error)
	fmt.Fprintf(&b, "parse handler: %t\n", d.ParseHandler)
	fmt.Fprintf(&b, "checks: %d\n", len(d.Checks))
	for i, c := range d.Checks {
		fmt.Fprintf(&b, "  %d: %s", i+1, c.Constraint)
		if c.Message != nil {
			fmt.Fprintf(&b, " %q", *c.Message)
		}
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	return nil
}

// describeAsJSON outputs the request as JSON.
func describeAsJSON(w io.Writer, d description, config describeConfig) error {
	var data []byte
	var err error
	if config.indent != "" {
		data, err = json.MarshalIndent(d, "", config.indent)
	} else {
		data, err = json.Marshal(d)
	}

	if err != nil {
		return fmt.Errorf("json marshal error: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	// Add newline for better formatting
	if _, err := w.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}
