package readinput

import (
	"encoding"
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Parser converts one raw line into a value of type T.
type Parser[T any] interface {
	// Parse returns the value, or a *ParseError describing why the line was rejected.
	Parse(raw []byte) (T, error)

	// Prompt returns the initial prompt used when none is configured.
	Prompt() string
}

// Default prompts of the built-in parsers.
const (
	PromptValue = "Please input a value: "
	PromptAny   = "Please input any value: "
	PromptBool  = "Please input true or false: "
	PromptChar  = "Please input a character: "
	PromptInt   = "Please input an integer: "
	PromptUint  = "Please input a positive integer: "
	PromptFloat = "Please input a number: "
)

// ParserFunc is a function adapter for Parser interface. Its prompt is PromptValue.
type ParserFunc[T any] func(raw []byte) (T, error)

func (f ParserFunc[T]) Parse(raw []byte) (T, error) {
	return f(raw)
}

func (f ParserFunc[T]) Prompt() string {
	return PromptValue
}

// Inputtable is implemented by pointers to user-defined types that can be read.
// Returning a *ParseError keeps its code; any other error is reported as ErrCodeInvalid.
type Inputtable interface {
	UnmarshalInput(s string) error
}

// InputPrompter supplies the default prompt for a user-defined type.
type InputPrompter interface {
	InputPrompt() string
}

// Signed is the set of signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer is the set of integer types.
type Integer interface {
	Signed | Unsigned
}

// Float is the set of floating point types.
type Float interface {
	~float32 | ~float64
}

// DefaultParser returns the parser used by New for T.
// User-defined types implementing Inputtable or encoding.TextUnmarshaler take precedence
// over the built-in parsers. int32 resolves to the integer parser; use RuneParser for characters.
func DefaultParser[T any]() (Parser[T], bool) {
	var zero T

	switch any(&zero).(type) {
	case Inputtable, encoding.TextUnmarshaler:
		return textParser[T]{}, true
	}

	var p any
	switch any(zero).(type) {
	case string:
		p = StringParser()
	case []byte:
		p = BytesParser()
	case bool:
		p = BoolParser()
	case int:
		p = IntParser[int]()
	case int8:
		p = IntParser[int8]()
	case int16:
		p = IntParser[int16]()
	case int32:
		p = IntParser[int32]()
	case int64:
		p = IntParser[int64]()
	case uint:
		p = UintParser[uint]()
	case uint8:
		p = UintParser[uint8]()
	case uint16:
		p = UintParser[uint16]()
	case uint32:
		p = UintParser[uint32]()
	case uint64:
		p = UintParser[uint64]()
	case float32:
		p = FloatParser[float32]()
	case float64:
		p = FloatParser[float64]()
	default:
		return nil, false
	}

	parser, ok := p.(Parser[T])
	return parser, ok
}

// decodeText rejects raw input that is not valid UTF-8.
func decodeText(raw []byte, kind string) (string, error) {
	if !utf8.Valid(raw) {
		return "", &ParseError{Code: ErrCodeNotUTF8, Kind: kind}
	}
	return string(raw), nil
}

type stringParser struct{}

// StringParser passes the line through unchanged. Only invalid UTF-8 is rejected.
func StringParser() Parser[string] {
	return stringParser{}
}

func (stringParser) Parse(raw []byte) (string, error) {
	return decodeText(raw, KindText)
}

func (stringParser) Prompt() string { return PromptAny }

type bytesParser struct{}

// BytesParser passes the raw line through unchanged and never fails.
func BytesParser() Parser[[]byte] {
	return bytesParser{}
}

func (bytesParser) Parse(raw []byte) ([]byte, error) {
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

func (bytesParser) Prompt() string { return PromptAny }

type boolParser struct {
	strict bool
}

// BoolParser accepts "true" and "false" in any letter case.
func BoolParser() Parser[bool] {
	return boolParser{}
}

// StrictBoolParser accepts exactly "true" and "false".
func StrictBoolParser() Parser[bool] {
	return boolParser{strict: true}
}

func (p boolParser) Parse(raw []byte) (bool, error) {
	s, err := decodeText(raw, KindBool)
	if err != nil {
		return false, err
	}
	s = strings.TrimSpace(s)

	match := strings.EqualFold
	if p.strict {
		match = func(a, b string) bool { return a == b }
	}

	switch {
	case match(s, "true"):
		return true, nil
	case match(s, "false"):
		return false, nil
	}
	return false, &ParseError{Code: ErrCodeNotBool, Kind: KindBool, Input: s}
}

func (boolParser) Prompt() string { return PromptBool }

type runeParser struct{}

// RuneParser accepts exactly one character. Whitespace counts as a character.
func RuneParser() Parser[rune] {
	return runeParser{}
}

func (runeParser) Parse(raw []byte) (rune, error) {
	s, err := decodeText(raw, KindChar)
	if err != nil {
		return 0, err
	}

	switch utf8.RuneCountInString(s) {
	case 0:
		return 0, &ParseError{Code: ErrCodeEmpty, Kind: KindChar}
	case 1:
		r, _ := utf8.DecodeRuneInString(s)
		return r, nil
	}
	return 0, &ParseError{Code: ErrCodeTooManyChars, Kind: KindChar, Input: s}
}

func (runeParser) Prompt() string { return PromptChar }

type signedParser[T Signed] struct {
	bits int
}

// IntParser parses base-10 signed integers, classifying range failures against T's bounds.
func IntParser[T Signed]() Parser[T] {
	var zero T
	return signedParser[T]{bits: reflect.TypeOf(zero).Bits()}
}

func (p signedParser[T]) Parse(raw []byte) (T, error) {
	s, err := decodeText(raw, KindInt)
	if err != nil {
		return 0, err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &ParseError{Code: ErrCodeEmpty, Kind: KindInt}
	}

	n, err := strconv.ParseInt(s, 10, p.bits)
	if err != nil {
		maxVal := int64(math.MaxInt64) >> (64 - p.bits)
		return 0, classifyInt(s, err, strconv.FormatInt(-maxVal-1, 10), strconv.FormatInt(maxVal, 10))
	}
	return T(n), nil
}

func (signedParser[T]) Prompt() string { return PromptInt }

type unsignedParser[T Unsigned] struct {
	bits int
}

// UintParser parses base-10 unsigned integers. A leading minus sign is an invalid digit.
func UintParser[T Unsigned]() Parser[T] {
	var zero T
	return unsignedParser[T]{bits: reflect.TypeOf(zero).Bits()}
}

func (p unsignedParser[T]) Parse(raw []byte) (T, error) {
	s, err := decodeText(raw, KindInt)
	if err != nil {
		return 0, err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &ParseError{Code: ErrCodeEmpty, Kind: KindInt}
	}

	n, err := strconv.ParseUint(s, 10, p.bits)
	if err != nil {
		maxVal := uint64(math.MaxUint64) >> (64 - p.bits)
		return 0, classifyInt(s, err, "0", strconv.FormatUint(maxVal, 10))
	}
	return T(n), nil
}

func (unsignedParser[T]) Prompt() string { return PromptUint }

// classifyInt maps a strconv failure onto the integer error codes.
func classifyInt(s string, err error, minVal, maxVal string) *ParseError {
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(s, "-") {
			return &ParseError{Code: ErrCodeUnderflow, Kind: KindInt, Input: s, Min: minVal}
		}
		return &ParseError{Code: ErrCodeOverflow, Kind: KindInt, Input: s, Max: maxVal}
	}
	return &ParseError{Code: ErrCodeInvalidDigit, Kind: KindInt, Input: s}
}

type nonZeroParser[T Integer] struct {
	base Parser[T]
}

// NonZero wraps an integer parser and rejects zero with ErrCodeZero.
func NonZero[T Integer](base Parser[T]) Parser[T] {
	return nonZeroParser[T]{base: base}
}

func (p nonZeroParser[T]) Parse(raw []byte) (T, error) {
	v, err := p.base.Parse(raw)
	if err != nil {
		return v, err
	}
	if v == 0 {
		return 0, &ParseError{Code: ErrCodeZero, Kind: KindInt, Input: strings.TrimSpace(string(raw))}
	}
	return v, nil
}

func (p nonZeroParser[T]) Prompt() string { return p.base.Prompt() }

type floatParser[T Float] struct {
	bits int
}

// FloatParser parses decimal or scientific notation floating point numbers.
func FloatParser[T Float]() Parser[T] {
	var zero T
	return floatParser[T]{bits: reflect.TypeOf(zero).Bits()}
}

func (p floatParser[T]) Parse(raw []byte) (T, error) {
	s, err := decodeText(raw, KindFloat)
	if err != nil {
		return 0, err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &ParseError{Code: ErrCodeEmpty, Kind: KindFloat}
	}

	f, err := strconv.ParseFloat(s, p.bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &ParseError{Code: ErrCodeOverflow, Kind: KindFloat, Input: s}
		}
		return 0, &ParseError{Code: ErrCodeInvalidNumber, Kind: KindFloat, Input: s}
	}
	return T(f), nil
}

func (floatParser[T]) Prompt() string { return PromptFloat }

// textParser reads user-defined types through Inputtable or encoding.TextUnmarshaler.
type textParser[T any] struct{}

func (textParser[T]) Parse(raw []byte) (T, error) {
	var v T
	s, err := decodeText(raw, KindCustom)
	if err != nil {
		return v, err
	}

	switch u := any(&v).(type) {
	case Inputtable:
		err = u.UnmarshalInput(s)
	case encoding.TextUnmarshaler:
		err = u.UnmarshalText([]byte(s))
	}
	if err == nil {
		return v, nil
	}

	var pe *ParseError
	if errors.As(err, &pe) {
		return v, pe
	}
	return v, &ParseError{Code: ErrCodeInvalid, Kind: KindCustom, Input: s, Err: err}
}

func (textParser[T]) Prompt() string {
	var v T
	if p, ok := any(&v).(InputPrompter); ok {
		return p.InputPrompt()
	}
	if p, ok := any(v).(InputPrompter); ok {
		return p.InputPrompt()
	}
	return PromptValue
}
