package readinput

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/Azhovan/readinput/internal/normalize"
)

// Messages is the table of texts shown to the user.
// Parse failure texts may contain {input}, {min} and {max} placeholders.
// An empty text falls back to Generic.
type Messages struct {
	Generic string `msg:"generic"`
	NotUTF8 string `msg:"not_utf8"`

	BoolInvalid string `msg:"bool.invalid"`

	CharEmpty   string `msg:"char.empty"`
	CharTooMany string `msg:"char.too_many"`

	IntEmpty        string `msg:"int.empty"`
	IntInvalidDigit string `msg:"int.invalid_digit"`
	IntOverflow     string `msg:"int.overflow"`
	IntUnderflow    string `msg:"int.underflow"`
	IntZero         string `msg:"int.zero"`

	FloatEmpty    string `msg:"float.empty"`
	FloatInvalid  string `msg:"float.invalid"`
	FloatOverflow string `msg:"float.overflow"`

	Invalid string `msg:"invalid"`
}

// DefaultMessages returns the built-in message table.
func DefaultMessages() Messages {
	return Messages{
		Generic:         "That value does not pass. Please try again",
		NotUTF8:         "Please input valid UTF8",
		BoolInvalid:     "Please input true or false",
		CharEmpty:       "Please input a character",
		CharTooMany:     "Only type a single character",
		IntEmpty:        "Please input a value",
		IntInvalidDigit: "You inputted an invalid digit. Please input characters 0-9",
		IntOverflow:     "Please only input values below or equal to {max}",
		IntUnderflow:    "Please only input values above or equal to {min}",
		IntZero:         "Please input a non-zero value",
		FloatEmpty:      "Please input a value",
		FloatInvalid:    "Please input a number",
		FloatOverflow:   "That number is too large",
	}
}

// Keys returns the sorted set of keys accepted by Apply.
func Keys() []string {
	t := reflect.TypeOf(Messages{})
	keys := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		keys = append(keys, t.Field(i).Tag.Get("msg"))
	}
	sort.Strings(keys)
	return keys
}

// Apply returns a copy of m with the given overrides. Keys are normalized
// (INT__OVERFLOW → int.overflow). Unknown keys fail with a *MessageError and m is unchanged.
func (m Messages) Apply(overrides map[string]string) (Messages, error) {
	normalized := make(map[string]string, len(overrides))
	for key, text := range overrides {
		normalized[normalize.ToLowerDotPath(key)] = text
	}

	out := m
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:  "msg",
		Result:   &out,
		Metadata: &md,
	})
	if err != nil {
		return m, err
	}
	if err := dec.Decode(normalized); err != nil {
		return m, fmt.Errorf("decode messages: %w", err)
	}

	if len(md.Unused) > 0 {
		sort.Strings(md.Unused)
		keyErrors := make([]KeyError, 0, len(md.Unused))
		for _, key := range md.Unused {
			keyErrors = append(keyErrors, KeyError{
				Key:     key,
				Code:    ErrCodeUnknownKey,
				Message: "unknown message key",
			})
		}
		return m, &MessageError{KeyErrors: keyErrors}
	}
	return out, nil
}

// For returns the default text for a parse failure, with placeholders expanded.
// It returns "" when the table has no text for the failure.
func (m Messages) For(pe *ParseError) string {
	if pe == nil {
		return ""
	}

	var text string
	switch {
	case pe.Code == ErrCodeNotUTF8:
		text = m.NotUTF8
	case pe.Code == ErrCodeNotBool:
		text = m.BoolInvalid
	case pe.Kind == KindChar && pe.Code == ErrCodeEmpty:
		text = m.CharEmpty
	case pe.Code == ErrCodeTooManyChars:
		text = m.CharTooMany
	case pe.Kind == KindFloat && pe.Code == ErrCodeEmpty:
		text = m.FloatEmpty
	case pe.Code == ErrCodeInvalidNumber:
		text = m.FloatInvalid
	case pe.Kind == KindFloat && pe.Code == ErrCodeOverflow:
		text = m.FloatOverflow
	case pe.Code == ErrCodeEmpty:
		text = m.IntEmpty
	case pe.Code == ErrCodeInvalidDigit:
		text = m.IntInvalidDigit
	case pe.Code == ErrCodeOverflow:
		text = m.IntOverflow
	case pe.Code == ErrCodeUnderflow:
		text = m.IntUnderflow
	case pe.Code == ErrCodeZero:
		text = m.IntZero
	case pe.Code == ErrCodeInvalid:
		text = m.Invalid
	}

	if text == "" {
		return ""
	}
	return strings.NewReplacer("{input}", pe.Input, "{min}", pe.Min, "{max}", pe.Max).Replace(text)
}

// LoadMessages applies overrides from all sources to base.
// Sources are processed in order (later override earlier).
func LoadMessages(ctx context.Context, base Messages, sources ...MessageSource) (Messages, error) {
	merged := make(map[string]string)
	for _, source := range sources {
		data, err := source.Load(ctx)
		if err != nil {
			return base, fmt.Errorf("load source %s: %w", source.Name(), err)
		}
		for key, text := range data {
			merged[normalize.ToLowerDotPath(key)] = text
		}
	}
	return base.Apply(merged)
}
