package readinput

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessages_For(t *testing.T) {
	m := DefaultMessages()

	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{"not utf8", &ParseError{Code: ErrCodeNotUTF8, Kind: KindInt}, m.NotUTF8},
		{"not bool", &ParseError{Code: ErrCodeNotBool, Kind: KindBool, Input: "maybe"}, m.BoolInvalid},
		{"char empty", &ParseError{Code: ErrCodeEmpty, Kind: KindChar}, m.CharEmpty},
		{"char too many", &ParseError{Code: ErrCodeTooManyChars, Kind: KindChar}, m.CharTooMany},
		{"int empty", &ParseError{Code: ErrCodeEmpty, Kind: KindInt}, m.IntEmpty},
		{"int invalid digit", &ParseError{Code: ErrCodeInvalidDigit, Kind: KindInt}, m.IntInvalidDigit},
		{"int overflow", &ParseError{Code: ErrCodeOverflow, Kind: KindInt, Max: "127"}, "Please only input values below or equal to 127"},
		{"int underflow", &ParseError{Code: ErrCodeUnderflow, Kind: KindInt, Min: "-128"}, "Please only input values above or equal to -128"},
		{"int zero", &ParseError{Code: ErrCodeZero, Kind: KindInt}, m.IntZero},
		{"float empty", &ParseError{Code: ErrCodeEmpty, Kind: KindFloat}, m.FloatEmpty},
		{"float invalid", &ParseError{Code: ErrCodeInvalidNumber, Kind: KindFloat}, m.FloatInvalid},
		{"float overflow", &ParseError{Code: ErrCodeOverflow, Kind: KindFloat}, m.FloatOverflow},
		{"custom invalid has no default", &ParseError{Code: ErrCodeInvalid, Kind: KindCustom}, ""},
		{"unknown code", &ParseError{Code: "weird"}, ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.For(tt.err))
		})
	}
}

func TestMessages_For_Placeholders(t *testing.T) {
	m := Messages{BoolInvalid: "{input} is neither true nor false"}

	got := m.For(&ParseError{Code: ErrCodeNotBool, Kind: KindBool, Input: "maybe"})
	assert.Equal(t, "maybe is neither true nor false", got)
}

func TestMessages_Apply(t *testing.T) {
	base := DefaultMessages()

	got, err := base.Apply(map[string]string{
		"generic":       "Again",
		"CHAR__EMPTY":   "Type something",
		"Float.Invalid": "Digits please",
	})
	require.NoError(t, err)

	assert.Equal(t, "Again", got.Generic)
	assert.Equal(t, "Type something", got.CharEmpty)
	assert.Equal(t, "Digits please", got.FloatInvalid)
	assert.Equal(t, base.IntOverflow, got.IntOverflow)
	assert.Equal(t, DefaultMessages(), base, "Apply must not modify the receiver")
}

func TestMessages_Apply_UnknownKeys(t *testing.T) {
	base := DefaultMessages()

	got, err := base.Apply(map[string]string{
		"generic":      "Again",
		"int.overflw":  "typo",
		"bool.unknown": "typo",
	})

	var me *MessageError
	require.ErrorAs(t, err, &me)
	require.Len(t, me.KeyErrors, 2)
	assert.Equal(t, "bool.unknown", me.KeyErrors[0].Key)
	assert.Equal(t, "int.overflw", me.KeyErrors[1].Key)
	assert.Equal(t, ErrCodeUnknownKey, me.KeyErrors[0].Code)
	assert.Equal(t, base, got, "a failed Apply returns the receiver unchanged")
}

func TestKeys(t *testing.T) {
	keys := Keys()

	assert.Len(t, keys, 14)
	assert.Contains(t, keys, "int.overflow")
	assert.IsIncreasing(t, keys)

	overrides := make(map[string]string, len(keys))
	for _, k := range keys {
		overrides[k] = k
	}
	_, err := DefaultMessages().Apply(overrides)
	assert.NoError(t, err, "every listed key must be accepted")
}

type mapSource struct {
	name string
	data map[string]string
	err  error
}

func (m mapSource) Load(ctx context.Context) (map[string]string, error) {
	return m.data, m.err
}

func (m mapSource) Name() string { return m.name }

func TestLoadMessages_LaterSourcesOverride(t *testing.T) {
	first := mapSource{name: "first", data: map[string]string{"generic": "one", "int.zero": "no zero"}}
	second := mapSource{name: "second", data: map[string]string{"GENERIC": "two"}}

	got, err := LoadMessages(context.Background(), DefaultMessages(), first, second)
	require.NoError(t, err)

	assert.Equal(t, "two", got.Generic)
	assert.Equal(t, "no zero", got.IntZero)
}

func TestLoadMessages_SourceError(t *testing.T) {
	boom := errors.New("unreadable")
	src := mapSource{name: "broken", err: boom}

	_, err := LoadMessages(context.Background(), DefaultMessages(), src)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "load source broken")
}

func TestLoadMessages_NoSources(t *testing.T) {
	got, err := LoadMessages(context.Background(), DefaultMessages())
	require.NoError(t, err)
	assert.Equal(t, DefaultMessages(), got)
}
