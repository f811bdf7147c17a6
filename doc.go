// Package readinput reads a single typed value from a line-oriented input stream,
// validates it against caller-supplied constraints, and keeps asking until the
// value is valid or the configured default is accepted.
//
// Quick Start:
//
//	guess, err := readinput.New[int]().
//	    RepeatPrompt("Please input your guess: ").
//	    InsideMsg(readinput.UntilInclusive(100), "That number is more than 100. Please try again").
//	    InsideMsg(readinput.From(1), "That number is less than 1. Please try again").
//	    Err("That does not look like a number. Please try again").
//	    Default(10).
//	    Get()
//
// Supported types: string, []byte, bool, signed and unsigned integers, float32,
// float64, runes (via NewRune) and any type whose pointer implements Inputtable or
// encoding.TextUnmarshaler.
//
// Only a failure of the line source (or ErrNoParser) is returned as an error. Parse and constraint
// failures are printed and the user is asked again.
//
// See example_test.go and the examples directory for detailed usage.
package readinput
