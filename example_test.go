package readinput_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Azhovan/readinput"
	"github.com/Azhovan/readinput/linesource"
	"github.com/Azhovan/readinput/msgenv"
)

// Example reads an integer, retrying until it parses and lies in range.
func Example() {
	guess, err := readinput.New[int]().
		RepeatPrompt("Guess: ").
		InsideMsg(readinput.UntilInclusive(100), "Too big").
		WithSource(linesource.NewLines("abc", "150", "42")).
		WithOutput(linesource.NewWriter(os.Stdout)).
		Get()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("got", guess)

	// Output:
	// Guess: You inputted an invalid digit. Please input characters 0-9
	// Guess: Too big
	// Guess: got 42
}

// ExampleBuilder_Default shows an empty line selecting the default value.
func ExampleBuilder_Default() {
	n, err := readinput.New[uint]().
		Prompt("How many? ").
		Default(5).
		WithSource(linesource.NewLines("")).
		WithOutput(linesource.NewWriter(os.Stdout)).
		Get()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(n)

	// Output:
	// How many? 5
}

// ExampleNewRune reads one character from a fixed set.
func ExampleNewRune() {
	c, err := readinput.NewRune().
		Prompt("Vowel: ").
		InsideMsg(readinput.NewSet('a', 'e', 'i', 'o', 'u'), "Not a vowel").
		WithSource(linesource.NewLines("ab", "x", "e")).
		WithOutput(linesource.NewWriter(os.Stdout)).
		Get()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%c\n", c)

	// Output:
	// Vowel: Only type a single character
	// Not a vowel
	// e
}

// ExampleRequest_Describe prints a request configuration.
func ExampleRequest_Describe() {
	req := readinput.New[float64]().
		Prompt("Ratio: ").
		InsideMsg(readinput.Between(0.0, 1.0), "Must be below one").
		Build()

	if err := req.Describe(os.Stdout); err != nil {
		log.Fatal(err)
	}

	// Output:
	// prompt: "Ratio: "
	// repeat: false
	// default: <not set>
	// error: "That value does not pass. Please try again"
	// parse handler: false
	// checks: 1
	//   1: [0, 1) "Must be below one"
}

// ExampleLoadMessages rewords the built-in messages from the environment.
func ExampleLoadMessages() {
	os.Setenv("EXAMPLEMSG_INT__ZERO", "Zero is not allowed")
	defer os.Unsetenv("EXAMPLEMSG_INT__ZERO")

	msgs, err := readinput.LoadMessages(context.Background(), readinput.DefaultMessages(),
		msgenv.New(msgenv.Options{Prefix: "EXAMPLEMSG_"}),
	)
	if err != nil {
		log.Fatal(err)
	}

	n, err := readinput.NewWithParser(readinput.NonZero(readinput.IntParser[int]())).
		Prompt("Divisor: ").
		Messages(msgs).
		WithSource(linesource.NewLines("0", "4")).
		WithOutput(linesource.NewWriter(os.Stdout)).
		Get()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(n)

	// Output:
	// Divisor: Zero is not allowed
	// 4
}
