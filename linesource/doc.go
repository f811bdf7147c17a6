// Package linesource adapts io.Reader and io.Writer to the line source and output
// collaborators used by readinput.
//
// Line terminators ("\n" and "\r\n") are stripped. A final line without a terminator
// is returned before io.EOF.
//
// Example:
//
//	src := linesource.NewReader(strings.NewReader("abc\n6\n5\n"))
//	v, err := readinput.New[int]().WithSource(src).Get()
package linesource
