package readinput

// Simple reads any valid T from standard input.
func Simple[T any]() (T, error) {
	return New[T]().Get()
}

// Valid reads a T from standard input that passes test.
func Valid[T any](test func(T) bool) (T, error) {
	return New[T]().Check(test).Get()
}

// InsideOf reads a T from standard input that satisfies c.
func InsideOf[T any](c Constraint[T]) (T, error) {
	return New[T]().Inside(c).Get()
}
