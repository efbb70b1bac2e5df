package book

// invariantViolation marks a panic raised by the matching core when an
// internal invariant is broken. These never reach a well-formed caller;
// a surrounding harness should recover, log, and abort the process rather
// than continue with corrupted book state.
type invariantViolation struct {
	msg string
}

func (e invariantViolation) Error() string { return e.msg }

func panicEmptyLevel() {
	panic(invariantViolation{"order book: EmptyLevel"})
}

func panicBookCrossedAfterMatch() {
	panic(invariantViolation{"order book: BookCrossedAfterMatch"})
}
