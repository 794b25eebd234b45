package eval

// EvaluationError is reserved per spec.md §7: the current evaluator is
// total (type mismatches degrade to false/empty, missing prefix bindings
// degrade selectors to false). No production path in this package
// constructs one; it exists so a future tightening of that policy has
// somewhere to report without breaking the Select signature.
type EvaluationError struct {
	Kind    string
	Message string
}

func (e EvaluationError) Error() string {
	return e.Kind + ": " + e.Message
}
