package evaluator

type ResultKind int

const (
	// ResultValue is an ordinary result.
	ResultValue ResultKind = iota
	// ResultReturn marks a return that is still unwinding through enclosing
	// blocks, loops and calls.
	ResultReturn
)

// Result is what every evaluation step produces. Callers check IsReturn
// after each nested evaluation and hand a returning result straight back.
type Result struct {
	Kind  ResultKind
	Value Object
}

func Value(obj Object) Result {
	return Result{Kind: ResultValue, Value: obj}
}

func Returning(obj Object) Result {
	return Result{Kind: ResultReturn, Value: obj}
}

func (r Result) IsReturn() bool {
	return r.Kind == ResultReturn
}

func (r Result) String() string {
	if r.Value == nil {
		return "<nil>"
	}
	if r.IsReturn() {
		return "return " + r.Value.Inspect()
	}
	return r.Value.Inspect()
}
