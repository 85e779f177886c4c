package evaluator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/funvibe/sim/internal/ast"
)

var (
	ErrUndefinedVariable = errors.New("undefined variable")
	ErrUndefinedFunction = errors.New("undefined function")
	ErrArity             = errors.New("wrong number of arguments")
	ErrType              = errors.New("type mismatch")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrUnitValue         = errors.New("unit value")
	ErrDepthExceeded     = errors.New("maximum recursion depth exceeded")
	ErrHost              = errors.New("host function failed")
)

// CallFrame represents a single frame in the call stack
type CallFrame struct {
	Name   string
	Line   int
	Column int
}

// RuntimeError is an evaluation failure. Kind is one of the Err* values
// above and is what errors.Is matches.
type RuntimeError struct {
	Kind       error
	Op         string // the operation that failed: "call", "assignment", "+", ...
	Message    string
	Line       int
	Column     int
	RunID      string
	StackTrace []CallFrame
}

func (e *RuntimeError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)

	// innermost call first
	for i := len(e.StackTrace) - 1; i >= 0; i-- {
		frame := e.StackTrace[i]
		fmt.Fprintf(&sb, "\n  in %s called at %d:%d", frame.Name, frame.Line, frame.Column)
	}
	return sb.String()
}

func (e *RuntimeError) Unwrap() error { return e.Kind }

func (e *Evaluator) newError(ctx *Context, node ast.Node, kind error, op string, format string, a ...interface{}) *RuntimeError {
	err := &RuntimeError{
		Kind:    kind,
		Op:      op,
		Message: fmt.Sprintf(format, a...),
		RunID:   ctx.ID.String(),
	}
	if node != nil {
		tok := node.GetToken()
		err.Line, err.Column = tok.Line, tok.Column
	}
	if len(e.CallStack) > 0 {
		err.StackTrace = make([]CallFrame, len(e.CallStack))
		copy(err.StackTrace, e.CallStack)
	}
	return err
}
