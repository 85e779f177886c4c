package diagnostics

import (
	"fmt"

	"github.com/funvibe/sim/internal/token"
)

type ErrorCode string

const (
	// Lexer
	ErrL001 ErrorCode = "L001" // unrecognized character or malformed literal

	// Parser
	ErrP001 ErrorCode = "P001" // expected token not found
	ErrP002 ErrorCode = "P002" // no parse rule for token

	// Runtime
	ErrR001 ErrorCode = "R001"
)

// DiagnosticError is a failure reported by one of the pipeline stages.
type DiagnosticError struct {
	Code    ErrorCode
	File    string
	Line    int
	Column  int
	Message string
	// Cause is the stage error the diagnostic was built from, if any.
	Cause error
}

func (e *DiagnosticError) Error() string {
	prefix := ""
	if e.File != "" {
		prefix = e.File + ":"
	}
	if e.Line > 0 {
		prefix += fmt.Sprintf("%d:%d:", e.Line, e.Column)
	}
	if prefix != "" {
		prefix += " "
	}
	return fmt.Sprintf("%s%s: %s", prefix, e.Code, e.Message)
}

func (e *DiagnosticError) Unwrap() error { return e.Cause }

// NewError builds a diagnostic positioned at tok. With extra arguments the
// message is used as a format string.
func NewError(code ErrorCode, tok token.Token, message string, args ...interface{}) *DiagnosticError {
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}
	return &DiagnosticError{
		Code:    code,
		Line:    tok.Line,
		Column:  tok.Column,
		Message: message,
	}
}

// Wrap turns a stage error into a diagnostic, keeping the original as Cause.
func Wrap(code ErrorCode, line, column int, err error) *DiagnosticError {
	return &DiagnosticError{
		Code:    code,
		Line:    line,
		Column:  column,
		Message: err.Error(),
		Cause:   err,
	}
}
