package evaluator

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/funvibe/sim/internal/ast"
)

type ObjectType string

const (
	INTEGER_OBJ  = "INTEGER"
	STRING_OBJ   = "STRING"
	UNIT_OBJ     = "UNIT"
	FUNCTION_OBJ = "FUNCTION"
	BUILTIN_OBJ  = "BUILTIN"
)

// Object is a runtime value. Equal values hash equally.
type Object interface {
	Type() ObjectType
	Inspect() string
	Hash() uint32
}

func hashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType { return INTEGER_OBJ }
func (i *Integer) Inspect() string  { return strconv.FormatInt(i.Value, 10) }
func (i *Integer) Hash() uint32 {
	return uint32(i.Value ^ (i.Value >> 32))
}

type String struct {
	Value string
}

func (s *String) Type() ObjectType { return STRING_OBJ }
func (s *String) Inspect() string  { return strconv.Quote(s.Value) }
func (s *String) Hash() uint32      { return hashString(s.Value) }

// Unit is the value of statements that produce nothing.
type Unit struct{}

func (u *Unit) Type() ObjectType { return UNIT_OBJ }
func (u *Unit) Inspect() string  { return "()" }
func (u *Unit) Hash() uint32     { return 0 }

// UNIT is shared; Unit carries no state.
var UNIT = &Unit{}

// Function is a user definition stored in the context's function table.
// It is never bound to a variable.
type Function struct {
	Name       string
	Parameters []string
	Body       *ast.Block
	Line       int
	Column     int
}

func (f *Function) Type() ObjectType { return FUNCTION_OBJ }
func (f *Function) Inspect() string {
	return fmt.Sprintf("function %s(%s) { ... }", f.Name, strings.Join(f.Parameters, ", "))
}

// Hash covers the signature only; redefining a function with another body
// keeps its hash.
func (f *Function) Hash() uint32 {
	h := hashString(f.Name)
	for _, p := range f.Parameters {
		h = 31*h + hashString(p)
	}
	return h
}

// BuiltinFunction is a host function. Arguments are never unit.
type BuiltinFunction func(args ...Object) (Object, error)

// Builtin is a function supplied by the embedding program. A user
// definition with the same name takes precedence.
type Builtin struct {
	Name  string
	Arity int // -1 accepts any number of arguments
	Fn    BuiltinFunction
}

func (b *Builtin) Type() ObjectType { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string  { return "builtin " + b.Name }
func (b *Builtin) Hash() uint32      { return hashString(b.Name) }

func fromLiteral(lit *ast.Literal) Object {
	switch lit.Kind {
	case ast.IntLiteral:
		return &Integer{Value: lit.Int}
	case ast.StringLiteral:
		return &String{Value: lit.Str}
	}
	return UNIT
}
