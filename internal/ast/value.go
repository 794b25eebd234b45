package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueExpr produces a Value (list/bool/number/string) when evaluated
// against a candidate set (spec.md §3, §4.2).
type ValueExpr interface {
	isValueExpr()
	String() string
}

// LiteralHolder is a quoted string literal, e.g. 'Sm'.
type LiteralHolder struct {
	Text string
}

func (LiteralHolder) isValueExpr()      {}
func (v LiteralHolder) String() string { return fmt.Sprintf("'%s'", v.Text) }

// NumberHolder is an unsigned integer literal, e.g. 32.
type NumberHolder struct {
	Value float64
}

func (NumberHolder) isValueExpr() {}
func (v NumberHolder) String() string {
	return strconv.FormatFloat(v.Value, 'g', -1, 64)
}

// BooleanHolder is true() or false().
type BooleanHolder struct {
	Value bool
}

func (BooleanHolder) isValueExpr() {}
func (v BooleanHolder) String() string {
	if v.Value {
		return "true()"
	}
	return "false()"
}

// SelfRef is the "." expression: evaluates to the single-element list
// containing the filter context candidate.
type SelfRef struct{}

func (SelfRef) isValueExpr()    {}
func (SelfRef) String() string { return "." }

// PathExpr embeds a nested LocPath as a value expression, e.g.
// "foaf:knows/*" used inside a comparison.
type PathExpr struct {
	Path LocPath
}

func (PathExpr) isValueExpr()      {}
func (v PathExpr) String() string { return v.Path.String() }

// FunctionCall is a built-in function invocation; Name is one of the
// closed set in spec.md §4.2.
type FunctionCall struct {
	Name string
	Args []ValueExpr
}

func (FunctionCall) isValueExpr() {}
func (v FunctionCall) String() string {
	args := make([]string, len(v.Args))
	for i, a := range v.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", v.Name, strings.Join(args, ","))
}

// Arity1 is the set of functions requiring exactly one argument (S1 in
// spec.md §4.1).
var Arity1 = map[string]bool{
	"count": true, "local-name": true, "namespace-uri": true, "uri": true,
	"literal-value": true, "literal-dt": true, "exp": true,
	"string-length": true, "normalize-space": true, "boolean": true,
	"not": true, "number": true,
}

// Arity2 is the set of functions requiring exactly two arguments (S2 in
// spec.md §4.1).
var Arity2 = map[string]bool{
	"starts-with": true, "contains": true,
	"substring-before": true, "substring-after": true,
}

// Variadic is the set of functions accepting one or more arguments.
var Variadic = map[string]bool{
	"concat": true,
}

// KnownFunctions is the full closed set of built-in function names.
func KnownFunctions() map[string]bool {
	out := make(map[string]bool, len(Arity1)+len(Arity2)+len(Variadic))
	for k := range Arity1 {
		out[k] = true
	}
	for k := range Arity2 {
		out[k] = true
	}
	for k := range Variadic {
		out[k] = true
	}
	return out
}
