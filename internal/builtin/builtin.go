// Package builtin registers the closed-set functions of spec.md §4.2
// against internal/eval's function registry. Importing this package for
// its side effect (a blank import from the root package) is what makes
// count(), local-name() and the rest resolvable during Select; importing
// it any other way is a mistake, since nothing here is meant to be
// called directly.
package builtin

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/iand-tools/ldpath/internal/eval"
	"github.com/iand-tools/ldpath/internal/graph"
	"github.com/iand-tools/ldpath/internal/term"
)

func init() {
	eval.RegisterBuiltin("count", countFn)
	eval.RegisterBuiltin("local-name", localNameFn)
	eval.RegisterBuiltin("namespace-uri", namespaceURIFn)
	eval.RegisterBuiltin("uri", uriFn)
	eval.RegisterBuiltin("literal-value", literalValueFn)
	eval.RegisterBuiltin("literal-dt", literalDtFn)
	eval.RegisterBuiltin("exp", expFn)
	eval.RegisterBuiltin("string-length", stringLengthFn)
	eval.RegisterBuiltin("normalize-space", normalizeSpaceFn)
	eval.RegisterBuiltin("boolean", booleanFn)
	eval.RegisterBuiltin("not", notFn)
	eval.RegisterBuiltin("number", numberFn)
	eval.RegisterBuiltin("starts-with", startsWithFn)
	eval.RegisterBuiltin("contains", containsFn)
	eval.RegisterBuiltin("substring-before", substringBeforeFn)
	eval.RegisterBuiltin("substring-after", substringAfterFn)
	eval.RegisterBuiltin("concat", concatFn)
}

// localNamePattern splits a URI into a namespace prefix and a trailing
// local name at the last '/' or '#', mirroring the original's regex.
var localNamePattern = regexp.MustCompile(`(?i)^(.*[/#])([a-z0-9\-_]+)$`)

func countFn(_ context.Context, _ graph.Adapter, args []eval.Value) eval.Value {
	v := args[0]
	if v.Kind != eval.KindList {
		return eval.NumberValue(0)
	}
	return eval.NumberValue(float64(len(v.List)))
}

// localNameFn returns the bare string local name of the first URI in the
// argument's candidate list, or "" if the list is empty, the first
// candidate isn't a URI, or the URI has no trailing segment to split.
func localNameFn(_ context.Context, _ graph.Adapter, args []eval.Value) eval.Value {
	v := args[0]
	if v.Kind != eval.KindList || len(v.List) == 0 || !v.List[0].IsURI() {
		return eval.StringValue("")
	}
	m := localNamePattern.FindStringSubmatch(v.List[0].Value().String())
	if m == nil {
		return eval.StringValue("")
	}
	return eval.StringValue(m[2])
}

// namespaceURIFn returns the namespace prefix of the first URI in the
// argument's candidate list, wrapped in a singleton list of a literal
// node, asymmetric with local-name's bare string per the original.
func namespaceURIFn(_ context.Context, _ graph.Adapter, args []eval.Value) eval.Value {
	v := args[0]
	if v.Kind != eval.KindList || len(v.List) == 0 || !v.List[0].IsURI() {
		return eval.ListValue(nil)
	}
	m := localNamePattern.FindStringSubmatch(v.List[0].Value().String())
	if m == nil {
		return eval.ListValue(nil)
	}
	return eval.ListValue([]eval.Location{eval.NewNode(term.NewLiteral(m[1]))})
}

func uriFn(_ context.Context, _ graph.Adapter, args []eval.Value) eval.Value {
	v := args[0]
	if v.Kind != eval.KindList || len(v.List) == 0 || !v.List[0].IsURI() {
		return eval.StringValue("")
	}
	return eval.StringValue(v.List[0].Value().String())
}

// literalValueFn dereferences the first Arc in the argument's candidate
// list (origin, predicate) and returns the lexical form of its first
// literal object, or "" if the candidate isn't an Arc or has none.
func literalValueFn(ctx context.Context, g graph.Adapter, args []eval.Value) eval.Value {
	v := args[0]
	if v.Kind != eval.KindList || len(v.List) == 0 || !v.List[0].IsArc() {
		return eval.StringValue("")
	}
	loc := v.List[0]
	for _, obj := range g.ObjectsOf(ctx, loc.Origin(), loc.Predicate()) {
		if lit, ok := obj.(term.Literal); ok {
			return eval.StringValue(lit.Lexical)
		}
	}
	return eval.StringValue("")
}

func literalDtFn(_ context.Context, _ graph.Adapter, _ []eval.Value) eval.Value {
	return eval.StringValue("")
}

func expFn(_ context.Context, g graph.Adapter, args []eval.Value) eval.Value {
	v := args[0]
	if v.Kind != eval.KindString {
		return eval.StringValue("")
	}
	iri, ok := g.QNameToURI(v.Str)
	if !ok {
		return eval.StringValue("")
	}
	return eval.StringValue(iri.Value)
}

func stringLengthFn(_ context.Context, _ graph.Adapter, args []eval.Value) eval.Value {
	v := args[0]
	if v.Kind != eval.KindString {
		return eval.NumberValue(0)
	}
	return eval.NumberValue(float64(len(v.Str)))
}

var whitespaceRun = regexp.MustCompile(`\s\s+`)

func normalizeSpaceFn(_ context.Context, _ graph.Adapter, args []eval.Value) eval.Value {
	v := args[0]
	if v.Kind != eval.KindString {
		return eval.NumberValue(0)
	}
	trimmed := strings.TrimSpace(v.Str)
	return eval.StringValue(whitespaceRun.ReplaceAllString(trimmed, " "))
}

func booleanFn(_ context.Context, _ graph.Adapter, args []eval.Value) eval.Value {
	return eval.BoolValue(eval.BoolValueOf(args[0]))
}

// notFn inverts boolean(e), matching the original's NotFunction which
// evaluates its argument through BooleanFunction before negating it.
func notFn(_ context.Context, _ graph.Adapter, args []eval.Value) eval.Value {
	return eval.BoolValue(!eval.BoolValueOf(args[0]))
}

func numberFn(_ context.Context, _ graph.Adapter, args []eval.Value) eval.Value {
	v := args[0]
	switch v.Kind {
	case eval.KindList:
		if len(v.List) == 0 {
			return eval.MissingValue()
		}
		lit, ok := v.List[0].Value().(term.Literal)
		if !ok {
			return eval.MissingValue()
		}
		n, err := strconv.ParseFloat(lit.Lexical, 64)
		if err != nil {
			return eval.MissingValue()
		}
		return eval.NumberValue(n)
	case eval.KindString:
		n, err := strconv.ParseFloat(v.Str, 64)
		if err != nil {
			return eval.MissingValue()
		}
		return eval.NumberValue(n)
	case eval.KindNumber:
		return eval.NumberValue(v.Number)
	default:
		return eval.MissingValue()
	}
}

func startsWithFn(_ context.Context, _ graph.Adapter, args []eval.Value) eval.Value {
	a, b := args[0], args[1]
	if a.Kind != eval.KindString || b.Kind != eval.KindString {
		return eval.BoolValue(false)
	}
	return eval.BoolValue(strings.HasPrefix(a.Str, b.Str))
}

func containsFn(_ context.Context, _ graph.Adapter, args []eval.Value) eval.Value {
	a, b := args[0], args[1]
	if a.Kind != eval.KindString || b.Kind != eval.KindString {
		return eval.BoolValue(false)
	}
	return eval.BoolValue(strings.Contains(a.Str, b.Str))
}

func substringBeforeFn(_ context.Context, _ graph.Adapter, args []eval.Value) eval.Value {
	a, b := args[0], args[1]
	if a.Kind != eval.KindString || b.Kind != eval.KindString {
		return eval.StringValue("")
	}
	before, _, found := strings.Cut(a.Str, b.Str)
	if !found {
		return eval.StringValue("")
	}
	return eval.StringValue(before)
}

func substringAfterFn(_ context.Context, _ graph.Adapter, args []eval.Value) eval.Value {
	a, b := args[0], args[1]
	if a.Kind != eval.KindString || b.Kind != eval.KindString {
		return eval.StringValue("")
	}
	_, after, found := strings.Cut(a.Str, b.Str)
	if !found {
		return eval.StringValue("")
	}
	return eval.StringValue(after)
}

// concatFn requires every argument to evaluate to a string; the original
// returns "" the moment a non-string argument is seen rather than
// skipping it.
func concatFn(_ context.Context, _ graph.Adapter, args []eval.Value) eval.Value {
	var b strings.Builder
	for _, a := range args {
		if a.Kind != eval.KindString {
			return eval.StringValue("")
		}
		b.WriteString(a.Str)
	}
	return eval.StringValue(b.String())
}
