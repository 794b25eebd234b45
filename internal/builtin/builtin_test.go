package builtin

import (
	"context"
	"testing"

	"github.com/iand-tools/ldpath/internal/eval"
	"github.com/iand-tools/ldpath/internal/graph"
	"github.com/iand-tools/ldpath/internal/term"
)

func newTestGraph(t *testing.T) *graph.AggregatingGraph {
	t.Helper()
	g := graph.New(nil)
	g.Bind("foaf", "http://xmlns.com/foaf/0.1/")
	g.AddTriple(term.Triple{
		Subject:   term.NewIRI("http://example.org/alice"),
		Predicate: term.NewIRI("http://xmlns.com/foaf/0.1/name"),
		Object:    term.NewLiteral("Alice"),
	})
	return g
}

func TestCountFn(t *testing.T) {
	ctx := context.Background()
	g := newTestGraph(t)
	list := eval.ListValue([]eval.Location{eval.NewNode(term.NewLiteral("a")), eval.NewNode(term.NewLiteral("b"))})
	got := countFn(ctx, g, []eval.Value{list})
	if got.Kind != eval.KindNumber || got.Number != 2 {
		t.Fatalf("count() = %+v, want number 2", got)
	}
	if got := countFn(ctx, g, []eval.Value{eval.StringValue("x")}); got.Number != 0 {
		t.Fatalf("count() of non-list = %+v, want 0", got)
	}
}

func TestLocalNameAndNamespaceURIFn(t *testing.T) {
	ctx := context.Background()
	g := newTestGraph(t)
	uriLoc := eval.ListValue([]eval.Location{eval.NewNode(term.NewIRI("http://xmlns.com/foaf/0.1/name"))})

	ln := localNameFn(ctx, g, []eval.Value{uriLoc})
	if ln.Kind != eval.KindString || ln.Str != "name" {
		t.Fatalf("local-name() = %+v, want string \"name\"", ln)
	}

	ns := namespaceURIFn(ctx, g, []eval.Value{uriLoc})
	if ns.Kind != eval.KindList || len(ns.List) != 1 {
		t.Fatalf("namespace-uri() = %+v, want singleton list", ns)
	}
	lit, ok := ns.List[0].Value().(term.Literal)
	if !ok || lit.Lexical != "http://xmlns.com/foaf/0.1/" {
		t.Fatalf("namespace-uri() list element = %+v, want literal namespace", ns.List[0].Value())
	}

	litLoc := eval.ListValue([]eval.Location{eval.NewNode(term.NewLiteral("Alice"))})
	if got := localNameFn(ctx, g, []eval.Value{litLoc}); got.Str != "" {
		t.Fatalf("local-name() of a literal = %q, want empty", got.Str)
	}
}

func TestLiteralValueFn(t *testing.T) {
	ctx := context.Background()
	g := newTestGraph(t)
	arc := eval.NewArc(term.NewIRI("http://example.org/alice"), term.NewIRI("http://xmlns.com/foaf/0.1/name"))
	got := literalValueFn(ctx, g, []eval.Value{eval.ListValue([]eval.Location{arc})})
	if got.Kind != eval.KindString || got.Str != "Alice" {
		t.Fatalf("literal-value() = %+v, want string \"Alice\"", got)
	}

	node := eval.NewNode(term.NewIRI("http://example.org/alice"))
	if got := literalValueFn(ctx, g, []eval.Value{eval.ListValue([]eval.Location{node})}); got.Str != "" {
		t.Fatalf("literal-value() on a Node = %q, want empty", got.Str)
	}
}

func TestExpFn(t *testing.T) {
	ctx := context.Background()
	g := newTestGraph(t)
	got := expFn(ctx, g, []eval.Value{eval.StringValue("foaf:name")})
	if got.Str != "http://xmlns.com/foaf/0.1/name" {
		t.Fatalf("exp() = %q, want expanded foaf:name", got.Str)
	}
	if got := expFn(ctx, g, []eval.Value{eval.StringValue("nope:name")}); got.Str != "" {
		t.Fatalf("exp() of unbound prefix = %q, want empty", got.Str)
	}
}

func TestStringFunctions(t *testing.T) {
	ctx := context.Background()
	g := newTestGraph(t)

	if got := stringLengthFn(ctx, g, []eval.Value{eval.StringValue("hello")}); got.Number != 5 {
		t.Fatalf("string-length() = %v, want 5", got.Number)
	}

	if got := normalizeSpaceFn(ctx, g, []eval.Value{eval.StringValue("  a   b  c ")}); got.Str != "a b c" {
		t.Fatalf("normalize-space() = %q, want \"a b c\"", got.Str)
	}

	if got := startsWithFn(ctx, g, []eval.Value{eval.StringValue("hello"), eval.StringValue("he")}); !got.Bool {
		t.Fatalf("starts-with() = false, want true")
	}
	if got := containsFn(ctx, g, []eval.Value{eval.StringValue("hello"), eval.StringValue("ell")}); !got.Bool {
		t.Fatalf("contains() = false, want true")
	}

	before := substringBeforeFn(ctx, g, []eval.Value{eval.StringValue("a/b/c"), eval.StringValue("/")})
	if before.Str != "a" {
		t.Fatalf("substring-before() = %q, want \"a\"", before.Str)
	}
	after := substringAfterFn(ctx, g, []eval.Value{eval.StringValue("a/b/c"), eval.StringValue("/")})
	if after.Str != "b/c" {
		t.Fatalf("substring-after() = %q, want \"b/c\"", after.Str)
	}
	if got := substringBeforeFn(ctx, g, []eval.Value{eval.StringValue("abc"), eval.StringValue("x")}); got.Str != "" {
		t.Fatalf("substring-before() with no match = %q, want empty", got.Str)
	}

	cat := concatFn(ctx, g, []eval.Value{eval.StringValue("a"), eval.StringValue("b"), eval.StringValue("c")})
	if cat.Str != "abc" {
		t.Fatalf("concat() = %q, want \"abc\"", cat.Str)
	}
	if got := concatFn(ctx, g, []eval.Value{eval.StringValue("a"), eval.NumberValue(1)}); got.Str != "" {
		t.Fatalf("concat() with a non-string argument = %q, want empty", got.Str)
	}
}

func TestBooleanAndNotFn(t *testing.T) {
	ctx := context.Background()
	g := newTestGraph(t)

	if got := booleanFn(ctx, g, []eval.Value{eval.StringValue("x")}); !got.Bool {
		t.Fatalf("boolean(\"x\") = false, want true")
	}
	if got := booleanFn(ctx, g, []eval.Value{eval.StringValue("")}); got.Bool {
		t.Fatalf("boolean(\"\") = true, want false")
	}
	if got := notFn(ctx, g, []eval.Value{eval.StringValue("")}); !got.Bool {
		t.Fatalf("not(\"\") = false, want true")
	}
}

func TestNumberFn(t *testing.T) {
	ctx := context.Background()
	g := newTestGraph(t)

	if got := numberFn(ctx, g, []eval.Value{eval.StringValue("3.5")}); got.Kind != eval.KindNumber || got.Number != 3.5 {
		t.Fatalf("number(\"3.5\") = %+v, want number 3.5", got)
	}
	if got := numberFn(ctx, g, []eval.Value{eval.StringValue("nope")}); got.Kind != eval.KindMissing {
		t.Fatalf("number(\"nope\") = %+v, want missing", got)
	}
	listVal := eval.ListValue([]eval.Location{eval.NewNode(term.NewLiteral("42"))})
	if got := numberFn(ctx, g, []eval.Value{listVal}); got.Kind != eval.KindNumber || got.Number != 42 {
		t.Fatalf("number(list) = %+v, want number 42", got)
	}
	if got := numberFn(ctx, g, []eval.Value{eval.ListValue(nil)}); got.Kind != eval.KindMissing {
		t.Fatalf("number(empty list) = %+v, want missing", got)
	}
}

func TestLiteralDtFn(t *testing.T) {
	ctx := context.Background()
	g := newTestGraph(t)
	if got := literalDtFn(ctx, g, []eval.Value{eval.StringValue("x")}); got.Str != "" {
		t.Fatalf("literal-dt() = %q, want empty stub", got.Str)
	}
}
