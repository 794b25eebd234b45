package eval

import (
	"context"
	"fmt"
	"io"

	"github.com/iand-tools/ldpath/internal/ast"
	"github.com/iand-tools/ldpath/internal/graph"
	"github.com/iand-tools/ldpath/internal/term"
)

var rdfType = term.NewIRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type")

// Select drives the candidate-propagation algorithm of spec.md §4.4: parse
// is assumed done by the caller (internal/parser); this takes the parsed
// LocPath and returns the distinct, first-seen-order list of underlying
// terms selected starting from start. trace, if non-nil, receives
// diagnostic lines; pass io.Discard (the default when nil) to disable it.
func Select(ctx context.Context, g graph.Adapter, start term.Term, path *ast.LocPath, trace io.Writer) []term.Term {
	if trace == nil {
		trace = io.Discard
	}

	candidates := deriveCandidates(ctx, g, NewNode(start), false)
	fmt.Fprintf(trace, "select: start=%s initial candidates=%d\n", start, len(candidates))

	var selected []Location
	for i, step := range path.Steps {
		selected = selected[:0]
		for _, cand := range candidates {
			if matchStep(ctx, g, step, cand) {
				selected = append(selected, cand)
			}
		}
		fmt.Fprintf(trace, "select: step %d (%s) selected=%d\n", i, step.String(), len(selected))

		if i < len(path.Steps)-1 {
			var next []Location
			for _, loc := range selected {
				next = append(next, deriveCandidates(ctx, g, loc, true)...)
			}
			candidates = next
		}
	}

	return dedupeTerms(selected)
}

// deriveCandidates performs one hop of axis traversal from loc: a Node
// expands to its outgoing Arcs, an Arc expands to its object-Nodes. distinct
// collapses repeated predicate IRIs during a Node's Arc expansion (it has
// no effect on Arc's Node expansion, which is never deduped): the
// inter-step propagation in Select/selectFrom passes true, matching
// Path.select's get_candidates(selected, g, True) in the original; a
// step's own one-hop filter-candidate derivation (matchStep) passes false,
// matching StepMatcher.get_candidates's default. Axis "in" is reserved
// (spec.md §9) and mirrors "out" exactly, since the Adapter interface
// (spec.md §6) exposes no reverse-traversal primitive.
func deriveCandidates(ctx context.Context, g graph.Adapter, loc Location, distinct bool) []Location {
	if loc.IsArc() {
		objects := g.ObjectsOf(ctx, loc.Origin(), loc.Predicate())
		out := make([]Location, len(objects))
		for i, o := range objects {
			out[i] = NewNode(o)
		}
		return out
	}
	if loc.IsLiteral() {
		return nil // a literal Node has no outgoing arcs
	}
	predicates := g.PredicatesOf(ctx, loc.Value(), distinct)
	out := make([]Location, len(predicates))
	for i, p := range predicates {
		out[i] = NewArc(loc.Value(), p)
	}
	return out
}

func matchStep(ctx context.Context, g graph.Adapter, step ast.Step, cand Location) bool {
	if !matchSelector(ctx, g, step.Selector, cand) {
		return false
	}
	if len(step.Filters) == 0 {
		return true
	}
	filterCandidates := deriveCandidates(ctx, g, cand, false)
	for _, f := range step.Filters {
		if !matchPredicate(ctx, g, f, filterCandidates, cand) {
			return false
		}
	}
	return true
}

func matchSelector(ctx context.Context, g graph.Adapter, sel ast.Selector, cand Location) bool {
	switch s := sel.(type) {
	case ast.Wildcard:
		return true
	case ast.ByQName:
		u, ok := g.QNameToURI(s.QName)
		if !ok {
			return false
		}
		if cand.IsArc() {
			return cand.Predicate().Eq(u)
		}
		return g.HasTriple(ctx, cand.Value(), u, rdfType)
	case ast.LiteralExact:
		lit, ok := cand.literal()
		return ok && lit.Lexical == s.Text
	case ast.AnyLiteral:
		return cand.IsLiteral()
	default:
		return false
	}
}

func matchPredicate(ctx context.Context, g graph.Adapter, pred ast.PredicateExpr, filterCandidates []Location, fctx Location) bool {
	switch p := pred.(type) {
	case ast.Or:
		if matchPredicate(ctx, g, p.Left, filterCandidates, fctx) {
			return true
		}
		if p.Right == nil {
			return false
		}
		return matchPredicate(ctx, g, p.Right, filterCandidates, fctx)
	case ast.And:
		if !matchPredicate(ctx, g, p.Left, filterCandidates, fctx) {
			return false
		}
		if p.Right == nil {
			return true
		}
		return matchPredicate(ctx, g, p.Right, filterCandidates, fctx)
	case ast.Comparison:
		left := evaluateValue(ctx, g, p.Left, filterCandidates, fctx)
		if p.Op == "" || p.Right == nil {
			return BoolValueOf(left)
		}
		right := evaluateValue(ctx, g, p.Right, filterCandidates, fctx)
		return Compare(left, right, p.Op)
	default:
		return false
	}
}

func evaluateValue(ctx context.Context, g graph.Adapter, v ast.ValueExpr, filterCandidates []Location, fctx Location) Value {
	switch e := v.(type) {
	case ast.LiteralHolder:
		return StringValue(e.Text)
	case ast.NumberHolder:
		return NumberValue(e.Value)
	case ast.BooleanHolder:
		return BoolValue(e.Value)
	case ast.SelfRef:
		return ListValue([]Location{fctx})
	case ast.PathExpr:
		return ListValue(selectFrom(ctx, g, filterCandidates, &e.Path))
	case ast.FunctionCall:
		args := make([]Value, len(e.Args))
		for i, a := range e.Args {
			args[i] = evaluateValue(ctx, g, a, filterCandidates, fctx)
		}
		return callBuiltin(ctx, g, e.Name, args)
	default:
		return ListValue(nil)
	}
}

// selectFrom runs path's steps starting from an already-derived candidate
// set, used for relative paths inside filter expressions (spec.md §4.2's
// PathExpr). It is the same propagation loop as Select but does not
// perform the initial start-node-to-out-arcs hop, since filterCandidates
// already plays that role.
func selectFrom(ctx context.Context, g graph.Adapter, start []Location, path *ast.LocPath) []Location {
	candidates := start
	var selected []Location
	for i, step := range path.Steps {
		selected = selected[:0]
		for _, cand := range candidates {
			if matchStep(ctx, g, step, cand) {
				selected = append(selected, cand)
			}
		}
		if i < len(path.Steps)-1 {
			var next []Location
			for _, loc := range selected {
				next = append(next, deriveCandidates(ctx, g, loc, true)...)
			}
			candidates = next
		}
	}
	return selected
}

func dedupeTerms(locs []Location) []term.Term {
	seen := make(map[string]struct{}, len(locs))
	out := make([]term.Term, 0, len(locs))
	for _, loc := range locs {
		v := loc.Value()
		key := v.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}
