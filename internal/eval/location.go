// Package eval is the tree-walking evaluator from spec.md §4.2–§4.4: it
// drives candidate propagation through a parsed LocPath and implements
// the typing rules for comparisons. Behavior for every ast.* variant is
// dispatched here via type switches rather than methods on the AST types
// themselves, per spec.md §9's "dispatch via pattern matching" guidance.
package eval

import "github.com/iand-tools/ldpath/internal/term"

// Location is the evaluator's cursor: a Node positioned on a term, or an
// Arc positioned on a predicate IRI emerging from an origin subject
// (spec.md §3). Arc.Origin is always a term previously exposed as a Node.
type Location struct {
	isArc     bool
	node      term.Term
	predicate term.IRI
	origin    term.Term
}

// NewNode wraps t as a Node location.
func NewNode(t term.Term) Location {
	return Location{node: t}
}

// NewArc wraps predicate as an Arc location emerging from origin.
func NewArc(origin term.Term, predicate term.IRI) Location {
	return Location{isArc: true, origin: origin, predicate: predicate}
}

func (l Location) IsArc() bool { return l.isArc }

// Predicate is valid only when IsArc is true.
func (l Location) Predicate() term.IRI { return l.predicate }

// Origin is valid only when IsArc is true.
func (l Location) Origin() term.Term { return l.origin }

// Value returns the underlying Term this Location resolves to: the
// wrapped term for a Node, or the predicate IRI for an Arc. This is what
// a final select() result reports per spec.md §4.4 step 4.
func (l Location) Value() term.Term {
	if l.isArc {
		return l.predicate
	}
	return l.node
}

// IsLiteral reports whether this Location is a literal Node. An Arc is
// never a literal (spec.md §3 invariant).
func (l Location) IsLiteral() bool {
	if l.isArc {
		return false
	}
	return term.IsLiteral(l.node)
}

// IsURI reports whether this Location resolves to an IRI. An Arc is
// always a URI: its Value is a predicate, which is always an IRI.
func (l Location) IsURI() bool {
	if l.isArc {
		return true
	}
	return term.IsIRI(l.node)
}

// literal returns the underlying Literal and true if this Location is a
// literal Node.
func (l Location) literal() (term.Literal, bool) {
	if l.isArc {
		return term.Literal{}, false
	}
	lit, ok := l.node.(term.Literal)
	return lit, ok
}
