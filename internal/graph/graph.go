// Package graph implements the aggregating graph adapter from spec.md §6:
// a triple store that lazily enlarges itself by dereferencing IRI
// subjects it is asked about, plus the prefix map and lookup memo that
// live alongside it for the lifetime of a processor.
package graph

import (
	"context"

	"github.com/iand-tools/ldpath/internal/term"
)

// Adapter is the capability the evaluator core consumes. It is the Go
// shape of spec.md §6's "Graph adapter (consumed by the core)".
type Adapter interface {
	// Lookup is a best-effort, at-most-once-per-lifetime hint to
	// dereference iri and merge any triples found into the graph.
	Lookup(ctx context.Context, iri term.IRI)
	// PredicatesOf returns the predicate IRIs of subject's outgoing
	// triples, triggering a Lookup(subject) first.
	PredicatesOf(ctx context.Context, subject term.Term, distinct bool) []term.IRI
	// ObjectsOf returns the objects of (subject, predicate, ?) triples,
	// triggering a Lookup(subject) first.
	ObjectsOf(ctx context.Context, subject term.Term, predicate term.IRI) []term.Term
	// HasTriple reports whether (subject, predicate, object) is present,
	// triggering a Lookup(subject) first.
	HasTriple(ctx context.Context, subject, object term.Term, predicate term.IRI) bool
	// QNameToURI resolves a "prefix:local" qname via the bound prefix map.
	QNameToURI(qname string) (term.IRI, bool)
	// Bind installs or overwrites a prefix mapping.
	Bind(prefix, namespaceIRI string)
}

// Dereferencer fetches and decodes the RDF document at iri, returning the
// triples it contains. Implementations live in internal/fetch; this
// package only depends on the interface to avoid a cyclic import between
// the triple store and the HTTP/RDF-decoding machinery.
type Dereferencer interface {
	Dereference(ctx context.Context, iri term.IRI) ([]term.Triple, error)
}

// NopDereferencer never fetches anything; AggregatingGraph instances
// built for unit tests or for pre-populated graphs use it.
type NopDereferencer struct{}

func (NopDereferencer) Dereference(context.Context, term.IRI) ([]term.Triple, error) {
	return nil, nil
}

// AggregatingGraph is the default Adapter implementation: an in-memory
// triple store plus a prefix map and lookup memo, growing monotonically
// as Lookup dereferences new subjects. It is not safe for concurrent use,
// matching the single-threaded cooperative model of spec.md §5.
type AggregatingGraph struct {
	store   *tripleStore
	prefix  *PrefixMap
	memo    *lookupMemo
	fetcher Dereferencer
}

// New constructs an empty AggregatingGraph. A nil fetcher disables
// dereferencing entirely (Lookup becomes a no-op), which is useful for
// tests that pre-populate the graph via AddTriple.
func New(fetcher Dereferencer) *AggregatingGraph {
	if fetcher == nil {
		fetcher = NopDereferencer{}
	}
	return &AggregatingGraph{
		store:   newTripleStore(),
		prefix:  NewPrefixMap(),
		memo:    newLookupMemo(),
		fetcher: fetcher,
	}
}

// AddTriple inserts a triple directly, bypassing dereferencing. Used to
// seed a graph from test fixtures or a JSON snapshot.
func (g *AggregatingGraph) AddTriple(t term.Triple) bool {
	return g.store.add(t)
}

// Triples returns every triple currently held, for snapshotting.
func (g *AggregatingGraph) Triples() []term.Triple {
	return g.store.all()
}

// Prefixes exposes the bound prefix map for snapshotting.
func (g *AggregatingGraph) Prefixes() []struct{ Prefix, NamespaceIRI string } {
	return g.prefix.Bindings()
}

func (g *AggregatingGraph) Bind(prefix, namespaceIRI string) {
	g.prefix.Bind(prefix, namespaceIRI)
}

func (g *AggregatingGraph) QNameToURI(qname string) (term.IRI, bool) {
	iri, err := g.prefix.QNameToURI(qname)
	if err != nil {
		return term.IRI{}, false
	}
	return iri, true
}

// Lookup dereferences iri at most once per AggregatingGraph lifetime.
// Fetch and parse errors are swallowed per spec.md §7 — the graph simply
// does not grow.
func (g *AggregatingGraph) Lookup(ctx context.Context, iri term.IRI) {
	if !g.memo.claim(iri.Value) {
		return
	}
	triples, err := g.fetcher.Dereference(ctx, iri)
	if err != nil {
		return
	}
	for _, t := range triples {
		g.store.add(t)
	}
}

func (g *AggregatingGraph) PredicatesOf(ctx context.Context, subject term.Term, distinct bool) []term.IRI {
	g.lookupIfIRI(ctx, subject)
	return g.store.predicatesOf(subject, distinct)
}

func (g *AggregatingGraph) ObjectsOf(ctx context.Context, subject term.Term, predicate term.IRI) []term.Term {
	g.lookupIfIRI(ctx, subject)
	return g.store.objectsOf(subject, predicate)
}

func (g *AggregatingGraph) HasTriple(ctx context.Context, subject, object term.Term, predicate term.IRI) bool {
	g.lookupIfIRI(ctx, subject)
	return g.store.hasTriple(subject, object, predicate)
}

func (g *AggregatingGraph) lookupIfIRI(ctx context.Context, subject term.Term) {
	if iri, ok := subject.(term.IRI); ok {
		g.Lookup(ctx, iri)
	}
}

var _ Adapter = (*AggregatingGraph)(nil)
