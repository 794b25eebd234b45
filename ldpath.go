// Package ldpath is a query processor for an XPath-like path language
// over RDF-style directed labeled graphs: given a starting URI and a
// path expression, it returns the distinct terms selected by evaluating
// the expression against an aggregating graph that lazily dereferences
// the linked-data documents it needs.
package ldpath

import (
	"context"
	"io"

	"github.com/iand-tools/ldpath/internal/eval"
	"github.com/iand-tools/ldpath/internal/fetch"
	"github.com/iand-tools/ldpath/internal/graph"
	"github.com/iand-tools/ldpath/internal/parser"
	"github.com/iand-tools/ldpath/internal/serialization"
	"github.com/iand-tools/ldpath/internal/term"

	_ "github.com/iand-tools/ldpath/internal/builtin"
)

// ParseError is re-exported so callers can type-assert on a failed
// ParsePath/Select without importing internal/parser.
type ParseError = parser.ParseError

// Processor wraps an AggregatingGraph and exposes path evaluation, prefix
// binding and JSON snapshot persistence as a single facade, mirroring the
// shape of teacher's root PGraph type.
type Processor struct {
	Graph *graph.AggregatingGraph
}

// New returns a Processor backed by an empty graph that dereferences
// remote IRIs over HTTP.
func New() *Processor {
	return &Processor{Graph: graph.New(fetch.NewHTTPDereferencer())}
}

// NewOffline returns a Processor whose graph never dereferences anything;
// useful for tests and for snapshots meant to be fully self-contained.
func NewOffline() *Processor {
	return &Processor{Graph: graph.New(graph.NopDereferencer{})}
}

// Load reads a graph snapshot from r. The loaded graph never
// dereferences remote IRIs; use Bind/AddTriple-style mutation through
// Graph directly if further growth is needed.
func Load(r io.Reader) (*Processor, error) {
	g, err := serialization.ReadJSON(r)
	if err != nil {
		return nil, err
	}
	return &Processor{Graph: g}, nil
}

// LoadFile reads a graph snapshot from a JSON file at path.
func LoadFile(path string) (*Processor, error) {
	g, err := serialization.LoadJSON(path)
	if err != nil {
		return nil, err
	}
	return &Processor{Graph: g}, nil
}

// Save writes the processor's graph snapshot to w.
func (p *Processor) Save(w io.Writer) error {
	return serialization.WriteJSON(p.Graph, w)
}

// SaveFile writes the processor's graph snapshot to a JSON file at path.
func (p *Processor) SaveFile(path string) error {
	return serialization.SaveJSON(p.Graph, path)
}

// Bind installs or overwrites a prefix mapping used to resolve qnames in
// path expressions.
func (p *Processor) Bind(prefix, namespaceIRI string) {
	p.Graph.Bind(prefix, namespaceIRI)
}

// Select parses pathText and evaluates it starting from start, returning
// the distinct, first-seen-order terms it selects. trace, if non-nil,
// receives a line of diagnostics per step; pass nil to disable it.
func (p *Processor) Select(ctx context.Context, start term.Term, pathText string, trace io.Writer) ([]term.Term, error) {
	path, err := parser.ParsePath(pathText)
	if err != nil {
		return nil, err
	}
	return eval.Select(ctx, p.Graph, start, path, trace), nil
}

// SelectFromURI is a convenience wrapper over Select for the common case
// of a plain IRI starting point.
func (p *Processor) SelectFromURI(ctx context.Context, startURI, pathText string, trace io.Writer) ([]term.Term, error) {
	return p.Select(ctx, term.NewIRI(startURI), pathText, trace)
}
