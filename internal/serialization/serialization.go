// Package serialization implements the JSON graph snapshot format used by
// Processor.Load/Save: the accumulated triples and bound prefixes of an
// AggregatingGraph, round-tripped through encoding/json the way teacher's
// internal/serialization round-trips a ProbabilisticAdjacencyListGraph.
package serialization

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/iand-tools/ldpath/internal/graph"
	"github.com/iand-tools/ldpath/internal/term"
)

type serializedTerm struct {
	Kind     string `json:"kind"`
	Value    string `json:"value"`
	Datatype string `json:"datatype,omitempty"`
	Lang     string `json:"lang,omitempty"`
}

type serializedTriple struct {
	Subject   serializedTerm `json:"subject"`
	Predicate string         `json:"predicate"`
	Object    serializedTerm `json:"object"`
}

type serializedPrefix struct {
	Prefix       string `json:"prefix"`
	NamespaceIRI string `json:"namespaceIri"`
}

type serializedGraph struct {
	Triples  []serializedTriple `json:"triples"`
	Prefixes []serializedPrefix `json:"prefixes,omitempty"`
}

func marshalTerm(t term.Term) serializedTerm {
	switch v := t.(type) {
	case term.IRI:
		return serializedTerm{Kind: "iri", Value: v.Value}
	case term.Blank:
		return serializedTerm{Kind: "blank", Value: v.ID}
	case term.Literal:
		st := serializedTerm{Kind: "literal", Value: v.Lexical, Lang: v.Lang}
		if v.Datatype != nil {
			st.Datatype = v.Datatype.Value
		}
		return st
	default:
		return serializedTerm{Kind: "unknown"}
	}
}

func unmarshalTerm(st serializedTerm) (term.Term, error) {
	switch st.Kind {
	case "iri":
		return term.NewIRI(st.Value), nil
	case "blank":
		return term.NewBlank(st.Value), nil
	case "literal":
		switch {
		case st.Lang != "":
			return term.NewLangLiteral(st.Value, st.Lang), nil
		case st.Datatype != "":
			return term.NewTypedLiteral(st.Value, term.NewIRI(st.Datatype)), nil
		default:
			return term.NewLiteral(st.Value), nil
		}
	default:
		return nil, fmt.Errorf("unknown serialized term kind %q", st.Kind)
	}
}

func toSerializedGraph(g *graph.AggregatingGraph) serializedGraph {
	triples := g.Triples()
	sTriples := make([]serializedTriple, 0, len(triples))
	for _, t := range triples {
		sTriples = append(sTriples, serializedTriple{
			Subject:   marshalTerm(t.Subject),
			Predicate: t.Predicate.Value,
			Object:    marshalTerm(t.Object),
		})
	}

	bindings := g.Prefixes()
	sPrefixes := make([]serializedPrefix, 0, len(bindings))
	for _, b := range bindings {
		sPrefixes = append(sPrefixes, serializedPrefix{Prefix: b.Prefix, NamespaceIRI: b.NamespaceIRI})
	}

	return serializedGraph{Triples: sTriples, Prefixes: sPrefixes}
}

func fromSerializedGraph(sg serializedGraph) (*graph.AggregatingGraph, error) {
	g := graph.New(nil)

	for _, sp := range sg.Prefixes {
		g.Bind(sp.Prefix, sp.NamespaceIRI)
	}

	for _, st := range sg.Triples {
		subj, err := unmarshalTerm(st.Subject)
		if err != nil {
			return nil, fmt.Errorf("triple subject: %w", err)
		}
		obj, err := unmarshalTerm(st.Object)
		if err != nil {
			return nil, fmt.Errorf("triple object: %w", err)
		}
		g.AddTriple(term.Triple{
			Subject:   subj,
			Predicate: term.NewIRI(st.Predicate),
			Object:    obj,
		})
	}

	return g, nil
}

// WriteJSON encodes g to JSON and writes it to w.
func WriteJSON(g *graph.AggregatingGraph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toSerializedGraph(g))
}

// ReadJSON decodes a graph snapshot from r.
func ReadJSON(r io.Reader) (*graph.AggregatingGraph, error) {
	var sg serializedGraph
	if err := json.NewDecoder(r).Decode(&sg); err != nil {
		return nil, fmt.Errorf("decoding graph JSON: %w", err)
	}
	return fromSerializedGraph(sg)
}

// SaveJSON writes a graph snapshot to a JSON file at path.
func SaveJSON(g *graph.AggregatingGraph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}

// LoadJSON reads a graph snapshot from a JSON file at path.
func LoadJSON(path string) (*graph.AggregatingGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
