package serialization

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iand-tools/ldpath/internal/graph"
	"github.com/iand-tools/ldpath/internal/term"
)

func buildGraph(t *testing.T, triples []term.Triple, prefixes map[string]string) *graph.AggregatingGraph {
	t.Helper()
	g := graph.New(nil)
	for prefix, ns := range prefixes {
		g.Bind(prefix, ns)
	}
	for _, tr := range triples {
		g.AddTriple(tr)
	}
	return g
}

func roundTrip(t *testing.T, g *graph.AggregatingGraph) *graph.AggregatingGraph {
	t.Helper()
	var buf bytes.Buffer
	if err := WriteJSON(g, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	return got
}

func TestRoundTripEmptyGraph(t *testing.T) {
	got := roundTrip(t, graph.New(nil))
	if len(got.Triples()) != 0 {
		t.Errorf("expected 0 triples, got %d", len(got.Triples()))
	}
}

func TestRoundTripIRITriple(t *testing.T) {
	g := buildGraph(t, []term.Triple{
		{
			Subject:   term.NewIRI("http://example.org/alice"),
			Predicate: term.NewIRI("http://xmlns.com/foaf/0.1/knows"),
			Object:    term.NewIRI("http://example.org/bob"),
		},
	}, map[string]string{"foaf": "http://xmlns.com/foaf/0.1/"})

	got := roundTrip(t, g)
	triples := got.Triples()
	if len(triples) != 1 {
		t.Fatalf("expected 1 triple, got %d", len(triples))
	}
	if !triples[0].Subject.Eq(term.NewIRI("http://example.org/alice")) {
		t.Errorf("subject = %v, want alice", triples[0].Subject)
	}
	if u, ok := got.QNameToURI("foaf:knows"); !ok || u.Value != "http://xmlns.com/foaf/0.1/knows" {
		t.Errorf("QNameToURI(foaf:knows) = %v, %v, want the foaf knows IRI", u, ok)
	}
}

func TestRoundTripLiteralVariants(t *testing.T) {
	dt := term.NewIRI("http://www.w3.org/2001/XMLSchema#integer")
	g := buildGraph(t, []term.Triple{
		{Subject: term.NewIRI("urn:s"), Predicate: term.NewIRI("urn:plain"), Object: term.NewLiteral("plain")},
		{Subject: term.NewIRI("urn:s"), Predicate: term.NewIRI("urn:lang"), Object: term.NewLangLiteral("bonjour", "fr")},
		{Subject: term.NewIRI("urn:s"), Predicate: term.NewIRI("urn:typed"), Object: term.NewTypedLiteral("42", dt)},
	}, nil)

	got := roundTrip(t, g)
	byPred := make(map[string]term.Term)
	for _, tr := range got.Triples() {
		byPred[tr.Predicate.Value] = tr.Object
	}

	plain, ok := byPred["urn:plain"].(term.Literal)
	if !ok || plain.Lexical != "plain" || plain.Lang != "" || plain.Datatype != nil {
		t.Errorf("plain literal round-tripped as %+v", byPred["urn:plain"])
	}
	lang, ok := byPred["urn:lang"].(term.Literal)
	if !ok || lang.Lexical != "bonjour" || lang.Lang != "fr" {
		t.Errorf("lang literal round-tripped as %+v", byPred["urn:lang"])
	}
	typed, ok := byPred["urn:typed"].(term.Literal)
	if !ok || typed.Lexical != "42" || typed.Datatype == nil || typed.Datatype.Value != dt.Value {
		t.Errorf("typed literal round-tripped as %+v", byPred["urn:typed"])
	}
}

func TestRoundTripBlankNode(t *testing.T) {
	g := buildGraph(t, []term.Triple{
		{Subject: term.NewBlank("b0"), Predicate: term.NewIRI("urn:p"), Object: term.NewIRI("urn:o")},
	}, nil)
	got := roundTrip(t, g)
	triples := got.Triples()
	if len(triples) != 1 {
		t.Fatalf("expected 1 triple, got %d", len(triples))
	}
	if b, ok := triples[0].Subject.(term.Blank); !ok || b.ID != "b0" {
		t.Errorf("subject = %+v, want blank node b0", triples[0].Subject)
	}
}

func TestWriteJSONProducesValidJSON(t *testing.T) {
	g := buildGraph(t, []term.Triple{
		{Subject: term.NewIRI("urn:s"), Predicate: term.NewIRI("urn:p"), Object: term.NewIRI("urn:o")},
	}, nil)

	var buf bytes.Buffer
	if err := WriteJSON(g, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"triples"`) {
		t.Error("JSON missing 'triples' key")
	}
	if !strings.Contains(out, `"predicate"`) {
		t.Error("JSON missing 'predicate' field")
	}
}

func TestReadJSONUnknownTermKind(t *testing.T) {
	input := `{"triples":[{"subject":{"kind":"weird","value":"x"},"predicate":"urn:p","object":{"kind":"iri","value":"urn:o"}}]}`
	if _, err := ReadJSON(strings.NewReader(input)); err == nil {
		t.Error("expected error for unknown term kind")
	}
}

func TestReadJSONInvalidJSON(t *testing.T) {
	if _, err := ReadJSON(strings.NewReader("not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestSaveAndLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/graph.json"

	g := buildGraph(t, []term.Triple{
		{Subject: term.NewIRI("urn:s"), Predicate: term.NewIRI("urn:p"), Object: term.NewLiteral("v")},
	}, nil)
	if err := SaveJSON(g, path); err != nil {
		t.Fatalf("SaveJSON: %v", err)
	}

	got, err := LoadJSON(path)
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	if len(got.Triples()) != 1 {
		t.Errorf("expected 1 triple after load, got %d", len(got.Triples()))
	}
}

func TestLoadJSONNonexistentFile(t *testing.T) {
	if _, err := LoadJSON("/nonexistent/path/graph.json"); err == nil {
		t.Error("expected error for nonexistent file")
	}
}
