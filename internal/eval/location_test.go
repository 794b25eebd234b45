package eval

import (
	"testing"

	"github.com/iand-tools/ldpath/internal/term"
)

func TestNodeLocationValueAndKind(t *testing.T) {
	loc := NewNode(term.NewIRI("http://example.com/a"))
	if loc.IsArc() {
		t.Error("expected a Node location to report IsArc() == false")
	}
	if !loc.IsURI() {
		t.Error("expected a Node wrapping an IRI to report IsURI() == true")
	}
	if loc.IsLiteral() {
		t.Error("expected an IRI Node not to be a literal")
	}
	if !loc.Value().Eq(term.NewIRI("http://example.com/a")) {
		t.Errorf("Value() = %v", loc.Value())
	}
}

func TestLiteralNodeLocation(t *testing.T) {
	loc := NewNode(term.NewLiteral("Wilbur"))
	if !loc.IsLiteral() {
		t.Error("expected a literal Node to report IsLiteral() == true")
	}
	if loc.IsURI() {
		t.Error("expected a literal Node not to be a URI")
	}
	lit, ok := loc.literal()
	if !ok || lit.Lexical != "Wilbur" {
		t.Fatalf("literal() = %+v, %v", lit, ok)
	}
}

// An Arc's Value is always its predicate, which is always an IRI — it has
// no literal form of its own, regardless of what it points at.
func TestArcLocationIsAlwaysURI(t *testing.T) {
	origin := term.NewIRI("http://example.com/person1")
	pred := term.NewIRI("http://xmlns.com/foaf/0.1/givenName")
	arc := NewArc(origin, pred)

	if !arc.IsArc() {
		t.Fatal("expected IsArc() == true")
	}
	if !arc.IsURI() {
		t.Error("expected an Arc to report IsURI() == true unconditionally")
	}
	if arc.IsLiteral() {
		t.Error("expected an Arc never to be a literal")
	}
	if !arc.Value().Eq(pred) {
		t.Errorf("Value() = %v, want predicate %v", arc.Value(), pred)
	}
	if !arc.Origin().Eq(origin) {
		t.Errorf("Origin() = %v, want %v", arc.Origin(), origin)
	}
	if arc.Predicate().Value != pred.Value {
		t.Errorf("Predicate() = %v, want %v", arc.Predicate(), pred)
	}
	if _, ok := arc.literal(); ok {
		t.Error("expected literal() to fail for an Arc")
	}
}
