package graph

import (
	"testing"

	"github.com/iand-tools/ldpath/internal/term"
)

func TestStoreAddDeduplicates(t *testing.T) {
	s := newTripleStore()
	tr := term.Triple{
		Subject:   term.NewIRI("http://example.com/a"),
		Predicate: term.NewIRI("http://example.com/p"),
		Object:    term.NewIRI("http://example.com/b"),
	}
	if !s.add(tr) {
		t.Fatal("expected first add to report new")
	}
	if s.add(tr) {
		t.Fatal("expected duplicate add to report not-new")
	}
	if len(s.all()) != 1 {
		t.Fatalf("expected 1 stored triple, got %d", len(s.all()))
	}
}

func TestPredicatesOfDistinctVsNonDistinct(t *testing.T) {
	s := newTripleStore()
	subj := term.NewIRI("http://example.com/a")
	p1 := term.NewIRI("http://example.com/knows")
	s.add(term.Triple{Subject: subj, Predicate: p1, Object: term.NewIRI("http://example.com/b")})
	s.add(term.Triple{Subject: subj, Predicate: p1, Object: term.NewIRI("http://example.com/c")})

	nonDistinct := s.predicatesOf(subj, false)
	if len(nonDistinct) != 2 {
		t.Fatalf("expected 2 non-distinct predicate entries, got %d", len(nonDistinct))
	}

	distinct := s.predicatesOf(subj, true)
	if len(distinct) != 1 {
		t.Fatalf("expected 1 distinct predicate entry, got %d", len(distinct))
	}
}

func TestObjectsOfFiltersByPredicate(t *testing.T) {
	s := newTripleStore()
	subj := term.NewIRI("http://example.com/a")
	knows := term.NewIRI("http://example.com/knows")
	likes := term.NewIRI("http://example.com/likes")
	s.add(term.Triple{Subject: subj, Predicate: knows, Object: term.NewIRI("http://example.com/b")})
	s.add(term.Triple{Subject: subj, Predicate: likes, Object: term.NewIRI("http://example.com/pizza")})

	objs := s.objectsOf(subj, knows)
	if len(objs) != 1 || objs[0].String() != "http://example.com/b" {
		t.Fatalf("unexpected objectsOf result: %v", objs)
	}
}

func TestHasTriple(t *testing.T) {
	s := newTripleStore()
	subj := term.NewIRI("http://example.com/a")
	pred := term.NewIRI("http://example.com/knows")
	obj := term.NewIRI("http://example.com/b")
	s.add(term.Triple{Subject: subj, Predicate: pred, Object: obj})

	if !s.hasTriple(subj, obj, pred) {
		t.Fatal("expected hasTriple to find the inserted triple")
	}
	if s.hasTriple(subj, term.NewIRI("http://example.com/c"), pred) {
		t.Fatal("expected hasTriple to reject an absent object")
	}
}
