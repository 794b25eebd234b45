package graph

import "github.com/iand-tools/ldpath/internal/term"

// tripleStore is an in-memory, subject-indexed multiset of triples with
// set semantics per (s,p,o), generalizing the teacher's
// ProbabilisticAdjacencyListGraph (subject/object adjacency maps) from
// single weighted edges to arbitrarily many triples per subject.
type tripleStore struct {
	bySubject map[string][]term.Triple
	present   map[term.TripleKey]struct{}
}

func newTripleStore() *tripleStore {
	return &tripleStore{
		bySubject: make(map[string][]term.Triple),
		present:   make(map[term.TripleKey]struct{}),
	}
}

// add inserts t if not already present, returning whether it was new.
func (s *tripleStore) add(t term.Triple) bool {
	key := t.Key()
	if _, ok := s.present[key]; ok {
		return false
	}
	s.present[key] = struct{}{}
	subjKey := t.Subject.String()
	s.bySubject[subjKey] = append(s.bySubject[subjKey], t)
	return true
}

// predicatesOf returns the predicate IRIs of triples whose subject is
// subject, in first-seen order. When distinct is false, a predicate
// appears once per triple it labels (mirroring rdflib's non-distinct
// Graph.predicates()).
func (s *tripleStore) predicatesOf(subject term.Term, distinct bool) []term.IRI {
	triples := s.bySubject[subject.String()]
	result := make([]term.IRI, 0, len(triples))
	seen := make(map[string]struct{}, len(triples))
	for _, t := range triples {
		if distinct {
			if _, ok := seen[t.Predicate.Value]; ok {
				continue
			}
			seen[t.Predicate.Value] = struct{}{}
		}
		result = append(result, t.Predicate)
	}
	return result
}

// objectsOf returns the objects of (subject, predicate, ?) triples in
// first-seen order.
func (s *tripleStore) objectsOf(subject term.Term, predicate term.IRI) []term.Term {
	triples := s.bySubject[subject.String()]
	result := make([]term.Term, 0, len(triples))
	for _, t := range triples {
		if t.Predicate.Value == predicate.Value {
			result = append(result, t.Object)
		}
	}
	return result
}

// hasTriple reports whether the exact (s,p,o) triple is present.
func (s *tripleStore) hasTriple(subject, object term.Term, predicate term.IRI) bool {
	key := term.Triple{Subject: subject, Predicate: predicate, Object: object}.Key()
	_, ok := s.present[key]
	return ok
}

// all returns every stored triple, for JSON snapshotting.
func (s *tripleStore) all() []term.Triple {
	out := make([]term.Triple, 0, len(s.present))
	for _, triples := range s.bySubject {
		out = append(out, triples...)
	}
	return out
}
