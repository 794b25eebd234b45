package term

// Triple is an ordered (subject, predicate, object) assertion. Subject is
// restricted to IRI or Blank; Predicate is always an IRI; Object may be
// any Term. The aggregating graph gives triples set semantics per
// (s,p,o) — duplicates inserted twice are indistinguishable.
type Triple struct {
	Subject   Term
	Predicate IRI
	Object    Term
}

// Key returns a value usable as a map key for set-semantics storage.
func (t Triple) Key() TripleKey {
	return TripleKey{
		Subject:   t.Subject.String(),
		Predicate: t.Predicate.Value,
		Object:    t.Object.String(),
	}
}

// TripleKey is the comparable identity of a Triple, used by the graph
// adapter to enforce (s,p,o) set semantics over a map.
type TripleKey struct {
	Subject   string
	Predicate string
	Object    string
}
