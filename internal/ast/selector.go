package ast

import "fmt"

// Selector is the node/arc test of a Step: wildcard, qname, exact
// literal, or any-literal (spec.md §3, §4.2).
type Selector interface {
	isSelector()
	String() string
}

// Wildcard matches any candidate.
type Wildcard struct{}

func (Wildcard) isSelector()    {}
func (Wildcard) String() string { return "*" }

// ByQName matches an arc whose predicate resolves from QName, or a node
// typed rdf:type that QName.
type ByQName struct {
	QName string
}

func (ByQName) isSelector()      {}
func (s ByQName) String() string { return s.QName }

// LiteralExact matches a literal node whose lexical form equals Text.
type LiteralExact struct {
	Text string
}

func (LiteralExact) isSelector()      {}
func (s LiteralExact) String() string { return fmt.Sprintf("'%s'", s.Text) }

// AnyLiteral matches any literal node; spelled text() in path text.
type AnyLiteral struct{}

func (AnyLiteral) isSelector()    {}
func (AnyLiteral) String() string { return "text()" }
