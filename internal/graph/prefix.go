package graph

import (
	"regexp"
	"strings"

	"github.com/iand-tools/ldpath/internal/term"
)

var qnamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+:[a-zA-Z0-9_]+$`)

// PrefixMap is an ordered set of (prefix, namespace IRI) bindings. rdf,
// rdfs and owl are pre-registered with their standard IRIs, matching
// AggregatingGraph.__init__ in the Python original.
type PrefixMap struct {
	order []string
	ns    map[string]string
}

func NewPrefixMap() *PrefixMap {
	pm := &PrefixMap{ns: make(map[string]string)}
	pm.Bind("rdf", "http://www.w3.org/1999/02/22-rdf-syntax-ns#")
	pm.Bind("rdfs", "http://www.w3.org/2000/01/rdf-schema#")
	pm.Bind("owl", "http://www.w3.org/2002/07/owl#")
	return pm
}

// Bind installs or overwrites a prefix mapping.
func (pm *PrefixMap) Bind(prefix, namespaceIRI string) {
	if _, exists := pm.ns[prefix]; !exists {
		pm.order = append(pm.order, prefix)
	}
	pm.ns[prefix] = namespaceIRI
}

// Resolve expands a namespace-qualified prefix. The second return value is
// false when the prefix has no binding.
func (pm *PrefixMap) Resolve(prefix string) (string, bool) {
	ns, ok := pm.ns[prefix]
	return ns, ok
}

// QNameToURI resolves a qname of the form "prefix:local" to an IRI,
// matching AggregatingGraph.qname_to_uri.
func (pm *PrefixMap) QNameToURI(qname string) (term.IRI, error) {
	if !qnamePattern.MatchString(qname) {
		return term.IRI{}, malformedQName(qname)
	}
	prefix, local, _ := strings.Cut(qname, ":")
	ns, ok := pm.Resolve(prefix)
	if !ok {
		return term.IRI{}, unknownPrefix(prefix)
	}
	return term.NewIRI(ns + local), nil
}

// Bindings returns the bindings in insertion order, for diagnostics and
// tests.
func (pm *PrefixMap) Bindings() []struct{ Prefix, NamespaceIRI string } {
	out := make([]struct{ Prefix, NamespaceIRI string }, 0, len(pm.order))
	for _, p := range pm.order {
		out = append(out, struct{ Prefix, NamespaceIRI string }{p, pm.ns[p]})
	}
	return out
}
