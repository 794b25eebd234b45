package graph

import "fmt"

// Error reports a problem with a graph-adapter operation. It follows the
// same Kind/Message shape as the teacher repo's GraphError so callers can
// branch on Kind without parsing Error() strings.
type Error struct {
	Kind    string
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("graph error (%v): %v", e.Kind, e.Message)
}

func unknownPrefix(prefix string) error {
	return Error{Kind: "UnknownPrefix", Message: fmt.Sprintf("prefix %q is not bound", prefix)}
}

func malformedQName(qname string) error {
	return Error{Kind: "MalformedQName", Message: fmt.Sprintf("%q is not a prefix:local qualified name", qname)}
}
