package eval

import (
	"context"

	"github.com/iand-tools/ldpath/internal/graph"
)

// BuiltinFunc implements one of the closed-set functions from spec.md
// §4.2. Args have already been evaluated against the same filter
// candidate set and context the call itself was evaluated with.
type BuiltinFunc func(ctx context.Context, g graph.Adapter, args []Value) Value

var builtins = map[string]BuiltinFunc{}

// RegisterBuiltin installs fn under name. Called from internal/builtin's
// init(), mirroring the registry pattern of database/sql drivers and
// image format decoders in the standard library — it lets internal/eval
// depend on nothing but the Value/Location types it already owns, while
// internal/builtin depends on eval instead of the reverse, avoiding an
// import cycle between the two packages.
func RegisterBuiltin(name string, fn BuiltinFunc) {
	builtins[name] = fn
}

func callBuiltin(ctx context.Context, g graph.Adapter, name string, args []Value) Value {
	fn, ok := builtins[name]
	if !ok {
		return ListValue(nil)
	}
	return fn(ctx, g, args)
}
