package eval

// Kind tags the variant held by a Value (spec.md §9: "the Value produced
// by evaluate is itself a sum type; prefer explicit variants to any
// dynamic value").
type Kind int

const (
	KindList Kind = iota
	KindBool
	KindNumber
	KindString
	// KindMissing is the number() sentinel (spec.md §4.2), distinguishable
	// from a numeric zero.
	KindMissing
)

// Value is what ValueExpr.evaluate produces: a list of Location, or a
// bool, number, or string scalar.
type Value struct {
	Kind   Kind
	List   []Location
	Bool   bool
	Number float64
	Str    string
}

func ListValue(locs []Location) Value   { return Value{Kind: KindList, List: locs} }
func BoolValue(b bool) Value            { return Value{Kind: KindBool, Bool: b} }
func NumberValue(n float64) Value       { return Value{Kind: KindNumber, Number: n} }
func StringValue(s string) Value        { return Value{Kind: KindString, Str: s} }
func MissingValue() Value               { return Value{Kind: KindMissing} }

// BoolValueOf is spec.md §4.3's bool_value coercion: list or string
// truthy by non-zero length, number truthy by non-zero, bool by identity.
// The missing-value sentinel is always false.
func BoolValueOf(v Value) bool {
	switch v.Kind {
	case KindList:
		return len(v.List) > 0
	case KindString:
		return len(v.Str) > 0
	case KindNumber:
		return v.Number != 0
	case KindBool:
		return v.Bool
	default:
		return false
	}
}
