package eval

import "strconv"

// Compare implements the dynamic-type comparison table of spec.md §4.3.
// Undefined cells return false; this is the documented partial-typing
// policy, not a bug.
func Compare(l, r Value, op string) bool {
	switch l.Kind {
	case KindList:
		switch r.Kind {
		case KindList:
			return compareListList(l, r, op)
		case KindBool:
			return compareBoolOp(BoolValueOf(l), r.Bool, op)
		case KindNumber:
			return compareListNumber(l, r.Number, op)
		case KindString:
			return compareListString(l, r.Str, op)
		}
	case KindBool:
		switch r.Kind {
		case KindList:
			return compareBoolOp(l.Bool, BoolValueOf(r), op)
		case KindBool:
			return compareBoolOp(l.Bool, r.Bool, op)
		case KindNumber:
			return false // undefined
		case KindString:
			return compareBoolOp(l.Bool, len(r.Str) > 0, op)
		}
	case KindNumber:
		switch r.Kind {
		case KindList:
			return compareListNumber(r, l.Number, flip(op))
		case KindBool:
			return false // undefined
		case KindNumber:
			return compareNumberOp(l.Number, r.Number, op)
		case KindString:
			return false // undefined
		}
	case KindString:
		switch r.Kind {
		case KindList:
			return compareListString(r, l.Str, op)
		case KindBool:
			return compareBoolOp(len(l.Str) > 0, r.Bool, op)
		case KindNumber:
			return false // undefined
		case KindString:
			return compareStringEquality(l.Str, r.Str, op)
		}
	}
	return false
}

// compareListList is an existential (XPath node-set style) comparison:
// true if any pair (one Location from each list) satisfies op.
func compareListList(l, r Value, op string) bool {
	for _, a := range l.List {
		for _, b := range r.List {
			if compareLocations(a, b, op) {
				return true
			}
		}
	}
	return false
}

func compareListNumber(l Value, n float64, op string) bool {
	for _, loc := range l.List {
		lit, ok := loc.literal()
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(lit.Lexical, 64)
		if err != nil {
			continue
		}
		if compareNumberOp(v, n, op) {
			return true
		}
	}
	return false
}

func compareListString(l Value, s string, op string) bool {
	if op != "" && op != "=" && op != "!=" {
		return false
	}
	for _, loc := range l.List {
		lit, ok := loc.literal()
		if !ok {
			continue
		}
		if compareStringEquality(lit.Lexical, s, op) {
			return true
		}
	}
	return false
}

func compareLocations(a, b Location, op string) bool {
	switch op {
	case "", "=":
		return a.Value().Eq(b.Value())
	case "!=":
		return !a.Value().Eq(b.Value())
	case "<", "<=", ">", ">=":
		if !a.IsLiteral() || !b.IsLiteral() {
			return false
		}
		al, _ := a.literal()
		bl, _ := b.literal()
		an, aerr := strconv.ParseFloat(al.Lexical, 64)
		bn, berr := strconv.ParseFloat(bl.Lexical, 64)
		if aerr != nil || berr != nil {
			return false
		}
		return compareNumberOp(an, bn, op)
	}
	return false
}

func compareNumberOp(a, b float64, op string) bool {
	switch op {
	case "", "=":
		return a == b
	case "!=":
		return a != b
	case "<":
		return a < b
	case "<=":
		return a <= b
	case ">":
		return a > b
	case ">=":
		return a >= b
	}
	return false
}

func compareBoolOp(a, b bool, op string) bool {
	switch op {
	case "", "=":
		return a == b
	case "!=":
		return a != b
	}
	return false // magnitude comparison on booleans is undefined
}

func compareStringEquality(a, b string, op string) bool {
	switch op {
	case "", "=":
		return a == b
	case "!=":
		return a != b
	}
	return false
}

func flip(op string) string {
	switch op {
	case "<":
		return ">"
	case ">":
		return "<"
	case "<=":
		return ">="
	case ">=":
		return "<="
	default:
		return op
	}
}
