// File: patchopt/kind.go
package patchopt

// Kind discriminates the runtime value shape of an option. Consumers outside
// the typed boundary (a CLI parsing flags, a UI rendering a form) branch on
// it to decide how to present and coerce input. Switches over Kind should be
// exhaustive.
type Kind int

const (
	KindInvalid Kind = iota
	KindString
	KindBool
	KindInt
	KindInt64
	KindFloat
	KindStrings
	KindBools
	KindInts
	KindInt64s
	KindFloats
)

var kindNames = map[Kind]string{
	KindString:  "String",
	KindBool:    "Bool",
	KindInt:     "Int",
	KindInt64:   "Int64",
	KindFloat:   "Float",
	KindStrings: "StringArray",
	KindBools:   "BoolArray",
	KindInts:    "IntArray",
	KindInt64s:  "Int64Array",
	KindFloats:  "FloatArray",
}

// String returns the stable tag name for the kind, e.g. "Int64Array".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Invalid"
}

// IsSlice reports whether the kind is one of the array shapes.
func (k Kind) IsSlice() bool {
	switch k {
	case KindStrings, KindBools, KindInts, KindInt64s, KindFloats:
		return true
	}
	return false
}
