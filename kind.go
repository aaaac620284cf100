package keyhole

// Kind is the type tag ordinal carried in a key's high bits.
type Kind uint16

const (
	KindCorrupt Kind = iota
	KindInt
	KindFloat
	KindChar
	KindString
	KindBool
	KindHex
	KindMap
	KindList
	KindComposite
)

// kindNames is ordinal-addressed. Ordinal 0 is the fallback label for
// any discriminant that does not resolve to a real type.
var kindNames = [...]string{
	KindCorrupt:   "corrupt type information",
	KindInt:       "Int",
	KindFloat:     "Float",
	KindChar:      "Char",
	KindString:    "String",
	KindBool:      "Bool",
	KindHex:       "Hex",
	KindMap:       "Map",
	KindList:      "List",
	KindComposite: "Composite",
}

// Name resolves the kind to its display name. Resolution is total: an
// ordinal outside the table, or an in-range ordinal whose entry is
// empty, yields the fallback at ordinal 0 instead of failing. A
// debugger pretty-printer must produce some type name for arbitrary,
// possibly-inconsistent memory.
func (k Kind) Name() string {
	if int(k) >= len(kindNames) {
		return kindNames[KindCorrupt]
	}
	if name := kindNames[k]; name != "" {
		return name
	}
	return kindNames[KindCorrupt]
}
