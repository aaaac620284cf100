package keyhole

import "testing"

func TestKindNames(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{KindCorrupt, "corrupt type information"},
		{KindInt, "Int"},
		{KindFloat, "Float"},
		{KindChar, "Char"},
		{KindString, "String"},
		{KindBool, "Bool"},
		{KindHex, "Hex"},
		{KindMap, "Map"},
		{KindList, "List"},
		{KindComposite, "Composite"},
	}
	for _, tc := range cases {
		if got := tc.kind.Name(); got != tc.want {
			t.Fatalf("kind %d: got %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestKindNameOutOfRange(t *testing.T) {
	for _, k := range []Kind{10, 11, 255, 1000, 0xFFFF} {
		if got := k.Name(); got != "corrupt type information" {
			t.Fatalf("kind %d: got %q, want fallback", k, got)
		}
	}
}

func TestKindNameTotal(t *testing.T) {
	// every possible discriminant resolves to a non-empty name
	for ord := 0; ord <= 0xFFFF; ord++ {
		if Kind(ord).Name() == "" {
			t.Fatalf("kind %d resolved to empty name", ord)
		}
	}
}
