package keyhole

// Value is the host debugging environment's view of one inspected
// value. Decoders only ever read through this interface; nothing here
// mutates the inspected process.
type Value interface {
	// TypeName reports the value's declared type name.
	TypeName() string
	// Uint64 reports the raw machine word when the value is integral.
	Uint64() (uint64, bool)
	// Field returns a named child of the value.
	Field(name string) (Value, bool)
	// String is the host's default textual form of the value.
	String() string
}

// Text returns a Value whose default rendering is the given literal.
// Hosts that capture a rendering up front, rather than holding a live
// reference, wrap it this way.
func Text(s string) Value { return textValue(s) }

type textValue string

func (v textValue) TypeName() string { return "" }

func (v textValue) Uint64() (uint64, bool) { return 0, false }

func (v textValue) Field(string) (Value, bool) { return nil, false }

func (v textValue) String() string { return string(v) }
