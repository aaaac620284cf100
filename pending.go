package keyhole

import (
	"strconv"

	"github.com/delaneyj/toolbelt/bytebufferpool"
)

// PendingValue is the rendering-ready form of a packed handle: the
// decoded key fields plus the secondary "sub" reference, carried
// through uninterpreted. It is built fresh per rendering request and
// never mutated.
type PendingValue struct {
	Kind       Kind
	Index      uint32
	Generation uint8
	Sub        Value
}

// DecodePending decodes the owned word of a handle. It is total over
// all 64-bit inputs: a discriminant outside the known table resolves to
// the corrupt-type label during rendering rather than failing.
func DecodePending(owned uint64, sub Value) PendingValue {
	k := Key(owned)
	return PendingValue{
		Kind:       Kind(k.TagOrdinal()),
		Index:      k.Index(),
		Generation: k.Generation(),
		Sub:        sub,
	}
}

// Render produces the display string. The format is stable; downstream
// tooling matches on it:
//
//	<PendingValue (Int) idx: 7 | g: 171 | sub: None>
func (p PendingValue) Render() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	buf.WriteString("<PendingValue (")
	buf.WriteString(p.Kind.Name())
	buf.WriteString(") idx: ")
	buf.WriteString(strconv.FormatUint(uint64(p.Index), 10))
	buf.WriteString(" | g: ")
	buf.WriteString(strconv.FormatUint(uint64(p.Generation), 10))
	buf.WriteString(" | sub: ")
	if p.Sub != nil {
		buf.WriteString(p.Sub.String())
	} else {
		buf.WriteString("None")
	}
	buf.WriteString(">")
	return string(buf.Bytes())
}
