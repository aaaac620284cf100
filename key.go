package keyhole

// Key is the packed 64-bit handle the runtime uses to address a value
// slot. Low to high:
//
//	bits 0..32  slot index into the backing store
//	bits 32..40 generation counter guarding against stale slot reuse
//	bits 40..48 padding, never interpreted
//	bits 48..64 type tag ordinal
type Key uint64

const (
	indexMask uint64 = 0xFFFFFFFF
	genShift         = 32
	genMask   uint64 = 0xFF
	tagShift         = 48
)

// Index returns the slot index (low 32 bits).
func (k Key) Index() uint32 {
	return uint32(uint64(k) & indexMask)
}

// Generation returns the slot-reuse counter (bits 32..40).
func (k Key) Generation() uint8 {
	return uint8(uint64(k) >> genShift & genMask)
}

// TagOrdinal returns the type discriminant (bits 48..64).
func (k Key) TagOrdinal() uint16 {
	return uint16(uint64(k) >> tagShift)
}

// Pack builds a key from its three fields. The padding bits stay zero.
func Pack(kind Kind, index uint32, generation uint8) Key {
	return Key(uint64(kind)<<tagShift | uint64(generation)<<genShift | uint64(index))
}
