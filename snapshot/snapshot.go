// Package snapshot reads and writes offline dumps of the runtime's
// value store, so packed handles can be inspected without a live
// debugging session attached.
package snapshot

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// HeaderMagic is the 4-byte header of a snapshot container.
var HeaderMagic = [4]byte{'K', 'H', 'O', 'L'}

// Version is the container body version this package writes.
const Version = 1

const trailerSize = 8

// Slot is one dumped store slot: the packed owned word plus the host's
// default rendering of the sub reference, captured at dump time. Sub
// internals are never encoded.
type Slot struct {
	Owned uint64 `cbor:"owned"`
	Sub   string `cbor:"sub"`
}

// Snapshot is a dump of the runtime's value store.
type Snapshot struct {
	Version uint32 `cbor:"version"`
	Runtime string `cbor:"runtime"`
	Slots   []Slot `cbor:"slots"`
}

// Format indicates how a snapshot is serialized on disk.
type Format uint8

const (
	FormatUnknown Format = iota
	FormatContainer
	FormatJSON
)

// DetectFormat inspects the head of b to determine the on-disk format.
func DetectFormat(b []byte) Format {
	if len(b) >= len(HeaderMagic) && bytes.Equal(b[:len(HeaderMagic)], HeaderMagic[:]) {
		return FormatContainer
	}
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatJSON
	}
	return FormatUnknown
}

// Encode serializes s into a container: header magic, CBOR body, then
// an 8-byte trailer holding the body length and its XXH32 checksum.
func Encode(s Snapshot) ([]byte, error) {
	s.Version = Version
	body, err := cbor.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot body: %v", err)
	}
	out := append([]byte{}, HeaderMagic[:]...)
	out = append(out, body...)
	var tr [trailerSize]byte
	binary.LittleEndian.PutUint32(tr[0:4], uint32(len(body)))
	binary.LittleEndian.PutUint32(tr[4:8], Checksum(body, 0))
	return append(out, tr[:]...), nil
}

// Decode parses a container produced by Encode. It validates the
// magic, the body length, and the checksum before touching the body.
func Decode(b []byte) (Snapshot, error) {
	if len(b) < len(HeaderMagic)+trailerSize {
		return Snapshot{}, fmt.Errorf("snapshot too short: %d", len(b))
	}
	if !bytes.Equal(b[:len(HeaderMagic)], HeaderMagic[:]) {
		return Snapshot{}, fmt.Errorf("missing KHOL header magic")
	}
	start := len(b) - trailerSize
	bodyLen := binary.LittleEndian.Uint32(b[start : start+4])
	sum := binary.LittleEndian.Uint32(b[start+4 : start+8])
	body := b[len(HeaderMagic):start]
	if int(bodyLen) != len(body) {
		return Snapshot{}, fmt.Errorf("body length mismatch: trailer says %d, have %d", bodyLen, len(body))
	}
	if got := Checksum(body, 0); got != sum {
		return Snapshot{}, fmt.Errorf("body checksum mismatch: %08x != %08x", got, sum)
	}
	var s Snapshot
	if err := cbor.Unmarshal(body, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot body: %v", err)
	}
	if s.Version != Version {
		return Snapshot{}, fmt.Errorf("unknown snapshot version %d", s.Version)
	}
	return s, nil
}

// Load parses b in whichever format it carries.
func Load(b []byte) (Snapshot, error) {
	switch DetectFormat(b) {
	case FormatContainer:
		return Decode(b)
	case FormatJSON:
		return FromJSON(b)
	default:
		return Snapshot{}, fmt.Errorf("unrecognized snapshot format")
	}
}
