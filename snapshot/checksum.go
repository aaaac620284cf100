package snapshot

import "encoding/binary"

const (
	prime1 uint32 = 0x9E3779B1
	prime2 uint32 = 0x85EBCA77
	prime3 uint32 = 0xC2B2AE3D
	prime4 uint32 = 0x27D4EB2F
	prime5 uint32 = 0x165667B1
)

func rotl32(x uint32, r uint32) uint32 {
	return (x << r) | (x >> (32 - r))
}

func round32(acc, input uint32) uint32 {
	acc += input * prime2
	acc = rotl32(acc, 13)
	return acc * prime1
}

// Checksum computes the seeded XXH32 hash of data. It guards the
// container body against torn or truncated dump files.
func Checksum(data []byte, seed uint32) uint32 {
	p := 0
	length := len(data)
	var h uint32

	if length >= 16 {
		v1 := seed + prime1 + prime2
		v2 := seed + prime2
		v3 := seed
		v4 := seed - prime1
		for p <= length-16 {
			v1 = round32(v1, binary.LittleEndian.Uint32(data[p:]))
			v2 = round32(v2, binary.LittleEndian.Uint32(data[p+4:]))
			v3 = round32(v3, binary.LittleEndian.Uint32(data[p+8:]))
			v4 = round32(v4, binary.LittleEndian.Uint32(data[p+12:]))
			p += 16
		}
		h = rotl32(v1, 1) + rotl32(v2, 7) + rotl32(v3, 12) + rotl32(v4, 18)
	} else {
		h = seed + prime5
	}

	h += uint32(length)

	for p <= length-4 {
		h += binary.LittleEndian.Uint32(data[p:]) * prime3
		h = rotl32(h, 17) * prime4
		p += 4
	}
	for p < length {
		h += uint32(data[p]) * prime5
		h = rotl32(h, 11) * prime1
		p++
	}

	h ^= h >> 15
	h *= prime2
	h ^= h >> 13
	h *= prime3
	h ^= h >> 16
	return h
}
