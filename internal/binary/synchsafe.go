package binary

import "encoding/binary"

// MaxSynchsafe is the largest value a 4-byte synchsafe integer can hold (28 bits).
const MaxSynchsafe = 1<<28 - 1

// DecodeSynchsafe decodes a 4-byte synchsafe integer (7 bits per byte).
// The second result is false if any byte has its high bit set.
func DecodeSynchsafe(b []byte) (uint32, bool) {
	if len(b) != 4 {
		return 0, false
	}
	return DecodeSynchsafeUint32(binary.BigEndian.Uint32(b))
}

// DecodeSynchsafeUint32 decodes a synchsafe integer already read as a
// big-endian uint32.
func DecodeSynchsafeUint32(v uint32) (uint32, bool) {
	if v&0x80808080 != 0 {
		return 0, false
	}
	return v>>3&0x0FE00000 |
		v>>2&0x001FC000 |
		v>>1&0x00003F80 |
		v&0x0000007F, true
}

// EncodeSynchsafe encodes v as a 4-byte synchsafe integer.
// Bits above MaxSynchsafe are discarded; callers check the range first.
func EncodeSynchsafe(v uint32) [4]byte {
	return [4]byte{
		byte(v>>21) & 0x7F,
		byte(v>>14) & 0x7F,
		byte(v>>7) & 0x7F,
		byte(v) & 0x7F,
	}
}
