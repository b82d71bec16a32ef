package binary

import "testing"

func TestSynchsafe(t *testing.T) {
	tests := []struct {
		value   uint32
		encoded [4]byte
	}{
		{0, [4]byte{0x00, 0x00, 0x00, 0x00}},
		{127, [4]byte{0x00, 0x00, 0x00, 0x7F}},
		{128, [4]byte{0x00, 0x00, 0x01, 0x00}},
		{257, [4]byte{0x00, 0x00, 0x02, 0x01}},
		{MaxSynchsafe, [4]byte{0x7F, 0x7F, 0x7F, 0x7F}},
	}

	for _, tt := range tests {
		if got := EncodeSynchsafe(tt.value); got != tt.encoded {
			t.Errorf("EncodeSynchsafe(%d) = % X, want % X", tt.value, got, tt.encoded)
		}

		got, ok := DecodeSynchsafe(tt.encoded[:])
		if !ok || got != tt.value {
			t.Errorf("DecodeSynchsafe(% X) = %d, %v, want %d", tt.encoded, got, ok, tt.value)
		}

		word := uint32(tt.encoded[0])<<24 | uint32(tt.encoded[1])<<16 | uint32(tt.encoded[2])<<8 | uint32(tt.encoded[3])
		got, ok = DecodeSynchsafeUint32(word)
		if !ok || got != tt.value {
			t.Errorf("DecodeSynchsafeUint32(%08X) = %d, %v, want %d", word, got, ok, tt.value)
		}
	}
}

func TestDecodeSynchsafe_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"high bit set", []byte{0x00, 0x00, 0x00, 0x80}},
		{"high bit in first byte", []byte{0xFF, 0x00, 0x00, 0x00}},
		{"too short", []byte{0x00, 0x00, 0x01}},
		{"too long", []byte{0x00, 0x00, 0x00, 0x00, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := DecodeSynchsafe(tt.in); ok {
				t.Errorf("DecodeSynchsafe(% X) should fail", tt.in)
			}
		})
	}

	for _, v := range []uint32{0x00000080, 0x80000000, 0x00008000, 0xFFFFFFFF} {
		if _, ok := DecodeSynchsafeUint32(v); ok {
			t.Errorf("DecodeSynchsafeUint32(%08X) should fail", v)
		}
	}
}
