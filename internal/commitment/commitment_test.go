package commitment

import (
	"bytes"
	"strings"
	"testing"
)

func TestComputeIsDeterministicUppercaseHex(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, 32)
	first := Compute(key, 5)
	second := Compute(key, 5)
	if first != second {
		t.Fatalf("Compute not deterministic: %s != %s", first, second)
	}
	if len(first) != HexLen {
		t.Fatalf("len = %d, want %d", len(first), HexLen)
	}
	if first != strings.ToUpper(first) {
		t.Fatalf("expected uppercase hex, got %s", first)
	}
}

func TestComputeDistinguishesMessages(t *testing.T) {
	key := []byte("key")
	if Compute(key, 12) == Compute(key, 21) {
		t.Fatal("expected different messages to differ")
	}
	if Compute(key, -3) == Compute(key, 3) {
		t.Fatal("expected sign to be part of the message")
	}
}

// Vectors computed with an independent HMAC-SHA3-256 implementation.
func TestComputeKnownVectors(t *testing.T) {
	tcs := []struct {
		key     []byte
		message int64
		want    string
	}{
		{[]byte("key"), 5, "1E2645268AF00DF4E621A3755DF1CAF33A52B5A25C6C300AD80F8DBC6CBBAF63"},
		{make([]byte, 32), 0, "DA4801EF75E4405C4AC2CE6D3B5F94FD88A7C1E3C9958079AA456A44F60D95E4"},
		{[]byte("key"), -17, "19299F5D5C01CF480F3B0E09175A27D90C99CA0865BC94BFC16F832056C4F5E4"},
	}
	for _, tc := range tcs {
		if got := Compute(tc.key, tc.message); got != tc.want {
			t.Errorf("Compute(%q, %d) = %s, want %s", tc.key, tc.message, got, tc.want)
		}
	}
}

func TestComputeDiffersByKey(t *testing.T) {
	a := Compute([]byte{1}, 7)
	b := Compute([]byte{2}, 7)
	if a == b {
		t.Fatal("expected different keys to yield different macs")
	}
}

func TestVerify(t *testing.T) {
	key := bytes.Repeat([]byte{0x07}, 32)
	mac := Compute(key, 3)

	if !Verify(key, 3, mac) {
		t.Fatal("expected mac to verify")
	}
	if !Verify(key, 3, strings.ToLower(mac)) {
		t.Fatal("expected lowercase mac to verify")
	}
	if Verify(key, 4, mac) {
		t.Fatal("expected different message to fail")
	}

	flipped := append([]byte(nil), key...)
	flipped[0] ^= 0x01
	if Verify(flipped, 3, mac) {
		t.Fatal("expected flipped key byte to fail")
	}
	if Verify(key, 3, "not-hex") {
		t.Fatal("expected invalid hex to fail")
	}
	if Verify(key, 3, mac[:10]) {
		t.Fatal("expected truncated mac to fail")
	}
}
