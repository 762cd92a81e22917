// Package commitment computes the keyed hash that commits to a secret integer
// before it is revealed.
//
// The MAC is HMAC-SHA3-256 over the base-10 text of the integer, rendered as
// uppercase hex, so anyone holding the revealed key and number can recompute
// it with common tooling.
package commitment

import (
	"crypto/hmac"
	"encoding/hex"
	"strconv"
	"strings"

	"golang.org/x/crypto/sha3"
)

const (
	// Size is the MAC length in bytes.
	Size = 32
	// HexLen is the length of the hex-rendered MAC.
	HexLen = 2 * Size
)

// Compute returns the uppercase hex HMAC-SHA3-256 of message under key.
func Compute(key []byte, message int64) string {
	return strings.ToUpper(hex.EncodeToString(sum(key, message)))
}

// Verify reports whether mac is the commitment to message under key. The
// comparison is constant-time and accepts either hex case.
func Verify(key []byte, message int64, mac string) bool {
	decoded, err := hex.DecodeString(strings.TrimSpace(mac))
	if err != nil || len(decoded) != Size {
		return false
	}
	return hmac.Equal(decoded, sum(key, message))
}

func sum(key []byte, message int64) []byte {
	h := hmac.New(sha3.New256, key)
	h.Write([]byte(strconv.FormatInt(message, 10)))
	return h.Sum(nil)
}
