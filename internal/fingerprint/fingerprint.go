// Package fingerprint computes the content identity of a file.
//
// The digest is computed client-side before any network call so duplicate
// uploads can be short-circuited without transmitting the payload.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
)

// Size is the digest length in bytes.
const Size = sha256.Size

// Sum returns the SHA-256 digest of data. Two files with equal digests are
// treated as identical content everywhere in the system.
func Sum(data []byte) []byte {
	h := sha256.Sum256(data)
	return h[:]
}

// SumReader streams r through SHA-256, returning the digest and byte count.
func SumReader(r io.Reader) ([]byte, int64, error) {
	h := sha256.New()
	n, err := io.Copy(h, r)
	if err != nil {
		return nil, 0, err
	}
	return h.Sum(nil), n, nil
}

// Hex returns the lowercase hex encoding of a digest.
func Hex(sum []byte) string {
	return hex.EncodeToString(sum)
}
