package docs

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint derives a stable document identifier from the upload name and
// bytes, so re-uploading the same file maps to the same stored document.
func Fingerprint(name string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(name))
	h.Write([]byte{0})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))[:16]
}
