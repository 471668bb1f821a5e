package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SecureHash returns the hex HMAC-SHA256 of a token under a server-held
// key. Tokens are persisted and looked up only through this hash, so a
// dumped tokens table cannot be replayed
func SecureHash(token string, key []byte) string {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}
