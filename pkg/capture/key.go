// Package capture encrypts and decrypts saved monitor-channel capture
// files with a passphrase-derived key, the way pkg/core/hash derived
// per-drive unlock keys for SED authorities.
package capture

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

const (
	keyLen  = 32 // AES-256
	pbkdf2N = 200000
)

// DeriveKey stretches passphrase into a 32-byte AES-256 key using
// PBKDF2-HMAC-SHA256 over salt, the same construction pkg/core/hash used
// for drive authorities, retargeted at capture-file confidentiality
// instead of SED unlock codes.
func DeriveKey(passphrase string, salt []byte) []byte {
	return pbkdf2.Key([]byte(passphrase), salt, pbkdf2N, keyLen, sha256.New)
}
