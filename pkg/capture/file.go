package capture

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

const saltLen = 16

// magic tags an encrypted capture file so Decrypt can refuse to decrypt a
// plaintext monitor-channel recording by mistake.
var magic = [4]byte{'H', 'C', 'M', '1'}

// Encrypt writes a salt header followed by the AES-256-GCM sealed form of
// plaintext to w, deriving the key from passphrase and a fresh random
// salt stored alongside the ciphertext.
func Encrypt(w io.Writer, passphrase string, plaintext []byte) error {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return fmt.Errorf("capture: generate salt: %w", err)
	}

	gcm, err := newGCM(DeriveKey(passphrase, salt))
	if err != nil {
		return err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Errorf("capture: generate nonce: %w", err)
	}

	sealed := gcm.Seal(nil, nonce, plaintext, nil)

	if _, err := w.Write(magic[:]); err != nil {
		return err
	}
	if _, err := w.Write(salt); err != nil {
		return err
	}
	if _, err := w.Write(nonce); err != nil {
		return err
	}
	_, err = w.Write(sealed)
	return err
}

// Decrypt reads a file produced by Encrypt and returns its plaintext.
func Decrypt(r io.Reader, passphrase string) ([]byte, error) {
	var gotMagic [4]byte
	if _, err := io.ReadFull(r, gotMagic[:]); err != nil {
		return nil, fmt.Errorf("capture: read header: %w", err)
	}
	if gotMagic != magic {
		return nil, fmt.Errorf("capture: not an encrypted capture file")
	}

	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(r, salt); err != nil {
		return nil, fmt.Errorf("capture: read salt: %w", err)
	}

	gcm, err := newGCM(DeriveKey(passphrase, salt))
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(r, nonce); err != nil {
		return nil, fmt.Errorf("capture: read nonce: %w", err)
	}

	rest, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("capture: read ciphertext: %w", err)
	}

	plaintext, err := gcm.Open(nil, nonce, rest, nil)
	if err != nil {
		return nil, fmt.Errorf("capture: decrypt: wrong passphrase or corrupt file")
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("capture: new cipher: %w", err)
	}
	return cipher.NewGCM(block)
}
