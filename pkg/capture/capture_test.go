package capture

import (
	"bytes"
	"testing"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	plaintext := []byte("monitor-channel capture bytes go here")

	var buf bytes.Buffer
	if err := Encrypt(&buf, "correct horse battery staple", plaintext); err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	got, err := Decrypt(&buf, "correct horse battery staple")
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Errorf("Decrypt = %q, want %q", got, plaintext)
	}
}

func TestDecryptWrongPassphraseFails(t *testing.T) {
	var buf bytes.Buffer
	if err := Encrypt(&buf, "right", []byte("secret bytes")); err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	if _, err := Decrypt(&buf, "wrong"); err == nil {
		t.Fatal("expected decryption failure with wrong passphrase")
	}
}

func TestDecryptRejectsPlaintextFile(t *testing.T) {
	buf := bytes.NewBufferString("not an encrypted capture file at all")
	if _, err := Decrypt(buf, "whatever"); err == nil {
		t.Fatal("expected error for non-capture file")
	}
}

func TestDeriveKeyIsDeterministicForSameSalt(t *testing.T) {
	salt := []byte("0123456789abcdef")
	a := DeriveKey("pw", salt)
	b := DeriveKey("pw", salt)
	if !bytes.Equal(a, b) {
		t.Error("DeriveKey not deterministic for identical passphrase+salt")
	}
	if len(a) != 32 {
		t.Errorf("key length = %d, want 32", len(a))
	}
}
