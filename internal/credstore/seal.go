package credstore

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"errors"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// Params
const (
	dekLen = 32
	kekLen = 32

	argonTime    uint32 = 3
	argonMemory  uint32 = 64 * 1024
	argonThreads uint8  = 1
)

var errShort = errors.New("credstore: sealed data too short")

func randBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	return b, err
}

// deriveKEK derives a key-encryption key from the passphrase using Argon2id.
func deriveKEK(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, argonTime, argonMemory, argonThreads, kekLen)
}

// seal encrypts plaintext with XChaCha20-Poly1305; the random nonce is prepended.
func seal(key, plaintext, aad []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	nonce, err := randBytes(chacha20poly1305.NonceSizeX)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(nonce)+len(plaintext)+aead.Overhead())
	out = append(out, nonce...)
	out = append(out, aead.Seal(nil, nonce, plaintext, aad)...)
	return out, nil
}

func open(key, sealed, aad []byte) ([]byte, error) {
	if len(sealed) < chacha20poly1305.NonceSizeX {
		return nil, errShort
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	nonce := sealed[:chacha20poly1305.NonceSizeX]
	return aead.Open(nil, nonce, sealed[chacha20poly1305.NonceSizeX:], aad)
}

// entryKey derives a per-entry key via HKDF-SHA256 using the entry name as info.
func entryKey(dek []byte, name string) ([]byte, error) {
	r := hkdf.New(sha256.New, dek, nil, []byte(name))
	key := make([]byte, dekLen)
	_, err := r.Read(key)
	return key, err
}

// entryAAD binds a sealed entry to its name and format version.
func entryAAD(name string, ver uint32) []byte {
	aad := make([]byte, 0, len(name)+4)
	aad = append(aad, name...)
	var v [4]byte
	binary.BigEndian.PutUint32(v[:], ver)
	return append(aad, v[:]...)
}
