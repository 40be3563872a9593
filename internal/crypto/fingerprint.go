package crypto

import (
	"crypto/sha256"
	"encoding/hex"

	"edkey/internal/pkcs8"
)

// Fingerprint returns a short hex fingerprint of a public key.
//
// It hashes the key's SubjectPublicKeyInfo DER with SHA-256 and truncates to
// 10 bytes (20 hex chars), so it matches a digest of the .der public key file.
func Fingerprint(pub [pkcs8.PublicKeySize]byte) (string, error) {
	spki, err := pkcs8.EncodePublicKey(pub)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(spki)
	return hex.EncodeToString(sum[:10]), nil
}
