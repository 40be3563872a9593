package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/subtle"
	"errors"

	"filippo.io/edwards25519"

	"edkey/internal/pkcs8"
	"edkey/internal/util/memzero"
)

var (
	// ErrKeyMismatch is returned when an embedded public key is not the one
	// derived from the seed.
	ErrKeyMismatch = errors.New("crypto: public key does not match seed")

	// ErrInvalidPoint is returned for a public key that does not decode to a
	// point on the curve.
	ErrInvalidPoint = errors.New("crypto: invalid Ed25519 public key")
)

// Keypair is an Ed25519 signing key pair.
type Keypair struct {
	Private ed25519.PrivateKey
	Public  ed25519.PublicKey
}

// GenerateEd25519 returns a new random key pair.
func GenerateEd25519() (*Keypair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	return &Keypair{Private: priv, Public: pub}, nil
}

// KeypairFromSeed derives the key pair for seed.
func KeypairFromSeed(seed [pkcs8.SeedSize]byte) *Keypair {
	priv := ed25519.NewKeyFromSeed(seed[:])
	return &Keypair{Private: priv, Public: priv.Public().(ed25519.PublicKey)}
}

// KeypairFromBytes builds a key pair from decoded PKCS#8 material. The public
// key is derived from the seed; when kp carries one it must match.
func KeypairFromBytes(kp pkcs8.KeyPairBytes) (*Keypair, error) {
	k := KeypairFromSeed(kp.Seed)
	if kp.HasPublicKey && subtle.ConstantTimeCompare(k.Public, kp.PublicKey[:]) != 1 {
		k.Wipe()
		return nil, ErrKeyMismatch
	}
	return k, nil
}

// Seed returns the 32-byte private seed.
func (k *Keypair) Seed() (seed [pkcs8.SeedSize]byte) {
	copy(seed[:], k.Private.Seed())
	return seed
}

// PublicBytes returns the public key as a fixed-size array.
func (k *Keypair) PublicBytes() (pub [pkcs8.PublicKeySize]byte) {
	copy(pub[:], k.Public)
	return pub
}

// Bytes returns the key pair in the form the PKCS#8 encoder takes, with
// the public key included.
func (k *Keypair) Bytes() pkcs8.KeyPairBytes {
	return pkcs8.KeyPairBytes{
		Version:      pkcs8.V2,
		Seed:         k.Seed(),
		PublicKey:    k.PublicBytes(),
		HasPublicKey: true,
	}
}

// Wipe zeroes the private key. The Keypair must not be used afterwards.
func (k *Keypair) Wipe() {
	memzero.Zero(k.Private)
	k.Private = nil
}

// ParsePublicKey checks that b encodes a curve point and returns it as an
// ed25519.PublicKey.
func ParsePublicKey(b [pkcs8.PublicKeySize]byte) (ed25519.PublicKey, error) {
	if _, err := new(edwards25519.Point).SetBytes(b[:]); err != nil {
		return nil, ErrInvalidPoint
	}
	return ed25519.PublicKey(b[:]), nil
}
