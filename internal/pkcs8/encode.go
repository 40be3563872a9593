package pkcs8

import (
	"errors"

	"golang.org/x/crypto/cryptobyte"
)

// Encoded sizes, used to size output buffers up front so key material is
// never copied by a reallocation.
const (
	privateKeyV1Len = 48
	privateKeyV2Len = 83
	publicKeyLen    = 44
)

var errNoPublicKey = errors.New("pkcs8: version 2 encoding requires a public key")

// EncodePrivateKeyV2 returns the DER encoding of a version 2 PrivateKeyInfo
// carrying both seed and publicKey.
func EncodePrivateKeyV2(seed [SeedSize]byte, publicKey [PublicKeySize]byte) ([]byte, error) {
	return encodePrivateKey(V2, seed[:], publicKey[:])
}

// EncodePrivateKeyV1 returns the DER encoding of a version 1 PrivateKeyInfo.
// The publicKey field is omitted entirely.
func EncodePrivateKeyV1(seed [SeedSize]byte) ([]byte, error) {
	return encodePrivateKey(V1, seed[:], nil)
}

// EncodePrivateKey encodes kp in the version it names, so a decoded key
// re-encodes to the same bytes.
func EncodePrivateKey(kp KeyPairBytes) ([]byte, error) {
	switch kp.Version {
	case V1:
		return EncodePrivateKeyV1(kp.Seed)
	case V2:
		if !kp.HasPublicKey {
			return nil, errNoPublicKey
		}
		return EncodePrivateKeyV2(kp.Seed, kp.PublicKey)
	default:
		return nil, &Error{Kind: KindUnsupportedVersion, Field: fieldVersion}
	}
}

// EncodePublicKey returns the DER encoding of a SubjectPublicKeyInfo.
func EncodePublicKey(publicKey [PublicKeySize]byte) ([]byte, error) {
	b := cryptobyte.NewBuilder(make([]byte, 0, publicKeyLen))
	b.AddASN1(tagSequence, func(b *cryptobyte.Builder) {
		addAlgorithm(b)
		b.AddASN1(tagBitString, func(b *cryptobyte.Builder) {
			addBitStringKey(b, publicKey[:])
		})
	})
	return b.Bytes()
}

func encodePrivateKey(v Version, seed, publicKey []byte) ([]byte, error) {
	size := privateKeyV1Len
	if v == V2 {
		size = privateKeyV2Len
	}

	b := cryptobyte.NewBuilder(make([]byte, 0, size))
	b.AddASN1(tagSequence, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(int64(v))
		addAlgorithm(b)
		b.AddASN1(tagOctetString, func(b *cryptobyte.Builder) {
			b.AddASN1OctetString(seed)
		})
		if v == V2 {
			b.AddASN1(tagPublicKey, func(b *cryptobyte.Builder) {
				addBitStringKey(b, publicKey)
			})
		}
	})
	return b.Bytes()
}

func addAlgorithm(b *cryptobyte.Builder) {
	b.AddASN1(tagSequence, func(b *cryptobyte.Builder) {
		b.AddASN1(tagOID, func(b *cryptobyte.Builder) {
			b.AddBytes(oidBytes)
		})
	})
}

func addBitStringKey(b *cryptobyte.Builder, key []byte) {
	b.AddUint8(0) // unused bits
	b.AddBytes(key)
}
