package pkcs8

import (
	"math/big"

	"golang.org/x/crypto/cryptobyte"

	"edkey/internal/util/memzero"
)

// DecodePrivateKey parses a DER-encoded PKCS#8 PrivateKeyInfo holding an
// Ed25519 key.
//
// Version 1 must not carry a public key and version 2 must. The optional
// attributes element is skipped. The returned public key, when present, is
// not checked against the seed.
func DecodePrivateKey(der []byte) (KeyPairBytes, error) {
	var kp KeyPairBytes
	if err := decodePrivateKey(der, &kp); err != nil {
		memzero.Zero(kp.Seed[:])
		return KeyPairBytes{}, err
	}
	return kp, nil
}

func decodePrivateKey(der []byte, kp *KeyPairBytes) error {
	input := cryptobyte.String(der)
	var info cryptobyte.String
	if !input.ReadASN1(&info, tagSequence) || !input.Empty() {
		return malformed(fieldPrivateKeyInfo)
	}

	version, err := readVersion(&info)
	if err != nil {
		return err
	}
	if err := readAlgorithm(&info); err != nil {
		return err
	}
	kp.Version = version

	if err := readSeed(&info, &kp.Seed); err != nil {
		return err
	}
	if !info.SkipOptionalASN1(tagAttributes) {
		return malformed(fieldAttributes)
	}

	present, err := readOptionalPublicKey(&info, &kp.PublicKey)
	if err != nil {
		return err
	}
	if present != (version == V2) {
		return malformed(fieldPublicKey)
	}
	kp.HasPublicKey = present

	if !info.Empty() {
		return malformed(fieldPrivateKeyInfo)
	}
	return nil
}

// DecodePublicKey parses a DER-encoded SubjectPublicKeyInfo holding an
// Ed25519 public key.
func DecodePublicKey(der []byte) ([PublicKeySize]byte, error) {
	var out [PublicKeySize]byte

	input := cryptobyte.String(der)
	var spki cryptobyte.String
	if !input.ReadASN1(&spki, tagSequence) || !input.Empty() {
		return out, malformed(fieldSPKI)
	}
	if err := readAlgorithm(&spki); err != nil {
		return out, err
	}

	var bits cryptobyte.String
	if !spki.ReadASN1(&bits, tagBitString) {
		return out, malformed(fieldSubjectPublicKey)
	}
	if err := readBitStringKey(bits, fieldSubjectPublicKey, &out); err != nil {
		return [PublicKeySize]byte{}, err
	}
	if !spki.Empty() {
		return [PublicKeySize]byte{}, malformed(fieldSPKI)
	}
	return out, nil
}

// readVersion consumes the version INTEGER. Encoding errors are structural;
// a well-formed integer other than 0 or 1 is an unsupported version.
func readVersion(s *cryptobyte.String) (Version, error) {
	v := new(big.Int)
	if !s.ReadASN1Integer(v) {
		return 0, malformed(fieldVersion)
	}
	if !v.IsInt64() {
		return 0, &Error{Kind: KindUnsupportedVersion, Field: fieldVersion}
	}
	switch Version(v.Int64()) {
	case V1:
		return V1, nil
	case V2:
		return V2, nil
	default:
		return 0, &Error{Kind: KindUnsupportedVersion, Field: fieldVersion}
	}
}

// readAlgorithm consumes an AlgorithmIdentifier and requires it to be
// exactly Ed25519 with absent parameters.
func readAlgorithm(s *cryptobyte.String) error {
	var algo, oid cryptobyte.String
	if !s.ReadASN1(&algo, tagSequence) || !algo.ReadASN1(&oid, tagOID) {
		return malformed(fieldAlgorithm)
	}
	if !isEd25519OID(oid) {
		return &Error{Kind: KindUnsupportedAlgorithm, Field: fieldAlgorithm}
	}
	if !algo.Empty() {
		return malformed(fieldParameters)
	}
	return nil
}

// readSeed consumes the privateKey OCTET STRING and the CurvePrivateKey
// OCTET STRING nested inside it.
func readSeed(s *cryptobyte.String, out *[SeedSize]byte) error {
	var wrapped, seed cryptobyte.String
	if !s.ReadASN1(&wrapped, tagOctetString) {
		return malformed(fieldPrivateKey)
	}
	if !wrapped.ReadASN1(&seed, tagOctetString) || !wrapped.Empty() {
		return malformed(fieldPrivateKey)
	}
	if len(seed) != SeedSize {
		return badLength(fieldPrivateKey)
	}
	copy(out[:], seed)
	return nil
}

// readOptionalPublicKey consumes the [1] publicKey element if one is next.
func readOptionalPublicKey(s *cryptobyte.String, out *[PublicKeySize]byte) (bool, error) {
	var bits cryptobyte.String
	switch {
	case s.PeekASN1Tag(tagPublicKey):
		if !s.ReadASN1(&bits, tagPublicKey) {
			return false, malformed(fieldPublicKey)
		}
	case s.PeekASN1Tag(tagPublicKeyExplicit):
		var wrapped cryptobyte.String
		if !s.ReadASN1(&wrapped, tagPublicKeyExplicit) ||
			!wrapped.ReadASN1(&bits, tagBitString) || !wrapped.Empty() {
			return false, malformed(fieldPublicKey)
		}
	default:
		return false, nil
	}
	if err := readBitStringKey(bits, fieldPublicKey, out); err != nil {
		return false, err
	}
	return true, nil
}

// readBitStringKey checks BIT STRING content: a zero unused-bits octet
// followed by exactly PublicKeySize bytes.
func readBitStringKey(bits cryptobyte.String, field string, out *[PublicKeySize]byte) error {
	var unused uint8
	if !bits.ReadUint8(&unused) || unused != 0 {
		return malformed(field)
	}
	if len(bits) != PublicKeySize {
		return badLength(field)
	}
	copy(out[:], bits)
	return nil
}
