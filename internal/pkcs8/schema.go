package pkcs8

import (
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

const (
	// SeedSize is the size of an Ed25519 private key seed in bytes.
	SeedSize = 32

	// PublicKeySize is the size of an Ed25519 public key in bytes.
	PublicKeySize = 32
)

// Version is the PKCS#8 version field. RFC 5958 numbers it from zero, so
// "version 2" is encoded as the integer 1.
type Version int

const (
	// V1 carries the seed only.
	V1 Version = 0
	// V2 carries the seed and the public key.
	V2 Version = 1
)

func (v Version) String() string {
	switch v {
	case V1:
		return "v1"
	case V2:
		return "v2"
	default:
		return "unknown"
	}
}

// KeyPairBytes is the raw key material carried by a PKCS#8 encoding.
//
// PublicKey is meaningful only when HasPublicKey is set; otherwise it is
// zero and the caller derives it from Seed.
type KeyPairBytes struct {
	Version      Version
	Seed         [SeedSize]byte
	PublicKey    [PublicKeySize]byte
	HasPublicKey bool
}

// Wire layout.
//
//	OneAsymmetricKey ::= SEQUENCE {
//	    version                   INTEGER { v1(0), v2(1) },
//	    privateKeyAlgorithm       AlgorithmIdentifier,
//	    privateKey                OCTET STRING,   -- CurvePrivateKey
//	    attributes            [0] IMPLICIT Attributes OPTIONAL,
//	    publicKey             [1] IMPLICIT BIT STRING OPTIONAL }
//
//	CurvePrivateKey ::= OCTET STRING              -- 32-byte seed
//
//	SubjectPublicKeyInfo ::= SEQUENCE {
//	    algorithm                 AlgorithmIdentifier,
//	    subjectPublicKey          BIT STRING }
//
//	AlgorithmIdentifier ::= SEQUENCE {
//	    algorithm                 OBJECT IDENTIFIER, -- 1.3.101.112
//	    parameters                ABSENT }
var (
	tagSequence    = cbasn1.SEQUENCE
	tagInteger     = cbasn1.INTEGER
	tagOID         = cbasn1.OBJECT_IDENTIFIER
	tagOctetString = cbasn1.OCTET_STRING
	tagBitString   = cbasn1.BIT_STRING

	tagAttributes = cbasn1.Tag(0).ContextSpecific().Constructed()
	tagPublicKey  = cbasn1.Tag(1).ContextSpecific()

	// Some encoders wrap the public key as [1] EXPLICIT { BIT STRING }.
	// It is accepted on decode and never produced.
	tagPublicKeyExplicit = cbasn1.Tag(1).ContextSpecific().Constructed()
)

// Field names reported in errors.
const (
	fieldPrivateKeyInfo   = "PrivateKeyInfo"
	fieldVersion          = "version"
	fieldAlgorithm        = "algorithm"
	fieldParameters       = "algorithm parameters"
	fieldPrivateKey       = "privateKey"
	fieldAttributes       = "attributes"
	fieldPublicKey        = "publicKey"
	fieldSPKI             = "SubjectPublicKeyInfo"
	fieldSubjectPublicKey = "subjectPublicKey"
)
