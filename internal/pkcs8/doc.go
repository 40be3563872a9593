// Package pkcs8 converts Ed25519 key material to and from its standard DER
// containers.
//
// Contents
//
//   - PKCS#8 PrivateKeyInfo / OneAsymmetricKey, versions 1 and 2
//     (DecodePrivateKey, EncodePrivateKeyV1, EncodePrivateKeyV2)
//   - SubjectPublicKeyInfo (DecodePublicKey, EncodePublicKey)
//   - The fixed Ed25519 AlgorithmIdentifier (OID)
//
// # Notes
//
// Input is treated as untrusted. Every TLV is read through cryptobyte, which
// rejects non-minimal lengths, and no field is read past its declared length.
// The first violation aborts the decode and is reported as an *Error whose
// Kind is one of MalformedDER, UnsupportedVersion, UnsupportedAlgorithm or
// InvalidKeyLength.
//
// The package performs no curve arithmetic: a decoded public key is never
// checked against its seed. PEM armour and encrypted keys are handled
// elsewhere, if at all.
package pkcs8
