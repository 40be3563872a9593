// Package crypto holds the Ed25519 key pair that the DER codec hands key
// material to and takes it from.
//
// Contents
//
//   - Key pair generation and construction from a seed or from decoded
//     PKCS#8 bytes (GenerateEd25519, KeypairFromSeed, KeypairFromBytes)
//   - Public key point validation (ParsePublicKey)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// KeypairFromBytes is where an embedded PKCS#8 v2 public key is checked
// against the seed; the codec itself never does curve arithmetic. Callers
// should Wipe a Keypair once it is no longer needed.
package crypto
