// Package keys implements the edkey operations on key files.
//
// It ties together file I/O (internal/keyfile), the DER codec
// (internal/pkcs8) and the Ed25519 key pair (internal/crypto): generating
// keys, inspecting PKCS#8 and SPKI files, exporting a public key and
// converting private keys between PKCS#8 v1 and v2.
package keys
