// Package keyfile reads and writes key files on disk.
//
// Files hold either raw DER or a single PEM block ("PRIVATE KEY" for
// PKCS#8, "PUBLIC KEY" for SubjectPublicKeyInfo). The package only strips or
// adds that armour; the DER itself is interpreted by internal/pkcs8. Writes
// go through a temp file and rename so a crash never leaves a partial key.
package keyfile
