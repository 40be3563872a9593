package pkcs8

import (
	"bytes"
	"encoding/asn1"
)

// OID is the ASN.1 object identifier for Ed25519 (RFC 8410).
var OID = asn1.ObjectIdentifier{1, 3, 101, 112}

// oidBytes is the DER content of OID. Decoding compares against it
// byte-for-byte; no structural OID parsing is involved.
var oidBytes = []byte{0x2b, 0x65, 0x70}

func isEd25519OID(content []byte) bool {
	return bytes.Equal(content, oidBytes)
}
