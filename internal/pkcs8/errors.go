package pkcs8

import "fmt"

// Kind classifies a decode failure.
type Kind uint8

const (
	// KindMalformedDER is a structural violation: wrong tag, non-minimal
	// length, trailing bytes, a missing required field or a field the
	// version forbids.
	KindMalformedDER Kind = iota + 1
	// KindUnsupportedVersion is a PKCS#8 version outside {0, 1}.
	KindUnsupportedVersion
	// KindUnsupportedAlgorithm is an algorithm OID other than Ed25519.
	KindUnsupportedAlgorithm
	// KindInvalidKeyLength is a key field whose content is not 32 bytes.
	KindInvalidKeyLength
)

func (k Kind) String() string {
	switch k {
	case KindMalformedDER:
		return "malformed DER"
	case KindUnsupportedVersion:
		return "unsupported version"
	case KindUnsupportedAlgorithm:
		return "unsupported algorithm"
	case KindInvalidKeyLength:
		return "invalid key length"
	default:
		return "unknown error"
	}
}

// Error reports the first violation found while decoding.
type Error struct {
	Kind  Kind
	Field string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return "pkcs8: " + e.Kind.String()
	}
	return fmt.Sprintf("pkcs8: %s in %s", e.Kind, e.Field)
}

// Is reports whether target is an *Error of the same Kind, so the sentinels
// below match regardless of Field.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrMalformedDER         = &Error{Kind: KindMalformedDER}
	ErrUnsupportedVersion   = &Error{Kind: KindUnsupportedVersion}
	ErrUnsupportedAlgorithm = &Error{Kind: KindUnsupportedAlgorithm}
	ErrInvalidKeyLength     = &Error{Kind: KindInvalidKeyLength}
)

func malformed(field string) error {
	return &Error{Kind: KindMalformedDER, Field: field}
}

func badLength(field string) error {
	return &Error{Kind: KindInvalidKeyLength, Field: field}
}
