package keyfile

import (
	"bytes"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// PEM block types.
const (
	TypePrivateKey = "PRIVATE KEY"
	TypePublicKey  = "PUBLIC KEY"
)

// File modes for written keys.
const (
	ModePrivate os.FileMode = 0o600
	ModePublic  os.FileMode = 0o644
)

// Format selects the on-disk encoding.
type Format string

const (
	FormatDER Format = "der"
	FormatPEM Format = "pem"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatDER, FormatPEM:
		return f, nil
	default:
		return "", fmt.Errorf("unknown key format %q (want der or pem)", s)
	}
}

var (
	ErrNoPEMBlock     = errors.New("no PEM block found")
	ErrEncryptedPEM   = errors.New("encrypted PEM blocks are not supported")
	ErrUnexpectedType = errors.New("unexpected PEM block type")
)

var pemPrefix = []byte("-----BEGIN ")

// Key is the DER content of a key file.
type Key struct {
	DER []byte
	// Type is the PEM block type, or empty for a raw DER file.
	Type   string
	Format Format
}

// Read loads path and strips PEM armour if present.
func Read(path string) (Key, error) {
	// #nosec G304 -- path is user-provided.
	b, err := os.ReadFile(path)
	if err != nil {
		return Key{}, err
	}
	return Parse(b)
}

// Parse strips PEM armour from b if present. Anything that does not start
// with a PEM header is taken as DER.
func Parse(b []byte) (Key, error) {
	if !bytes.HasPrefix(bytes.TrimSpace(b), pemPrefix) {
		return Key{DER: b, Format: FormatDER}, nil
	}

	blk, _ := pem.Decode(b)
	if blk == nil {
		return Key{}, ErrNoPEMBlock
	}
	if len(blk.Headers) != 0 {
		return Key{}, ErrEncryptedPEM
	}
	switch blk.Type {
	case TypePrivateKey, TypePublicKey:
	default:
		return Key{}, fmt.Errorf("%w %q", ErrUnexpectedType, blk.Type)
	}
	return Key{DER: blk.Bytes, Type: blk.Type, Format: FormatPEM}, nil
}

// Encode renders der in format f, using typ as the PEM block type.
func Encode(der []byte, typ string, f Format) ([]byte, error) {
	switch f {
	case FormatDER:
		return der, nil
	case FormatPEM:
		return pem.EncodeToMemory(&pem.Block{Type: typ, Bytes: der}), nil
	default:
		return nil, fmt.Errorf("unknown key format %q", f)
	}
}

// Write encodes der in format f and writes it to path with mode.
func Write(path string, der []byte, typ string, f Format, mode os.FileMode) error {
	b, err := Encode(der, typ, f)
	if err != nil {
		return err
	}
	return writeFile(path, b, mode)
}

// writeFile writes bytes via a temp file, then atomically replaces the target.
func writeFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
