package keys

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"edkey/internal/crypto"
	"edkey/internal/keyfile"
	"edkey/internal/pkcs8"
)

// ErrNotAKey is returned when a file decodes as neither PKCS#8 nor SPKI.
var ErrNotAKey = errors.New("file is neither a PKCS#8 private key nor an SPKI public key")

// Options control how keys are written and checked.
type Options struct {
	Format            keyfile.Format
	VerifyConsistency bool
}

// Info describes a key file.
type Info struct {
	Path    string
	Private bool
	// Version and EmbeddedPublicKey are set for private keys only.
	Version           pkcs8.Version
	EmbeddedPublicKey bool
	PublicKey         [pkcs8.PublicKeySize]byte
	Fingerprint       string
	Format            keyfile.Format
}

// Service performs key file operations.
type Service struct {
	opts Options
	log  *zap.Logger
}

// New returns a Service. A nil logger discards output.
func New(opts Options, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{opts: opts, log: log.Named("keys")}
}

// Generate creates a key pair and writes the private key to privPath as
// PKCS#8 version v and the public key to pubPath.
func (s *Service) Generate(privPath, pubPath string, v pkcs8.Version) (Info, error) {
	k, err := crypto.GenerateEd25519()
	if err != nil {
		return Info{}, err
	}
	defer k.Wipe()

	info, err := s.writePrivate(privPath, k, v)
	if err != nil {
		return Info{}, err
	}
	if _, err := s.writePublic(pubPath, k.PublicBytes()); err != nil {
		return Info{}, err
	}
	s.log.Info("generated key pair",
		zap.String("private", privPath),
		zap.String("public", pubPath),
		zap.String("fingerprint", info.Fingerprint))
	return info, nil
}

// Inspect decodes the key file at path.
func (s *Service) Inspect(path string) (Info, error) {
	f, err := keyfile.Read(path)
	if err != nil {
		return Info{}, err
	}

	var info Info
	switch f.Type {
	case keyfile.TypePrivateKey:
		info, err = s.inspectPrivate(f.DER)
	case keyfile.TypePublicKey:
		info, err = s.inspectPublic(f.DER)
	default:
		info, err = s.sniff(f.DER)
	}
	if err != nil {
		return Info{}, fmt.Errorf("%s: %w", path, err)
	}
	info.Path = path
	info.Format = f.Format

	s.log.Debug("inspected key",
		zap.String("path", path),
		zap.Bool("private", info.Private),
		zap.Stringer("version", info.Version),
		zap.String("fingerprint", info.Fingerprint))
	return info, nil
}

// ExportPublic writes the SPKI encoding of the private key at privPath to
// outPath.
func (s *Service) ExportPublic(privPath, outPath string) (Info, error) {
	k, err := s.loadPrivate(privPath)
	if err != nil {
		return Info{}, err
	}
	defer k.Wipe()

	info, err := s.writePublic(outPath, k.PublicBytes())
	if err != nil {
		return Info{}, err
	}
	s.log.Info("exported public key",
		zap.String("from", privPath),
		zap.String("to", outPath),
		zap.String("fingerprint", info.Fingerprint))
	return info, nil
}

// Convert re-encodes the private key at privPath as PKCS#8 version v and
// writes it to outPath.
func (s *Service) Convert(privPath, outPath string, v pkcs8.Version) (Info, error) {
	k, err := s.loadPrivate(privPath)
	if err != nil {
		return Info{}, err
	}
	defer k.Wipe()

	info, err := s.writePrivate(outPath, k, v)
	if err != nil {
		return Info{}, err
	}
	s.log.Info("converted private key",
		zap.String("from", privPath),
		zap.String("to", outPath),
		zap.Stringer("version", v))
	return info, nil
}

func (s *Service) sniff(der []byte) (Info, error) {
	info, err := s.inspectPrivate(der)
	if err == nil {
		return info, nil
	}
	if !errors.Is(err, pkcs8.ErrMalformedDER) {
		return Info{}, err
	}
	info, err = s.inspectPublic(der)
	if errors.Is(err, pkcs8.ErrMalformedDER) {
		return Info{}, ErrNotAKey
	}
	return info, err
}

func (s *Service) inspectPrivate(der []byte) (Info, error) {
	kp, err := pkcs8.DecodePrivateKey(der)
	if err != nil {
		return Info{}, err
	}

	pub := kp.PublicKey
	if !kp.HasPublicKey || s.opts.VerifyConsistency {
		k, err := crypto.KeypairFromBytes(kp)
		if err != nil {
			return Info{}, err
		}
		pub = k.PublicBytes()
		k.Wipe()
	}

	fp, err := crypto.Fingerprint(pub)
	if err != nil {
		return Info{}, err
	}
	return Info{
		Private:           true,
		Version:           kp.Version,
		EmbeddedPublicKey: kp.HasPublicKey,
		PublicKey:         pub,
		Fingerprint:       fp,
	}, nil
}

func (s *Service) inspectPublic(der []byte) (Info, error) {
	pub, err := pkcs8.DecodePublicKey(der)
	if err != nil {
		return Info{}, err
	}
	if s.opts.VerifyConsistency {
		if _, err := crypto.ParsePublicKey(pub); err != nil {
			return Info{}, err
		}
	}
	fp, err := crypto.Fingerprint(pub)
	if err != nil {
		return Info{}, err
	}
	return Info{PublicKey: pub, Fingerprint: fp}, nil
}

func (s *Service) loadPrivate(path string) (*crypto.Keypair, error) {
	f, err := keyfile.Read(path)
	if err != nil {
		return nil, err
	}
	if f.Type == keyfile.TypePublicKey {
		return nil, fmt.Errorf("%s: %w", path, keyfile.ErrUnexpectedType)
	}
	kp, err := pkcs8.DecodePrivateKey(f.DER)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if !s.opts.VerifyConsistency {
		kp.HasPublicKey = false
	}
	k, err := crypto.KeypairFromBytes(kp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return k, nil
}

func (s *Service) writePrivate(path string, k *crypto.Keypair, v pkcs8.Version) (Info, error) {
	var (
		der []byte
		err error
	)
	switch v {
	case pkcs8.V1:
		der, err = pkcs8.EncodePrivateKeyV1(k.Seed())
	case pkcs8.V2:
		der, err = pkcs8.EncodePrivateKeyV2(k.Seed(), k.PublicBytes())
	default:
		return Info{}, fmt.Errorf("unsupported PKCS#8 version %d", int(v)+1)
	}
	if err != nil {
		return Info{}, err
	}
	if err := keyfile.Write(path, der, keyfile.TypePrivateKey, s.opts.Format, keyfile.ModePrivate); err != nil {
		return Info{}, err
	}

	fp, err := crypto.Fingerprint(k.PublicBytes())
	if err != nil {
		return Info{}, err
	}
	return Info{
		Path:              path,
		Private:           true,
		Version:           v,
		EmbeddedPublicKey: v == pkcs8.V2,
		PublicKey:         k.PublicBytes(),
		Fingerprint:       fp,
		Format:            s.opts.Format,
	}, nil
}

func (s *Service) writePublic(path string, pub [pkcs8.PublicKeySize]byte) (Info, error) {
	der, err := pkcs8.EncodePublicKey(pub)
	if err != nil {
		return Info{}, err
	}
	if err := keyfile.Write(path, der, keyfile.TypePublicKey, s.opts.Format, keyfile.ModePublic); err != nil {
		return Info{}, err
	}
	fp, err := crypto.Fingerprint(pub)
	if err != nil {
		return Info{}, err
	}
	return Info{Path: path, PublicKey: pub, Fingerprint: fp, Format: s.opts.Format}, nil
}
