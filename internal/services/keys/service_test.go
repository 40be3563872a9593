package keys

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"edkey/internal/keyfile"
	"edkey/internal/pkcs8"
)

const (
	seedHex = "d4ee72dbf913584ad5b6d8f1f769f8ad3afe7c28cbf1d4fbe097a88f44755842"
	pubHex  = "19bf44096984cdfe8541bac167dc3b96c85086aa30b6b6cb0c5c38ad703166e1"
)

func newService(t *testing.T, opts Options) *Service {
	t.Helper()
	return New(opts, zaptest.NewLogger(t))
}

func writeHex(t *testing.T, dir, name string, parts ...string) string {
	t.Helper()
	var s string
	for _, p := range parts {
		s += p
	}
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestGenerateAndInspect(t *testing.T) {
	for _, format := range []keyfile.Format{keyfile.FormatDER, keyfile.FormatPEM} {
		for _, v := range []pkcs8.Version{pkcs8.V1, pkcs8.V2} {
			t.Run(string(format)+"/"+v.String(), func(t *testing.T) {
				dir := t.TempDir()
				svc := newService(t, Options{Format: format, VerifyConsistency: true})

				priv := filepath.Join(dir, "priv")
				pub := filepath.Join(dir, "pub")
				gen, err := svc.Generate(priv, pub, v)
				require.NoError(t, err)
				require.Equal(t, v, gen.Version)

				pi, err := svc.Inspect(priv)
				require.NoError(t, err)
				require.True(t, pi.Private)
				require.Equal(t, v, pi.Version)
				require.Equal(t, v == pkcs8.V2, pi.EmbeddedPublicKey)
				require.Equal(t, format, pi.Format)
				require.Equal(t, gen.Fingerprint, pi.Fingerprint)

				qi, err := svc.Inspect(pub)
				require.NoError(t, err)
				require.False(t, qi.Private)
				require.Equal(t, pi.PublicKey, qi.PublicKey)
				require.Equal(t, pi.Fingerprint, qi.Fingerprint)
			})
		}
	}
}

func TestInspectKnownAnswer(t *testing.T) {
	dir := t.TempDir()
	svc := newService(t, Options{Format: keyfile.FormatDER, VerifyConsistency: true})

	v1 := writeHex(t, dir, "v1.der", "302e020100300506032b657004220420", seedHex)
	info, err := svc.Inspect(v1)
	require.NoError(t, err)
	require.False(t, info.EmbeddedPublicKey)
	require.Equal(t, pubHex, hex.EncodeToString(info.PublicKey[:]))

	spki := writeHex(t, dir, "pub.der", "302a300506032b6570032100", pubHex)
	pinfo, err := svc.Inspect(spki)
	require.NoError(t, err)
	require.Equal(t, info.Fingerprint, pinfo.Fingerprint)
}

func TestInspectRejectsMismatchedPublicKey(t *testing.T) {
	dir := t.TempDir()
	bad := "29" + pubHex[2:]
	path := writeHex(t, dir, "v2.der", "3051020101300506032b657004220420", seedHex, "812100", bad)

	strict := newService(t, Options{Format: keyfile.FormatDER, VerifyConsistency: true})
	_, err := strict.Inspect(path)
	require.Error(t, err)

	lax := newService(t, Options{Format: keyfile.FormatDER})
	info, err := lax.Inspect(path)
	require.NoError(t, err)
	require.Equal(t, bad, hex.EncodeToString(info.PublicKey[:]))
}

func TestInspectGarbage(t *testing.T) {
	dir := t.TempDir()
	path := writeHex(t, dir, "junk", "0102")
	_, err := newService(t, Options{}).Inspect(path)
	require.ErrorIs(t, err, ErrNotAKey)

	wrongAlg := writeHex(t, dir, "x25519.der", "302e020100300506032b656e04220420", seedHex)
	_, err = newService(t, Options{}).Inspect(wrongAlg)
	require.ErrorIs(t, err, pkcs8.ErrUnsupportedAlgorithm)
}

func TestConvertAndExport(t *testing.T) {
	dir := t.TempDir()
	svc := newService(t, Options{Format: keyfile.FormatDER, VerifyConsistency: true})
	v1 := writeHex(t, dir, "v1.der", "302e020100300506032b657004220420", seedHex)

	out := filepath.Join(dir, "v2.der")
	_, err := svc.Convert(v1, out, pkcs8.V2)
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "3051020101300506032b657004220420"+seedHex+"812100"+pubHex, hex.EncodeToString(got))

	back := filepath.Join(dir, "back.der")
	_, err = svc.Convert(out, back, pkcs8.V1)
	require.NoError(t, err)
	got, err = os.ReadFile(back)
	require.NoError(t, err)
	require.Equal(t, "302e020100300506032b657004220420"+seedHex, hex.EncodeToString(got))

	pubOut := filepath.Join(dir, "pub.der")
	_, err = svc.ExportPublic(v1, pubOut)
	require.NoError(t, err)
	got, err = os.ReadFile(pubOut)
	require.NoError(t, err)
	require.Equal(t, "302a300506032b6570032100"+pubHex, hex.EncodeToString(got))

	_, err = svc.Convert(pubOut, filepath.Join(dir, "nope.der"), pkcs8.V2)
	require.Error(t, err)
}
