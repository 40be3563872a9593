package pkcs8

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Key pair from RFC 8410 section 10.
const (
	seedHex = "d4ee72dbf913584ad5b6d8f1f769f8ad3afe7c28cbf1d4fbe097a88f44755842"
	pubHex  = "19bf44096984cdfe8541bac167dc3b96c85086aa30b6b6cb0c5c38ad703166e1"
)

var (
	pkcs8V1Hex = "302e020100300506032b657004220420" + seedHex
	pkcs8V2Hex = "3051020101300506032b657004220420" + seedHex + "812100" + pubHex
	spkiHex    = "302a300506032b6570032100" + pubHex

	// v2 with the public key wrapped as [1] EXPLICIT { BIT STRING }.
	pkcs8V2ExplicitHex = "3053020101300506032b657004220420" + seedHex + "a123032100" + pubHex

	// RFC 8410 section 10.3, including an attributes element.
	rfc8410Hex = "3072020101300506032b657004220420" + seedHex +
		"a01f301d060a2a864886f70d01090914310f0c0d" + hex.EncodeToString([]byte("Curdle Chairs")) +
		"812100" + pubHex
)

func mustHex(t testing.TB, parts ...string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.Join(parts, ""))
	require.NoError(t, err)
	return b
}

func testSeed(t testing.TB) [SeedSize]byte {
	var out [SeedSize]byte
	copy(out[:], mustHex(t, seedHex))
	return out
}

func testPublicKey(t testing.TB) [PublicKeySize]byte {
	var out [PublicKeySize]byte
	copy(out[:], mustHex(t, pubHex))
	return out
}

func TestKnownAnswerDecode(t *testing.T) {
	seed, pub := testSeed(t), testPublicKey(t)

	v1, err := DecodePrivateKey(mustHex(t, pkcs8V1Hex))
	require.NoError(t, err)
	require.Equal(t, V1, v1.Version)
	require.Equal(t, seed, v1.Seed)
	require.False(t, v1.HasPublicKey)
	require.Equal(t, [PublicKeySize]byte{}, v1.PublicKey)

	for name, der := range map[string]string{
		"implicit": pkcs8V2Hex,
		"explicit": pkcs8V2ExplicitHex,
		"rfc8410":  rfc8410Hex,
	} {
		t.Run(name, func(t *testing.T) {
			v2, err := DecodePrivateKey(mustHex(t, der))
			require.NoError(t, err)
			require.Equal(t, V2, v2.Version)
			require.Equal(t, seed, v2.Seed)
			require.True(t, v2.HasPublicKey)
			require.Equal(t, pub, v2.PublicKey)
		})
	}

	gotPub, err := DecodePublicKey(mustHex(t, spkiHex))
	require.NoError(t, err)
	require.Equal(t, pub, gotPub)
}

func TestKnownAnswerEncode(t *testing.T) {
	seed, pub := testSeed(t), testPublicKey(t)

	v1, err := EncodePrivateKeyV1(seed)
	require.NoError(t, err)
	require.Equal(t, mustHex(t, pkcs8V1Hex), v1)

	v2, err := EncodePrivateKeyV2(seed, pub)
	require.NoError(t, err)
	require.Equal(t, mustHex(t, pkcs8V2Hex), v2)

	spki, err := EncodePublicKey(pub)
	require.NoError(t, err)
	require.Equal(t, mustHex(t, spkiHex), spki)
}
