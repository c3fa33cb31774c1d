package cryptox_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okobobank/okobo/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Keep the generated pepper out of the working tree.
	dir, err := os.MkdirTemp("", "cryptox-pepper")
	if err != nil {
		os.Exit(1)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func TestHashPasswordProducesPHCFormat(t *testing.T) {
	hash, err := cryptox.HashPassword("secret1")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))
	require.Len(t, strings.Split(hash, "$"), 6)
}

func TestVerifyPasswordAgreesWithHash(t *testing.T) {
	hash, err := cryptox.HashPassword("secret1")
	require.NoError(t, err)

	require.NoError(t, cryptox.VerifyPassword("secret1", hash))
	require.Error(t, cryptox.VerifyPassword("wrong", hash))
	require.Error(t, cryptox.VerifyPassword("Secret1", hash))
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	a, err := cryptox.HashPassword("secret1")
	require.NoError(t, err)
	b, err := cryptox.HashPassword("secret1")
	require.NoError(t, err)

	require.NotEqual(t, a, b)
	require.NoError(t, cryptox.VerifyPassword("secret1", a))
	require.NoError(t, cryptox.VerifyPassword("secret1", b))
}

func TestVerifyPasswordRejectsMalformedDigest(t *testing.T) {
	require.Error(t, cryptox.VerifyPassword("secret1", "not-a-hash"))
	require.Error(t, cryptox.VerifyPassword("secret1", "$bcrypt$v=19$m=1,t=1,p=1$aaaa$bbbb"))
}

func TestArgon2AdapterRoundTrip(t *testing.T) {
	var h cryptox.Argon2

	digest, err := h.Hash("hunter42")
	require.NoError(t, err)

	require.True(t, h.Verify("hunter42", digest))
	require.False(t, h.Verify("hunter43", digest))
}

func TestGenerateTokenLengthAndUniqueness(t *testing.T) {
	a, err := cryptox.GenerateToken(cryptox.TokenSize256)
	require.NoError(t, err)
	b, err := cryptox.GenerateToken(cryptox.TokenSize256)
	require.NoError(t, err)

	require.Len(t, a, 43)
	require.NotEqual(t, a, b)

	_, err = cryptox.GenerateToken(0)
	require.Error(t, err)
}
