package jwtx_test

import (
	"testing"
	"time"

	"github.com/okobobank/okobo/pkg/cryptox"
	"github.com/okobobank/okobo/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestSigner(t *testing.T, kid string) jwtx.Signer {
	t.Helper()

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	signer, err := jwtx.NewSignerEdDSA(kid, pemKey)
	require.NoError(t, err)
	require.NoError(t, signer.Validate())

	return signer
}

func TestEdDSASignAndVerify(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t, "test-key-1")

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))

	claims := jwtx.NewAccessClaims(
		"user-123", "Ann", "a@b.com",
		time.Hour, "okobo-bank", time.Now().UTC(),
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	verifier := jwtx.NewVerifierEdDSA(keys, "okobo-bank")
	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", got.Subject)
	require.Equal(t, "Ann", got.Name)
	require.Equal(t, "a@b.com", got.Email)
}

func TestEdDSAVerifyRejectsUnknownKid(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t, "signing-key")
	other := newTestSigner(t, "other-key")

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(other))

	claims := jwtx.NewAccessClaims("u", "", "", time.Hour, "okobo-bank", time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	verifier := jwtx.NewVerifierEdDSA(keys, "okobo-bank")
	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestEdDSAVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t, "k1")
	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))

	claims := jwtx.NewAccessClaims("u", "", "", time.Hour, "someone-else", time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	verifier := jwtx.NewVerifierEdDSA(keys, "okobo-bank")
	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestEdDSAVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t, "k1")
	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))

	issued := time.Now().UTC().Add(-2 * time.Hour)
	claims := jwtx.NewAccessClaims("u", "", "", time.Hour, "okobo-bank", issued)
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	verifier := jwtx.NewVerifierEdDSA(keys, "okobo-bank")
	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestEdDSAVerifyRejectsTamperedToken(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t, "k1")
	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))

	claims := jwtx.NewAccessClaims("u", "", "", time.Hour, "okobo-bank", time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "AAAA"

	verifier := jwtx.NewVerifierEdDSA(keys, "okobo-bank")
	_, err = verifier.Verify(tampered)
	require.Error(t, err)
}
