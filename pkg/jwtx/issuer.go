package jwtx

import (
	"errors"
	"time"
)

// AccessIssuer mints and verifies bearer tokens bound to a user identifier.
// It satisfies the narrow token capability handlers depend on, so a
// different signing scheme can be swapped in without touching them.
type AccessIssuer struct {
	Manager *KeyManager
	Issuer  string
	TTL     time.Duration
}

// Mint signs a token whose subject is the given user id. Name and email ride
// along as claims for display purposes only; the subject is authoritative.
func (i *AccessIssuer) Mint(userID, name, email string) (string, error) {
	signer := i.Manager.GetSigner()
	if signer == nil {
		return "", errors.New("jwtx: no signing key available")
	}

	ttl := i.TTL
	if ttl == 0 {
		ttl = DefaultAccessTokenTTL
	}

	claims := NewAccessClaims(userID, name, email, ttl, i.Issuer, time.Now().UTC())
	return signer.Sign(claims)
}

// Verify validates the token and returns the user id it was minted for.
func (i *AccessIssuer) Verify(token string) (string, error) {
	claims, err := i.Manager.Verifier.Verify(token)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", ErrInvalidClaim
	}
	return claims.Subject, nil
}
