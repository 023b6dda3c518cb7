package domain

import "time"

// Credential is the bearer token used to authorize music service calls.
// It is treated as an immutable value: refreshing produces a new Credential.
type Credential struct {
	AccessToken string
	TokenType   string
	Expiry      time.Time
}

// NewCredential creates a Credential. An empty token type defaults to "Bearer".
func NewCredential(accessToken, tokenType string, expiry time.Time) Credential {
	if tokenType == "" {
		tokenType = "Bearer"
	}
	return Credential{
		AccessToken: accessToken,
		TokenType:   tokenType,
		Expiry:      expiry,
	}
}

// IsZero reports whether no token has been stored yet.
func (c Credential) IsZero() bool {
	return c.AccessToken == ""
}

// ExpiredAt reports whether the credential is expired at the given instant.
// A zero expiry never expires.
func (c Credential) ExpiredAt(now time.Time) bool {
	if c.Expiry.IsZero() {
		return false
	}
	return !now.Before(c.Expiry)
}

// String describes the credential without revealing the token.
func (c Credential) String() string {
	if c.IsZero() {
		return "Credential(empty)"
	}
	return "Credential(" + c.TokenType + ", expires " + c.Expiry.UTC().Format(time.RFC3339) + ")"
}
