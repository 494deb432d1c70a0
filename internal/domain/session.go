package domain

import "time"

// SessionIssuer issues an opaque admin session token after a successful
// passphrase check.
type SessionIssuer interface {
	Issue(expiry time.Duration) (string, error)
}

// SessionVerifier verifies an admin session token. A nil error means the
// bearer is authenticated as admin.
type SessionVerifier interface {
	Verify(token string) error
}
