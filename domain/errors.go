package domain

import "errors"

var (
	// ErrCeremonyNotFound covers ceremony ids that are unknown, expired or
	// already consumed; callers cannot tell these apart.
	ErrCeremonyNotFound = errors.New("ceremony not found")

	// ErrVerificationFailed marks a signed ceremony response that did not match
	// the issued challenge, origin or relying party.
	ErrVerificationFailed = errors.New("credential verification failed")

	// ErrCredentialExists is returned when a credential id is registered twice.
	ErrCredentialExists = errors.New("credential already registered")

	ErrCredentialNotFound = errors.New("credential not found")

	// ErrLoginNotAllowed is the single externally visible failure for login
	// attempts that must not reveal why they failed (unknown user, no
	// registered credentials, suspected cloned authenticator).
	ErrLoginNotAllowed = errors.New("login not allowed")

	ErrSessionNotFound = errors.New("session not found")
)
