package request

import "time"

// CloneSuspectedEvent is published when an authenticator reports a signature
// counter that did not increase over the stored one.
type CloneSuspectedEvent struct {
	Username           string    `json:"username"`
	CredentialID       string    `json:"credential_id"`
	StoredSignCount    uint32    `json:"stored_sign_count"`
	ReportedSignCount  uint32    `json:"reported_sign_count"`
	OccurredAt         time.Time `json:"occurred_at"`
}
