package response

import "github.com/go-webauthn/webauthn/protocol"

// RegistrationChallengeResponse is what the client passes to
// navigator.credentials.create; CeremonyID must be echoed back on finish.
type RegistrationChallengeResponse struct {
	CeremonyID string                       `json:"ceremony_id"`
	Options    *protocol.CredentialCreation `json:"options"`
}

type LoginChallengeResponse struct {
	CeremonyID string                        `json:"ceremony_id"`
	Options    *protocol.CredentialAssertion `json:"options"`
}
