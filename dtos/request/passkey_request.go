package request

import "encoding/json"

type StartRegistrationRequest struct {
	Name string `json:"name" validate:"required,username"`
}

type StartLoginRequest struct {
	Name string `json:"name" validate:"required,username"`
}

// FinishCeremonyRequest carries back the ceremony id issued at start together
// with the authenticator's signed response, verbatim as produced by the browser.
type FinishCeremonyRequest struct {
	CeremonyID string          `json:"ceremony_id" validate:"required,uuid"`
	Credential json.RawMessage `json:"credential" validate:"required"`
}
