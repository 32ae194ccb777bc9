package domain

import (
	"encoding/json"
	"time"

	"github.com/go-webauthn/webauthn/webauthn"
)

// Passkey is one registered public-key credential. Data holds the engine's own
// serialized credential format; CredentialID and SignCount are denormalized from it
// because the raw credential id is the only join key between an assertion response
// and the stored public key.
type Passkey struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	CredentialID []byte     `gorm:"not null;unique" json:"credential_id"`
	Data         []byte     `gorm:"not null" json:"data"`
	Username     string     `gorm:"size:200;not null;index" json:"username"`
	SignCount    uint32     `gorm:"not null;default:0" json:"sign_count"`
	CreatedAt    *time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    *time.Time `gorm:"default:null" json:"updated_at"`
}

func (Passkey) TableName() string {
	return "user_passkeys"
}

// Credential deserializes the stored engine credential.
func (p Passkey) Credential() (*webauthn.Credential, error) {
	var cred webauthn.Credential
	if err := json.Unmarshal(p.Data, &cred); err != nil {
		return nil, err
	}
	return &cred, nil
}

// NewPasskey serializes an engine credential into a storable row.
func NewPasskey(username string, cred *webauthn.Credential) (*Passkey, error) {
	data, err := json.Marshal(cred)
	if err != nil {
		return nil, err
	}
	return &Passkey{
		CredentialID: cred.ID,
		Data:         data,
		Username:     username,
		SignCount:    cred.Authenticator.SignCount,
	}, nil
}
