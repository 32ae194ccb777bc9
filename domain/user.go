package domain

import (
	"strconv"
	"time"

	"github.com/go-webauthn/webauthn/webauthn"
)

type User struct {
	Id        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"size:200;not null;unique" json:"name"`
	CreatedAt *time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	Passkeys  []Passkey  `gorm:"foreignKey:Username;references:Name;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user_passkeys"`
}

func (u User) WebAuthnID() []byte {
	return []byte(strconv.Itoa(int(u.Id)))
}
func (u User) WebAuthnName() string {
	return u.Name
}
func (u User) WebAuthnDisplayName() string {
	return u.Name
}
func (u User) WebAuthnCredentials() []webauthn.Credential {
	var creds []webauthn.Credential
	for _, p := range u.Passkeys {
		if cred, err := p.Credential(); err == nil {
			creds = append(creds, *cred)
		}
	}
	return creds
}
