package services

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"task_management_ms/domain"
	"task_management_ms/dtos/request"
	"task_management_ms/dtos/response"
	"task_management_ms/repository"
	"time"

	"github.com/go-webauthn/webauthn/protocol"
	"github.com/go-webauthn/webauthn/webauthn"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// RegistrationCeremony is the server-side state of one in-flight registration.
type RegistrationCeremony struct {
	SessionData *webauthn.SessionData
	Username    string
}

// SigninCeremony snapshots the candidate credentials offered to the client.
type SigninCeremony struct {
	SessionData *webauthn.SessionData
	User        *domain.User
}

type IPasskeyService interface {
	RegisterStart(name string) (*response.RegistrationChallengeResponse, error)
	RegisterFinish(ceremonyID string, credential *protocol.ParsedCredentialCreationData) error
	LoginStart(name string) (*response.LoginChallengeResponse, error)
	LoginFinish(ceremonyID string, credential *protocol.ParsedCredentialAssertionData) (*domain.User, string, error)
}

type PasskeyService struct {
	db            *gorm.DB
	wa            *webauthn.WebAuthn
	userRepo      repository.IUserRepository
	passkeyRepo   repository.IPasskeyRepository
	sessions      ISessionService
	events        ISecurityEventService
	registrations *CeremonyStore[RegistrationCeremony]
	signins       *CeremonyStore[SigninCeremony]
}

func NewPasskeyService(
	wa *webauthn.WebAuthn,
	db *gorm.DB,
	userRepo repository.IUserRepository,
	passkeyRepo repository.IPasskeyRepository,
	sessions ISessionService,
	events ISecurityEventService,
	registrations *CeremonyStore[RegistrationCeremony],
	signins *CeremonyStore[SigninCeremony],
) IPasskeyService {
	return &PasskeyService{
		db:            db,
		wa:            wa,
		userRepo:      userRepo,
		passkeyRepo:   passkeyRepo,
		sessions:      sessions,
		events:        events,
		registrations: registrations,
		signins:       signins,
	}
}

// RegisterStart creates the user row on a first attempt, produces a fresh
// challenge and parks the ceremony state until the client answers.
func (ps *PasskeyService) RegisterStart(name string) (*response.RegistrationChallengeResponse, error) {
	user, err := ps.userRepo.GetOrCreateByName(ps.db, name)
	if err != nil {
		return nil, err
	}

	options, sessionData, err := ps.wa.BeginRegistration(user)
	if err != nil {
		return nil, err
	}

	ceremonyID, err := ps.registrations.Begin(RegistrationCeremony{
		SessionData: sessionData,
		Username:    user.Name,
	})
	if err != nil {
		return nil, err
	}

	return &response.RegistrationChallengeResponse{CeremonyID: ceremonyID, Options: options}, nil
}

// RegisterFinish consumes the ceremony exactly once, verifies the signed
// response and persists the new credential.
func (ps *PasskeyService) RegisterFinish(ceremonyID string, credential *protocol.ParsedCredentialCreationData) error {
	ceremony, err := ps.registrations.Consume(ceremonyID)
	if err != nil {
		return err
	}

	user, err := ps.userRepo.GetByNameWithPasskeys(ps.db, ceremony.Username)
	if err != nil {
		return err
	}

	cred, err := ps.wa.CreateCredential(user, *ceremony.SessionData, credential)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrVerificationFailed, err)
	}

	passkey, err := domain.NewPasskey(user.Name, cred)
	if err != nil {
		return err
	}
	return ps.passkeyRepo.Insert(ps.db, passkey)
}

// LoginStart offers the claimed user's registered credentials. An unknown name
// and a name with zero credentials fail identically so callers cannot probe
// which accounts exist.
func (ps *PasskeyService) LoginStart(name string) (*response.LoginChallengeResponse, error) {
	user, err := ps.userRepo.GetByNameWithPasskeys(ps.db, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLoginNotAllowed
		}
		return nil, err
	}
	if len(user.Passkeys) == 0 {
		return nil, domain.ErrLoginNotAllowed
	}

	options, sessionData, err := ps.wa.BeginLogin(user)
	if err != nil {
		return nil, err
	}

	ceremonyID, err := ps.signins.Begin(SigninCeremony{
		SessionData: sessionData,
		User:        user,
	})
	if err != nil {
		return nil, err
	}

	return &response.LoginChallengeResponse{CeremonyID: ceremonyID, Options: options}, nil
}

// LoginFinish verifies the assertion against the offered credentials, enforces
// a strictly increasing signature counter and issues a session on success.
func (ps *PasskeyService) LoginFinish(ceremonyID string, credential *protocol.ParsedCredentialAssertionData) (*domain.User, string, error) {
	ceremony, err := ps.signins.Consume(ceremonyID)
	if err != nil {
		return nil, "", err
	}

	cred, err := ps.wa.ValidateLogin(ceremony.User, *ceremony.SessionData, credential)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrVerificationFailed, err)
	}

	stored, err := ps.passkeyRepo.FindByCredentialID(ps.db, cred.ID)
	if err != nil {
		return nil, "", err
	}

	reported := cred.Authenticator.SignCount
	counterless := reported == 0 && stored.SignCount == 0

	// A counter that did not increase is the cloned-authenticator signal: the
	// stored record stays untouched and the login is refused.
	if cred.Authenticator.CloneWarning || (!counterless && reported <= stored.SignCount) {
		event := &request.CloneSuspectedEvent{
			Username:          stored.Username,
			CredentialID:      base64.RawURLEncoding.EncodeToString(stored.CredentialID),
			StoredSignCount:   stored.SignCount,
			ReportedSignCount: reported,
			OccurredAt:        time.Now(),
		}
		if err := ps.events.PublishCloneSuspected(event); err != nil {
			log.Error("could not publish security event: ", err)
		}
		return nil, "", domain.ErrLoginNotAllowed
	}

	if reported > stored.SignCount {
		data, err := json.Marshal(cred)
		if err != nil {
			return nil, "", err
		}
		if err := ps.passkeyRepo.UpdateCredential(ps.db, cred.ID, data, reported); err != nil {
			return nil, "", err
		}
	}

	sessionID, err := ps.sessions.Issue(stored.Username)
	if err != nil {
		return nil, "", err
	}
	return ceremony.User, sessionID, nil
}
