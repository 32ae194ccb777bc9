package controller

import (
	"bytes"
	"errors"
	"task_management_ms/config"
	"task_management_ms/domain"
	"task_management_ms/dtos/request"
	"task_management_ms/dtos/response"
	"task_management_ms/services"

	"github.com/go-webauthn/webauthn/protocol"
	"github.com/gofiber/fiber/v2"
)

type IPasskeyController interface {
	RegisterStart(c *fiber.Ctx) error
	RegisterFinish(c *fiber.Ctx) error
	LoginStart(c *fiber.Ctx) error
	LoginFinish(c *fiber.Ctx) error
	Logout(c *fiber.Ctx) error
}

type PasskeyController struct {
	service  services.IPasskeyService
	sessions services.ISessionService
}

func NewPasskeyController(service services.IPasskeyService, sessions services.ISessionService) IPasskeyController {
	return &PasskeyController{service: service, sessions: sessions}
}

func (pc *PasskeyController) RegisterStart(c *fiber.Ctx) error {
	body := c.Locals("body").(*request.StartRegistrationRequest)

	challenge, err := pc.service.RegisterStart(body.Name)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(challenge)
}

func (pc *PasskeyController) RegisterFinish(c *fiber.Ctx) error {
	body := c.Locals("body").(*request.FinishCeremonyRequest)

	credential, err := protocol.ParseCredentialCreationResponseBody(bytes.NewReader(body.Credential))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed credential"})
	}

	if err := pc.service.RegisterFinish(body.CeremonyID, credential); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

func (pc *PasskeyController) LoginStart(c *fiber.Ctx) error {
	body := c.Locals("body").(*request.StartLoginRequest)

	challenge, err := pc.service.LoginStart(body.Name)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(challenge)
}

func (pc *PasskeyController) LoginFinish(c *fiber.Ctx) error {
	body := c.Locals("body").(*request.FinishCeremonyRequest)

	credential, err := protocol.ParseCredentialRequestResponseBody(bytes.NewReader(body.Credential))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed credential"})
	}

	user, sessionID, err := pc.service.LoginFinish(body.CeremonyID, credential)
	if err != nil {
		return errorResponse(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     config.Conf.Application.Security.SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(response.SessionResponse{SessionID: sessionID, Username: user.Name})
}

func (pc *PasskeyController) Logout(c *fiber.Ctx) error {
	cookieName := config.Conf.Application.Security.SessionCookieName
	if sessionID := c.Cookies(cookieName); sessionID != "" {
		if err := pc.sessions.Revoke(sessionID); err != nil {
			return errorResponse(c, err)
		}
	}
	c.ClearCookie(cookieName)
	return c.JSON(fiber.Map{"status": "ok"})
}

// errorResponse maps domain errors onto the HTTP boundary. Ceremony replay and
// expiry surface as not-found; verification and policy failures surface as an
// authentication failure without further detail.
func errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrCeremonyNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": domain.ErrCeremonyNotFound.Error()})
	case errors.Is(err, domain.ErrVerificationFailed):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": domain.ErrVerificationFailed.Error()})
	case errors.Is(err, domain.ErrLoginNotAllowed):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": domain.ErrLoginNotAllowed.Error()})
	case errors.Is(err, domain.ErrCredentialExists):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": domain.ErrCredentialExists.Error()})
	case errors.Is(err, domain.ErrCredentialNotFound), errors.Is(err, domain.ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
