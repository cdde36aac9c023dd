package middleware

import (
	"context"
	"errors"
	"strings"

	"simpleadvert/internal/auth"
	"simpleadvert/internal/models"

	"github.com/gofiber/fiber/v2"
)

const actorLocal = "actor"

// UserLookup loads the user a token's subject refers to.
type UserLookup interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

// Auth resolves the bearer token of a request into a models.Actor.
type Auth struct {
	tokens *auth.Tokens
	users  UserLookup
}

func NewAuth(tokens *auth.Tokens, users UserLookup) *Auth {
	return &Auth{tokens: tokens, users: users}
}

var errNoToken = errors.New("no bearer token")

// Required is a middleware that enforces authentication for protected routes.
func (a *Auth) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.authenticate(c); err != nil {
			msg := "Invalid or expired token"
			if errors.Is(err, errNoToken) {
				msg = "Authorization header required"
			}
			return models.RespondWithError(c, fiber.StatusUnauthorized, models.NewUnauthorizedError(msg))
		}
		return c.Next()
	}
}

func (a *Auth) authenticate(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return errNoToken
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return errors.New("invalid authorization header format")
	}

	userID, err := a.tokens.Parse(token)
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	user, err := a.users.GetByID(ctx, userID)
	if err != nil {
		Logger.WarnContext(ctx, "token subject could not be loaded", "subject", userID, "error", err)
		return err
	}
	if !user.IsActive {
		return errors.New("user is inactive")
	}

	c.Locals("userID", user.ID)
	c.Locals(actorLocal, user.Actor())
	c.SetUserContext(context.WithValue(ctx, UserIDKey, user.ID))
	return nil
}

// ActorFrom returns the authenticated actor, or nil for anonymous requests.
func ActorFrom(c *fiber.Ctx) *models.Actor {
	actor, ok := c.Locals(actorLocal).(models.Actor)
	if !ok {
		return nil
	}
	return &actor
}
