package auth

import (
	"strings"

	"github.com/Abraxas-365/campus/pkg/errx"
	"github.com/Abraxas-365/campus/pkg/logx"
	"github.com/gofiber/fiber/v2"
)

const (
	identityLocalsKey = "identity"
	DefaultCookieName = "wowcampus_token"
)

// OptionalAuth attaches the caller identity when a valid credential is present.
// Requests without one continue anonymously.
func OptionalAuth(provider *IdentityProvider, cookieName string) fiber.Handler {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}

	return func(c *fiber.Ctx) error {
		credential := extractCredential(c, cookieName)
		if credential == "" {
			return c.Next()
		}

		identity, err := provider.Resolve(c.Context(), credential)
		if err != nil {
			if errx.IsType(err, errx.TypeInternal) {
				logx.WithFields(logx.Fields{"path": c.Path()}).Errorf("identity lookup failed: %v", err)
			} else {
				logx.Debugf("ignoring credential: %v", err)
			}
			return c.Next()
		}

		SetIdentity(c, identity)
		return c.Next()
	}
}

// extractCredential reads "Authorization: Bearer <token>", then the session cookie
func extractCredential(c *fiber.Ctx, cookieName string) string {
	if header := c.Get(fiber.HeaderAuthorization); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	return c.Cookies(cookieName)
}

// SetIdentity stores the caller identity on the request
func SetIdentity(c *fiber.Ctx, identity *Identity) {
	c.Locals(identityLocalsKey, identity)
}

// GetIdentity returns the identity set by OptionalAuth
func GetIdentity(c *fiber.Ctx) (*Identity, bool) {
	identity, ok := c.Locals(identityLocalsKey).(*Identity)
	return identity, ok && identity != nil
}
