package actorapi

import (
	"github.com/Abraxas-365/campus/pkg/iam/auth"
	"github.com/Abraxas-365/campus/recruitment/actor"
	"github.com/gofiber/fiber/v2"
)

const actorLocalsKey = "actor"

// Middleware resolves the actor for the identity set by auth.OptionalAuth
func Middleware(resolver *actor.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, _ := auth.GetIdentity(c)

		a, err := resolver.Resolve(c.Context(), identity)
		if err != nil {
			return err
		}

		SetActor(c, a)
		return c.Next()
	}
}

func SetActor(c *fiber.Ctx, a actor.Actor) {
	c.Locals(actorLocalsKey, a)
}

// GetActor returns the resolved actor, or an anonymous Guest
func GetActor(c *fiber.Ctx) actor.Actor {
	if a, ok := c.Locals(actorLocalsKey).(actor.Actor); ok && a != nil {
		return a
	}
	return actor.Anonymous()
}
