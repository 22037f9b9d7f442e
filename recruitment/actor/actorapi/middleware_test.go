package actorapi

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/Abraxas-365/campus/pkg/iam/auth"
	"github.com/Abraxas-365/campus/pkg/kernel"
	"github.com/Abraxas-365/campus/recruitment/actor"
	"github.com/gofiber/fiber/v2"
)

type staticDirectory struct{}

func (staticDirectory) JobseekerIDByUser(context.Context, kernel.UserID) (kernel.JobseekerID, bool, error) {
	return "js-1", true, nil
}

func (staticDirectory) CompanyIDByUser(context.Context, kernel.UserID) (kernel.CompanyID, bool, error) {
	return "", false, nil
}

func TestGetActorDefaultsToGuest(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		if _, ok := GetActor(c).(actor.Guest); !ok {
			return c.SendString("not guest")
		}
		return c.SendString("guest")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "guest" {
		t.Fatalf("got %q", body)
	}
}

func TestMiddlewareResolvesIdentity(t *testing.T) {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		auth.SetIdentity(c, &auth.Identity{UserID: "u-1", Role: auth.RoleJobseeker, Status: auth.UserStatusApproved})
		return c.Next()
	})
	app.Use(Middleware(actor.NewResolver(staticDirectory{})))
	app.Get("/", func(c *fiber.Ctx) error {
		js, ok := GetActor(c).(actor.Jobseeker)
		if !ok {
			return c.SendString("wrong variant")
		}
		return c.SendString(js.ProfileID.String())
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "js-1" {
		t.Fatalf("got %q", body)
	}
}
