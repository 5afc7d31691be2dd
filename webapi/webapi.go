// Package webapi exposes the ledger over HTTP. It is organized into
// sub-packages per resource:
//   - account: transactions, accounts and statements
//   - rule: interest rules
//   - common: response envelopes, error mapping and request binding
package webapi

import (
	"errors"
	"strings"

	"github.com/amirasaad/ledger/pkg/app"
	accountweb "github.com/amirasaad/ledger/webapi/account"
	"github.com/amirasaad/ledger/webapi/common"
	ruleweb "github.com/amirasaad/ledger/webapi/rule"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	if a.Config != nil && a.Config.RateLimit != nil {
		fiberApp.Use(limiter.New(limiter.Config{
			Max:          a.Config.RateLimit.MaxRequests,
			Expiration:   a.Config.RateLimit.Window,
			KeyGenerator: clientKey,
			LimitReached: func(c *fiber.Ctx) error {
				return common.ProblemDetailsJSON(
					c,
					"Too Many Requests",
					errors.New("rate limit exceeded"),
					fiber.StatusTooManyRequests,
				)
			},
		}))
	}
	fiberApp.Use(recover.New())
	if a.Config == nil || a.Config.Env != "test" {
		fiberApp.Use(logger.New())
	}

	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Ledger API is running! 🚀")
	})

	accountweb.Routes(fiberApp, a)
	ruleweb.Routes(fiberApp, a)
	return fiberApp
}

// clientKey identifies the caller for rate limiting. Behind a proxy the
// first X-Forwarded-For entry wins, then X-Real-IP, then the peer address.
func clientKey(c *fiber.Ctx) string {
	if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
		first, _, _ := strings.Cut(forwardedFor, ",")
		return strings.TrimSpace(first)
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.IP()
}
