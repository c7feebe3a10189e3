package middleware

import (
	"streamhub-backend/internal/auth"
	"streamhub-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

const claimsKey = "authClaims"

// Protected rejects requests without a valid session cookie. Every failure
// mode (missing cookie, bad signature) yields the same uniform 401.
func Protected(tokens *auth.TokenManager, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := c.Cookies(cookieName)
		if tokenStr == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
		}

		claims, err := tokens.Verify(tokenStr)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
		}

		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// ClaimsFromCtx returns the verified claims attached by Protected, or nil on
// unguarded routes.
func ClaimsFromCtx(c *fiber.Ctx) *auth.TokenClaims {
	claims, _ := c.Locals(claimsKey).(*auth.TokenClaims)
	return claims
}
