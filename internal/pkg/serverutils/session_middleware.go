package serverutils

import (
	"github.com/gofiber/fiber/v2"

	"smart-kitchen-be/internal/repository/memory"
)

// SessionMiddleware resolves the bearer token against the in-memory
// session registry and stashes the member's ISIC in request locals.
// The denial message never distinguishes a missing token from an
// unknown one.
func SessionMiddleware(sessions *memory.SessionRegistry) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "access denied"))
		}
		token := authHeader[7:]

		isic, ok := sessions.Resolve(token)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "access denied"))
		}

		ctx.Locals("member_isic", isic)
		return ctx.Next()
	}
}

// MemberIsic reads the ISIC the session middleware stored.
func MemberIsic(ctx *fiber.Ctx) string {
	isic, _ := ctx.Locals("member_isic").(string)
	return isic
}
