package middleware

import (
	"github.com/gofiber/fiber/v2"
	authutils "talentdesk-backend/lib/utils/auth-utils"
	"talentdesk-backend/models"
	apimodels "talentdesk-backend/models/api"
)

func GetUserCompany(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if company, exist := claims["company"]; exist {
		if str, ok := company.(string); ok {
			return str
		}
	}
	return ""
}

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if str, ok := sub.(string); ok {
			return str
		}
	}
	return ""
}

func GetUserName(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if name, exist := claims["name"]; exist {
		if str, ok := name.(string); ok {
			return str
		}
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}

// CompanyRequired rejects tokens without a tenant claim; every route under
// /company relies on it.
func CompanyRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetUserCompany(ctx) == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not available"))
		}
		return ctx.Next()
	}
}

func RoleRequired(roles ...models.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		userRole := GetUserRole(ctx)
		if userRole.IsAdmin() {
			return ctx.Next()
		}
		for _, role := range roles {
			if userRole == role {
				return ctx.Next()
			}
		}
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not available"))
	}
}
