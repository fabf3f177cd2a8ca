package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/seacatering/backend/internal/config"
	"github.com/seacatering/backend/internal/dto"
	"github.com/seacatering/backend/internal/models"
	"gorm.io/gorm"
)

// AdminRequired gates a route to administrators. It checks, in order:
// 1. the X-Admin-Token header against the configured ops token
// 2. the role claim on the JWT
// 3. the configured admin email list
// 4. the user's Role column in the database
func AdminRequired(db *gorm.DB, cfg *config.Config) fiber.Handler {
	adminEmails := parseCSV(cfg.AdminEmails)

	return func(c *fiber.Ctx) error {
		if cfg.AdminToken != "" {
			if c.Get("X-Admin-Token") == cfg.AdminToken {
				return c.Next()
			}
		}

		userID, err := GetUserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if GetRole(c) == models.RoleAdmin {
			return c.Next()
		}

		if contains(adminEmails, GetEmail(c)) {
			return c.Next()
		}

		// Role claim may be stale; fall back to the DB.
		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err == nil {
			if user.Role == models.RoleAdmin {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Admin access required",
		})
	}
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
